package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/VantageDataChat/pitchdeck/internal/watch"
)

type watchOptions struct {
	buildOptions
	Debounce time.Duration
}

func newWatchCmd(root *rootFlags) *cobra.Command {
	opts := watchOptions{}

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Rebuild the decks whenever the content file changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.ContentPath == "" {
				return errors.New("watch requires --content")
			}
			if err := opts.validate(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			out := cmd.OutOrStdout()
			rebuild := func(ctx context.Context) error {
				return runBuild(ctx, opts.buildOptions, root.log, out)
			}
			// A broken file at startup is reported but still watched.
			if err := rebuild(ctx); err != nil {
				root.log.Error(err, "initial build failed")
			}
			return watch.Run(ctx, opts.ContentPath, rebuild,
				watch.WithDebounce(opts.Debounce), watch.WithLogger(root.log))
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVarP(&opts.OutDir, "out-dir", "o", ".", "Directory the decks are written to")
	cmd.Flags().StringVar(&opts.Creator, "creator", "", "Override the document creator")
	cmd.Flags().DurationVar(&opts.Debounce, "debounce", watch.DefaultDebounce, "Quiet period before a rebuild")

	return cmd
}
