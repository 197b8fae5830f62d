package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/VantageDataChat/pitchdeck/compose"
	"github.com/VantageDataChat/pitchdeck/internal/logger"
)

type buildOptions struct {
	deckOptions
	OutDir    string
	NoClobber bool
	Creator   string
}

var buildCmdRunner = runBuild

func newBuildCmd(root *rootFlags) *cobra.Command {
	opts := buildOptions{}

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Write one PPTX file per theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.validate(); err != nil {
				return err
			}
			return buildCmdRunner(cmd.Context(), opts, root.log, cmd.OutOrStdout())
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVarP(&opts.OutDir, "out-dir", "o", ".", "Directory the decks are written to")
	cmd.Flags().BoolVar(&opts.NoClobber, "no-clobber", false, "Fail instead of replacing an existing deck")
	cmd.Flags().StringVar(&opts.Creator, "creator", "", "Override the document creator")

	return cmd
}

// runBuild composes and saves every selected theme. The first failure stops
// the run; decks already written are kept.
func runBuild(ctx context.Context, opts buildOptions, log *logger.Logger, out io.Writer) error {
	deck, err := opts.loadDeck()
	if err != nil {
		return err
	}
	themes, err := opts.themes()
	if err != nil {
		return err
	}

	for _, th := range themes {
		if err := ctx.Err(); err != nil {
			return err
		}
		p, err := compose.Build(th, deck, compose.WithLogger(log), compose.WithCreator(opts.Creator))
		if err != nil {
			return err
		}
		path := filepath.Join(opts.OutDir, deck.FileName(th.FileSuffix()))
		if err := compose.Save(p, path, compose.SaveOptions{Logger: log, NoClobber: opts.NoClobber}); err != nil {
			return err
		}
		totals := compose.Summarize(p).Totals()
		fmt.Fprintf(out, "%s\t%s\t%d slides\t%d shapes\n", th.Name(), path, p.GetSlideCount(), totals.Shapes)
	}
	return nil
}
