package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/VantageDataChat/pitchdeck/internal/logger"
)

type rootFlags struct {
	logLevel string
	human    bool

	log *logger.Logger
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "pitchdeck",
		Short:         "Generate the themed Telephony Manager pitch decks",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log, err := logger.New(logger.Options{
				Level:         flags.logLevel,
				HumanReadable: flags.human,
				Writer:        cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}
			flags.log = log
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().BoolVar(&flags.human, "human", term.IsTerminal(int(os.Stderr.Fd())), "Human-readable console logs")

	cmd.AddCommand(newBuildCmd(flags))
	cmd.AddCommand(newPreviewCmd(flags))
	cmd.AddCommand(newLintCmd(flags))
	cmd.AddCommand(newWatchCmd(flags))
	cmd.AddCommand(newThemesCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}
