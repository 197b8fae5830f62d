package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/VantageDataChat/pitchdeck/compose"
	"github.com/VantageDataChat/pitchdeck/internal/logger"
	"github.com/VantageDataChat/pitchdeck/pptx"
)

// errLintFindings makes the command exit non-zero in strict mode.
var errLintFindings = errors.New("layout findings reported")

type lintOptions struct {
	deckOptions
	Strict    bool
	Tolerance float64
}

func newLintCmd(root *rootFlags) *cobra.Command {
	opts := lintOptions{}

	cmd := &cobra.Command{
		Use:   "lint",
		Short: "Report shapes off the canvas and text that overflows its box",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.validate(); err != nil {
				return err
			}
			return runLint(opts, root.log, cmd.OutOrStdout())
		},
	}

	opts.register(cmd)
	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "Exit non-zero when anything is reported")
	cmd.Flags().Float64Var(&opts.Tolerance, "tolerance", 0.1, "Inches text may overrun its box before it is reported")

	return cmd
}

func runLint(opts lintOptions, log *logger.Logger, out io.Writer) error {
	deck, err := opts.loadDeck()
	if err != nil {
		return err
	}
	themes, err := opts.themes()
	if err != nil {
		return err
	}

	fc := pptx.NewFontCache()
	total := 0
	for _, th := range themes {
		p, err := compose.Build(th, deck, compose.WithLogger(log))
		if err != nil {
			return err
		}
		issues := p.CheckLayout(&pptx.CheckOptions{Tolerance: opts.Tolerance, FontCache: fc})
		for _, issue := range issues {
			fmt.Fprintf(out, "%s: %s\n", th.Name(), issue)
		}
		log.WithFields(map[string]any{"theme": th.Name(), "issues": len(issues)}).Info("layout checked")
		total += len(issues)
	}

	if total == 0 {
		fmt.Fprintln(out, "no layout issues")
		return nil
	}
	if opts.Strict {
		return fmt.Errorf("%w: %d", errLintFindings, total)
	}
	return nil
}
