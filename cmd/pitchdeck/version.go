package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/VantageDataChat/pitchdeck/pptx"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display build information",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "pitchdeck %s\ncommit: %s\nbuilt: %s\nwriter: %s %s\n",
				version, commit, date, pptx.AppName, pptx.Version)
			return nil
		},
	}
}
