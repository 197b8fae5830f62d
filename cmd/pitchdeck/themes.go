package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/VantageDataChat/pitchdeck/theme"
)

// minContrast is the WCAG AA threshold for body text.
const minContrast = 4.5

var (
	themeHeaderStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	nameStyle        = lipgloss.NewStyle().Width(18)
	failStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

func newThemesCmd() *cobra.Command {
	var themeFile string

	cmd := &cobra.Command{
		Use:   "themes [name...]",
		Short: "Show theme palettes and text contrast",
		RunE: func(cmd *cobra.Command, args []string) error {
			themes, err := listedThemes(args, themeFile)
			if err != nil {
				return err
			}
			for i, th := range themes {
				if i > 0 {
					fmt.Fprintln(cmd.OutOrStdout())
				}
				printTheme(cmd.OutOrStdout(), th)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&themeFile, "theme-file", "", "Show a custom theme YAML instead")

	return cmd
}

func listedThemes(names []string, themeFile string) ([]*theme.Theme, error) {
	if themeFile != "" {
		th, err := theme.Load(themeFile)
		if err != nil {
			return nil, err
		}
		return []*theme.Theme{th}, nil
	}
	if len(names) == 0 {
		names = theme.Names()
	}
	out := make([]*theme.Theme, 0, len(names))
	for _, name := range names {
		th, err := theme.Builtin(name)
		if err != nil {
			return nil, err
		}
		out = append(out, th)
	}
	return out, nil
}

func printTheme(w io.Writer, th *theme.Theme) {
	canvas := th.Canvas()
	fmt.Fprintln(w, themeHeaderStyle.Render(th.Name()))
	fmt.Fprintf(w, "canvas %.2fin x %.2fin, typeface %s\n", canvas.Width, canvas.Height, th.Typeface())

	for _, name := range th.Names() {
		hex := "#" + strings.TrimPrefix(th.Color(name).ARGB, "FF")
		swatch := lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("    ")
		fmt.Fprintf(w, "  %s %s %s\n", swatch, nameStyle.Render(string(name)), hex)
	}

	fmt.Fprintln(w, "contrast:")
	for _, pair := range theme.ReadabilityPairs() {
		ratio, err := th.Contrast(pair.Foreground, pair.Background)
		if err != nil {
			fmt.Fprintf(w, "  %s on %s: %v\n", pair.Foreground, pair.Background, err)
			continue
		}
		verdict := "ok"
		if ratio < minContrast {
			verdict = failStyle.Render("low")
		}
		fmt.Fprintf(w, "  %s on %s: %.2f:1 %s\n", pair.Foreground, pair.Background, ratio, verdict)
	}
}
