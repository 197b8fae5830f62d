package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/VantageDataChat/pitchdeck/content"
	"github.com/VantageDataChat/pitchdeck/theme"
)

const allThemes = "all"

// deckOptions selects the content and themes a command works on.
type deckOptions struct {
	ContentPath string
	Theme       string
	ThemeFile   string
}

func (o *deckOptions) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.ContentPath, "content", "", "Content YAML replacing the built-in deck")
	cmd.Flags().StringVar(&o.Theme, "theme", allThemes,
		fmt.Sprintf("Theme to use (%s, %s)", strings.Join(theme.Names(), ", "), allThemes))
	cmd.Flags().StringVar(&o.ThemeFile, "theme-file", "", "Custom theme YAML; overrides --theme")
}

func (o deckOptions) validate() error {
	if o.ContentPath != "" {
		if err := requireFile(o.ContentPath, "content"); err != nil {
			return err
		}
	}
	if o.ThemeFile != "" {
		return requireFile(o.ThemeFile, "theme")
	}
	if o.Theme == allThemes {
		return nil
	}
	_, err := theme.Builtin(o.Theme)
	return err
}

// loadDeck returns the override content, or the built-in deck when none was
// given.
func (o deckOptions) loadDeck() (*content.Deck, error) {
	if o.ContentPath == "" {
		return content.Default()
	}
	return content.Load(o.ContentPath)
}

// themes resolves the selected themes in a stable order.
func (o deckOptions) themes() ([]*theme.Theme, error) {
	if o.ThemeFile != "" {
		th, err := theme.Load(o.ThemeFile)
		if err != nil {
			return nil, err
		}
		return []*theme.Theme{th}, nil
	}

	names := []string{o.Theme}
	if o.Theme == allThemes {
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

func requireFile(path, what string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve %s path: %w", what, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("%s file does not exist: %w", what, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s path %s is a directory", what, abs)
	}
	return nil
}
