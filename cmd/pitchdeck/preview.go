package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/VantageDataChat/pitchdeck/compose"
	"github.com/VantageDataChat/pitchdeck/internal/logger"
	"github.com/VantageDataChat/pitchdeck/pptx"
)

type previewOptions struct {
	deckOptions
	OutDir string
	Width  int
	Format string
}

func newPreviewCmd(root *rootFlags) *cobra.Command {
	opts := previewOptions{}

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render every slide to an image",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.validate(); err != nil {
				return err
			}
			if _, err := imageFormat(opts.Format); err != nil {
				return err
			}
			return runPreview(cmd.Context(), opts, root.log, cmd.OutOrStdout())
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVarP(&opts.OutDir, "out-dir", "o", ".", "Directory the images are written to")
	cmd.Flags().IntVar(&opts.Width, "width", 1280, "Image width in pixels")
	cmd.Flags().StringVar(&opts.Format, "format", "png", "Image format (png, jpg)")

	return cmd
}

func imageFormat(name string) (pptx.ImageFormat, error) {
	switch strings.ToLower(name) {
	case "png":
		return pptx.ImageFormatPNG, nil
	case "jpg", "jpeg":
		return pptx.ImageFormatJPEG, nil
	default:
		return 0, fmt.Errorf("unsupported image format %q (png, jpg)", name)
	}
}

// runPreview renders the slides of each theme in parallel. Rendering only
// reads the finished presentation; each worker measures text with its own
// font cache because faces are not safe for concurrent use.
func runPreview(ctx context.Context, opts previewOptions, log *logger.Logger, out io.Writer) error {
	format, err := imageFormat(opts.Format)
	if err != nil {
		return err
	}
	deck, err := opts.loadDeck()
	if err != nil {
		return err
	}
	themes, err := opts.themes()
	if err != nil {
		return err
	}

	for _, th := range themes {
		p, err := compose.Build(th, deck, compose.WithLogger(log))
		if err != nil {
			return err
		}
		base := strings.TrimSuffix(deck.FileName(th.FileSuffix()), ".pptx")

		paths := make([]string, p.GetSlideCount())
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(runtime.GOMAXPROCS(0))
		for i := range paths {
			i := i
			paths[i] = filepath.Join(opts.OutDir, fmt.Sprintf("%s_slide%02d.%s", base, i+1, format.Extension()))
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				render := &pptx.RenderOptions{
					Width:     opts.Width,
					Format:    format,
					FontCache: pptx.NewFontCache(),
				}
				if err := p.SaveSlideAsImage(i, paths[i], render); err != nil {
					return fmt.Errorf("preview %s slide %d: %w", th.Name(), i+1, err)
				}
				log.WithFields(map[string]any{"theme": th.Name(), "slide": i + 1, "path": paths[i]}).Debug("slide rendered")
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}
		for _, path := range paths {
			fmt.Fprintln(out, path)
		}
	}
	return nil
}
