// Package compose builds the pitch deck: one slide per content section,
// laid out with the layout primitives and colored by a theme.
//
// Build is deterministic. The same theme and deck always produce the same
// shapes in the same order, and switching themes changes colors only.
package compose

import (
	"errors"
	"fmt"

	"github.com/VantageDataChat/pitchdeck/content"
	"github.com/VantageDataChat/pitchdeck/internal/logger"
	"github.com/VantageDataChat/pitchdeck/layout"
	deckerrors "github.com/VantageDataChat/pitchdeck/pkg/errors"
	"github.com/VantageDataChat/pitchdeck/pptx"
	"github.com/VantageDataChat/pitchdeck/theme"
)

// Option configures Build.
type Option func(*config)

type config struct {
	log     *logger.Logger
	creator string
}

// WithLogger sets the logger used for per-slide debug events.
func WithLogger(log *logger.Logger) Option {
	return func(c *config) { c.log = log }
}

// WithCreator overrides the document creator recorded in the deck.
func WithCreator(name string) Option {
	return func(c *config) { c.creator = name }
}

// section builds one slide.
type section struct {
	name  string
	build func(*slideBuilder, *content.Deck)
}

// sections is the deck outline, in slide order.
var sections = []section{
	{"title", buildTitle},
	{"problem", buildProblem},
	{"features", buildFeatures},
	{"tech-stack", buildTechStack},
	{"architecture", buildArchitecture},
	{"bridge", buildBridge},
	{"notifications", buildNotifications},
	{"models", buildModels},
	{"regression", buildRegression},
	{"closing", buildClosing},
}

// SectionNames returns the slide names in deck order.
func SectionNames() []string {
	names := make([]string, len(sections))
	for i, s := range sections {
		names[i] = s.name
	}
	return names
}

// Build validates th and deck, then composes every section onto a new
// presentation sized to the theme canvas. Persisting the result is up to
// the caller.
func Build(th *theme.Theme, deck *content.Deck, opts ...Option) (*pptx.Presentation, error) {
	if th == nil {
		return nil, errors.New("compose: nil theme")
	}
	if deck == nil {
		return nil, errors.New("compose: nil deck")
	}
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := th.Validate(); err != nil {
		return nil, fmt.Errorf("compose: %w", err)
	}
	if err := deck.Validate(); err != nil {
		return nil, fmt.Errorf("compose: %w", err)
	}

	canvas := th.Canvas()
	p := pptx.NewWithSize(canvas.Width, canvas.Height)
	setProperties(p.GetDocumentProperties(), deck.Meta, th, cfg.creator)

	log := cfg.log.With("theme", th.Name())
	for i, sec := range sections {
		slide := p.CreateSlide()
		slide.SetName(sec.name)
		sec.build(newSlideBuilder(slide, th), deck)

		log.WithFields(map[string]any{
			"slide":   i + 1,
			"section": sec.name,
			"shapes":  slide.GetShapeCount(),
		}).Debug("slide composed")
	}
	return p, nil
}

func setProperties(props *pptx.DocumentProperties, meta content.Meta, th *theme.Theme, creator string) {
	props.Title = meta.Title
	props.Subject = meta.Subject
	props.Company = meta.Company
	props.Description = fmt.Sprintf("%s theme", th.Name())
	if creator == "" {
		creator = meta.Creator
	}
	if creator != "" {
		props.Creator = creator
		props.LastModifiedBy = creator
	}
}

// SaveOptions controls Save.
type SaveOptions struct {
	Logger *logger.Logger
	// NoClobber refuses to replace an existing file.
	NoClobber bool
}

// Save writes p to path. Failures are returned as *errors.OutputError and
// leave no file behind.
func Save(p *pptx.Presentation, path string, opts SaveOptions) error {
	save := p.Save
	if opts.NoClobber {
		save = p.SaveNew
	}
	if err := save(path); err != nil {
		opts.Logger.With("path", path).Error(err, "save failed")
		return deckerrors.NewOutputError(path, err)
	}
	opts.Logger.WithFields(map[string]any{
		"path":   path,
		"slides": p.GetSlideCount(),
	}).Info("deck saved")
	return nil
}

// slideBuilder pairs a canvas with the theme it is painted in.
type slideBuilder struct {
	*layout.Canvas
	th *theme.Theme
}

func newSlideBuilder(slide *pptx.Slide, th *theme.Theme) *slideBuilder {
	return &slideBuilder{Canvas: layout.NewCanvas(slide, th.Typeface()), th: th}
}

func (b *slideBuilder) color(name theme.ColorName) pptx.Color {
	return b.th.Color(name)
}

func (b *slideBuilder) tag(t theme.Tag) pptx.Color {
	return b.th.Color(t.Color())
}
