// Package theme holds the immutable color palettes that parameterize a deck.
//
// A Theme maps semantic color names (background, accent, text_muted, ...) to
// concrete colors. Slide code asks for names, never for literal colors, so
// the same composition renders in every theme. Palettes are data: the
// built-in dark and light themes are YAML files embedded in the binary.
package theme

import (
	"fmt"
	"sort"

	"github.com/VantageDataChat/pitchdeck/pptx"
)

// ColorName is a semantic palette entry.
type ColorName string

// Base palette entries.
const (
	Background  ColorName = "background"
	Surface     ColorName = "surface"
	SurfaceAlt  ColorName = "surface_alt"
	Outline     ColorName = "outline"
	Accent      ColorName = "accent"
	AccentAlt   ColorName = "accent_alt"
	Positive    ColorName = "positive"
	Negative    ColorName = "negative"
	Warning     ColorName = "warning"
	Highlight   ColorName = "highlight"
	TextTitle   ColorName = "text_title"
	TextBody    ColorName = "text_body"
	TextMuted   ColorName = "text_muted"
	TextInverse ColorName = "text_inverse"

	// Callout colors the headings of insight panels.
	Callout ColorName = "callout"
	// Subtitle colors the title slide's second line.
	Subtitle ColorName = "subtitle"
)

// Hero card entries, used by the closing thank-you card.
const (
	HeroFill     ColorName = "hero.fill"
	HeroEdge     ColorName = "hero.edge"
	HeroTitle    ColorName = "hero.title"
	HeroSubtitle ColorName = "hero.subtitle"
	HeroBody     ColorName = "hero.body"
	HeroLink     ColorName = "hero.link"
)

// Tag is the category color a piece of content is keyed by. Every tag is
// also a base color name.
type Tag string

const (
	TagAccent    Tag = "accent"
	TagAccentAlt Tag = "accent_alt"
	TagPositive  Tag = "positive"
	TagNegative  Tag = "negative"
	TagWarning   Tag = "warning"
	TagHighlight Tag = "highlight"
)

// Tags returns the known tags in palette order.
func Tags() []Tag {
	return []Tag{TagAccent, TagAccentAlt, TagPositive, TagNegative, TagWarning, TagHighlight}
}

// IsTag reports whether s names a known tag.
func IsTag(s string) bool {
	for _, t := range Tags() {
		if string(t) == s {
			return true
		}
	}
	return false
}

// Color returns the base color name of the tag.
func (t Tag) Color() ColorName { return ColorName(t) }

// Tint is the card fill for content keyed by tag.
func Tint(tag Tag) ColorName { return ColorName("tint." + string(tag)) }

// Edge is the card border for content keyed by tag.
func Edge(tag Tag) ColorName { return ColorName("edge." + string(tag)) }

// Panel is the fill of wide summary panels keyed by tag.
func Panel(tag Tag) ColorName { return ColorName("panel." + string(tag)) }

// Required lists every name a theme must define for a deck to be composed.
func Required() []ColorName {
	names := []ColorName{
		Background, Surface, SurfaceAlt, Outline,
		Accent, AccentAlt, Positive, Negative, Warning, Highlight,
		TextTitle, TextBody, TextMuted, TextInverse,
		Callout, Subtitle,
		HeroFill, HeroEdge, HeroTitle, HeroSubtitle, HeroBody, HeroLink,
	}
	for _, tag := range Tags() {
		names = append(names, Tint(tag), Edge(tag), Panel(tag))
	}
	return names
}

// Canvas is the slide size in inches.
type Canvas struct {
	Width  float64
	Height float64
}

// Theme is an immutable palette plus canvas and typeface. Build one with New,
// Builtin or Load; the zero value is not usable.
type Theme struct {
	name       string
	canvas     Canvas
	typeface   string
	fileSuffix string
	palette    map[ColorName]pptx.Color
}

// New builds a Theme, copying palette. It does not check completeness; call
// Validate for that.
func New(name string, canvas Canvas, typeface, fileSuffix string, palette map[ColorName]pptx.Color) *Theme {
	copied := make(map[ColorName]pptx.Color, len(palette))
	for k, v := range palette {
		copied[k] = v
	}
	return &Theme{
		name:       name,
		canvas:     canvas,
		typeface:   typeface,
		fileSuffix: fileSuffix,
		palette:    copied,
	}
}

func (t *Theme) Name() string       { return t.name }
func (t *Theme) Canvas() Canvas     { return t.canvas }
func (t *Theme) Typeface() string   { return t.typeface }
func (t *Theme) FileSuffix() string { return t.fileSuffix }

// UnknownColorError is returned, or raised by Color, when a theme lacks a name.
type UnknownColorError struct {
	Theme string
	Name  ColorName
}

func (e *UnknownColorError) Error() string {
	return fmt.Sprintf("theme %q has no color %q", e.Theme, e.Name)
}

// Lookup returns the color for name.
func (t *Theme) Lookup(name ColorName) (pptx.Color, error) {
	c, ok := t.palette[name]
	if !ok {
		return pptx.Color{}, &UnknownColorError{Theme: t.name, Name: name}
	}
	return c, nil
}

// Color returns the color for name and panics with *UnknownColorError if the
// theme lacks it. Composition validates the theme first, so a panic here is
// a programming error.
func (t *Theme) Color(name ColorName) pptx.Color {
	c, err := t.Lookup(name)
	if err != nil {
		panic(err)
	}
	return c
}

// Validate checks that every Required name resolves and the canvas is usable.
// It returns the first missing name as *UnknownColorError.
func (t *Theme) Validate() error {
	if t.canvas.Width <= 0 || t.canvas.Height <= 0 {
		return fmt.Errorf("theme %q: canvas %vx%v must be positive", t.name, t.canvas.Width, t.canvas.Height)
	}
	for _, name := range Required() {
		if _, err := t.Lookup(name); err != nil {
			return err
		}
	}
	return nil
}

// Names returns every name the palette defines, sorted.
func (t *Theme) Names() []ColorName {
	names := make([]ColorName, 0, len(t.palette))
	for k := range t.palette {
		names = append(names, k)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}
