package theme

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/VantageDataChat/pitchdeck/pptx"
)

// ContrastPair is a foreground/background combination the deck relies on.
type ContrastPair struct {
	Foreground ColorName
	Background ColorName
}

// ReadabilityPairs are the text-on-fill combinations used on every slide.
func ReadabilityPairs() []ContrastPair {
	return []ContrastPair{
		{TextTitle, Background},
		{TextBody, Background},
		{TextMuted, Background},
		{TextTitle, Surface},
		{TextBody, Surface},
		{HeroTitle, HeroFill},
		{HeroBody, HeroFill},
	}
}

// Contrast returns the WCAG 2 contrast ratio between two palette entries,
// from 1 (identical luminance) to 21 (black on white).
func (t *Theme) Contrast(fg, bg ColorName) (float64, error) {
	a, err := t.Lookup(fg)
	if err != nil {
		return 0, err
	}
	b, err := t.Lookup(bg)
	if err != nil {
		return 0, err
	}
	return ContrastRatio(a, b), nil
}

// ContrastRatio is the WCAG 2 contrast ratio of two colors.
func ContrastRatio(a, b pptx.Color) float64 {
	la, lb := luminance(a), luminance(b)
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}

func luminance(c pptx.Color) float64 {
	r, g, b := toColorful(c).LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

func toColorful(c pptx.Color) colorful.Color {
	return colorful.Color{
		R: float64(c.GetRed()) / 255,
		G: float64(c.GetGreen()) / 255,
		B: float64(c.GetBlue()) / 255,
	}
}
