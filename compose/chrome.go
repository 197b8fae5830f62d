package compose

import (
	"github.com/VantageDataChat/pitchdeck/content"
	"github.com/VantageDataChat/pitchdeck/layout"
	"github.com/VantageDataChat/pitchdeck/pptx"
	"github.com/VantageDataChat/pitchdeck/theme"
)

// Title bar geometry shared by every slide after the first.
var (
	titleRect     = layout.R(0.6, 0.3, 12, 0.7)
	underlineRect = layout.R(0.6, 1.0, 2, 0.04)
)

const (
	stripHeight = 0.06
	titleSize   = 30
)

// accentStrip draws the thin full-width bar along the top edge.
func (b *slideBuilder) accentStrip() {
	b.DrawRule(layout.R(0, 0, b.th.Canvas().Width, stripHeight), b.color(theme.Accent))
}

// titleChrome fills the background and draws the strip, the slide title
// and its underline.
func (b *slideBuilder) titleChrome(title string) {
	b.FillBackground(b.color(theme.Background))
	b.accentStrip()
	b.DrawText(titleRect, title, layout.TextStyle{Size: titleSize, Color: b.color(theme.TextTitle), Bold: true})
	b.DrawRule(underlineRect, b.color(theme.Accent))
}

// edgeCard is a card keyed by tag with a subdued outline.
func (b *slideBuilder) edgeCard(r layout.Rect, tag theme.Tag) {
	b.DrawOutlinedCard(r, b.color(theme.Tint(tag)), b.color(theme.Edge(tag)))
}

// tagCard is a card keyed by tag and outlined in the tag color.
func (b *slideBuilder) tagCard(r layout.Rect, tag theme.Tag) {
	b.DrawOutlinedCard(r, b.color(theme.Tint(tag)), b.tag(tag))
}

// panel is a wide summary panel outlined in the tag color.
func (b *slideBuilder) panel(r layout.Rect, tag theme.Tag) {
	b.DrawOutlinedCard(r, b.color(theme.Panel(tag)), b.tag(tag))
}

// neutralCard is an untagged content card.
func (b *slideBuilder) neutralCard(r layout.Rect) {
	b.DrawOutlinedCard(r, b.color(theme.Surface), b.color(theme.Outline))
}

// heading draws a bold card heading.
func (b *slideBuilder) heading(r layout.Rect, text string, size int, color pptx.Color) {
	b.DrawText(r, text, layout.TextStyle{Size: size, Color: color, Bold: true})
}

// centered draws center-aligned text.
func (b *slideBuilder) centered(r layout.Rect, text string, size int, color pptx.Color, bold bool) {
	b.DrawText(r, text, layout.TextStyle{Size: size, Color: color, Bold: bold, Align: pptx.HorizontalCenter})
}

// muted draws small secondary text.
func (b *slideBuilder) muted(r layout.Rect, text string, size int) {
	b.DrawText(r, text, layout.TextStyle{Size: size, Color: b.color(theme.TextMuted)})
}

// bullets draws a bullet list in body color with tag-colored glyphs.
func (b *slideBuilder) bullets(r layout.Rect, items []string, size int, tag theme.Tag) {
	b.DrawBulletList(r, items, layout.BulletStyle{
		Size:        size,
		Color:       b.color(theme.TextBody),
		BulletColor: b.tag(tag),
	})
}

// callout draws a panel heading over body lines.
func (b *slideBuilder) callout(r layout.Rect, c content.Callout, headingSize, bodySize int, headingColor, bodyColor pptx.Color) {
	lines := make([]layout.Line, 0, len(c.Lines)+1)
	lines = append(lines, layout.Line{Text: c.Heading, Size: headingSize, Color: headingColor, Bold: true})
	for _, l := range c.Lines {
		lines = append(lines, layout.Line{Text: l, Size: bodySize})
	}
	b.DrawStyledLines(r, lines, layout.TextStyle{Color: bodyColor})
}

// connector draws a glyph joining two diagram elements.
func (b *slideBuilder) connector(r layout.Rect, glyph string, size int, color pptx.Color) {
	b.centered(r, glyph, size, color, true)
}
