package layout

import "github.com/VantageDataChat/pitchdeck/pptx"

const (
	// BulletGlyph prefixes every bullet list item.
	BulletGlyph = "●  "
	// CardBorderWidth is the outline width of outlined cards, in points.
	CardBorderWidth = 1.5
	// StyledLineSpacing is the space after each styled line, in points.
	StyledLineSpacing = 6
	// BulletSpacing is the space after each bullet item, in points.
	BulletSpacing = 8

	defaultTextSize   = 18
	defaultLineSize   = 16
	defaultBulletSize = 15
)

// TextStyle formats a single run of text. Zero Size means 18pt and an empty
// Align means left.
type TextStyle struct {
	Size  int
	Color pptx.Color
	Bold  bool
	Align pptx.HorizontalAlignment
}

// Line is one entry of a styled-line block. Zero Size and an empty Color
// fall back to the block defaults.
type Line struct {
	Text  string
	Size  int
	Color pptx.Color
	Bold  bool
}

// BulletStyle formats a bullet list. The glyph is drawn two points smaller
// than the item text. Zero Size means 15pt.
type BulletStyle struct {
	Size        int
	Color       pptx.Color
	BulletColor pptx.Color
}

// Canvas draws primitives onto one slide. Every run it creates uses the
// canvas typeface.
type Canvas struct {
	slide    *pptx.Slide
	typeface string
}

// NewCanvas binds a canvas to slide.
func NewCanvas(slide *pptx.Slide, typeface string) *Canvas {
	return &Canvas{slide: slide, typeface: typeface}
}

// Slide returns the slide being drawn on.
func (c *Canvas) Slide() *pptx.Slide { return c.slide }

// FillBackground sets the slide background. Calling it again replaces the
// previous color.
func (c *Canvas) FillBackground(color pptx.Color) {
	c.slide.SetBackground(color)
}

// DrawCard adds a borderless rounded rectangle.
func (c *Canvas) DrawCard(r Rect, fill pptx.Color) *pptx.AutoShape {
	x, y, w, h := r.EMU()
	card := c.slide.CreateRoundedRectangle(x, y, w, h)
	card.SetSolidFill(fill)
	return card
}

// DrawOutlinedCard adds a rounded rectangle with a CardBorderWidth outline.
func (c *Canvas) DrawOutlinedCard(r Rect, fill, border pptx.Color) *pptx.AutoShape {
	card := c.DrawCard(r, fill)
	card.GetBorder().SetSolid(border, CardBorderWidth)
	return card
}

// DrawRule adds a borderless square-cornered bar, used for strips and
// underlines.
func (c *Canvas) DrawRule(r Rect, color pptx.Color) *pptx.AutoShape {
	x, y, w, h := r.EMU()
	bar := c.slide.CreateAutoShape()
	bar.SetPosition(x, y)
	bar.SetSize(w, h)
	bar.SetSolidFill(color)
	return bar
}

// DrawText adds a word-wrapped text box holding one paragraph with one run.
func (c *Canvas) DrawText(r Rect, text string, style TextStyle) *pptx.RichTextShape {
	box := c.textBox(r)
	para := box.CreateParagraph()
	if style.Align != "" {
		para.GetAlignment().SetHorizontal(style.Align)
	}
	c.run(para, text, orDefault(style.Size, defaultTextSize), style.Color, style.Bold)
	return box
}

// DrawStyledLines adds a text box with one paragraph per line, in order.
// Lines with empty text are kept and act as spacers. No lines gives a box
// with no paragraphs.
func (c *Canvas) DrawStyledLines(r Rect, lines []Line, defaults TextStyle) *pptx.RichTextShape {
	box := c.textBox(r)
	defaultSize := orDefault(defaults.Size, defaultLineSize)
	for _, line := range lines {
		para := box.CreateParagraph()
		para.SetSpaceAfterPoints(StyledLineSpacing)
		if defaults.Align != "" {
			para.GetAlignment().SetHorizontal(defaults.Align)
		}
		color := line.Color
		if color.ARGB == "" {
			color = defaults.Color
		}
		c.run(para, line.Text, orDefault(line.Size, defaultSize), color, line.Bold)
	}
	return box
}

// DrawBulletList adds a text box with one paragraph per item. Each
// paragraph holds exactly two runs: the bullet glyph, then the item text.
func (c *Canvas) DrawBulletList(r Rect, items []string, style BulletStyle) *pptx.RichTextShape {
	box := c.textBox(r)
	size := orDefault(style.Size, defaultBulletSize)
	for _, item := range items {
		para := box.CreateParagraph()
		para.SetSpaceAfterPoints(BulletSpacing)
		c.run(para, BulletGlyph, size-2, style.BulletColor, false)
		c.run(para, item, size, style.Color, false)
	}
	return box
}

func (c *Canvas) textBox(r Rect) *pptx.RichTextShape {
	x, y, w, h := r.EMU()
	box := c.slide.CreateTextBox(x, y, w, h)
	box.SetWordWrap(true)
	return box
}

func (c *Canvas) run(para *pptx.Paragraph, text string, size int, color pptx.Color, bold bool) *pptx.TextRun {
	tr := para.CreateTextRun(text)
	font := tr.GetFont().SetSize(size).SetBold(bold).SetName(c.typeface)
	if color.ARGB != "" {
		font.SetColor(color)
	}
	return tr
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
