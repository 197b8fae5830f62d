package pptx

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/image/font"
)

// IssueKind classifies a layout finding.
type IssueKind string

const (
	IssueOffCanvas    IssueKind = "off-canvas"
	IssueTextOverflow IssueKind = "text-overflow"
)

// LayoutIssue is one finding from CheckLayout. Slide and Shape are 1-based.
type LayoutIssue struct {
	Slide   int
	Shape   int
	Name    string
	Kind    IssueKind
	Message string
}

func (i LayoutIssue) String() string {
	name := i.Name
	if name == "" {
		name = fmt.Sprintf("shape %d", i.Shape)
	}
	return fmt.Sprintf("slide %d, %s: %s: %s", i.Slide, name, i.Kind, i.Message)
}

// CheckOptions tunes CheckLayout.
type CheckOptions struct {
	// Tolerance is how far, in inches, text may run past the bottom of its
	// box before it is reported. Default: 0.1.
	Tolerance float64
	// FontCache supplies measuring faces. Nil means a fresh cache.
	FontCache *FontCache
}

// CheckLayout reports shapes that leave the canvas and text boxes whose
// wrapped text is taller than the box. It never modifies the presentation.
//
// Heights are estimates: runs are measured with the Go fonts, whose metrics
// differ somewhat from the typefaces named in the deck.
func (p *Presentation) CheckLayout(opts *CheckOptions) []LayoutIssue {
	if opts == nil {
		opts = &CheckOptions{}
	}
	tolerance := opts.Tolerance
	if tolerance <= 0 {
		tolerance = 0.1
	}
	fc := opts.FontCache
	if fc == nil {
		fc = NewFontCache()
	}

	var issues []LayoutIssue
	for si, slide := range p.slides {
		for shi, shape := range slide.shapes {
			if shape == nil {
				continue
			}
			b := shape.base()
			issue := LayoutIssue{Slide: si + 1, Shape: shi + 1, Name: b.name}

			if b.offsetX < 0 || b.offsetY < 0 ||
				b.offsetX+b.width > p.layout.CX || b.offsetY+b.height > p.layout.CY {
				issue.Kind = IssueOffCanvas
				issue.Message = fmt.Sprintf("rect (%.2f, %.2f, %.2f, %.2f) exceeds %.2f x %.2f canvas",
					EMUToInch(b.offsetX), EMUToInch(b.offsetY), EMUToInch(b.width), EMUToInch(b.height),
					EMUToInch(p.layout.CX), EMUToInch(p.layout.CY))
				issues = append(issues, issue)
			}

			rt, ok := shape.(*RichTextShape)
			if !ok || len(rt.paragraphs) == 0 {
				continue
			}
			need := measureTextHeight(fc, rt)
			if excess := need - b.height; excess > Inch(tolerance) {
				issue.Kind = IssueTextOverflow
				issue.Message = fmt.Sprintf("text needs %.2fin, box is %.2fin",
					EMUToInch(need), EMUToInch(b.height))
				issues = append(issues, issue)
			}
		}
	}
	return issues
}

// measureTextHeight estimates the rendered height of a text box in EMU,
// including the default top and bottom insets.
func measureTextHeight(fc *FontCache, rt *RichTextShape) int64 {
	width := rt.width - 2*bodyInsetX
	total := int64(2 * bodyInsetY)
	for _, para := range rt.paragraphs {
		if para == nil {
			continue
		}
		lines, lineHeight := measureParagraph(fc, para, width, rt.wordWrap)
		total += int64(lines)*lineHeight + int64(para.spaceAfter)*emuPerPoint/100
	}
	return total
}

// measureParagraph returns the number of wrapped lines and the height of the
// tallest run's line, in EMU. Faces are built at 72 dpi with the size given
// in points, so one pixel of advance is one point.
func measureParagraph(fc *FontCache, para *Paragraph, width int64, wrap bool) (int, int64) {
	var lineHeight int64
	// Advance of each word in points, leading space included. A negative
	// entry marks a line feed.
	var words []float64
	for _, tr := range para.elements {
		f := tr.font
		if f == nil {
			f = NewFont()
		}
		face := fc.GetMeasureFace(f.Name, float64(f.Size), f.Bold)
		if face == nil {
			continue
		}
		// PowerPoint's single line spacing is about 1.2x the font size.
		if h := int64(math.Round(float64(f.Size) * 1.2 * emuPerPoint)); h > lineHeight {
			lineHeight = h
		}
		for i, segment := range strings.Split(tr.text, "\n") {
			if i > 0 {
				words = append(words, lineFeed)
			}
			words = append(words, wordAdvances(face, segment)...)
		}
	}
	if lineHeight == 0 {
		lineHeight = int64(NewFont().Size) * 12 * emuPerPoint / 10
	}
	limit := math.Inf(1)
	if wrap && width > 0 {
		limit = EMUToPoint(width)
	}
	lines := 1
	cur := 0.0
	for _, w := range words {
		if w == lineFeed {
			lines++
			cur = 0
			continue
		}
		if cur > 0 && cur+w > limit {
			lines++
			cur = 0
		}
		cur += w
	}
	return lines, lineHeight
}

const lineFeed = -1.0

func wordAdvances(face font.Face, text string) []float64 {
	var out []float64
	for i, w := range strings.Fields(text) {
		if i > 0 || strings.HasPrefix(text, " ") {
			w = " " + w
		}
		adv := font.MeasureString(face, w)
		out = append(out, float64(adv)/64)
	}
	return out
}
