package compose

import "github.com/VantageDataChat/pitchdeck/pptx"

// SlideSummary counts the elements on one slide.
type SlideSummary struct {
	Name       string `json:"name"`
	Shapes     int    `json:"shapes"`
	Cards      int    `json:"cards"`
	TextBoxes  int    `json:"text_boxes"`
	Paragraphs int    `json:"paragraphs"`
	Runs       int    `json:"runs"`
}

// Summary describes the structure of a deck independent of its colors.
// Two decks built from the same content in different themes have equal
// summaries.
type Summary struct {
	Slides []SlideSummary `json:"slides"`
}

// Totals adds up the per-slide counts. Name is left empty.
func (s Summary) Totals() SlideSummary {
	var t SlideSummary
	for _, sl := range s.Slides {
		t.Shapes += sl.Shapes
		t.Cards += sl.Cards
		t.TextBoxes += sl.TextBoxes
		t.Paragraphs += sl.Paragraphs
		t.Runs += sl.Runs
	}
	return t
}

// Summarize walks p and counts shapes, text boxes, paragraphs and runs per
// slide.
func Summarize(p *pptx.Presentation) Summary {
	var sum Summary
	for _, slide := range p.GetAllSlides() {
		ss := SlideSummary{Name: slide.GetName(), Shapes: slide.GetShapeCount()}
		for _, shape := range slide.GetShapes() {
			switch s := shape.(type) {
			case *pptx.AutoShape:
				ss.Cards++
			case *pptx.RichTextShape:
				ss.TextBoxes++
				for _, para := range s.GetParagraphs() {
					ss.Paragraphs++
					ss.Runs += len(para.GetRuns())
				}
			}
		}
		sum.Slides = append(sum.Slides, ss)
	}
	return sum
}
