// Package pptx is the document surface of pitchdeck: an in-memory
// presentation model and a writer that serializes it as an Office Open XML
// (.pptx) package.
//
// A Presentation starts empty. Slides are appended with CreateSlide and are
// never removed or reordered; Save persists the whole deck in one shot.
package pptx

import (
	"errors"
	"strings"
)

// Presentation represents an in-memory PowerPoint presentation.
type Presentation struct {
	properties *DocumentProperties
	slides     []*Slide
	layout     *DocumentLayout
}

// New creates an empty Presentation with a 16:9 canvas.
func New() *Presentation {
	return &Presentation{
		properties: NewDocumentProperties(),
		slides:     make([]*Slide, 0),
		layout:     NewDocumentLayout(),
	}
}

// NewWithSize creates an empty Presentation with a custom canvas in inches.
func NewWithSize(widthIn, heightIn float64) *Presentation {
	p := New()
	p.layout.SetCustomLayout(Inch(widthIn), Inch(heightIn))
	return p
}

// GetDocumentProperties returns the document properties.
func (p *Presentation) GetDocumentProperties() *DocumentProperties {
	return p.properties
}

// SetDocumentProperties sets the document properties.
func (p *Presentation) SetDocumentProperties(props *DocumentProperties) {
	p.properties = props
}

// GetLayout returns the document layout.
func (p *Presentation) GetLayout() *DocumentLayout {
	return p.layout
}

// CreateSlide appends a blank slide and returns it.
func (p *Presentation) CreateSlide() *Slide {
	slide := newSlide()
	p.slides = append(p.slides, slide)
	return slide
}

// GetSlide returns a slide by index.
func (p *Presentation) GetSlide(index int) (*Slide, error) {
	if index < 0 || index >= len(p.slides) {
		return nil, errors.New("slide index out of range")
	}
	return p.slides[index], nil
}

// GetAllSlides returns all slides.
func (p *Presentation) GetAllSlides() []*Slide {
	return p.slides
}

// GetSlideCount returns the number of slides.
func (p *Presentation) GetSlideCount() int {
	return len(p.slides)
}

// ExtractText returns all text content from the presentation as a single string.
func (p *Presentation) ExtractText() string {
	var parts []string
	for _, slide := range p.slides {
		parts = append(parts, slide.ExtractText())
	}
	return joinNonEmpty(parts, "\n")
}

func extractParagraphsText(paragraphs []*Paragraph) []string {
	var parts []string
	for _, para := range paragraphs {
		var sb strings.Builder
		for _, tr := range para.elements {
			sb.WriteString(tr.text)
		}
		if sb.Len() > 0 {
			parts = append(parts, sb.String())
		}
	}
	return parts
}

func joinNonEmpty(parts []string, sep string) string {
	var result []string
	for _, p := range parts {
		if p != "" {
			result = append(result, p)
		}
	}
	return strings.Join(result, sep)
}
