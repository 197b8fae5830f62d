package pptx

import "strings"

// Slide is one canvas in the presentation. Shapes are kept in draw order.
type Slide struct {
	name       string
	shapes     []Shape
	background *Fill
}

func newSlide() *Slide {
	return &Slide{shapes: make([]Shape, 0)}
}

// GetName returns the slide name.
func (s *Slide) GetName() string { return s.name }

// SetName sets the slide name written to the cSld element.
func (s *Slide) SetName(name string) { s.name = name }

// SetBackground replaces the slide background with a solid fill.
// The last call wins.
func (s *Slide) SetBackground(c Color) {
	s.background = NewFill().SetSolid(c)
}

// GetBackground returns the background fill, or nil if none was set.
func (s *Slide) GetBackground() *Fill {
	return s.background
}

// CreateRichTextShape adds an empty text box to the slide.
func (s *Slide) CreateRichTextShape() *RichTextShape {
	rt := NewRichTextShape()
	s.shapes = append(s.shapes, rt)
	return rt
}

// CreateTextBox adds an empty text box at the given position and size (EMU).
func (s *Slide) CreateTextBox(x, y, w, h int64) *RichTextShape {
	rt := s.CreateRichTextShape()
	rt.SetPosition(x, y)
	rt.SetSize(w, h)
	return rt
}

// CreateAutoShape adds a rectangle auto shape to the slide.
func (s *Slide) CreateAutoShape() *AutoShape {
	as := NewAutoShape()
	s.shapes = append(s.shapes, as)
	return as
}

// CreateRoundedRectangle adds a rounded rectangle at the given position and size (EMU).
func (s *Slide) CreateRoundedRectangle(x, y, w, h int64) *AutoShape {
	as := s.CreateAutoShape()
	as.SetAutoShapeType(AutoShapeRoundedRect)
	as.SetPosition(x, y)
	as.SetSize(w, h)
	return as
}

// GetShapes returns all shapes in draw order.
func (s *Slide) GetShapes() []Shape {
	return s.shapes
}

// GetShapeCount returns the number of shapes.
func (s *Slide) GetShapeCount() int {
	return len(s.shapes)
}

// ExtractText returns the text of every text box on the slide.
func (s *Slide) ExtractText() string {
	var parts []string
	for _, shape := range s.shapes {
		if rt, ok := shape.(*RichTextShape); ok {
			parts = append(parts, extractParagraphsText(rt.paragraphs)...)
		}
	}
	return strings.Join(parts, "\n")
}
