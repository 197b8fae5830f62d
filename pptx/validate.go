package pptx

import (
	"fmt"
	"strings"
)

// Validate checks the presentation for structural issues and returns an error
// describing all problems found, or nil if the presentation is valid.
func (p *Presentation) Validate() error {
	var errs []string

	if p.properties == nil {
		errs = append(errs, "document properties are nil")
	}
	if p.layout == nil {
		errs = append(errs, "document layout is nil")
	} else {
		if p.layout.CX <= 0 {
			errs = append(errs, "layout width (CX) must be positive")
		}
		if p.layout.CY <= 0 {
			errs = append(errs, "layout height (CY) must be positive")
		}
	}
	if len(p.slides) == 0 {
		errs = append(errs, "presentation must have at least one slide")
	}

	for i, slide := range p.slides {
		prefix := fmt.Sprintf("slide %d", i+1)
		if slide == nil {
			errs = append(errs, prefix+": slide is nil")
			continue
		}
		for _, e := range validateSlide(slide) {
			errs = append(errs, prefix+": "+e)
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("validation failed:\n  %s", strings.Join(errs, "\n  "))
}

func validateSlide(s *Slide) []string {
	var errs []string
	if s.background != nil && s.background.Type == FillSolid && !isValidARGB(s.background.Color.ARGB) {
		errs = append(errs, "background color is invalid ARGB")
	}
	for j, shape := range s.shapes {
		prefix := fmt.Sprintf("shape %d", j+1)
		if shape == nil {
			errs = append(errs, prefix+": shape is nil")
			continue
		}
		if shape.GetWidth() < 0 {
			errs = append(errs, prefix+": width is negative")
		}
		if shape.GetHeight() < 0 {
			errs = append(errs, prefix+": height is negative")
		}

		b := shape.base()
		if b.fill != nil && b.fill.Type == FillSolid && !isValidARGB(b.fill.Color.ARGB) {
			errs = append(errs, prefix+": fill color is invalid ARGB")
		}
		if b.border != nil && b.border.Style != BorderNone {
			if !isValidARGB(b.border.Color.ARGB) {
				errs = append(errs, prefix+": border color is invalid ARGB")
			}
			if b.border.Width <= 0 {
				errs = append(errs, prefix+": border width must be positive")
			}
		}

		if sh, ok := shape.(*RichTextShape); ok {
			errs = append(errs, validateParagraphs(sh.paragraphs, prefix)...)
		}
	}
	return errs
}

// validateParagraphs checks paragraph elements for common issues.
func validateParagraphs(paragraphs []*Paragraph, prefix string) []string {
	var errs []string
	for i, para := range paragraphs {
		if para == nil {
			errs = append(errs, fmt.Sprintf("%s: paragraph %d is nil", prefix, i+1))
			continue
		}
		if para.alignment == nil {
			errs = append(errs, fmt.Sprintf("%s: paragraph %d has nil alignment", prefix, i+1))
		}
		if para.spaceAfter < 0 {
			errs = append(errs, fmt.Sprintf("%s: paragraph %d has negative spacing", prefix, i+1))
		}
		for k, tr := range para.elements {
			if tr == nil {
				errs = append(errs, fmt.Sprintf("%s: paragraph %d run %d is nil", prefix, i+1, k+1))
				continue
			}
			if tr.font == nil {
				errs = append(errs, fmt.Sprintf("%s: paragraph %d run %d has nil font", prefix, i+1, k+1))
				continue
			}
			if !isValidARGB(tr.font.Color.ARGB) {
				errs = append(errs, fmt.Sprintf("%s: paragraph %d run %d color is invalid ARGB", prefix, i+1, k+1))
			}
		}
	}
	return errs
}
