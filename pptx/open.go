package pptx

import (
	"fmt"
	"io"
	"os"
)

// Save writes the presentation to a PPTX file.
// This is a convenience wrapper around NewWriter + Save.
func (p *Presentation) Save(path string) error {
	writer, err := NewWriter(p, WriterPowerPoint2007)
	if err != nil {
		return err
	}
	return writer.Save(path)
}

// SaveNew is Save that refuses to replace an existing file.
func (p *Presentation) SaveNew(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("save %s: %w", path, os.ErrExist)
	}
	return p.Save(path)
}

// WriteTo writes the presentation to a writer in PPTX format.
func (p *Presentation) WriteTo(w io.Writer) error {
	writer, err := NewWriter(p, WriterPowerPoint2007)
	if err != nil {
		return err
	}
	return writer.WriteTo(w)
}
