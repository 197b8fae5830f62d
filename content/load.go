package content

import (
	"bytes"
	_ "embed"
	"errors"
	"io"
	"os"
	"reflect"

	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"

	"github.com/VantageDataChat/pitchdeck/internal/validation"
	deckerrors "github.com/VantageDataChat/pitchdeck/pkg/errors"
)

//go:embed telephony.yaml
var defaultYAML []byte

// DefaultSource names the embedded deck in errors.
const DefaultSource = "telephony.yaml"

// Default returns a fresh copy of the embedded deck.
func Default() (*Deck, error) {
	return Parse(DefaultSource, defaultYAML)
}

// Load reads a deck from a YAML file.
func Load(path string) (*Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, deckerrors.NewParseError(path, 0, err)
	}
	return Parse(path, data)
}

// Parse decodes deck YAML, rejecting unknown keys, then normalizes every
// string to NFC and validates the result.
func Parse(source string, data []byte) (*Deck, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var d Deck
	if err := dec.Decode(&d); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, deckerrors.NewParseError(source, 0, errors.New("empty deck file"))
		}
		return nil, deckerrors.NewParseError(source, validation.ExtractLine(err), err)
	}

	normalizeStrings(reflect.ValueOf(&d).Elem())
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

// Validate checks required fields, tag names and section sizes.
func (d *Deck) Validate() error {
	return validation.Struct(d)
}

// FileName returns the output file name for a theme suffix, for example
// "Telephony_Manager_Demo_Light.pptx".
func (d *Deck) FileName(suffix string) string {
	return d.Meta.FileBase + suffix + ".pptx"
}

// normalizeStrings rewrites every string reachable from v in NFC so that
// text typed with combining marks measures and renders like precomposed text.
func normalizeStrings(v reflect.Value) {
	switch v.Kind() {
	case reflect.String:
		if v.CanSet() {
			v.SetString(norm.NFC.String(v.String()))
		}
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			normalizeStrings(v.Field(i))
		}
	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			normalizeStrings(v.Index(i))
		}
	case reflect.Pointer:
		if !v.IsNil() {
			normalizeStrings(v.Elem())
		}
	}
}
