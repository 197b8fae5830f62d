package theme

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/VantageDataChat/pitchdeck/internal/validation"
	deckerrors "github.com/VantageDataChat/pitchdeck/pkg/errors"
	"github.com/VantageDataChat/pitchdeck/pptx"
)

//go:embed themes/*.yaml
var builtinFS embed.FS

// themeFile is the on-disk form of a theme.
type themeFile struct {
	Name       string `yaml:"name" validate:"required"`
	Typeface   string `yaml:"typeface" validate:"required"`
	FileSuffix string `yaml:"file_suffix"`
	Canvas     struct {
		Width  float64 `yaml:"width" validate:"gt=0"`
		Height float64 `yaml:"height" validate:"gt=0"`
	} `yaml:"canvas"`
	Palette map[string]string `yaml:"palette" validate:"required,min=1,dive,keys,required,endkeys,hexcolor6"`
}

var (
	builtinOnce  sync.Once
	builtinSet   map[string]*Theme
	builtinErr   error
	builtinOrder []string
)

func loadBuiltins() {
	entries, err := builtinFS.ReadDir("themes")
	if err != nil {
		builtinErr = err
		return
	}
	builtinSet = make(map[string]*Theme, len(entries))
	for _, entry := range entries {
		p := path.Join("themes", entry.Name())
		data, err := builtinFS.ReadFile(p)
		if err != nil {
			builtinErr = err
			return
		}
		t, err := Parse(p, data)
		if err != nil {
			builtinErr = err
			return
		}
		builtinSet[t.Name()] = t
		builtinOrder = append(builtinOrder, t.Name())
	}
	sort.Strings(builtinOrder)
}

// Builtin returns the embedded theme with the given name.
func Builtin(name string) (*Theme, error) {
	builtinOnce.Do(loadBuiltins)
	if builtinErr != nil {
		return nil, fmt.Errorf("load built-in themes: %w", builtinErr)
	}
	t, ok := builtinSet[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown theme %q (available: %s)", name, strings.Join(builtinOrder, ", "))
	}
	return t, nil
}

// Names returns the names of the embedded themes, sorted.
func Names() []string {
	builtinOnce.Do(loadBuiltins)
	return append([]string(nil), builtinOrder...)
}

// Load reads a theme file from disk.
func Load(filePath string) (*Theme, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, deckerrors.NewParseError(filePath, 0, err)
	}
	return Parse(filePath, data)
}

// Parse decodes and validates theme YAML. source names the data in errors.
// Unknown keys are rejected, and the palette must define every Required name.
func Parse(source string, data []byte) (*Theme, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var tf themeFile
	if err := dec.Decode(&tf); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, deckerrors.NewParseError(source, 0, errors.New("empty theme file"))
		}
		return nil, deckerrors.NewParseError(source, validation.ExtractLine(err), err)
	}

	if err := validation.Struct(&tf); err != nil {
		return nil, err
	}

	palette := make(map[ColorName]pptx.Color, len(tf.Palette))
	for name, hex := range tf.Palette {
		c, err := parseHex(hex)
		if err != nil {
			return nil, deckerrors.NewValidationError("palette."+name, err.Error(), err)
		}
		palette[ColorName(name)] = c
	}

	t := New(strings.ToLower(tf.Name), Canvas{Width: tf.Canvas.Width, Height: tf.Canvas.Height},
		tf.Typeface, tf.FileSuffix, palette)
	if err := t.Validate(); err != nil {
		var unknown *UnknownColorError
		if errors.As(err, &unknown) {
			return nil, deckerrors.NewValidationError("palette."+string(unknown.Name), "required color is missing", err)
		}
		return nil, deckerrors.NewValidationError("canvas", err.Error(), err)
	}
	return t, nil
}

// parseHex converts "#RRGGBB" or "RRGGBB" to a document color.
func parseHex(s string) (pptx.Color, error) {
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return pptx.Color{}, err
	}
	r, g, b := c.RGB255()
	return pptx.RGBColor(r, g, b), nil
}
