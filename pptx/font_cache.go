package pptx

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// fontKey uniquely identifies a font face by name, size and weight.
type fontKey struct {
	name    string
	size    float64
	bold    bool
	measure bool
}

// FontCache caches the faces built from registered fonts.
//
// Every cache starts with the Go fonts registered as the fallback family, so
// previews and layout checks are reproducible on machines that have none of
// the deck's typefaces installed. Additional families can be registered with
// LoadFont or LoadFontData.
//
// Faces keep scratch buffers, so a FontCache must not be shared between
// goroutines that draw at the same time. Parsed fonts are shared.
type FontCache struct {
	mu       sync.RWMutex
	regular  map[string]*opentype.Font // lowercase family -> regular weight
	bold     map[string]*opentype.Font // lowercase family -> bold weight
	faces    map[fontKey]font.Face
	fallback string
}

const goFontFamily = "go"

// NewFontCache creates a FontCache holding the embedded Go fonts.
func NewFontCache() *FontCache {
	fc := &FontCache{
		regular:  make(map[string]*opentype.Font),
		bold:     make(map[string]*opentype.Font),
		faces:    make(map[fontKey]font.Face),
		fallback: goFontFamily,
	}
	regular, bold := goFonts()
	fc.regular[goFontFamily] = regular
	fc.bold[goFontFamily] = bold
	return fc
}

var (
	goRegular, goBold *opentype.Font
	goFontsOnce       sync.Once
)

// goFonts parses the embedded Go fonts once per process.
func goFonts() (regular, bold *opentype.Font) {
	goFontsOnce.Do(func() {
		var err error
		// The embedded TTFs are known-good; a parse failure is a build defect.
		if goRegular, err = opentype.Parse(goregular.TTF); err != nil {
			panic(err)
		}
		if goBold, err = opentype.Parse(gobold.TTF); err != nil {
			panic(err)
		}
	})
	return goRegular, goBold
}

// GetFace returns a hinted face for drawing. Unknown families resolve to
// the fallback family.
func (fc *FontCache) GetFace(name string, sizePt float64, bold bool) font.Face {
	return fc.face(fontKey{name: strings.ToLower(name), size: sizePt, bold: bold})
}

// GetMeasureFace returns an unhinted face. Unhinted advances track the
// ideal glyph metrics, which is what line-wrap estimates need.
func (fc *FontCache) GetMeasureFace(name string, sizePt float64, bold bool) font.Face {
	return fc.face(fontKey{name: strings.ToLower(name), size: sizePt, bold: bold, measure: true})
}

func (fc *FontCache) face(key fontKey) font.Face {
	fc.mu.RLock()
	if face, ok := fc.faces[key]; ok {
		fc.mu.RUnlock()
		return face
	}
	fc.mu.RUnlock()

	f := fc.findFont(key.name, key.bold)
	hinting := font.HintingFull
	if key.measure {
		hinting = font.HintingNone
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    key.size,
		DPI:     72,
		Hinting: hinting,
	})
	if err != nil {
		return nil
	}

	fc.mu.Lock()
	defer fc.mu.Unlock()
	if cached, ok := fc.faces[key]; ok {
		return cached
	}
	fc.faces[key] = face
	return face
}

// findFont resolves a family and weight, falling back first to the other
// weight of the same family and then to the fallback family.
func (fc *FontCache) findFont(lower string, bold bool) *opentype.Font {
	fc.mu.RLock()
	defer fc.mu.RUnlock()

	for _, family := range []string{lower, fc.fallback} {
		primary, secondary := fc.regular, fc.bold
		if bold {
			primary, secondary = fc.bold, fc.regular
		}
		if f, ok := primary[family]; ok {
			return f
		}
		if f, ok := secondary[family]; ok {
			return f
		}
	}
	return nil
}

// LoadFont registers a TrueType or OpenType file under the given family name.
func (fc *FontCache) LoadFont(name string, bold bool, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read font %s: %w", path, err)
	}
	return fc.LoadFontData(name, bold, data)
}

// LoadFontData registers font bytes under the given family name.
func (fc *FontCache) LoadFontData(name string, bold bool, data []byte) error {
	f, err := opentype.Parse(data)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", name, err)
	}
	key := strings.ToLower(name)

	fc.mu.Lock()
	defer fc.mu.Unlock()
	if bold {
		fc.bold[key] = f
	} else {
		fc.regular[key] = f
	}
	// Drop faces built from the previous registration.
	for k := range fc.faces {
		if k.name == key {
			delete(fc.faces, k)
		}
	}
	return nil
}
