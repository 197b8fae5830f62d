package pptx

import (
	"bytes"
	"fmt"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestSlideToImageBlankSlide(t *testing.T) {
	p := New()
	p.CreateSlide()
	img, err := p.SlideToImage(0, &RenderOptions{Width: 960})
	if err != nil {
		t.Fatalf("SlideToImage: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 960 {
		t.Errorf("expected width 960, got %d", bounds.Dx())
	}
	// 16:9 => 960:540
	if bounds.Dy() != 540 {
		t.Errorf("expected height 540, got %d", bounds.Dy())
	}
	r, g, b, _ := img.At(10, 10).RGBA()
	if r>>8 != 255 || g>>8 != 255 || b>>8 != 255 {
		t.Errorf("blank slide should render white, got %d,%d,%d", r>>8, g>>8, b>>8)
	}
}

func TestSlideToImageOutOfRange(t *testing.T) {
	p := New()
	if _, err := p.SlideToImage(0, nil); err == nil {
		t.Fatal("expected error for empty presentation")
	}
}

func TestSlideToImageShapes(t *testing.T) {
	p := NewWithSize(13.33, 7.5)
	slide := p.CreateSlide()
	slide.SetBackground(NewColor("0F111A"))

	card := slide.CreateRoundedRectangle(Inch(1), Inch(1), Inch(4), Inch(3))
	card.SetSolidFill(NewColor("6C5CE7"))
	card.GetBorder().SetSolid(NewColor("00E676"), 1.5)

	tb := slide.CreateTextBox(Inch(6), Inch(1), Inch(6), Inch(2))
	run := tb.CreateParagraph().CreateTextRun("Hello, World! This line is long enough to wrap inside the box.")
	run.GetFont().SetSize(28).SetColor(NewColor("FFFFFF"))

	img, err := p.SlideToImage(0, &RenderOptions{Width: 1333})
	if err != nil {
		t.Fatalf("SlideToImage: %v", err)
	}
	rgba := func(x, y int) color.RGBA {
		r, g, b, a := img.At(x, y).RGBA()
		return color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
	}

	// Background outside every shape.
	if got := rgba(5, 700); got != (color.RGBA{0x0F, 0x11, 0x1A, 0xFF}) {
		t.Errorf("background pixel = %v", got)
	}
	// Card centre is filled.
	if got := rgba(300, 250); got != (color.RGBA{0x6C, 0x5C, 0xE7, 0xFF}) {
		t.Errorf("card fill pixel = %v", got)
	}
	// Left edge at mid-height carries the border.
	if got := rgba(100, 250); got != (color.RGBA{0x00, 0xE6, 0x76, 0xFF}) {
		t.Errorf("card border pixel = %v", got)
	}
	// The rounded corner leaves the background visible.
	if got := rgba(100, 100); got != (color.RGBA{0x0F, 0x11, 0x1A, 0xFF}) {
		t.Errorf("rounded corner pixel = %v", got)
	}

	// Some text pixels land inside the text box.
	found := false
	for y := 100; y < 300 && !found; y++ {
		for x := 600; x < 1200; x++ {
			if rgba(x, y).R > 0x80 {
				found = true
				break
			}
		}
	}
	if !found {
		t.Error("no text pixels rendered in the text box")
	}
}

func TestEncodeImagePNG(t *testing.T) {
	p := New()
	p.CreateSlide().SetBackground(NewColor("FFA502"))
	img, err := p.SlideToImage(0, &RenderOptions{Width: 64})
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := EncodeImage(&buf, img, nil); err != nil {
		t.Fatalf("EncodeImage: %v", err)
	}
	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	if decoded.Bounds().Dx() != 64 {
		t.Errorf("decoded width = %d", decoded.Bounds().Dx())
	}
}

func TestSaveSlidesAsImages(t *testing.T) {
	p := New()
	for i := 0; i < 3; i++ {
		p.CreateSlide()
	}
	dir := t.TempDir()
	pattern := filepath.Join(dir, "slide_%d.png")
	if err := p.SaveSlidesAsImages(pattern, &RenderOptions{Width: 32}); err != nil {
		t.Fatalf("SaveSlidesAsImages: %v", err)
	}
	for i := 1; i <= 3; i++ {
		if _, err := os.Stat(fmt.Sprintf(pattern, i)); err != nil {
			t.Errorf("slide %d image missing: %v", i, err)
		}
	}
}

func TestFontCacheFallback(t *testing.T) {
	fc := NewFontCache()
	face := fc.GetFace("Segoe UI", 12, false)
	if face == nil {
		t.Fatal("unknown family should fall back to the Go fonts")
	}
	if fc.GetFace("Segoe UI", 12, false) != face {
		t.Error("faces should be cached")
	}
	if fc.GetMeasureFace("Segoe UI", 12, false) == face {
		t.Error("measure faces are cached separately from drawing faces")
	}
	if fc.GetFace("segoe ui", 12, true) == nil {
		t.Error("bold lookup should fall back too")
	}
}

func TestFontCacheLoadFontDataRejectsGarbage(t *testing.T) {
	if err := NewFontCache().LoadFontData("broken", false, []byte("not a font")); err == nil {
		t.Fatal("expected parse error")
	}
}
