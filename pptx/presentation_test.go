package pptx

import (
	"strings"
	"testing"
)

func TestNewPresentationIsEmpty(t *testing.T) {
	p := New()
	if p.GetSlideCount() != 0 {
		t.Fatalf("expected 0 slides, got %d", p.GetSlideCount())
	}
	if _, err := p.GetSlide(0); err == nil {
		t.Error("expected error for GetSlide on empty presentation")
	}
	if p.GetLayout().Name != LayoutScreen16x9 {
		t.Errorf("expected default 16:9 layout, got %s", p.GetLayout().Name)
	}
}

func TestCreateSlideAppendsInOrder(t *testing.T) {
	p := New()
	a := p.CreateSlide()
	b := p.CreateSlide()
	a.SetName("first")
	b.SetName("second")

	if p.GetSlideCount() != 2 {
		t.Fatalf("expected 2 slides, got %d", p.GetSlideCount())
	}
	got, err := p.GetSlide(1)
	if err != nil {
		t.Fatalf("GetSlide(1): %v", err)
	}
	if got != b {
		t.Error("GetSlide(1) did not return the second slide")
	}
	if p.GetAllSlides()[0].GetName() != "first" {
		t.Error("slides reordered")
	}
}

func TestCustomLayout(t *testing.T) {
	p := NewWithSize(13.33, 7.5)
	l := p.GetLayout()
	if l.Name != LayoutCustom {
		t.Errorf("expected custom layout, got %s", l.Name)
	}
	if l.CX != Inch(13.33) || l.CY != Inch(7.5) {
		t.Errorf("unexpected canvas %d x %d", l.CX, l.CY)
	}
	if w := l.WidthInches(); w < 13.329 || w > 13.331 {
		t.Errorf("WidthInches = %v", w)
	}

	l.SetCustomLayout(0, -1)
	if l.CX != 12192000 || l.CY != 6858000 {
		t.Errorf("non-positive sizes should fall back to defaults, got %d x %d", l.CX, l.CY)
	}

	l.SetLayout(LayoutScreen4x3)
	if l.CX != 9144000 || l.Name != LayoutScreen4x3 {
		t.Errorf("SetLayout(4x3) = %d %s", l.CX, l.Name)
	}
	l.SetLayout("bogus")
	if l.Name != LayoutScreen4x3 {
		t.Error("unknown layout name should be ignored")
	}
}

func TestBackgroundLastCallWins(t *testing.T) {
	slide := New().CreateSlide()
	if slide.GetBackground() != nil {
		t.Fatal("new slide should have no background")
	}
	slide.SetBackground(NewColor("0F111A"))
	slide.SetBackground(NewColor("F8F9FC"))

	bg := slide.GetBackground()
	if bg.Type != FillSolid || bg.Color.Hex() != "F8F9FC" {
		t.Errorf("background = %+v", bg)
	}
}

func TestTextBoxParagraphs(t *testing.T) {
	slide := New().CreateSlide()
	tb := slide.CreateTextBox(Inch(1), Inch(2), Inch(3), Inch(4))

	if len(tb.GetParagraphs()) != 0 {
		t.Fatalf("new text box should have no paragraphs")
	}
	if !tb.GetWordWrap() {
		t.Error("word wrap should default to on")
	}
	if tb.GetOffsetX() != Inch(1) || tb.GetHeight() != Inch(4) {
		t.Errorf("unexpected geometry %d,%d", tb.GetOffsetX(), tb.GetHeight())
	}

	first := tb.CreateParagraph()
	first.CreateTextRun("one")
	first.CreateTextRun(" two")
	second := tb.CreateParagraph()
	second.CreateTextRun("three")

	paras := tb.GetParagraphs()
	if len(paras) != 2 || paras[0] != first || paras[1] != second {
		t.Fatal("paragraphs not kept in creation order")
	}
	if len(first.GetRuns()) != 2 {
		t.Errorf("expected 2 runs, got %d", len(first.GetRuns()))
	}
	if tb.Text() != "one two\nthree" {
		t.Errorf("Text() = %q", tb.Text())
	}

	// The active-paragraph shortcut targets the last created paragraph.
	tb.CreateTextRun("!")
	if len(second.GetRuns()) != 2 {
		t.Error("CreateTextRun should append to the active paragraph")
	}
}

func TestGetActiveParagraphCreatesOne(t *testing.T) {
	tb := NewRichTextShape()
	p := tb.GetActiveParagraph()
	if p == nil || len(tb.GetParagraphs()) != 1 {
		t.Fatal("GetActiveParagraph should create the first paragraph")
	}
	if tb.GetActiveParagraph() != p {
		t.Error("GetActiveParagraph should be stable")
	}
}

func TestAutoShape(t *testing.T) {
	slide := New().CreateSlide()
	card := slide.CreateRoundedRectangle(Inch(0.5), Inch(1.3), Inch(2.95), Inch(2.6))
	if card.GetAutoShapeType() != AutoShapeRoundedRect {
		t.Errorf("expected roundRect, got %s", card.GetAutoShapeType())
	}
	if card.HasBorder() {
		t.Error("new shape should have no border")
	}
	card.GetBorder().SetSolid(NewColor("333344"), 1.5)
	if !card.HasBorder() {
		t.Error("HasBorder should report a solid border")
	}
	if card.GetBorder().Width != 19050 {
		t.Errorf("1.5pt border = %d EMU, expected 19050", card.GetBorder().Width)
	}
	if card.GetType() != ShapeTypeAutoShape || card.GetType().String() != "autoshape" {
		t.Errorf("unexpected type %v", card.GetType())
	}
	if slide.GetShapeCount() != 1 {
		t.Errorf("expected 1 shape, got %d", slide.GetShapeCount())
	}
}

func TestExtractText(t *testing.T) {
	p := New()
	s1 := p.CreateSlide()
	s1.CreateTextBox(0, 0, 1, 1).CreateParagraph().CreateTextRun("Hello")
	s1.CreateRoundedRectangle(0, 0, 1, 1)
	s2 := p.CreateSlide()
	s2.CreateTextBox(0, 0, 1, 1)
	s3 := p.CreateSlide()
	s3.CreateTextBox(0, 0, 1, 1).CreateParagraph().CreateTextRun("World")

	if got := p.ExtractText(); got != "Hello\nWorld" {
		t.Errorf("ExtractText() = %q", got)
	}
}

func TestValidate(t *testing.T) {
	p := New()
	err := p.Validate()
	if err == nil || !strings.Contains(err.Error(), "at least one slide") {
		t.Fatalf("expected empty-deck error, got %v", err)
	}

	slide := p.CreateSlide()
	tb := slide.CreateTextBox(0, 0, Inch(1), Inch(1))
	tb.CreateParagraph().CreateTextRun("ok")
	if err := p.Validate(); err != nil {
		t.Fatalf("expected valid presentation, got %v", err)
	}

	tb.GetParagraphs()[0].GetRuns()[0].GetFont().SetColor(Color{ARGB: "nothex"})
	card := slide.CreateRoundedRectangle(0, 0, -1, Inch(1))
	card.GetBorder().Style = BorderSolid

	err = p.Validate()
	if err == nil {
		t.Fatal("expected validation errors")
	}
	for _, want := range []string{"color is invalid", "width is negative", "border width must be positive"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("validation error missing %q:\n%v", want, err)
		}
	}
}

func TestColors(t *testing.T) {
	c := NewColor("#6c5ce7")
	if c.ARGB != "FF6C5CE7" {
		t.Errorf("NewColor = %s", c.ARGB)
	}
	if c.GetRed() != 0x6C || c.GetGreen() != 0x5C || c.GetBlue() != 0xE7 || c.GetAlpha() != 0xFF {
		t.Errorf("components wrong for %s", c)
	}
	if c.String() != "#6C5CE7" {
		t.Errorf("String() = %s", c.String())
	}
	if NewColor("zzz") != ColorBlack {
		t.Error("invalid input should fall back to black")
	}
	if _, err := ParseColor("12345"); err == nil {
		t.Error("ParseColor should reject 5 digits")
	}
	if RGBColor(255, 165, 2).Hex() != "FFA502" {
		t.Errorf("RGBColor = %s", RGBColor(255, 165, 2).Hex())
	}
}

func TestFontClamping(t *testing.T) {
	f := NewFont()
	if f.SetSize(0).Size != 1 {
		t.Error("size below 1 should clamp to 1")
	}
	if f.SetSize(5000).Size != 4000 {
		t.Error("size above 4000 should clamp to 4000")
	}
}

func TestMeasurements(t *testing.T) {
	if Inch(1) != 914400 {
		t.Errorf("1 inch = %d EMU, expected 914400", Inch(1))
	}
	if Point(1) != 12700 {
		t.Errorf("1 point = %d EMU, expected 12700", Point(1))
	}
	if Inch(0.5+3*1.05) != Inch(3.65) {
		t.Errorf("rounding drift: %d vs %d", Inch(0.5+3*1.05), Inch(3.65))
	}
	if EMUToInch(Inch(2.5)) != 2.5 {
		t.Errorf("EMUToInch round-trip failed")
	}
	if EMUToPoint(Point(72)) != 72 {
		t.Errorf("EMUToPoint round-trip failed")
	}
}
