package pptx

import (
	"strings"
	"testing"
)

func TestCheckLayoutClean(t *testing.T) {
	p := NewWithSize(13.33, 7.5)
	slide := p.CreateSlide()
	slide.CreateRoundedRectangle(Inch(0.5), Inch(1.3), Inch(2.95), Inch(2.6))
	tb := slide.CreateTextBox(Inch(0.6), Inch(0.3), Inch(12), Inch(0.7))
	tb.CreateParagraph().CreateTextRun("Key Features").GetFont().SetSize(30).SetBold(true)

	if issues := p.CheckLayout(nil); len(issues) != 0 {
		t.Errorf("expected no issues, got %v", issues)
	}
}

func TestCheckLayoutOffCanvas(t *testing.T) {
	p := NewWithSize(13.33, 7.5)
	card := p.CreateSlide().CreateRoundedRectangle(Inch(12), Inch(6.5), Inch(2), Inch(2))
	card.SetName("stray card")

	issues := p.CheckLayout(nil)
	if len(issues) != 1 {
		t.Fatalf("expected 1 issue, got %v", issues)
	}
	got := issues[0]
	if got.Kind != IssueOffCanvas || got.Slide != 1 || got.Shape != 1 {
		t.Errorf("unexpected issue %+v", got)
	}
	if !strings.HasPrefix(got.String(), "slide 1, stray card: off-canvas:") {
		t.Errorf("String() = %q", got.String())
	}
}

func TestCheckLayoutTextOverflow(t *testing.T) {
	p := NewWithSize(13.33, 7.5)
	slide := p.CreateSlide()
	slide.CreateRoundedRectangle(0, 0, Inch(1), Inch(1))
	tb := slide.CreateTextBox(Inch(1), Inch(1), Inch(2), Inch(0.5))
	for i := 0; i < 6; i++ {
		tb.CreateParagraph().CreateTextRun("a line of body copy that will need to wrap at least once").GetFont().SetSize(14)
	}

	issues := p.CheckLayout(&CheckOptions{Tolerance: 0.05})
	if len(issues) != 1 {
		t.Fatalf("expected 1 issue, got %v", issues)
	}
	if issues[0].Kind != IssueTextOverflow || issues[0].Shape != 2 {
		t.Errorf("unexpected issue %+v", issues[0])
	}
}

func TestCheckLayoutDoesNotModify(t *testing.T) {
	p := NewWithSize(13.33, 7.5)
	tb := p.CreateSlide().CreateTextBox(Inch(-1), 0, Inch(1), Inch(0.1))
	tb.CreateParagraph().CreateTextRun("overflowing text")
	before := tb.GetOffsetX()

	if issues := p.CheckLayout(nil); len(issues) == 0 {
		t.Fatal("expected issues")
	}
	if tb.GetOffsetX() != before || len(tb.GetParagraphs()) != 1 {
		t.Error("CheckLayout modified the presentation")
	}
}

func TestMeasureParagraphWraps(t *testing.T) {
	fc := NewFontCache()
	para := NewParagraph()
	para.CreateTextRun("one two three four five six seven eight nine ten").GetFont().SetSize(20)

	narrow, h := measureParagraph(fc, para, Inch(1), true)
	wide, _ := measureParagraph(fc, para, Inch(20), true)
	unwrapped, _ := measureParagraph(fc, para, Inch(1), false)

	if narrow <= 1 {
		t.Errorf("expected wrapping in a 1in box, got %d line(s)", narrow)
	}
	if wide != 1 || unwrapped != 1 {
		t.Errorf("wide=%d unwrapped=%d, expected single lines", wide, unwrapped)
	}
	if h != Point(24) {
		t.Errorf("line height = %d, expected %d", h, Point(24))
	}
}
