package pptx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// helper: write presentation to buffer and open it as a zip archive
func writeZip(t *testing.T, p *Presentation) *zip.Reader {
	t.Helper()
	var buf bytes.Buffer
	if err := p.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo failed: %v", err)
	}
	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("zip.NewReader failed: %v", err)
	}
	return zr
}

// helper: read one part of a package
func readPart(t *testing.T, zr *zip.Reader, name string) string {
	t.Helper()
	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open %s: %v", name, err)
		}
		defer rc.Close()
		data, err := io.ReadAll(rc)
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		return string(data)
	}
	t.Fatalf("part %s not found", name)
	return ""
}

// helper: one slide with a card and a two-paragraph text box
func sampleDeck() *Presentation {
	p := NewWithSize(13.33, 7.5)
	slide := p.CreateSlide()
	slide.SetBackground(NewColor("0F111A"))

	card := slide.CreateRoundedRectangle(Inch(0.5), Inch(1.3), Inch(2.95), Inch(2.6))
	card.SetSolidFill(NewColor("1A1D2E"))
	card.GetBorder().SetSolid(NewColor("333344"), 1.5)

	tb := slide.CreateTextBox(Inch(0.6), Inch(0.3), Inch(12), Inch(0.7))
	para := tb.CreateParagraph()
	para.SetSpaceAfterPoints(6)
	run := para.CreateTextRun("Title & <more>")
	run.GetFont().SetSize(30).SetBold(true).SetName("Segoe UI").SetColor(NewColor("FFFFFF"))
	tb.CreateParagraph().CreateTextRun("second")
	return p
}

func TestWriteToPackageParts(t *testing.T) {
	p := sampleDeck()
	p.CreateSlide()
	zr := writeZip(t, p)

	want := []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"docProps/app.xml",
		"docProps/core.xml",
		"ppt/presentation.xml",
		"ppt/_rels/presentation.xml.rels",
		"ppt/presProps.xml",
		"ppt/viewProps.xml",
		"ppt/tableStyles.xml",
		"ppt/slideMasters/slideMaster1.xml",
		"ppt/slideMasters/_rels/slideMaster1.xml.rels",
		"ppt/slideLayouts/slideLayout1.xml",
		"ppt/slideLayouts/_rels/slideLayout1.xml.rels",
		"ppt/theme/theme1.xml",
		"ppt/slides/slide1.xml",
		"ppt/slides/_rels/slide1.xml.rels",
		"ppt/slides/slide2.xml",
		"ppt/slides/_rels/slide2.xml.rels",
	}
	have := make(map[string]bool)
	for _, f := range zr.File {
		have[f.Name] = true
	}
	for _, name := range want {
		if !have[name] {
			t.Errorf("missing part %s", name)
		}
	}
	if len(zr.File) != len(want) {
		t.Errorf("expected %d parts, got %d", len(want), len(zr.File))
	}
}

func TestWriteToPartsAreWellFormed(t *testing.T) {
	zr := writeZip(t, sampleDeck())
	for _, f := range zr.File {
		content := readPart(t, zr, f.Name)
		dec := xml.NewDecoder(strings.NewReader(content))
		for {
			_, err := dec.Token()
			if err == io.EOF {
				break
			}
			if err != nil {
				t.Errorf("%s: malformed XML: %v", f.Name, err)
				break
			}
		}
	}
}

func TestWriteToPresentationSlideList(t *testing.T) {
	p := New()
	for i := 0; i < 3; i++ {
		p.CreateSlide()
	}
	zr := writeZip(t, p)

	pres := readPart(t, zr, "ppt/presentation.xml")
	for _, id := range []string{`id="256" r:id="rId2"`, `id="257" r:id="rId3"`, `id="258" r:id="rId4"`} {
		if !strings.Contains(pres, id) {
			t.Errorf("presentation.xml missing sldId %s", id)
		}
	}
	if !strings.Contains(pres, `<p:sldSz cx="12192000" cy="6858000" type="screen16x9"/>`) {
		t.Errorf("unexpected slide size in presentation.xml:\n%s", pres)
	}

	rels := readPart(t, zr, "ppt/_rels/presentation.xml.rels")
	if !strings.Contains(rels, `Id="rId4" Type="`+relTypeSlide+`" Target="slides/slide3.xml"`) {
		t.Errorf("presentation rels missing slide3:\n%s", rels)
	}
	if !strings.Contains(rels, `Id="rId8" Type="`+relTypeTheme+`"`) {
		t.Errorf("presentation rels missing theme after fixed parts:\n%s", rels)
	}
}

func TestWriteToCustomCanvas(t *testing.T) {
	zr := writeZip(t, NewWithSize(13.33, 7.5))
	pres := readPart(t, zr, "ppt/presentation.xml")
	if !strings.Contains(pres, `<p:sldSz cx="12188952" cy="6858000"/>`) {
		t.Errorf("custom canvas not written:\n%s", pres)
	}
}

func TestWriteToSlideContent(t *testing.T) {
	zr := writeZip(t, sampleDeck())
	slide := readPart(t, zr, "ppt/slides/slide1.xml")

	checks := []string{
		`<p:bg>`,
		`<a:srgbClr val="0F111A"/>`,
		`<a:prstGeom prst="roundRect">`,
		`<a:ln w="19050"><a:solidFill><a:srgbClr val="333344"/></a:solidFill></a:ln>`,
		`<p:cNvSpPr txBox="1"/>`,
		`<a:bodyPr wrap="square"`,
		`<a:spcAft><a:spcPts val="600"/></a:spcAft>`,
		`sz="3000"`,
		`b="1"`,
		`<a:latin typeface="Segoe UI"/>`,
		`<a:t>Title &amp; &lt;more&gt;</a:t>`,
		`<a:t>second</a:t>`,
	}
	for _, c := range checks {
		if !strings.Contains(slide, c) {
			t.Errorf("slide1.xml missing %q", c)
		}
	}

	rels := readPart(t, zr, "ppt/slides/_rels/slide1.xml.rels")
	if !strings.Contains(rels, "../slideLayouts/slideLayout1.xml") {
		t.Errorf("slide rels do not point at the layout:\n%s", rels)
	}
}

func TestWriteToBorderlessCard(t *testing.T) {
	p := New()
	slide := p.CreateSlide()
	slide.CreateRoundedRectangle(0, 0, Inch(1), Inch(1)).SetSolidFill(NewColor("1A1D2E"))

	content := readPart(t, writeZip(t, p), "ppt/slides/slide1.xml")
	if !strings.Contains(content, "<a:ln><a:noFill/></a:ln>") {
		t.Errorf("borderless card should carry an explicit noFill outline:\n%s", content)
	}
	if strings.Contains(content, "<a:ln w=") {
		t.Errorf("borderless card wrote a stroked outline:\n%s", content)
	}
}

func TestWriteToEmptyTextBox(t *testing.T) {
	p := New()
	tb := p.CreateSlide().CreateTextBox(0, 0, Inch(2), Inch(1))

	content := readPart(t, writeZip(t, p), "ppt/slides/slide1.xml")
	if !strings.Contains(content, "<a:p/>") {
		t.Errorf("empty text box must serialize one empty paragraph:\n%s", content)
	}
	if n := len(tb.GetParagraphs()); n != 0 {
		t.Errorf("model should still report zero paragraphs, got %d", n)
	}
}

func TestWriteToDocumentProperties(t *testing.T) {
	p := New()
	props := p.GetDocumentProperties()
	props.Title = "Telephony Manager"
	props.Creator = "Demo <team>"
	props.Company = "Vantage"
	p.CreateSlide()

	zr := writeZip(t, p)
	core := readPart(t, zr, "docProps/core.xml")
	if !strings.Contains(core, "<dc:title>Telephony Manager</dc:title>") {
		t.Errorf("title missing from core.xml:\n%s", core)
	}
	if !strings.Contains(core, "<dc:creator>Demo &lt;team&gt;</dc:creator>") {
		t.Errorf("creator not escaped in core.xml:\n%s", core)
	}
	app := readPart(t, zr, "docProps/app.xml")
	if !strings.Contains(app, "<Application>"+AppName+"</Application>") {
		t.Errorf("application missing from app.xml:\n%s", app)
	}
	if !strings.Contains(app, "<Slides>1</Slides>") {
		t.Errorf("slide count missing from app.xml:\n%s", app)
	}
	if !strings.Contains(app, "<Company>Vantage</Company>") {
		t.Errorf("company missing from app.xml:\n%s", app)
	}
}

func TestSave(t *testing.T) {
	p := sampleDeck()
	dir := t.TempDir()
	path := filepath.Join(dir, "deck.pptx")

	if err := p.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("file not found: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("file is empty")
	}

	zr, err := zip.OpenReader(path)
	if err != nil {
		t.Fatalf("saved file is not a zip: %v", err)
	}
	zr.Close()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("expected only the saved file in %s, found %d entries", dir, len(entries))
	}
}

func TestSaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.pptx")
	if err := os.WriteFile(path, []byte("stale"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := sampleDeck().Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(data, []byte("stale")) {
		t.Error("Save did not replace the existing file")
	}
}

func TestSaveMissingDirectory(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "no-such-dir", "deck.pptx")

	if err := sampleDeck().Save(path); err == nil {
		t.Fatal("expected error saving into a missing directory")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("expected no file at %s, stat err = %v", path, err)
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("expected no leftovers in %s, found %d entries", dir, len(entries))
	}
}

func TestSaveEmptyPath(t *testing.T) {
	if err := sampleDeck().Save(""); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestSaveNewRefusesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.pptx")
	if err := os.WriteFile(path, []byte("keep"), 0o644); err != nil {
		t.Fatal(err)
	}
	err := sampleDeck().SaveNew(path)
	if err == nil {
		t.Fatal("expected SaveNew to refuse an existing file")
	}
	if !errors.Is(err, os.ErrExist) {
		t.Errorf("unexpected error: %v", err)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "keep" {
		t.Error("SaveNew modified the existing file")
	}
}

func TestNewWriterUnsupportedFormat(t *testing.T) {
	if _, err := NewWriter(New(), WriterType("ODP")); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}
