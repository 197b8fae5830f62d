package pptx

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"image/png"
	"io"
	"math"
	"os"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// ImageFormat represents the output image format.
type ImageFormat int

const (
	ImageFormatPNG ImageFormat = iota
	ImageFormatJPEG
)

// Extension returns the file extension for the format, without a dot.
func (f ImageFormat) Extension() string {
	if f == ImageFormatJPEG {
		return "jpg"
	}
	return "png"
}

// RenderOptions configures slide-to-image rendering.
type RenderOptions struct {
	// Width is the output image width in pixels. Height follows the slide
	// aspect ratio. Default: 1280.
	Width int
	// Format is the output image format (PNG or JPEG).
	Format ImageFormat
	// JPEGQuality is the JPEG quality (1-100). Default: 90.
	JPEGQuality int
	// FontCache supplies faces. Nil means a fresh cache per render.
	FontCache *FontCache
}

// DefaultRenderOptions returns default rendering options.
func DefaultRenderOptions() *RenderOptions {
	return &RenderOptions{
		Width:       1280,
		Format:      ImageFormatPNG,
		JPEGQuality: 90,
	}
}

// SlideToImage renders a single slide to an image. The result is a preview:
// fills, outlines and wrapped text are drawn, but kerning and emoji glyphs
// are not.
func (p *Presentation) SlideToImage(slideIndex int, opts *RenderOptions) (image.Image, error) {
	if slideIndex < 0 || slideIndex >= len(p.slides) {
		return nil, fmt.Errorf("slide index %d out of range (0-%d)", slideIndex, len(p.slides)-1)
	}
	if opts == nil {
		opts = DefaultRenderOptions()
	}
	width := opts.Width
	if width <= 0 {
		width = 1280
	}

	slide := p.slides[slideIndex]
	slideW := float64(p.layout.CX)
	slideH := float64(p.layout.CY)
	imgW := width
	imgH := int(math.Round(float64(imgW) * slideH / slideW))

	img := image.NewRGBA(image.Rect(0, 0, imgW, imgH))

	bg := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	if slide.background != nil && slide.background.Type == FillSolid {
		bg = argbToRGBA(slide.background.Color)
	}
	draw.Draw(img, img.Bounds(), &image.Uniform{bg}, image.Point{}, draw.Src)

	r := &renderer{
		img:       img,
		scale:     float64(imgW) / slideW,
		fontCache: opts.FontCache,
	}
	if r.fontCache == nil {
		r.fontCache = NewFontCache()
	}

	for _, shape := range slide.shapes {
		r.renderShape(shape)
	}
	return img, nil
}

// EncodeImage writes img to w in the configured format.
func EncodeImage(w io.Writer, img image.Image, opts *RenderOptions) error {
	if opts == nil {
		opts = DefaultRenderOptions()
	}
	switch opts.Format {
	case ImageFormatJPEG:
		quality := opts.JPEGQuality
		if quality <= 0 || quality > 100 {
			quality = 90
		}
		return jpeg.Encode(w, img, &jpeg.Options{Quality: quality})
	default:
		return png.Encode(w, img)
	}
}

// SaveSlideAsImage renders a slide and saves it to a file.
func (p *Presentation) SaveSlideAsImage(slideIndex int, path string, opts *RenderOptions) error {
	img, err := p.SlideToImage(slideIndex, opts)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}
	if err := EncodeImage(f, img, opts); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// SaveSlidesAsImages renders all slides and saves them to files.
// The pattern should contain %d for the slide number (1-based), e.g. "slide_%d.png".
func (p *Presentation) SaveSlidesAsImages(pattern string, opts *RenderOptions) error {
	for i := range p.slides {
		path := fmt.Sprintf(pattern, i+1)
		if err := p.SaveSlideAsImage(i, path, opts); err != nil {
			return fmt.Errorf("slide %d: %w", i+1, err)
		}
	}
	return nil
}

// --- renderer ---

type renderer struct {
	img       *image.RGBA
	scale     float64 // pixels per EMU
	fontCache *FontCache
}

func (r *renderer) renderShape(shape Shape) {
	switch s := shape.(type) {
	case *RichTextShape:
		r.renderRichText(s)
	case *AutoShape:
		r.renderAutoShape(s)
	}
}

func (r *renderer) px(emu int64) int {
	return int(math.Round(float64(emu) * r.scale))
}

func (r *renderer) bounds(b *BaseShape) image.Rectangle {
	x, y := r.px(b.offsetX), r.px(b.offsetY)
	return image.Rect(x, y, x+r.px(b.width), y+r.px(b.height))
}

// strokeWidth converts a border width to whole pixels, never below one.
func (r *renderer) strokeWidth(b *Border) int {
	pw := r.px(int64(b.Width))
	if pw < 1 {
		pw = 1
	}
	return pw
}

func argbToRGBA(c Color) color.RGBA {
	return color.RGBA{
		R: c.GetRed(),
		G: c.GetGreen(),
		B: c.GetBlue(),
		A: c.GetAlpha(),
	}
}

func (r *renderer) renderRichText(s *RichTextShape) {
	rect := r.bounds(&s.BaseShape)
	if s.fill != nil && s.fill.Type == FillSolid {
		draw.Draw(r.img, rect, &image.Uniform{argbToRGBA(s.fill.Color)}, image.Point{}, draw.Over)
	}
	if s.HasBorder() {
		r.drawRect(rect, argbToRGBA(s.border.Color), r.strokeWidth(s.border))
	}
	r.drawParagraphs(s.paragraphs, rect, s.wordWrap, s.textAnchor)
}

func (r *renderer) renderAutoShape(s *AutoShape) {
	rect := r.bounds(&s.BaseShape)
	radius := 0
	if s.shapeType == AutoShapeRoundedRect {
		// Preset roundRect uses an adjust value of 16667, i.e. a sixth of
		// the shorter side.
		radius = int(math.Round(float64(min(rect.Dx(), rect.Dy())) * 16667 / 100000))
	}

	if s.fill != nil && s.fill.Type == FillSolid {
		fillColor := argbToRGBA(s.fill.Color)
		if s.shapeType == AutoShapeEllipse {
			r.fillEllipse(rect, fillColor)
		} else {
			r.fillRoundRect(rect, radius, fillColor)
		}
	}

	if s.HasBorder() {
		borderColor := argbToRGBA(s.border.Color)
		pw := r.strokeWidth(s.border)
		if s.shapeType == AutoShapeEllipse {
			r.drawEllipse(rect, borderColor)
		} else {
			r.strokeRoundRect(rect, radius, pw, borderColor)
		}
	}
}

// --- Drawing primitives ---

func (r *renderer) drawRect(rect image.Rectangle, c color.RGBA, width int) {
	r.strokeRoundRect(rect, 0, width, c)
}

// insideRoundRect reports whether the pixel centre (px, py) lies inside rect
// with corners of the given radius.
func insideRoundRect(rect image.Rectangle, radius int, px, py int) bool {
	if !(image.Point{X: px, Y: py}).In(rect) {
		return false
	}
	if radius <= 0 {
		return true
	}
	fx, fy := float64(px)+0.5, float64(py)+0.5
	rad := float64(radius)
	cx := math.Max(float64(rect.Min.X)+rad, math.Min(fx, float64(rect.Max.X)-rad))
	cy := math.Max(float64(rect.Min.Y)+rad, math.Min(fy, float64(rect.Max.Y)-rad))
	dx, dy := fx-cx, fy-cy
	return dx*dx+dy*dy <= rad*rad
}

func (r *renderer) fillRoundRect(rect image.Rectangle, radius int, c color.RGBA) {
	clip := rect.Intersect(r.img.Bounds())
	for y := clip.Min.Y; y < clip.Max.Y; y++ {
		for x := clip.Min.X; x < clip.Max.X; x++ {
			if insideRoundRect(rect, radius, x, y) {
				r.blend(x, y, c)
			}
		}
	}
}

// strokeRoundRect paints the band between rect and rect inset by width.
func (r *renderer) strokeRoundRect(rect image.Rectangle, radius, width int, c color.RGBA) {
	inner := rect.Inset(width)
	innerRadius := max(radius-width, 0)
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			if !insideRoundRect(rect, radius, x, y) {
				continue
			}
			if !inner.Empty() && insideRoundRect(inner, innerRadius, x, y) {
				continue
			}
			r.blend(x, y, c)
		}
	}
}

func (r *renderer) fillEllipse(rect image.Rectangle, c color.RGBA) {
	rx := float64(rect.Dx()) / 2
	ry := float64(rect.Dy()) / 2
	if rx <= 0 || ry <= 0 {
		return
	}
	centerX := float64(rect.Min.X) + rx
	centerY := float64(rect.Min.Y) + ry

	for py := rect.Min.Y; py < rect.Max.Y; py++ {
		for px := rect.Min.X; px < rect.Max.X; px++ {
			dx := (float64(px) + 0.5 - centerX) / rx
			dy := (float64(py) + 0.5 - centerY) / ry
			if dx*dx+dy*dy <= 1.0 {
				r.blend(px, py, c)
			}
		}
	}
}

func (r *renderer) drawEllipse(rect image.Rectangle, c color.RGBA) {
	rx := float64(rect.Dx()) / 2
	ry := float64(rect.Dy()) / 2
	centerX := float64(rect.Min.X) + rx
	centerY := float64(rect.Min.Y) + ry

	steps := max(int(math.Max(rx, ry)*8), 100)
	for i := 0; i < steps; i++ {
		angle := 2 * math.Pi * float64(i) / float64(steps)
		r.blend(int(centerX+rx*math.Cos(angle)), int(centerY+ry*math.Sin(angle)), c)
	}
}

// blend composites c over the pixel at (x, y).
func (r *renderer) blend(x, y int, c color.RGBA) {
	if !(image.Point{X: x, Y: y}).In(r.img.Bounds()) {
		return
	}
	if c.A == 0xff {
		r.img.SetRGBA(x, y, c)
		return
	}
	dst := r.img.RGBAAt(x, y)
	a := uint32(c.A)
	mix := func(s, d uint8) uint8 {
		return uint8((uint32(s)*a + uint32(d)*(255-a)) / 255)
	}
	r.img.SetRGBA(x, y, color.RGBA{R: mix(c.R, dst.R), G: mix(c.G, dst.G), B: mix(c.B, dst.B), A: 0xff})
}

// --- Text rendering ---

// getFace returns the face for f at the render scale.
func (r *renderer) getFace(f *Font) font.Face {
	if f == nil {
		f = NewFont()
	}
	sizePt := float64(f.Size)
	if sizePt <= 0 {
		sizePt = 10
	}
	// Faces are built at 72 DPI, so one point equals one pixel before scaling.
	scaledPt := sizePt * emuPerPoint * r.scale
	if face := r.fontCache.GetFace(f.Name, scaledPt, f.Bold); face != nil {
		return face
	}
	return basicfont.Face7x13
}

// textRun holds rendering info for a single text run.
type textRun struct {
	text  string
	face  font.Face
	color color.RGBA
}

// textLine holds a wrapped line of text runs.
type textLine struct {
	runs      []textRun
	width     int
	height    int
	gapAfter  int
	alignment HorizontalAlignment
}

func buildTextLine(runs []textRun, align HorizontalAlignment) textLine {
	totalW := 0
	maxH := 0
	for _, run := range runs {
		totalW += font.MeasureString(run.face, run.text).Ceil()
		if h := run.face.Metrics().Height.Ceil(); h > maxH {
			maxH = h
		}
	}
	if maxH <= 0 {
		maxH = 14
	}
	return textLine{runs: runs, width: totalW, height: maxH, alignment: align}
}

// bodyInset is the default OOXML text inset: 0.1in left and right, 0.05in
// top and bottom.
const (
	bodyInsetX = 91440
	bodyInsetY = 45720
)

func (r *renderer) drawParagraphs(paragraphs []*Paragraph, box image.Rectangle, wrap bool, anchor TextAnchorType) {
	box = image.Rect(
		box.Min.X+r.px(bodyInsetX), box.Min.Y+r.px(bodyInsetY),
		box.Max.X-r.px(bodyInsetX), box.Max.Y-r.px(bodyInsetY),
	)
	w := box.Dx()

	var lines []textLine
	for _, para := range paragraphs {
		if para == nil {
			continue
		}
		align := HorizontalLeft
		if para.alignment != nil {
			align = para.alignment.Horizontal
		}

		// Split runs at line feeds; each hard line wraps on its own.
		var hard [][]textRun
		var runs []textRun
		for _, tr := range para.elements {
			tc := color.RGBA{A: 255}
			if tr.font != nil {
				tc = argbToRGBA(tr.font.Color)
			}
			face := r.getFace(tr.font)
			for i, segment := range strings.Split(tr.text, "\n") {
				if i > 0 {
					hard = append(hard, runs)
					runs = nil
				}
				runs = append(runs, textRun{text: segment, face: face, color: tc})
			}
		}
		hard = append(hard, runs)

		var paraLines []textLine
		for _, hardRuns := range hard {
			line := buildTextLine(hardRuns, align)
			if len(hardRuns) == 0 {
				line.height = 14
			}
			if wrap && w > 0 && line.width > w && len(hardRuns) > 0 {
				paraLines = append(paraLines, wrapRunLine(line, w)...)
			} else {
				paraLines = append(paraLines, line)
			}
		}
		gap := r.px(int64(para.spaceAfter) * emuPerPoint / 100)
		paraLines[len(paraLines)-1].gapAfter = gap
		lines = append(lines, paraLines...)
	}

	total := 0
	for _, line := range lines {
		total += line.height + line.gapAfter
	}
	curY := box.Min.Y
	switch anchor {
	case TextAnchorMiddle:
		curY += (box.Dy() - total) / 2
	case TextAnchorBottom:
		curY = box.Max.Y - total
	}

	for _, line := range lines {
		curY += line.height
		drawX := box.Min.X
		switch line.alignment {
		case HorizontalCenter:
			drawX += (w - line.width) / 2
		case HorizontalRight:
			drawX += w - line.width
		}
		// Descent keeps the baseline inside the line box.
		baseline := curY
		if len(line.runs) > 0 {
			baseline -= line.runs[0].face.Metrics().Descent.Ceil()
		}
		for _, run := range line.runs {
			d := &font.Drawer{
				Dst:  r.img,
				Src:  &image.Uniform{run.color},
				Face: run.face,
				Dot:  fixed.P(drawX, baseline),
			}
			d.DrawString(run.text)
			drawX += font.MeasureString(run.face, run.text).Ceil()
		}
		curY += line.gapAfter
	}
}

// wrapRunLine wraps a textLine into multiple lines that fit within maxWidth.
func wrapRunLine(line textLine, maxWidth int) []textLine {
	type styledWord struct {
		word  string
		face  font.Face
		color color.RGBA
	}

	var words []styledWord
	for _, run := range line.runs {
		for i, w := range strings.Fields(run.text) {
			if i > 0 || strings.HasPrefix(run.text, " ") {
				w = " " + w
			}
			words = append(words, styledWord{word: w, face: run.face, color: run.color})
		}
	}
	if len(words) == 0 {
		return []textLine{line}
	}

	var result []textLine
	var curRuns []textRun
	curWidth := 0
	for _, sw := range words {
		ww := font.MeasureString(sw.face, sw.word).Ceil()
		if curWidth+ww > maxWidth && curWidth > 0 {
			result = append(result, buildTextLine(curRuns, line.alignment))
			curRuns = nil
			curWidth = 0
			sw.word = strings.TrimLeft(sw.word, " ")
			ww = font.MeasureString(sw.face, sw.word).Ceil()
		}
		curRuns = append(curRuns, textRun{text: sw.word, face: sw.face, color: sw.color})
		curWidth += ww
	}
	if len(curRuns) > 0 {
		result = append(result, buildTextLine(curRuns, line.alignment))
	}
	return result
}
