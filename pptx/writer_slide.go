package pptx

import (
	"archive/zip"
	"fmt"
	"strings"
)

func (w *PPTXWriter) writeSlide(zw *zip.Writer, slide *Slide, slideNum int) error {
	var shapesXML strings.Builder
	shapeID := 2 // 1 is the group shape

	for _, shape := range slide.shapes {
		switch s := shape.(type) {
		case *RichTextShape:
			shapesXML.WriteString(w.writeRichTextShapeXML(s, &shapeID))
		case *AutoShape:
			shapesXML.WriteString(w.writeAutoShapeXML(s, &shapeID))
		default:
			return fmt.Errorf("slide %d: unsupported shape type %s", slideNum, shape.GetType())
		}
	}

	bgXML := ""
	if slide.background != nil && slide.background.Type != FillNone {
		bgXML = "    <p:bg>\n      <p:bgPr>\n"
		bgXML += w.writeFillXML(slide.background)
		bgXML += "        <a:effectLst/>\n      </p:bgPr>\n    </p:bg>\n"
	}

	nameAttr := ""
	if slide.name != "" {
		nameAttr = fmt.Sprintf(` name="%s"`, xmlEscape(slide.name))
	}

	content := fmt.Sprintf(xmlDecl+`<p:sld xmlns:a="%s" xmlns:r="%s" xmlns:p="%s">
  <p:cSld%s>
%s    <p:spTree>
      <p:nvGrpSpPr>
        <p:cNvPr id="1" name=""/>
        <p:cNvGrpSpPr/>
        <p:nvPr/>
      </p:nvGrpSpPr>
      <p:grpSpPr>
        <a:xfrm>
          <a:off x="0" y="0"/>
          <a:ext cx="0" cy="0"/>
          <a:chOff x="0" y="0"/>
          <a:chExt cx="0" cy="0"/>
        </a:xfrm>
      </p:grpSpPr>
%s    </p:spTree>
  </p:cSld>
  <p:clrMapOvr>
    <a:masterClrMapping/>
  </p:clrMapOvr>
</p:sld>`, nsDrawingML, nsOfficeDocRels, nsPresentationML, nameAttr, bgXML, shapesXML.String())

	return writeRawXMLToZip(zw, fmt.Sprintf("ppt/slides/slide%d.xml", slideNum), content)
}

// writeSlideRels links a slide to the single layout every slide shares.
func (w *PPTXWriter) writeSlideRels(zw *zip.Writer, slideNum int) error {
	rels := xmlRelationships{
		Xmlns: nsRelationships,
		Relationships: []xmlRelationship{
			{ID: "rId1", Type: relTypeSlideLayout, Target: "../slideLayouts/slideLayout1.xml"},
		},
	}
	return writeXMLToZip(zw, fmt.Sprintf("ppt/slides/_rels/slide%d.xml.rels", slideNum), rels)
}

func shapeName(b *BaseShape, prefix string, id int) string {
	if b.name != "" {
		return b.name
	}
	return fmt.Sprintf("%s %d", prefix, id)
}

func descrAttr(b *BaseShape) string {
	if b.description == "" {
		return ""
	}
	return fmt.Sprintf(` descr="%s"`, xmlEscape(b.description))
}

func (w *PPTXWriter) writeRichTextShapeXML(s *RichTextShape, shapeID *int) string {
	id := *shapeID
	*shapeID++

	fillXML := w.writeFillXML(s.fill)
	borderXML := w.writeBorderXML(s.border)

	var paragraphsXML strings.Builder
	for _, para := range s.paragraphs {
		paragraphsXML.WriteString(w.writeParagraphXML(para))
	}
	// A txBody needs at least one paragraph to be valid.
	if len(s.paragraphs) == 0 {
		paragraphsXML.WriteString("          <a:p/>\n")
	}

	return fmt.Sprintf(`      <p:sp>
        <p:nvSpPr>
          <p:cNvPr id="%d" name="%s"%s/>
          <p:cNvSpPr txBox="1"/>
          <p:nvPr/>
        </p:nvSpPr>
        <p:spPr>
          <a:xfrm>
            <a:off x="%d" y="%d"/>
            <a:ext cx="%d" cy="%d"/>
          </a:xfrm>
          <a:prstGeom prst="rect">
            <a:avLst/>
          </a:prstGeom>
%s%s        </p:spPr>
        <p:txBody>
          <a:bodyPr wrap="%s" rtlCol="0"%s/>
          <a:lstStyle/>
%s        </p:txBody>
      </p:sp>
`, id, xmlEscape(shapeName(&s.BaseShape, "TextBox", id)), descrAttr(&s.BaseShape),
		s.offsetX, s.offsetY, s.width, s.height,
		fillXML, borderXML,
		boolToWrap(s.wordWrap), textAnchorAttr(s.textAnchor),
		paragraphsXML.String())
}

func boolToWrap(wrap bool) string {
	if wrap {
		return "square"
	}
	return "none"
}

func textAnchorAttr(anchor TextAnchorType) string {
	if anchor == TextAnchorNone {
		return ""
	}
	return fmt.Sprintf(` anchor="%s"`, anchor)
}

func (w *PPTXWriter) writeParagraphXML(para *Paragraph) string {
	algn := ""
	if para.alignment != nil && para.alignment.Horizontal != "" {
		algn = fmt.Sprintf(` algn="%s"`, para.alignment.Horizontal)
	}

	spacing := ""
	if para.spaceAfter > 0 {
		spacing = fmt.Sprintf(`
            <a:spcAft><a:spcPts val="%d"/></a:spcAft>`, para.spaceAfter)
	}

	var runsXML strings.Builder
	for _, tr := range para.elements {
		runsXML.WriteString(w.writeTextRunXML(tr))
	}

	pPr := fmt.Sprintf("            <a:pPr%s/>\n", algn)
	if spacing != "" {
		pPr = fmt.Sprintf("            <a:pPr%s>%s\n            </a:pPr>\n", algn, spacing)
	}

	return fmt.Sprintf("          <a:p>\n%s%s          </a:p>\n", pPr, runsXML.String())
}

func (w *PPTXWriter) writeTextRunXML(tr *TextRun) string {
	font := tr.font
	if font == nil {
		font = NewFont()
	}
	attrs := fmt.Sprintf(` lang="en-US" sz="%d" dirty="0"`, font.Size*100)
	if font.Bold {
		attrs += ` b="1"`
	}

	solidFill := ""
	if font.Color.ARGB != "" {
		solidFill = fmt.Sprintf(`
              <a:solidFill><a:srgbClr val="%s"/></a:solidFill>`, colorRGB(font.Color))
	}

	latin := ""
	if font.Name != "" {
		latin = fmt.Sprintf(`
              <a:latin typeface="%s"/>
              <a:cs typeface="%s"/>`, xmlEscape(font.Name), xmlEscape(font.Name))
	}

	rPr := fmt.Sprintf("<a:rPr%s>%s%s\n              </a:rPr>", attrs, solidFill, latin)

	// Line feeds inside a run become <a:br> elements so the run keeps its formatting
	// across lines without splitting the paragraph.
	var sb strings.Builder
	for i, segment := range strings.Split(tr.text, "\n") {
		if i > 0 {
			fmt.Fprintf(&sb, "            <a:br>\n              %s\n            </a:br>\n", rPr)
		}
		fmt.Fprintf(&sb, "            <a:r>\n              %s\n              <a:t>%s</a:t>\n            </a:r>\n",
			rPr, xmlEscape(segment))
	}
	return sb.String()
}

func (w *PPTXWriter) writeAutoShapeXML(s *AutoShape, shapeID *int) string {
	id := *shapeID
	*shapeID++

	// An explicit <a:ln><a:noFill/></a:ln> keeps viewers from painting the
	// theme's default outline on borderless cards.
	borderXML := w.writeBorderXML(s.border)
	if borderXML == "" {
		borderXML = "          <a:ln><a:noFill/></a:ln>\n"
	}

	return fmt.Sprintf(`      <p:sp>
        <p:nvSpPr>
          <p:cNvPr id="%d" name="%s"%s/>
          <p:cNvSpPr/>
          <p:nvPr/>
        </p:nvSpPr>
        <p:spPr>
          <a:xfrm>
            <a:off x="%d" y="%d"/>
            <a:ext cx="%d" cy="%d"/>
          </a:xfrm>
          <a:prstGeom prst="%s">
            <a:avLst/>
          </a:prstGeom>
%s%s        </p:spPr>
      </p:sp>
`, id, xmlEscape(shapeName(&s.BaseShape, "Shape", id)), descrAttr(&s.BaseShape),
		s.offsetX, s.offsetY, s.width, s.height,
		s.shapeType,
		w.writeFillXML(s.fill), borderXML)
}

func (w *PPTXWriter) writeFillXML(f *Fill) string {
	if f == nil {
		return ""
	}
	switch f.Type {
	case FillSolid:
		return fmt.Sprintf("          <a:solidFill><a:srgbClr val=\"%s\"/></a:solidFill>\n", colorRGB(f.Color))
	default:
		return ""
	}
}

func (w *PPTXWriter) writeBorderXML(b *Border) string {
	if b == nil || b.Style == BorderNone {
		return ""
	}
	return fmt.Sprintf("          <a:ln w=\"%d\"><a:solidFill><a:srgbClr val=\"%s\"/></a:solidFill></a:ln>\n",
		b.Width, colorRGB(b.Color))
}
