package compose

import (
	"github.com/VantageDataChat/pitchdeck/content"
	"github.com/VantageDataChat/pitchdeck/layout"
	"github.com/VantageDataChat/pitchdeck/pptx"
	"github.com/VantageDataChat/pitchdeck/theme"
)

const (
	arrowGlyph     = "──►"
	pipelineGlyph  = "►"
	cardTitleSize  = 20
	laneHeightText = 0.4
)

func buildTitle(b *slideBuilder, d *content.Deck) {
	t := d.Title
	width := b.th.Canvas().Width

	b.FillBackground(b.color(theme.Background))
	b.accentStrip()

	b.centered(layout.R(1, 1.8, 11, 1), t.Heading, 52, b.color(theme.TextTitle), true)
	b.centered(layout.R(1, 2.9, 11, 0.8), t.Subtitle, 30, b.color(theme.Subtitle), false)
	b.centered(layout.R(1.5, 4.0, 10, 1.2), t.Description, 16, b.color(theme.TextMuted), false)

	b.DrawCard(layout.R(0, 6.5, width, 1), b.color(theme.SurfaceAlt))
	b.muted(layout.R(1, 6.65, 5, 0.6), t.FooterLeft, 13)
	b.DrawText(layout.R(7, 6.65, 5.5, 0.6), t.FooterRight, layout.TextStyle{
		Size: 13, Color: b.color(theme.TextMuted), Align: pptx.HorizontalRight,
	})
}

func buildProblem(b *slideBuilder, d *content.Deck) {
	p := d.Problem
	b.titleChrome(p.Title)

	panels := []struct {
		card  layout.Rect
		text  float64
		width float64
		panel content.BulletPanel
	}{
		{layout.R(0.5, 1.4, 5.8, 5.5), 0.8, 5.2, p.Current},
		{layout.R(6.8, 1.4, 6.0, 5.5), 7.1, 5.5, p.Proposed},
	}
	for _, side := range panels {
		b.edgeCard(side.card, side.panel.Tag)
		b.heading(layout.R(side.text, 1.5, side.width, 0.5), side.panel.Heading, cardTitleSize, b.tag(side.panel.Tag))
		b.bullets(layout.R(side.text, 2.15, side.width, 4.5), side.panel.Items, 13, side.panel.Tag)
	}
}

// featureGrid is four columns of 2.95 x 2.6 cards.
var featureGrid = layout.Grid{
	Origin:     layout.Point{X: 0.5, Y: 1.3},
	Columns:    4,
	CellWidth:  3.15,
	CellHeight: 2.9,
}

func buildFeatures(b *slideBuilder, d *content.Deck) {
	b.titleChrome(d.Features.Title)

	for i, f := range d.Features.Items {
		card := featureGrid.Rect(i, 2.95, 2.6)
		b.edgeCard(card, f.Tag)
		b.DrawText(card.At(0.15, 0.15, 2.6, 0.5), f.Icon, layout.TextStyle{Size: 32, Color: b.tag(f.Tag)})
		b.heading(card.At(0.15, 0.7, 2.6, 0.45), f.Title, 16, b.color(theme.TextTitle))
		b.muted(card.At(0.15, 1.2, 2.6, 1.2), f.Description, 12)
	}
}

var techGrid = layout.Grid{
	Origin:    layout.Point{X: 0.4, Y: 1.4},
	Columns:   3,
	CellWidth: 4.2,
}

const techItemPitch = 0.85

func buildTechStack(b *slideBuilder, d *content.Deck) {
	b.titleChrome(d.TechStack.Title)

	for i, col := range d.TechStack.Columns {
		card := techGrid.Rect(i, 4.0, 5.6)
		b.edgeCard(card, col.Tag)
		b.heading(card.At(0.2, 0.1, 3.5, 0.5), col.Category, 18, b.tag(col.Tag))
		b.DrawRule(card.At(0.2, 0.6, 3.5, 0.03), b.tag(col.Tag))

		items := layout.Grid{Origin: card.At(0.2, 0.8, 0, 0).Origin(), CellHeight: techItemPitch}
		for j, item := range col.Items {
			b.DrawStyledLines(items.Rect(j, 3.5, 0.9), []layout.Line{
				{Text: item.Name, Size: 14, Color: b.color(theme.TextTitle), Bold: true},
				{Text: item.Description, Size: 11, Color: b.color(theme.TextMuted)},
			}, layout.TextStyle{Color: b.color(theme.TextBody)})
		}
	}
}

var (
	clientStack = layout.Grid{Origin: layout.Point{X: 0.3, Y: 1.9}, CellHeight: 1.2}
	serverStack = layout.Grid{Origin: layout.Point{X: 4.3, Y: 2.0}, CellHeight: 1.1}
	deviceStack = layout.Grid{Origin: layout.Point{X: 9.9, Y: 1.9}, CellHeight: 2.0}
)

func buildArchitecture(b *slideBuilder, d *content.Deck) {
	a := d.Architecture
	b.titleChrome(a.Title)
	title := b.color(theme.TextTitle)

	// Clients, then connectors into the server.
	b.centered(layout.R(0.3, 1.3, 3, laneHeightText), a.ClientLane.Heading, 16, b.tag(a.ClientLane.Tag), true)
	for i, c := range a.Clients {
		card := clientStack.Rect(i, 3.0, 0.9)
		b.tagCard(card, a.ClientLane.Tag)
		b.centered(card.At(0.2, 0.05, 2.5, 0.4), c.Name, 14, title, true)
		b.centered(card.At(0.2, 0.45, 2.5, 0.35), c.ClientID, 10, b.color(theme.TextMuted), false)
		b.connector(layout.R(3.3, card.Top+0.3, 0.8, 0.4), arrowGlyph, 18, b.tag(a.ClientLane.Tag))
	}

	b.centered(layout.R(4.1, 1.3, 5, laneHeightText), a.ServerLane.Heading, 16, b.tag(a.ServerLane.Tag), true)
	b.tagCard(layout.R(4.1, 1.9, 5.0, 4.8), a.ServerLane.Tag)
	for i, comp := range a.Server {
		r := serverStack.Rect(i, 4.5, 0.35)
		b.heading(r, comp.Title, 13, title)
		b.muted(r.At(0, 0.3, 4.5, 0.6), comp.Description, 10)
	}

	b.centered(layout.R(9.9, 1.3, 3, laneHeightText), a.DeviceLane.Heading, 16, b.tag(a.DeviceLane.Tag), true)
	for i, dev := range a.Devices {
		card := deviceStack.Rect(i, 3.0, 1.4)
		b.connector(layout.R(9.1, card.Top+0.3, 0.8, 0.4), arrowGlyph, 18, b.tag(a.ServerLane.Tag))
		b.tagCard(card, a.DeviceLane.Tag)
		b.centered(card.At(0.2, 0.1, 2.6, 0.4), dev.Name, 14, title, true)
		b.centered(card.At(0.2, 0.5, 2.6, 0.35), dev.Command, 10, b.color(theme.TextMuted), false)
		b.centered(card.At(0.2, 0.9, 2.6, 0.35), dev.Status, 10, b.color(theme.Positive), false)
	}

	b.panel(layout.R(0.3, 5.5, 12.7, 1.5), a.Insight.Tag)
	b.callout(layout.R(0.6, 5.6, 12, 1.2), a.Insight, 15, 12, b.color(theme.Callout), b.color(theme.TextBody))
}

var (
	bridgeHeaders = layout.Grid{
		Origin:    layout.Point{X: 0.3, Y: 1.3},
		Columns:   5,
		CellWidth: 2.55,
	}
	bridgePipeline = layout.Pipeline{
		Origin:          layout.Point{X: 0.3, Y: 2.2},
		StageWidth:      2.55,
		RowHeight:       1.5,
		CardWidth:       2.3,
		CardHeight:      1.1,
		ConnectorWidth:  0.4,
		ConnectorHeight: 0.4,
	}
)

func buildBridge(b *slideBuilder, d *content.Deck) {
	br := d.Bridge
	b.titleChrome(br.Title)
	title := b.color(theme.TextTitle)

	for i, h := range br.Headers {
		b.centered(bridgeHeaders.Rect(i, 2.3, 0.7), h, 11, b.color(theme.TextMuted), true)
	}

	for row, r := range br.Rows {
		color := b.tag(r.Tag)
		for stage, text := range r.Stages {
			card := bridgePipeline.Stage(row, stage)
			b.tagCard(card, r.Tag)
			if stage == 0 {
				b.centered(card.At(0.1, 0.05, 2.1, 0.35), r.User, 13, title, true)
				b.centered(card.At(0.1, 0.35, 2.1, 0.35), text, 10, b.color(theme.TextMuted), false)
				b.centered(card.At(0.1, 0.75, 2.1, 0.25), r.ClientID, 8, color, false)
			} else {
				b.centered(card.At(0.1, 0.15, 2.1, 0.7), text, 12, title, true)
			}
			if stage < layout.Connectors(len(r.Stages)) {
				b.connector(bridgePipeline.Connector(row, stage), pipelineGlyph, 16, color)
			}
		}
	}

	b.panel(layout.R(0.3, 6.0, 10.0, 1.2), br.Insight.Tag)
	b.callout(layout.R(0.6, 6.1, 9.5, 1.0), br.Insight, 14, 11, b.color(theme.Callout), b.color(theme.TextBody))

	b.panel(layout.R(10.5, 6.0, 2.5, 1.2), br.Cleanup.Tag)
	b.callout(layout.R(10.6, 6.1, 2.3, 1.0), br.Cleanup, 13, 11, b.tag(br.Cleanup.Tag), b.color(theme.TextBody))
}

var (
	stepStack = layout.Grid{Origin: layout.Point{X: 0.7, Y: 2.5}, CellHeight: 0.95}
	kindStack = layout.Grid{Origin: layout.Point{X: 8.4, Y: 2.6}, CellHeight: 1.45}
)

func buildNotifications(b *slideBuilder, d *content.Deck) {
	n := d.Notifications
	b.titleChrome(n.Title)
	title := b.color(theme.TextTitle)

	b.DrawText(layout.R(0.6, 1.2, 12, 0.5), n.Lead, layout.TextStyle{Size: 15, Color: b.color(theme.TextMuted)})

	b.neutralCard(layout.R(0.4, 1.9, 7.5, 5.0))
	b.heading(layout.R(0.7, 2.0, 7, 0.4), n.FlowHeading, 18, title)
	for i, s := range n.Steps {
		r := stepStack.Rect(i, 3, 0.35)
		b.heading(r, s.Label, 13, b.tag(s.Tag))
		b.DrawText(layout.R(3.6, r.Top, 4, 0.8), s.Description, layout.TextStyle{Size: 11, Color: b.color(theme.TextBody)})
	}

	b.neutralCard(layout.R(8.2, 1.9, 4.7, 5.0))
	b.heading(layout.R(8.5, 2.0, 4.2, 0.4), n.KindsHeading, 18, title)
	for i, k := range n.Kinds {
		card := kindStack.Rect(i, 4.3, 1.2)
		b.panel(card, k.Tag)
		b.heading(card.At(0.2, 0.05, 4.0, 0.35), k.Title, 14, b.tag(k.Tag))
		b.muted(card.At(0.2, 0.4, 4.0, 0.7), k.Description, 11)
	}
}

// modelGrid is three columns of 3.9 x 2.3 cards.
var modelGrid = layout.Grid{
	Origin:     layout.Point{X: 0.4, Y: 1.4},
	Columns:    3,
	CellWidth:  4.2,
	CellHeight: 2.7,
}

func buildModels(b *slideBuilder, d *content.Deck) {
	m := d.Models
	b.titleChrome(m.Title)

	for i, model := range m.Items {
		card := modelGrid.Rect(i, 3.9, 2.3)
		b.tagCard(card, model.Tag)
		b.heading(card.At(0.15, 0.15, 3.6, 0.7), model.Title, 16, b.color(theme.TextTitle))
		b.muted(card.At(0.15, 1.0, 3.6, 1.1), model.Description, 12)
	}

	b.panel(layout.R(0.4, 6.5, 12.5, 0.8), m.Detection.Tag)
	b.callout(layout.R(0.7, 6.6, 12, 0.6), m.Detection, 14, 11, b.tag(m.Detection.Tag), b.color(theme.TextMuted))
}

func buildRegression(b *slideBuilder, d *content.Deck) {
	r := d.Regression
	b.titleChrome(r.Title)
	title := b.color(theme.TextTitle)

	b.neutralCard(layout.R(0.4, 1.4, 6.0, 5.8))
	b.heading(layout.R(0.7, 1.5, 5.5, 0.4), r.Features.Heading, cardTitleSize, title)
	b.bullets(layout.R(0.7, 2.1, 5.3, 4.8), r.Features.Items, 13, r.Features.Tag)

	b.neutralCard(layout.R(6.8, 1.4, 6.1, 3.0))
	b.heading(layout.R(7.1, 1.5, 5.5, 0.4), r.Export.Heading, cardTitleSize, title)
	b.checklist(layout.R(7.1, 2.1, 5.6, 2.0), r.Export)

	b.neutralCard(layout.R(6.8, 4.7, 6.1, 2.5))
	b.heading(layout.R(7.1, 4.8, 5.5, 0.4), r.Validation.Heading, cardTitleSize, title)
	b.checklist(layout.R(7.1, 5.3, 5.6, 1.8), r.Validation)
}

// checklist draws the intro, a spacer, the tagged items and, when present,
// another spacer and the footnote.
func (b *slideBuilder) checklist(r layout.Rect, c content.Checklist) {
	spacer := layout.Line{Size: 6}
	lines := []layout.Line{{Text: c.Intro, Size: 13}, spacer}
	for _, item := range c.Items {
		lines = append(lines, layout.Line{Text: item, Size: 12, Color: b.tag(c.Tag)})
	}
	if c.Footnote != "" {
		lines = append(lines, spacer, layout.Line{Text: c.Footnote, Size: 11, Color: b.color(theme.TextMuted)})
	}
	b.DrawStyledLines(r, lines, layout.TextStyle{Color: b.color(theme.TextBody)})
}

var statRows = layout.Grid{Origin: layout.Point{X: 0.7, Y: 5.3}, CellHeight: 0.35}

func buildClosing(b *slideBuilder, d *content.Deck) {
	c := d.Closing
	b.titleChrome(c.Title)
	title := b.color(theme.TextTitle)

	b.neutralCard(layout.R(0.4, 1.4, 6.0, 3.0))
	b.heading(layout.R(0.7, 1.5, 5.5, 0.4), c.Deploy.Heading, cardTitleSize, title)
	b.bullets(layout.R(0.7, 2.1, 5.3, 2.5), c.Deploy.Items, 14, c.Deploy.Tag)

	b.neutralCard(layout.R(0.4, 4.7, 6.0, 2.5))
	b.heading(layout.R(0.7, 4.8, 5.5, 0.4), c.Impact.Heading, cardTitleSize, title)
	for i, s := range c.Impact.Stats {
		row := statRows.Rect(i, 2.5, 0.3)
		b.heading(row, s.Label, 12, b.color(theme.TextMuted))
		b.heading(row.At(2.5, 0, 3.0, 0.3), s.Value, 12, b.tag(c.Impact.Tag))
	}

	ty := c.ThankYou
	b.DrawOutlinedCard(layout.R(6.8, 1.4, 6.1, 5.8), b.color(theme.HeroFill), b.color(theme.HeroEdge))
	b.centered(layout.R(7.0, 2.5, 5.7, 1), ty.Heading, 44, b.color(theme.HeroTitle), true)
	b.centered(layout.R(7.0, 3.5, 5.7, 0.6), ty.Subheading, 24, b.color(theme.HeroSubtitle), false)

	body := b.color(theme.HeroBody)
	lines := []layout.Line{
		{Text: ty.CreditLabel, Size: 14, Color: body},
		{Text: ty.Author, Size: 18, Color: b.color(theme.HeroTitle), Bold: true},
		{Text: ty.Affiliation, Size: 13, Color: body},
		{Text: "", Size: 10, Color: body},
	}
	for _, contact := range ty.Contacts {
		lines = append(lines, layout.Line{Text: contact, Size: 12, Color: b.color(theme.HeroLink)})
	}
	b.DrawStyledLines(layout.R(7.2, 4.5, 5.3, 2.5), lines, layout.TextStyle{Color: body})
}
