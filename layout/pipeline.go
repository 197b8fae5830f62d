package layout

// Pipeline lays out rows of stages joined by connectors. Stage s of row r
// starts at Origin.X + s*StageWidth and Origin.Y + r*RowHeight. Connectors
// sit in the gap between neighbouring stage cards, vertically centred on
// the card.
type Pipeline struct {
	Origin          Point
	StageWidth      float64
	RowHeight       float64
	CardWidth       float64
	CardHeight      float64
	ConnectorWidth  float64
	ConnectorHeight float64
}

// Stage returns the card rect of stage s in row r.
func (p Pipeline) Stage(row, stage int) Rect {
	return Rect{
		Left:   p.Origin.X + float64(stage)*p.StageWidth,
		Top:    p.Origin.Y + float64(row)*p.RowHeight,
		Width:  p.CardWidth,
		Height: p.CardHeight,
	}
}

// Connector returns the rect of the connector between stage and stage+1.
func (p Pipeline) Connector(row, stage int) Rect {
	card := p.Stage(row, stage)
	gap := p.StageWidth - p.CardWidth
	return Rect{
		Left:   card.Right() + (gap-p.ConnectorWidth)/2,
		Top:    card.Top + (p.CardHeight-p.ConnectorHeight)/2,
		Width:  p.ConnectorWidth,
		Height: p.ConnectorHeight,
	}
}

// Connectors returns how many connectors join the given number of stages.
func Connectors(stages int) int {
	return max(stages-1, 0)
}
