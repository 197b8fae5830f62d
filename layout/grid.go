package layout

// Grid places items row-major in fixed-size cells. Item i sits in column
// i mod Columns and row i div Columns. A one-column grid is a vertical stack.
type Grid struct {
	Origin     Point
	Columns    int
	CellWidth  float64
	CellHeight float64
}

func (g Grid) columns() int {
	if g.Columns <= 0 {
		return 1
	}
	return g.Columns
}

// Cell returns the top-left corner of item i's cell.
func (g Grid) Cell(i int) Point {
	c := g.columns()
	return Point{
		X: g.Origin.X + float64(i%c)*g.CellWidth,
		Y: g.Origin.Y + float64(i/c)*g.CellHeight,
	}
}

// Rect returns a w x h rect anchored at item i's cell corner. Keep w and h
// within the cell size so neighbouring items do not overlap.
func (g Grid) Rect(i int, w, h float64) Rect {
	p := g.Cell(i)
	return Rect{Left: p.X, Top: p.Y, Width: w, Height: h}
}

// Rects returns Rect(i, w, h) for the first n items.
func (g Grid) Rects(n int, w, h float64) []Rect {
	out := make([]Rect, 0, max(n, 0))
	for i := 0; i < n; i++ {
		out = append(out, g.Rect(i, w, h))
	}
	return out
}

// Bounds returns the area covered by the cells of n items.
func (g Grid) Bounds(n int) Rect {
	if n <= 0 {
		return Rect{Left: g.Origin.X, Top: g.Origin.Y}
	}
	c := g.columns()
	cols := min(n, c)
	rows := (n + c - 1) / c
	return Rect{
		Left:   g.Origin.X,
		Top:    g.Origin.Y,
		Width:  float64(cols) * g.CellWidth,
		Height: float64(rows) * g.CellHeight,
	}
}
