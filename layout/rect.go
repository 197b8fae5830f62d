// Package layout draws deck primitives onto a slide and positions them.
//
// Coordinates are inches from the top-left corner of the canvas. Nothing in
// this package checks that shapes stay on the canvas; use
// pptx.Presentation.CheckLayout for that.
package layout

import "github.com/VantageDataChat/pitchdeck/pptx"

// Point is a position in inches.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle in inches.
type Rect struct {
	Left, Top, Width, Height float64
}

// R is shorthand for Rect{left, top, width, height}.
func R(left, top, width, height float64) Rect {
	return Rect{Left: left, Top: top, Width: width, Height: height}
}

func (r Rect) Right() float64  { return r.Left + r.Width }
func (r Rect) Bottom() float64 { return r.Top + r.Height }

// Origin returns the top-left corner.
func (r Rect) Origin() Point { return Point{X: r.Left, Y: r.Top} }

// Offset returns r moved by dx, dy.
func (r Rect) Offset(dx, dy float64) Rect {
	r.Left += dx
	r.Top += dy
	return r
}

// At returns a rect of size w x h positioned dx, dy from r's corner.
func (r Rect) At(dx, dy, w, h float64) Rect {
	return Rect{Left: r.Left + dx, Top: r.Top + dy, Width: w, Height: h}
}

// Inset shrinks r by d on every side.
func (r Rect) Inset(d float64) Rect {
	return Rect{Left: r.Left + d, Top: r.Top + d, Width: r.Width - 2*d, Height: r.Height - 2*d}
}

// Within reports whether r lies inside a w x h canvas anchored at the origin.
func (r Rect) Within(w, h float64) bool {
	return r.Left >= 0 && r.Top >= 0 && r.Right() <= w+epsilon && r.Bottom() <= h+epsilon
}

// Contains reports whether o lies inside r.
func (r Rect) Contains(o Rect) bool {
	return o.Left >= r.Left-epsilon && o.Top >= r.Top-epsilon &&
		o.Right() <= r.Right()+epsilon && o.Bottom() <= r.Bottom()+epsilon
}

// Overlaps reports whether r and o share any area. Touching edges do not count.
func (r Rect) Overlaps(o Rect) bool {
	return r.Left < o.Right()-epsilon && o.Left < r.Right()-epsilon &&
		r.Top < o.Bottom()-epsilon && o.Top < r.Bottom()-epsilon
}

// EMU returns the rect in document units.
func (r Rect) EMU() (x, y, w, h int64) {
	return pptx.Inch(r.Left), pptx.Inch(r.Top), pptx.Inch(r.Width), pptx.Inch(r.Height)
}

// epsilon absorbs float error from sums like 0.5 + 3*1.05.
const epsilon = 1e-9
