package model

import (
	"image/color"

	"github.com/google/uuid"
)

// Point is a canvas-relative coordinate in device pixels.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Add returns p shifted by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Rect is an axis-aligned box given by two corners. Normalized rects
// satisfy X <= X2 and Y <= Y2; see CorrectRectAngles.
type Rect struct {
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`
}

// RectFromPoints builds a normalized rect spanning a and b.
func RectFromPoints(a, b Point) Rect {
	return CorrectRectAngles(Rect{X: a.X, Y: a.Y, X2: b.X, Y2: b.Y})
}

func (r Rect) Width() float64  { return r.X2 - r.X }
func (r Rect) Height() float64 { return r.Y2 - r.Y }

// Translate shifts both corners by dx, dy.
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, X2: r.X2 + dx, Y2: r.Y2 + dy}
}

// Grow returns the rect grown by m on every side (negative shrinks).
func (r Rect) Grow(m float64) Rect {
	return Rect{X: r.X - m, Y: r.Y - m, X2: r.X2 + m, Y2: r.Y2 + m}
}

// IsDegenerate reports whether the rect has zero width or zero height.
func (r Rect) IsDegenerate() bool {
	return r.X == r.X2 || r.Y == r.Y2
}

// Corners returns the four corner points in LEFT_TOP, RIGHT_TOP,
// LEFT_BOTTOM, RIGHT_BOTTOM order.
func (r Rect) Corners() [4]Point {
	return [4]Point{
		{X: r.X, Y: r.Y},
		{X: r.X2, Y: r.Y},
		{X: r.X, Y: r.Y2},
		{X: r.X2, Y: r.Y2},
	}
}

// ShapeKind identifies how an item is painted.
type ShapeKind string

const (
	ShapeRect    ShapeKind = "rect"
	ShapeEllipse ShapeKind = "ellipse"
	ShapeLine    ShapeKind = "line"
	ShapeBrush   ShapeKind = "brush"
)

// LineCap mirrors the 2D context line cap setting.
type LineCap int

const (
	CapButt LineCap = iota
	CapRound
	CapSquare
)

func (c LineCap) String() string {
	switch c {
	case CapRound:
		return "round"
	case CapSquare:
		return "square"
	default:
		return "butt"
	}
}

// ParseLineCap is the inverse of LineCap.String. Unknown names map to CapButt.
func ParseLineCap(s string) LineCap {
	switch s {
	case "round":
		return CapRound
	case "square":
		return CapSquare
	default:
		return CapButt
	}
}

// Styles are the paint settings captured from the active drawing context
// when an item is created.
type Styles struct {
	Fill      color.NRGBA `json:"fill"`
	Stroke    color.NRGBA `json:"stroke"`
	LineWidth float64     `json:"line_width"`
	LineCap   LineCap     `json:"line_cap"`
}

// ItemData is the geometry of an item: its bounding box plus, for freehand
// strokes and lines, the ordered points that move with the box.
type ItemData struct {
	Rect
	Dots []Point `json:"dots,omitempty"`
}

// Item is a drawable shape. ID and Styles never change after creation;
// Data is mutated in place by drag and resize.
type Item struct {
	ID     string    `json:"id"`
	Kind   ShapeKind `json:"kind"`
	Data   ItemData  `json:"data"`
	Styles Styles    `json:"styles"`
}

// NewItem creates an item with a fresh id. The box is normalized and dots
// are copied.
func NewItem(kind ShapeKind, box Rect, dots []Point, styles Styles) *Item {
	var cp []Point
	if dots != nil {
		cp = make([]Point, len(dots))
		copy(cp, dots)
	}
	return &Item{
		ID:   uuid.NewString(),
		Kind: kind,
		Data: ItemData{
			Rect: CorrectRectAngles(box),
			Dots: cp,
		},
		Styles: styles,
	}
}

// Translate moves the box and every dot by dx, dy.
func (it *Item) Translate(dx, dy float64) {
	it.Data.Rect = it.Data.Rect.Translate(dx, dy)
	for i := range it.Data.Dots {
		it.Data.Dots[i].X += dx
		it.Data.Dots[i].Y += dy
	}
}

// Remap projects the box and dots from their relative position inside from
// onto to, then re-normalizes the box.
func (it *Item) Remap(from, to Rect) {
	a := MapPoint(Point{X: it.Data.X, Y: it.Data.Y}, from, to)
	b := MapPoint(Point{X: it.Data.X2, Y: it.Data.Y2}, from, to)
	it.Data.Rect = CorrectRectAngles(Rect{X: a.X, Y: a.Y, X2: b.X, Y2: b.Y})
	for i, d := range it.Data.Dots {
		it.Data.Dots[i] = MapPoint(d, from, to)
	}
}

// Clone returns a deep copy of the item, keeping its id.
func (it *Item) Clone() *Item {
	cp := *it
	if it.Data.Dots != nil {
		cp.Data.Dots = make([]Point, len(it.Data.Dots))
		copy(cp.Data.Dots, it.Data.Dots)
	}
	return &cp
}
