package model

import "math"

// RectsIntersect reports whether the open interiors of a and b overlap.
// Rects that only share an edge do not intersect.
func RectsIntersect(a, b Rect) bool {
	return a.X < b.X2 && a.X2 > b.X && a.Y < b.Y2 && a.Y2 > b.Y
}

// IsPointInRect reports whether p lies inside r, edges included.
func IsPointInRect(p Point, r Rect) bool {
	return p.X >= r.X && p.X <= r.X2 && p.Y >= r.Y && p.Y <= r.Y2
}

// BoundingRect returns the smallest normalized rect covering every item's
// box. It returns false for an empty input; there is no zero-size
// "empty" rect.
func BoundingRect(items []*Item) (Rect, bool) {
	if len(items) == 0 {
		return Rect{}, false
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, it := range items {
		b := CorrectRectAngles(it.Data.Rect)
		minX = math.Min(minX, b.X)
		minY = math.Min(minY, b.Y)
		maxX = math.Max(maxX, b.X2)
		maxY = math.Max(maxY, b.Y2)
	}
	return Rect{X: minX, Y: minY, X2: maxX, Y2: maxY}, true
}

// CorrectRectAngles orders the corners so that X <= X2 and Y <= Y2.
func CorrectRectAngles(r Rect) Rect {
	return Rect{
		X:  math.Min(r.X, r.X2),
		Y:  math.Min(r.Y, r.Y2),
		X2: math.Max(r.X, r.X2),
		Y2: math.Max(r.Y, r.Y2),
	}
}

// PointsBounds returns the normalized bounds of pts, false when pts is empty.
func PointsBounds(pts []Point) (Rect, bool) {
	if len(pts) == 0 {
		return Rect{}, false
	}
	r := Rect{X: pts[0].X, Y: pts[0].Y, X2: pts[0].X, Y2: pts[0].Y}
	for _, p := range pts[1:] {
		r.X = math.Min(r.X, p.X)
		r.Y = math.Min(r.Y, p.Y)
		r.X2 = math.Max(r.X2, p.X)
		r.Y2 = math.Max(r.Y2, p.Y)
	}
	return r, true
}

// MapPoint re-projects p from its fractional position inside from onto to.
// An axis along which from has zero extent maps to to's minimum edge.
func MapPoint(p Point, from, to Rect) Point {
	return Point{
		X: to.X + fraction(p.X-from.X, from.Width())*to.Width(),
		Y: to.Y + fraction(p.Y-from.Y, from.Height())*to.Height(),
	}
}

func fraction(offset, extent float64) float64 {
	if extent == 0 {
		return 0
	}
	return offset / extent
}
