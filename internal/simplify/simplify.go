// Package simplify reduces freehand strokes to fewer points.
package simplify

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/paulmach/orb/simplify"

	"github.com/piwi3910/sketchboard/internal/model"
)

// Simplify drops points that deviate less than tolerance px from the
// stroke, using Douglas-Peucker. Without highQuality a radial distance
// pass runs first, which is faster on dense input but coarser. The first
// and last points are always kept and the input is never modified.
func Simplify(points []model.Point, tolerance float64, highQuality bool) []model.Point {
	if len(points) <= 2 || tolerance <= 0 {
		out := make([]model.Point, len(points))
		copy(out, points)
		return out
	}

	ls := make(orb.LineString, len(points))
	for i, p := range points {
		ls[i] = orb.Point{p.X, p.Y}
	}
	if !highQuality {
		ls = simplify.Radial(planar.Distance, tolerance).LineString(ls)
	}
	ls = simplify.DouglasPeucker(tolerance).LineString(ls)

	out := make([]model.Point, len(ls))
	for i, p := range ls {
		out[i] = model.Point{X: p.X(), Y: p.Y()}
	}
	return out
}
