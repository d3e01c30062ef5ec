package render

import "github.com/piwi3910/sketchboard/internal/model"

// curveSteps is the number of segments each quadratic piece is flattened to.
const curveSteps = 8

// SmoothPath turns freehand points into a flattened polyline. Interior
// points act as quadratic control points and the curve passes through
// the midpoints between them; the last piece ends exactly on the final
// point. Fewer than two points yield nil.
func SmoothPath(points []model.Point) []model.Point {
	n := len(points)
	if n < 2 {
		return nil
	}
	out := []model.Point{points[0]}
	cur := points[0]
	for i := 1; i < n-2; i++ {
		mid := model.Point{
			X: (points[i].X + points[i+1].X) / 2,
			Y: (points[i].Y + points[i+1].Y) / 2,
		}
		out = appendQuad(out, cur, points[i], mid)
		cur = mid
	}
	return appendQuad(out, cur, points[n-2], points[n-1])
}

func appendQuad(out []model.Point, p0, ctrl, p1 model.Point) []model.Point {
	for s := 1; s <= curveSteps; s++ {
		t := float64(s) / curveSteps
		u := 1 - t
		out = append(out, model.Point{
			X: u*u*p0.X + 2*u*t*ctrl.X + t*t*p1.X,
			Y: u*u*p0.Y + 2*u*t*ctrl.Y + t*t*p1.Y,
		})
	}
	return out
}
