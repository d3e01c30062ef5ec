package engine

import (
	"math"

	"github.com/piwi3910/sketchboard/internal/model"
)

// CornerDetector decides which resize handle of a rectangle, if any, a
// point is grabbing.
type CornerDetector struct {
	Radius float64
}

// NewCornerDetector returns a detector with the given radius, falling back
// to model.DefaultCornerRadius for non-positive values.
func NewCornerDetector(radius float64) CornerDetector {
	if radius <= 0 {
		radius = model.DefaultCornerRadius
	}
	return CornerDetector{Radius: radius}
}

// Detect returns the first corner whose horizontal and vertical edges are
// both within Radius of p, checking LEFT_TOP, LEFT_BOTTOM, RIGHT_TOP and
// RIGHT_BOTTOM in that order. Rects smaller than 2*Radius can match more
// than one corner; the order decides.
func (d CornerDetector) Detect(p model.Point, r model.Rect) model.Corner {
	nearTop := math.Abs(p.Y-r.Y) < d.Radius
	nearBottom := math.Abs(p.Y-r.Y2) < d.Radius
	nearLeft := math.Abs(p.X-r.X) < d.Radius
	nearRight := math.Abs(p.X-r.X2) < d.Radius

	switch {
	case nearLeft && nearTop:
		return model.CornerLeftTop
	case nearLeft && nearBottom:
		return model.CornerLeftBottom
	case nearRight && nearTop:
		return model.CornerRightTop
	case nearRight && nearBottom:
		return model.CornerRightBottom
	}
	return model.CornerNone
}
