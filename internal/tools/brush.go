package tools

import (
	"math"

	"github.com/piwi3910/sketchboard/internal/model"
	"github.com/piwi3910/sketchboard/internal/render"
	"github.com/piwi3910/sketchboard/internal/simplify"
)

// brushTool samples a freehand stroke. Points closer than the configured
// spacing to the previous sample are skipped; the stroke is simplified
// once on release.
type brushTool struct {
	deps   Deps
	down   bool
	points []model.Point
}

func NewBrush(d Deps) Tool { return &brushTool{deps: d.withDefaults()} }

func (t *brushTool) Name() string { return NameBrush }

func (t *brushTool) PointerDown(p model.Point) {
	t.down = true
	t.points = append(t.points[:0], p)
}

func (t *brushTool) PointerMove(p model.Point) {
	if !t.down {
		return
	}
	last := t.points[len(t.points)-1]
	if math.Hypot(p.X-last.X, p.Y-last.Y) > t.deps.Config.BrushSpacing {
		t.points = append(t.points, p)
	}
}

func (t *brushTool) PointerUp(p model.Point) {
	if !t.down {
		return
	}
	t.down = false
	if t.points[len(t.points)-1] != p {
		t.points = append(t.points, p)
	}
	pts := simplify.Simplify(t.points, t.deps.Config.SimplifyTolerance, true)
	t.points = t.points[:0]
	if len(pts) < 2 {
		return
	}
	box, _ := model.PointsBounds(pts)
	commit(t.deps, model.NewItem(model.ShapeBrush, box, pts, t.deps.Context.Styles()))
}

func (t *brushTool) Preview(s render.Surface) {
	if !t.down {
		return
	}
	if path := render.SmoothPath(t.points); path != nil {
		s.DrawPolyline(path, t.deps.Context.Styles())
	}
}

func (t *brushTool) Cancel() {
	t.down = false
	t.points = t.points[:0]
}
