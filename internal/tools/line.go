package tools

import (
	"github.com/piwi3910/sketchboard/internal/model"
	"github.com/piwi3910/sketchboard/internal/render"
)

// lineTool keeps the exact endpoints as the item's dots so a resize can
// flip the line's direction. The box is their normalized bounds.
type lineTool struct {
	deps  Deps
	down  bool
	start model.Point
	cur   model.Point
}

func NewLine(d Deps) Tool { return &lineTool{deps: d.withDefaults()} }

func (t *lineTool) Name() string { return NameLine }

func (t *lineTool) PointerDown(p model.Point) {
	t.down = true
	t.start, t.cur = p, p
}

func (t *lineTool) PointerMove(p model.Point) {
	if t.down {
		t.cur = p
	}
}

func (t *lineTool) PointerUp(p model.Point) {
	if !t.down {
		return
	}
	t.down = false
	if p == t.start {
		return
	}
	box := model.RectFromPoints(t.start, p)
	commit(t.deps, model.NewItem(model.ShapeLine, box, []model.Point{t.start, p}, t.deps.Context.Styles()))
}

func (t *lineTool) Preview(s render.Surface) {
	if t.down && t.cur != t.start {
		s.DrawLine(t.start, t.cur, t.deps.Context.Styles())
	}
}

func (t *lineTool) Cancel() { t.down = false }
