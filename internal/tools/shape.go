package tools

import (
	"github.com/piwi3910/sketchboard/internal/model"
	"github.com/piwi3910/sketchboard/internal/render"
)

// boxTool draws a shape inscribed in the box spanned by press and
// release. Rect and ellipse differ only in kind.
type boxTool struct {
	deps  Deps
	kind  model.ShapeKind
	name  string
	down  bool
	start model.Point
	cur   model.Point
}

func NewRect(d Deps) Tool {
	return &boxTool{deps: d.withDefaults(), kind: model.ShapeRect, name: NameRect}
}

func NewEllipse(d Deps) Tool {
	return &boxTool{deps: d.withDefaults(), kind: model.ShapeEllipse, name: NameEllipse}
}

func (t *boxTool) Name() string { return t.name }

func (t *boxTool) PointerDown(p model.Point) {
	t.down = true
	t.start, t.cur = p, p
}

func (t *boxTool) PointerMove(p model.Point) {
	if t.down {
		t.cur = p
	}
}

func (t *boxTool) PointerUp(p model.Point) {
	if !t.down {
		return
	}
	t.down = false
	box := model.RectFromPoints(t.start, p)
	if box.IsDegenerate() {
		return
	}
	commit(t.deps, model.NewItem(t.kind, box, nil, t.deps.Context.Styles()))
}

func (t *boxTool) Preview(s render.Surface) {
	if !t.down {
		return
	}
	box := model.RectFromPoints(t.start, t.cur)
	st := outlineOnly(t.deps.Context.Styles())
	if t.kind == model.ShapeEllipse {
		s.DrawEllipse(box, st)
		return
	}
	s.DrawRect(box, st)
}

func (t *boxTool) Cancel() { t.down = false }

// outlineOnly strips the fill so previews show just the stroke.
func outlineOnly(st model.Styles) model.Styles {
	st.Fill.A = 0
	return st
}
