package tools

import (
	"image/color"

	"github.com/piwi3910/sketchboard/internal/model"
	"github.com/piwi3910/sketchboard/internal/render"
)

var marqueeStyles = model.Styles{
	Stroke:    color.NRGBA{R: 0x6b, G: 0xe8, B: 0xb2, A: 0xff},
	Fill:      color.NRGBA{R: 0x6b, G: 0xe8, B: 0xb2, A: 0x7f},
	LineWidth: 1,
}

// selectTool lets the scene claim a press first (resize or drag of the
// current selection). Unclaimed presses start a marquee that selects on
// release.
type selectTool struct {
	deps         Deps
	transforming bool
	marquee      bool
	start        model.Point
	cur          model.Point
}

func NewSelect(d Deps) Tool { return &selectTool{deps: d.withDefaults()} }

func (t *selectTool) Name() string { return NameSelect }

func (t *selectTool) PointerDown(p model.Point) {
	if t.deps.Scene.PointerDown(p) {
		t.transforming = true
		return
	}
	t.marquee = true
	t.start, t.cur = p, p
}

func (t *selectTool) PointerMove(p model.Point) {
	if t.marquee {
		t.cur = p
		return
	}
	// Transforms and idle hover both go to the scene.
	t.deps.Scene.PointerMove(p)
}

func (t *selectTool) PointerUp(p model.Point) {
	switch {
	case t.transforming:
		t.transforming = false
		t.deps.Scene.PointerUp(p)
	case t.marquee:
		t.marquee = false
		t.deps.Scene.SelectArea(t.start, p)
	}
}

func (t *selectTool) Preview(s render.Surface) {
	if t.marquee {
		s.DrawRect(model.RectFromPoints(t.start, t.cur), marqueeStyles)
	}
}

func (t *selectTool) Cancel() {
	if t.transforming {
		t.deps.Scene.PointerUp(t.cur)
	}
	t.transforming = false
	t.marquee = false
}
