package engine

import "github.com/piwi3910/sketchboard/internal/model"

// DragHandler moves a group of items with the pointer. States: idle and
// dragging.
type DragHandler struct {
	dragging bool
	anchor   model.Point
}

// Start enters the dragging state anchored at p.
func (h *DragHandler) Start(p model.Point) {
	h.dragging = true
	h.anchor = p
}

// Stop returns to idle and forgets the anchor.
func (h *DragHandler) Stop() {
	h.dragging = false
	h.anchor = model.Point{}
}

func (h *DragHandler) Active() bool { return h.dragging }

// Drag shifts every item, dots included, and rect by the motion since the
// previous call, then re-anchors at p. Deltas are incremental, not
// cumulative from the start of the drag. When idle it returns rect as is.
func (h *DragHandler) Drag(p model.Point, items []*model.Item, rect model.Rect) model.Rect {
	if !h.dragging {
		return rect
	}
	d := p.Sub(h.anchor)
	for _, it := range items {
		it.Translate(d.X, d.Y)
	}
	h.anchor = p
	return rect.Translate(d.X, d.Y)
}
