package engine

import "github.com/piwi3910/sketchboard/internal/model"

// ResizeHandler scales a group of items by dragging one corner of their
// bounding rectangle. States: idle and resizing.
type ResizeHandler struct {
	resizing bool
	anchor   model.Point
	corner   model.Corner
}

// Start enters the resizing state anchored at p, holding corner.
func (h *ResizeHandler) Start(p model.Point, corner model.Corner) {
	h.resizing = true
	h.anchor = p
	h.corner = corner
}

// Stop returns to idle and forgets the anchor and corner.
func (h *ResizeHandler) Stop() {
	h.resizing = false
	h.anchor = model.Point{}
	h.corner = model.CornerNone
}

func (h *ResizeHandler) Active() bool { return h.resizing }

// Corner is the handle currently held, CornerNone when idle.
func (h *ResizeHandler) Corner() model.Corner { return h.corner }

// Resize moves the edges owned by the active corner by the motion since the
// previous call and returns the normalized rectangle. When the rectangle
// turns inside out the held corner is relabeled so it stays under the
// pointer. Every item is re-projected proportionally from rect onto the new
// rectangle. A move that would flatten an axis of extent is skipped: the
// items would lose their fractions inside a zero-size rect for good.
func (h *ResizeHandler) Resize(p model.Point, items []*model.Item, rect model.Rect) model.Rect {
	if !h.resizing || h.corner == model.CornerNone {
		return rect
	}
	d := p.Sub(h.anchor)

	raw := rect
	if h.corner.IsLeft() {
		raw.X += d.X
	} else {
		raw.X2 += d.X
	}
	if h.corner.IsTop() {
		raw.Y += d.Y
	} else {
		raw.Y2 += d.Y
	}

	next := model.CorrectRectAngles(raw)
	if collapses(rect.Width(), next.Width()) || collapses(rect.Height(), next.Height()) {
		// Hold the anchor so the next event carries the edge past.
		return rect
	}
	if raw.X > raw.X2 {
		h.corner = h.corner.FlipHorizontal()
	}
	if raw.Y > raw.Y2 {
		h.corner = h.corner.FlipVertical()
	}

	for _, it := range items {
		it.Remap(rect, next)
	}

	h.anchor = p
	return next
}

func collapses(before, after float64) bool {
	return before > 0 && after == 0
}
