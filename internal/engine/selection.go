package engine

import "github.com/piwi3910/sketchboard/internal/model"

// SelectionManager owns the selected items and their aggregate bounding
// rectangle. The rectangle is always recomputed from the items, never
// patched incrementally.
type SelectionManager struct {
	items   map[string]*model.Item
	rect    model.Rect
	hasRect bool
}

// NewSelectionManager returns an empty selection.
func NewSelectionManager() *SelectionManager {
	return &SelectionManager{items: make(map[string]*model.Item)}
}

// Select replaces the current selection with items.
func (m *SelectionManager) Select(items []*model.Item) {
	m.Clear()
	for _, it := range items {
		m.items[it.ID] = it
	}
	m.UpdateSelectionRect()
}

// Deselect drops a single item from the selection and returns it.
func (m *SelectionManager) Deselect(id string) (*model.Item, bool) {
	it, ok := m.items[id]
	if !ok {
		return nil, false
	}
	delete(m.items, id)
	m.UpdateSelectionRect()
	return it, true
}

// Clear empties the selection. Callers must return the items to the
// committed store themselves.
func (m *SelectionManager) Clear() {
	clear(m.items)
	m.rect = model.Rect{}
	m.hasRect = false
}

// UpdateSelectionRect recomputes the bounding rectangle over the selected
// items. Call it after every geometry change of a selected item.
func (m *SelectionManager) UpdateSelectionRect() {
	m.rect, m.hasRect = model.BoundingRect(m.Items())
}

// IsPointInSelection reports whether p is inside the selection rectangle.
// It is false when nothing is selected.
func (m *SelectionManager) IsPointInSelection(p model.Point) bool {
	if !m.hasRect {
		return false
	}
	return model.IsPointInRect(p, m.rect)
}

// Rect returns the selection rectangle, false when nothing is selected.
func (m *SelectionManager) Rect() (model.Rect, bool) {
	return m.rect, m.hasRect
}

// Items returns the selected items in no particular order.
func (m *SelectionManager) Items() []*model.Item {
	out := make([]*model.Item, 0, len(m.items))
	for _, it := range m.items {
		out = append(out, it)
	}
	return out
}

// Item looks up a selected item by id.
func (m *SelectionManager) Item(id string) (*model.Item, bool) {
	it, ok := m.items[id]
	return it, ok
}

// Len is the number of selected items.
func (m *SelectionManager) Len() int { return len(m.items) }

// HasSelection reports whether any item is selected.
func (m *SelectionManager) HasSelection() bool { return len(m.items) > 0 }

// FindIntersectingItems returns the items whose box intersects area.
func FindIntersectingItems(items []*model.Item, area model.Rect) []*model.Item {
	var out []*model.Item
	for _, it := range items {
		if model.RectsIntersect(it.Data.Rect, area) {
			out = append(out, it)
		}
	}
	return out
}
