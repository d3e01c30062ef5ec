// Package engine holds the selection and transform core of the board: the
// committed and selected stores, corner detection, drag and resize, and the
// overlay frame loop.
package engine

import (
	"errors"
	"log/slog"
	"slices"

	"github.com/piwi3910/sketchboard/internal/model"
)

var (
	ErrNoPainter   = errors.New("engine: scene requires a layer painter")
	ErrNoFrameLoop = errors.New("engine: scene requires a frame loop")
)

// LayerPainter repaints the two board layers from the scene's current
// state. RenderEdit receives a nil rect when nothing is selected.
type LayerPainter interface {
	RenderMain(items []*model.Item)
	RenderEdit(items []*model.Item, rect *model.Rect)
}

// SceneConfig wires a Scene to its collaborators.
type SceneConfig struct {
	Painter      LayerPainter
	Loop         FrameLoop
	CornerRadius float64      // 0 uses model.DefaultCornerRadius
	Logger       *slog.Logger // nil uses slog.Default()
}

// Scene orchestrates the board. Every item it knows is either committed
// or selected, never both. All methods must be called from the UI
// goroutine.
type Scene struct {
	committed map[string]*model.Item
	selection *SelectionManager
	order     map[string]uint64
	seq       uint64

	corners CornerDetector
	drag    DragHandler
	resize  ResizeHandler
	cursor  Cursor

	painter LayerPainter
	loop    FrameLoop
	log     *slog.Logger
}

// NewScene builds a scene. A missing painter or loop is fatal.
func NewScene(cfg SceneConfig) (*Scene, error) {
	if cfg.Painter == nil {
		return nil, ErrNoPainter
	}
	if cfg.Loop == nil {
		return nil, ErrNoFrameLoop
	}
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Scene{
		committed: make(map[string]*model.Item),
		selection: NewSelectionManager(),
		order:     make(map[string]uint64),
		corners:   NewCornerDetector(cfg.CornerRadius),
		painter:   cfg.Painter,
		loop:      cfg.Loop,
		log:       log,
	}, nil
}

// ─── Store operations ──────────────────────────────────────

// AddItem commits an item and repaints the main layer. Tools discard
// degenerate shapes before calling. Re-adding a known id replaces the
// stored item and drops it from the selection.
func (s *Scene) AddItem(it *model.Item) {
	if it == nil {
		return
	}
	if _, ok := s.order[it.ID]; !ok {
		s.seq++
		s.order[it.ID] = s.seq
	}
	if _, ok := s.selection.Deselect(it.ID); ok {
		s.afterSelectionChange()
	}
	s.committed[it.ID] = it
	s.repaintMain()
}

// RemoveItem drops an item from whichever store holds it.
func (s *Scene) RemoveItem(id string) bool {
	if _, ok := s.committed[id]; ok {
		delete(s.committed, id)
		delete(s.order, id)
		s.repaintMain()
		return true
	}
	if _, ok := s.selection.Deselect(id); ok {
		delete(s.order, id)
		s.afterSelectionChange()
		return true
	}
	return false
}

// Item looks an item up in either store.
func (s *Scene) Item(id string) (*model.Item, bool) {
	if it, ok := s.committed[id]; ok {
		return it, true
	}
	return s.selection.Item(id)
}

// Items returns the committed items in creation order.
func (s *Scene) Items() []*model.Item {
	out := make([]*model.Item, 0, len(s.committed))
	for _, it := range s.committed {
		out = append(out, it)
	}
	return s.sorted(out)
}

// SelectedItems returns the selected items in creation order.
func (s *Scene) SelectedItems() []*model.Item {
	return s.sorted(s.selection.Items())
}

// AllItems returns every item on the board in creation order.
func (s *Scene) AllItems() []*model.Item {
	return s.sorted(append(s.Items(), s.selection.Items()...))
}

func (s *Scene) SelectionRect() (model.Rect, bool) { return s.selection.Rect() }
func (s *Scene) HasSelection() bool                { return s.selection.HasSelection() }

// ─── Selection ─────────────────────────────────────────────

// SelectArea selects every committed item intersecting the rectangle
// spanned by start and end. Any prior selection is returned to the
// committed store first, so a drag over empty space deselects.
func (s *Scene) SelectArea(start, end model.Point) []*model.Item {
	area := model.RectFromPoints(start, end)
	s.releaseSelection()

	matches := FindIntersectingItems(s.Items(), area)
	if len(matches) == 0 {
		s.afterSelectionChange()
		s.repaintMain()
		return nil
	}
	s.selectItems(matches)
	return matches
}

// SelectAll moves every committed item into the selection.
func (s *Scene) SelectAll() []*model.Item {
	s.releaseSelection()
	items := s.Items()
	if len(items) == 0 {
		s.afterSelectionChange()
		return nil
	}
	s.selectItems(items)
	return items
}

// Deselect returns one selected item to the committed store.
func (s *Scene) Deselect(id string) bool {
	it, ok := s.selection.Deselect(id)
	if !ok {
		return false
	}
	s.committed[it.ID] = it
	s.afterSelectionChange()
	s.repaintMain()
	return true
}

// DeselectAll returns every selected item to the committed store, stops
// the overlay loop and repaints the main layer.
func (s *Scene) DeselectAll() {
	if !s.selection.HasSelection() {
		return
	}
	s.releaseSelection()
	s.afterSelectionChange()
	s.repaintMain()
}

// DeleteSelection removes every selected item from the board.
func (s *Scene) DeleteSelection() int {
	items := s.selection.Items()
	for _, it := range items {
		delete(s.order, it.ID)
	}
	s.selection.Clear()
	s.stopTransforms()
	s.afterSelectionChange()
	return len(items)
}

func (s *Scene) selectItems(items []*model.Item) {
	for _, it := range items {
		delete(s.committed, it.ID)
	}
	s.selection.Select(items)
	s.log.Debug("selection changed", "count", len(items))
	s.repaintMain()
	s.afterSelectionChange()
}

// releaseSelection moves selected items back to the committed store
// without repainting.
func (s *Scene) releaseSelection() {
	for _, it := range s.selection.Items() {
		s.committed[it.ID] = it
	}
	s.selection.Clear()
	s.stopTransforms()
}

// afterSelectionChange keeps the overlay loop alive exactly while the
// selection is non-empty.
func (s *Scene) afterSelectionChange() {
	if s.selection.HasSelection() {
		if !s.loop.Running() {
			s.log.Debug("overlay loop started")
			s.loop.Start(s.frame)
		}
		return
	}
	s.stopLoop()
	s.painter.RenderEdit(nil, nil)
}

// frame repaints the overlay and cancels the loop as soon as the
// selection is empty.
func (s *Scene) frame() {
	rect, ok := s.selection.Rect()
	if !ok || !s.selection.HasSelection() {
		s.stopLoop()
		s.painter.RenderEdit(nil, nil)
		return
	}
	s.painter.RenderEdit(s.SelectedItems(), &rect)
}

func (s *Scene) stopLoop() {
	if s.loop.Running() {
		s.log.Debug("overlay loop stopped")
		s.loop.Stop()
	}
}

// ─── Pointer input ─────────────────────────────────────────

// PointerDown starts a resize when p grabs a corner handle, otherwise a
// drag when p is inside the selection. It reports whether a transform
// started.
func (s *Scene) PointerDown(p model.Point) bool {
	if s.drag.Active() || s.resize.Active() {
		return true
	}
	rect, ok := s.selection.Rect()
	if !ok {
		return false
	}
	if c := s.corners.Detect(p, rect); c != model.CornerNone {
		s.resize.Start(p, c)
		s.cursor = CursorForCorner(c)
		s.log.Debug("resize started", "corner", c.String())
		return true
	}
	if s.selection.IsPointInSelection(p) {
		s.drag.Start(p)
		s.cursor = CursorMove
		s.log.Debug("drag started")
		return true
	}
	return false
}

// PointerMove feeds the active transform, or updates the hover cursor
// when idle.
func (s *Scene) PointerMove(p model.Point) {
	rect, ok := s.selection.Rect()
	switch {
	case s.resize.Active() && ok:
		s.resize.Resize(p, s.selection.Items(), rect)
		s.selection.UpdateSelectionRect()
		s.cursor = CursorForCorner(s.resize.Corner())
	case s.drag.Active() && ok:
		s.drag.Drag(p, s.selection.Items(), rect)
		s.selection.UpdateSelectionRect()
	default:
		s.cursor = s.hoverCursor(p)
	}
}

// PointerUp ends the active transform and reports whether one was active.
func (s *Scene) PointerUp(p model.Point) bool {
	active := s.drag.Active() || s.resize.Active()
	if active {
		s.log.Debug("transform finished", "drag", s.drag.Active(), "resize", s.resize.Active())
	}
	s.stopTransforms()
	s.cursor = s.hoverCursor(p)
	return active
}

// Cursor is the pointer feedback for the last pointer event.
func (s *Scene) Cursor() Cursor { return s.cursor }

// Transforming reports whether a drag or resize is in progress.
func (s *Scene) Transforming() bool { return s.drag.Active() || s.resize.Active() }

func (s *Scene) hoverCursor(p model.Point) Cursor {
	rect, ok := s.selection.Rect()
	if !ok {
		return CursorDefault
	}
	if c := s.corners.Detect(p, rect); c != model.CornerNone {
		return CursorForCorner(c)
	}
	if s.selection.IsPointInSelection(p) {
		return CursorMove
	}
	return CursorDefault
}

func (s *Scene) stopTransforms() {
	s.drag.Stop()
	s.resize.Stop()
}

// ─── Rendering ─────────────────────────────────────────────

func (s *Scene) repaintMain() {
	s.painter.RenderMain(s.Items())
}

// Snapshot returns deep copies of every item in creation order, detached
// from later edits.
func (s *Scene) Snapshot() []*model.Item {
	items := s.AllItems()
	out := make([]*model.Item, len(items))
	for i, it := range items {
		out[i] = it.Clone()
	}
	return out
}

func (s *Scene) sorted(items []*model.Item) []*model.Item {
	slices.SortFunc(items, func(a, b *model.Item) int {
		oa, ob := s.order[a.ID], s.order[b.ID]
		switch {
		case oa < ob:
			return -1
		case oa > ob:
			return 1
		}
		return 0
	})
	return items
}
