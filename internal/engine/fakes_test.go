package engine

import "github.com/piwi3910/sketchboard/internal/model"

type fakePainter struct {
	mainCalls int
	editCalls int
	main      []*model.Item
	edit      []*model.Item
	editRect  *model.Rect
}

func (p *fakePainter) RenderMain(items []*model.Item) {
	p.mainCalls++
	p.main = items
}

func (p *fakePainter) RenderEdit(items []*model.Item, rect *model.Rect) {
	p.editCalls++
	p.edit = items
	p.editRect = rect
}

// fakeLoop runs frames only when the test calls Tick.
type fakeLoop struct {
	running bool
	frame   func()
	starts  int
	stops   int
}

func (l *fakeLoop) Start(frame func()) {
	if l.running {
		return
	}
	l.running = true
	l.frame = frame
	l.starts++
}

func (l *fakeLoop) Stop() {
	if !l.running {
		return
	}
	l.running = false
	l.stops++
}

func (l *fakeLoop) Running() bool { return l.running }

func (l *fakeLoop) Tick() {
	if l.running && l.frame != nil {
		l.frame()
	}
}

func rectItem(id string, x, y, x2, y2 float64) *model.Item {
	return &model.Item{
		ID:   id,
		Kind: model.ShapeRect,
		Data: model.ItemData{Rect: model.Rect{X: x, Y: y, X2: x2, Y2: y2}},
	}
}

func pt(x, y float64) model.Point { return model.Point{X: x, Y: y} }
