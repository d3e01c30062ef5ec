package widgets

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/sketchboard/internal/model"
)

// Layer is a transparent drawing surface for the board. Draw calls
// collect canvas objects until Flush swaps them in and refreshes, so a
// half-painted frame is never shown.
type Layer struct {
	widget.BaseWidget
	pending []fyne.CanvasObject
	objects []fyne.CanvasObject
}

func NewLayer() *Layer {
	l := &Layer{}
	l.ExtendBaseWidget(l)
	return l
}

// CreateRenderer implements fyne.Widget.
func (l *Layer) CreateRenderer() fyne.WidgetRenderer {
	return &layerRenderer{l: l}
}

// Objects returns the canvas objects of the last flushed paint.
func (l *Layer) Objects() []fyne.CanvasObject { return l.objects }

func (l *Layer) Clear() { l.pending = nil }

func (l *Layer) Flush() {
	l.objects = l.pending
	l.pending = nil
	l.Refresh()
}

func (l *Layer) DrawRect(r model.Rect, st model.Styles) {
	rect := canvas.NewRectangle(fillColor(st))
	rect.StrokeColor = st.Stroke
	rect.StrokeWidth = float32(st.LineWidth)
	rect.Move(pos(model.Point{X: r.X, Y: r.Y}))
	rect.Resize(fyne.NewSize(float32(r.Width()), float32(r.Height())))
	l.pending = append(l.pending, rect)
}

func (l *Layer) DrawEllipse(r model.Rect, st model.Styles) {
	c := canvas.NewCircle(fillColor(st))
	c.StrokeColor = st.Stroke
	c.StrokeWidth = float32(st.LineWidth)
	c.Position1 = pos(model.Point{X: r.X, Y: r.Y})
	c.Position2 = pos(model.Point{X: r.X2, Y: r.Y2})
	l.pending = append(l.pending, c)
}

func (l *Layer) DrawLine(a, b model.Point, st model.Styles) {
	l.pending = append(l.pending, segment(a, b, st))
}

func (l *Layer) DrawPolyline(points []model.Point, st model.Styles) {
	for i := 1; i < len(points); i++ {
		l.pending = append(l.pending, segment(points[i-1], points[i], st))
	}
}

func segment(a, b model.Point, st model.Styles) *canvas.Line {
	line := canvas.NewLine(st.Stroke)
	line.StrokeWidth = float32(st.LineWidth)
	line.Position1 = pos(a)
	line.Position2 = pos(b)
	return line
}

func fillColor(st model.Styles) color.Color {
	if st.Fill.A == 0 {
		return color.Transparent
	}
	return st.Fill
}

func pos(p model.Point) fyne.Position {
	return fyne.NewPos(float32(p.X), float32(p.Y))
}

type layerRenderer struct {
	l *Layer
}

func (r *layerRenderer) Layout(size fyne.Size)        {}
func (r *layerRenderer) MinSize() fyne.Size           { return fyne.NewSize(0, 0) }
func (r *layerRenderer) Refresh()                     {}
func (r *layerRenderer) Destroy()                     {}
func (r *layerRenderer) Objects() []fyne.CanvasObject { return r.l.objects }
