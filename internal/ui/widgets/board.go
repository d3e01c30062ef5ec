package widgets

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/sketchboard/internal/engine"
	"github.com/piwi3910/sketchboard/internal/model"
	"github.com/piwi3910/sketchboard/internal/tools"
)

var boardBackground = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

// Board is the drawing area. It stacks the committed-item layer, the
// selection overlay and the tool preview, and forwards primary-button
// pointer events to the active tool.
type Board struct {
	widget.BaseWidget

	main    *Layer
	edit    *Layer
	preview *Layer

	tool    tools.Tool
	cursor  func() engine.Cursor
	pressed bool
}

var (
	_ desktop.Mouseable  = (*Board)(nil)
	_ desktop.Hoverable  = (*Board)(nil)
	_ desktop.Cursorable = (*Board)(nil)
)

func NewBoard() *Board {
	b := &Board{
		main:    NewLayer(),
		edit:    NewLayer(),
		preview: NewLayer(),
	}
	b.ExtendBaseWidget(b)
	return b
}

// MainLayer holds committed items.
func (b *Board) MainLayer() *Layer { return b.main }

// EditLayer holds selected items and the selection chrome.
func (b *Board) EditLayer() *Layer { return b.edit }

// PreviewLayer holds the active tool's in-progress feedback.
func (b *Board) PreviewLayer() *Layer { return b.preview }

// SetTool replaces the active tool. A gesture in progress is cancelled.
func (b *Board) SetTool(t tools.Tool) {
	if b.tool != nil {
		b.tool.Cancel()
	}
	b.tool = t
	b.pressed = false
	b.refreshPreview()
}

func (b *Board) Tool() tools.Tool { return b.tool }

// SetCursorSource installs the function consulted for the pointer shape.
func (b *Board) SetCursorSource(f func() engine.Cursor) { b.cursor = f }

// CreateRenderer implements fyne.Widget.
func (b *Board) CreateRenderer() fyne.WidgetRenderer {
	bg := canvas.NewRectangle(boardBackground)
	return widget.NewSimpleRenderer(container.NewStack(bg, b.main, b.edit, b.preview))
}

func (b *Board) MinSize() fyne.Size { return fyne.NewSize(200, 150) }

func (b *Board) MouseDown(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary || b.tool == nil {
		return
	}
	if b.pressed {
		// The last release landed outside the board.
		b.tool.Cancel()
	}
	b.pressed = true
	b.tool.PointerDown(point(ev.Position))
	b.refreshPreview()
}

func (b *Board) MouseUp(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary || !b.pressed || b.tool == nil {
		return
	}
	b.pressed = false
	b.tool.PointerUp(point(ev.Position))
	b.refreshPreview()
}

func (b *Board) MouseIn(*desktop.MouseEvent) {}

func (b *Board) MouseMoved(ev *desktop.MouseEvent) {
	if b.tool == nil {
		return
	}
	b.tool.PointerMove(point(ev.Position))
	if b.pressed {
		b.refreshPreview()
	}
}

// MouseOut keeps the gesture alive so a stroke may leave and re-enter the
// board. A release outside is only seen by the object under the pointer;
// MouseDown cancels such a dangling gesture before starting the next.
func (b *Board) MouseOut() {}

// Cursor implements desktop.Cursorable. Fyne has no diagonal resize
// cursors, so both resize directions use the crosshair.
func (b *Board) Cursor() desktop.Cursor {
	if b.cursor == nil {
		return desktop.DefaultCursor
	}
	switch b.cursor() {
	case engine.CursorMove:
		return desktop.PointerCursor
	case engine.CursorResizeNESW, engine.CursorResizeNWSE:
		return desktop.CrosshairCursor
	default:
		return desktop.DefaultCursor
	}
}

func (b *Board) refreshPreview() {
	b.preview.Clear()
	if b.tool != nil {
		b.tool.Preview(b.preview)
	}
	b.preview.Flush()
}

func point(p fyne.Position) model.Point {
	return model.Point{X: float64(p.X), Y: float64(p.Y)}
}
