package render

import (
	"image/color"

	"github.com/piwi3910/sketchboard/internal/model"
)

// Chrome styles the selection outline and its corner handles.
type Chrome struct {
	Margin       float64 // outward offset of the outline from the selection rect
	HandleRadius float64
	Width        float64
	Color        color.NRGBA
}

// ChromeFromConfig reads the chrome settings from the editor config.
func ChromeFromConfig(cfg model.EditorConfig) Chrome {
	return Chrome{
		Margin:       cfg.ChromeMargin,
		HandleRadius: cfg.HandleRadius,
		Width:        cfg.ChromeWidth,
		Color:        cfg.ChromeColor.NRGBA(),
	}
}

func (c Chrome) styles() model.Styles {
	return model.Styles{Stroke: c.Color, LineWidth: c.Width}
}

// Renderer owns the main and edit surfaces of a board.
type Renderer struct {
	main   Surface
	edit   Surface
	chrome Chrome
}

// New builds a renderer over the two layer surfaces. Both are required.
func New(main, edit Surface, chrome Chrome) (*Renderer, error) {
	if main == nil || edit == nil {
		return nil, ErrNoSurface
	}
	return &Renderer{main: main, edit: edit, chrome: chrome}, nil
}

// RenderMain clears the main surface and paints every committed item.
func (r *Renderer) RenderMain(items []*model.Item) {
	r.main.Clear()
	DrawItems(r.main, items)
	r.main.Flush()
}

// RenderEdit clears the overlay and paints the selected items followed by
// the selection chrome. A nil rect leaves the overlay empty.
func (r *Renderer) RenderEdit(items []*model.Item, rect *model.Rect) {
	r.edit.Clear()
	if rect != nil && len(items) > 0 {
		DrawItems(r.edit, items)
		r.drawChrome(*rect)
	}
	r.edit.Flush()
}

func (r *Renderer) drawChrome(sel model.Rect) {
	st := r.chrome.styles()
	outline := sel.Grow(r.chrome.Margin)
	r.edit.DrawRect(outline, st)
	rad := r.chrome.HandleRadius
	for _, h := range model.Handles {
		c := h.Point(outline)
		r.edit.DrawEllipse(model.Rect{X: c.X - rad, Y: c.Y - rad, X2: c.X + rad, Y2: c.Y + rad}, st)
	}
}

// DrawItems paints items in order onto s without clearing it.
func DrawItems(s Surface, items []*model.Item) {
	for _, it := range items {
		DrawItem(s, it)
	}
}

// DrawItem paints one item with its own styles.
func DrawItem(s Surface, it *model.Item) {
	if it == nil {
		return
	}
	box := it.Data.Rect
	switch it.Kind {
	case model.ShapeRect:
		s.DrawRect(box, it.Styles)
	case model.ShapeEllipse:
		s.DrawEllipse(box, it.Styles)
	case model.ShapeLine:
		if len(it.Data.Dots) == 2 {
			s.DrawLine(it.Data.Dots[0], it.Data.Dots[1], it.Styles)
			return
		}
		s.DrawLine(model.Point{X: box.X, Y: box.Y}, model.Point{X: box.X2, Y: box.Y2}, it.Styles)
	case model.ShapeBrush:
		if path := SmoothPath(it.Data.Dots); path != nil {
			s.DrawPolyline(path, it.Styles)
		}
	}
}
