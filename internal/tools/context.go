package tools

import (
	"image/color"

	"github.com/piwi3910/sketchboard/internal/model"
)

// Context is the active drawing state shared by all tools. Tools copy it
// into each item they create, so later changes never restyle existing
// items.
type Context struct {
	styles model.Styles
}

func NewContext(initial model.Styles) *Context {
	return &Context{styles: initial}
}

func (c *Context) Styles() model.Styles { return c.styles }

func (c *Context) SetFill(col color.NRGBA)     { c.styles.Fill = col }
func (c *Context) SetStroke(col color.NRGBA)   { c.styles.Stroke = col }
func (c *Context) SetLineCap(lc model.LineCap) { c.styles.LineCap = lc }

// SetLineWidth ignores non-positive widths.
func (c *Context) SetLineWidth(w float64) {
	if w > 0 {
		c.styles.LineWidth = w
	}
}
