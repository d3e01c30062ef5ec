// Package tools turns pointer gestures into board items. Drawing tools
// commit finished shapes to the scene; the select tool drives marquee
// selection and hands transforms to the scene.
package tools

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/piwi3910/sketchboard/internal/model"
	"github.com/piwi3910/sketchboard/internal/render"
)

var ErrUnknownTool = errors.New("unknown tool")

// Scene is the part of the board a tool talks to. *engine.Scene
// implements it.
type Scene interface {
	AddItem(it *model.Item)
	SelectArea(start, end model.Point) []*model.Item
	PointerDown(p model.Point) bool
	PointerMove(p model.Point)
	PointerUp(p model.Point) bool
}

// Tool receives primary-button pointer events in board coordinates.
type Tool interface {
	Name() string
	PointerDown(p model.Point)
	PointerMove(p model.Point)
	PointerUp(p model.Point)
	// Preview paints in-progress feedback onto s. Idle tools draw nothing.
	Preview(s render.Surface)
	// Cancel abandons the current gesture without committing anything.
	Cancel()
}

// Deps are shared by every tool built from the registry.
type Deps struct {
	Scene   Scene
	Context *Context
	Config  model.EditorConfig
	Logger  *slog.Logger
}

const (
	NameSelect  = "select"
	NameRect    = "rect"
	NameEllipse = "ellipse"
	NameLine    = "line"
	NameBrush   = "brush"
)

var builders = map[string]func(Deps) Tool{
	NameSelect:  func(d Deps) Tool { return NewSelect(d) },
	NameRect:    func(d Deps) Tool { return NewRect(d) },
	NameEllipse: func(d Deps) Tool { return NewEllipse(d) },
	NameLine:    func(d Deps) Tool { return NewLine(d) },
	NameBrush:   func(d Deps) Tool { return NewBrush(d) },
}

// Names lists the registered tool names in toolbar order.
func Names() []string {
	return []string{NameSelect, NameRect, NameEllipse, NameLine, NameBrush}
}

// New builds the tool registered under name.
func New(name string, deps Deps) (Tool, error) {
	build, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (have %v)", ErrUnknownTool, name, Names())
	}
	if deps.Scene == nil {
		return nil, fmt.Errorf("tool %q: scene is required", name)
	}
	return build(deps), nil
}

func (d Deps) withDefaults() Deps {
	if d.Context == nil {
		d.Context = NewContext(d.Config.DefaultStyles())
	}
	if d.Logger == nil {
		d.Logger = slog.Default()
	}
	return d
}

func commit(d Deps, it *model.Item) {
	d.Scene.AddItem(it)
	d.Logger.Debug("item committed", "kind", it.Kind, "id", it.ID)
}
