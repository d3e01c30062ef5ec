package tools_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/sketchboard/internal/engine"
	"github.com/piwi3910/sketchboard/internal/model"
	"github.com/piwi3910/sketchboard/internal/render"
	"github.com/piwi3910/sketchboard/internal/tools"
)

type manualLoop struct {
	frame func()
}

func (l *manualLoop) Start(frame func()) { l.frame = frame }
func (l *manualLoop) Stop()              { l.frame = nil }
func (l *manualLoop) Running() bool      { return l.frame != nil }

func TestDrawSelectAndDrag(t *testing.T) {
	cfg := model.DefaultEditorConfig()
	cfg.CornerRadius = 3
	main, edit := render.NewRecorder(), render.NewRecorder()
	r, err := render.New(main, edit, render.ChromeFromConfig(cfg))
	require.NoError(t, err)
	loop := &manualLoop{}
	scene, err := engine.NewScene(engine.SceneConfig{Painter: r, Loop: loop, CornerRadius: cfg.CornerRadius})
	require.NoError(t, err)
	deps := tools.Deps{Scene: scene, Config: cfg}

	rect, err := tools.New(tools.NameRect, deps)
	require.NoError(t, err)
	rect.PointerDown(model.Point{X: 10, Y: 10})
	rect.PointerMove(model.Point{X: 30, Y: 20})
	rect.PointerUp(model.Point{X: 40, Y: 30})
	require.Len(t, scene.Items(), 1)
	assert.Equal(t, []render.Op{render.OpRect}, main.Ops())

	sel, err := tools.New(tools.NameSelect, deps)
	require.NoError(t, err)
	sel.PointerDown(model.Point{X: 0, Y: 0})
	sel.PointerMove(model.Point{X: 50, Y: 50})
	sel.PointerUp(model.Point{X: 50, Y: 50})
	require.True(t, scene.HasSelection())
	require.True(t, loop.Running())
	assert.Empty(t, main.Commands, "selected item leaves the main layer")

	sel.PointerDown(model.Point{X: 20, Y: 20})
	sel.PointerMove(model.Point{X: 25, Y: 22})
	sel.PointerUp(model.Point{X: 25, Y: 22})
	loop.frame()

	it := scene.SelectedItems()[0]
	assert.Equal(t, model.Rect{X: 15, Y: 12, X2: 45, Y2: 32}, it.Data.Rect)
	require.NotEmpty(t, edit.Commands)
	assert.Equal(t, it.Data.Rect, edit.Commands[0].Rect)

	scene.DeselectAll()
	assert.False(t, loop.Running())
	assert.Empty(t, edit.Commands)
	assert.Equal(t, []render.Op{render.OpRect}, main.Ops())
}
