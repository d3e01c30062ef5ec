package ui

import (
	"fmt"
	"image/color"
	"log/slog"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	ttwidget "github.com/dweymouth/fyne-tooltip/widget"

	"github.com/piwi3910/sketchboard/internal/engine"
	"github.com/piwi3910/sketchboard/internal/export"
	"github.com/piwi3910/sketchboard/internal/model"
	"github.com/piwi3910/sketchboard/internal/render"
	"github.com/piwi3910/sketchboard/internal/tools"
	"github.com/piwi3910/sketchboard/internal/ui/widgets"
)

// palette is offered by the fill and stroke pickers, in display order.
var palette = []struct {
	name string
	c    color.NRGBA
}{
	{"None", color.NRGBA{}},
	{"Black", color.NRGBA{A: 255}},
	{"White", color.NRGBA{R: 255, G: 255, B: 255, A: 255}},
	{"Red", color.NRGBA{R: 244, G: 67, B: 54, A: 255}},
	{"Orange", color.NRGBA{R: 255, G: 152, B: 0, A: 255}},
	{"Yellow", color.NRGBA{R: 255, G: 235, B: 59, A: 255}},
	{"Green", color.NRGBA{R: 76, G: 175, B: 80, A: 255}},
	{"Blue", color.NRGBA{R: 33, G: 150, B: 243, A: 255}},
	{"Purple", color.NRGBA{R: 156, G: 39, B: 176, A: 255}},
}

var lineWidths = []string{"1", "2", "4", "8", "16"}

var toolIcons = map[string]struct {
	icon fyne.Resource
	tip  string
}{
	tools.NameSelect:  {theme.ViewFullScreenIcon(), "Select, move and resize"},
	tools.NameRect:    {theme.CheckButtonIcon(), "Rectangle"},
	tools.NameEllipse: {theme.RadioButtonIcon(), "Ellipse"},
	tools.NameLine:    {theme.ContentRemoveIcon(), "Line"},
	tools.NameBrush:   {theme.DocumentCreateIcon(), "Brush"},
}

// App holds all application state and UI references.
type App struct {
	app    fyne.App
	window fyne.Window
	config model.EditorConfig
	log    *slog.Logger

	board   *widgets.Board
	scene   *engine.Scene
	context *tools.Context

	toolButtons map[string]*ttwidget.Button
}

// NewApp wires the board, renderer, scene and tools together.
func NewApp(app fyne.App, window fyne.Window, cfg model.EditorConfig, log *slog.Logger) (*App, error) {
	if log == nil {
		log = slog.Default()
	}
	board := widgets.NewBoard()
	r, err := render.New(board.MainLayer(), board.EditLayer(), render.ChromeFromConfig(cfg))
	if err != nil {
		return nil, fmt.Errorf("create renderer: %w", err)
	}
	scene, err := engine.NewScene(engine.SceneConfig{
		Painter:      r,
		Loop:         widgets.NewAnimationLoop(),
		CornerRadius: cfg.CornerRadius,
		Logger:       log,
	})
	if err != nil {
		return nil, fmt.Errorf("create scene: %w", err)
	}
	board.SetCursorSource(scene.Cursor)

	a := &App{
		app:         app,
		window:      window,
		config:      cfg,
		log:         log,
		board:       board,
		scene:       scene,
		context:     tools.NewContext(cfg.DefaultStyles()),
		toolButtons: make(map[string]*ttwidget.Button),
	}
	for _, name := range tools.Names() {
		ti := toolIcons[name]
		a.toolButtons[name] = newIconButtonWithTooltip(ti.icon, ti.tip, func() {
			if err := a.SelectTool(name); err != nil {
				dialog.ShowError(err, a.window)
			}
		})
	}
	if err := a.SelectTool(tools.NameSelect); err != nil {
		return nil, err
	}
	return a, nil
}

// Scene exposes the board's scene.
func (a *App) Scene() *engine.Scene { return a.scene }

// Board exposes the drawing widget.
func (a *App) Board() *widgets.Board { return a.board }

// SelectTool activates the named tool. Switching tools always leaves
// selection mode.
func (a *App) SelectTool(name string) error {
	tool, err := tools.New(name, tools.Deps{
		Scene:   a.scene,
		Context: a.context,
		Config:  a.config,
		Logger:  a.log,
	})
	if err != nil {
		return err
	}
	a.scene.DeselectAll()
	a.board.SetTool(tool)
	for n, btn := range a.toolButtons {
		setActive(btn, n == name)
	}
	a.log.Debug("tool selected", "tool", name)
	return nil
}

// SetupMenus creates the native menu bar for the application.
func (a *App) SetupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Export PDF...", func() {
			a.exportBoard("board.pdf", export.ExportPDF)
		}),
		fyne.NewMenuItem("Export DXF...", func() {
			a.exportBoard("board.dxf", export.ExportDXF)
		}),
		fyne.NewMenuItem("Export Item Sheet...", func() {
			a.exportBoard("items.xlsx", export.ExportXLSX)
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			a.window.Close()
		}),
	)

	editMenu := fyne.NewMenu("Edit",
		fyne.NewMenuItem("Select All", func() {
			a.selectAll()
		}),
		fyne.NewMenuItem("Deselect", func() {
			a.scene.DeselectAll()
		}),
		fyne.NewMenuItem("Delete Selection", func() {
			a.scene.DeleteSelection()
		}),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", func() {
			dialog.ShowInformation("About Sketchboard",
				"Sketchboard: draw, select, move and resize shapes.\n\nVersion 1.0.0",
				a.window)
		}),
	)

	a.window.SetMainMenu(fyne.NewMainMenu(fileMenu, editMenu, helpMenu))
}

// selectAll switches to the select tool first so the selection can be
// dragged straight away.
func (a *App) selectAll() {
	if a.board.Tool() == nil || a.board.Tool().Name() != tools.NameSelect {
		if err := a.SelectTool(tools.NameSelect); err != nil {
			dialog.ShowError(err, a.window)
			return
		}
	}
	a.scene.SelectAll()
}

// Build constructs the full UI and returns the root container.
func (a *App) Build() fyne.CanvasObject {
	return container.NewBorder(a.buildToolbar(), nil, nil, nil, a.board)
}

// ─── Toolbar ───────────────────────────────────────────────

func (a *App) buildToolbar() fyne.CanvasObject {
	bar := container.NewHBox()
	for _, name := range tools.Names() {
		bar.Add(a.toolButtons[name])
	}
	bar.Add(widget.NewSeparator())

	names := make([]string, len(palette))
	for i, p := range palette {
		names[i] = p.name
	}
	fill := widget.NewSelect(names, func(s string) {
		a.context.SetFill(paletteColor(s))
	})
	if n := paletteName(a.context.Styles().Fill); n != "" {
		fill.SetSelected(n)
	}
	stroke := widget.NewSelect(names, func(s string) {
		a.context.SetStroke(paletteColor(s))
	})
	if n := paletteName(a.context.Styles().Stroke); n != "" {
		stroke.SetSelected(n)
	}

	width := widget.NewSelect(lineWidths, func(s string) {
		if w, err := strconv.ParseFloat(s, 64); err == nil {
			a.context.SetLineWidth(w)
		}
	})
	width.SetSelected(strconv.FormatFloat(a.context.Styles().LineWidth, 'f', -1, 64))

	caps := []string{model.CapButt.String(), model.CapRound.String(), model.CapSquare.String()}
	lineCap := widget.NewSelect(caps, func(s string) {
		a.context.SetLineCap(model.ParseLineCap(s))
	})
	lineCap.SetSelected(a.context.Styles().LineCap.String())

	bar.Add(widget.NewLabel("Fill"))
	bar.Add(fill)
	bar.Add(widget.NewLabel("Stroke"))
	bar.Add(stroke)
	bar.Add(widget.NewLabel("Width"))
	bar.Add(width)
	bar.Add(widget.NewLabel("Cap"))
	bar.Add(lineCap)

	bar.Add(widget.NewSeparator())
	bar.Add(newIconButtonWithTooltip(theme.DeleteIcon(), "Delete selection", func() {
		a.scene.DeleteSelection()
	}))
	return bar
}

func paletteColor(name string) color.NRGBA {
	for _, p := range palette {
		if p.name == name {
			return p.c
		}
	}
	return color.NRGBA{}
}

// paletteName finds the palette entry for c, or "" for a configured
// color outside the palette.
func paletteName(c color.NRGBA) string {
	if c.A == 0 {
		return "None"
	}
	for _, p := range palette {
		if p.c == c {
			return p.name
		}
	}
	return ""
}

// ─── Export ────────────────────────────────────────────────

func (a *App) exportBoard(defaultName string, write func(string, []*model.Item) error) {
	// The dialog is asynchronous; export the board as it is now.
	items := a.scene.Snapshot()
	if len(items) == 0 {
		dialog.ShowInformation("Nothing to export", "Draw something on the board first.", a.window)
		return
	}
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		path := writer.URI().Path()
		writer.Close()
		if err := write(path, items); err != nil {
			a.log.Error("export failed", "path", path, "err", err)
			dialog.ShowError(err, a.window)
			return
		}
		dialog.ShowInformation("Export Complete",
			fmt.Sprintf("Board saved to %s", path), a.window)
	}, a.window)
	d.SetFileName(defaultName)
	d.Show()
}
