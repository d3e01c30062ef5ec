// Sketchboard is a small vector sketching board.
//
// Draw rectangles, ellipses, lines and freehand strokes, then select,
// move and resize groups of them. Preferences live in
// ~/.sketchboard/config.json and can be overridden with SKETCHBOARD_*
// environment variables.
//
// Build:
//   go build -o sketchboard ./cmd/sketchboard

package main

import (
	"log/slog"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/piwi3910/sketchboard/internal/project"
	"github.com/piwi3910/sketchboard/internal/ui"
)

func main() {
	cfg, err := project.LoadEditorConfig(project.DefaultConfigPath())
	if err != nil {
		slog.Error("load config", "path", project.DefaultConfigPath(), "err", err)
		os.Exit(1)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(cfg.LogLevel),
	})))

	application := app.NewWithID("com.piwi3910.sketchboard")
	application.Settings().SetTheme(ui.NewSketchTheme(cfg.Theme))

	window := application.NewWindow("Sketchboard")

	appUI, err := ui.NewApp(application, window, cfg, slog.Default())
	if err != nil {
		slog.Error("start editor", "err", err)
		os.Exit(1)
	}
	appUI.SetupMenus()
	window.SetContent(appUI.Build())
	window.Resize(fyne.NewSize(cfg.WindowWidth, cfg.WindowHeight))
	window.CenterOnScreen()
	window.ShowAndRun()
}

// logLevel parses names such as "debug" or "warn"; anything else is info.
func logLevel(name string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo
	}
	return level
}
