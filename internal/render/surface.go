// Package render paints board items and selection chrome onto drawing
// surfaces. It keeps no scene state: every call clears its target and
// repaints from the items it is handed.
package render

import (
	"errors"

	"github.com/piwi3910/sketchboard/internal/model"
)

var ErrNoSurface = errors.New("render: drawing surface is required")

// Surface is a 2D drawing target. Coordinates are board pixels. Styles
// carry fill, stroke, width and cap; a zero-alpha fill paints nothing.
type Surface interface {
	Clear()
	DrawRect(r model.Rect, st model.Styles)
	DrawEllipse(r model.Rect, st model.Styles)
	DrawLine(a, b model.Point, st model.Styles)
	// DrawPolyline strokes connected segments through points. It is never
	// filled.
	DrawPolyline(points []model.Point, st model.Styles)
	// Flush publishes everything drawn since the last Clear.
	Flush()
}
