package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/piwi3910/sketchboard/internal/model"
)

func TestDetectCorner(t *testing.T) {
	d := NewCornerDetector(15)
	r := model.Rect{X: 0, Y: 0, X2: 10, Y2: 10}

	assert.Equal(t, model.CornerLeftTop, d.Detect(pt(0, 0), r))
	assert.Equal(t, model.CornerRightBottom, d.Detect(pt(10, 10), r))
	assert.Equal(t, model.CornerNone, d.Detect(pt(50, 50), r))
}

func TestDetectCornerLargeRect(t *testing.T) {
	d := NewCornerDetector(15)
	r := model.Rect{X: 0, Y: 0, X2: 200, Y2: 100}

	assert.Equal(t, model.CornerLeftTop, d.Detect(pt(-5, 5), r))
	assert.Equal(t, model.CornerLeftBottom, d.Detect(pt(3, 110), r))
	assert.Equal(t, model.CornerRightTop, d.Detect(pt(190, -10), r))
	assert.Equal(t, model.CornerRightBottom, d.Detect(pt(214, 114), r))
	assert.Equal(t, model.CornerNone, d.Detect(pt(100, 50), r), "center is not a handle")
	assert.Equal(t, model.CornerNone, d.Detect(pt(100, 0), r), "mid edge is not a handle")
	assert.Equal(t, model.CornerNone, d.Detect(pt(215, 100), r), "radius is exclusive")
}

func TestDetectCornerSmallRectUsesCheckOrder(t *testing.T) {
	d := NewCornerDetector(15)
	r := model.Rect{X: 0, Y: 0, X2: 4, Y2: 4}

	// (3,3) is near every edge; LEFT_TOP is checked first.
	assert.Equal(t, model.CornerLeftTop, d.Detect(pt(3, 3), r))
	// Left edge out of range, so RIGHT_TOP wins over RIGHT_BOTTOM.
	assert.Equal(t, model.CornerRightTop, d.Detect(pt(17, 3), r))
	// Top out of range on the left side: LEFT_BOTTOM.
	assert.Equal(t, model.CornerLeftBottom, d.Detect(pt(1, 17), r))
}

func TestNewCornerDetectorDefaultRadius(t *testing.T) {
	assert.Equal(t, model.DefaultCornerRadius, NewCornerDetector(0).Radius)
	assert.Equal(t, 8.0, NewCornerDetector(8).Radius)
}

func TestCursorForCorner(t *testing.T) {
	assert.Equal(t, CursorResizeNESW, CursorForCorner(model.CornerLeftBottom))
	assert.Equal(t, CursorResizeNESW, CursorForCorner(model.CornerRightTop))
	assert.Equal(t, CursorResizeNWSE, CursorForCorner(model.CornerLeftTop))
	assert.Equal(t, CursorResizeNWSE, CursorForCorner(model.CornerRightBottom))
	assert.Equal(t, CursorDefault, CursorForCorner(model.CornerNone))
	assert.Equal(t, "ne-resize", CursorResizeNESW.String())
}
