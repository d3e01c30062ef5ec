package model

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItemNormalizesAndCopies(t *testing.T) {
	dots := []Point{{X: 10, Y: 10}, {X: 0, Y: 0}}
	styles := Styles{Stroke: color.NRGBA{A: 255}, LineWidth: 2, LineCap: CapRound}

	it := NewItem(ShapeLine, Rect{X: 10, Y: 10, X2: 0, Y2: 0}, dots, styles)

	require.NotEmpty(t, it.ID)
	assert.Equal(t, Rect{X: 0, Y: 0, X2: 10, Y2: 10}, it.Data.Rect)
	assert.Equal(t, styles, it.Styles)

	dots[0].X = 99
	assert.Equal(t, 10.0, it.Data.Dots[0].X, "dots must not alias the caller's slice")
}

func TestNewItemUniqueIDs(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		it := NewItem(ShapeRect, Rect{X2: 1, Y2: 1}, nil, Styles{})
		assert.False(t, seen[it.ID], "duplicate id %s", it.ID)
		seen[it.ID] = true
	}
}

func TestItemTranslateMovesDots(t *testing.T) {
	it := NewItem(ShapeBrush, Rect{X: 0, Y: 0, X2: 4, Y2: 4}, []Point{{X: 0, Y: 0}, {X: 4, Y: 4}}, Styles{})
	it.Translate(3, -2)

	assert.Equal(t, Rect{X: 3, Y: -2, X2: 7, Y2: 2}, it.Data.Rect)
	assert.Equal(t, []Point{{X: 3, Y: -2}, {X: 7, Y: 2}}, it.Data.Dots)
}

func TestItemRemap(t *testing.T) {
	it := NewItem(ShapeBrush, Rect{X: 5, Y: 5, X2: 10, Y2: 10}, []Point{{X: 5, Y: 5}, {X: 10, Y: 10}}, Styles{})
	it.Remap(Rect{X: 0, Y: 0, X2: 10, Y2: 10}, Rect{X: 0, Y: 0, X2: 20, Y2: 40})

	assert.Equal(t, Rect{X: 10, Y: 20, X2: 20, Y2: 40}, it.Data.Rect)
	assert.Equal(t, []Point{{X: 10, Y: 20}, {X: 20, Y: 40}}, it.Data.Dots)
}

func TestItemCloneIsDeep(t *testing.T) {
	it := NewItem(ShapeBrush, Rect{X2: 1, Y2: 1}, []Point{{X: 1, Y: 1}}, Styles{})
	cp := it.Clone()
	cp.Data.Dots[0].X = 50
	cp.Data.X = 7

	assert.Equal(t, it.ID, cp.ID)
	assert.Equal(t, 1.0, it.Data.Dots[0].X)
	assert.Equal(t, 0.0, it.Data.X)
}

func TestRectIsDegenerate(t *testing.T) {
	assert.True(t, Rect{X: 1, Y: 1, X2: 1, Y2: 5}.IsDegenerate())
	assert.True(t, Rect{X: 1, Y: 1, X2: 5, Y2: 1}.IsDegenerate())
	assert.False(t, Rect{X: 1, Y: 1, X2: 5, Y2: 5}.IsDegenerate())
}

func TestCornerFlips(t *testing.T) {
	assert.Equal(t, CornerLeftBottom, CornerRightBottom.FlipHorizontal())
	assert.Equal(t, CornerRightTop, CornerRightBottom.FlipVertical())
	assert.Equal(t, CornerLeftTop, CornerRightBottom.FlipHorizontal().FlipVertical())
	assert.Equal(t, CornerNone, CornerNone.FlipHorizontal())
	assert.Equal(t, "RIGHT_BOTTOM", CornerRightBottom.String())
}

func TestRectGrow(t *testing.T) {
	r := Rect{X: 10, Y: 10, X2: 20, Y2: 30}
	assert.Equal(t, Rect{X: 5, Y: 5, X2: 25, Y2: 35}, r.Grow(5))
	assert.Equal(t, Rect{X: 12, Y: 12, X2: 18, Y2: 28}, r.Grow(-2))
}

func TestCornerPoint(t *testing.T) {
	r := Rect{X: 1, Y: 2, X2: 3, Y2: 4}
	assert.Equal(t, Point{X: 1, Y: 2}, CornerLeftTop.Point(r))
	assert.Equal(t, Point{X: 3, Y: 4}, CornerRightBottom.Point(r))
	assert.Equal(t, Point{X: 1, Y: 4}, CornerLeftBottom.Point(r))
	assert.Equal(t, Point{X: 3, Y: 2}, CornerRightTop.Point(r))
}

func TestParseHexColor(t *testing.T) {
	c, err := ParseHexColor("#4086f7")
	require.NoError(t, err)
	assert.Equal(t, HexColor{R: 0x40, G: 0x86, B: 0xf7, A: 0xff}, c)
	assert.Equal(t, "#4086f7", c.String())

	c, err = ParseHexColor("#fff")
	require.NoError(t, err)
	assert.Equal(t, HexColor{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, c)

	c, err = ParseHexColor("6be8b27f")
	require.NoError(t, err)
	assert.Equal(t, uint8(0x7f), c.A)
	assert.Equal(t, "#6be8b27f", c.String())

	_, err = ParseHexColor("#12345")
	assert.Error(t, err)
	_, err = ParseHexColor("#zzzzzz")
	assert.Error(t, err)
}

func TestHexColorJSON(t *testing.T) {
	c := MustHex("#102030")
	data, err := c.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"#102030"`, string(data))

	var back HexColor
	require.NoError(t, back.UnmarshalJSON(data))
	assert.Equal(t, c, back)
}
