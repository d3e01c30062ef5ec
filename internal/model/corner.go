package model

// Corner names one of the four resize handles of a selection rectangle.
type Corner int

const (
	CornerNone Corner = iota
	CornerLeftTop
	CornerLeftBottom
	CornerRightTop
	CornerRightBottom
)

func (c Corner) String() string {
	switch c {
	case CornerLeftTop:
		return "LEFT_TOP"
	case CornerLeftBottom:
		return "LEFT_BOTTOM"
	case CornerRightTop:
		return "RIGHT_TOP"
	case CornerRightBottom:
		return "RIGHT_BOTTOM"
	default:
		return "NONE"
	}
}

// Handles lists the four handles in drawing order.
var Handles = [4]Corner{CornerLeftTop, CornerRightTop, CornerLeftBottom, CornerRightBottom}

func (c Corner) IsLeft() bool { return c == CornerLeftTop || c == CornerLeftBottom }
func (c Corner) IsTop() bool  { return c == CornerLeftTop || c == CornerRightTop }

// FlipHorizontal swaps LEFT and RIGHT, keeping the vertical half.
func (c Corner) FlipHorizontal() Corner {
	switch c {
	case CornerLeftTop:
		return CornerRightTop
	case CornerRightTop:
		return CornerLeftTop
	case CornerLeftBottom:
		return CornerRightBottom
	case CornerRightBottom:
		return CornerLeftBottom
	default:
		return c
	}
}

// FlipVertical swaps TOP and BOTTOM, keeping the horizontal half.
func (c Corner) FlipVertical() Corner {
	switch c {
	case CornerLeftTop:
		return CornerLeftBottom
	case CornerLeftBottom:
		return CornerLeftTop
	case CornerRightTop:
		return CornerRightBottom
	case CornerRightBottom:
		return CornerRightTop
	default:
		return c
	}
}

// Point returns the position of the corner on r.
func (c Corner) Point(r Rect) Point {
	x, y := r.X2, r.Y2
	if c.IsLeft() {
		x = r.X
	}
	if c.IsTop() {
		y = r.Y
	}
	return Point{X: x, Y: y}
}
