package engine

import "github.com/piwi3910/sketchboard/internal/model"

// Cursor is the pointer feedback the board should show.
type Cursor int

const (
	CursorDefault Cursor = iota
	CursorMove
	CursorResizeNESW // LEFT_BOTTOM and RIGHT_TOP handles
	CursorResizeNWSE // LEFT_TOP and RIGHT_BOTTOM handles
)

func (c Cursor) String() string {
	switch c {
	case CursorMove:
		return "move"
	case CursorResizeNESW:
		return "ne-resize"
	case CursorResizeNWSE:
		return "nw-resize"
	default:
		return "default"
	}
}

// CursorForCorner maps a handle to its resize cursor.
func CursorForCorner(c model.Corner) Cursor {
	switch c {
	case model.CornerLeftBottom, model.CornerRightTop:
		return CursorResizeNESW
	case model.CornerLeftTop, model.CornerRightBottom:
		return CursorResizeNWSE
	default:
		return CursorDefault
	}
}
