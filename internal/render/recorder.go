package render

import "github.com/piwi3910/sketchboard/internal/model"

// Op names a recorded drawing operation.
type Op string

const (
	OpRect     Op = "rect"
	OpEllipse  Op = "ellipse"
	OpLine     Op = "line"
	OpPolyline Op = "polyline"
)

// DrawCommand is one recorded drawing operation, in painter's order.
type DrawCommand struct {
	Op     Op            `json:"op"`
	Rect   model.Rect    `json:"rect"`
	Points []model.Point `json:"points,omitempty"`
	Styles model.Styles  `json:"styles"`
}

// Recorder is a Surface that keeps a display list instead of pixels.
// Clear drops the list, so Commands always holds the latest full paint.
type Recorder struct {
	Commands []DrawCommand
	Clears   int
	Flushes  int
}

func NewRecorder() *Recorder { return &Recorder{} }

func (r *Recorder) Clear() {
	r.Commands = nil
	r.Clears++
}

func (r *Recorder) DrawRect(rect model.Rect, st model.Styles) {
	r.Commands = append(r.Commands, DrawCommand{Op: OpRect, Rect: rect, Styles: st})
}

func (r *Recorder) DrawEllipse(rect model.Rect, st model.Styles) {
	r.Commands = append(r.Commands, DrawCommand{Op: OpEllipse, Rect: rect, Styles: st})
}

func (r *Recorder) DrawLine(a, b model.Point, st model.Styles) {
	r.Commands = append(r.Commands, DrawCommand{Op: OpLine, Points: []model.Point{a, b}, Styles: st})
}

func (r *Recorder) DrawPolyline(points []model.Point, st model.Styles) {
	cp := make([]model.Point, len(points))
	copy(cp, points)
	r.Commands = append(r.Commands, DrawCommand{Op: OpPolyline, Points: cp, Styles: st})
}

func (r *Recorder) Flush() { r.Flushes++ }

// Ops lists the recorded operation names.
func (r *Recorder) Ops() []Op {
	ops := make([]Op, len(r.Commands))
	for i, c := range r.Commands {
		ops[i] = c.Op
	}
	return ops
}
