package export

import (
	"fmt"
	"math"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/drawing"

	"github.com/piwi3910/sketchboard/internal/model"
	"github.com/piwi3910/sketchboard/internal/render"
)

// ellipseSegments is the vertex count of the closed polyline that stands
// in for an ellipse.
const ellipseSegments = 64

// ExportDXF writes the item outlines as a DXF drawing for CAD tools.
// Rects, ellipses and brush strokes become LWPOLYLINEs and lines become
// LINEs. Y is flipped so the drawing reads the same way up as the board.
// Fills are not exported.
func ExportDXF(path string, items []*model.Item) error {
	box, ok := model.BoundingRect(items)
	if !ok {
		return ErrEmptyBoard
	}

	s := &dxfSurface{d: dxf.NewDrawing(), top: box.Y2}
	render.DrawItems(s, items)
	if s.err != nil {
		return fmt.Errorf("build dxf: %w", s.err)
	}
	if err := s.d.SaveAs(path); err != nil {
		return fmt.Errorf("write dxf %s: %w", path, err)
	}
	return nil
}

type dxfSurface struct {
	d   *drawing.Drawing
	top float64
	err error // first entity error
}

func (s *dxfSurface) Clear() {}
func (s *dxfSurface) Flush() {}

func (s *dxfSurface) vertex(p model.Point) []float64 {
	return []float64{p.X, s.top - p.Y}
}

func (s *dxfSurface) record(err error) {
	if s.err == nil && err != nil {
		s.err = err
	}
}

func (s *dxfSurface) DrawRect(r model.Rect, _ model.Styles) {
	c := r.Corners()
	_, err := s.d.LwPolyline(true, s.vertex(c[0]), s.vertex(c[1]), s.vertex(c[3]), s.vertex(c[2]))
	s.record(err)
}

func (s *dxfSurface) DrawEllipse(r model.Rect, _ model.Styles) {
	cx, cy := (r.X+r.X2)/2, (r.Y+r.Y2)/2
	rx, ry := r.Width()/2, r.Height()/2
	verts := make([][]float64, ellipseSegments)
	for i := range verts {
		a := 2 * math.Pi * float64(i) / ellipseSegments
		verts[i] = s.vertex(model.Point{X: cx + rx*math.Cos(a), Y: cy + ry*math.Sin(a)})
	}
	_, err := s.d.LwPolyline(true, verts...)
	s.record(err)
}

func (s *dxfSurface) DrawLine(a, b model.Point, _ model.Styles) {
	va, vb := s.vertex(a), s.vertex(b)
	_, err := s.d.Line(va[0], va[1], 0, vb[0], vb[1], 0)
	s.record(err)
}

func (s *dxfSurface) DrawPolyline(points []model.Point, _ model.Styles) {
	if len(points) < 2 {
		return
	}
	verts := make([][]float64, len(points))
	for i, p := range points {
		verts[i] = s.vertex(p)
	}
	_, err := s.d.LwPolyline(false, verts...)
	s.record(err)
}
