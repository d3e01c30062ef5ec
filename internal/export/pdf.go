// Package export prints the board to files other tools can open. Every
// exporter paints through render.DrawItems onto its own surface; none of
// the outputs are read back.
package export

import (
	"errors"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/piwi3910/sketchboard/internal/model"
	"github.com/piwi3910/sketchboard/internal/render"
)

var ErrEmptyBoard = errors.New("export: board has no items")

// pageMargin is the blank border around the items, in points.
const pageMargin = 20.0

// ExportPDF writes a single-page PDF sized to the items' bounding box
// plus a margin. One board pixel maps to one PDF point.
func ExportPDF(path string, items []*model.Item) error {
	box, ok := model.BoundingRect(items)
	if !ok {
		return ErrEmptyBoard
	}

	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size: fpdf.SizeType{
			Wd: box.Width() + 2*pageMargin,
			Ht: box.Height() + 2*pageMargin,
		},
	})
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCreator("Sketchboard", true)
	pdf.AddPage()

	s := &pdfSurface{pdf: pdf, dx: pageMargin - box.X, dy: pageMargin - box.Y}
	render.DrawItems(s, items)

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write pdf %s: %w", path, err)
	}
	return nil
}

// pdfSurface draws onto the current page of a PDF, shifted so the board's
// bounding box starts at the page margin.
type pdfSurface struct {
	pdf    *fpdf.Fpdf
	dx, dy float64
}

func (s *pdfSurface) Clear() {}
func (s *pdfSurface) Flush() {}

func (s *pdfSurface) DrawRect(r model.Rect, st model.Styles) {
	x, y := s.dx+r.X, s.dy+r.Y
	if s.fill(st) {
		s.pdf.Rect(x, y, r.Width(), r.Height(), "F")
	}
	if s.stroke(st) {
		s.pdf.Rect(x, y, r.Width(), r.Height(), "D")
	}
}

func (s *pdfSurface) DrawEllipse(r model.Rect, st model.Styles) {
	cx, cy := s.dx+(r.X+r.X2)/2, s.dy+(r.Y+r.Y2)/2
	rx, ry := r.Width()/2, r.Height()/2
	if s.fill(st) {
		s.pdf.Ellipse(cx, cy, rx, ry, 0, "F")
	}
	if s.stroke(st) {
		s.pdf.Ellipse(cx, cy, rx, ry, 0, "D")
	}
}

func (s *pdfSurface) DrawLine(a, b model.Point, st model.Styles) {
	if s.stroke(st) {
		s.pdf.Line(s.dx+a.X, s.dy+a.Y, s.dx+b.X, s.dy+b.Y)
	}
}

func (s *pdfSurface) DrawPolyline(points []model.Point, st model.Styles) {
	if len(points) < 2 || !s.stroke(st) {
		return
	}
	s.pdf.MoveTo(s.dx+points[0].X, s.dy+points[0].Y)
	for _, p := range points[1:] {
		s.pdf.LineTo(s.dx+p.X, s.dy+p.Y)
	}
	s.pdf.DrawPath("D")
}

// fill prepares the fill color and reports whether there is anything to
// fill.
func (s *pdfSurface) fill(st model.Styles) bool {
	if st.Fill.A == 0 {
		return false
	}
	s.pdf.SetFillColor(int(st.Fill.R), int(st.Fill.G), int(st.Fill.B))
	s.pdf.SetAlpha(float64(st.Fill.A)/255, "Normal")
	return true
}

// stroke prepares pen color, width and cap and reports whether the stroke
// is visible.
func (s *pdfSurface) stroke(st model.Styles) bool {
	if st.Stroke.A == 0 || st.LineWidth <= 0 {
		return false
	}
	s.pdf.SetDrawColor(int(st.Stroke.R), int(st.Stroke.G), int(st.Stroke.B))
	s.pdf.SetAlpha(float64(st.Stroke.A)/255, "Normal")
	s.pdf.SetLineWidth(st.LineWidth)
	s.pdf.SetLineCapStyle(st.LineCap.String())
	return true
}
