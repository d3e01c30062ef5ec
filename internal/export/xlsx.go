package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/sketchboard/internal/model"
)

var itemSheetHeader = []any{
	"ID", "Kind", "X", "Y", "X2", "Y2", "Width", "Height",
	"Points", "Fill", "Stroke", "Line Width", "Line Cap",
}

// ExportXLSX writes one spreadsheet row per item with its geometry and
// styles, in the order given.
func ExportXLSX(path string, items []*model.Item) error {
	if len(items) == 0 {
		return ErrEmptyBoard
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	rows := make([][]any, 0, len(items)+1)
	rows = append(rows, itemSheetHeader)
	for _, it := range items {
		rows = append(rows, itemRow(it))
	}

	for i, row := range rows {
		for j, v := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return fmt.Errorf("cell reference: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("set %s: %w", cell, err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("write xlsx %s: %w", path, err)
	}
	return nil
}

func itemRow(it *model.Item) []any {
	r := it.Data.Rect
	return []any{
		it.ID,
		string(it.Kind),
		r.X, r.Y, r.X2, r.Y2,
		r.Width(), r.Height(),
		len(it.Data.Dots),
		model.HexColor(it.Styles.Fill).String(),
		model.HexColor(it.Styles.Stroke).String(),
		it.Styles.LineWidth,
		it.Styles.LineCap.String(),
	}
}
