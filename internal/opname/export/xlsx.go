package export

import (
	"fmt"
	"regexp"
	"time"

	"github.com/fekuna/omnipos-opname-service/internal/model"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const (
	SheetName      = "Stock Opname Results"
	minColumnWidth = 15
)

var Headers = []string{
	"Material No",
	"Description",
	"Storage Location",
	"System Qty",
	"Physical Qty",
	"Variance",
	"Status",
	"Match Status",
}

const (
	StatusCounted = "Counted"
	StatusPending = "Pending"
	MatchMatch    = "Match"
	MatchDiff     = "Diff"
)

// Row is one exported ledger line. Variance is always physical minus system.
type Row struct {
	MaterialNo  string
	Description string
	Sloc        string
	SystemQty   decimal.Decimal
	PhysicalQty decimal.Decimal
	Variance    decimal.Decimal
	Status      string
	MatchStatus string
}

func Rows(items []model.OpnameItem) []Row {
	rows := make([]Row, 0, len(items))
	for i := range items {
		item := &items[i]
		row := Row{
			MaterialNo:  item.MaterialNo,
			Description: item.MaterialDesc,
			Sloc:        item.Sloc,
			SystemQty:   item.SystemQty,
			PhysicalQty: item.PhysicalQty,
			Variance:    item.Variance(),
			Status:      StatusPending,
			MatchStatus: MatchDiff,
		}
		if item.IsCounted {
			row.Status = StatusCounted
		}
		if item.IsMatch() {
			row.MatchStatus = MatchMatch
		}
		rows = append(rows, row)
	}
	return rows
}

var whitespace = regexp.MustCompile(`\s+`)

// FileName builds Opname_Result_<title>_<YYYY-MM-DD>.xlsx with whitespace runs in the
// title collapsed to underscores.
func FileName(title string, at time.Time) string {
	return fmt.Sprintf("Opname_Result_%s_%s.xlsx", whitespace.ReplaceAllString(title, "_"), at.Format("2006-01-02"))
}

func WriteXLSX(rows []Row) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, SheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	header := make([]interface{}, len(Headers))
	for i, h := range Headers {
		header[i] = h
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		values := []interface{}{
			r.MaterialNo,
			r.Description,
			r.Sloc,
			r.SystemQty.InexactFloat64(),
			r.PhysicalQty.InexactFloat64(),
			r.Variance.InexactFloat64(),
			r.Status,
			r.MatchStatus,
		}
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	for i, h := range Headers {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		width := len(h)
		if width < minColumnWidth {
			width = minColumnWidth
		}
		if err := f.SetColWidth(SheetName, col, col, float64(width)); err != nil {
			return nil, fmt.Errorf("set column width: %w", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
