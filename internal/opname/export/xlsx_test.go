package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/fekuna/omnipos-opname-service/internal/model"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

func TestRows(t *testing.T) {
	items := []model.OpnameItem{
		{MaterialNo: "MAT-1", MaterialDesc: "Bolt", Sloc: "A1", SystemQty: decimal.NewFromInt(20), PhysicalQty: decimal.NewFromInt(25), IsCounted: true},
		{MaterialNo: "MAT-2", MaterialDesc: "Nut", Sloc: "A1", SystemQty: decimal.NewFromInt(10), PhysicalQty: decimal.NewFromInt(10), IsCounted: true},
		{MaterialNo: "MAT-3", MaterialDesc: "Washer", Sloc: "B2", SystemQty: decimal.NewFromInt(7)},
		{MaterialNo: "MAT-4", MaterialDesc: "Empty bin", Sloc: "B2", SystemQty: decimal.Zero},
		{MaterialNo: "MAT-5", MaterialDesc: "Empty shelf", Sloc: "C3", SystemQty: decimal.Zero, PhysicalQty: decimal.Zero, IsCounted: true},
	}

	rows := Rows(items)
	if len(rows) != 5 {
		t.Fatalf("expected 5 rows, got %d", len(rows))
	}

	tests := []struct {
		variance string
		status   string
		match    string
	}{
		{"5", StatusCounted, MatchDiff},
		{"0", StatusCounted, MatchMatch},
		{"-7", StatusPending, MatchDiff},
		// uncounted lines never match, even when the snapshot is zero
		{"0", StatusPending, MatchDiff},
		{"0", StatusCounted, MatchMatch},
	}
	for i, tt := range tests {
		if rows[i].Variance.String() != tt.variance {
			t.Errorf("row %d: variance = %s, want %s", i, rows[i].Variance, tt.variance)
		}
		if rows[i].Status != tt.status {
			t.Errorf("row %d: status = %s, want %s", i, rows[i].Status, tt.status)
		}
		if rows[i].MatchStatus != tt.match {
			t.Errorf("row %d: match = %s, want %s", i, rows[i].MatchStatus, tt.match)
		}
	}
}

func TestFileName(t *testing.T) {
	at := time.Date(2024, 3, 9, 23, 0, 0, 0, time.UTC)
	got := FileName("Year End  Count\t2024", at)
	want := "Opname_Result_Year_End_Count_2024_2024-03-09.xlsx"
	if got != want {
		t.Fatalf("FileName = %q, want %q", got, want)
	}
}

func TestWriteXLSX(t *testing.T) {
	rows := Rows([]model.OpnameItem{
		{MaterialNo: "MAT-1", MaterialDesc: "Bolt", Sloc: "A1", SystemQty: decimal.NewFromInt(20), PhysicalQty: decimal.RequireFromString("12.5"), IsCounted: true},
	})

	content, err := WriteXLSX(rows)
	if err != nil {
		t.Fatalf("WriteXLSX: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	if name := f.GetSheetName(0); name != SheetName {
		t.Fatalf("sheet name = %q, want %q", name, SheetName)
	}

	got, err := f.GetRows(SheetName)
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected header plus 1 row, got %d", len(got))
	}
	for i, h := range Headers {
		if got[0][i] != h {
			t.Errorf("header %d = %q, want %q", i, got[0][i], h)
		}
	}

	want := []string{"MAT-1", "Bolt", "A1", "20", "12.5", "-7.5", "Counted", "Diff"}
	for i, v := range want {
		if got[1][i] != v {
			t.Errorf("cell %d = %q, want %q", i, got[1][i], v)
		}
	}

	width, err := f.GetColWidth(SheetName, "H")
	if err != nil {
		t.Fatalf("GetColWidth: %v", err)
	}
	if width != minColumnWidth {
		t.Errorf("column H width = %v, want %d", width, minColumnWidth)
	}
}
