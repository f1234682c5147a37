package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type OpnameStatus string

const (
	OpnameStatusOpen      OpnameStatus = "OPEN"
	OpnameStatusCompleted OpnameStatus = "COMPLETED"
	OpnameStatusCancelled OpnameStatus = "CANCELLED"
)

type OpnameSession struct {
	ID         string       `db:"id"`
	Title      string       `db:"title"`
	Status     OpnameStatus `db:"status"`
	Creator    string       `db:"creator"`
	Notes      string       `db:"notes"`
	TotalItems int          `db:"total_items"`
	CreatedAt  time.Time    `db:"created_at"`
	ClosedAt   *time.Time   `db:"closed_at"` // set on completion only
}

func (s *OpnameSession) IsOpen() bool {
	return s.Status == OpnameStatusOpen
}

// OpnameItem is one snapshotted line of a session. SystemQty never changes after
// the snapshot; variance is always derived from the two quantities.
type OpnameItem struct {
	ID           string          `db:"id"`
	SessionID    string          `db:"session_id"`
	MaterialNo   string          `db:"material_no"`
	Sloc         string          `db:"sloc"`
	MaterialDesc string          `db:"material_desc"`
	SystemQty    decimal.Decimal `db:"system_qty"`
	PhysicalQty  decimal.Decimal `db:"physical_qty"`
	IsCounted    bool            `db:"is_counted"`
	ReconciledAt *time.Time      `db:"reconciled_at"`
}

func (i *OpnameItem) Variance() decimal.Decimal {
	return i.PhysicalQty.Sub(i.SystemQty)
}

// IsMatch reports whether the line was counted and agrees with the snapshot.
func (i *OpnameItem) IsMatch() bool {
	return i.IsCounted && i.Variance().IsZero()
}

// OpnameStats summarises a session's ledger.
type OpnameStats struct {
	Total    int `json:"total"`
	Counted  int `json:"counted"`
	Matched  int `json:"matched"`
	Variance int `json:"variance"`
}

// Progress is the counted share of the session in whole percent; an empty session reports 0.
func (s OpnameStats) Progress() int {
	if s.Total == 0 {
		return 0
	}
	return percent(s.Counted, s.Total)
}

// Accuracy is the matched share of counted lines in whole percent; 100 until something is counted.
func (s OpnameStats) Accuracy() int {
	if s.Counted == 0 {
		return 100
	}
	return percent(s.Matched, s.Counted)
}

func percent(part, whole int) int {
	// round half up on non-negative integers
	return (part*200 + whole) / (whole * 2)
}
