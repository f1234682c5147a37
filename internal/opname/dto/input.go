package dto

import (
	"github.com/fekuna/omnipos-opname-service/internal/model"
	"github.com/shopspring/decimal"
)

type CreateSessionInput struct {
	Title       string
	Notes       string
	CreatorName string
}

type RecordCountInput struct {
	LineID      string
	PhysicalQty string // raw user entry, validated as a number
}

type FinalizeInput struct {
	SessionID string
	Actor     string
}

type Adjustment struct {
	MaterialNo  string
	Sloc        string
	SystemQty   decimal.Decimal
	PhysicalQty decimal.Decimal
}

type FinalizeResult struct {
	Session     *model.OpnameSession
	Adjustments []Adjustment
	// Missing holds variant lines whose master item no longer exists.
	Missing        []Adjustment
	MatchedLines   int
	UncountedLines int
}

type ExportFile struct {
	FileName string
	Content  []byte
	Rows     int
}
