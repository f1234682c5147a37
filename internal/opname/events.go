package opname

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	EventOpnameCreated   = "OpnameCreated"
	EventOpnameFinalized = "OpnameFinalized"
)

type Event struct {
	EventID   string      `json:"event_id"`
	EventType string      `json:"event_type"`
	Payload   interface{} `json:"payload"`
	Timestamp time.Time   `json:"timestamp"`
}

type SessionCreatedPayload struct {
	SessionID  string `json:"session_id"`
	Title      string `json:"title"`
	Creator    string `json:"creator"`
	TotalItems int    `json:"total_items"`
}

type SessionFinalizedPayload struct {
	SessionID   string              `json:"session_id"`
	FinalizedBy string              `json:"finalized_by"`
	Adjustments []AdjustmentPayload `json:"adjustments"`
}

type AdjustmentPayload struct {
	MaterialNo  string          `json:"material_no"`
	Sloc        string          `json:"sloc"`
	SystemQty   decimal.Decimal `json:"system_qty"`
	PhysicalQty decimal.Decimal `json:"physical_qty"`
}
