package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	HistoryActionReconcile = "RECONCILE"
	HistoryUserStockOpname = "StockOpname"
)

// StockItem is a master inventory row, keyed by (MaterialNo, Sloc).
type StockItem struct {
	MaterialNo   string          `db:"material_no"`
	Sloc         string          `db:"sloc"`
	MaterialDesc string          `db:"material_desc"`
	Quantity     decimal.Decimal `db:"quantity"`
	UpdatedAt    time.Time       `db:"updated_at"`
}

type StockHistory struct {
	ID         string    `db:"id"`
	MaterialNo string    `db:"material_no"`
	Sloc       string    `db:"sloc"`
	UserName   string    `db:"user_name"`
	Action     string    `db:"action"`
	Details    string    `db:"details"`
	CreatedAt  time.Time `db:"created_at"`
}
