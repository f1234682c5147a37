package inventory

import (
	"context"
	"time"

	"github.com/fekuna/omnipos-opname-service/internal/inventory/dto"
	"github.com/fekuna/omnipos-opname-service/internal/model"
	"github.com/shopspring/decimal"
)

// Repository is the slice of the master stock tables the opname workflow reads and corrects.
type Repository interface {
	// Stock items
	ListAll(ctx context.Context) ([]model.StockItem, error)
	GetByKey(ctx context.Context, materialNo, sloc string) (*model.StockItem, error)
	UpdateQuantity(ctx context.Context, materialNo, sloc string, quantity decimal.Decimal, at time.Time) (bool, error)

	// History / audit
	LogHistory(ctx context.Context, h *model.StockHistory) error
	ListHistory(ctx context.Context, filters *dto.HistoryFilters) ([]model.StockHistory, int, error)
}
