package inventory

import (
	"context"

	"github.com/fekuna/omnipos-opname-service/internal/inventory/dto"
	"github.com/fekuna/omnipos-opname-service/internal/model"
)

// UseCase is the read side of the master stock: current quantities and the audit trail
// that reconciliations leave behind.
type UseCase interface {
	GetStockItem(ctx context.Context, materialNo, sloc string) (*model.StockItem, error)
	ListStockHistory(ctx context.Context, filters *dto.HistoryFilters) ([]model.StockHistory, int, error)
}
