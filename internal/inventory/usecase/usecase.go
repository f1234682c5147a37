package usecase

import (
	"context"
	"strings"

	"github.com/fekuna/omnipos-opname-service/internal/inventory"
	"github.com/fekuna/omnipos-opname-service/internal/inventory/dto"
	"github.com/fekuna/omnipos-opname-service/internal/logger"
	"github.com/fekuna/omnipos-opname-service/internal/model"
	"go.uber.org/zap"
)

const (
	defaultPageSize    = 20
	defaultMaxPageSize = 100
)

type inventoryUseCase struct {
	repo   inventory.Repository
	logger logger.ZapLogger

	pageSize    int
	maxPageSize int
}

// NewInventoryUseCase falls back to 20 rows per page, capped at 100, when the sizes are
// not positive.
func NewInventoryUseCase(repo inventory.Repository, log logger.ZapLogger, pageSize, maxPageSize int) inventory.UseCase {
	uc := &inventoryUseCase{
		repo:        repo,
		logger:      log,
		pageSize:    defaultPageSize,
		maxPageSize: defaultMaxPageSize,
	}
	if pageSize > 0 {
		uc.pageSize = pageSize
	}
	if maxPageSize > 0 {
		uc.maxPageSize = maxPageSize
	}
	return uc
}

func (uc *inventoryUseCase) GetStockItem(ctx context.Context, materialNo, sloc string) (*model.StockItem, error) {
	materialNo, sloc = strings.TrimSpace(materialNo), strings.TrimSpace(sloc)
	if materialNo == "" || sloc == "" {
		return nil, inventory.ErrStockKeyRequired
	}

	item, err := uc.repo.GetByKey(ctx, materialNo, sloc)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, inventory.ErrStockItemNotFound
	}
	return item, nil
}

// ListStockHistory normalises filters in place, newest entries first.
func (uc *inventoryUseCase) ListStockHistory(ctx context.Context, f *dto.HistoryFilters) ([]model.StockHistory, int, error) {
	f.MaterialNo = strings.TrimSpace(f.MaterialNo)
	f.Sloc = strings.TrimSpace(f.Sloc)
	f.Action = strings.ToUpper(strings.TrimSpace(f.Action))
	if f.Page < 1 {
		f.Page = 1
	}
	switch {
	case f.PageSize <= 0:
		f.PageSize = uc.pageSize
	case f.PageSize > uc.maxPageSize:
		f.PageSize = uc.maxPageSize
	}

	entries, total, err := uc.repo.ListHistory(ctx, f)
	if err != nil {
		uc.logger.Error("failed to list stock history",
			zap.String("material_no", f.MaterialNo),
			zap.String("action", f.Action),
			zap.Error(err),
		)
		return nil, 0, err
	}
	return entries, total, nil
}
