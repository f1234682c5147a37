package usecase

import (
	"context"
	"strings"

	"github.com/fekuna/omnipos-opname-service/internal/model"
	"github.com/fekuna/omnipos-opname-service/internal/opname"
	"github.com/fekuna/omnipos-opname-service/internal/opname/dto"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ListSessionItems normalises filters in place so callers can report the page actually served.
func (uc *opnameUseCase) ListSessionItems(ctx context.Context, f *dto.ItemFilters) ([]model.OpnameItem, int, error) {
	f.SearchTerm = strings.TrimSpace(f.SearchTerm)
	if f.Status == "" {
		f.Status = dto.StatusAll
	}
	if !f.Status.Valid() {
		return nil, 0, opname.ErrInvalidStatusFilter
	}
	if f.Page < 1 {
		f.Page = 1
	}
	switch {
	case f.PageSize <= 0:
		f.PageSize = uc.pageSize
	case f.PageSize > uc.maxPageSize:
		f.PageSize = uc.maxPageSize
	}
	return uc.repo.FindItems(ctx, f)
}

func (uc *opnameUseCase) ListAllSessionItems(ctx context.Context, sessionID string) ([]model.OpnameItem, error) {
	return uc.repo.ListAllItems(ctx, sessionID)
}

// RecordCount stores a physical quantity for one line. Re-counting overwrites; the last
// write wins.
func (uc *opnameUseCase) RecordCount(ctx context.Context, input *dto.RecordCountInput) (*model.OpnameItem, error) {
	qty, err := parseQuantity(input.PhysicalQty)
	if err != nil {
		return nil, err
	}

	item, err := uc.repo.UpdateCount(ctx, input.LineID, qty)
	if err != nil {
		return nil, err
	}

	uc.invalidateStats(ctx, item.SessionID)
	uc.logger.Debug("opname count recorded",
		zap.String("session_id", item.SessionID),
		zap.String("line_id", item.ID),
		zap.String("physical_qty", item.PhysicalQty.String()),
	)
	return item, nil
}

func parseQuantity(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, opname.ErrInvalidQuantity
	}
	qty, err := decimal.NewFromString(raw)
	if err != nil || qty.IsNegative() {
		return decimal.Zero, opname.ErrInvalidQuantity
	}
	return qty, nil
}
