package handler

import (
	"context"
	"errors"

	opnamev1 "github.com/fekuna/omnipos-opname-service/api/opname/v1"
	"github.com/fekuna/omnipos-opname-service/internal/auth"
	"github.com/fekuna/omnipos-opname-service/internal/inventory"
	"github.com/fekuna/omnipos-opname-service/internal/inventory/dto"
	"github.com/fekuna/omnipos-opname-service/internal/logger"
	"github.com/fekuna/omnipos-opname-service/internal/model"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

type InventoryHandler struct {
	opnamev1.UnimplementedInventoryServiceServer
	uc     inventory.UseCase
	logger logger.ZapLogger
}

func NewInventoryHandler(uc inventory.UseCase, log logger.ZapLogger) *InventoryHandler {
	return &InventoryHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *InventoryHandler) GetStockItem(ctx context.Context, req *opnamev1.GetStockItemRequest) (*opnamev1.StockItem, error) {
	if err := authorize(ctx); err != nil {
		return nil, err
	}

	item, err := h.uc.GetStockItem(ctx, req.MaterialNo, req.Sloc)
	if err != nil {
		return nil, h.toStatus(err)
	}
	return &opnamev1.StockItem{
		MaterialNo:   item.MaterialNo,
		Sloc:         item.Sloc,
		MaterialDesc: item.MaterialDesc,
		Quantity:     item.Quantity.String(),
		UpdatedAt:    timestamppb.New(item.UpdatedAt),
	}, nil
}

// ListStockHistory exposes the audit trail, including the RECONCILE entries written
// when a session is finalized.
func (h *InventoryHandler) ListStockHistory(ctx context.Context, req *opnamev1.ListStockHistoryRequest) (*opnamev1.ListStockHistoryResponse, error) {
	if err := authorize(ctx); err != nil {
		return nil, err
	}

	filters := &dto.HistoryFilters{
		MaterialNo: req.MaterialNo,
		Sloc:       req.Sloc,
		Action:     req.Action,
		Page:       int(req.Page),
		PageSize:   int(req.PageSize),
	}
	entries, total, err := h.uc.ListStockHistory(ctx, filters)
	if err != nil {
		return nil, h.toStatus(err)
	}

	resp := &opnamev1.ListStockHistoryResponse{
		Entries:  make([]*opnamev1.StockHistoryEntry, len(entries)),
		Total:    int32(total),
		Page:     int32(filters.Page),
		PageSize: int32(filters.PageSize),
	}
	for i := range entries {
		resp.Entries[i] = mapHistoryToProto(&entries[i])
	}
	return resp, nil
}

func authorize(ctx context.Context) error {
	if !auth.GetUser(ctx).CanManageOpname() {
		return status.Error(codes.PermissionDenied, "stock history requires ADMIN or STAFF role")
	}
	return nil
}

func (h *InventoryHandler) toStatus(err error) error {
	switch {
	case errors.Is(err, inventory.ErrStockKeyRequired):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, inventory.ErrStockItemNotFound):
		return status.Error(codes.NotFound, err.Error())
	default:
		h.logger.Error("inventory request failed", zap.Error(err))
		return status.Error(codes.Internal, "internal error")
	}
}

func mapHistoryToProto(m *model.StockHistory) *opnamev1.StockHistoryEntry {
	return &opnamev1.StockHistoryEntry{
		Id:         m.ID,
		MaterialNo: m.MaterialNo,
		Sloc:       m.Sloc,
		UserName:   m.UserName,
		Action:     m.Action,
		Details:    m.Details,
		CreatedAt:  timestamppb.New(m.CreatedAt),
	}
}
