package handler

import (
	"context"
	"errors"
	"strings"

	opnamev1 "github.com/fekuna/omnipos-opname-service/api/opname/v1"
	"github.com/fekuna/omnipos-opname-service/internal/auth"
	"github.com/fekuna/omnipos-opname-service/internal/logger"
	"github.com/fekuna/omnipos-opname-service/internal/model"
	"github.com/fekuna/omnipos-opname-service/internal/opname"
	"github.com/fekuna/omnipos-opname-service/internal/opname/dto"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type OpnameHandler struct {
	opnamev1.UnimplementedOpnameServiceServer
	uc     opname.UseCase
	logger logger.ZapLogger
}

func NewOpnameHandler(uc opname.UseCase, log logger.ZapLogger) *OpnameHandler {
	return &OpnameHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *OpnameHandler) ListSessions(ctx context.Context, req *opnamev1.ListSessionsRequest) (*opnamev1.ListSessionsResponse, error) {
	if _, err := authorize(ctx); err != nil {
		return nil, err
	}

	sessions, err := h.uc.ListSessions(ctx)
	if err != nil {
		return nil, h.toStatus(err)
	}

	resp := &opnamev1.ListSessionsResponse{Sessions: make([]*opnamev1.Session, len(sessions))}
	for i := range sessions {
		resp.Sessions[i] = mapSessionToProto(&sessions[i])
	}
	return resp, nil
}

func (h *OpnameHandler) GetOpenSession(ctx context.Context, req *opnamev1.GetOpenSessionRequest) (*opnamev1.GetOpenSessionResponse, error) {
	if _, err := authorize(ctx); err != nil {
		return nil, err
	}

	session, err := h.uc.GetOpenSession(ctx)
	if err != nil {
		return nil, h.toStatus(err)
	}
	resp := &opnamev1.GetOpenSessionResponse{}
	if session != nil {
		resp.Session = mapSessionToProto(session)
	}
	return resp, nil
}

func (h *OpnameHandler) CreateSession(ctx context.Context, req *opnamev1.CreateSessionRequest) (*opnamev1.Session, error) {
	user, err := authorize(ctx)
	if err != nil {
		return nil, err
	}

	session, err := h.uc.CreateSession(ctx, &dto.CreateSessionInput{
		Title:       req.Title,
		Notes:       req.Notes,
		CreatorName: user.DisplayName(),
	})
	if err != nil {
		return nil, h.toStatus(err)
	}
	return mapSessionToProto(session), nil
}

func (h *OpnameHandler) OpenSession(ctx context.Context, req *opnamev1.OpenSessionRequest) (*opnamev1.OpenSessionResponse, error) {
	if _, err := authorize(ctx); err != nil {
		return nil, err
	}

	session, filters, err := h.uc.OpenSession(ctx, req.SessionId)
	if err != nil {
		return nil, h.toStatus(err)
	}
	return &opnamev1.OpenSessionResponse{
		Session: mapSessionToProto(session),
		Filter: &opnamev1.ItemFilter{
			Search:   filters.SearchTerm,
			Status:   string(filters.Status),
			Page:     int32(filters.Page),
			PageSize: int32(filters.PageSize),
		},
	}, nil
}

func (h *OpnameHandler) ListSessionItems(ctx context.Context, req *opnamev1.ListSessionItemsRequest) (*opnamev1.ListSessionItemsResponse, error) {
	if _, err := authorize(ctx); err != nil {
		return nil, err
	}

	filters := &dto.ItemFilters{
		SessionID:  req.SessionId,
		SearchTerm: req.Search,
		Status:     dto.StatusFilter(strings.ToUpper(strings.TrimSpace(req.Status))),
		Page:       int(req.Page),
		PageSize:   int(req.PageSize),
	}
	items, total, err := h.uc.ListSessionItems(ctx, filters)
	if err != nil {
		return nil, h.toStatus(err)
	}

	resp := &opnamev1.ListSessionItemsResponse{
		Items:      make([]*opnamev1.Line, len(items)),
		Total:      int32(total),
		Page:       int32(filters.Page),
		PageSize:   int32(filters.PageSize),
		TotalPages: int32((total + filters.PageSize - 1) / filters.PageSize),
	}
	for i := range items {
		resp.Items[i] = mapLineToProto(&items[i])
	}
	return resp, nil
}

func (h *OpnameHandler) RecordCount(ctx context.Context, req *opnamev1.RecordCountRequest) (*opnamev1.Line, error) {
	if _, err := authorize(ctx); err != nil {
		return nil, err
	}

	item, err := h.uc.RecordCount(ctx, &dto.RecordCountInput{
		LineID:      req.LineId,
		PhysicalQty: req.PhysicalQty,
	})
	if err != nil {
		return nil, h.toStatus(err)
	}
	return mapLineToProto(item), nil
}

func (h *OpnameHandler) GetSessionStats(ctx context.Context, req *opnamev1.GetSessionStatsRequest) (*opnamev1.Stats, error) {
	if _, err := authorize(ctx); err != nil {
		return nil, err
	}

	stats, err := h.uc.GetSessionStats(ctx, req.SessionId)
	if err != nil {
		return nil, h.toStatus(err)
	}
	return &opnamev1.Stats{
		Total:    int32(stats.Total),
		Counted:  int32(stats.Counted),
		Matched:  int32(stats.Matched),
		Variance: int32(stats.Variance),
		Progress: int32(stats.Progress()),
		Accuracy: int32(stats.Accuracy()),
	}, nil
}

func (h *OpnameHandler) FinalizeSession(ctx context.Context, req *opnamev1.FinalizeSessionRequest) (*opnamev1.FinalizeSessionResponse, error) {
	user, err := authorize(ctx)
	if err != nil {
		return nil, err
	}

	result, err := h.uc.FinalizeSession(ctx, &dto.FinalizeInput{
		SessionID: req.SessionId,
		Actor:     user.DisplayName(),
	})
	if err != nil {
		return nil, h.toStatus(err)
	}

	resp := &opnamev1.FinalizeSessionResponse{
		Session:        mapSessionToProto(result.Session),
		Adjustments:    mapAdjustmentsToProto(result.Adjustments),
		Missing:        mapAdjustmentsToProto(result.Missing),
		MatchedLines:   int32(result.MatchedLines),
		UncountedLines: int32(result.UncountedLines),
	}
	return resp, nil
}

func (h *OpnameHandler) ExportSession(ctx context.Context, req *opnamev1.ExportSessionRequest) (*opnamev1.ExportSessionResponse, error) {
	if _, err := authorize(ctx); err != nil {
		return nil, err
	}

	file, err := h.uc.ExportSession(ctx, req.SessionId)
	if err != nil {
		return nil, h.toStatus(err)
	}
	return &opnamev1.ExportSessionResponse{
		FileName:    file.FileName,
		ContentType: xlsxContentType,
		Content:     file.Content,
		Rows:        int32(file.Rows),
	}, nil
}

func authorize(ctx context.Context) (auth.UserContext, error) {
	user := auth.GetUser(ctx)
	if !user.CanManageOpname() {
		return user, status.Error(codes.PermissionDenied, "stock opname requires ADMIN or STAFF role")
	}
	return user, nil
}

func (h *OpnameHandler) toStatus(err error) error {
	switch {
	case errors.Is(err, opname.ErrTitleRequired),
		errors.Is(err, opname.ErrInvalidQuantity),
		errors.Is(err, opname.ErrInvalidStatusFilter):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, opname.ErrSessionNotFound),
		errors.Is(err, opname.ErrLineNotFound),
		errors.Is(err, opname.ErrNothingToExport):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, opname.ErrSessionAlreadyOpen),
		errors.Is(err, opname.ErrSessionNotOpen):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, opname.ErrSessionBusy):
		return status.Error(codes.Aborted, err.Error())
	default:
		h.logger.Error("opname request failed", zap.Error(err))
		return status.Error(codes.Internal, "internal error")
	}
}

func mapSessionToProto(s *model.OpnameSession) *opnamev1.Session {
	session := &opnamev1.Session{
		Id:         s.ID,
		Title:      s.Title,
		Status:     string(s.Status),
		Creator:    s.Creator,
		Notes:      s.Notes,
		TotalItems: int32(s.TotalItems),
		CreatedAt:  timestamppb.New(s.CreatedAt),
	}
	if s.ClosedAt != nil {
		session.ClosedAt = timestamppb.New(*s.ClosedAt)
	}
	return session
}

func mapLineToProto(i *model.OpnameItem) *opnamev1.Line {
	return &opnamev1.Line{
		Id:           i.ID,
		SessionId:    i.SessionID,
		MaterialNo:   i.MaterialNo,
		Sloc:         i.Sloc,
		MaterialDesc: i.MaterialDesc,
		SystemQty:    i.SystemQty.String(),
		PhysicalQty:  i.PhysicalQty.String(),
		Variance:     i.Variance().String(),
		IsCounted:    i.IsCounted,
		IsReconciled: i.ReconciledAt != nil,
	}
}

func mapAdjustmentsToProto(adjs []dto.Adjustment) []*opnamev1.Adjustment {
	out := make([]*opnamev1.Adjustment, len(adjs))
	for i, a := range adjs {
		out[i] = &opnamev1.Adjustment{
			MaterialNo:  a.MaterialNo,
			Sloc:        a.Sloc,
			SystemQty:   a.SystemQty.String(),
			PhysicalQty: a.PhysicalQty.String(),
		}
	}
	return out
}
