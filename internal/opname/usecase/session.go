package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/fekuna/omnipos-opname-service/internal/model"
	"github.com/fekuna/omnipos-opname-service/internal/opname"
	"github.com/fekuna/omnipos-opname-service/internal/opname/dto"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func newID() string {
	return uuid.New().String()
}

// ListSessions never fails the caller; a storage error is logged and yields an empty list.
func (uc *opnameUseCase) ListSessions(ctx context.Context) ([]model.OpnameSession, error) {
	sessions, err := uc.repo.ListSessions(ctx)
	if err != nil {
		uc.logger.Error("failed to list opname sessions", zap.Error(err))
		return []model.OpnameSession{}, nil
	}
	return sessions, nil
}

func (uc *opnameUseCase) GetOpenSession(ctx context.Context) (*model.OpnameSession, error) {
	return uc.repo.GetOpenSession(ctx)
}

func (uc *opnameUseCase) OpenSession(ctx context.Context, sessionID string) (*model.OpnameSession, *dto.ItemFilters, error) {
	session, err := uc.getSession(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}
	return session, &dto.ItemFilters{
		SessionID: session.ID,
		Status:    dto.StatusAll,
		Page:      1,
		PageSize:  uc.pageSize,
	}, nil
}

// CreateSession opens a session and snapshots every master item into it. Either the
// session and its full snapshot are stored, or nothing is.
func (uc *opnameUseCase) CreateSession(ctx context.Context, input *dto.CreateSessionInput) (*model.OpnameSession, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, opname.ErrTitleRequired
	}

	session := &model.OpnameSession{
		ID:        newID(),
		Title:     title,
		Status:    model.OpnameStatusOpen,
		Creator:   strings.TrimSpace(input.CreatorName),
		Notes:     strings.TrimSpace(input.Notes),
		CreatedAt: uc.clock.Now(),
	}

	err := uc.repo.WithTx(ctx, func(ctx context.Context) error {
		if err := uc.repo.CreateOpenSession(ctx, session); err != nil {
			return err
		}
		inserted, err := uc.snapshot(ctx, session.ID)
		if err != nil {
			return err
		}
		if err := uc.repo.UpdateTotalItems(ctx, session.ID, inserted); err != nil {
			return err
		}
		session.TotalItems = inserted
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("opname session created",
		zap.String("session_id", session.ID),
		zap.String("title", session.Title),
		zap.Int("total_items", session.TotalItems),
	)
	uc.publish(ctx, session.ID, opname.EventOpnameCreated, opname.SessionCreatedPayload{
		SessionID:  session.ID,
		Title:      session.Title,
		Creator:    session.Creator,
		TotalItems: session.TotalItems,
	})
	return session, nil
}

// snapshot copies the master inventory into the session in chunks and returns how many
// lines were stored.
func (uc *opnameUseCase) snapshot(ctx context.Context, sessionID string) (int, error) {
	masters, err := uc.stock.ListAll(ctx)
	if err != nil {
		return 0, err
	}

	inserted := 0
	for start := 0; start < len(masters); start += uc.chunkSize {
		end := start + uc.chunkSize
		if end > len(masters) {
			end = len(masters)
		}

		chunk := make([]model.OpnameItem, 0, end-start)
		for _, m := range masters[start:end] {
			chunk = append(chunk, model.OpnameItem{
				ID:           newID(),
				SessionID:    sessionID,
				MaterialNo:   m.MaterialNo,
				Sloc:         m.Sloc,
				MaterialDesc: m.MaterialDesc,
				SystemQty:    m.Quantity,
			})
		}

		n, err := uc.repo.InsertItems(ctx, chunk)
		if err != nil {
			return 0, fmt.Errorf("snapshot chunk at %d: %w", start, err)
		}
		inserted += n
	}
	return inserted, nil
}

func (uc *opnameUseCase) getSession(ctx context.Context, sessionID string) (*model.OpnameSession, error) {
	session, err := uc.repo.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, opname.ErrSessionNotFound
	}
	return session, nil
}
