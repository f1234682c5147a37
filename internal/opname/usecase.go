package opname

import (
	"context"

	"github.com/fekuna/omnipos-opname-service/internal/model"
	"github.com/fekuna/omnipos-opname-service/internal/opname/dto"
)

type UseCase interface {
	ListSessions(ctx context.Context) ([]model.OpnameSession, error)
	GetOpenSession(ctx context.Context) (*model.OpnameSession, error)
	CreateSession(ctx context.Context, input *dto.CreateSessionInput) (*model.OpnameSession, error)
	OpenSession(ctx context.Context, sessionID string) (*model.OpnameSession, *dto.ItemFilters, error)

	ListSessionItems(ctx context.Context, filters *dto.ItemFilters) ([]model.OpnameItem, int, error)
	ListAllSessionItems(ctx context.Context, sessionID string) ([]model.OpnameItem, error)
	RecordCount(ctx context.Context, input *dto.RecordCountInput) (*model.OpnameItem, error)

	GetSessionStats(ctx context.Context, sessionID string) (model.OpnameStats, error)
	FinalizeSession(ctx context.Context, input *dto.FinalizeInput) (*dto.FinalizeResult, error)
	ExportSession(ctx context.Context, sessionID string) (*dto.ExportFile, error)
}
