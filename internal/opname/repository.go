package opname

import (
	"context"
	"time"

	"github.com/fekuna/omnipos-opname-service/internal/model"
	"github.com/fekuna/omnipos-opname-service/internal/opname/dto"
	"github.com/shopspring/decimal"
)

type Repository interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error

	// Sessions
	ListSessions(ctx context.Context) ([]model.OpnameSession, error)
	GetSession(ctx context.Context, id string) (*model.OpnameSession, error)
	GetSessionForUpdate(ctx context.Context, id string) (*model.OpnameSession, error)
	GetOpenSession(ctx context.Context) (*model.OpnameSession, error)
	// CreateOpenSession inserts s only when no OPEN session exists, otherwise ErrSessionAlreadyOpen.
	CreateOpenSession(ctx context.Context, s *model.OpnameSession) error
	UpdateTotalItems(ctx context.Context, id string, total int) error
	CompleteSession(ctx context.Context, id string, closedAt time.Time) error

	// Line items
	InsertItems(ctx context.Context, items []model.OpnameItem) (int, error)
	FindItems(ctx context.Context, filters *dto.ItemFilters) ([]model.OpnameItem, int, error)
	ListAllItems(ctx context.Context, sessionID string) ([]model.OpnameItem, error)
	ListPendingReconciliation(ctx context.Context, sessionID string) ([]model.OpnameItem, error)
	UpdateCount(ctx context.Context, lineID string, physicalQty decimal.Decimal) (*model.OpnameItem, error)
	MarkReconciled(ctx context.Context, lineID string, at time.Time) error
	CountStats(ctx context.Context, sessionID string) (model.OpnameStats, error)
}

// Locker serialises finalize calls across service instances.
type Locker interface {
	AcquireLock(ctx context.Context, key, value string, ttl time.Duration) (bool, error)
	ReleaseLock(ctx context.Context, key, value string) error
}

// StatsCache stores aggregates under a per-session generation that every write to the
// ledger bumps.
type StatsCache interface {
	Generation(ctx context.Context, key string) (int64, error)
	Bump(ctx context.Context, key string) (int64, error)
	GetJSON(ctx context.Context, key string, dest interface{}) error
	SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

type EventPublisher interface {
	Publish(ctx context.Context, key string, event interface{}) error
}
