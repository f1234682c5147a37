package usecase

import (
	"context"
	"time"

	"github.com/fekuna/omnipos-opname-service/internal/clock"
	"github.com/fekuna/omnipos-opname-service/internal/inventory"
	"github.com/fekuna/omnipos-opname-service/internal/logger"
	"github.com/fekuna/omnipos-opname-service/internal/opname"
	"go.uber.org/zap"
)

const (
	defaultChunkSize       = 100
	defaultPageSize        = 20
	defaultMaxPageSize     = 100
	defaultStatsTTL        = 30 * time.Second
	defaultFinalizeLockTTL = 2 * time.Minute
	lockAttempts           = 3
	lockRetryDelay         = 100 * time.Millisecond
)

type opnameUseCase struct {
	repo      opname.Repository
	stock     inventory.Repository
	locker    opname.Locker
	cache     opname.StatsCache
	publisher opname.EventPublisher
	clock     clock.Clock
	logger    logger.ZapLogger

	chunkSize   int
	pageSize    int
	maxPageSize int
	statsTTL    time.Duration
	lockTTL     time.Duration
}

type Option func(*opnameUseCase)

// WithLocker enables the cross-instance finalize lock.
func WithLocker(l opname.Locker, ttl time.Duration) Option {
	return func(uc *opnameUseCase) {
		uc.locker = l
		if ttl > 0 {
			uc.lockTTL = ttl
		}
	}
}

func WithStatsCache(c opname.StatsCache, ttl time.Duration) Option {
	return func(uc *opnameUseCase) {
		uc.cache = c
		if ttl > 0 {
			uc.statsTTL = ttl
		}
	}
}

func WithPublisher(p opname.EventPublisher) Option {
	return func(uc *opnameUseCase) {
		uc.publisher = p
	}
}

func WithChunkSize(n int) Option {
	return func(uc *opnameUseCase) {
		if n > 0 {
			uc.chunkSize = n
		}
	}
}

func WithPageSize(def, max int) Option {
	return func(uc *opnameUseCase) {
		if max > 0 {
			uc.maxPageSize = max
		}
		if def > 0 {
			uc.pageSize = def
		}
		if uc.pageSize > uc.maxPageSize {
			uc.pageSize = uc.maxPageSize
		}
	}
}

func NewOpnameUseCase(repo opname.Repository, stock inventory.Repository, clk clock.Clock, log logger.ZapLogger, opts ...Option) opname.UseCase {
	uc := &opnameUseCase{
		repo:        repo,
		stock:       stock,
		clock:       clk,
		logger:      log,
		chunkSize:   defaultChunkSize,
		pageSize:    defaultPageSize,
		maxPageSize: defaultMaxPageSize,
		statsTTL:    defaultStatsTTL,
		lockTTL:     defaultFinalizeLockTTL,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// publish is best effort; the database is the source of truth.
func (uc *opnameUseCase) publish(ctx context.Context, key, eventType string, payload interface{}) {
	if uc.publisher == nil {
		return
	}
	event := opname.Event{
		EventID:   newID(),
		EventType: eventType,
		Payload:   payload,
		Timestamp: uc.clock.Now(),
	}
	if err := uc.publisher.Publish(ctx, key, event); err != nil {
		uc.logger.Warn("failed to publish opname event",
			zap.String("event_type", eventType),
			zap.String("session_id", key),
			zap.Error(err),
		)
	}
}
