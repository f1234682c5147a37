package usecase

import (
	"context"
	"errors"
	"strconv"

	"github.com/fekuna/omnipos-opname-service/internal/cache"
	"github.com/fekuna/omnipos-opname-service/internal/model"
	"go.uber.org/zap"
)

func statsGenerationKey(sessionID string) string {
	return "opname:stats:" + sessionID + ":gen"
}

func statsCacheKey(sessionID string, gen int64) string {
	return "opname:stats:" + sessionID + ":" + strconv.FormatInt(gen, 10)
}

// GetSessionStats serves the cached aggregate when one exists for the session's current
// generation. The generation is read before the query, so a result computed before a
// concurrent count lands under a generation nobody reads any more.
func (uc *opnameUseCase) GetSessionStats(ctx context.Context, sessionID string) (model.OpnameStats, error) {
	key := ""
	if uc.cache != nil {
		gen, err := uc.cache.Generation(ctx, statsGenerationKey(sessionID))
		if err != nil {
			uc.logger.Warn("failed to read stats generation", zap.String("session_id", sessionID), zap.Error(err))
		} else {
			key = statsCacheKey(sessionID, gen)
			var cached model.OpnameStats
			err := uc.cache.GetJSON(ctx, key, &cached)
			if err == nil {
				return cached, nil
			}
			if !errors.Is(err, cache.ErrCacheMiss) {
				uc.logger.Warn("failed to read stats cache", zap.String("key", key), zap.Error(err))
			}
		}
	}

	if _, err := uc.getSession(ctx, sessionID); err != nil {
		return model.OpnameStats{}, err
	}
	stats, err := uc.repo.CountStats(ctx, sessionID)
	if err != nil {
		return model.OpnameStats{}, err
	}

	if key != "" {
		if err := uc.cache.SetJSON(ctx, key, stats, uc.statsTTL); err != nil {
			uc.logger.Warn("failed to write stats cache", zap.String("key", key), zap.Error(err))
		}
	}
	return stats, nil
}

func (uc *opnameUseCase) invalidateStats(ctx context.Context, sessionID string) {
	if uc.cache == nil {
		return
	}
	gen, err := uc.cache.Bump(ctx, statsGenerationKey(sessionID))
	if err != nil {
		uc.logger.Warn("failed to invalidate stats cache", zap.String("session_id", sessionID), zap.Error(err))
		return
	}
	if err := uc.cache.Delete(ctx, statsCacheKey(sessionID, gen-1)); err != nil {
		uc.logger.Warn("failed to drop stale stats", zap.String("session_id", sessionID), zap.Error(err))
	}
}
