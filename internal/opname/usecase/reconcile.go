package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/fekuna/omnipos-opname-service/internal/model"
	"github.com/fekuna/omnipos-opname-service/internal/opname"
	"github.com/fekuna/omnipos-opname-service/internal/opname/dto"
	"go.uber.org/zap"
)

func finalizeLockKey(sessionID string) string {
	return "lock:opname:finalize:" + sessionID
}

// FinalizeSession applies every counted variance to the master stock and closes the
// session. Uncounted lines and matching lines leave the master untouched.
func (uc *opnameUseCase) FinalizeSession(ctx context.Context, input *dto.FinalizeInput) (*dto.FinalizeResult, error) {
	release, err := uc.acquireFinalizeLock(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}
	defer release()

	result := &dto.FinalizeResult{}
	err = uc.repo.WithTx(ctx, func(ctx context.Context) error {
		session, err := uc.repo.GetSessionForUpdate(ctx, input.SessionID)
		if err != nil {
			return err
		}
		if session == nil {
			return opname.ErrSessionNotFound
		}
		if !session.IsOpen() {
			return opname.ErrSessionNotOpen
		}

		now := uc.clock.Now()
		lines, err := uc.repo.ListPendingReconciliation(ctx, session.ID)
		if err != nil {
			return err
		}
		for i := range lines {
			if err := uc.reconcileLine(ctx, &lines[i], now, result); err != nil {
				return err
			}
		}

		stats, err := uc.repo.CountStats(ctx, session.ID)
		if err != nil {
			return err
		}
		result.UncountedLines = stats.Total - stats.Counted

		if err := uc.repo.CompleteSession(ctx, session.ID, now); err != nil {
			return err
		}
		session.Status = model.OpnameStatusCompleted
		session.ClosedAt = &now
		result.Session = session
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.invalidateStats(ctx, input.SessionID)
	uc.logger.Info("opname session finalized",
		zap.String("session_id", input.SessionID),
		zap.String("actor", input.Actor),
		zap.Int("adjusted", len(result.Adjustments)),
		zap.Int("matched", result.MatchedLines),
		zap.Int("missing_master", len(result.Missing)),
		zap.Int("uncounted", result.UncountedLines),
	)

	payload := opname.SessionFinalizedPayload{
		SessionID:   input.SessionID,
		FinalizedBy: input.Actor,
		Adjustments: make([]opname.AdjustmentPayload, 0, len(result.Adjustments)),
	}
	for _, a := range result.Adjustments {
		payload.Adjustments = append(payload.Adjustments, opname.AdjustmentPayload{
			MaterialNo:  a.MaterialNo,
			Sloc:        a.Sloc,
			SystemQty:   a.SystemQty,
			PhysicalQty: a.PhysicalQty,
		})
	}
	uc.publish(ctx, input.SessionID, opname.EventOpnameFinalized, payload)
	return result, nil
}

// reconcileLine writes one counted line to the master stock. Matching lines are only
// marked reconciled; lines whose master item is gone are reported and skipped.
func (uc *opnameUseCase) reconcileLine(ctx context.Context, line *model.OpnameItem, now time.Time, result *dto.FinalizeResult) error {
	adj := dto.Adjustment{
		MaterialNo:  line.MaterialNo,
		Sloc:        line.Sloc,
		SystemQty:   line.SystemQty,
		PhysicalQty: line.PhysicalQty,
	}

	if line.Variance().IsZero() {
		result.MatchedLines++
		return uc.repo.MarkReconciled(ctx, line.ID, now)
	}

	found, err := uc.stock.UpdateQuantity(ctx, line.MaterialNo, line.Sloc, line.PhysicalQty, now)
	if err != nil {
		return err
	}
	if !found {
		uc.logger.Warn("master item missing, variance not applied",
			zap.String("material_no", line.MaterialNo),
			zap.String("sloc", line.Sloc),
		)
		result.Missing = append(result.Missing, adj)
		return nil
	}

	history := &model.StockHistory{
		ID:         newID(),
		MaterialNo: line.MaterialNo,
		Sloc:       line.Sloc,
		UserName:   model.HistoryUserStockOpname,
		Action:     model.HistoryActionReconcile,
		Details:    fmt.Sprintf("System: %s -> Physical: %s", line.SystemQty.String(), line.PhysicalQty.String()),
		CreatedAt:  now,
	}
	if err := uc.stock.LogHistory(ctx, history); err != nil {
		return err
	}
	if err := uc.repo.MarkReconciled(ctx, line.ID, now); err != nil {
		return err
	}
	result.Adjustments = append(result.Adjustments, adj)
	return nil
}

// acquireFinalizeLock returns a release func. Without a locker, or when the locker
// itself fails, the session row lock taken inside the transaction is the only guard.
func (uc *opnameUseCase) acquireFinalizeLock(ctx context.Context, sessionID string) (func(), error) {
	noop := func() {}
	if uc.locker == nil {
		return noop, nil
	}

	key := finalizeLockKey(sessionID)
	value := newID()
	for i := 0; i < lockAttempts; i++ {
		if i > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(lockRetryDelay):
			}
		}

		ok, err := uc.locker.AcquireLock(ctx, key, value, uc.lockTTL)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			uc.logger.Warn("finalize lock unavailable, relying on session row lock", zap.String("key", key), zap.Error(err))
			return noop, nil
		}
		if ok {
			return func() {
				if err := uc.locker.ReleaseLock(context.WithoutCancel(ctx), key, value); err != nil {
					uc.logger.Warn("failed to release finalize lock", zap.String("key", key), zap.Error(err))
				}
			}, nil
		}
	}
	return nil, opname.ErrSessionBusy
}
