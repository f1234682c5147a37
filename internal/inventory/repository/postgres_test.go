package repository

import (
	"context"
	"testing"
	"time"

	"github.com/fekuna/omnipos-opname-service/internal/database/postgres"
	"github.com/fekuna/omnipos-opname-service/internal/inventory/dto"
	"github.com/fekuna/omnipos-opname-service/internal/model"
	"github.com/fekuna/omnipos-opname-service/internal/testutil"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestPGRepository(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewPGRepository(db)

	t.Run("ListAll returns every item ordered by key", func(t *testing.T) {
		ctx := context.Background()
		testutil.TruncateAll(t, ctx, db)
		testutil.InsertStockItem(t, ctx, db, "MAT-2", "W01", "Bolt", 20)
		testutil.InsertStockItem(t, ctx, db, "MAT-1", "W02", "Nut", 10)
		testutil.InsertStockItem(t, ctx, db, "MAT-1", "W01", "Nut", 5)

		items, err := repo.ListAll(ctx)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(items) != 3 {
			t.Fatalf("expected 3 items, got %d", len(items))
		}
		if items[0].MaterialNo != "MAT-1" || items[0].Sloc != "W01" || !items[0].Quantity.Equal(decimal.NewFromInt(5)) {
			t.Fatalf("unexpected first item: %+v", items[0])
		}
	})

	t.Run("UpdateQuantity reports missing keys", func(t *testing.T) {
		ctx := context.Background()
		testutil.TruncateAll(t, ctx, db)
		testutil.InsertStockItem(t, ctx, db, "MAT-1", "W01", "Nut", 5)

		ok, err := repo.UpdateQuantity(ctx, "MAT-1", "W01", decimal.NewFromInt(7), time.Now().UTC())
		if err != nil || !ok {
			t.Fatalf("expected update, ok=%v err=%v", ok, err)
		}
		if qty := testutil.StockQuantity(t, ctx, db, "MAT-1", "W01"); !qty.Equal(decimal.NewFromInt(7)) {
			t.Fatalf("expected quantity 7, got %s", qty)
		}

		ok, err = repo.UpdateQuantity(ctx, "MAT-1", "W99", decimal.NewFromInt(7), time.Now().UTC())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if ok {
			t.Fatal("expected missing item to report false")
		}

		item, err := repo.GetByKey(ctx, "MAT-1", "W99")
		if err != nil || item != nil {
			t.Fatalf("expected nil item, got %+v err=%v", item, err)
		}
	})

	t.Run("history is written inside the caller's transaction", func(t *testing.T) {
		ctx := context.Background()
		testutil.TruncateAll(t, ctx, db)

		entry := &model.StockHistory{
			ID:         uuid.New().String(),
			MaterialNo: "MAT-1",
			Sloc:       "W01",
			UserName:   model.HistoryUserStockOpname,
			Action:     model.HistoryActionReconcile,
			Details:    "System: 10 -> Physical: 12",
			CreatedAt:  time.Now().UTC(),
		}

		errRollback := context.Canceled
		err := postgres.WithTx(ctx, db, func(txCtx context.Context) error {
			if err := repo.LogHistory(txCtx, entry); err != nil {
				return err
			}
			return errRollback
		})
		if err != errRollback {
			t.Fatalf("expected rollback sentinel, got %v", err)
		}

		_, count, err := repo.ListHistory(ctx, &dto.HistoryFilters{MaterialNo: "MAT-1"})
		if err != nil {
			t.Fatalf("list history: %v", err)
		}
		if count != 0 {
			t.Fatalf("expected rolled back history, got %d rows", count)
		}

		if err := repo.LogHistory(ctx, entry); err != nil {
			t.Fatalf("log history: %v", err)
		}
		rows, count, err := repo.ListHistory(ctx, &dto.HistoryFilters{
			MaterialNo: "MAT-1",
			Action:     model.HistoryActionReconcile,
			Page:       1,
			PageSize:   10,
		})
		if err != nil {
			t.Fatalf("list history: %v", err)
		}
		if count != 1 || len(rows) != 1 || rows[0].Details != entry.Details {
			t.Fatalf("unexpected history: count=%d rows=%+v", count, rows)
		}
	})
}
