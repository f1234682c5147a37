package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/fekuna/omnipos-opname-service/internal/clock"
	"github.com/fekuna/omnipos-opname-service/internal/logger"
	"github.com/fekuna/omnipos-opname-service/internal/model"
	"github.com/fekuna/omnipos-opname-service/internal/opname"
	"github.com/fekuna/omnipos-opname-service/internal/opname/dto"
	"github.com/shopspring/decimal"
)

var testNow = time.Date(2024, 4, 1, 8, 30, 0, 0, time.UTC)

type testEnv struct {
	store     *fakeStore
	cache     *fakeCache
	locker    *fakeLocker
	publisher *fakePublisher
	uc        opname.UseCase
}

func newTestEnv(t *testing.T, stock []model.StockItem, opts ...Option) *testEnv {
	t.Helper()
	env := &testEnv{
		store:     newFakeStore(stock...),
		cache:     newFakeCache(),
		locker:    newFakeLocker(),
		publisher: &fakePublisher{},
	}
	opts = append([]Option{
		WithStatsCache(env.cache, time.Minute),
		WithLocker(env.locker, time.Minute),
		WithPublisher(env.publisher),
	}, opts...)
	env.uc = NewOpnameUseCase(env.store, env.store, clock.NewFixed(testNow), logger.NewNop(), opts...)
	return env
}

func (env *testEnv) createSession(t *testing.T, title string) *model.OpnameSession {
	t.Helper()
	session, err := env.uc.CreateSession(context.Background(), &dto.CreateSessionInput{Title: title, CreatorName: "tester"})
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	return session
}

func (env *testEnv) lines(t *testing.T, sessionID string) []model.OpnameItem {
	t.Helper()
	items, err := env.uc.ListAllSessionItems(context.Background(), sessionID)
	if err != nil {
		t.Fatalf("ListAllSessionItems: %v", err)
	}
	return items
}

func (env *testEnv) count(t *testing.T, lineID, qty string) *model.OpnameItem {
	t.Helper()
	item, err := env.uc.RecordCount(context.Background(), &dto.RecordCountInput{LineID: lineID, PhysicalQty: qty})
	if err != nil {
		t.Fatalf("RecordCount(%s): %v", qty, err)
	}
	return item
}

func lineByMaterial(items []model.OpnameItem, materialNo string) model.OpnameItem {
	for _, it := range items {
		if it.MaterialNo == materialNo {
			return it
		}
	}
	return model.OpnameItem{}
}

func scenarioStock() []model.StockItem {
	return []model.StockItem{
		stockItem("MAT-1", "WH1", "Bolt M8", 10),
		stockItem("MAT-2", "WH1", "Cable tie", 20),
		stockItem("MAT-3", "WH1", "Drill bit", 30),
	}
}

func TestFinalizeAppliesOnlyVariances(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, scenarioStock())

	session := env.createSession(t, "Q1 Audit")
	if session.TotalItems != 3 {
		t.Fatalf("expected 3 snapshotted lines, got %d", session.TotalItems)
	}

	items := env.lines(t, session.ID)
	env.count(t, lineByMaterial(items, "MAT-1").ID, "10")
	env.count(t, lineByMaterial(items, "MAT-2").ID, "25")
	env.count(t, lineByMaterial(items, "MAT-3").ID, "30")

	stats, err := env.uc.GetSessionStats(ctx, session.ID)
	if err != nil {
		t.Fatalf("GetSessionStats: %v", err)
	}
	want := model.OpnameStats{Total: 3, Counted: 3, Matched: 2, Variance: 1}
	if stats != want {
		t.Fatalf("stats = %+v, want %+v", stats, want)
	}

	result, err := env.uc.FinalizeSession(ctx, &dto.FinalizeInput{SessionID: session.ID, Actor: "supervisor"})
	if err != nil {
		t.Fatalf("FinalizeSession: %v", err)
	}
	if result.Session.Status != model.OpnameStatusCompleted || result.Session.ClosedAt == nil {
		t.Fatalf("expected completed session with closed_at, got %+v", result.Session)
	}
	if len(result.Adjustments) != 1 || result.MatchedLines != 2 {
		t.Fatalf("expected 1 adjustment and 2 matched, got %d and %d", len(result.Adjustments), result.MatchedLines)
	}

	if q := env.store.quantity("MAT-2", "WH1"); !q.Equal(decimal.NewFromInt(25)) {
		t.Fatalf("MAT-2 quantity = %s, want 25", q)
	}
	if q := env.store.quantity("MAT-1", "WH1"); !q.Equal(decimal.NewFromInt(10)) {
		t.Fatalf("MAT-1 quantity changed to %s", q)
	}
	if q := env.store.quantity("MAT-3", "WH1"); !q.Equal(decimal.NewFromInt(30)) {
		t.Fatalf("MAT-3 quantity changed to %s", q)
	}

	if len(env.store.history) != 1 {
		t.Fatalf("expected 1 history row, got %d", len(env.store.history))
	}
	h := env.store.history[0]
	if h.MaterialNo != "MAT-2" || h.Action != model.HistoryActionReconcile || h.UserName != model.HistoryUserStockOpname {
		t.Fatalf("unexpected history row %+v", h)
	}
	if h.Details != "System: 20 -> Physical: 25" {
		t.Fatalf("unexpected history details %q", h.Details)
	}

	stored, _ := env.store.GetSession(ctx, session.ID)
	if stored.Status != model.OpnameStatusCompleted {
		t.Fatalf("stored session status = %s", stored.Status)
	}
	if got := env.publisher.types(); len(got) != 2 || got[0] != opname.EventOpnameCreated || got[1] != opname.EventOpnameFinalized {
		t.Fatalf("unexpected events %v", got)
	}
	if len(env.locker.held) != 0 {
		t.Fatalf("finalize lock not released")
	}
}

func TestCreateSessionRejectedWhileOpen(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, scenarioStock())
	first := env.createSession(t, "Q1 Audit")

	_, err := env.uc.CreateSession(ctx, &dto.CreateSessionInput{Title: "Second"})
	if !errors.Is(err, opname.ErrSessionAlreadyOpen) {
		t.Fatalf("expected ErrSessionAlreadyOpen, got %v", err)
	}

	sessions, _ := env.uc.ListSessions(ctx)
	if len(sessions) != 1 {
		t.Fatalf("expected 1 session, got %d", len(sessions))
	}
	open, _ := env.uc.GetOpenSession(ctx)
	if open == nil || open.ID != first.ID || open.TotalItems != 3 {
		t.Fatalf("existing open session changed: %+v", open)
	}
	if len(env.store.items) != 3 {
		t.Fatalf("expected no extra lines, got %d", len(env.store.items))
	}
}

func TestCreateSessionValidation(t *testing.T) {
	env := newTestEnv(t, scenarioStock())

	for _, title := range []string{"", "   ", "\t\n"} {
		_, err := env.uc.CreateSession(context.Background(), &dto.CreateSessionInput{Title: title})
		if !errors.Is(err, opname.ErrTitleRequired) {
			t.Errorf("title %q: expected ErrTitleRequired, got %v", title, err)
		}
	}
	if len(env.store.sessions) != 0 {
		t.Fatalf("expected no sessions, got %d", len(env.store.sessions))
	}

	session := env.createSession(t, "  Mid-year  ")
	if session.Title != "Mid-year" {
		t.Fatalf("expected trimmed title, got %q", session.Title)
	}
	if !session.CreatedAt.Equal(testNow) {
		t.Fatalf("expected created_at from clock, got %s", session.CreatedAt)
	}
}

func TestCreateSessionSnapshotsInChunks(t *testing.T) {
	stock := make([]model.StockItem, 0, 250)
	for i := 0; i < 250; i++ {
		stock = append(stock, stockItem(fmt.Sprintf("MAT-%03d", i), "WH1", "Item", int64(i)))
	}
	env := newTestEnv(t, stock)

	session := env.createSession(t, "Full count")
	if session.TotalItems != 250 {
		t.Fatalf("expected 250 lines, got %d", session.TotalItems)
	}
	if env.store.insertCalls != 3 {
		t.Fatalf("expected 3 chunks of 100, got %d inserts", env.store.insertCalls)
	}
	for _, it := range env.lines(t, session.ID) {
		if it.IsCounted || !it.PhysicalQty.IsZero() {
			t.Fatalf("snapshot line should start uncounted: %+v", it)
		}
	}
}

func TestCreateSessionChunkFailureLeavesNothing(t *testing.T) {
	stock := make([]model.StockItem, 0, 5)
	for _, m := range []string{"A", "B", "C", "D", "E"} {
		stock = append(stock, stockItem(m, "WH1", "Item "+m, 1))
	}
	env := newTestEnv(t, stock, WithChunkSize(2))
	env.store.failInsertAt = 2

	_, err := env.uc.CreateSession(context.Background(), &dto.CreateSessionInput{Title: "Broken"})
	if err == nil {
		t.Fatalf("expected snapshot failure")
	}
	if len(env.store.sessions) != 0 || len(env.store.items) != 0 {
		t.Fatalf("expected rollback, got %d sessions and %d items", len(env.store.sessions), len(env.store.items))
	}
	if len(env.publisher.types()) != 0 {
		t.Fatalf("no event expected on failure")
	}
}

func TestCreateSessionWithEmptyMaster(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, nil)

	session := env.createSession(t, "Nothing to count")
	if session.TotalItems != 0 {
		t.Fatalf("expected 0 lines, got %d", session.TotalItems)
	}

	stats, err := env.uc.GetSessionStats(ctx, session.ID)
	if err != nil {
		t.Fatalf("GetSessionStats: %v", err)
	}
	if stats.Progress() != 0 || stats.Accuracy() != 100 {
		t.Fatalf("expected progress 0 and accuracy 100, got %d and %d", stats.Progress(), stats.Accuracy())
	}

	if _, err := env.uc.ExportSession(ctx, session.ID); !errors.Is(err, opname.ErrNothingToExport) {
		t.Fatalf("expected ErrNothingToExport, got %v", err)
	}

	result, err := env.uc.FinalizeSession(ctx, &dto.FinalizeInput{SessionID: session.ID})
	if err != nil {
		t.Fatalf("FinalizeSession: %v", err)
	}
	if result.Session.Status != model.OpnameStatusCompleted {
		t.Fatalf("expected completed, got %s", result.Session.Status)
	}
}

func TestRecordCountValidation(t *testing.T) {
	env := newTestEnv(t, scenarioStock())
	session := env.createSession(t, "Q1 Audit")
	line := env.lines(t, session.ID)[0]

	for _, raw := range []string{"abc", "", "  ", "-1", "1,5", "NaN"} {
		_, err := env.uc.RecordCount(context.Background(), &dto.RecordCountInput{LineID: line.ID, PhysicalQty: raw})
		if !errors.Is(err, opname.ErrInvalidQuantity) {
			t.Errorf("qty %q: expected ErrInvalidQuantity, got %v", raw, err)
		}
	}

	after := lineByMaterial(env.lines(t, session.ID), line.MaterialNo)
	if after.IsCounted || !after.PhysicalQty.IsZero() {
		t.Fatalf("line changed after rejected counts: %+v", after)
	}

	item := env.count(t, line.ID, " 12.5 ")
	if !item.IsCounted || !item.PhysicalQty.Equal(decimal.RequireFromString("12.5")) {
		t.Fatalf("unexpected counted line %+v", item)
	}
	item = env.count(t, line.ID, "0")
	if !item.IsCounted || !item.PhysicalQty.IsZero() {
		t.Fatalf("zero count should be stored and counted: %+v", item)
	}
}

func TestRecordCountUnknownLine(t *testing.T) {
	env := newTestEnv(t, scenarioStock())
	env.createSession(t, "Q1 Audit")

	_, err := env.uc.RecordCount(context.Background(), &dto.RecordCountInput{LineID: "missing", PhysicalQty: "1"})
	if !errors.Is(err, opname.ErrLineNotFound) {
		t.Fatalf("expected ErrLineNotFound, got %v", err)
	}
}

func TestListSessionItemsFilters(t *testing.T) {
	ctx := context.Background()
	stock := []model.StockItem{
		stockItem("MAT-1", "WH1", "Bolt M8", 1),
		stockItem("MAT-2", "WH1", "Cable tie", 2),
		stockItem("MAT-3", "WH1", "Drill bit", 3),
		stockItem("MAT-4", "WH2", "Anchor bolt", 4),
		stockItem("MAT-5", "WH2", "Epoxy", 5),
	}
	env := newTestEnv(t, stock)
	session := env.createSession(t, "Filter test")
	items := env.lines(t, session.ID)
	env.count(t, lineByMaterial(items, "MAT-1").ID, "1")
	env.count(t, lineByMaterial(items, "MAT-5").ID, "9")

	t.Run("uncounted", func(t *testing.T) {
		got, total, err := env.uc.ListSessionItems(ctx, &dto.ItemFilters{SessionID: session.ID, Status: dto.StatusUncounted})
		if err != nil {
			t.Fatalf("ListSessionItems: %v", err)
		}
		if total != 3 || len(got) != 3 {
			t.Fatalf("expected 3 uncounted lines, got %d/%d", len(got), total)
		}
		for _, it := range got {
			if it.IsCounted {
				t.Fatalf("counted line returned: %+v", it)
			}
		}
	})

	t.Run("counted", func(t *testing.T) {
		_, total, err := env.uc.ListSessionItems(ctx, &dto.ItemFilters{SessionID: session.ID, Status: dto.StatusCounted})
		if err != nil || total != 2 {
			t.Fatalf("expected 2 counted lines, got %d (%v)", total, err)
		}
	})

	t.Run("search is case insensitive and trimmed", func(t *testing.T) {
		got, total, err := env.uc.ListSessionItems(ctx, &dto.ItemFilters{SessionID: session.ID, SearchTerm: "  BOLT "})
		if err != nil {
			t.Fatalf("ListSessionItems: %v", err)
		}
		if total != 2 || got[0].MaterialNo != "MAT-4" || got[1].MaterialNo != "MAT-1" {
			t.Fatalf("unexpected search result %+v", got)
		}
	})

	t.Run("paging defaults and clamps", func(t *testing.T) {
		got, total, err := env.uc.ListSessionItems(ctx, &dto.ItemFilters{SessionID: session.ID, Page: -3, PageSize: 2})
		if err != nil {
			t.Fatalf("ListSessionItems: %v", err)
		}
		if total != 5 || len(got) != 2 || got[0].MaterialNo != "MAT-4" {
			t.Fatalf("unexpected first page %+v (total %d)", got, total)
		}

		got, _, err = env.uc.ListSessionItems(ctx, &dto.ItemFilters{SessionID: session.ID, Page: 3, PageSize: 2})
		if err != nil || len(got) != 1 {
			t.Fatalf("expected 1 line on last page, got %d (%v)", len(got), err)
		}

		got, _, err = env.uc.ListSessionItems(ctx, &dto.ItemFilters{SessionID: session.ID, Page: 9, PageSize: 500})
		if err != nil || len(got) != 0 {
			t.Fatalf("expected empty page past the end, got %d (%v)", len(got), err)
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		_, _, err := env.uc.ListSessionItems(ctx, &dto.ItemFilters{SessionID: session.ID, Status: "DONE"})
		if !errors.Is(err, opname.ErrInvalidStatusFilter) {
			t.Fatalf("expected ErrInvalidStatusFilter, got %v", err)
		}
	})
}

func TestOpenSessionResetsFilters(t *testing.T) {
	env := newTestEnv(t, scenarioStock(), WithPageSize(25, 50))
	session := env.createSession(t, "Q1 Audit")

	got, filters, err := env.uc.OpenSession(context.Background(), session.ID)
	if err != nil {
		t.Fatalf("OpenSession: %v", err)
	}
	if got.ID != session.ID {
		t.Fatalf("wrong session %s", got.ID)
	}
	want := dto.ItemFilters{SessionID: session.ID, Status: dto.StatusAll, Page: 1, PageSize: 25}
	if *filters != want {
		t.Fatalf("filters = %+v, want %+v", *filters, want)
	}

	if _, _, err := env.uc.OpenSession(context.Background(), "nope"); !errors.Is(err, opname.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestFinalizeTwiceRejected(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, scenarioStock())
	session := env.createSession(t, "Q1 Audit")
	items := env.lines(t, session.ID)
	env.count(t, lineByMaterial(items, "MAT-2").ID, "25")

	if _, err := env.uc.FinalizeSession(ctx, &dto.FinalizeInput{SessionID: session.ID}); err != nil {
		t.Fatalf("first finalize: %v", err)
	}
	_, err := env.uc.FinalizeSession(ctx, &dto.FinalizeInput{SessionID: session.ID})
	if !errors.Is(err, opname.ErrSessionNotOpen) {
		t.Fatalf("expected ErrSessionNotOpen, got %v", err)
	}
	if len(env.store.history) != 1 {
		t.Fatalf("expected a single history row, got %d", len(env.store.history))
	}

	_, err = env.uc.RecordCount(ctx, &dto.RecordCountInput{LineID: lineByMaterial(items, "MAT-1").ID, PhysicalQty: "3"})
	if !errors.Is(err, opname.ErrSessionNotOpen) {
		t.Fatalf("expected ErrSessionNotOpen on closed session, got %v", err)
	}

	if _, err := env.uc.FinalizeSession(ctx, &dto.FinalizeInput{SessionID: "missing"}); !errors.Is(err, opname.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestFinalizeSkipsMissingMaster(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, scenarioStock())
	session := env.createSession(t, "Q1 Audit")
	items := env.lines(t, session.ID)
	env.count(t, lineByMaterial(items, "MAT-1").ID, "4")
	env.count(t, lineByMaterial(items, "MAT-3").ID, "31")
	env.store.removeStock("MAT-1", "WH1")

	result, err := env.uc.FinalizeSession(ctx, &dto.FinalizeInput{SessionID: session.ID})
	if err != nil {
		t.Fatalf("FinalizeSession: %v", err)
	}
	if len(result.Missing) != 1 || result.Missing[0].MaterialNo != "MAT-1" {
		t.Fatalf("expected MAT-1 reported missing, got %+v", result.Missing)
	}
	if len(result.Adjustments) != 1 || result.UncountedLines != 1 {
		t.Fatalf("unexpected result %+v", result)
	}
	if q := env.store.quantity("MAT-3", "WH1"); !q.Equal(decimal.NewFromInt(31)) {
		t.Fatalf("MAT-3 quantity = %s, want 31", q)
	}
}

func TestFinalizeBusyWhenLocked(t *testing.T) {
	env := newTestEnv(t, scenarioStock())
	session := env.createSession(t, "Q1 Audit")
	env.locker.held[finalizeLockKey(session.ID)] = "someone-else"

	_, err := env.uc.FinalizeSession(context.Background(), &dto.FinalizeInput{SessionID: session.ID})
	if !errors.Is(err, opname.ErrSessionBusy) {
		t.Fatalf("expected ErrSessionBusy, got %v", err)
	}
	if env.locker.calls != lockAttempts {
		t.Fatalf("expected %d lock attempts, got %d", lockAttempts, env.locker.calls)
	}
	stored, _ := env.store.GetSession(context.Background(), session.ID)
	if !stored.IsOpen() {
		t.Fatalf("session should still be open")
	}
}

func TestFinalizeFallsBackToRowLockWhenLockerFails(t *testing.T) {
	env := newTestEnv(t, scenarioStock())
	session := env.createSession(t, "Q1 Audit")
	env.count(t, lineByMaterial(env.lines(t, session.ID), "MAT-2").ID, "25")
	env.locker.err = errors.New("dial tcp 127.0.0.1:6379: connection refused")

	result, err := env.uc.FinalizeSession(context.Background(), &dto.FinalizeInput{SessionID: session.ID})
	if err != nil {
		t.Fatalf("FinalizeSession: %v", err)
	}
	if env.locker.calls != 1 {
		t.Fatalf("expected a single lock attempt, got %d", env.locker.calls)
	}
	if len(result.Adjustments) != 1 || !env.store.quantity("MAT-2", "WH1").Equal(decimal.NewFromInt(25)) {
		t.Fatalf("variance not applied: %+v", result.Adjustments)
	}
}

func TestFinalizeLockWaitHonoursContext(t *testing.T) {
	env := newTestEnv(t, scenarioStock())
	session := env.createSession(t, "Q1 Audit")
	env.locker.held[finalizeLockKey(session.ID)] = "someone-else"

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	_, err := env.uc.FinalizeSession(ctx, &dto.FinalizeInput{SessionID: session.ID})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if elapsed := time.Since(start); elapsed >= lockRetryDelay {
		t.Fatalf("lock wait ignored cancellation, took %v", elapsed)
	}
	if env.locker.calls != 1 {
		t.Fatalf("expected one attempt before giving up, got %d", env.locker.calls)
	}
}

func TestStatsCacheInvalidatedOnCount(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, scenarioStock())
	session := env.createSession(t, "Q1 Audit")

	stats, err := env.uc.GetSessionStats(ctx, session.ID)
	if err != nil {
		t.Fatalf("GetSessionStats: %v", err)
	}
	if stats.Counted != 0 || stats.Accuracy() != 100 || stats.Progress() != 0 {
		t.Fatalf("unexpected initial stats %+v", stats)
	}
	if _, ok := env.cache.cached(session.ID); !ok {
		t.Fatalf("stats not cached")
	}

	line := env.lines(t, session.ID)[0]
	env.count(t, line.ID, "99")

	stats, err = env.uc.GetSessionStats(ctx, session.ID)
	if err != nil {
		t.Fatalf("GetSessionStats: %v", err)
	}
	if stats.Counted != 1 || stats.Variance != 1 || stats.Accuracy() != 0 || stats.Progress() != 33 {
		t.Fatalf("stale or wrong stats %+v (progress %d accuracy %d)", stats, stats.Progress(), stats.Accuracy())
	}

	if _, err := env.uc.GetSessionStats(ctx, "missing"); !errors.Is(err, opname.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestStatsComputedBeforeCountNotServed(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, scenarioStock())
	session := env.createSession(t, "Q1 Audit")
	line := env.lines(t, session.ID)[0]

	// A count commits between the reader's query and its cache write.
	env.store.afterCountStats = func() { env.count(t, line.ID, "99") }

	stale, err := env.uc.GetSessionStats(ctx, session.ID)
	if err != nil {
		t.Fatalf("GetSessionStats: %v", err)
	}
	if stale.Counted != 0 {
		t.Fatalf("expected the racing read to see the pre-count ledger, got %+v", stale)
	}

	fresh, err := env.uc.GetSessionStats(ctx, session.ID)
	if err != nil {
		t.Fatalf("GetSessionStats: %v", err)
	}
	if fresh.Counted != 1 || fresh.Variance != 1 {
		t.Fatalf("stale stats served after count: %+v", fresh)
	}
	if cached, ok := env.cache.cached(session.ID); !ok || cached.Counted != 1 {
		t.Fatalf("expected the fresh aggregate cached, got %+v (ok=%v)", cached, ok)
	}
}

func TestExportSession(t *testing.T) {
	env := newTestEnv(t, scenarioStock())
	session := env.createSession(t, "Q1 Audit")
	env.count(t, lineByMaterial(env.lines(t, session.ID), "MAT-2").ID, "25")

	file, err := env.uc.ExportSession(context.Background(), session.ID)
	if err != nil {
		t.Fatalf("ExportSession: %v", err)
	}
	if file.Rows != 3 || len(file.Content) == 0 {
		t.Fatalf("unexpected export %d rows, %d bytes", file.Rows, len(file.Content))
	}
	if file.FileName != "Opname_Result_Q1_Audit_2024-04-01.xlsx" {
		t.Fatalf("unexpected file name %q", file.FileName)
	}
}

func TestWithoutOptionalCollaborators(t *testing.T) {
	store := newFakeStore(scenarioStock()...)
	uc := NewOpnameUseCase(store, store, clock.NewFixed(testNow), logger.NewNop())

	session, err := uc.CreateSession(context.Background(), &dto.CreateSessionInput{Title: "Plain"})
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	if _, err := uc.GetSessionStats(context.Background(), session.ID); err != nil {
		t.Fatalf("GetSessionStats: %v", err)
	}
	if _, err := uc.FinalizeSession(context.Background(), &dto.FinalizeInput{SessionID: session.ID}); err != nil {
		t.Fatalf("FinalizeSession: %v", err)
	}
}
