package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fekuna/omnipos-opname-service/internal/cache"
	invdto "github.com/fekuna/omnipos-opname-service/internal/inventory/dto"
	"github.com/fekuna/omnipos-opname-service/internal/model"
	"github.com/fekuna/omnipos-opname-service/internal/opname"
	"github.com/fekuna/omnipos-opname-service/internal/opname/dto"
	"github.com/shopspring/decimal"
)

// fakeStore backs both the opname and the master stock repositories so a failed
// transaction can roll back both sides together.
type fakeStore struct {
	mu sync.Mutex

	sessions map[string]model.OpnameSession
	items    []model.OpnameItem
	stock    []model.StockItem
	history  []model.StockHistory

	insertCalls  int
	failInsertAt int // 1-based InsertItems call that fails, 0 disables

	afterCountStats func() // runs once the aggregate is computed, before it is returned
}

func newFakeStore(stock ...model.StockItem) *fakeStore {
	return &fakeStore{
		sessions: map[string]model.OpnameSession{},
		stock:    stock,
	}
}

func stockItem(materialNo, sloc, desc string, qty int64) model.StockItem {
	return model.StockItem{MaterialNo: materialNo, Sloc: sloc, MaterialDesc: desc, Quantity: decimal.NewFromInt(qty)}
}

func (f *fakeStore) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	f.mu.Lock()
	sessions := make(map[string]model.OpnameSession, len(f.sessions))
	for k, v := range f.sessions {
		sessions[k] = v
	}
	items := append([]model.OpnameItem(nil), f.items...)
	stock := append([]model.StockItem(nil), f.stock...)
	history := append([]model.StockHistory(nil), f.history...)
	f.mu.Unlock()

	if err := fn(ctx); err != nil {
		f.mu.Lock()
		f.sessions, f.items, f.stock, f.history = sessions, items, stock, history
		f.mu.Unlock()
		return err
	}
	return nil
}

func (f *fakeStore) ListSessions(ctx context.Context) ([]model.OpnameSession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []model.OpnameSession{}
	for _, s := range f.sessions {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeStore) GetSession(ctx context.Context, id string) (*model.OpnameSession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.sessions[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (f *fakeStore) GetSessionForUpdate(ctx context.Context, id string) (*model.OpnameSession, error) {
	return f.GetSession(ctx, id)
}

func (f *fakeStore) GetOpenSession(ctx context.Context) (*model.OpnameSession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, s := range f.sessions {
		if s.IsOpen() {
			return &s, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) CreateOpenSession(ctx context.Context, s *model.OpnameSession) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.sessions {
		if existing.IsOpen() {
			return opname.ErrSessionAlreadyOpen
		}
	}
	s.Status = model.OpnameStatusOpen
	f.sessions[s.ID] = *s
	return nil
}

func (f *fakeStore) UpdateTotalItems(ctx context.Context, id string, total int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	s := f.sessions[id]
	s.TotalItems = total
	f.sessions[id] = s
	return nil
}

func (f *fakeStore) CompleteSession(ctx context.Context, id string, closedAt time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.sessions[id]
	if !ok || !s.IsOpen() {
		return opname.ErrSessionNotOpen
	}
	s.Status = model.OpnameStatusCompleted
	s.ClosedAt = &closedAt
	f.sessions[id] = s
	return nil
}

func (f *fakeStore) InsertItems(ctx context.Context, items []model.OpnameItem) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.insertCalls++
	if f.failInsertAt > 0 && f.insertCalls == f.failInsertAt {
		return 0, errors.New("connection reset")
	}
	f.items = append(f.items, items...)
	return len(items), nil
}

func (f *fakeStore) sessionItems(sessionID string) []model.OpnameItem {
	out := []model.OpnameItem{}
	for _, it := range f.items {
		if it.SessionID == sessionID {
			out = append(out, it)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.MaterialDesc != b.MaterialDesc {
			return a.MaterialDesc < b.MaterialDesc
		}
		if a.MaterialNo != b.MaterialNo {
			return a.MaterialNo < b.MaterialNo
		}
		return a.Sloc < b.Sloc
	})
	return out
}

func (f *fakeStore) FindItems(ctx context.Context, filters *dto.ItemFilters) ([]model.OpnameItem, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	matched := []model.OpnameItem{}
	term := strings.ToLower(filters.SearchTerm)
	counted := filters.Status.IsCounted()
	for _, it := range f.sessionItems(filters.SessionID) {
		if term != "" && !strings.Contains(strings.ToLower(it.MaterialDesc), term) && !strings.Contains(strings.ToLower(it.MaterialNo), term) {
			continue
		}
		if counted != nil && it.IsCounted != *counted {
			continue
		}
		matched = append(matched, it)
	}
	total := len(matched)
	start := (filters.Page - 1) * filters.PageSize
	if start > total {
		start = total
	}
	end := start + filters.PageSize
	if end > total {
		end = total
	}
	return matched[start:end], total, nil
}

func (f *fakeStore) ListAllItems(ctx context.Context, sessionID string) ([]model.OpnameItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sessionItems(sessionID), nil
}

func (f *fakeStore) ListPendingReconciliation(ctx context.Context, sessionID string) ([]model.OpnameItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []model.OpnameItem{}
	for _, it := range f.sessionItems(sessionID) {
		if it.IsCounted && it.ReconciledAt == nil {
			out = append(out, it)
		}
	}
	return out, nil
}

func (f *fakeStore) UpdateCount(ctx context.Context, lineID string, qty decimal.Decimal) (*model.OpnameItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.items {
		if f.items[i].ID != lineID {
			continue
		}
		if s := f.sessions[f.items[i].SessionID]; !s.IsOpen() {
			return nil, opname.ErrSessionNotOpen
		}
		f.items[i].PhysicalQty = qty
		f.items[i].IsCounted = true
		item := f.items[i]
		return &item, nil
	}
	return nil, opname.ErrLineNotFound
}

func (f *fakeStore) MarkReconciled(ctx context.Context, lineID string, at time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.items {
		if f.items[i].ID == lineID {
			f.items[i].ReconciledAt = &at
		}
	}
	return nil
}

func (f *fakeStore) CountStats(ctx context.Context, sessionID string) (model.OpnameStats, error) {
	stats := f.countStats(sessionID)
	if hook := f.afterCountStats; hook != nil {
		f.afterCountStats = nil
		hook()
	}
	return stats, nil
}

func (f *fakeStore) countStats(sessionID string) model.OpnameStats {
	f.mu.Lock()
	defer f.mu.Unlock()
	var stats model.OpnameStats
	for _, it := range f.sessionItems(sessionID) {
		stats.Total++
		if !it.IsCounted {
			continue
		}
		stats.Counted++
		if it.Variance().IsZero() {
			stats.Matched++
		} else {
			stats.Variance++
		}
	}
	return stats
}

func (f *fakeStore) ListAll(ctx context.Context) ([]model.StockItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]model.StockItem(nil), f.stock...), nil
}

func (f *fakeStore) GetByKey(ctx context.Context, materialNo, sloc string) (*model.StockItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, s := range f.stock {
		if s.MaterialNo == materialNo && s.Sloc == sloc {
			return &s, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) UpdateQuantity(ctx context.Context, materialNo, sloc string, qty decimal.Decimal, at time.Time) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.stock {
		if f.stock[i].MaterialNo == materialNo && f.stock[i].Sloc == sloc {
			f.stock[i].Quantity = qty
			f.stock[i].UpdatedAt = at
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStore) LogHistory(ctx context.Context, h *model.StockHistory) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.history = append(f.history, *h)
	return nil
}

func (f *fakeStore) ListHistory(ctx context.Context, filters *invdto.HistoryFilters) ([]model.StockHistory, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]model.StockHistory(nil), f.history...), len(f.history), nil
}

func (f *fakeStore) removeStock(materialNo, sloc string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	kept := f.stock[:0]
	for _, s := range f.stock {
		if s.MaterialNo != materialNo || s.Sloc != sloc {
			kept = append(kept, s)
		}
	}
	f.stock = kept
}

func (f *fakeStore) quantity(materialNo, sloc string) decimal.Decimal {
	item, _ := f.GetByKey(context.Background(), materialNo, sloc)
	if item == nil {
		return decimal.Zero
	}
	return item.Quantity
}

type fakeLocker struct {
	mu    sync.Mutex
	held  map[string]string
	calls int
	err   error
}

func newFakeLocker() *fakeLocker {
	return &fakeLocker{held: map[string]string{}}
}

func (l *fakeLocker) AcquireLock(ctx context.Context, key, value string, ttl time.Duration) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls++
	if l.err != nil {
		return false, l.err
	}
	if _, ok := l.held[key]; ok {
		return false, nil
	}
	l.held[key] = value
	return true, nil
}

func (l *fakeLocker) ReleaseLock(ctx context.Context, key, value string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.held[key] == value {
		delete(l.held, key)
	}
	return nil
}

type fakeCache struct {
	mu      sync.Mutex
	data    map[string]model.OpnameStats
	gens    map[string]int64
	deletes int
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: map[string]model.OpnameStats{}, gens: map[string]int64{}}
}

func (c *fakeCache) Generation(ctx context.Context, key string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gens[key], nil
}

func (c *fakeCache) Bump(ctx context.Context, key string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gens[key]++
	return c.gens[key], nil
}

func (c *fakeCache) cached(sessionID string) (model.OpnameStats, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.data[statsCacheKey(sessionID, c.gens[statsGenerationKey(sessionID)])]
	return v, ok
}

func (c *fakeCache) GetJSON(ctx context.Context, key string, dest interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.data[key]
	if !ok {
		return cache.ErrCacheMiss
	}
	*dest.(*model.OpnameStats) = v
	return nil
}

func (c *fakeCache) SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = value.(model.OpnameStats)
	return nil
}

func (c *fakeCache) Delete(ctx context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.data, k)
	}
	c.deletes++
	return nil
}

type fakePublisher struct {
	mu     sync.Mutex
	events []opname.Event
}

func (p *fakePublisher) Publish(ctx context.Context, key string, event interface{}) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event.(opname.Event))
	return nil
}

func (p *fakePublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.events))
	for i, e := range p.events {
		out[i] = e.EventType
	}
	return out
}
