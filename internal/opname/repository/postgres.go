package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fekuna/omnipos-opname-service/internal/database/postgres"
	"github.com/fekuna/omnipos-opname-service/internal/model"
	"github.com/fekuna/omnipos-opname-service/internal/opname"
	"github.com/fekuna/omnipos-opname-service/internal/opname/dto"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

const (
	sessionColumns = `id, title, status, creator, notes, total_items, created_at, closed_at`
	itemColumns    = `id, session_id, material_no, sloc, material_desc, system_qty, physical_qty, is_counted, reconciled_at`
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return postgres.WithTx(ctx, r.DB, fn)
}

func (r *PGRepository) ListSessions(ctx context.Context) ([]model.OpnameSession, error) {
	sessions := []model.OpnameSession{}
	query := `SELECT ` + sessionColumns + ` FROM stock_opname_sessions ORDER BY created_at DESC, id`
	if err := postgres.Conn(ctx, r.DB).SelectContext(ctx, &sessions, query); err != nil {
		return nil, fmt.Errorf("list opname sessions: %w", err)
	}
	return sessions, nil
}

func (r *PGRepository) GetSession(ctx context.Context, id string) (*model.OpnameSession, error) {
	return r.getSession(ctx, `SELECT `+sessionColumns+` FROM stock_opname_sessions WHERE id = $1`, id)
}

// GetSessionForUpdate locks the session row until the surrounding transaction ends.
func (r *PGRepository) GetSessionForUpdate(ctx context.Context, id string) (*model.OpnameSession, error) {
	return r.getSession(ctx, `SELECT `+sessionColumns+` FROM stock_opname_sessions WHERE id = $1 FOR UPDATE`, id)
}

func (r *PGRepository) GetOpenSession(ctx context.Context) (*model.OpnameSession, error) {
	var s model.OpnameSession
	query := `SELECT ` + sessionColumns + ` FROM stock_opname_sessions WHERE status = 'OPEN' LIMIT 1`
	err := postgres.Conn(ctx, r.DB).GetContext(ctx, &s, query)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get open opname session: %w", err)
	}
	return &s, nil
}

func (r *PGRepository) getSession(ctx context.Context, query, id string) (*model.OpnameSession, error) {
	var s model.OpnameSession
	err := postgres.Conn(ctx, r.DB).GetContext(ctx, &s, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || postgres.IsInvalidUUID(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get opname session: %w", err)
	}
	return &s, nil
}

func (r *PGRepository) CreateOpenSession(ctx context.Context, s *model.OpnameSession) error {
	query := `
        INSERT INTO stock_opname_sessions (id, title, status, creator, notes, total_items, created_at)
        SELECT $1::uuid, $2::text, 'OPEN', $3::text, $4::text, 0, $5::timestamptz
        WHERE NOT EXISTS (SELECT 1 FROM stock_opname_sessions WHERE status = 'OPEN')
    `
	res, err := postgres.Conn(ctx, r.DB).ExecContext(ctx, query, s.ID, s.Title, s.Creator, s.Notes, s.CreatedAt)
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return opname.ErrSessionAlreadyOpen
		}
		return fmt.Errorf("create opname session: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return opname.ErrSessionAlreadyOpen
	}
	s.Status = model.OpnameStatusOpen
	return nil
}

func (r *PGRepository) UpdateTotalItems(ctx context.Context, id string, total int) error {
	query := `UPDATE stock_opname_sessions SET total_items = $2 WHERE id = $1`
	if _, err := postgres.Conn(ctx, r.DB).ExecContext(ctx, query, id, total); err != nil {
		return fmt.Errorf("update session total items: %w", err)
	}
	return nil
}

func (r *PGRepository) CompleteSession(ctx context.Context, id string, closedAt time.Time) error {
	query := `
        UPDATE stock_opname_sessions
        SET status = 'COMPLETED', closed_at = $2
        WHERE id = $1 AND status = 'OPEN'
    `
	res, err := postgres.Conn(ctx, r.DB).ExecContext(ctx, query, id, closedAt)
	if err != nil {
		return fmt.Errorf("complete opname session: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return opname.ErrSessionNotOpen
	}
	return nil
}

// InsertItems writes one batch in a single statement and returns the number of rows stored.
func (r *PGRepository) InsertItems(ctx context.Context, items []model.OpnameItem) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}
	// sqlx expands the VALUES tuple once per element, so the statement must end at the tuple.
	query := `INSERT INTO stock_opname_items (id, session_id, material_no, sloc, material_desc, system_qty, physical_qty, is_counted) ` +
		`VALUES (:id, :session_id, :material_no, :sloc, :material_desc, :system_qty, :physical_qty, :is_counted)`
	res, err := postgres.Conn(ctx, r.DB).NamedExecContext(ctx, query, items)
	if err != nil {
		return 0, fmt.Errorf("insert opname items: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(rows), nil
}

func (r *PGRepository) FindItems(ctx context.Context, f *dto.ItemFilters) ([]model.OpnameItem, int, error) {
	items := []model.OpnameItem{}
	var count int

	conditions := []string{"session_id = :session_id"}
	args := map[string]interface{}{
		"session_id": f.SessionID,
	}

	if f.SearchTerm != "" {
		conditions = append(conditions, "(material_desc ILIKE :search OR material_no ILIKE :search)")
		args["search"] = "%" + escapeLike(f.SearchTerm) + "%"
	}
	if counted := f.Status.IsCounted(); counted != nil {
		conditions = append(conditions, "is_counted = :is_counted")
		args["is_counted"] = *counted
	}

	whereClause := " WHERE " + strings.Join(conditions, " AND ")
	conn := postgres.Conn(ctx, r.DB)

	countQuery, countArgs, err := sqlx.Named("SELECT count(*) FROM stock_opname_items"+whereClause, args)
	if err != nil {
		return nil, 0, err
	}
	if err := conn.GetContext(ctx, &count, conn.Rebind(countQuery), countArgs...); err != nil {
		if postgres.IsInvalidUUID(err) {
			return items, 0, nil
		}
		return nil, 0, fmt.Errorf("count opname items: %w", err)
	}

	query := "SELECT " + itemColumns + " FROM stock_opname_items" + whereClause +
		" ORDER BY material_desc ASC, material_no ASC, sloc ASC, id ASC"
	if f.PageSize > 0 {
		page := f.Page
		if page < 1 {
			page = 1
		}
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", f.PageSize, (page-1)*f.PageSize)
	}

	listQuery, listArgs, err := sqlx.Named(query, args)
	if err != nil {
		return nil, 0, err
	}
	if err := conn.SelectContext(ctx, &items, conn.Rebind(listQuery), listArgs...); err != nil {
		return nil, 0, fmt.Errorf("find opname items: %w", err)
	}
	return items, count, nil
}

func (r *PGRepository) ListAllItems(ctx context.Context, sessionID string) ([]model.OpnameItem, error) {
	items := []model.OpnameItem{}
	query := `
        SELECT ` + itemColumns + `
        FROM stock_opname_items
        WHERE session_id = $1
        ORDER BY material_desc ASC, material_no ASC, sloc ASC, id ASC
    `
	if err := postgres.Conn(ctx, r.DB).SelectContext(ctx, &items, query, sessionID); err != nil {
		if postgres.IsInvalidUUID(err) {
			return items, nil
		}
		return nil, fmt.Errorf("list opname items: %w", err)
	}
	return items, nil
}

// ListPendingReconciliation returns counted lines not yet applied to the master stock.
func (r *PGRepository) ListPendingReconciliation(ctx context.Context, sessionID string) ([]model.OpnameItem, error) {
	items := []model.OpnameItem{}
	query := `
        SELECT ` + itemColumns + `
        FROM stock_opname_items
        WHERE session_id = $1 AND is_counted = true AND reconciled_at IS NULL
        ORDER BY material_no, sloc, id
    `
	if err := postgres.Conn(ctx, r.DB).SelectContext(ctx, &items, query, sessionID); err != nil {
		return nil, fmt.Errorf("list pending opname items: %w", err)
	}
	return items, nil
}

// UpdateCount stores the physical quantity only while the owning session is OPEN. The
// session row is share-locked so a concurrent finalize either sees this count or rejects it.
func (r *PGRepository) UpdateCount(ctx context.Context, lineID string, physicalQty decimal.Decimal) (*model.OpnameItem, error) {
	var item model.OpnameItem
	query := `
        UPDATE stock_opname_items AS i
        SET physical_qty = $2, is_counted = true
        WHERE i.id = $1
          AND EXISTS (
              SELECT 1 FROM stock_opname_sessions s
              WHERE s.id = i.session_id AND s.status = 'OPEN'
              FOR SHARE
          )
        RETURNING ` + itemColumns
	conn := postgres.Conn(ctx, r.DB)

	err := conn.GetContext(ctx, &item, query, lineID, physicalQty)
	if err == nil {
		return &item, nil
	}
	if postgres.IsInvalidUUID(err) {
		return nil, opname.ErrLineNotFound
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("record opname count: %w", err)
	}

	var status model.OpnameStatus
	lookup := `
        SELECT s.status
        FROM stock_opname_items i
        JOIN stock_opname_sessions s ON s.id = i.session_id
        WHERE i.id = $1
    `
	if err := conn.GetContext(ctx, &status, lookup, lineID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, opname.ErrLineNotFound
		}
		return nil, fmt.Errorf("lookup opname line: %w", err)
	}
	return nil, opname.ErrSessionNotOpen
}

func (r *PGRepository) MarkReconciled(ctx context.Context, lineID string, at time.Time) error {
	query := `UPDATE stock_opname_items SET reconciled_at = $2 WHERE id = $1`
	if _, err := postgres.Conn(ctx, r.DB).ExecContext(ctx, query, lineID, at); err != nil {
		return fmt.Errorf("mark opname line reconciled: %w", err)
	}
	return nil
}

// CountStats aggregates the session in one pass without transferring line rows.
func (r *PGRepository) CountStats(ctx context.Context, sessionID string) (model.OpnameStats, error) {
	var row struct {
		Total    int `db:"total"`
		Counted  int `db:"counted"`
		Variance int `db:"variance"`
	}
	query := `
        SELECT
            count(*) AS total,
            count(*) FILTER (WHERE is_counted) AS counted,
            count(*) FILTER (WHERE is_counted AND variance <> 0) AS variance
        FROM stock_opname_items
        WHERE session_id = $1
    `
	if err := postgres.Conn(ctx, r.DB).GetContext(ctx, &row, query, sessionID); err != nil {
		if postgres.IsInvalidUUID(err) {
			return model.OpnameStats{}, nil
		}
		return model.OpnameStats{}, fmt.Errorf("count opname stats: %w", err)
	}
	return model.OpnameStats{
		Total:    row.Total,
		Counted:  row.Counted,
		Matched:  row.Counted - row.Variance,
		Variance: row.Variance,
	}, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes user input match literally inside an ILIKE pattern.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
