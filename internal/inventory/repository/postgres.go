package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fekuna/omnipos-opname-service/internal/database/postgres"
	"github.com/fekuna/omnipos-opname-service/internal/inventory/dto"
	"github.com/fekuna/omnipos-opname-service/internal/model"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) ListAll(ctx context.Context) ([]model.StockItem, error) {
	items := []model.StockItem{}
	query := `
        SELECT material_no, sloc, material_desc, quantity, updated_at
        FROM stock_items
        ORDER BY material_no, sloc
    `
	if err := postgres.Conn(ctx, r.DB).SelectContext(ctx, &items, query); err != nil {
		return nil, fmt.Errorf("list stock items: %w", err)
	}
	return items, nil
}

func (r *PGRepository) GetByKey(ctx context.Context, materialNo, sloc string) (*model.StockItem, error) {
	var item model.StockItem
	query := `
        SELECT material_no, sloc, material_desc, quantity, updated_at
        FROM stock_items
        WHERE material_no = $1 AND sloc = $2
    `
	err := postgres.Conn(ctx, r.DB).GetContext(ctx, &item, query, materialNo, sloc)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock item: %w", err)
	}
	return &item, nil
}

// UpdateQuantity overwrites the quantity of one master item. It reports false when
// no item exists for the key.
func (r *PGRepository) UpdateQuantity(ctx context.Context, materialNo, sloc string, quantity decimal.Decimal, at time.Time) (bool, error) {
	query := `
        UPDATE stock_items
        SET quantity = $3, updated_at = $4
        WHERE material_no = $1 AND sloc = $2
    `
	res, err := postgres.Conn(ctx, r.DB).ExecContext(ctx, query, materialNo, sloc, quantity, at)
	if err != nil {
		return false, fmt.Errorf("update stock quantity: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

func (r *PGRepository) LogHistory(ctx context.Context, h *model.StockHistory) error {
	query := `
        INSERT INTO stock_history (id, material_no, sloc, user_name, action, details, created_at)
        VALUES (:id, :material_no, :sloc, :user_name, :action, :details, :created_at)
    `
	if _, err := postgres.Conn(ctx, r.DB).NamedExecContext(ctx, query, h); err != nil {
		return fmt.Errorf("log stock history: %w", err)
	}
	return nil
}

func (r *PGRepository) ListHistory(ctx context.Context, f *dto.HistoryFilters) ([]model.StockHistory, int, error) {
	items := []model.StockHistory{}
	var count int

	conditions := []string{}
	args := map[string]interface{}{}

	if f.MaterialNo != "" {
		conditions = append(conditions, "material_no = :material_no")
		args["material_no"] = f.MaterialNo
	}
	if f.Sloc != "" {
		conditions = append(conditions, "sloc = :sloc")
		args["sloc"] = f.Sloc
	}
	if f.Action != "" {
		conditions = append(conditions, "action = :action")
		args["action"] = f.Action
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	conn := postgres.Conn(ctx, r.DB)

	countQuery, countArgs, err := sqlx.Named("SELECT count(*) FROM stock_history"+whereClause, args)
	if err != nil {
		return nil, 0, err
	}
	if err := conn.GetContext(ctx, &count, conn.Rebind(countQuery), countArgs...); err != nil {
		return nil, 0, fmt.Errorf("count stock history: %w", err)
	}

	query := "SELECT id, material_no, sloc, user_name, action, details, created_at FROM stock_history" +
		whereClause + " ORDER BY created_at DESC, id"
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
		return nil, 0, fmt.Errorf("list stock history: %w", err)
	}
	return items, count, nil
}
