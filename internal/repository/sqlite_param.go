package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/hollomarton/naplo/internal/db"
	"github.com/hollomarton/naplo/internal/domain"
)

// SQLiteParamRepo implements ParamRepo on a SQLite database.
type SQLiteParamRepo struct {
	db db.DBTX
}

// NewSQLiteParamRepo creates a new SQLiteParamRepo.
func NewSQLiteParamRepo(db db.DBTX) *SQLiteParamRepo {
	return &SQLiteParamRepo{db: db}
}

func (r *SQLiteParamRepo) GetOrCreate(ctx context.Context, typ domain.LabelType, name string) (bool, error) {
	query := `INSERT INTO params (id, type, name) VALUES (?, ?, ?)
		ON CONFLICT(type, name) DO NOTHING`
	res, err := r.db.ExecContext(ctx, query, uuid.New().String(), string(typ), name)
	if err != nil {
		return false, fmt.Errorf("registering param %s/%s: %w", typ, name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("registering param %s/%s: %w", typ, name, err)
	}
	return n > 0, nil
}

func (r *SQLiteParamRepo) ListNames(ctx context.Context, typ domain.LabelType) ([]string, error) {
	query := `SELECT name FROM params WHERE type = ? ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query, string(typ))
	if err != nil {
		return nil, fmt.Errorf("listing params of type %s: %w", typ, err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scanning param name: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating params: %w", err)
	}
	return names, nil
}
