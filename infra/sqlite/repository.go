package sqlite

import (
	"catalog/domain"
	"context"

	"github.com/jmoiron/sqlx"

	_ "github.com/mattn/go-sqlite3"
)

var schema = `
CREATE TABLE IF NOT EXISTS items (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    description TEXT
);`

type SqliteRepository struct {
	db *sqlx.DB
}

// NewSqliteRepository opens (creating if absent) the single-file database at
// path and ensures the items table exists. Existing schemas are not migrated.
func NewSqliteRepository(path string) *SqliteRepository {
	db := sqlx.MustConnect("sqlite3", path)

	// sqlite allows a single writer; funnel everything through one connection
	// so concurrent requests queue on the pool instead of hitting SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	db.MustExec(schema)

	return &SqliteRepository{db: db}
}

func (r *SqliteRepository) Close() error {
	return r.db.Close()
}

func (r *SqliteRepository) Ping() error {
	return r.db.Ping()
}

func (r *SqliteRepository) CreateItem(ctx context.Context, item domain.Item) error {
	query := `INSERT INTO items (id, name, description) VALUES (:id, :name, :description)`

	_, err := r.db.NamedExecContext(ctx, query, item)
	return err
}

func (r *SqliteRepository) GetItems(ctx context.Context) ([]domain.Item, error) {
	items := make([]domain.Item, 0)
	query := `SELECT * FROM items`

	err := r.db.SelectContext(ctx, &items, query)
	if err != nil {
		return nil, err
	}

	return items, nil
}

func (r *SqliteRepository) GetItem(ctx context.Context, id string) (domain.Item, error) {
	var i domain.Item
	query := `SELECT * FROM items WHERE id = ?`

	err := r.db.GetContext(ctx, &i, query, id)
	if err != nil {
		return i, err
	}

	return i, nil
}

func (r *SqliteRepository) UpdateItem(ctx context.Context, item domain.Item) error {
	query := `UPDATE items SET name = :name, description = :description WHERE id = :id`

	_, err := r.db.NamedExecContext(ctx, query, item)
	return err
}

func (r *SqliteRepository) DeleteItem(ctx context.Context, id string) error {
	query := `DELETE FROM items WHERE id = ?`

	_, err := r.db.ExecContext(ctx, query, id)
	return err
}
