// Package store is the per-agent row store: one SQLite file, one table,
// four statements. The storage layer assigns ids and never reuses them
// within a running instance (SQLite AUTOINCREMENT).
package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"

	contractx "github.com/tanpawarit/Relay-A2A-Natural-Language-Agents/agent/contract"
)

type Config struct {
	Path string `envconfig:"PATH" split_words:"true"`
}

// Store implements contract.Store on top of bun/SQLite. The table and the
// optional column are taken from the domain descriptor.
type Store struct {
	db     *bun.DB
	domain contractx.Domain
}

var _ contractx.Store = (*Store)(nil)

// record mirrors the normalized SELECT column list; the domain's optional
// column is always aliased to "secondary".
type record struct {
	ID        int64          `bun:"id"`
	Name      string         `bun:"name"`
	Secondary sql.NullString `bun:"secondary"`
	CreatedAt string         `bun:"created_at"`
}

// Open opens (creating if needed) the agent's database file. An empty path
// defaults to "<table>.db" in the working directory.
func Open(ctx context.Context, cfg Config, domain contractx.Domain) (*Store, error) {
	if err := domain.Validate(); err != nil {
		return nil, err
	}

	path := strings.TrimSpace(cfg.Path)
	if path == "" {
		path = domain.Table + ".db"
	}

	sqldb, err := sql.Open(sqliteshim.ShimName, path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	if err := sqldb.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping %s: %w", path, err)
	}

	s := &Store{
		db:     bun.NewDB(sqldb, sqlitedialect.New()),
		domain: domain,
	}
	if err := s.initSchema(ctx); err != nil {
		return nil, fmt.Errorf("init schema for %s: %w", domain.Table, err)
	}
	return s, nil
}

func (s *Store) initSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS ? (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			? TEXT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`, bun.Ident(s.domain.Table), bun.Ident(s.domain.Secondary))
	return err
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Create(ctx context.Context, name string, secondary *string) (int64, error) {
	values := map[string]any{"name": name}
	if secondary != nil {
		values[s.domain.Secondary] = *secondary
	}

	res, err := s.db.NewInsert().
		Model(&values).
		TableExpr("?", bun.Ident(s.domain.Table)).
		Exec(ctx)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (s *Store) List(ctx context.Context) ([]contractx.Row, error) {
	var records []record
	err := s.db.NewSelect().
		ColumnExpr("id, name, ? AS secondary, created_at", bun.Ident(s.domain.Secondary)).
		TableExpr("?", bun.Ident(s.domain.Table)).
		OrderExpr("id ASC").
		Scan(ctx, &records)
	if err != nil {
		return nil, err
	}

	rows := make([]contractx.Row, 0, len(records))
	for _, rec := range records {
		row := contractx.Row{
			ID:        rec.ID,
			Name:      rec.Name,
			CreatedAt: rec.CreatedAt,
		}
		if rec.Secondary.Valid {
			v := rec.Secondary.String
			row.Secondary = &v
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Update sets only the provided fields. With neither field provided it is a
// no-op returning 0 and never reaches the database.
func (s *Store) Update(ctx context.Context, id int64, name, secondary *string) (int64, error) {
	if name == nil && secondary == nil {
		return 0, nil
	}

	q := s.db.NewUpdate().
		TableExpr("?", bun.Ident(s.domain.Table)).
		Where("id = ?", id)
	if name != nil {
		q = q.Set("name = ?", *name)
	}
	if secondary != nil {
		q = q.Set("? = ?", bun.Ident(s.domain.Secondary), *secondary)
	}

	res, err := q.Exec(ctx)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (s *Store) Delete(ctx context.Context, id int64) (int64, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM ? WHERE id = ?", bun.Ident(s.domain.Table), id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
