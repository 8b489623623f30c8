package server

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmaslov/passport/internal/server/migrations"
	"github.com/dmaslov/passport/internal/server/users"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// PostgresStore owns the database handle and hands out repositories backed
// by it. Migrations run once at construction.
type PostgresStore struct {
	db    *sql.DB
	users users.Repository
}

func NewPostgresStore(dsn string) (*PostgresStore, error) {

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	s := &PostgresStore{
		db:    db,
		users: users.NewPostgresRepository(db),
	}

	if err := s.RunMigrations(context.Background()); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return s, nil
}

func (s *PostgresStore) Conn() *sql.DB {
	return s.db
}

func (s *PostgresStore) Users() users.Repository {
	return s.users
}

func (s *PostgresStore) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.UpContext(ctx, s.db, "."); err != nil {
		return err
	}

	return nil
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}
