package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"itemshare/internal/config"
	"itemshare/internal/storage"
)

type Storage struct {
	DB *sql.DB
}

func InitDB(dbCfg *config.Database) (*Storage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	s := &Storage{DB: db}

	if err = s.initSchema(); err != nil {
		return nil, fmt.Errorf("failed to init schema: %w", err)
	}

	return s, nil
}

func (s *Storage) initSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS users (
			id         BIGSERIAL PRIMARY KEY,
			name       TEXT NOT NULL,
			email      TEXT NOT NULL UNIQUE,
			login      TEXT,
			birthday   TIMESTAMPTZ,
			registered TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		CREATE TABLE IF NOT EXISTS requests (
			id           BIGSERIAL PRIMARY KEY,
			description  TEXT NOT NULL,
			requester_id BIGINT NOT NULL REFERENCES users (id) ON DELETE CASCADE,
			created      TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		CREATE TABLE IF NOT EXISTS items (
			id          BIGSERIAL PRIMARY KEY,
			owner_id    BIGINT NOT NULL REFERENCES users (id) ON DELETE CASCADE,
			name        TEXT NOT NULL,
			description TEXT NOT NULL,
			available   BOOLEAN NOT NULL,
			request_id  BIGINT REFERENCES requests (id)
		);

		CREATE TABLE IF NOT EXISTS bookings (
			id         BIGSERIAL PRIMARY KEY,
			item_id    BIGINT NOT NULL REFERENCES items (id) ON DELETE CASCADE,
			booker_id  BIGINT NOT NULL REFERENCES users (id) ON DELETE CASCADE,
			start_date TIMESTAMPTZ NOT NULL,
			end_date   TIMESTAMPTZ NOT NULL,
			status     TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS comments (
			id        BIGSERIAL PRIMARY KEY,
			item_id   BIGINT NOT NULL REFERENCES items (id) ON DELETE CASCADE,
			author_id BIGINT NOT NULL REFERENCES users (id) ON DELETE CASCADE,
			text      TEXT NOT NULL,
			created   TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		CREATE INDEX IF NOT EXISTS idx_bookings_item ON bookings (item_id, status);
		CREATE INDEX IF NOT EXISTS idx_bookings_booker ON bookings (booker_id);
		CREATE INDEX IF NOT EXISTS idx_items_owner ON items (owner_id);`

	if _, err := s.DB.Exec(schema); err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}

	return nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

func (s *Storage) ensureUser(id int64) error {
	var exists bool
	err := s.DB.QueryRow(`SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check user: %w", err)
	}

	if !exists {
		return storage.ErrUserNotFound
	}

	return nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
