// Package sqlite provides a SQLite-backed session repository.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/reuniteapp/reunite/internal/api"
	"github.com/reuniteapp/reunite/internal/platform/storage/sqlitemigrate"
	"github.com/reuniteapp/reunite/internal/session"
	"github.com/reuniteapp/reunite/internal/session/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// Store persists sessions in SQLite so client state survives restarts.
type Store struct {
	sqlDB *sql.DB
}

// Open opens a session store and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.Apply(sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Get loads a session by ID.
func (s *Store) Get(ctx context.Context, id string) (session.Session, error) {
	if s == nil || s.sqlDB == nil {
		return session.Session{}, fmt.Errorf("storage is not configured")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return session.Session{}, fmt.Errorf("session id is required")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT id, token, user_json, theme, created_at, updated_at
		   FROM sessions
		  WHERE id = ?`,
		id,
	)

	var sess session.Session
	var userJSON string
	var theme string
	var createdAt int64
	var updatedAt int64
	err := row.Scan(&sess.ID, &sess.Token, &userJSON, &theme, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return session.Session{}, session.ErrNotFound
		}
		return session.Session{}, fmt.Errorf("get session: %w", err)
	}

	if userJSON != "" {
		var user api.User
		if err := json.Unmarshal([]byte(userJSON), &user); err != nil {
			return session.Session{}, fmt.Errorf("decode session user: %w", err)
		}
		sess.User = &user
	}
	sess.Theme = session.ParseTheme(theme)
	sess.CreatedAt = time.UnixMilli(createdAt).UTC()
	sess.UpdatedAt = time.UnixMilli(updatedAt).UTC()
	return sess, nil
}

// Put inserts or replaces a session record.
func (s *Store) Put(ctx context.Context, sess session.Session) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	sess.ID = strings.TrimSpace(sess.ID)
	if sess.ID == "" {
		return fmt.Errorf("session id is required")
	}

	userJSON := ""
	if sess.User != nil {
		encoded, err := json.Marshal(sess.User)
		if err != nil {
			return fmt.Errorf("encode session user: %w", err)
		}
		userJSON = string(encoded)
	}

	now := time.Now().UTC()
	createdAt := sess.CreatedAt
	if createdAt.IsZero() {
		createdAt = now
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO sessions (id, token, user_json, theme, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   token = excluded.token,
		   user_json = excluded.user_json,
		   theme = excluded.theme,
		   updated_at = excluded.updated_at`,
		sess.ID,
		sess.Token,
		userJSON,
		string(session.ParseTheme(string(sess.Theme))),
		createdAt.UnixMilli(),
		now.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("put session: %w", err)
	}
	return nil
}

// Delete removes a session by ID. Missing rows are not an error.
func (s *Store) Delete(ctx context.Context, id string) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("session id is required")
	}
	if _, err := s.sqlDB.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

var _ session.Repository = (*Store)(nil)
