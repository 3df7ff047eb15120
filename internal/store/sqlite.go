package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jonathan/london-crypto-directory/internal/types"
	_ "modernc.org/sqlite" // pure go sqlite driver
)

// DefaultSQLitePath is used when no path is configured.
const DefaultSQLitePath = "directory.db"

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS companies (
	id                TEXT PRIMARY KEY,
	name              TEXT NOT NULL,
	category          TEXT,
	original_category TEXT,
	twitter_handle    TEXT,
	twitter_url       TEXT
);
CREATE TABLE IF NOT EXISTS submissions (
	id         TEXT PRIMARY KEY,
	kind       TEXT NOT NULL,
	subject    TEXT NOT NULL,
	payload    BLOB NOT NULL,
	created_at TEXT NOT NULL
);`

// SQLite is a file-backed store for local development.
type SQLite struct {
	db   *sql.DB
	path string
}

// OpenSQLite opens (and creates if needed) the sqlite database at path.
func OpenSQLite(ctx context.Context, path string) (*SQLite, error) {
	if path == "" {
		path = DefaultSQLitePath
	}
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil && !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("create dirs: %w", err)
		}
	}

	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// sqlite typically wants 1 writer
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &SQLite{db: db, path: path}, nil
}

// ListCompanies returns every company ordered by name ascending.
func (s *SQLite) ListCompanies(ctx context.Context) ([]types.Company, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, category, original_category, twitter_handle, twitter_url
		 FROM companies ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	defer func() { _ = rows.Close() }()

	companies := []types.Company{}
	for rows.Next() {
		var (
			c                                     types.Company
			category, original, handle, twitterURL sql.NullString
		)
		if err := rows.Scan(&c.ID, &c.Name, &category, &original, &handle, &twitterURL); err != nil {
			return nil, fmt.Errorf("failed to scan company: %w", err)
		}
		c.Category = nullString(category)
		c.OriginalCategory = nullString(original)
		c.TwitterHandle = nullString(handle)
		c.TwitterURL = nullString(twitterURL)
		companies = append(companies, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	return companies, nil
}

// SaveSubmission records a form submission.
func (s *SQLite) SaveSubmission(ctx context.Context, sub *types.Submission) error {
	payload, err := json.Marshal(sub.Payload)
	if err != nil {
		return fmt.Errorf("failed to marshal submission: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO submissions (id, kind, subject, payload, created_at) VALUES (?, ?, ?, ?, ?)`,
		sub.ID.String(), string(sub.Kind), sub.Subject, payload, sub.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("failed to save submission: %w", err)
	}
	return nil
}

// Close closes the database.
func (s *SQLite) Close() error {
	return s.db.Close()
}

func nullString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}
