// Package sqlite provides a SQLite-backed implementation of the interaction log port.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3" // Import the driver anonymously
	"github.com/sirupsen/logrus"

	"github.com/ewilliams-labs/lumiya/internal/core/domain"
	"github.com/ewilliams-labs/lumiya/internal/core/ports"
)

const schema = `
	CREATE TABLE IF NOT EXISTS mood_logs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		user_text TEXT NOT NULL,
		mood_keyword TEXT,
		song_name TEXT,
		artist_name TEXT,
		spotify_url TEXT
	);
`

// Adapter implements the interaction log for SQLite
type Adapter struct {
	db *sql.DB
}

// compile-time interface assertion
var _ ports.InteractionLog = (*Adapter)(nil)

// NewAdapter opens the store at storagePath and creates the table if absent.
func NewAdapter(storagePath string) (*Adapter, error) {
	db, err := sql.Open("sqlite3", storagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite db: %w", err)
	}

	// Verify connection
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping sqlite db: %w", err)
	}

	adapter := &Adapter{db: db}
	if err := adapter.Init(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	logrus.WithField("path", storagePath).Info("sqlite: interaction log ready")
	return adapter, nil
}

// Init creates the mood_logs table if it does not exist. Safe to call on every start.
func (a *Adapter) Init(ctx context.Context) error {
	if _, err := a.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("init failed: %w", err)
	}
	return nil
}

// Close ensures the DB connection is closed gracefully
func (a *Adapter) Close() error {
	return a.db.Close()
}

// Save inserts one interaction record. Failures are logged and reported as false.
func (a *Adapter) Save(ctx context.Context, rec domain.InteractionRecord) bool {
	if err := a.insert(ctx, rec); err != nil {
		logrus.WithError(err).Error("sqlite: failed to save interaction")
		return false
	}
	logrus.WithField("user_text", preview(rec.UserText)).Debug("sqlite: interaction saved")
	return true
}

func (a *Adapter) insert(ctx context.Context, rec domain.InteractionRecord) error {
	if rec.UserText == "" {
		return &domain.StorageError{Op: "insert", Err: domain.ErrMissingUserText}
	}

	query := `
		INSERT INTO mood_logs (user_text, mood_keyword, song_name, artist_name, spotify_url)
		VALUES (?, ?, ?, ?, ?)
	`
	if _, err := a.db.ExecContext(
		ctx,
		query,
		rec.UserText,
		nullString(rec.MoodKeyword),
		nullString(rec.SongName),
		nullString(rec.ArtistName),
		nullString(rec.SpotifyURL),
	); err != nil {
		return &domain.StorageError{Op: "insert", Err: err}
	}
	return nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func preview(s string) string {
	r := []rune(s)
	if len(r) > 10 {
		return string(r[:10]) + "..."
	}
	return s
}
