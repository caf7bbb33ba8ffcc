// Package persistence stores tracker settings and the roll journal.
// SQLite is the default backend; Redis is available for shared deployments.
package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// settingsKey names the single settings row. One row holds every chat session.
const settingsKey = "reproductive_system"

// Roll is one journaled random roll and what it decided.
type Roll struct {
	ID      string    `db:"id" json:"id"`
	ChatID  string    `db:"chat_id" json:"chat_id"`
	Kind    string    `db:"kind" json:"kind"`
	At      time.Time `db:"-" json:"at"`
	Value   int       `db:"roll" json:"roll"`
	Chance  int       `db:"chance" json:"chance"`
	Success bool      `db:"success" json:"success"`
	Summary string    `db:"summary" json:"summary"`
}

// rollRow is Roll as stored; times are kept as RFC 3339 text.
type rollRow struct {
	Roll
	AtText string `db:"at"`
}

// DB wraps a SQLite connection for settings and journal storage.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path, in WAL mode
// with a busy timeout so the CLI and a running server can share it.
func Open(path string) (*DB, error) {
	dsn := path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	conn, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("open db %s: %w", path, err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	slog.Debug("database opened", "path", path)
	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS settings (
		key TEXT PRIMARY KEY,
		data TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS rolls (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		id TEXT NOT NULL UNIQUE,
		chat_id TEXT NOT NULL,
		kind TEXT NOT NULL,
		at TEXT NOT NULL,
		roll INTEGER NOT NULL,
		chance INTEGER NOT NULL,
		success INTEGER NOT NULL,
		summary TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS meta (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_rolls_chat ON rolls(chat_id);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// LoadSettings returns the stored settings document, or nil if none was saved yet.
func (db *DB) LoadSettings(ctx context.Context) ([]byte, error) {
	var data string
	err := db.conn.GetContext(ctx, &data, "SELECT data FROM settings WHERE key = ?", settingsKey)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	return []byte(data), nil
}

// SaveSettings replaces the stored settings document.
func (db *DB) SaveSettings(ctx context.Context, data []byte) error {
	_, err := db.conn.ExecContext(ctx,
		"INSERT OR REPLACE INTO settings (key, data, updated_at) VALUES (?, ?, ?)",
		settingsKey, string(data), time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	slog.Debug("settings saved", "bytes", len(data))
	return nil
}

// RecordRoll appends rolls to the journal. Rolls without an ID get one.
func (db *DB) RecordRoll(ctx context.Context, rolls ...Roll) error {
	if len(rolls) == 0 {
		return nil
	}

	tx, err := db.conn.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PreparexContext(ctx, `INSERT INTO rolls
		(id, chat_id, kind, at, roll, chance, success, summary)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, r := range rolls {
		if r.ID == "" {
			r.ID = uuid.NewString()
		}
		success := 0
		if r.Success {
			success = 1
		}
		_, err := stmt.ExecContext(ctx,
			r.ID, r.ChatID, r.Kind, r.At.UTC().Format(time.RFC3339Nano),
			r.Value, r.Chance, success, r.Summary,
		)
		if err != nil {
			return fmt.Errorf("insert roll %s: %w", r.ID, err)
		}
	}

	return tx.Commit()
}

// RecentRolls returns the most recent rolls, newest first. An empty chatID
// matches every chat.
func (db *DB) RecentRolls(ctx context.Context, chatID string, limit int) ([]Roll, error) {
	var rows []rollRow
	err := db.conn.SelectContext(ctx, &rows,
		`SELECT id, chat_id, kind, at, roll, chance, success, summary FROM rolls
		WHERE ? = '' OR chat_id = ? ORDER BY seq DESC LIMIT ?`,
		chatID, chatID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("recent rolls: %w", err)
	}

	rolls := make([]Roll, len(rows))
	for i, row := range rows {
		r := row.Roll
		r.At, err = time.Parse(time.RFC3339Nano, row.AtText)
		if err != nil {
			return nil, fmt.Errorf("roll %s: parse time: %w", r.ID, err)
		}
		rolls[i] = r
	}
	return rolls, nil
}

// SaveMeta stores a key-value pair.
func (db *DB) SaveMeta(key, value string) error {
	_, err := db.conn.Exec(
		"INSERT OR REPLACE INTO meta (key, value) VALUES (?, ?)",
		key, value,
	)
	return err
}

// GetMeta retrieves a metadata value.
func (db *DB) GetMeta(key string) (string, error) {
	var value string
	err := db.conn.Get(&value, "SELECT value FROM meta WHERE key = ?", key)
	return value, err
}

// CountRolls reports how many rolls are journaled.
func (db *DB) CountRolls(ctx context.Context) (int, error) {
	var n int
	err := db.conn.GetContext(ctx, &n, "SELECT COUNT(*) FROM rolls")
	return n, err
}

// SaveLastCatchup records the wall-clock time of the last day-clock catch-up.
func (db *DB) SaveLastCatchup(t time.Time) error {
	return db.SaveMeta("last_catchup", strconv.FormatInt(t.Unix(), 10))
}

// LastCatchup returns the time stored by SaveLastCatchup, or the zero time.
func (db *DB) LastCatchup() (time.Time, error) {
	v, err := db.GetMeta("last_catchup")
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, err
	}
	sec, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse last_catchup: %w", err)
	}
	return time.Unix(sec, 0).UTC(), nil
}
