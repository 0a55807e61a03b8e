// Package storage provides SQLite-based persistence for landings, pilot
// names and settings. Uses the pure-Go modernc.org/sqlite driver to avoid
// CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-lander/internal/lander"
)

// Settings keys.
const (
	SettingSavePlayer = "save_player"
	SettingSaveScores = "save_scores"
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// ScoreEntry represents a single recorded landing.
type ScoreEntry struct {
	ID        int64
	Player    string
	Score     int
	Breakdown *lander.Breakdown // nil when recorded without details
	CreatedAt time.Time
}

// Settings are the persisted player preferences.
type Settings struct {
	SavePlayer bool // Remember the pilot name between sessions
	SaveScores bool // Write landings to the leaderboard
}

// DefaultSettings returns settings with everything enabled.
func DefaultSettings() Settings {
	return Settings{SavePlayer: true, SaveScores: true}
}

// Stats contains aggregated statistics over all landings.
type Stats struct {
	Landings   int
	Pilots     int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	LastPlayed time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			player TEXT NOT NULL,
			score INTEGER NOT NULL,
			has_breakdown INTEGER NOT NULL DEFAULT 0,
			base INTEGER NOT NULL DEFAULT 0,
			speed_bonus INTEGER NOT NULL DEFAULT 0,
			position_bonus INTEGER NOT NULL DEFAULT 0,
			fuel_bonus INTEGER NOT NULL DEFAULT 0,
			time_bonus INTEGER NOT NULL DEFAULT 0,
			raw_speed REAL NOT NULL DEFAULT 0,
			raw_offset REAL NOT NULL DEFAULT 0,
			mission_ms INTEGER NOT NULL DEFAULT 0,
			created_at TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(score DESC, id ASC);

		CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS players (
			profile TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			updated_at TEXT NOT NULL
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveScore records a landing. A zero CreatedAt is stamped with the
// current time. Returns the ID of the inserted record.
func (s *Store) SaveScore(e ScoreEntry) (int64, error) {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}

	var b lander.Breakdown
	hasBreakdown := 0
	if e.Breakdown != nil {
		b = *e.Breakdown
		hasBreakdown = 1
	}

	result, err := s.db.Exec(
		`INSERT INTO scores
		 (player, score, has_breakdown, base, speed_bonus, position_bonus, fuel_bonus, time_bonus,
		  raw_speed, raw_offset, mission_ms, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.Player, e.Score, hasBreakdown,
		b.Base, b.SpeedBonus, b.PositionBonus, b.FuelBonus, b.TimeBonus,
		b.RawSpeed, b.RawOffset, b.MissionTimeMs,
		formatTime(e.CreatedAt),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopScores retrieves the top N landings.
// Results are ordered by score descending; equal scores keep insertion order.
func (s *Store) TopScores(limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = lander.DefaultMaxEntries
	}

	rows, err := s.db.Query(
		`SELECT id, player, score, has_breakdown, base, speed_bonus, position_bonus,
		        fuel_bonus, time_bonus, raw_speed, raw_offset, mission_ms, created_at
		 FROM scores
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var (
			e            ScoreEntry
			b            lander.Breakdown
			hasBreakdown int
			createdAt    any
		)
		if err := rows.Scan(
			&e.ID, &e.Player, &e.Score, &hasBreakdown,
			&b.Base, &b.SpeedBonus, &b.PositionBonus, &b.FuelBonus, &b.TimeBonus,
			&b.RawSpeed, &b.RawOffset, &b.MissionTimeMs,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		if hasBreakdown != 0 {
			b.Total = e.Score
			e.Breakdown = &b
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the best score. Returns 0 if no scores exist.
func (s *Store) HighScore() (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(score) FROM scores").Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearScores deletes all landings.
func (s *Store) ClearScores() error {
	_, err := s.db.Exec("DELETE FROM scores")
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// Stats retrieves aggregated statistics over all landings.
func (s *Store) Stats() (*Stats, error) {
	stats := &Stats{}

	var lastPlayed sql.NullString
	err := s.db.QueryRow(
		`SELECT COUNT(*), COUNT(DISTINCT player), COALESCE(MAX(score), 0),
		        COALESCE(AVG(score), 0), COALESCE(SUM(score), 0), MAX(created_at)
		 FROM scores`,
	).Scan(&stats.Landings, &stats.Pilots, &stats.HighScore, &stats.AvgScore, &stats.TotalScore, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	if lastPlayed.Valid {
		stats.LastPlayed = parseTime(lastPlayed.String)
	}

	return stats, nil
}

// Settings returns the stored preferences. Keys that were never written
// keep their defaults.
func (s *Store) Settings() (Settings, error) {
	settings := DefaultSettings()

	rows, err := s.db.Query("SELECT key, value FROM settings")
	if err != nil {
		return settings, fmt.Errorf("storage: cannot query settings: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return settings, fmt.Errorf("storage: cannot scan setting: %w", err)
		}
		v, err := strconv.ParseBool(value)
		if err != nil {
			continue
		}
		switch key {
		case SettingSavePlayer:
			settings.SavePlayer = v
		case SettingSaveScores:
			settings.SaveScores = v
		}
	}

	if err := rows.Err(); err != nil {
		return settings, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return settings, nil
}

// SaveSettings writes all preferences.
func (s *Store) SaveSettings(settings Settings) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	for key, value := range map[string]bool{
		SettingSavePlayer: settings.SavePlayer,
		SettingSaveScores: settings.SaveScores,
	} {
		if _, err := tx.Exec(
			`INSERT INTO settings (key, value) VALUES (?, ?)
			 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
			key, strconv.FormatBool(value),
		); err != nil {
			return fmt.Errorf("storage: cannot save setting %s: %w", key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit settings: %w", err)
	}
	return nil
}

// PlayerName returns the name stored for profile. The second result is
// false if none was stored.
func (s *Store) PlayerName(profile string) (string, bool, error) {
	var name string
	err := s.db.QueryRow("SELECT name FROM players WHERE profile = ?", profile).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("storage: cannot query player: %w", err)
	}
	return name, true, nil
}

// SavePlayerName stores the name for profile.
func (s *Store) SavePlayerName(profile, name string) error {
	_, err := s.db.Exec(
		`INSERT INTO players (profile, name, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(profile) DO UPDATE SET name = excluded.name, updated_at = excluded.updated_at`,
		profile, name, formatTime(time.Now()),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save player: %w", err)
	}
	return nil
}

// timeLayout is RFC 3339 with fixed-width nanoseconds, so stored times
// sort as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

// parseTime reads a created_at column. The driver may hand back either a
// time.Time or the stored text.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse(time.RFC3339Nano, v); err == nil {
			return parsed
		}
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
