// Package storage persists finished flights in SQLite.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection.
type Store struct {
	db  *sqlx.DB
	now func() time.Time
}

// ScoreEntry is a single high score record.
type ScoreEntry struct {
	ID      int64  `db:"id"`
	GameID  string `db:"game_id"`
	Score   int    `db:"score"`
	Created int64  `db:"created_at"` // Unix seconds
}

// CreatedAt returns when the score was recorded.
func (e ScoreEntry) CreatedAt() time.Time {
	return time.Unix(e.Created, 0)
}

// Run is one finished flight.
type Run struct {
	ID       string `db:"id"`
	GameID   string `db:"game_id"`
	Points   int    `db:"points"`
	Distance int    `db:"distance"`
	Ticks    int    `db:"ticks"`
	Seed     int64  `db:"seed"`
	Created  int64  `db:"created_at"`
}

// CreatedAt returns when the run ended.
func (r Run) CreatedAt() time.Time {
	return time.Unix(r.Created, 0)
}

// Stats aggregates all runs of a mode.
type Stats struct {
	Runs          int     `db:"runs"`
	BestPoints    int     `db:"best_points"`
	BestDistance  int     `db:"best_distance"`
	TotalDistance int     `db:"total_distance"`
	AvgPoints     float64 `db:"avg_points"`
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

	db, err := sqlx.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db, now: time.Now}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return store, nil
}

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			created_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(game_id, score DESC);

		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			game_id TEXT NOT NULL,
			points INTEGER NOT NULL,
			distance INTEGER NOT NULL,
			ticks INTEGER NOT NULL,
			seed INTEGER NOT NULL,
			created_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_game ON runs(game_id, created_at DESC);
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

// SaveScore records a bare score for the given mode.
// Returns the ID of the inserted record.
func (s *Store) SaveScore(gameID string, score int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO scores (game_id, score, created_at) VALUES (?, ?, ?)",
		gameID, score, s.now().Unix(),
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

// SaveRun records a finished flight and its score in one transaction.
// The run gets a fresh UUID, which is returned.
func (s *Store) SaveRun(run Run) (string, error) {
	run.ID = uuid.NewString()
	run.Created = s.now().Unix()

	tx, err := s.db.Beginx()
	if err != nil {
		return "", fmt.Errorf("storage: cannot begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.NamedExec(
		`INSERT INTO runs (id, game_id, points, distance, ticks, seed, created_at)
		 VALUES (:id, :game_id, :points, :distance, :ticks, :seed, :created_at)`,
		run,
	); err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}
	if _, err := tx.Exec(
		"INSERT INTO scores (game_id, score, created_at) VALUES (?, ?, ?)",
		run.GameID, run.Points, run.Created,
	); err != nil {
		return "", fmt.Errorf("storage: cannot save score: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("storage: cannot commit run: %w", err)
	}
	return run.ID, nil
}

// TopScores retrieves the top N scores for the given mode.
// Results are ordered by score descending.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	var entries []ScoreEntry
	err := s.db.Select(&entries,
		`SELECT id, game_id, score, created_at
		 FROM scores
		 WHERE game_id = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	return entries, nil
}

// HighScore returns the highest score for the given mode, or 0.
func (s *Store) HighScore(gameID string) (int, error) {
	var score int
	err := s.db.Get(&score, "SELECT COALESCE(MAX(score), 0) FROM scores WHERE game_id = ?", gameID)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	return score, nil
}

// TopRuns returns the best runs of a mode by points, ties broken by
// distance.
func (s *Store) TopRuns(gameID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	var runs []Run
	err := s.db.Select(&runs,
		`SELECT id, game_id, points, distance, ticks, seed, created_at
		 FROM runs
		 WHERE game_id = ?
		 ORDER BY points DESC, distance DESC, rowid ASC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	return runs, nil
}

// RecentRuns returns the latest runs of a mode, newest first.
func (s *Store) RecentRuns(gameID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	var runs []Run
	err := s.db.Select(&runs,
		`SELECT id, game_id, points, distance, ticks, seed, created_at
		 FROM runs
		 WHERE game_id = ?
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	return runs, nil
}

// Stats aggregates every run of a mode.
func (s *Store) Stats(gameID string) (Stats, error) {
	var st Stats
	err := s.db.Get(&st,
		`SELECT COUNT(*) AS runs,
		        COALESCE(MAX(points), 0) AS best_points,
		        COALESCE(MAX(distance), 0) AS best_distance,
		        COALESCE(SUM(distance), 0) AS total_distance,
		        COALESCE(AVG(points), 0.0) AS avg_points
		 FROM runs
		 WHERE game_id = ?`,
		gameID,
	)
	if err != nil {
		return Stats{}, fmt.Errorf("storage: cannot query stats: %w", err)
	}
	return st, nil
}

// ClearScores deletes all scores and runs of a mode.
func (s *Store) ClearScores(gameID string) error {
	tx, err := s.db.Beginx()
	if err != nil {
		return fmt.Errorf("storage: cannot begin: %w", err)
	}
	defer tx.Rollback()

	for _, q := range []string{
		"DELETE FROM scores WHERE game_id = ?",
		"DELETE FROM runs WHERE game_id = ?",
	} {
		if _, err := tx.Exec(q, gameID); err != nil {
			return fmt.Errorf("storage: cannot clear scores: %w", err)
		}
	}
	return tx.Commit()
}
