package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"playparse/play"
)

// Run is one stored batch of parsed plays.
type Run struct {
	ID        string    `json:"id"`
	StartedAt time.Time `json:"started_at"`
	Total     int       `json:"total"`
	Success   int       `json:"success"`
	Errors    int       `json:"errors"`
}

// Record is a stored segment with the play it came from.
type Record struct {
	PlayNum     int           `json:"play_num"`
	SegmentNum  int           `json:"segment_num"`
	Segment     *play.Segment `json:"segment"`
	Description string        `json:"description"`
	IsError     bool          `json:"is_error"`
}

// PlayRecord is a stored play with the game clock read from it.
type PlayRecord struct {
	PlayNum     int         `json:"play_num"`
	Description string      `json:"description"`
	IsError     bool        `json:"is_error"`
	Clock       *play.Clock `json:"clock,omitempty"`
}

// Store keeps parse runs in SQLite.
type Store struct {
	db *sql.DB
}

func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_synchronous=NORMAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := &Store{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return s, nil
}

func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		started_at DATETIME NOT NULL,
		total INTEGER NOT NULL,
		success INTEGER NOT NULL,
		errors INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS plays (
		run_id TEXT NOT NULL REFERENCES runs(id),
		play_num INTEGER NOT NULL,
		description TEXT NOT NULL,
		is_error INTEGER NOT NULL,
		clock_minutes INTEGER,
		clock_seconds INTEGER,
		PRIMARY KEY (run_id, play_num)
	);

	CREATE TABLE IF NOT EXISTS segments (
		run_id TEXT NOT NULL REFERENCES runs(id),
		play_num INTEGER NOT NULL,
		segment_num INTEGER NOT NULL,
		type TEXT NOT NULL,
		attributes TEXT NOT NULL,
		description TEXT NOT NULL,
		is_error INTEGER NOT NULL,
		PRIMARY KEY (run_id, play_num, segment_num)
	);

	CREATE INDEX IF NOT EXISTS idx_segments_type ON segments(run_id, type);
	`
	_, err := s.db.Exec(schema)
	return err
}

// SaveRun stores the descriptions of a batch. plays[i] is the original text
// of descs[i]. Play and segment numbers start at 1.
func (s *Store) SaveRun(ctx context.Context, plays []string, descs []*play.Description) (string, error) {
	if len(plays) != len(descs) {
		return "", fmt.Errorf("got %d plays but %d descriptions", len(plays), len(descs))
	}

	run := Run{
		ID:        uuid.New().String(),
		StartedAt: time.Now().UTC(),
	}
	for _, desc := range descs {
		run.Total++
		if desc.IsError {
			run.Errors++
		} else {
			run.Success++
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (id, started_at, total, success, errors) VALUES (?, ?, ?, ?, ?)`,
		run.ID, run.StartedAt, run.Total, run.Success, run.Errors)
	if err != nil {
		return "", fmt.Errorf("failed to insert run: %w", err)
	}

	playStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO plays (run_id, play_num, description, is_error, clock_minutes, clock_seconds)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", err
	}
	defer playStmt.Close()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO segments (run_id, play_num, segment_num, type, attributes, description, is_error)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", err
	}
	defer stmt.Close()

	for i, desc := range descs {
		var minutes, seconds sql.NullInt64
		if desc.Clock != nil {
			minutes = sql.NullInt64{Int64: int64(desc.Clock.Minutes), Valid: true}
			seconds = sql.NullInt64{Int64: int64(desc.Clock.Seconds), Valid: true}
		}
		_, err := playStmt.ExecContext(ctx, run.ID, i+1, plays[i], desc.IsError, minutes, seconds)
		if err != nil {
			return "", fmt.Errorf("failed to insert play %d: %w", i+1, err)
		}

		for j, seg := range desc.Segments {
			attrs, err := json.Marshal(seg)
			if err != nil {
				return "", err
			}
			_, err = stmt.ExecContext(ctx, run.ID, i+1, j+1, string(seg.Type), string(attrs), plays[i], desc.IsError)
			if err != nil {
				return "", fmt.Errorf("failed to insert segment %d of play %d: %w", j+1, i+1, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}
	return run.ID, nil
}

func (s *Store) Run(ctx context.Context, id string) (*Run, error) {
	run := &Run{}
	err := s.db.QueryRowContext(ctx,
		`SELECT id, started_at, total, success, errors FROM runs WHERE id = ?`, id).
		Scan(&run.ID, &run.StartedAt, &run.Total, &run.Success, &run.Errors)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("run not found: %s", id)
	}
	if err != nil {
		return nil, err
	}
	return run, nil
}

// Runs lists stored runs, newest first.
func (s *Store) Runs(ctx context.Context) ([]*Run, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, started_at, total, success, errors FROM runs ORDER BY started_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		run := &Run{}
		if err := rows.Scan(&run.ID, &run.StartedAt, &run.Total, &run.Success, &run.Errors); err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// Plays returns the stored plays of a run in order.
func (s *Store) Plays(ctx context.Context, runID string) ([]*PlayRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT play_num, description, is_error, clock_minutes, clock_seconds
		FROM plays WHERE run_id = ?
		ORDER BY play_num`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*PlayRecord
	for rows.Next() {
		var minutes, seconds sql.NullInt64
		rec := &PlayRecord{}
		if err := rows.Scan(&rec.PlayNum, &rec.Description, &rec.IsError, &minutes, &seconds); err != nil {
			return nil, err
		}
		if minutes.Valid && seconds.Valid {
			rec.Clock = &play.Clock{Minutes: int(minutes.Int64), Seconds: int(seconds.Int64)}
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Segments returns the stored segments of a run in play order.
func (s *Store) Segments(ctx context.Context, runID string) ([]*Record, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT play_num, segment_num, attributes, description, is_error
		FROM segments WHERE run_id = ?
		ORDER BY play_num, segment_num`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*Record
	for rows.Next() {
		var attrs string
		rec := &Record{Segment: &play.Segment{}}
		if err := rows.Scan(&rec.PlayNum, &rec.SegmentNum, &attrs, &rec.Description, &rec.IsError); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(attrs), rec.Segment); err != nil {
			return nil, fmt.Errorf("decoding segment %d of play %d: %w", rec.SegmentNum, rec.PlayNum, err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (s *Store) Close() error {
	return s.db.Close()
}
