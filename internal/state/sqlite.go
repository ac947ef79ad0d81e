package state

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // registers the "sqlite" driver
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db     *sql.DB
	path   string
	logger *slog.Logger
}

var _ Store = (*SQLiteStore)(nil)

// NewSQLiteStore creates a new SQLite state store instance.
func NewSQLiteStore(logger *slog.Logger) *SQLiteStore {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &SQLiteStore{logger: logger}
}

// NewSQLiteStoreWithDB wraps an already open connection. The schema is not
// touched; call Migrate if needed.
func NewSQLiteStoreWithDB(db *sql.DB, logger *slog.Logger) *SQLiteStore {
	s := NewSQLiteStore(logger)
	s.db = db
	return s
}

// Open opens the database and applies pending migrations.
// Use ":memory:" for an in-memory database.
func (s *SQLiteStore) Open(path string) error {
	dsn := ":memory:"
	if path != ":memory:" {
		dsn = fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", path)
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return fmt.Errorf("failed to open sqlite database: %w", err)
	}
	// one connection: keeps :memory: databases alive and serializes writers
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to ping sqlite database: %w", err)
	}

	s.db = db
	s.path = path

	if err := s.Migrate(); err != nil {
		_ = db.Close()
		s.db = nil
		return err
	}
	version, err := s.MigrationVersion()
	if err != nil {
		_ = db.Close()
		s.db = nil
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	s.logger.Debug("opened history store", slog.String("path", path), slog.Int64("schema_version", version))
	return nil
}

// Close closes the SQLite database connection.
func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// RecordSolve stores an attempt. ID and SolvedAt are filled in when empty.
func (s *SQLiteStore) RecordSolve(ctx context.Context, solve *Solve) error {
	if s.db == nil {
		return ErrNotOpen
	}
	if solve.ID == "" {
		solve.ID = uuid.New().String()
	}
	if solve.SolvedAt.IsZero() {
		solve.SolvedAt = time.Now().UTC()
	}

	s.logger.Debug("recording solve",
		slog.String("id", solve.ID),
		slog.Int("day", solve.Day),
		slog.Int("part", solve.Part))

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO solves (id, day, part, answer, is_numeric, error, source, elapsed_ns, solved_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		solve.ID, solve.Day, solve.Part, solve.Answer, solve.Numeric, solve.Error,
		solve.Source, int64(solve.Elapsed), solve.SolvedAt.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("failed to record solve: %w", err)
	}
	return nil
}

// ListSolves returns attempts, newest first.
func (s *SQLiteStore) ListSolves(ctx context.Context, f Filter) ([]*Solve, error) {
	if s.db == nil {
		return nil, ErrNotOpen
	}

	var (
		where []string
		args  []any
	)
	if f.Day > 0 {
		where = append(where, "day = ?")
		args = append(args, f.Day)
	}
	if f.Part > 0 {
		where = append(where, "part = ?")
		args = append(args, f.Part)
	}

	query := `SELECT id, day, part, answer, is_numeric, error, source, elapsed_ns, solved_at FROM solves`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY solved_at DESC, day, part"
	if f.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, f.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list solves: %w", err)
	}
	defer rows.Close()

	var out []*Solve
	for rows.Next() {
		solve, err := scanSolve(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, solve)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list solves: %w", err)
	}
	return out, nil
}

// LastAnswer returns the newest successful attempt for a part, or nil.
func (s *SQLiteStore) LastAnswer(ctx context.Context, day, part int) (*Solve, error) {
	if s.db == nil {
		return nil, ErrNotOpen
	}

	row := s.db.QueryRowContext(ctx,
		`SELECT id, day, part, answer, is_numeric, error, source, elapsed_ns, solved_at
		 FROM solves WHERE day = ? AND part = ? AND error = ''
		 ORDER BY solved_at DESC LIMIT 1`,
		day, part,
	)
	solve, err := scanSolve(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return solve, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSolve(sc scanner) (*Solve, error) {
	var (
		solve    Solve
		elapsed  int64
		solvedAt int64
	)
	err := sc.Scan(&solve.ID, &solve.Day, &solve.Part, &solve.Answer, &solve.Numeric,
		&solve.Error, &solve.Source, &elapsed, &solvedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan solve: %w", err)
	}
	solve.Elapsed = time.Duration(elapsed)
	solve.SolvedAt = time.Unix(0, solvedAt).UTC()
	return &solve, nil
}
