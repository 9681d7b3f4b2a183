package out

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"goalcheer/internal/modules/goals/domain"
	apperrors "goalcheer/internal/platform/errors"

	_ "modernc.org/sqlite"
)

// timeLayout is fixed width so created_at sorts lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

type SQLiteGoalStore struct {
	db *sql.DB
}

func NewSQLiteGoalStore(dbPath string) (*SQLiteGoalStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	store := &SQLiteGoalStore{db: db}
	if err := store.ensureSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

func (s *SQLiteGoalStore) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS goals (
  id TEXT PRIMARY KEY,
  text TEXT NOT NULL,
  done INTEGER NOT NULL DEFAULT 0,
  created_at TEXT NOT NULL
);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create goals table: %w", err)
	}
	return nil
}

func (s *SQLiteGoalStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteGoalStore) List(ctx context.Context) ([]domain.Goal, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, text, done, created_at FROM goals ORDER BY created_at DESC, rowid DESC`)
	if err != nil {
		return nil, fmt.Errorf("query goals: %w", err)
	}
	defer rows.Close()

	var goals []domain.Goal
	for rows.Next() {
		goal, err := scanGoal(rows)
		if err != nil {
			return nil, err
		}
		goals = append(goals, goal)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate goals: %w", err)
	}
	return goals, nil
}

func (s *SQLiteGoalStore) Get(ctx context.Context, id string) (domain.Goal, error) {
	row := s.db.QueryRowContext(ctx, `SELECT id, text, done, created_at FROM goals WHERE id = ?`, id)
	goal, err := scanGoal(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Goal{}, fmt.Errorf("goal %s: %w", id, apperrors.ErrNotFound)
	}
	return goal, err
}

func (s *SQLiteGoalStore) Upsert(ctx context.Context, goal domain.Goal) error {
	const stmt = `
INSERT INTO goals (id, text, done, created_at)
VALUES (?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
  text=excluded.text,
  done=excluded.done;
`
	_, err := s.db.ExecContext(ctx, stmt, goal.ID, goal.Text, boolToInt(goal.Done), goal.CreatedAt.UTC().Format(timeLayout))
	if err != nil {
		return fmt.Errorf("upsert goal: %w", err)
	}
	return nil
}

func (s *SQLiteGoalStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM goals WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete goal: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete goal: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("goal %s: %w", id, apperrors.ErrNotFound)
	}
	return nil
}

func (s *SQLiteGoalStore) DeleteAll(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM goals`); err != nil {
		return fmt.Errorf("clear goals: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanGoal(row scanner) (domain.Goal, error) {
	var (
		goal      domain.Goal
		done      int
		createdAt string
	)
	if err := row.Scan(&goal.ID, &goal.Text, &done, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Goal{}, err
		}
		return domain.Goal{}, fmt.Errorf("scan goal: %w", err)
	}
	goal.Done = done != 0
	ts, err := time.Parse(timeLayout, createdAt)
	if err != nil {
		return domain.Goal{}, fmt.Errorf("parse goal created_at: %w", err)
	}
	goal.CreatedAt = ts
	return goal, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
