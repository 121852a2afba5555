// Package sqlite implements the task store on a SQLite database. The
// collection semantics match the JSON file backend: Load reads every
// row, Save replaces the whole table inside one transaction.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"

	"task-tracker/internal/domain"
	"task-tracker/internal/errors"
)

// Store persists the task collection in a SQLite database
type Store struct {
	db *sql.DB
}

// New opens the database at the given path and applies pending schema
// migrations.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewStorageError("open database", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewStorageError("run migrations", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// Load reads the full task collection. Rows that cannot be decoded or
// violate task invariants surface as a corrupt store error.
func (s *Store) Load(ctx context.Context) (map[string]*domain.Task, error) {
	query := `
	SELECT id, title, description, priority, status, tags, due_date, created_at, updated_at, completed_at
	FROM tasks`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, errors.NewStorageError("query tasks", err)
	}
	defer rows.Close()

	tasks := make(map[string]*domain.Task)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, errors.NewCorruptStoreError("tasks table", err)
		}
		if err := task.Validate(); err != nil {
			return nil, errors.NewCorruptStoreError("tasks table", err)
		}
		tasks[task.ID] = task
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewStorageError("iterate tasks", err)
	}

	return tasks, nil
}

// Save replaces the stored collection with the given one. The delete and
// all inserts run in a single transaction, so a failed save leaves the
// previous collection intact.
func (s *Store) Save(ctx context.Context, tasks map[string]*domain.Task) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.NewWriteFailureError("tasks table", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM tasks`); err != nil {
		return errors.NewWriteFailureError("tasks table", err)
	}

	insert := `
	INSERT INTO tasks (id, title, description, priority, status, tags, due_date, created_at, updated_at, completed_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	stmt, err := tx.PrepareContext(ctx, insert)
	if err != nil {
		return errors.NewWriteFailureError("tasks table", err)
	}
	defer stmt.Close()

	for _, task := range tasks {
		tags, err := json.Marshal(task.Tags)
		if err != nil {
			return errors.NewWriteFailureError("tasks table",
				fmt.Errorf("encode tags for task %s: %w", task.ID, err))
		}
		_, err = stmt.ExecContext(ctx,
			task.ID,
			task.Title,
			task.Description,
			int(task.Priority),
			string(task.Status),
			string(tags),
			formatTimePtrForDB(task.DueDate),
			formatTimeForDB(task.CreatedAt),
			formatTimeForDB(task.UpdatedAt),
			formatTimePtrForDB(task.CompletedAt),
		)
		if err != nil {
			return errors.NewWriteFailureError("tasks table", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.NewWriteFailureError("tasks table", err)
	}
	return nil
}

func scanTask(rows *sql.Rows) (*domain.Task, error) {
	var (
		task        domain.Task
		priority    int
		status      string
		tags        string
		dueDate     sql.NullString
		createdAt   string
		updatedAt   string
		completedAt sql.NullString
	)

	err := rows.Scan(&task.ID, &task.Title, &task.Description, &priority,
		&status, &tags, &dueDate, &createdAt, &updatedAt, &completedAt)
	if err != nil {
		return nil, err
	}

	task.Priority = domain.Priority(priority)
	task.Status = domain.Status(status)

	if err := json.Unmarshal([]byte(tags), &task.Tags); err != nil {
		return nil, fmt.Errorf("decode tags for task %s: %w", task.ID, err)
	}

	if task.CreatedAt, err = parseTimeFromDB(createdAt); err != nil {
		return nil, fmt.Errorf("parse created_at for task %s: %w", task.ID, err)
	}
	if task.UpdatedAt, err = parseTimeFromDB(updatedAt); err != nil {
		return nil, fmt.Errorf("parse updated_at for task %s: %w", task.ID, err)
	}
	if task.DueDate, err = parseTimePtrFromDB(dueDate); err != nil {
		return nil, fmt.Errorf("parse due_date for task %s: %w", task.ID, err)
	}
	if task.CompletedAt, err = parseTimePtrFromDB(completedAt); err != nil {
		return nil, fmt.Errorf("parse completed_at for task %s: %w", task.ID, err)
	}

	return &task, nil
}
