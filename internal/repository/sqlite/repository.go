package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"taskmaster/internal/errors"
	"taskmaster/internal/repository/sqlite/migrations"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Repository defines the interface for database operations. Every call
// either fully commits or fully fails; no partial writes are visible.
type Repository interface {
	// CreateTask inserts a new task and assigns its identity (row ID and
	// UUID) on the passed struct.
	CreateTask(ctx context.Context, task *Task) error

	// Read operations
	GetTask(ctx context.Context, id int64) (*Task, error)
	ListTasks(ctx context.Context) ([]*Task, error)

	// UpdateTask applies a partial update: nil fields in the update are
	// left unchanged, except Priority which is always written.
	UpdateTask(ctx context.Context, id int64, fields TaskUpdate) error

	// DeleteTask removes a task by ID.
	DeleteTask(ctx context.Context, id int64) error

	// Utility
	Close() error
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db *sql.DB
}

// New creates a new SQLite repository instance
func New(dbPath string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}

	// Run migrations
	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

const taskColumns = `id, uuid, title, description, due_date, due_time, location, latitude, longitude, priority, category, is_complete`

// CreateTask creates a new task, assigning its row ID and UUID
func (r *SQLiteRepository) CreateTask(ctx context.Context, task *Task) error {
	query := `
	INSERT INTO tasks (uuid, title, description, due_date, due_time, location, latitude, longitude, priority, category, is_complete)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	if task.UUID == "" {
		task.UUID = uuid.NewString()
	}

	id, err := ExecuteWithLastInsertID(ctx, r.db, query,
		task.UUID,
		task.Title,
		task.Description,
		FormatTimePtrForDB(task.DueDate),
		FormatTimePtrForDB(task.DueTime),
		nullableString(task.Location),
		task.Latitude,
		task.Longitude,
		task.Priority,
		task.Category,
		task.IsComplete,
	)
	if err != nil {
		return err
	}

	task.ID = id
	return nil
}

// GetTask retrieves a task by ID
func (r *SQLiteRepository) GetTask(ctx context.Context, id int64) (*Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = ?`
	return QuerySingle(ctx, r.db, query, ScanTask, "task", fmt.Sprintf("%d", id), id)
}

// ListTasks retrieves all tasks in insertion order
func (r *SQLiteRepository) ListTasks(ctx context.Context) ([]*Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks ORDER BY id ASC`
	return QueryMultiple(ctx, r.db, query, ScanTasks, "tasks")
}

// UpdateTask applies a partial update to an existing task. Only the
// supplied fields change; priority is written unconditionally.
func (r *SQLiteRepository) UpdateTask(ctx context.Context, id int64, fields TaskUpdate) error {
	var sets []string
	var args []interface{}

	if fields.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *fields.Title)
	}
	if fields.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *fields.Description)
	}
	if fields.DueDate != nil {
		sets = append(sets, "due_date = ?")
		args = append(args, FormatTimeForDB(*fields.DueDate))
	}
	if fields.DueTime != nil {
		sets = append(sets, "due_time = ?")
		args = append(args, FormatTimeForDB(*fields.DueTime))
	}
	if fields.Location != nil {
		sets = append(sets, "location = ?")
		args = append(args, *fields.Location)
	}
	if fields.Latitude != nil {
		sets = append(sets, "latitude = ?")
		args = append(args, *fields.Latitude)
	}
	if fields.Longitude != nil {
		sets = append(sets, "longitude = ?")
		args = append(args, *fields.Longitude)
	}
	if fields.Category != nil {
		sets = append(sets, "category = ?")
		args = append(args, *fields.Category)
	}
	if fields.IsComplete != nil {
		sets = append(sets, "is_complete = ?")
		args = append(args, *fields.IsComplete)
	}

	// Priority is always overwritten, whatever else changed.
	sets = append(sets, "priority = ?")
	args = append(args, fields.Priority)

	query := "UPDATE tasks SET " + strings.Join(sets, ", ") + " WHERE id = ?"
	args = append(args, id)

	return ExecuteWithRowsAffected(ctx, r.db, query, "task", fmt.Sprintf("%d", id), args...)
}

// DeleteTask deletes a task by ID
func (r *SQLiteRepository) DeleteTask(ctx context.Context, id int64) error {
	query := `DELETE FROM tasks WHERE id = ?`
	return ExecuteWithRowsAffected(ctx, r.db, query, "task", fmt.Sprintf("%d", id), id)
}

// nullableString converts a *string into a driver-friendly value,
// mapping nil to NULL.
func nullableString(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}
