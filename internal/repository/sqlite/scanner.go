package sqlite

import (
	"database/sql"
)

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// ScanTask scans a single task from a database row
func ScanTask(scanner Scanner) (*Task, error) {
	task := &Task{}
	var dueDate, dueTime sql.NullString
	var location sql.NullString

	err := scanner.Scan(
		&task.ID,
		&task.UUID,
		&task.Title,
		&task.Description,
		&dueDate,
		&dueTime,
		&location,
		&task.Latitude,
		&task.Longitude,
		&task.Priority,
		&task.Category,
		&task.IsComplete,
	)
	if err != nil {
		return nil, err
	}

	if dueDate.Valid {
		parsed, err := ParseTimeFromDB(dueDate.String)
		if err != nil {
			return nil, err
		}
		task.DueDate = &parsed
	}
	if dueTime.Valid {
		parsed, err := ParseTimeFromDB(dueTime.String)
		if err != nil {
			return nil, err
		}
		task.DueTime = &parsed
	}
	if location.Valid {
		task.Location = &location.String
	}

	return task, nil
}

// ScanTasks scans multiple tasks from database rows
func ScanTasks(rows Rows) ([]*Task, error) {
	var tasks []*Task
	for rows.Next() {
		task, err := ScanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}
