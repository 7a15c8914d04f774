package repository

import (
	"context"
	"time"

	"github.com/chu-physmed/rotation-planner/backend/internal/domain"
)

func (r *Repository) GetTaskAssignmentsInRange(rng domain.ScheduleRange) ([]*domain.TaskAssignment, error) {
	query := `
		SELECT id, date, person_id, task, created_at, version
		FROM task_assignments
		WHERE date >= $1 AND date <= $2
		ORDER BY date ASC, id ASC
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, rng.Start, rng.End)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	assignments := []*domain.TaskAssignment{}
	for rows.Next() {
		var a domain.TaskAssignment
		dst := []any{&a.ID, &a.Date, &a.PersonID, &a.Task, &a.CreatedAt, &a.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		assignments = append(assignments, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return assignments, nil
}

// SetTaskAssignment writes the task held by a person on a date, replacing
// any task already held that day. A person holds at most one task per date.
func (r *Repository) SetTaskAssignment(assignment *domain.TaskAssignment) error {
	query := `
		INSERT INTO task_assignments (date, person_id, task)
		VALUES ($1, $2, $3)
		ON CONFLICT (date, person_id) DO UPDATE
		SET task = EXCLUDED.task, version = task_assignments.version + 1
		RETURNING id, created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{assignment.Date, assignment.PersonID, assignment.Task}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&assignment.ID, &assignment.CreatedAt, &assignment.Version); err != nil {
		return err
	}

	return nil
}

// ClearTaskAssignment removes the task held by a person on a date. Clearing
// a cell with no record is a no-op, so manual edits stay idempotent.
func (r *Repository) ClearTaskAssignment(date time.Time, personID int64) error {
	query := `
		DELETE FROM task_assignments WHERE date = $1 AND person_id = $2
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query, date, personID)
	if err != nil {
		return err
	}

	return nil
}
