package repository

import (
	"context"
	"time"

	"github.com/chu-physmed/rotation-planner/backend/internal/domain"
)

// ReplaceScheduleRange deletes every task and guard assignment whose date
// falls inside rng and inserts the freshly generated ones, in a single
// transaction. Either the whole range is replaced or nothing changes.
func (r *Repository) ReplaceScheduleRange(rng domain.ScheduleRange, tasks []domain.TaskAssignment, guards []domain.GuardAssignment) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	// clear the overlapping records first
	query := `DELETE FROM task_assignments WHERE date >= $1 AND date <= $2`
	if _, err := tx.ExecContext(ctx, query, rng.Start, rng.End); err != nil {
		return err
	}

	query = `DELETE FROM guard_assignments WHERE date >= $1 AND date <= $2`
	if _, err := tx.ExecContext(ctx, query, rng.Start, rng.End); err != nil {
		return err
	}

	for i := range tasks {
		query := `
			INSERT INTO task_assignments (date, person_id, task)
			VALUES ($1, $2, $3)
			RETURNING id, created_at, version
		`

		task := &tasks[i]
		if err := tx.QueryRowContext(ctx, query, task.Date, task.PersonID, task.Task).Scan(&task.ID, &task.CreatedAt, &task.Version); err != nil {
			return err
		}
	}

	for i := range guards {
		query := `
			INSERT INTO guard_assignments (date, guard, person_id)
			VALUES ($1, $2, $3)
			RETURNING id, created_at, version
		`

		guard := &guards[i]
		if err := tx.QueryRowContext(ctx, query, guard.Date, guard.Guard, guard.PersonID).Scan(&guard.ID, &guard.CreatedAt, &guard.Version); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	return nil
}
