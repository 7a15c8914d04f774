package repository

import (
	"context"
	"time"

	"github.com/chu-physmed/rotation-planner/backend/internal/domain"
)

func (r *Repository) GetGuardAssignmentsInRange(rng domain.ScheduleRange) ([]*domain.GuardAssignment, error) {
	query := `
		SELECT id, date, guard, person_id, created_at, version
		FROM guard_assignments
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

	assignments := []*domain.GuardAssignment{}
	for rows.Next() {
		var a domain.GuardAssignment
		dst := []any{&a.ID, &a.Date, &a.Guard, &a.PersonID, &a.CreatedAt, &a.Version}
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

// SetGuardAssignment writes the holder of a guard slot on a date, replacing
// the current holder if the slot is already taken. Each slot has at most one
// holder per date.
func (r *Repository) SetGuardAssignment(assignment *domain.GuardAssignment) error {
	query := `
		INSERT INTO guard_assignments (date, guard, person_id)
		VALUES ($1, $2, $3)
		ON CONFLICT (date, guard) DO UPDATE
		SET person_id = EXCLUDED.person_id, version = guard_assignments.version + 1
		RETURNING id, created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{assignment.Date, assignment.Guard, assignment.PersonID}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&assignment.ID, &assignment.CreatedAt, &assignment.Version); err != nil {
		return err
	}

	return nil
}

// ClearGuardAssignment empties a guard slot on a date. An already empty slot
// is a no-op.
func (r *Repository) ClearGuardAssignment(date time.Time, guard domain.GuardKind) error {
	query := `
		DELETE FROM guard_assignments WHERE date = $1 AND guard = $2
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query, date, guard)
	if err != nil {
		return err
	}

	return nil
}
