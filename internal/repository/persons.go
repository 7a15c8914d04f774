package repository

import (
	"context"
	"time"

	"github.com/chu-physmed/rotation-planner/backend/internal/domain"
)

func (r *Repository) CreatePerson(person *domain.Person) error {
	query := `
		INSERT INTO persons (full_name, email, service_start, service_end)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{person.FullName, person.Email, person.ServiceStart, person.ServiceEnd}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&person.ID, &person.CreatedAt, &person.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetPersonByID(id int64) (*domain.Person, error) {
	query := `
		SELECT full_name, email, service_start, service_end, created_at, version
		FROM persons WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	person := &domain.Person{
		ID: id,
	}

	dst := []any{&person.FullName, &person.Email, &person.ServiceStart, &person.ServiceEnd, &person.CreatedAt, &person.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return person, nil
}

func (r *Repository) GetAllPersons() ([]*domain.Person, error) {
	query := `
		SELECT id, full_name, email, service_start, service_end, created_at, version
		FROM persons
		ORDER BY id ASC
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	persons := make([]*domain.Person, 0)
	for rows.Next() {
		person := &domain.Person{}
		dst := []any{&person.ID, &person.FullName, &person.Email, &person.ServiceStart, &person.ServiceEnd, &person.CreatedAt, &person.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		persons = append(persons, person)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return persons, nil
}

// GetEligiblePersons returns the persons schedulable for a range starting at
// asOf: those still in service, or whose service end falls on or after asOf.
// Scheduling order is id ascending.
func (r *Repository) GetEligiblePersons(asOf time.Time) ([]*domain.Person, error) {
	query := `
		SELECT id, full_name, email, service_start, service_end, created_at, version
		FROM persons
		WHERE service_end IS NULL OR service_end >= $1
		ORDER BY id ASC
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, asOf)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	persons := make([]*domain.Person, 0)
	for rows.Next() {
		person := &domain.Person{}
		dst := []any{&person.ID, &person.FullName, &person.Email, &person.ServiceStart, &person.ServiceEnd, &person.CreatedAt, &person.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		persons = append(persons, person)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return persons, nil
}

func (r *Repository) UpdatePerson(person *domain.Person) error {
	query := `
		UPDATE persons
		SET
			full_name = $1,
			email = $2,
			service_start = $3,
			service_end = $4,
			version = version + 1
		WHERE id = $5 AND version = $6
		RETURNING created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{person.FullName, person.Email, person.ServiceStart, person.ServiceEnd, person.ID, person.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&person.CreatedAt, &person.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeletePerson(id int64) error {
	query := `
		DELETE FROM persons WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}
