package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stemsi/studyplanner-backend/internal/model"
)

// SchoolRepository handles school data access.
type SchoolRepository struct {
	pool *pgxpool.Pool
}

// NewSchoolRepository creates a new SchoolRepository.
func NewSchoolRepository(pool *pgxpool.Pool) *SchoolRepository {
	return &SchoolRepository{pool: pool}
}

// GetByID retrieves a school by its ID.
func (r *SchoolRepository) GetByID(ctx context.Context, id int) (*model.School, error) {
	s := &model.School{}
	err := r.pool.QueryRow(ctx, `SELECT id, name, address FROM schools WHERE id = $1`, id).
		Scan(&s.ID, &s.Name, &s.Address)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

// List retrieves all schools.
func (r *SchoolRepository) List(ctx context.Context) ([]model.School, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, address FROM schools ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var schools []model.School
	for rows.Next() {
		var s model.School
		if err := rows.Scan(&s.ID, &s.Name, &s.Address); err != nil {
			return nil, err
		}
		schools = append(schools, s)
	}
	return schools, rows.Err()
}

// Create inserts a new school.
func (r *SchoolRepository) Create(ctx context.Context, s *model.School) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO schools (name, address) VALUES ($1, $2) RETURNING id`,
		s.Name, s.Address,
	).Scan(&s.ID)
}

// Update modifies an existing school.
func (r *SchoolRepository) Update(ctx context.Context, s *model.School) error {
	cmdTag, err := r.pool.Exec(ctx, `UPDATE schools SET name = $1, address = $2 WHERE id = $3`, s.Name, s.Address, s.ID)
	if err != nil {
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a school by its ID.
func (r *SchoolRepository) Delete(ctx context.Context, id int) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM schools WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
