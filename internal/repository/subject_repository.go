package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stemsi/studyplanner-backend/internal/model"
)

type SubjectRepository struct {
	pool *pgxpool.Pool
}

func NewSubjectRepository(pool *pgxpool.Pool) *SubjectRepository {
	return &SubjectRepository{pool: pool}
}

func (r *SubjectRepository) Create(ctx context.Context, s *model.Subject) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO subjects (name, description, average_time_in_minutes) VALUES ($1, $2, $3) RETURNING id, created_at`,
		s.Name, s.Description, s.AverageTimeInMinutes).Scan(&s.ID, &s.CreatedAt)
}

func (r *SubjectRepository) GetByID(ctx context.Context, id int) (*model.Subject, error) {
	s := &model.Subject{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, description, average_time_in_minutes, created_at FROM subjects WHERE id = $1`, id,
	).Scan(&s.ID, &s.Name, &s.Description, &s.AverageTimeInMinutes, &s.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

// GetByIDs returns the subjects matching ids; unknown IDs are skipped.
func (r *SubjectRepository) GetByIDs(ctx context.Context, ids []int) ([]model.Subject, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, description, average_time_in_minutes, created_at FROM subjects WHERE id = ANY($1) ORDER BY id`, ids)
	if err != nil {
		return nil, err
	}
	return collectSubjects(rows)
}

func (r *SubjectRepository) GetAll(ctx context.Context) ([]model.Subject, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, description, average_time_in_minutes, created_at FROM subjects ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	return collectSubjects(rows)
}

func collectSubjects(rows pgx.Rows) ([]model.Subject, error) {
	defer rows.Close()

	var subjects []model.Subject
	for rows.Next() {
		var s model.Subject
		if err := rows.Scan(&s.ID, &s.Name, &s.Description, &s.AverageTimeInMinutes, &s.CreatedAt); err != nil {
			return nil, err
		}
		subjects = append(subjects, s)
	}
	return subjects, rows.Err()
}

func (r *SubjectRepository) Update(ctx context.Context, s *model.Subject) error {
	err := r.pool.QueryRow(ctx,
		`UPDATE subjects SET name = $1, description = $2, average_time_in_minutes = $3 WHERE id = $4 RETURNING created_at`,
		s.Name, s.Description, s.AverageTimeInMinutes, s.ID).Scan(&s.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

func (r *SubjectRepository) Delete(ctx context.Context, id int) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM subjects WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
