package service

import (
	"context"
	"errors"

	"github.com/stemsi/studyplanner-backend/internal/model"
	"github.com/stemsi/studyplanner-backend/internal/repository"
)

// SchoolService handles school records.
type SchoolService struct {
	schoolRepo SchoolStore
}

// NewSchoolService creates a new SchoolService.
func NewSchoolService(schoolRepo SchoolStore) *SchoolService {
	return &SchoolService{schoolRepo: schoolRepo}
}

func (s *SchoolService) List(ctx context.Context) ([]model.School, error) {
	return s.schoolRepo.List(ctx)
}

func (s *SchoolService) GetByID(ctx context.Context, id int) (*model.School, error) {
	school, err := s.schoolRepo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, notFound("School not found.")
	}
	return school, err
}

func (s *SchoolService) Create(ctx context.Context, school *model.School) error {
	return s.schoolRepo.Create(ctx, school)
}

func (s *SchoolService) Update(ctx context.Context, school *model.School) error {
	err := s.schoolRepo.Update(ctx, school)
	if errors.Is(err, repository.ErrNotFound) {
		return notFound("School not found.")
	}
	return err
}

func (s *SchoolService) Delete(ctx context.Context, id int) error {
	err := s.schoolRepo.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return notFound("School not found.")
	}
	return err
}
