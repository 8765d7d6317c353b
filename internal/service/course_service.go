package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"github.com/stemsi/studyplanner-backend/internal/model"
	"github.com/stemsi/studyplanner-backend/internal/repository"
)

// CourseService handles course catalog logic.
type CourseService struct {
	courseRepo CourseStore
	log        zerolog.Logger
}

// NewCourseService creates a new CourseService.
func NewCourseService(courseRepo CourseStore, log zerolog.Logger) *CourseService {
	return &CourseService{
		courseRepo: courseRepo,
		log:        log.With().Str("component", "course_service").Logger(),
	}
}

// List retrieves all courses.
func (s *CourseService) List(ctx context.Context) ([]model.Course, error) {
	return s.courseRepo.List(ctx)
}

// GetByID retrieves a course by its ID.
func (s *CourseService) GetByID(ctx context.Context, id int) (*model.Course, error) {
	c, err := s.courseRepo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, notFound("Course not found.")
	}
	return c, err
}

// Create creates a new course.
func (s *CourseService) Create(ctx context.Context, c *model.Course) error {
	if err := s.courseRepo.Create(ctx, c); err != nil {
		s.log.Error().Err(err).Msg("failed to create course")
		return err
	}
	return nil
}

// Update replaces an existing course.
func (s *CourseService) Update(ctx context.Context, c *model.Course) error {
	err := s.courseRepo.Update(ctx, c)
	if errors.Is(err, repository.ErrNotFound) {
		return notFound("Course not found.")
	}
	return err
}

// Delete removes a course.
func (s *CourseService) Delete(ctx context.Context, id int) error {
	err := s.courseRepo.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return notFound("Course not found.")
	}
	return err
}
