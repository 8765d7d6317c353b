package service

import (
	"context"

	"github.com/stemsi/studyplanner-backend/internal/model"
)

// CourseFinder is the read side of the course store used by generation use cases.
type CourseFinder interface {
	GetByID(ctx context.Context, id int) (*model.Course, error)
	GetByIDs(ctx context.Context, ids []int) ([]model.Course, error)
}

// SubjectFinder is the read side of the subject store used by the time planner.
type SubjectFinder interface {
	GetByIDs(ctx context.Context, ids []int) ([]model.Subject, error)
}

// CourseStore is the full course persistence contract.
type CourseStore interface {
	CourseFinder
	List(ctx context.Context) ([]model.Course, error)
	Create(ctx context.Context, c *model.Course) error
	Update(ctx context.Context, c *model.Course) error
	Delete(ctx context.Context, id int) error
}

// SubjectStore is the full subject persistence contract.
type SubjectStore interface {
	SubjectFinder
	GetByID(ctx context.Context, id int) (*model.Subject, error)
	GetAll(ctx context.Context) ([]model.Subject, error)
	Create(ctx context.Context, s *model.Subject) error
	Update(ctx context.Context, s *model.Subject) error
	Delete(ctx context.Context, id int) error
}

// SchoolStore is the full school persistence contract.
type SchoolStore interface {
	GetByID(ctx context.Context, id int) (*model.School, error)
	List(ctx context.Context) ([]model.School, error)
	Create(ctx context.Context, s *model.School) error
	Update(ctx context.Context, s *model.School) error
	Delete(ctx context.Context, id int) error
}
