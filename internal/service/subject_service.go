package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"github.com/stemsi/studyplanner-backend/internal/model"
	"github.com/stemsi/studyplanner-backend/internal/repository"
)

type SubjectService struct {
	subjectRepo SubjectStore
	log         zerolog.Logger
}

func NewSubjectService(subjectRepo SubjectStore, log zerolog.Logger) *SubjectService {
	return &SubjectService{
		subjectRepo: subjectRepo,
		log:         log.With().Str("component", "subject_service").Logger(),
	}
}

func (s *SubjectService) GetAll(ctx context.Context) ([]model.Subject, error) {
	return s.subjectRepo.GetAll(ctx)
}

func (s *SubjectService) GetByID(ctx context.Context, id int) (*model.Subject, error) {
	sub, err := s.subjectRepo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, notFound("Subject not found.")
	}
	return sub, err
}

// Create stores a subject, defaulting the session length when it is not positive.
func (s *SubjectService) Create(ctx context.Context, sub *model.Subject) error {
	if sub.AverageTimeInMinutes <= 0 {
		sub.AverageTimeInMinutes = model.DefaultSessionMinutes
	}
	if err := s.subjectRepo.Create(ctx, sub); err != nil {
		s.log.Error().Err(err).Msg("failed to create subject")
		return err
	}
	return nil
}

func (s *SubjectService) Update(ctx context.Context, sub *model.Subject) error {
	if sub.AverageTimeInMinutes <= 0 {
		sub.AverageTimeInMinutes = model.DefaultSessionMinutes
	}
	err := s.subjectRepo.Update(ctx, sub)
	if errors.Is(err, repository.ErrNotFound) {
		return notFound("Subject not found.")
	}
	return err
}

func (s *SubjectService) Delete(ctx context.Context, id int) error {
	err := s.subjectRepo.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return notFound("Subject not found.")
	}
	return err
}
