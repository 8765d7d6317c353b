package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/stemsi/studyplanner-backend/internal/llm"
	"github.com/stemsi/studyplanner-backend/internal/model"
	"github.com/stemsi/studyplanner-backend/internal/prompt"
	"github.com/stemsi/studyplanner-backend/internal/repository"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("github.com/stemsi/studyplanner-backend/internal/service")

// PlannerService orchestrates every generation use case: validate, fetch, render,
// call the provider once, and wrap the generated text unchanged.
type PlannerService struct {
	courses  CourseFinder
	subjects SubjectFinder
	provider llm.Provider
	log      zerolog.Logger
}

// NewPlannerService creates a new PlannerService.
func NewPlannerService(courses CourseFinder, subjects SubjectFinder, provider llm.Provider, log zerolog.Logger) *PlannerService {
	return &PlannerService{
		courses:  courses,
		subjects: subjects,
		provider: provider,
		log:      log.With().Str("component", "planner_service").Logger(),
	}
}

// ProviderInfo describes the configured completion provider.
func (s *PlannerService) ProviderInfo() llm.Info {
	return s.provider.Info()
}

// GenerateCourseDescription writes a short description for a course that may not exist yet.
func (s *PlannerService) GenerateCourseDescription(ctx context.Context, req *model.CourseDescriptionRequest) (*model.CourseDescriptionResponse, error) {
	if strings.TrimSpace(req.CourseName) == "" {
		return nil, invalid("Course name is required.")
	}

	text, err := s.complete(ctx, "course_description", prompt.Single(prompt.CourseDescription(req.CourseName, req.Code, req.Semester)))
	if err != nil {
		return nil, err
	}
	return &model.CourseDescriptionResponse{Description: text}, nil
}

// AnalyzeCourse asks for difficulty, prerequisites and study tips for a stored course.
func (s *PlannerService) AnalyzeCourse(ctx context.Context, id int) (*model.CourseInsightResponse, error) {
	course, err := s.findCourse(ctx, id)
	if err != nil {
		return nil, err
	}

	text, err := s.complete(ctx, "course_analysis", prompt.Single(prompt.CourseAnalysis(*course)))
	if err != nil {
		return nil, err
	}
	return &model.CourseInsightResponse{CourseID: course.ID, CourseName: course.Name, Analysis: text}, nil
}

// PoeticCourse asks for a short poem about a stored course.
func (s *PlannerService) PoeticCourse(ctx context.Context, id int) (*model.CourseInsightResponse, error) {
	course, err := s.findCourse(ctx, id)
	if err != nil {
		return nil, err
	}

	text, err := s.complete(ctx, "course_poem", prompt.Single(prompt.CoursePoem(course.Name)))
	if err != nil {
		return nil, err
	}
	return &model.CourseInsightResponse{CourseID: course.ID, CourseName: course.Name, Analysis: text}, nil
}

// SuggestStudyPlan builds a plan across the stored courses matching req.CourseIDs.
func (s *PlannerService) SuggestStudyPlan(ctx context.Context, req *model.StudyPlanRequest) (*model.StudyPlanResponse, error) {
	if len(req.CourseIDs) == 0 {
		return nil, invalid("At least one course ID is required.")
	}

	courses, err := s.courses.GetByIDs(ctx, req.CourseIDs)
	if err != nil {
		return nil, fmt.Errorf("load courses: %w", err)
	}
	if len(courses) == 0 {
		return nil, notFound("No courses found with the provided IDs.")
	}

	weeks := model.DefaultWeeksAvailable
	if req.WeeksAvailable != nil {
		weeks = *req.WeeksAvailable
	}

	text, err := s.complete(ctx, "study_plan", prompt.Single(prompt.StudyPlan(courses, weeks)))
	if err != nil {
		return nil, err
	}
	return &model.StudyPlanResponse{
		TotalCourses:     len(courses),
		TotalCreditHours: prompt.TotalCreditHours(courses),
		StudyPlan:        text,
	}, nil
}

// GenerateTimePlanner schedules the requested subjects into the caller's time budget.
func (s *PlannerService) GenerateTimePlanner(ctx context.Context, req *model.TimePlannerRequest) (*model.TimePlannerResponse, error) {
	if len(req.SubjectTimeData) == 0 {
		return nil, invalid("At least one subject time entry is required.")
	}

	ids := make([]int, 0, len(req.SubjectTimeData))
	for _, e := range req.SubjectTimeData {
		ids = append(ids, e.SubjectID)
	}
	stored, err := s.subjects.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load subjects: %w", err)
	}

	resolved := prompt.ResolveSubjects(req.SubjectTimeData, stored)
	if len(resolved) == 0 {
		return nil, notFound("No subjects found with the provided IDs.")
	}
	plan := prompt.NewTimePlan(resolved, req.HoursAvailablePerDay, req.DaysPerWeek, req.WeeksToSchedule, req.Assignments)

	text, err := s.complete(ctx, "time_planner", prompt.Single(prompt.TimePlanner(plan)))
	if err != nil {
		return nil, err
	}
	return &model.TimePlannerResponse{
		TotalSubjects:         len(plan.Subjects),
		TotalTimeRequired:     plan.TotalMinutes(),
		AverageTimePerSubject: plan.AverageMinutes(),
		HoursAvailablePerDay:  plan.HoursAvailablePerDay,
		DaysPerWeek:           plan.DaysPerWeek,
		TotalAssignments:      len(plan.Assignments),
		StudyPlanner:          text,
	}, nil
}

// Chat answers a single study-planning question. Nothing is remembered between calls.
func (s *PlannerService) Chat(ctx context.Context, req *model.ChatRequest) (*model.ChatResponse, error) {
	if strings.TrimSpace(req.Message) == "" {
		return nil, invalid("Message is required.")
	}

	text, err := s.complete(ctx, "chat", prompt.Chat(req.Message))
	if err != nil {
		return nil, err
	}
	return &model.ChatResponse{UserMessage: req.Message, AssistantResponse: text}, nil
}

// Status performs one round trip to the provider to prove connectivity.
func (s *PlannerService) Status(ctx context.Context) (*model.StatusResponse, error) {
	if _, err := s.complete(ctx, "status", prompt.Single(prompt.StatusProbe)); err != nil {
		return nil, err
	}
	info := s.provider.Info()
	return &model.StatusResponse{
		Status:   "Connected",
		Provider: info.Vendor,
		Model:    info.Model,
		Endpoint: info.Endpoint,
		Message:  fmt.Sprintf("%s connection is active", info.Vendor),
	}, nil
}

func (s *PlannerService) findCourse(ctx context.Context, id int) (*model.Course, error) {
	course, err := s.courses.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, notFound(fmt.Sprintf("Course %d not found.", id))
	}
	if err != nil {
		return nil, fmt.Errorf("load course %d: %w", id, err)
	}
	return course, nil
}

// complete is the single provider call of a use case. Failures are returned as-is.
func (s *PlannerService) complete(ctx context.Context, useCase string, exchange *llm.Exchange) (string, error) {
	info := s.provider.Info()
	ctx, span := tracer.Start(ctx, "llm.complete", trace.WithAttributes(
		attribute.String("llm.use_case", useCase),
		attribute.String("llm.vendor", info.Vendor),
		attribute.String("llm.model", info.Model),
	))
	defer span.End()

	out, err := s.provider.Complete(ctx, exchange)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "completion failed")
		s.log.Error().Err(err).Str("use_case", useCase).Msg("completion failed")
		return "", err
	}
	span.SetAttributes(attribute.Int("llm.response_chars", len(out.Text)))
	s.log.Debug().Str("use_case", useCase).Int("chars", len(out.Text)).Msg("completion generated")
	return out.Text, nil
}
