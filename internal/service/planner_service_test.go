package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stemsi/studyplanner-backend/internal/llm"
	"github.com/stemsi/studyplanner-backend/internal/model"
	"github.com/stemsi/studyplanner-backend/internal/testutil"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func setupPlannerService() (*PlannerService, *testutil.Provider) {
	courses := testutil.NewCourseRepo(
		model.Course{ID: 1, Name: "Algebra", Code: strPtr("MATH101"), CreditHours: 3},
		model.Course{ID: 2, Name: "Biology", CreditHours: 4, Semester: strPtr("Fall")},
	)
	subjects := testutil.NewSubjectRepo(
		model.Subject{ID: 1, Name: "Math", AverageTimeInMinutes: 50},
		model.Subject{ID: 2, Name: "History", AverageTimeInMinutes: 45},
	)
	provider := &testutil.Provider{Reply: "generated text"}
	return NewPlannerService(courses, subjects, provider, zerolog.Nop()), provider
}

func assertKind(t *testing.T, err, kind error) {
	t.Helper()
	if !errors.Is(err, kind) {
		t.Fatalf("err = %v, want kind %v", err, kind)
	}
}

// ── Course description ──

func TestGenerateCourseDescription_BlankName(t *testing.T) {
	svc, provider := setupPlannerService()

	for _, name := range []string{"", "   ", "\t\n"} {
		_, err := svc.GenerateCourseDescription(context.Background(), &model.CourseDescriptionRequest{CourseName: name, Code: strPtr("X1")})
		assertKind(t, err, ErrValidation)
	}
	if provider.Calls() != 0 {
		t.Errorf("provider called %d times on invalid input", provider.Calls())
	}
}

func TestGenerateCourseDescription_NoCaching(t *testing.T) {
	svc, provider := setupPlannerService()
	req := &model.CourseDescriptionRequest{CourseName: "Calculus"}

	for i := 0; i < 2; i++ {
		resp, err := svc.GenerateCourseDescription(context.Background(), req)
		if err != nil {
			t.Fatalf("call %d: %v", i, err)
		}
		if resp.Description != "generated text" {
			t.Errorf("description = %q", resp.Description)
		}
	}
	if provider.Calls() != 2 {
		t.Errorf("provider calls = %d, want 2", provider.Calls())
	}
}

// ── Analysis & poem ──

func TestAnalyzeCourse(t *testing.T) {
	svc, provider := setupPlannerService()

	resp, err := svc.AnalyzeCourse(context.Background(), 1)
	if err != nil {
		t.Fatalf("AnalyzeCourse: %v", err)
	}
	if resp.CourseID != 1 || resp.CourseName != "Algebra" || resp.Analysis != "generated text" {
		t.Errorf("unexpected response: %+v", resp)
	}
	if !strings.Contains(provider.LastPrompt(), "Code: MATH101") {
		t.Errorf("prompt should render the course: %q", provider.LastPrompt())
	}

	_, err = svc.AnalyzeCourse(context.Background(), 999)
	assertKind(t, err, ErrNotFound)
	if provider.Calls() != 1 {
		t.Errorf("provider calls = %d, want 1", provider.Calls())
	}
}

func TestPoeticCourse(t *testing.T) {
	svc, provider := setupPlannerService()

	resp, err := svc.PoeticCourse(context.Background(), 2)
	if err != nil {
		t.Fatalf("PoeticCourse: %v", err)
	}
	if resp.Analysis != "generated text" || resp.CourseName != "Biology" {
		t.Errorf("unexpected response: %+v", resp)
	}
	if !strings.Contains(provider.LastPrompt(), "poem") {
		t.Errorf("unexpected prompt: %q", provider.LastPrompt())
	}

	_, err = svc.PoeticCourse(context.Background(), 42)
	assertKind(t, err, ErrNotFound)
}

// ── Study plan ──

func TestSuggestStudyPlan(t *testing.T) {
	svc, provider := setupPlannerService()

	_, err := svc.SuggestStudyPlan(context.Background(), &model.StudyPlanRequest{CourseIDs: []int{}})
	assertKind(t, err, ErrValidation)

	_, err = svc.SuggestStudyPlan(context.Background(), &model.StudyPlanRequest{CourseIDs: []int{999}})
	assertKind(t, err, ErrNotFound)
	if err.Error() != "No courses found with the provided IDs." {
		t.Errorf("message = %q", err.Error())
	}

	resp, err := svc.SuggestStudyPlan(context.Background(), &model.StudyPlanRequest{CourseIDs: []int{1, 2}})
	if err != nil {
		t.Fatalf("SuggestStudyPlan: %v", err)
	}
	if resp.TotalCourses != 2 || resp.TotalCreditHours != 7 || resp.StudyPlan != "generated text" {
		t.Errorf("unexpected response: %+v", resp)
	}
	if !strings.Contains(provider.LastPrompt(), "Weeks Available: 15") {
		t.Errorf("default weeks missing: %q", provider.LastPrompt())
	}

	_, err = svc.SuggestStudyPlan(context.Background(), &model.StudyPlanRequest{CourseIDs: []int{2, 404}, WeeksAvailable: intPtr(6)})
	if err != nil {
		t.Fatalf("partial match should succeed: %v", err)
	}
	if !strings.Contains(provider.LastPrompt(), "Weeks Available: 6") {
		t.Errorf("weeks override missing: %q", provider.LastPrompt())
	}
}

// ── Time planner ──

func TestGenerateTimePlanner_Resolution(t *testing.T) {
	svc, _ := setupPlannerService()

	resp, err := svc.GenerateTimePlanner(context.Background(), &model.TimePlannerRequest{
		SubjectTimeData: []model.SubjectTimeEntry{{SubjectID: 1, AverageTimeInMinutes: intPtr(90)}, {SubjectID: 2}},
	})
	if err != nil {
		t.Fatalf("GenerateTimePlanner: %v", err)
	}
	if resp.TotalTimeRequired != 135 {
		t.Errorf("TotalTimeRequired = %d, want 135", resp.TotalTimeRequired)
	}
	if resp.TotalSubjects != 2 || resp.AverageTimePerSubject != 67.5 {
		t.Errorf("unexpected totals: %+v", resp)
	}
	if resp.HoursAvailablePerDay != 8 || resp.DaysPerWeek != 5 {
		t.Errorf("defaults not applied: %+v", resp)
	}

	resp, err = svc.GenerateTimePlanner(context.Background(), &model.TimePlannerRequest{
		SubjectTimeData: []model.SubjectTimeEntry{{SubjectID: 1, AverageTimeInMinutes: intPtr(90)}, {SubjectID: 2, AverageTimeInMinutes: intPtr(30)}},
	})
	if err != nil {
		t.Fatalf("GenerateTimePlanner: %v", err)
	}
	if resp.TotalTimeRequired != 120 {
		t.Errorf("TotalTimeRequired = %d, want 120", resp.TotalTimeRequired)
	}
}

func TestGenerateTimePlanner_AssignmentsTruncated(t *testing.T) {
	svc, provider := setupPlannerService()

	assignments := make([]string, 15)
	for i := range assignments {
		assignments[i] = fmt.Sprintf("Homework %d", i+1)
	}
	resp, err := svc.GenerateTimePlanner(context.Background(), &model.TimePlannerRequest{
		SubjectTimeData: []model.SubjectTimeEntry{{SubjectID: 1}},
		Assignments:     assignments,
		DaysPerWeek:     intPtr(6),
	})
	if err != nil {
		t.Fatalf("GenerateTimePlanner: %v", err)
	}
	if resp.TotalAssignments != 10 {
		t.Errorf("TotalAssignments = %d, want 10", resp.TotalAssignments)
	}
	if resp.DaysPerWeek != 6 {
		t.Errorf("DaysPerWeek = %d, want 6", resp.DaysPerWeek)
	}
	if strings.Contains(provider.LastPrompt(), "Homework 11") {
		t.Error("prompt must only list the first ten assignments")
	}
}

func TestGenerateTimePlanner_Failures(t *testing.T) {
	svc, provider := setupPlannerService()

	_, err := svc.GenerateTimePlanner(context.Background(), &model.TimePlannerRequest{})
	assertKind(t, err, ErrValidation)

	_, err = svc.GenerateTimePlanner(context.Background(), &model.TimePlannerRequest{
		SubjectTimeData: []model.SubjectTimeEntry{{SubjectID: 77}},
	})
	assertKind(t, err, ErrNotFound)

	if provider.Calls() != 0 {
		t.Errorf("provider calls = %d, want 0", provider.Calls())
	}
}

// ── Chat & status ──

func TestChat(t *testing.T) {
	svc, provider := setupPlannerService()

	_, err := svc.Chat(context.Background(), &model.ChatRequest{Message: "  "})
	assertKind(t, err, ErrValidation)

	resp, err := svc.Chat(context.Background(), &model.ChatRequest{Message: "How should I study?"})
	if err != nil {
		t.Fatalf("Chat: %v", err)
	}
	if resp.UserMessage != "How should I study?" || resp.AssistantResponse != "generated text" {
		t.Errorf("unexpected response: %+v", resp)
	}
	if len(provider.Exchanges[0]) != 2 || provider.Exchanges[0][0].Role != llm.RoleSystem {
		t.Errorf("chat should send system + user messages: %+v", provider.Exchanges[0])
	}
}

func TestStatus(t *testing.T) {
	svc, provider := setupPlannerService()

	resp, err := svc.Status(context.Background())
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if resp.Status != "Connected" || resp.Provider != "fake" || resp.Model != "fake-model" {
		t.Errorf("unexpected status: %+v", resp)
	}

	provider.Err = &llm.Error{Kind: llm.ErrProviderUnavailable, Vendor: "fake", Message: "connection refused"}
	_, err = svc.Status(context.Background())
	assertKind(t, err, llm.ErrProviderUnavailable)
	if provider.Calls() != 2 {
		t.Errorf("provider calls = %d, want 2", provider.Calls())
	}
}

func TestProviderErrorIsNotMasked(t *testing.T) {
	svc, provider := setupPlannerService()
	provider.Err = &llm.Error{Kind: llm.ErrProviderRejected, Vendor: "fake", StatusCode: 429, Message: "quota exceeded"}

	_, err := svc.AnalyzeCourse(context.Background(), 1)
	assertKind(t, err, llm.ErrProviderRejected)
	if !strings.Contains(err.Error(), "quota exceeded") {
		t.Errorf("provider message lost: %v", err)
	}
	if provider.Calls() != 1 {
		t.Errorf("no retry expected, got %d calls", provider.Calls())
	}
}
