package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stemsi/studyplanner-backend/internal/model"
	"github.com/stemsi/studyplanner-backend/internal/testutil"
)

func TestCourseService_CRUD(t *testing.T) {
	svc := NewCourseService(testutil.NewCourseRepo(), zerolog.Nop())
	ctx := context.Background()

	c := &model.Course{Name: "Chemistry", CreditHours: 3}
	if err := svc.Create(ctx, c); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if c.ID == 0 {
		t.Fatal("Create should assign an id")
	}

	got, err := svc.GetByID(ctx, c.ID)
	if err != nil || got.Name != "Chemistry" {
		t.Fatalf("GetByID = %+v, %v", got, err)
	}

	c.Name = "Organic Chemistry"
	if err := svc.Update(ctx, c); err != nil {
		t.Fatalf("Update: %v", err)
	}
	list, _ := svc.List(ctx)
	if len(list) != 1 || list[0].Name != "Organic Chemistry" {
		t.Errorf("List = %+v", list)
	}

	if err := svc.Delete(ctx, c.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	_, err = svc.GetByID(ctx, c.ID)
	assertKind(t, err, ErrNotFound)
	assertKind(t, svc.Delete(ctx, c.ID), ErrNotFound)
	assertKind(t, svc.Update(ctx, &model.Course{ID: 50, Name: "x"}), ErrNotFound)
}

func TestSubjectService_DefaultsSessionLength(t *testing.T) {
	svc := NewSubjectService(testutil.NewSubjectRepo(), zerolog.Nop())
	ctx := context.Background()

	s := &model.Subject{Name: "Geography"}
	if err := svc.Create(ctx, s); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if s.AverageTimeInMinutes != model.DefaultSessionMinutes {
		t.Errorf("AverageTimeInMinutes = %d, want %d", s.AverageTimeInMinutes, model.DefaultSessionMinutes)
	}

	s.AverageTimeInMinutes = 25
	if err := svc.Update(ctx, s); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got, _ := svc.GetByID(ctx, s.ID)
	if got.AverageTimeInMinutes != 25 {
		t.Errorf("AverageTimeInMinutes = %d, want 25", got.AverageTimeInMinutes)
	}

	_, err := svc.GetByID(ctx, 99)
	assertKind(t, err, ErrNotFound)
}

func TestSchoolService_NotFound(t *testing.T) {
	svc := NewSchoolService(testutil.NewSchoolRepo(model.School{ID: 1, Name: "North High", Address: "1 Main St"}))
	ctx := context.Background()

	list, err := svc.List(ctx)
	if err != nil || len(list) != 1 {
		t.Fatalf("List = %+v, %v", list, err)
	}
	_, err = svc.GetByID(ctx, 2)
	assertKind(t, err, ErrNotFound)
	assertKind(t, svc.Update(ctx, &model.School{ID: 2, Name: "a", Address: "b"}), ErrNotFound)
	assertKind(t, svc.Delete(ctx, 2), ErrNotFound)
	if err := svc.Delete(ctx, 1); err != nil {
		t.Errorf("Delete: %v", err)
	}
}
