package main

import (
	"context"
	"fmt"
	"time"

	"github.com/stemsi/studyplanner-backend/internal/config"
	"github.com/stemsi/studyplanner-backend/internal/database"
	"github.com/stemsi/studyplanner-backend/internal/logger"
	"github.com/stemsi/studyplanner-backend/internal/model"
	"github.com/stemsi/studyplanner-backend/internal/repository"
	"github.com/stemsi/studyplanner-backend/internal/service"
)

func strPtr(s string) *string { return &s }

func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	courseService := service.NewCourseService(repository.NewCourseRepository(pool), log)
	subjectService := service.NewSubjectService(repository.NewSubjectRepository(pool), log)
	schoolService := service.NewSchoolService(repository.NewSchoolRepository(pool))

	existing, err := courseService.List(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to list courses")
	}
	if len(existing) > 0 {
		fmt.Printf("Catalog already holds %d courses, nothing to seed.\n", len(existing))
		return
	}

	fmt.Println("=== Seeding catalog ===")

	courses := []model.Course{
		{Name: "Calculus I", Code: strPtr("MATH101"), Semester: strPtr("Fall"), CreditHours: 4,
			Description: strPtr("Limits, derivatives and an introduction to integrals.")},
		{Name: "Introduction to Programming", Code: strPtr("CS101"), Semester: strPtr("Fall"), CreditHours: 3},
		{Name: "General Biology", Code: strPtr("BIO110"), Semester: strPtr("Spring"), CreditHours: 4},
		{Name: "World History", CreditHours: 2},
		{Name: "Academic Writing", Code: strPtr("ENG120"), CreditHours: 3},
	}
	for i := range courses {
		if err := courseService.Create(ctx, &courses[i]); err != nil {
			fmt.Printf("Error creating course %s: %v\n", courses[i].Name, err)
			continue
		}
		fmt.Printf("Created course %d: %s\n", courses[i].ID, courses[i].Name)
	}

	subjects := []model.Subject{
		{Name: "Mathematics", AverageTimeInMinutes: 90},
		{Name: "Physics", AverageTimeInMinutes: 75},
		{Name: "History", AverageTimeInMinutes: 45},
		{Name: "English", Description: strPtr("Reading and essay practice")},
	}
	for i := range subjects {
		if err := subjectService.Create(ctx, &subjects[i]); err != nil {
			fmt.Printf("Error creating subject %s: %v\n", subjects[i].Name, err)
			continue
		}
		fmt.Printf("Created subject %d: %s (%d min)\n", subjects[i].ID, subjects[i].Name, subjects[i].AverageTimeInMinutes)
	}

	school := &model.School{Name: "Riverside High School", Address: "12 River Road"}
	if err := schoolService.Create(ctx, school); err != nil {
		fmt.Printf("Error creating school: %v\n", err)
	}

	fmt.Println("\nSeed completed!")
}
