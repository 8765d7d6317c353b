// Package prompt renders validated requests and catalog records into model-ready
// instructions. Every builder is pure and never fails on validated input.
package prompt

import (
	"fmt"
	"strings"

	"github.com/stemsi/studyplanner-backend/internal/llm"
	"github.com/stemsi/studyplanner-backend/internal/model"
)

const (
	notAvailable        = "N/A"
	noCode              = "No Code"
	unspecifiedSemester = "Unspecified semester"
)

// ChatSystemInstruction confines the assistant to study-planning topics.
const ChatSystemInstruction = "You are a helpful study planner assistant. Help students with course planning, " +
	"study strategies, and academic advice. Don't answer any other questions."

// StatusProbe is sent by the connectivity check.
const StatusProbe = "Say 'OK' if you're working."

// CourseDescription asks for a short professional description of a course.
// code and semester are only mentioned when non-blank.
func CourseDescription(name string, code, semester *string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate a detailed course description for a course named '%s'", name)
	if v := optional(code); v != "" {
		fmt.Fprintf(&b, " with code '%s'", v)
	}
	if v := optional(semester); v != "" {
		fmt.Fprintf(&b, " typically offered in %s", v)
	}
	b.WriteString(". The description should be professional, informative, and around 2-3 sentences.")
	return b.String()
}

// CourseAnalysis renders every known field of a course and asks for difficulty,
// prerequisites and study tips.
func CourseAnalysis(c model.Course) string {
	var b strings.Builder
	b.WriteString("Analyze this course and provide insights:\n")
	fmt.Fprintf(&b, "Name: %s\n", c.Name)
	fmt.Fprintf(&b, "Code: %s\n", orDefault(c.Code, notAvailable))
	fmt.Fprintf(&b, "Description: %s\n", orDefault(c.Description, notAvailable))
	fmt.Fprintf(&b, "Semester: %s\n", orDefault(c.Semester, notAvailable))
	fmt.Fprintf(&b, "Credit Hours: %d\n\n", c.CreditHours)
	b.WriteString("Provide a brief analysis including difficulty level, recommended prerequisites, and study tips.")
	return b.String()
}

// CoursePoem asks for a short poem about the course.
func CoursePoem(name string) string {
	return fmt.Sprintf("Can you write me a short poem for the course subject %s", name)
}

// TotalCreditHours sums credit hours across courses.
func TotalCreditHours(courses []model.Course) int {
	total := 0
	for _, c := range courses {
		total += c.CreditHours
	}
	return total
}

// StudyPlan lists the courses with their credit load and asks for a prioritized plan.
func StudyPlan(courses []model.Course, weeksAvailable int) string {
	var b strings.Builder
	b.WriteString("Create a study plan for the following courses:\n")
	for i, c := range courses {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "- %s (%s): %d credit hours, %s",
			c.Name, orDefault(c.Code, noCode), c.CreditHours, orDefault(c.Semester, unspecifiedSemester))
	}
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Total Credit Hours: %d\n", TotalCreditHours(courses))
	fmt.Fprintf(&b, "Weeks Available: %d\n\n", weeksAvailable)
	b.WriteString("Provide a structured study plan with time allocation and priorities.")
	return b.String()
}

// Chat builds the two-message exchange for the study-planner assistant.
// The caller's message is sent verbatim.
func Chat(message string) *llm.Exchange {
	return llm.NewExchange().System(ChatSystemInstruction).User(message)
}

// Single wraps one rendered prompt into a user-only exchange.
func Single(prompt string) *llm.Exchange {
	return llm.NewExchange().User(prompt)
}

func optional(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}

// orDefault treats nil and blank values as missing.
func orDefault(s *string, fallback string) string {
	if v := optional(s); v != "" {
		return v
	}
	return fallback
}
