package prompt

import (
	"fmt"
	"strings"

	"github.com/stemsi/studyplanner-backend/internal/model"
)

// plannerFormatting is appended to every time-planner prompt. It keeps the model
// away from markup so clients can render the answer as plain text.
const plannerFormatting = `OUTPUT FORMAT RULES (follow strictly):
1. Do NOT use markdown of any kind.
2. Do NOT use bold or italic markers such as ** or __ or *.
3. Do NOT use headers such as # or ##.
4. Do NOT start lines with bullet markers such as -, * or +.
5. Do NOT use code fences or backticks.
6. Do NOT draw tables with | pipes.
7. Write plain text only, and use plenty of illustrative symbols and emoji (📅 ⏰ 📚 ✅ 🔁 ☕ ⭐ ➜ ━) to separate sections visually.
8. Lay out every day exactly like the example below.

EXAMPLE:
━━━━━━━━━━━━━━━━━━━━━━━━━━━━
📅 WEEK 1 ➜ MONDAY
━━━━━━━━━━━━━━━━━━━━━━━━━━━━
⏰ 09:00 - 10:30 ➜ 📚 Mathematics (90 min)
☕ 10:30 - 10:45 ➜ Short break
⏰ 10:45 - 11:30 ➜ 📚 History (45 min)
✅ 11:30 - 12:30 ➜ Assignment: Essay draft
🔁 Review tip ➜ Recap today's formulas before sleep
⭐ Daily total ➜ 3 h 30 min`

// PlannedSubject is a subject with its effective minutes per study session.
type PlannedSubject struct {
	ID          int
	Name        string
	Description *string
	Minutes     int
}

// TimePlan is the fully resolved input of the time-planner prompt.
type TimePlan struct {
	Subjects             []PlannedSubject
	HoursAvailablePerDay int
	DaysPerWeek          int
	WeeksToSchedule      int
	Assignments          []string
}

// ResolveSubjects pairs caller entries with stored subjects in caller order.
// Effective minutes are the caller override, else the stored average, else
// model.DefaultSessionMinutes. Entries without a stored subject are dropped and
// repeated subject ids keep their first entry.
func ResolveSubjects(entries []model.SubjectTimeEntry, stored []model.Subject) []PlannedSubject {
	byID := make(map[int]model.Subject, len(stored))
	for _, s := range stored {
		byID[s.ID] = s
	}

	seen := make(map[int]bool, len(entries))
	out := make([]PlannedSubject, 0, len(entries))
	for _, e := range entries {
		s, ok := byID[e.SubjectID]
		if !ok || seen[e.SubjectID] {
			continue
		}
		seen[e.SubjectID] = true

		minutes := model.DefaultSessionMinutes
		switch {
		case e.AverageTimeInMinutes != nil && *e.AverageTimeInMinutes > 0:
			minutes = *e.AverageTimeInMinutes
		case s.AverageTimeInMinutes > 0:
			minutes = s.AverageTimeInMinutes
		}

		out = append(out, PlannedSubject{
			ID:          s.ID,
			Name:        s.Name,
			Description: s.Description,
			Minutes:     minutes,
		})
	}
	return out
}

// NewTimePlan applies the scheduling defaults and keeps only the first
// model.MaxPlannerAssignments assignments.
func NewTimePlan(subjects []PlannedSubject, hoursPerDay, daysPerWeek, weeks *int, assignments []string) TimePlan {
	if len(assignments) > model.MaxPlannerAssignments {
		assignments = assignments[:model.MaxPlannerAssignments]
	}
	return TimePlan{
		Subjects:             subjects,
		HoursAvailablePerDay: intOr(hoursPerDay, model.DefaultHoursAvailablePerDay),
		DaysPerWeek:          intOr(daysPerWeek, model.DefaultDaysPerWeek),
		WeeksToSchedule:      intOr(weeks, model.DefaultWeeksToSchedule),
		Assignments:          assignments,
	}
}

// TotalMinutes is the time needed for one session of every subject.
func (p TimePlan) TotalMinutes() int {
	total := 0
	for _, s := range p.Subjects {
		total += s.Minutes
	}
	return total
}

// AverageMinutes is TotalMinutes spread over the subjects, 0 when there are none.
func (p TimePlan) AverageMinutes() float64 {
	if len(p.Subjects) == 0 {
		return 0
	}
	return float64(p.TotalMinutes()) / float64(len(p.Subjects))
}

// AvailableHoursPerWeek is the weekly study budget.
func (p TimePlan) AvailableHoursPerWeek() int {
	return p.HoursAvailablePerDay * p.DaysPerWeek
}

// TimePlanner renders the schedule request, ending with the plain-text formatting rules.
func TimePlanner(p TimePlan) string {
	var b strings.Builder
	b.WriteString("Create a detailed study time planner for a student with the following subjects:\n\n")
	for i, s := range p.Subjects {
		fmt.Fprintf(&b, "%d. %s: %d minutes per session", i+1, s.Name, s.Minutes)
		if d := optional(s.Description); d != "" {
			fmt.Fprintf(&b, " (%s)", d)
		}
		b.WriteString("\n")
	}

	total := p.TotalMinutes()
	b.WriteString("\n")
	fmt.Fprintf(&b, "Total study time required per cycle: %d minutes (%.1f hours)\n", total, float64(total)/60)
	fmt.Fprintf(&b, "Available time: %d hours per day, %d days per week (%d hours per week)\n",
		p.HoursAvailablePerDay, p.DaysPerWeek, p.AvailableHoursPerWeek())
	fmt.Fprintf(&b, "Schedule length: %d weeks\n", p.WeeksToSchedule)

	if len(p.Assignments) > 0 {
		b.WriteString("\nUpcoming assignments to fit into the schedule:\n")
		for i, a := range p.Assignments {
			fmt.Fprintf(&b, "%d. %s\n", i+1, a)
		}
	}

	b.WriteString("\nBuild a day-by-day schedule that rotates through every subject, respects the available ")
	b.WriteString("hours, leaves short breaks between sessions, reserves time for the assignments, and ends each ")
	b.WriteString("week with a review session.\n\n")
	b.WriteString(plannerFormatting)
	return b.String()
}

func intOr(v *int, fallback int) int {
	if v == nil || *v <= 0 {
		return fallback
	}
	return *v
}
