package model

// Defaults applied to generation requests when the caller omits a field.
const (
	DefaultWeeksAvailable       = 15
	DefaultHoursAvailablePerDay = 8
	DefaultDaysPerWeek          = 5
	DefaultWeeksToSchedule      = 4
	MaxPlannerAssignments       = 10
)

// CourseDescriptionRequest is the payload for POST /GenerateCourseDescription.
type CourseDescriptionRequest struct {
	CourseName string  `json:"courseName"`
	Code       *string `json:"code"`
	Semester   *string `json:"semester"`
}

// StudyPlanRequest is the payload for POST /SuggestStudyPlan.
type StudyPlanRequest struct {
	CourseIDs      []int `json:"courseIds"`
	WeeksAvailable *int  `json:"weeksAvailable" binding:"omitempty,min=1,max=104"`
}

// SubjectTimeEntry names a subject and optionally overrides its minutes per session.
type SubjectTimeEntry struct {
	SubjectID            int  `json:"subjectId"`
	AverageTimeInMinutes *int `json:"averageTimeInMinutes" binding:"omitempty,min=1"`
}

// TimePlannerRequest is the payload for POST /GenerateTimePlanner.
type TimePlannerRequest struct {
	SubjectTimeData      []SubjectTimeEntry `json:"subjectTimeData" binding:"dive"`
	HoursAvailablePerDay *int               `json:"hoursAvailablePerDay" binding:"omitempty,min=1,max=24"`
	DaysPerWeek          *int               `json:"daysPerWeek" binding:"omitempty,min=1,max=7"`
	WeeksToSchedule      *int               `json:"weeksToSchedule" binding:"omitempty,min=1,max=52"`
	Assignments          []string           `json:"assignments"`
}

// ChatRequest is the payload for POST /Chat.
type ChatRequest struct {
	Message string `json:"message"`
}

// CourseDescriptionResponse is returned by POST /GenerateCourseDescription.
type CourseDescriptionResponse struct {
	Description string `json:"description"`
}

// CourseInsightResponse is returned by the analysis and poem endpoints.
// Both carry the generated text under Analysis.
type CourseInsightResponse struct {
	CourseID   int    `json:"courseId"`
	CourseName string `json:"courseName"`
	Analysis   string `json:"analysis"`
}

// StudyPlanResponse is returned by POST /SuggestStudyPlan.
type StudyPlanResponse struct {
	TotalCourses     int    `json:"totalCourses"`
	TotalCreditHours int    `json:"totalCreditHours"`
	StudyPlan        string `json:"studyPlan"`
}

// TimePlannerResponse is returned by POST /GenerateTimePlanner.
type TimePlannerResponse struct {
	TotalSubjects         int     `json:"totalSubjects"`
	TotalTimeRequired     int     `json:"totalTimeRequired"`
	AverageTimePerSubject float64 `json:"averageTimePerSubject"`
	HoursAvailablePerDay  int     `json:"hoursAvailablePerDay"`
	DaysPerWeek           int     `json:"daysPerWeek"`
	TotalAssignments      int     `json:"totalAssignments"`
	StudyPlanner          string  `json:"studyPlanner"`
}

// ChatResponse is returned by POST /Chat.
type ChatResponse struct {
	UserMessage       string `json:"userMessage"`
	AssistantResponse string `json:"assistantResponse"`
}

// StatusResponse is returned by GET /Status when the provider answers.
type StatusResponse struct {
	Status   string `json:"status"`
	Provider string `json:"provider"`
	Model    string `json:"model"`
	Endpoint string `json:"endpoint"`
	Message  string `json:"message"`
}

// StatusErrorResponse is returned by GET /Status when the provider call fails.
type StatusErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Error   string `json:"error"`
}
