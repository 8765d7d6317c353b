package model

import "time"

// Course represents a course offered in the catalog.
type Course struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Code        *string   `json:"code"`
	Description *string   `json:"description"`
	Semester    *string   `json:"semester"`
	CreditHours int       `json:"creditHours"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CourseRequest is the payload for creating or replacing a course.
type CourseRequest struct {
	Name        string  `json:"name" binding:"required,notblank,max=100"`
	Code        *string `json:"code" binding:"omitempty,max=20"`
	Description *string `json:"description" binding:"omitempty,max=500"`
	Semester    *string `json:"semester" binding:"omitempty,max=50"`
	CreditHours int     `json:"creditHours" binding:"min=0"`
}
