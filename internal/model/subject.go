package model

import "time"

// DefaultSessionMinutes is used when a subject has no usable average session length.
const DefaultSessionMinutes = 60

// Subject represents a study subject and its typical session length.
type Subject struct {
	ID                   int       `json:"id"`
	Name                 string    `json:"name"`
	Description          *string   `json:"description"`
	AverageTimeInMinutes int       `json:"averageTimeInMinutes"`
	CreatedAt            time.Time `json:"createdAt"`
}

// SubjectRequest is the payload for creating or replacing a subject.
// AverageTimeInMinutes defaults to DefaultSessionMinutes when omitted.
type SubjectRequest struct {
	Name                 string  `json:"name" binding:"required,notblank,max=100"`
	Description          *string `json:"description" binding:"omitempty,max=500"`
	AverageTimeInMinutes *int    `json:"averageTimeInMinutes" binding:"omitempty,min=1"`
}
