package model

// School represents a school record.
type School struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

// SchoolRequest is the payload for creating or replacing a school.
type SchoolRequest struct {
	Name    string `json:"name" binding:"required,notblank,max=100"`
	Address string `json:"address" binding:"required,notblank,max=500"`
}
