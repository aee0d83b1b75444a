package booking

import "time"

// Request is a persisted booking inquiry. Re-submitting an identical
// payload creates a new row each time; there is no dedup.
type Request struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Name      string `gorm:"not null" json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Town      string `gorm:"not null" json:"town"`
	Address   string `json:"address"`
	Date      string `gorm:"not null" json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Details   string `json:"details"`
	Closed    bool   `gorm:"default:false" json:"closed"`

	CreatedAt time.Time `json:"createdAt"`
}

func (Request) TableName() string {
	return "booking_requests"
}

// SubmitRequest is the boundary DTO for the public endpoint.
type SubmitRequest struct {
	Name           string `json:"name" validate:"required"`
	Email          string `json:"email" validate:"omitempty,email"`
	Phone          string `json:"phone" validate:"omitempty,phoneformat"`
	Town           string `json:"town" validate:"required"`
	Address        string `json:"address"`
	Date           string `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime      string `json:"startTime"`
	EndTime        string `json:"endTime"`
	Details        string `json:"details"`
	ChallengeToken string `json:"challengeToken"`
}
