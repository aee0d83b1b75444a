package auth

import "time"

type User struct {
	ID           string `gorm:"primaryKey;size:36"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	DisplayName  string
	Admin        bool `gorm:"default:false"`
	Disabled     bool `gorm:"default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (User) TableName() string {
	return "users"
}

// LoginFailure tracks failed logins per normalized email. Attempts only
// grow until the record is cleared by a re-enable.
type LoginFailure struct {
	Email       string `gorm:"primaryKey"`
	Attempts    int    `gorm:"not null;default:0"`
	Disabled    bool   `gorm:"default:false"`
	LastAttempt time.Time
}

func (LoginFailure) TableName() string {
	return "login_failures"
}

type AllowlistEntry struct {
	ID        uint   `gorm:"primaryKey"`
	Email     string `gorm:"uniqueIndex;not null"`
	CreatedAt time.Time
}

func (AllowlistEntry) TableName() string {
	return "admin_allowlist"
}
