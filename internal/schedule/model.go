package schedule

import "time"

// Event is one calendar stop for the truck. Date is the ISO day (YYYY-MM-DD);
// StartTime and EndTime hold canonical "H:MM AM/PM" strings.
type Event struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Title     string `gorm:"not null" json:"title"`
	Town      string `json:"town"`
	Address   string `json:"address"`
	Date      string `gorm:"index;not null" json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Notes     string `json:"notes"`
	Published bool   `gorm:"default:true" json:"published"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (Event) TableName() string {
	return "events"
}
