package menu

import "time"

type Menu struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	Name     string    `gorm:"not null" json:"name"`
	Active   bool      `gorm:"default:false" json:"active"`
	Sections []Section `gorm:"foreignKey:MenuID;constraint:OnDelete:CASCADE" json:"sections,omitempty"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (Menu) TableName() string {
	return "menus"
}

type Section struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	MenuID   uint   `gorm:"index;not null" json:"menuId"`
	Name     string `gorm:"not null" json:"name"`
	Position int    `gorm:"default:0" json:"position"`
	Items    []Item `gorm:"foreignKey:SectionID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

func (Section) TableName() string {
	return "menu_sections"
}

type Item struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	SectionID   uint   `gorm:"index;not null" json:"sectionId"`
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	PriceCents  int    `gorm:"default:0" json:"priceCents"`
	ImageURL    string `json:"imageUrl"`
	// ImagePath is the stored object path; internal, never served.
	ImagePath string `json:"-"`
}

func (Item) TableName() string {
	return "menu_items"
}
