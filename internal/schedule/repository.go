package schedule

import (
	"errors"

	"gorm.io/gorm"
)

var ErrEventNotFound = errors.New("event not found")

type Repository interface {
	Create(event *Event) error
	Update(event *Event) error
	Delete(id uint) error
	GetByID(id uint) (*Event, error)
	ListAll() ([]Event, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(event *Event) error {
	return r.db.Create(event).Error
}

func (r *repository) Update(event *Event) error {
	return r.db.Save(event).Error
}

func (r *repository) Delete(id uint) error {
	result := r.db.Delete(&Event{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEventNotFound
	}
	return nil
}

func (r *repository) GetByID(id uint) (*Event, error) {
	var event Event
	if err := r.db.First(&event, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return &event, nil
}

func (r *repository) ListAll() ([]Event, error) {
	var events []Event
	if err := r.db.Order("date, start_time").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}
