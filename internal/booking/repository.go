package booking

import (
	"errors"

	"gorm.io/gorm"
)

var ErrRequestNotFound = errors.New("booking request not found")

type Repository interface {
	Create(request *Request) error
	List() ([]Request, error)
	Close(id uint) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(request *Request) error {
	return r.db.Create(request).Error
}

func (r *repository) List() ([]Request, error) {
	var requests []Request
	if err := r.db.Order("created_at DESC").Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *repository) Close(id uint) error {
	result := r.db.Model(&Request{}).Where("id = ?", id).Update("closed", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRequestNotFound
	}
	return nil
}
