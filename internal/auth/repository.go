package auth

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrUserExists      = errors.New("user already exists")
	ErrInvalidPassword = errors.New("invalid password")
	ErrFailureNotFound = errors.New("login failure record not found")
)

type Repository interface {
	CreateUser(user *User) error
	GetUserByEmail(email string) (*User, error)
	GetUserByID(id string) (*User, error)
	ListUsers() ([]User, error)
	DeleteUser(id string) error
	SetUserDisabled(id string, disabled bool) error
	SetUserAdmin(id string, admin bool) error

	GetFailure(email string) (*LoginFailure, error)
	SaveFailure(failure *LoginFailure) error
	DeleteFailure(email string) error

	ListAllowlist() ([]AllowlistEntry, error)
	AddAllowlistEntry(email string) error
	RemoveAllowlistEntry(email string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateUser(user *User) error {
	return r.db.Create(user).Error
}

func (r *repository) GetUserByEmail(email string) (*User, error) {
	var user User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *repository) GetUserByID(id string) (*User, error) {
	var user User
	if err := r.db.Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *repository) ListUsers() ([]User, error) {
	var users []User
	if err := r.db.Order("email").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *repository) DeleteUser(id string) error {
	result := r.db.Where("id = ?", id).Delete(&User{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *repository) SetUserDisabled(id string, disabled bool) error {
	result := r.db.Model(&User{}).Where("id = ?", id).Update("disabled", disabled)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *repository) SetUserAdmin(id string, admin bool) error {
	result := r.db.Model(&User{}).Where("id = ?", id).Update("admin", admin)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *repository) GetFailure(email string) (*LoginFailure, error) {
	var failure LoginFailure
	if err := r.db.Where("email = ?", email).First(&failure).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFailureNotFound
		}
		return nil, err
	}
	return &failure, nil
}

// SaveFailure upserts with merge semantics: only the tracker's own columns
// are written, anything else on the row is left alone.
func (r *repository) SaveFailure(failure *LoginFailure) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"attempts", "disabled", "last_attempt",
		}),
	}).Create(failure).Error
}

func (r *repository) DeleteFailure(email string) error {
	return r.db.Where("email = ?", email).Delete(&LoginFailure{}).Error
}

func (r *repository) ListAllowlist() ([]AllowlistEntry, error) {
	var entries []AllowlistEntry
	if err := r.db.Order("email").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *repository) AddAllowlistEntry(email string) error {
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&AllowlistEntry{Email: email}).Error
}

func (r *repository) RemoveAllowlistEntry(email string) error {
	return r.db.Where("email = ?", email).Delete(&AllowlistEntry{}).Error
}
