package menu

import (
	"errors"

	"gorm.io/gorm"
)

var (
	ErrMenuNotFound    = errors.New("menu not found")
	ErrSectionNotFound = errors.New("menu section not found")
	ErrItemNotFound    = errors.New("menu item not found")
)

type Repository interface {
	CreateMenu(menu *Menu) error
	DeleteMenu(id uint) error
	ListMenus() ([]Menu, error)
	GetActiveMenu() (*Menu, error)

	CreateSection(section *Section) error
	DeleteSection(id uint) error
	GetSection(id uint) (*Section, error)

	CreateItem(item *Item) error
	UpdateItem(item *Item) error
	DeleteItem(id uint) error
	GetItem(id uint) (*Item, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateMenu(menu *Menu) error {
	return r.db.Create(menu).Error
}

func (r *repository) DeleteMenu(id uint) error {
	result := r.db.Delete(&Menu{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMenuNotFound
	}
	return nil
}

func (r *repository) ListMenus() ([]Menu, error) {
	var menus []Menu
	err := r.db.Preload("Sections", func(db *gorm.DB) *gorm.DB {
		return db.Order("menu_sections.position")
	}).Preload("Sections.Items").Order("name").Find(&menus).Error
	if err != nil {
		return nil, err
	}
	return menus, nil
}

func (r *repository) GetActiveMenu() (*Menu, error) {
	var menu Menu
	err := r.db.Preload("Sections", func(db *gorm.DB) *gorm.DB {
		return db.Order("menu_sections.position")
	}).Preload("Sections.Items").Where("active = ?", true).First(&menu).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMenuNotFound
		}
		return nil, err
	}
	return &menu, nil
}

func (r *repository) CreateSection(section *Section) error {
	return r.db.Create(section).Error
}

func (r *repository) DeleteSection(id uint) error {
	result := r.db.Delete(&Section{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSectionNotFound
	}
	return nil
}

func (r *repository) GetSection(id uint) (*Section, error) {
	var section Section
	if err := r.db.First(&section, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSectionNotFound
		}
		return nil, err
	}
	return &section, nil
}

func (r *repository) CreateItem(item *Item) error {
	return r.db.Create(item).Error
}

func (r *repository) UpdateItem(item *Item) error {
	return r.db.Save(item).Error
}

func (r *repository) DeleteItem(id uint) error {
	result := r.db.Delete(&Item{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrItemNotFound
	}
	return nil
}

func (r *repository) GetItem(id uint) (*Item, error) {
	var item Item
	if err := r.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return &item, nil
}
