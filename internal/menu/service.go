package menu

import (
	"errors"
	"io"
	"strings"

	"go.uber.org/zap"
)

var ErrInvalidName = errors.New("name is required")

type Service struct {
	log        *zap.Logger
	repository Repository
	images     *ImageStore
}

func NewService(log *zap.Logger, repo Repository, images *ImageStore) *Service {
	return &Service{
		log:        log,
		repository: repo,
		images:     images,
	}
}

func (s *Service) CreateMenu(name string, active bool) (*Menu, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrInvalidName
	}

	menu := &Menu{Name: name, Active: active}
	if err := s.repository.CreateMenu(menu); err != nil {
		return nil, err
	}
	return menu, nil
}

func (s *Service) DeleteMenu(id uint) error {
	return s.repository.DeleteMenu(id)
}

func (s *Service) ListMenus() ([]Menu, error) {
	return s.repository.ListMenus()
}

func (s *Service) ActiveMenu() (*Menu, error) {
	return s.repository.GetActiveMenu()
}

func (s *Service) CreateSection(menuID uint, name string, position int) (*Section, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrInvalidName
	}

	section := &Section{MenuID: menuID, Name: name, Position: position}
	if err := s.repository.CreateSection(section); err != nil {
		return nil, err
	}
	return section, nil
}

func (s *Service) DeleteSection(id uint) error {
	return s.repository.DeleteSection(id)
}

func (s *Service) CreateItem(sectionID uint, item *Item) (*Item, error) {
	if strings.TrimSpace(item.Name) == "" {
		return nil, ErrInvalidName
	}

	if _, err := s.repository.GetSection(sectionID); err != nil {
		return nil, err
	}

	item.SectionID = sectionID
	if err := s.repository.CreateItem(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *Service) UpdateItem(id uint, updated *Item) (*Item, error) {
	item, err := s.repository.GetItem(id)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(updated.Name) == "" {
		return nil, ErrInvalidName
	}

	item.Name = updated.Name
	item.Description = updated.Description
	item.PriceCents = updated.PriceCents

	if err := s.repository.UpdateItem(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *Service) DeleteItem(id uint) error {
	item, err := s.repository.GetItem(id)
	if err != nil {
		return err
	}

	// Removing the stored image is a side path; never fail the delete
	s.images.Delete(item.ImagePath)

	return s.repository.DeleteItem(id)
}

// AttachImage stores a new image for an item, replacing (and best-effort
// deleting) any previous one.
func (s *Service) AttachImage(itemID uint, r io.Reader, ext string) (*Item, error) {
	item, err := s.repository.GetItem(itemID)
	if err != nil {
		return nil, err
	}

	objectPath, url, err := s.images.Save(r, ext)
	if err != nil {
		return nil, err
	}

	previous := item.ImagePath
	item.ImagePath = objectPath
	item.ImageURL = url

	if err := s.repository.UpdateItem(item); err != nil {
		// The fresh object is orphaned; remove it rather than the old one
		s.images.Delete(objectPath)
		return nil, err
	}

	s.images.Delete(previous)

	return item, nil
}

// RemoveImage clears an item's image and best-effort deletes the object.
func (s *Service) RemoveImage(itemID uint) (*Item, error) {
	item, err := s.repository.GetItem(itemID)
	if err != nil {
		return nil, err
	}

	s.images.Delete(item.ImagePath)

	item.ImagePath = ""
	item.ImageURL = ""

	if err := s.repository.UpdateItem(item); err != nil {
		return nil, err
	}
	return item, nil
}
