package menu

import (
	"sort"
	"sync"
)

type mockRepository struct {
	menus    map[uint]*Menu
	sections map[uint]*Section
	items    map[uint]*Item
	nextID   uint
	mu       sync.RWMutex
}

func newMockRepository() *mockRepository {
	return &mockRepository{
		menus:    make(map[uint]*Menu),
		sections: make(map[uint]*Section),
		items:    make(map[uint]*Item),
		nextID:   1,
	}
}

func (r *mockRepository) id() uint {
	id := r.nextID
	r.nextID++
	return id
}

func (r *mockRepository) CreateMenu(menu *Menu) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *menu
	copied.ID = r.id()
	r.menus[copied.ID] = &copied
	menu.ID = copied.ID
	return nil
}

func (r *mockRepository) DeleteMenu(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.menus[id]; !exists {
		return ErrMenuNotFound
	}
	delete(r.menus, id)
	return nil
}

func (r *mockRepository) ListMenus() ([]Menu, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	menus := make([]Menu, 0, len(r.menus))
	for _, menu := range r.menus {
		menus = append(menus, r.assemble(menu))
	}
	sort.Slice(menus, func(i, j int) bool { return menus[i].Name < menus[j].Name })
	return menus, nil
}

func (r *mockRepository) GetActiveMenu() (*Menu, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, menu := range r.menus {
		if menu.Active {
			assembled := r.assemble(menu)
			return &assembled, nil
		}
	}
	return nil, ErrMenuNotFound
}

func (r *mockRepository) assemble(menu *Menu) Menu {
	assembled := *menu
	assembled.Sections = nil
	for _, section := range r.sections {
		if section.MenuID != menu.ID {
			continue
		}
		copied := *section
		copied.Items = nil
		for _, item := range r.items {
			if item.SectionID == section.ID {
				copied.Items = append(copied.Items, *item)
			}
		}
		assembled.Sections = append(assembled.Sections, copied)
	}
	sort.Slice(assembled.Sections, func(i, j int) bool {
		return assembled.Sections[i].Position < assembled.Sections[j].Position
	})
	return assembled
}

func (r *mockRepository) CreateSection(section *Section) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *section
	copied.ID = r.id()
	r.sections[copied.ID] = &copied
	section.ID = copied.ID
	return nil
}

func (r *mockRepository) DeleteSection(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sections[id]; !exists {
		return ErrSectionNotFound
	}
	delete(r.sections, id)
	return nil
}

func (r *mockRepository) GetSection(id uint) (*Section, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	section, exists := r.sections[id]
	if !exists {
		return nil, ErrSectionNotFound
	}
	copied := *section
	return &copied, nil
}

func (r *mockRepository) CreateItem(item *Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *item
	copied.ID = r.id()
	r.items[copied.ID] = &copied
	item.ID = copied.ID
	return nil
}

func (r *mockRepository) UpdateItem(item *Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[item.ID]; !exists {
		return ErrItemNotFound
	}
	copied := *item
	r.items[item.ID] = &copied
	return nil
}

func (r *mockRepository) DeleteItem(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[id]; !exists {
		return ErrItemNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *mockRepository) GetItem(id uint) (*Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, exists := r.items[id]
	if !exists {
		return nil, ErrItemNotFound
	}
	copied := *item
	return &copied, nil
}
