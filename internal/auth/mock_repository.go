package auth

import (
	"strings"
	"sync"

	"github.com/google/uuid"
)

type mockRepository struct {
	usersByID    map[string]*User
	usersByEmail map[string]*User
	failures     map[string]*LoginFailure
	allowlist    []AllowlistEntry
	mu           sync.RWMutex
}

func newMockRepository() *mockRepository {
	return &mockRepository{
		usersByID:    make(map[string]*User),
		usersByEmail: make(map[string]*User),
		failures:     make(map[string]*LoginFailure),
	}
}

func (r *mockRepository) CreateUser(user *User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.usersByEmail[user.Email]; exists {
		return ErrUserExists
	}

	newUser := &User{
		ID:           user.ID,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		DisplayName:  user.DisplayName,
		Admin:        user.Admin,
		Disabled:     user.Disabled,
	}
	if newUser.ID == "" {
		newUser.ID = uuid.NewString()
	}

	r.usersByID[newUser.ID] = newUser
	r.usersByEmail[newUser.Email] = newUser
	return nil
}

func (r *mockRepository) GetUserByEmail(email string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, exists := r.usersByEmail[email]
	if !exists {
		return nil, ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *mockRepository) GetUserByID(id string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, exists := r.usersByID[id]
	if !exists {
		return nil, ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *mockRepository) ListUsers() ([]User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]User, 0, len(r.usersByID))
	for _, user := range r.usersByID {
		users = append(users, *user)
	}
	return users, nil
}

func (r *mockRepository) DeleteUser(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, exists := r.usersByID[id]
	if !exists {
		return ErrUserNotFound
	}
	delete(r.usersByID, id)
	delete(r.usersByEmail, user.Email)
	return nil
}

func (r *mockRepository) SetUserDisabled(id string, disabled bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, exists := r.usersByID[id]
	if !exists {
		return ErrUserNotFound
	}
	user.Disabled = disabled
	return nil
}

func (r *mockRepository) SetUserAdmin(id string, admin bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, exists := r.usersByID[id]
	if !exists {
		return ErrUserNotFound
	}
	user.Admin = admin
	return nil
}

func (r *mockRepository) GetFailure(email string) (*LoginFailure, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	failure, exists := r.failures[email]
	if !exists {
		return nil, ErrFailureNotFound
	}
	copied := *failure
	return &copied, nil
}

func (r *mockRepository) SaveFailure(failure *LoginFailure) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *failure
	r.failures[failure.Email] = &copied
	return nil
}

func (r *mockRepository) DeleteFailure(email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.failures, email)
	return nil
}

func (r *mockRepository) ListAllowlist() ([]AllowlistEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]AllowlistEntry, len(r.allowlist))
	copy(entries, r.allowlist)
	return entries, nil
}

func (r *mockRepository) AddAllowlistEntry(email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, entry := range r.allowlist {
		if strings.EqualFold(entry.Email, email) {
			return nil
		}
	}
	r.allowlist = append(r.allowlist, AllowlistEntry{
		ID:    uint(len(r.allowlist) + 1),
		Email: email,
	})
	return nil
}

func (r *mockRepository) RemoveAllowlistEntry(email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.allowlist[:0]
	for _, entry := range r.allowlist {
		if !strings.EqualFold(entry.Email, email) {
			kept = append(kept, entry)
		}
	}
	r.allowlist = kept
	return nil
}
