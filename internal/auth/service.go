package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/rollinggrill/streetside/internal/config"
)

const defaultLockoutThreshold = 3

var ErrAccountDisabled = errors.New("account is disabled")

type Service struct {
	config     *config.AuthConfig
	log        *zap.Logger
	repository Repository
}

type Claims struct {
	Email string `json:"email"`
	Admin bool   `json:"admin"`
	jwt.RegisteredClaims
}

func NewService(config *config.AuthConfig, log *zap.Logger, repo Repository) *Service {
	return &Service{
		config:     config,
		log:        log,
		repository: repo,
	}
}

// NormalizeEmail produces the identity key used throughout: lower-cased,
// trimmed.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *Service) HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func (s *Service) CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

func (s *Service) GenerateToken(user *User) (string, error) {
	expirationTime := time.Now().Add(s.config.TokenExpiration)
	claims := &Claims{
		Email: user.Email,
		Admin: user.Admin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.config.JWTSecret), nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

func (s *Service) lockoutThreshold() int {
	if s.config.LockoutThreshold > 0 {
		return s.config.LockoutThreshold
	}
	return defaultLockoutThreshold
}

// Login validates credentials and issues a token. A wrong password counts
// against the caller's failure record; the record is only cleared by an
// explicit re-enable, never by a later successful login.
func (s *Service) Login(email, password string) (string, error) {
	email = NormalizeEmail(email)

	user, err := s.repository.GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			s.HashPassword("dummy") // Prevent timing attacks
			return "", ErrUserNotFound
		}
		return "", err
	}

	if user.Disabled {
		return "", ErrAccountDisabled
	}

	if !s.CheckPasswordHash(password, user.PasswordHash) {
		if _, _, err := s.RegisterFailure(email); err != nil {
			s.log.Error("failed to register login failure",
				zap.String("email", email),
				zap.Error(err))
		}
		return "", ErrInvalidPassword
	}

	return s.GenerateToken(user)
}

// RegisterFailure bumps the failure count for an identity and disables the
// account once the count reaches the threshold. When the identity does not
// exist upstream the count is still persisted; the disable is skipped and
// the record's disabled flag stays false.
func (s *Service) RegisterFailure(email string) (attempts int, disabled bool, err error) {
	email = NormalizeEmail(email)
	if email == "" {
		return 0, false, errors.New("email is required")
	}

	record, err := s.repository.GetFailure(email)
	if err != nil {
		if !errors.Is(err, ErrFailureNotFound) {
			return 0, false, err
		}
		record = &LoginFailure{Email: email}
	}

	record.Attempts++
	record.LastAttempt = time.Now()

	if record.Attempts >= s.lockoutThreshold() && !record.Disabled {
		user, lookupErr := s.repository.GetUserByEmail(email)
		if lookupErr != nil {
			s.log.Warn("skipping account disable, identity lookup failed",
				zap.String("email", email),
				zap.Error(lookupErr))
		} else if disableErr := s.repository.SetUserDisabled(user.ID, true); disableErr != nil {
			s.log.Error("failed to disable account",
				zap.String("email", email),
				zap.Error(disableErr))
		} else {
			record.Disabled = true
			s.log.Warn("account disabled after repeated login failures",
				zap.String("email", email),
				zap.Int("attempts", record.Attempts))
		}
	}

	if err := s.repository.SaveFailure(record); err != nil {
		return 0, false, err
	}

	return record.Attempts, record.Disabled, nil
}

// Reenable clears the failure record and marks the account enabled, so the
// next failure starts a fresh count.
func (s *Service) Reenable(email string) error {
	email = NormalizeEmail(email)

	user, err := s.repository.GetUserByEmail(email)
	if err != nil {
		return err
	}

	if err := s.repository.SetUserDisabled(user.ID, false); err != nil {
		return err
	}

	return s.repository.DeleteFailure(email)
}

func (s *Service) CreateUser(email, password, displayName string) (*User, error) {
	email = NormalizeEmail(email)

	if _, err := s.repository.GetUserByEmail(email); err == nil {
		return nil, ErrUserExists
	}

	hashedPassword, err := s.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hashedPassword,
		DisplayName:  displayName,
	}

	if err := s.repository.CreateUser(user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *Service) DeleteUser(id string) error {
	return s.repository.DeleteUser(id)
}

func (s *Service) ListUsers() ([]User, error) {
	return s.repository.ListUsers()
}

func (s *Service) GetUser(id string) (*User, error) {
	return s.repository.GetUserByID(id)
}

func (s *Service) DisableUser(id string) (*User, error) {
	user, err := s.repository.GetUserByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.repository.SetUserDisabled(user.ID, true); err != nil {
		return nil, err
	}

	user.Disabled = true
	return user, nil
}

func (s *Service) EnableUser(id string) (*User, error) {
	user, err := s.repository.GetUserByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.Reenable(user.Email); err != nil {
		return nil, err
	}

	user.Disabled = false
	return user, nil
}

// SetAdminClaim flips the admin claim on a user; newly issued tokens carry
// the updated claim, outstanding tokens keep the old one until expiry.
func (s *Service) SetAdminClaim(id string, admin bool) (*User, error) {
	user, err := s.repository.GetUserByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.repository.SetUserAdmin(user.ID, admin); err != nil {
		return nil, err
	}

	user.Admin = admin
	return user, nil
}
