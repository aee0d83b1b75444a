package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/rollinggrill/streetside/internal/config"
)

func newTestLogger(t *testing.T) *zap.Logger {
	logger, err := zap.NewDevelopment()
	assert.NoError(t, err)
	return logger
}

func newTestConfig() *config.AuthConfig {
	return &config.AuthConfig{
		JWTSecret:        "test-secret-key",
		TokenExpiration:  time.Hour,
		LockoutThreshold: 3,
		InternalSecret:   "test-internal-secret",
	}
}

func newTestService(t *testing.T) *Service {
	return newTestServiceWithRepo(t, newMockRepository())
}

func newTestServiceWithRepo(t *testing.T, repo Repository) *Service {
	return NewService(
		newTestConfig(),
		newTestLogger(t),
		repo,
	)
}

// fakeMembers is a canned MemberLister for gate tests.
type fakeMembers struct {
	members []string
	err     error
}

func (f *fakeMembers) ListMembers(_ context.Context) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.members, nil
}

var errFetchFailed = errors.New("policy fetch failed")
