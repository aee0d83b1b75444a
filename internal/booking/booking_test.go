package booking

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestLogger(t *testing.T) *zap.Logger {
	logger, err := zap.NewDevelopment()
	assert.NoError(t, err)
	return logger
}

// fakeMailer records sent notices without an SMTP server.
type fakeMailer struct {
	configured bool
	sendErr    error
	sent       []Request
	mu         sync.Mutex
}

func (m *fakeMailer) Configured() bool {
	return m.configured
}

func (m *fakeMailer) SendBookingNotice(request *Request) error {
	if !m.configured {
		return ErrMailNotConfigured
	}
	if m.sendErr != nil {
		return m.sendErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, *request)
	return nil
}

func (m *fakeMailer) sentCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sent)
}

// fakeVerifier approves or rejects every token.
type fakeVerifier struct {
	err error
}

func (v *fakeVerifier) Verify(_ context.Context, _, _ string) error {
	return v.err
}

func newTestService(t *testing.T) (*Service, *mockRepository, *fakeMailer) {
	repo := newMockRepository()
	mailer := &fakeMailer{configured: true}
	svc := NewService(newTestLogger(t), repo, mailer, &fakeVerifier{})
	return svc, repo, mailer
}
