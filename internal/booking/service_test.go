package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func janeDoe() *SubmitRequest {
	return &SubmitRequest{
		Name:  "Jane Doe",
		Town:  "Peoria",
		Date:  "2025-05-01",
		Phone: "3095551234",
	}
}

func TestService_Submit(t *testing.T) {
	svc, repo, mailer := newTestService(t)

	request, err := svc.Submit(context.Background(), janeDoe(), "203.0.113.7")
	require.NoError(t, err)

	// One record persisted, one email sent
	requests, err := repo.List()
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Equal(t, "Jane Doe", requests[0].Name)
	assert.Equal(t, "Peoria", requests[0].Town)
	assert.Equal(t, "2025-05-01", requests[0].Date)
	assert.Equal(t, "3095551234", requests[0].Phone)

	assert.Equal(t, 1, mailer.sentCount())
	assert.Equal(t, request.ID, requests[0].ID)
}

func TestService_Submit_NoDedup(t *testing.T) {
	// Identical payloads always create distinct records; this is the
	// expected behavior, not a defect.
	svc, repo, mailer := newTestService(t)

	_, err := svc.Submit(context.Background(), janeDoe(), "")
	require.NoError(t, err)
	_, err = svc.Submit(context.Background(), janeDoe(), "")
	require.NoError(t, err)

	requests, err := repo.List()
	require.NoError(t, err)
	assert.Len(t, requests, 2)
	assert.NotEqual(t, requests[0].ID, requests[1].ID)
	assert.Equal(t, 2, mailer.sentCount())
}

func TestService_Submit_MailNotConfigured(t *testing.T) {
	repo := newMockRepository()
	mailer := &fakeMailer{configured: false}
	svc := NewService(newTestLogger(t), repo, mailer, &fakeVerifier{})

	_, err := svc.Submit(context.Background(), janeDoe(), "")
	assert.ErrorIs(t, err, ErrMailNotConfigured)

	// Nothing persisted when the transport is unusable
	requests, err := repo.List()
	require.NoError(t, err)
	assert.Empty(t, requests)
}

func TestService_Submit_ChallengeRejected(t *testing.T) {
	repo := newMockRepository()
	mailer := &fakeMailer{configured: true}
	svc := NewService(newTestLogger(t), repo, mailer, &fakeVerifier{err: ErrChallengeFailed})

	_, err := svc.Submit(context.Background(), janeDoe(), "")
	assert.ErrorIs(t, err, ErrChallengeFailed)

	requests, err := repo.List()
	require.NoError(t, err)
	assert.Empty(t, requests)
	assert.Equal(t, 0, mailer.sentCount())
}

func TestService_Close(t *testing.T) {
	svc, repo, _ := newTestService(t)

	request, err := svc.Submit(context.Background(), janeDoe(), "")
	require.NoError(t, err)

	require.NoError(t, svc.Close(request.ID))

	requests, err := repo.List()
	require.NoError(t, err)
	assert.True(t, requests[0].Closed)

	assert.ErrorIs(t, svc.Close(9999), ErrRequestNotFound)
}
