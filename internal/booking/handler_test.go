package booking

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postBooking(t *testing.T, h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	require.NoError(t, h.Submit(c))
	return rec
}

func TestHandler_Submit(t *testing.T) {
	svc, repo, mailer := newTestService(t)
	h := NewHandler(newTestLogger(t), svc)

	rec := postBooking(t, h,
		`{"name":"Jane Doe","town":"Peoria","date":"2025-05-01","phone":"3095551234"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		OK bool `json:"ok"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.OK)

	requests, err := repo.List()
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Equal(t, "Jane Doe", requests[0].Name)
	assert.Equal(t, 1, mailer.sentCount())
}

func TestHandler_Submit_Validation(t *testing.T) {
	svc, repo, _ := newTestService(t)
	h := NewHandler(newTestLogger(t), svc)

	tests := []struct {
		name string
		body string
	}{
		{name: "missing name", body: `{"town":"Peoria","date":"2025-05-01"}`},
		{name: "missing town", body: `{"name":"Jane Doe","date":"2025-05-01"}`},
		{name: "bad date", body: `{"name":"Jane Doe","town":"Peoria","date":"May 1st"}`},
		{name: "bad email", body: `{"name":"Jane Doe","town":"Peoria","date":"2025-05-01","email":"nope"}`},
		{name: "bad phone", body: `{"name":"Jane Doe","town":"Peoria","date":"2025-05-01","phone":"abc"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postBooking(t, h, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}

	requests, err := repo.List()
	require.NoError(t, err)
	assert.Empty(t, requests)
}

func TestHandler_Submit_MailNotConfigured(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(newTestLogger(t), repo, &fakeMailer{configured: false}, &fakeVerifier{})
	h := NewHandler(newTestLogger(t), svc)

	rec := postBooking(t, h,
		`{"name":"Jane Doe","town":"Peoria","date":"2025-05-01"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "mail transport not configured")
}

func TestHandler_Submit_ChallengeRejected(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(newTestLogger(t), repo, &fakeMailer{configured: true},
		&fakeVerifier{err: ErrChallengeFailed})
	h := NewHandler(newTestLogger(t), svc)

	rec := postBooking(t, h,
		`{"name":"Jane Doe","town":"Peoria","date":"2025-05-01","challengeToken":"bad"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
