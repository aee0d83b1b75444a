package auth

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

type handlerFixture struct {
	handler    *Handler
	middleware *Middleware
	service    *Service
	repo       *mockRepository
	echo       *echo.Echo
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	repo := newMockRepository()
	svc := newTestServiceWithRepo(t, repo)
	gate := NewGate(newTestLogger(t), repo, &fakeMembers{})
	return &handlerFixture{
		handler:    NewHandler(svc, gate, newTestLogger(t)),
		middleware: NewMiddleware(newTestConfig(), newTestLogger(t), svc, gate),
		service:    svc,
		repo:       repo,
		echo:       echo.New(),
	}
}

func (f *handlerFixture) postFailure(body, secret string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/internal/login-failure", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if secret != "" {
		req.Header.Set(InternalSecretHeader, secret)
	}
	rec := httptest.NewRecorder()
	c := f.echo.NewContext(req, rec)

	guarded := f.middleware.RequireInternalSecret()(f.handler.RegisterFailure)
	_ = guarded(c)
	return rec
}

func TestHandler_RegisterFailure(t *testing.T) {
	f := newHandlerFixture(t)

	_, err := f.service.CreateUser("user@example.com", "testpass123", "")
	require.NoError(t, err)

	// First two failures count without disabling
	for i := 1; i <= 2; i++ {
		rec := f.postFailure(`{"email":"user@example.com"}`, "test-internal-secret")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Attempts int  `json:"attempts"`
			Disabled bool `json:"disabled"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, i, resp.Attempts)
		assert.False(t, resp.Disabled)
	}

	// Third failure disables the account
	rec := f.postFailure(`{"email":"user@example.com"}`, "test-internal-secret")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Attempts int  `json:"attempts"`
		Disabled bool `json:"disabled"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.Attempts)
	assert.True(t, resp.Disabled)

	user, err := f.repo.GetUserByEmail("user@example.com")
	require.NoError(t, err)
	assert.True(t, user.Disabled)
}

func TestHandler_RegisterFailure_BadSecret(t *testing.T) {
	f := newHandlerFixture(t)

	rec := f.postFailure(`{"email":"user@example.com"}`, "wrong-secret")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = f.postFailure(`{"email":"user@example.com"}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// A rejected call never counts as a failure
	_, err := f.repo.GetFailure("user@example.com")
	assert.ErrorIs(t, err, ErrFailureNotFound)
}

func TestHandler_RegisterFailure_MissingEmail(t *testing.T) {
	f := newHandlerFixture(t)

	rec := f.postFailure(`{}`, "test-internal-secret")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_Login(t *testing.T) {
	f := newHandlerFixture(t)

	_, err := f.service.CreateUser("user@example.com", "testpass123", "")
	require.NoError(t, err)

	tests := []struct {
		name     string
		body     string
		wantCode int
	}{
		{
			name:     "valid credentials",
			body:     `{"email":"user@example.com","password":"testpass123"}`,
			wantCode: http.StatusOK,
		},
		{
			name:     "wrong password",
			body:     `{"email":"user@example.com","password":"nope-nope"}`,
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "missing fields",
			body:     `{"email":"user@example.com"}`,
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(tt.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			c := f.echo.NewContext(req, rec)

			require.NoError(t, f.handler.Login(c))
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestMiddleware_RequireToken(t *testing.T) {
	f := newHandlerFixture(t)

	user, err := f.service.CreateUser("user@example.com", "testpass123", "")
	require.NoError(t, err)
	token, err := f.service.GenerateToken(user)
	require.NoError(t, err)

	next := func(c echo.Context) error {
		claims, ok := ClaimsFrom(c)
		require.True(t, ok)
		return c.JSON(http.StatusOK, echo.Map{"email": claims.Email})
	}

	tests := []struct {
		name     string
		header   string
		wantCode int
	}{
		{
			name:     "valid token",
			header:   "Bearer " + token,
			wantCode: http.StatusOK,
		},
		{
			name:     "missing token",
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "garbage token",
			header:   "Bearer not.a.token",
			wantCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/admin/users", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			c := f.echo.NewContext(req, rec)

			_ = f.middleware.RequireToken()(next)(c)
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestHandler_AllowlistRoundTrip(t *testing.T) {
	f := newHandlerFixture(t)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/allowlist",
		strings.NewReader(`{"email":"Admin@Example.com"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, f.handler.AddAllowlistEntry(f.echo.NewContext(req, rec)))
	require.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/admin/allowlist", nil)
	rec = httptest.NewRecorder()
	require.NoError(t, f.handler.ListAllowlist(f.echo.NewContext(req, rec)))

	var resp struct {
		Members []string `json:"members"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{"admin@example.com"}, resp.Members)

	req = httptest.NewRequest(http.MethodPost, "/api/admin/allowlist",
		strings.NewReader(`{"email":"not-an-email"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec = httptest.NewRecorder()
	require.NoError(t, f.handler.AddAllowlistEntry(f.echo.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
