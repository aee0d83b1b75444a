package auth

import (
	"errors"
	"net/http"
	"net/mail"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type Handler struct {
	service *Service
	gate    *Gate
	log     *zap.Logger
}

func NewHandler(service *Service, gate *Gate, log *zap.Logger) *Handler {
	return &Handler{
		service: service,
		gate:    gate,
		log:     log,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request payload"})
	}
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email and password are required"})
	}

	token, err := h.service.Login(req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, ErrAccountDisabled):
			return c.JSON(http.StatusForbidden, echo.Map{"error": "account is disabled"})
		case errors.Is(err, ErrUserNotFound), errors.Is(err, ErrInvalidPassword):
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
		default:
			h.log.Error("login failed", zap.Error(err))
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "login failed"})
		}
	}

	return c.JSON(http.StatusOK, echo.Map{"token": token})
}

type registerFailureRequest struct {
	Email string `json:"email"`
}

func (h *Handler) RegisterFailure(c echo.Context) error {
	var req registerFailureRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request payload"})
	}
	if req.Email == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email is required"})
	}

	attempts, disabled, err := h.service.RegisterFailure(req.Email)
	if err != nil {
		h.log.Error("failed to register login failure", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"attempts": attempts,
		"disabled": disabled,
	})
}

func (h *Handler) DisableUser(c echo.Context) error {
	user, err := h.service.DisableUser(c.Param("uid"))
	if err != nil {
		return h.userError(c, err, "failed to disable user")
	}

	h.log.Info("user disabled", zap.String("email", user.Email))
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

func (h *Handler) EnableUser(c echo.Context) error {
	user, err := h.service.EnableUser(c.Param("uid"))
	if err != nil {
		return h.userError(c, err, "failed to enable user")
	}

	h.log.Info("user enabled", zap.String("email", user.Email))
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

type createUserRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"displayName"`
}

func (h *Handler) CreateUser(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request payload"})
	}
	if !isValidEmail(req.Email) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid email format"})
	}
	if len(req.Password) < 8 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "password must be at least 8 characters"})
	}

	user, err := h.service.CreateUser(req.Email, req.Password, req.DisplayName)
	if err != nil {
		if errors.Is(err, ErrUserExists) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "email already registered"})
		}
		h.log.Error("failed to create user", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"uid":   user.ID,
		"email": user.Email,
	})
}

func (h *Handler) DeleteUser(c echo.Context) error {
	if err := h.service.DeleteUser(c.Param("uid")); err != nil {
		return h.userError(c, err, "failed to delete user")
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

func (h *Handler) ListUsers(c echo.Context) error {
	users, err := h.service.ListUsers()
	if err != nil {
		h.log.Error("failed to list users", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	out := make([]echo.Map, 0, len(users))
	for _, user := range users {
		out = append(out, echo.Map{
			"uid":         user.ID,
			"email":       user.Email,
			"displayName": user.DisplayName,
			"admin":       user.Admin,
			"disabled":    user.Disabled,
		})
	}

	return c.JSON(http.StatusOK, echo.Map{"users": out})
}

type adminClaimRequest struct {
	Admin bool `json:"admin"`
}

func (h *Handler) SetAdminClaim(c echo.Context) error {
	var req adminClaimRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request payload"})
	}

	user, err := h.service.SetAdminClaim(c.Param("uid"), req.Admin)
	if err != nil {
		return h.userError(c, err, "failed to set admin claim")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"uid":   user.ID,
		"email": user.Email,
		"admin": user.Admin,
	})
}

type allowlistRequest struct {
	Email string `json:"email"`
}

func (h *Handler) ListAllowlist(c echo.Context) error {
	entries, err := h.service.repository.ListAllowlist()
	if err != nil {
		h.log.Error("failed to list allowlist", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	members := make([]string, 0, len(entries))
	for _, entry := range entries {
		members = append(members, entry.Email)
	}

	return c.JSON(http.StatusOK, echo.Map{"members": members})
}

func (h *Handler) AddAllowlistEntry(c echo.Context) error {
	var req allowlistRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request payload"})
	}
	if !isValidEmail(req.Email) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid email format"})
	}

	email := NormalizeEmail(req.Email)
	if err := h.service.repository.AddAllowlistEntry(email); err != nil {
		h.log.Error("failed to add allowlist entry", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "added " + email,
	})
}

func (h *Handler) RemoveAllowlistEntry(c echo.Context) error {
	email := NormalizeEmail(c.Param("email"))
	if email == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email is required"})
	}

	if err := h.service.repository.RemoveAllowlistEntry(email); err != nil {
		h.log.Error("failed to remove allowlist entry", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "removed " + email,
	})
}

func (h *Handler) ListProjectMembers(c echo.Context) error {
	members, err := h.gate.members.ListMembers(c.Request().Context())
	if err != nil {
		h.log.Error("failed to list project members", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, echo.Map{"members": members})
}

func (h *Handler) userError(c echo.Context, err error, msg string) error {
	if errors.Is(err, ErrUserNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "no such user"})
	}
	h.log.Error(msg, zap.Error(err))
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
}

func isValidEmail(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}
