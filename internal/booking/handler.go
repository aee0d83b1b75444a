package booking

import (
	"errors"
	"net/http"
	"regexp"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// PhoneValidator accepts bare digit strings with optional separators, e.g.
// "3095551234" or "309-555-1234".
var PhoneValidator = func(fl validator.FieldLevel) bool {
	pattern := `^[0-9][0-9 ().+-]{6,18}$`
	matched, _ := regexp.MatchString(pattern, fl.Field().String())
	return matched
}

var fieldMessages = map[string]string{
	"Name.required":     "name is required",
	"Town.required":     "town is required",
	"Date.required":     "date is required",
	"Date.datetime":     "date must be formatted YYYY-MM-DD",
	"Email.email":       "email must be a valid address",
	"Phone.phoneformat": "phone must be a valid phone number",
}

type Handler struct {
	log      *zap.Logger
	service  *Service
	validate *validator.Validate
}

func NewHandler(log *zap.Logger, service *Service) *Handler {
	validate := validator.New()
	_ = validate.RegisterValidation("phoneformat", PhoneValidator)

	return &Handler{
		log:      log,
		service:  service,
		validate: validate,
	}
}

func (h *Handler) Submit(c echo.Context) error {
	var dto SubmitRequest
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request payload"})
	}

	if err := h.validate.Struct(dto); err != nil {
		h.log.Warn("booking validation failed", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"errors": validationMessages(err)})
	}

	_, err := h.service.Submit(c.Request().Context(), &dto, c.RealIP())
	if err != nil {
		switch {
		case errors.Is(err, ErrChallengeFailed):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "challenge verification failed"})
		case errors.Is(err, ErrMailNotConfigured):
			h.log.Error("booking rejected, mail transport not configured")
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "mail transport not configured"})
		default:
			h.log.Error("failed to submit booking request", zap.Error(err))
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
	}

	return c.JSON(http.StatusOK, echo.Map{"ok": true})
}

func (h *Handler) List(c echo.Context) error {
	requests, err := h.service.List()
	if err != nil {
		h.log.Error("failed to list booking requests", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"requests": requests})
}

func (h *Handler) Close(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	if err := h.service.Close(uint(id)); err != nil {
		if errors.Is(err, ErrRequestNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "no such booking request"})
		}
		h.log.Error("failed to close booking request", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

func validationMessages(err error) []map[string]string {
	out := make([]map[string]string, 0)

	var validationErr validator.ValidationErrors
	if errors.As(err, &validationErr) {
		for _, e := range validationErr {
			key := e.Field() + "." + e.Tag()
			msg := e.Field() + " is invalid"
			if v, ok := fieldMessages[key]; ok {
				msg = v
			}
			out = append(out, map[string]string{e.Field(): msg})
		}
	}
	return out
}
