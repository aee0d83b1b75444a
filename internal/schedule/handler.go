package schedule

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type Handler struct {
	service *Service
	log     *zap.Logger
}

func NewHandler(service *Service, log *zap.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log,
	}
}

// Upcoming serves the public event list, from today onward unless a from
// day is given.
func (h *Handler) Upcoming(c echo.Context) error {
	from := c.QueryParam("from")
	if from == "" {
		from = time.Now().Format("2006-01-02")
	}

	events, err := h.service.Upcoming(from)
	if err != nil {
		h.log.Error("failed to list upcoming events", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, echo.Map{"events": events})
}

func (h *Handler) MonthCounts(c echo.Context) error {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid year"})
	}
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil || month < 1 || month > 12 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid month"})
	}

	counts, err := h.service.MonthCounts(year, month)
	if err != nil {
		h.log.Error("failed to build month counts", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, echo.Map{"counts": counts})
}

func (h *Handler) List(c echo.Context) error {
	events, err := h.service.List()
	if err != nil {
		h.log.Error("failed to list events", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"events": events})
}

func (h *Handler) Create(c echo.Context) error {
	var event Event
	if err := c.Bind(&event); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request payload"})
	}

	if err := h.service.Create(&event); err != nil {
		return h.eventError(c, err, "failed to create event")
	}

	return c.JSON(http.StatusOK, event)
}

func (h *Handler) Update(c echo.Context) error {
	id, err := eventID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid event id"})
	}

	var updated Event
	if err := c.Bind(&updated); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request payload"})
	}

	event, err := h.service.Update(id, &updated)
	if err != nil {
		return h.eventError(c, err, "failed to update event")
	}

	return c.JSON(http.StatusOK, event)
}

func (h *Handler) Delete(c echo.Context) error {
	id, err := eventID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid event id"})
	}

	if err := h.service.Delete(id); err != nil {
		return h.eventError(c, err, "failed to delete event")
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

func (h *Handler) eventError(c echo.Context, err error, msg string) error {
	switch {
	case errors.Is(err, ErrEventNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "no such event"})
	case errors.Is(err, ErrInvalidEvent):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	default:
		h.log.Error(msg, zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
}

func eventID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	return uint(id), err
}
