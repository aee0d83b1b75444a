package social

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type Handler struct {
	client *Client
	log    *zap.Logger
}

func NewHandler(client *Client, log *zap.Logger) *Handler {
	return &Handler{
		client: client,
		log:    log,
	}
}

func (h *Handler) Posts(c echo.Context) error {
	posts, err := h.client.RecentPosts(c.Request().Context())
	if err != nil {
		h.log.Error("failed to fetch social posts", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, echo.Map{"posts": posts})
}
