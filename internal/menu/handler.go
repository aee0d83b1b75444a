package menu

import (
	"errors"
	"net/http"
	"path/filepath"
	"strconv"

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

// ActiveMenu serves the public menu. No active menu is a 404, not an
// error; the site simply has nothing to show yet.
func (h *Handler) ActiveMenu(c echo.Context) error {
	menu, err := h.service.ActiveMenu()
	if err != nil {
		if errors.Is(err, ErrMenuNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "no active menu"})
		}
		h.log.Error("failed to load active menu", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, menu)
}

func (h *Handler) ListMenus(c echo.Context) error {
	menus, err := h.service.ListMenus()
	if err != nil {
		h.log.Error("failed to list menus", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"menus": menus})
}

type createMenuRequest struct {
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

func (h *Handler) CreateMenu(c echo.Context) error {
	var req createMenuRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request payload"})
	}

	menu, err := h.service.CreateMenu(req.Name, req.Active)
	if err != nil {
		return h.menuError(c, err, "failed to create menu")
	}
	return c.JSON(http.StatusOK, menu)
}

func (h *Handler) DeleteMenu(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	if err := h.service.DeleteMenu(id); err != nil {
		return h.menuError(c, err, "failed to delete menu")
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

type createSectionRequest struct {
	Name     string `json:"name"`
	Position int    `json:"position"`
}

func (h *Handler) CreateSection(c echo.Context) error {
	menuID, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	var req createSectionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request payload"})
	}

	section, err := h.service.CreateSection(menuID, req.Name, req.Position)
	if err != nil {
		return h.menuError(c, err, "failed to create section")
	}
	return c.JSON(http.StatusOK, section)
}

func (h *Handler) DeleteSection(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	if err := h.service.DeleteSection(id); err != nil {
		return h.menuError(c, err, "failed to delete section")
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

func (h *Handler) CreateItem(c echo.Context) error {
	sectionID, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	var item Item
	if err := c.Bind(&item); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request payload"})
	}

	created, err := h.service.CreateItem(sectionID, &item)
	if err != nil {
		return h.menuError(c, err, "failed to create item")
	}
	return c.JSON(http.StatusOK, created)
}

func (h *Handler) UpdateItem(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	var item Item
	if err := c.Bind(&item); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request payload"})
	}

	updated, err := h.service.UpdateItem(id, &item)
	if err != nil {
		return h.menuError(c, err, "failed to update item")
	}
	return c.JSON(http.StatusOK, updated)
}

func (h *Handler) DeleteItem(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	if err := h.service.DeleteItem(id); err != nil {
		return h.menuError(c, err, "failed to delete item")
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// UploadItemImage accepts a multipart upload under the "image" field.
func (h *Handler) UploadItemImage(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "image file is required"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.log.Error("failed to open upload", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	defer file.Close()

	item, err := h.service.AttachImage(id, file, filepath.Ext(fileHeader.Filename))
	if err != nil {
		return h.menuError(c, err, "failed to attach image")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"url":        item.ImageURL,
		"objectPath": item.ImagePath,
		"item":       item,
	})
}

func (h *Handler) DeleteItemImage(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	if _, err := h.service.RemoveImage(id); err != nil {
		return h.menuError(c, err, "failed to remove image")
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

func (h *Handler) menuError(c echo.Context, err error, msg string) error {
	switch {
	case errors.Is(err, ErrMenuNotFound),
		errors.Is(err, ErrSectionNotFound),
		errors.Is(err, ErrItemNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	case errors.Is(err, ErrInvalidName):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	default:
		h.log.Error(msg, zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
}

func pathID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	return uint(id), err
}
