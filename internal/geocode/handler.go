// Package geocode proxies address autocomplete lookups so the site never
// ships the upstream API key to browsers.
package geocode

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/rollinggrill/streetside/internal/config"
)

type Suggestion struct {
	Label     string  `json:"label"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type Handler struct {
	config     *config.GeocodeConfig
	log        *zap.Logger
	httpClient *http.Client
}

func NewHandler(config *config.GeocodeConfig, log *zap.Logger) *Handler {
	return &Handler{
		config: config,
		log:    log,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// upstreamResponse is the wire shape returned by the geocoding provider.
type upstreamResponse struct {
	Features []struct {
		Properties struct {
			Formatted string  `json:"formatted"`
			Latitude  float64 `json:"lat"`
			Longitude float64 `json:"lon"`
		} `json:"properties"`
	} `json:"features"`
}

// Suggest handles GET /api/geocode/suggest?q=... Lookups are best effort:
// when no API key is configured the endpoint reports itself disabled instead
// of failing, so the booking form can fall back to free-text input.
func (h *Handler) Suggest(c echo.Context) error {
	if h.config.APIKey == "" {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"enabled":     false,
			"suggestions": []Suggestion{},
		})
	}

	query := c.QueryParam("q")
	if query == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "query parameter 'q' is required",
		})
	}

	suggestions, err := h.lookup(c, query)
	if err != nil {
		h.log.Error("geocode lookup failed", zap.Error(err))
		return c.JSON(http.StatusBadGateway, map[string]string{
			"error": "geocoding service unavailable",
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"enabled":     true,
		"suggestions": suggestions,
	})
}

func (h *Handler) lookup(c echo.Context, query string) ([]Suggestion, error) {
	params := url.Values{}
	params.Set("text", query)
	params.Set("apiKey", h.config.APIKey)

	// The request context cancels the upstream call when the client moves
	// on, which matters for autocomplete where most keystrokes are
	// superseded before they resolve.
	req, err := http.NewRequestWithContext(
		c.Request().Context(),
		http.MethodGet,
		h.config.Endpoint+"?"+params.Encode(),
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build geocode request: %w", err)
	}

	resp, err := h.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach geocode service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocode service returned status %d", resp.StatusCode)
	}

	var upstream upstreamResponse
	if err := json.NewDecoder(resp.Body).Decode(&upstream); err != nil {
		return nil, fmt.Errorf("failed to decode geocode response: %w", err)
	}

	suggestions := make([]Suggestion, 0, len(upstream.Features))
	for _, feature := range upstream.Features {
		suggestions = append(suggestions, Suggestion{
			Label:     feature.Properties.Formatted,
			Latitude:  feature.Properties.Latitude,
			Longitude: feature.Properties.Longitude,
		})
	}

	return suggestions, nil
}
