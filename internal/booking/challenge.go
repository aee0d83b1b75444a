package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/rollinggrill/streetside/internal/config"
)

var ErrChallengeFailed = errors.New("challenge verification failed")

// ChallengeVerifier checks a bot-challenge token with the external
// verification service. Verification is skipped entirely when no secret is
// configured.
type ChallengeVerifier interface {
	Verify(ctx context.Context, token, remoteIP string) error
}

type httpVerifier struct {
	config     *config.ChallengeConfig
	log        *zap.Logger
	httpClient *http.Client
}

func NewChallengeVerifier(config *config.ChallengeConfig, log *zap.Logger) ChallengeVerifier {
	return &httpVerifier{
		config: config,
		log:    log,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (v *httpVerifier) Verify(ctx context.Context, token, remoteIP string) error {
	if v.config.Secret == "" {
		return nil
	}

	form := url.Values{}
	form.Set("secret", v.config.Secret)
	form.Set("response", token)
	if remoteIP != "" {
		form.Set("remoteip", remoteIP)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.config.VerifyURL,
		strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to build challenge request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := v.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("challenge service unreachable: %w", err)
	}
	defer resp.Body.Close()

	var result struct {
		Success    bool     `json:"success"`
		ErrorCodes []string `json:"error-codes"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("failed to decode challenge response: %w", err)
	}

	if !result.Success {
		v.log.Warn("bot challenge rejected",
			zap.Strings("errorCodes", result.ErrorCodes))
		return ErrChallengeFailed
	}

	return nil
}
