// Package iam fetches live project membership from the cloud resource
// manager policy endpoint. Membership is never cached; every authorization
// decision sees the current policy.
package iam

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/rollinggrill/streetside/internal/config"
)

// MemberLister resolves the identities currently granted a role on the
// cloud project.
type MemberLister interface {
	ListMembers(ctx context.Context) ([]string, error)
}

type Client struct {
	config     *config.IAMConfig
	log        *zap.Logger
	httpClient *http.Client
}

func NewClient(config *config.IAMConfig, log *zap.Logger) *Client {
	return &Client{
		config: config,
		log:    log,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type policy struct {
	Bindings []struct {
		Role    string   `json:"role"`
		Members []string `json:"members"`
	} `json:"bindings"`
}

// memberPrefixes are stripped from policy member strings to recover the
// bare identity email.
var memberPrefixes = []string{"user:", "serviceAccount:", "group:"}

func (c *Client) ListMembers(ctx context.Context) ([]string, error) {
	if c.config.ProjectID == "" {
		return nil, fmt.Errorf("iam project id is not configured")
	}

	url := fmt.Sprintf("%s/v1/projects/%s:getIamPolicy",
		strings.TrimRight(c.config.Endpoint, "/"), c.config.ProjectID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader("{}"))
	if err != nil {
		return nil, fmt.Errorf("failed to build policy request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch project policy: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("policy fetch returned status %d", resp.StatusCode)
	}

	var p policy
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return nil, fmt.Errorf("failed to decode project policy: %w", err)
	}

	seen := make(map[string]struct{})
	var members []string
	for _, binding := range p.Bindings {
		for _, member := range binding.Members {
			email := stripMemberPrefix(member)
			key := strings.ToLower(email)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			members = append(members, email)
		}
	}

	c.log.Debug("fetched project members", zap.Int("count", len(members)))

	return members, nil
}

func stripMemberPrefix(member string) string {
	for _, prefix := range memberPrefixes {
		if strings.HasPrefix(member, prefix) {
			return strings.TrimPrefix(member, prefix)
		}
	}
	return member
}
