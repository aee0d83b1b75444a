package auth

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/rollinggrill/streetside/internal/iam"
)

// Gate resolves whether an authenticated identity may perform privileged
// operations, either via the stored allowlist or via live project
// membership.
type Gate struct {
	log        *zap.Logger
	repository Repository
	members    iam.MemberLister
}

func NewGate(log *zap.Logger, repo Repository, members iam.MemberLister) *Gate {
	return &Gate{
		log:        log,
		repository: repo,
		members:    members,
	}
}

// Authorize checks the admin allowlist. An empty allowlist leaves access
// unrestricted: every authenticated identity passes.
func (g *Gate) Authorize(email string) (bool, error) {
	entries, err := g.repository.ListAllowlist()
	if err != nil {
		return false, err
	}

	if len(entries) == 0 {
		return true, nil
	}

	for _, entry := range entries {
		if strings.EqualFold(entry.Email, email) {
			return true, nil
		}
	}

	return false, nil
}

// AuthorizeProject ignores the allowlist and checks live project
// membership instead. Any fetch error fails closed.
func (g *Gate) AuthorizeProject(ctx context.Context, email string) bool {
	members, err := g.members.ListMembers(ctx)
	if err != nil {
		g.log.Warn("project membership fetch failed, denying access",
			zap.String("email", email),
			zap.Error(err))
		return false
	}

	for _, member := range members {
		if strings.EqualFold(member, email) {
			return true
		}
	}

	return false
}
