// Package auth resolves a credential pair to a role-tagged identity.
//
// Authentication uses a single process-wide shared secret, not per-account
// credentials: anyone knowing the one secret can authenticate as any
// valid-looking username. That is a security weakness inherited from the
// existing deployment and kept for compatibility; replacing it means
// per-account credential lookup, which the record format does not carry.
package auth

import (
	"crypto/subtle"
	"errors"
	"strings"

	"github.com/AshishBinoy/traindesk/internal/store"
	"github.com/AshishBinoy/traindesk/pkg/types"
)

const (
	employeePrefix = "emp@"
	managerPrefix  = "mgr@"
)

var (
	// ErrAuthenticationFailed means the password did not match the shared
	// secret. Returned regardless of the username.
	ErrAuthenticationFailed = errors.New("authentication failed")
	// ErrUnknownUser means an emp@ username with no employee record.
	ErrUnknownUser = errors.New("unknown user")
	// ErrInvalidUsernameFormat means the username has neither role prefix.
	ErrInvalidUsernameFormat = errors.New("invalid username format")
)

// Gate validates credentials against the shared secret and the employee
// store.
type Gate struct {
	secret    string
	employees *store.EmployeeStore
}

// NewGate builds a Gate. The secret is injected configuration, never a
// package-level constant.
func NewGate(secret string, employees *store.EmployeeStore) *Gate {
	return &Gate{secret: secret, employees: employees}
}

// Authenticate checks the password against the shared secret, then routes on
// the username prefix:
//
//   - emp@ usernames resolve through the employee store and carry the
//     employee's skill set;
//   - mgr@ usernames always succeed, with no existence check and no skills —
//     any manager-shaped credential is trusted;
//   - anything else fails with ErrInvalidUsernameFormat.
func (g *Gate) Authenticate(username, password string) (types.Identity, error) {
	if subtle.ConstantTimeCompare([]byte(password), []byte(g.secret)) != 1 {
		return types.Identity{}, ErrAuthenticationFailed
	}

	switch {
	case strings.HasPrefix(username, employeePrefix):
		emp, err := g.employees.FindByUsername(username)
		if err != nil {
			return types.Identity{}, ErrUnknownUser
		}
		return types.Identity{
			Role:     types.RoleEmployee,
			Username: emp.Username,
			Skills:   emp.Skills,
		}, nil

	case strings.HasPrefix(username, managerPrefix):
		return types.Identity{
			Role:     types.RoleManager,
			Username: username,
		}, nil

	default:
		return types.Identity{}, ErrInvalidUsernameFormat
	}
}
