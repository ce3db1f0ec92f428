// Package types defines the domain model shared across traindesk.
package types

import "strings"

// RequestStatus is the lifecycle field of a course request.
//
// A rejected request carries its reason inline in the status value
// ("rejected: <reason>"), not in a separate field. The record format on
// disk has exactly four columns, so the reason has nowhere else to live.
type RequestStatus string

const (
	// StatusPending marks a request awaiting a manager decision.
	StatusPending RequestStatus = "pending"
	// StatusApproved is a terminal state.
	StatusApproved RequestStatus = "approved"

	// rejectedPrefix starts every rejected status value.
	rejectedPrefix = "rejected: "
)

// Rejected builds the terminal rejected status carrying the denial reason.
func Rejected(reason string) RequestStatus {
	return RequestStatus(rejectedPrefix + reason)
}

// IsPending reports whether the request still needs a decision.
func (s RequestStatus) IsPending() bool {
	return s == StatusPending
}

// IsRejected reports whether the status is a rejection (with any reason).
func (s RequestStatus) IsRejected() bool {
	return strings.HasPrefix(string(s), rejectedPrefix)
}

// RejectionReason returns the free-text reason of a rejected status,
// or "" if the status is not a rejection.
func (s RequestStatus) RejectionReason() string {
	if !s.IsRejected() {
		return ""
	}
	return strings.TrimPrefix(string(s), rejectedPrefix)
}

// Employee is a loaded employee record. Immutable after load; the system
// never writes employee records back.
type Employee struct {
	Username string   // unique key, format "emp@<name>"
	Role     string   // stored but otherwise unused
	Skills   []string // language tags, order as loaded
}

// HasSkill reports whether the employee lists the given language.
// Matching is case-sensitive, like every lookup in the system.
func (e Employee) HasSkill(language string) bool {
	for _, s := range e.Skills {
		if s == language {
			return true
		}
	}
	return false
}

// Training is a training offering. Date is an opaque display value and is
// never parsed as a calendar type.
type Training struct {
	Language string // unique key
	Date     string
}

// CourseRequest is one line of the request ledger. Requests have no unique
// identifier; their identity is positional (line order in the ledger).
type CourseRequest struct {
	EmployeeName string
	CourseName   string
	Date         string
	Status       RequestStatus
}

// IdentityRole tags the two variants of an authenticated identity.
type IdentityRole string

const (
	RoleEmployee IdentityRole = "employee"
	RoleManager  IdentityRole = "manager"
)

// Identity is the result of authentication, resolved once per session.
// It is a tagged variant: role-specific behavior is a switch over Role.
// Skills is populated for employees only; managers never carry skill data.
type Identity struct {
	Role     IdentityRole
	Username string
	Skills   []string
}
