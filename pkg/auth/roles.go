package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Role is the organisational role of the caller of an invocation.
type Role int

const (
	RoleUnknown Role = iota
	// RoleApplicant may submit requests, recharge and update or purchase properties.
	RoleApplicant
	// RoleApprover may approve registration requests.
	RoleApprover
)

func (r Role) String() string {
	switch r {
	case RoleApplicant:
		return "applicant"
	case RoleApprover:
		return "approver"
	default:
		return "unknown"
	}
}

// ErrUnauthorized is returned when the caller's role does not permit an operation.
var ErrUnauthorized = errors.New("unauthorized")

// ParseRole maps a role claim to a Role. Unrecognised claims map to RoleUnknown.
func ParseRole(claim string) Role {
	switch strings.ToLower(strings.TrimSpace(claim)) {
	case "applicant":
		return RoleApplicant
	case "approver":
		return RoleApprover
	default:
		return RoleUnknown
	}
}

type claimKey struct{}

// WithClaim returns a copy of ctx carrying the caller's role claim.
func WithClaim(ctx context.Context, claim string) context.Context {
	return context.WithValue(ctx, claimKey{}, claim)
}

// Claim returns the raw role claim carried by ctx.
func Claim(ctx context.Context) string {
	claim, _ := ctx.Value(claimKey{}).(string)
	return claim
}

// CallerRole returns the role asserted by the invocation context.
func CallerRole(ctx context.Context) Role {
	return ParseRole(Claim(ctx))
}

// RequireRole fails unless the caller holds the expected role.
func RequireRole(ctx context.Context, expected Role) error {
	if got := CallerRole(ctx); got == RoleUnknown || got != expected {
		return fmt.Errorf("%w: caller role %s, operation requires %s", ErrUnauthorized, got, expected)
	}
	return nil
}
