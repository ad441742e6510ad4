package registry

import (
	"errors"
	"fmt"

	"github.com/sandeepmed2/property-registration/pkg/auth"
	"github.com/sandeepmed2/property-registration/pkg/storage"
)

// Error families. Every error returned by the registry for a rejected
// invocation wraps exactly one of these.
var (
	ErrAuthorization = auth.ErrUnauthorized
	ErrValidation    = errors.New("validation failed")
	ErrNotFound      = errors.New("not found")
	ErrConflict      = errors.New("conflict")
	ErrBusinessRule  = errors.New("business rule violated")
)

var (
	ErrInvalidCode       = fmt.Errorf("%w: invalid recharge code", ErrValidation)
	ErrInvalidStatus     = fmt.Errorf("%w: invalid property status", ErrValidation)
	ErrNoOp              = fmt.Errorf("%w: property already has this status", ErrValidation)
	ErrInvalidPrice      = fmt.Errorf("%w: price must not be negative", ErrValidation)
	ErrInvalidIdentifier = fmt.Errorf("%w: invalid identifier", ErrValidation)

	ErrRequestNotFound  = fmt.Errorf("%w: registration request", ErrNotFound)
	ErrAccountNotFound  = fmt.Errorf("%w: account", ErrNotFound)
	ErrPropertyNotFound = fmt.Errorf("%w: property", ErrNotFound)
	ErrOwnerNotFound    = fmt.Errorf("%w: owner account", ErrNotFound)

	ErrDuplicateRequest = fmt.Errorf("%w: registration already requested", ErrConflict)
	ErrAlreadyApproved  = fmt.Errorf("%w: registration already approved", ErrConflict)
	ErrSelfPurchase     = fmt.Errorf("%w: buyer already owns the property", ErrConflict)

	ErrNotForSale        = fmt.Errorf("%w: property is not on sale", ErrBusinessRule)
	ErrInsufficientFunds = fmt.Errorf("%w: insufficient funds", ErrBusinessRule)
	ErrNotOwner          = fmt.Errorf("%w: caller is not the owner", ErrBusinessRule)
)

// ErrorKind names the family of an error for transports.
type ErrorKind string

const (
	KindAuthorization ErrorKind = "authorization"
	KindValidation    ErrorKind = "validation"
	KindNotFound      ErrorKind = "not_found"
	KindConflict      ErrorKind = "conflict"
	KindBusinessRule  ErrorKind = "business_rule"
	KindInternal      ErrorKind = "internal"
)

// Kind returns the family err belongs to. Substrate conflicts that outlived
// every retry are reported as conflicts; any other failure is internal.
func Kind(err error) ErrorKind {
	switch {
	case errors.Is(err, ErrAuthorization):
		return KindAuthorization
	case errors.Is(err, ErrValidation):
		return KindValidation
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrConflict), errors.Is(err, storage.ErrConflict):
		return KindConflict
	case errors.Is(err, ErrBusinessRule):
		return KindBusinessRule
	default:
		return KindInternal
	}
}
