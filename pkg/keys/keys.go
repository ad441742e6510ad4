package keys

import (
	"errors"
	"fmt"
	"strings"
)

// Key is the lookup key of a record in the ledger.
type Key string

// Kind identifies an entity family.
type Kind string

const (
	KindAccount  Kind = "account"
	KindProperty Kind = "property"
)

// Separator joins the namespace and the natural identifier parts of a key.
const Separator = ":"

// ErrInvalidIdentifier is returned when a natural identifier part cannot be
// encoded into a key without ambiguity.
var ErrInvalidIdentifier = errors.New("invalid identifier")

// Validate checks that every natural identifier part is non-empty and free of
// the separator. Keys built from valid parts never collide.
func Validate(ids ...string) error {
	if len(ids) == 0 {
		return fmt.Errorf("%w: no identifier given", ErrInvalidIdentifier)
	}
	for _, id := range ids {
		if strings.TrimSpace(id) == "" {
			return fmt.Errorf("%w: empty identifier", ErrInvalidIdentifier)
		}
		if strings.Contains(id, Separator) {
			return fmt.Errorf("%w: %q contains %q", ErrInvalidIdentifier, id, Separator)
		}
	}
	return nil
}

// RequestKey returns the key of the pending registration request for a natural identifier.
func RequestKey(kind Kind, ids ...string) Key {
	return build(string(kind)+"-request", ids)
}

// EntityKey returns the key of the approved entity for a natural identifier.
func EntityKey(kind Kind, ids ...string) Key {
	return build(string(kind), ids)
}

// AccountRequest returns the request key of an account identified by name and tax id.
func AccountRequest(name, taxID string) Key {
	return RequestKey(KindAccount, name, taxID)
}

// Account returns the entity key of an account identified by name and tax id.
func Account(name, taxID string) Key {
	return EntityKey(KindAccount, name, taxID)
}

// PropertyRequest returns the request key of a property.
func PropertyRequest(propertyID string) Key {
	return RequestKey(KindProperty, propertyID)
}

// Property returns the entity key of a property.
func Property(propertyID string) Key {
	return EntityKey(KindProperty, propertyID)
}

func build(namespace string, ids []string) Key {
	parts := make([]string, 0, len(ids)+1)
	parts = append(parts, namespace)
	parts = append(parts, ids...)
	return Key(strings.Join(parts, Separator))
}
