// Package invoke dispatches registry operations by name with positional string
// arguments, the way a ledger invocation carries them.
package invoke

import (
	"context"
	"fmt"
	"strconv"

	"github.com/sandeepmed2/property-registration/pkg/auth"
	"github.com/sandeepmed2/property-registration/pkg/registry"
)

// Request is one named invocation.
type Request struct {
	Operation string   `json:"operation"`
	Args      []string `json:"args"`
	Role      string   `json:"role"`
}

// ErrUnknownOperation is returned for an operation name outside the table.
var ErrUnknownOperation = fmt.Errorf("%w: unknown operation", registry.ErrValidation)

// ErrArgumentCount is returned when the number of arguments does not match the operation.
var ErrArgumentCount = fmt.Errorf("%w: wrong number of arguments", registry.ErrValidation)

type handler struct {
	params []string
	run    func(ctx context.Context, reg registry.Registry, args []string) (any, error)
}

var operations = map[string]handler{
	registry.OpRequestAccount: {
		params: []string{"name", "email", "phone", "taxId"},
		run: func(ctx context.Context, reg registry.Registry, args []string) (any, error) {
			return reg.RequestAccount(ctx, registry.AccountRequestInput{
				Name: args[0], Email: args[1], Phone: args[2], TaxID: args[3],
			})
		},
	},
	registry.OpApproveAccount: {
		params: []string{"name", "taxId"},
		run: func(ctx context.Context, reg registry.Registry, args []string) (any, error) {
			return reg.ApproveAccount(ctx, args[0], args[1])
		},
	},
	registry.OpViewAccount: {
		params: []string{"name", "taxId"},
		run: func(ctx context.Context, reg registry.Registry, args []string) (any, error) {
			return reg.ViewAccount(ctx, args[0], args[1])
		},
	},
	registry.OpRecharge: {
		params: []string{"name", "taxId", "rechargeCode"},
		run: func(ctx context.Context, reg registry.Registry, args []string) (any, error) {
			return nil, reg.Recharge(ctx, args[0], args[1], args[2])
		},
	},
	registry.OpRequestProperty: {
		params: []string{"ownerName", "ownerTaxId", "propertyId", "price"},
		run: func(ctx context.Context, reg registry.Registry, args []string) (any, error) {
			price, err := strconv.ParseInt(args[3], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: %q is not an integer", registry.ErrInvalidPrice, args[3])
			}
			return reg.RequestProperty(ctx, registry.PropertyRequestInput{
				OwnerName: args[0], OwnerTaxID: args[1], PropertyID: args[2], Price: price,
			})
		},
	},
	registry.OpApproveProperty: {
		params: []string{"propertyId"},
		run: func(ctx context.Context, reg registry.Registry, args []string) (any, error) {
			return reg.ApproveProperty(ctx, args[0])
		},
	},
	registry.OpViewProperty: {
		params: []string{"propertyId"},
		run: func(ctx context.Context, reg registry.Registry, args []string) (any, error) {
			return reg.ViewProperty(ctx, args[0])
		},
	},
	registry.OpUpdateStatus: {
		params: []string{"propertyId", "ownerName", "ownerTaxId", "newStatus"},
		run: func(ctx context.Context, reg registry.Registry, args []string) (any, error) {
			return nil, reg.UpdateStatus(ctx, args[0], args[1], args[2], args[3])
		},
	},
	registry.OpPurchase: {
		params: []string{"propertyId", "buyerName", "buyerTaxId"},
		run: func(ctx context.Context, reg registry.Registry, args []string) (any, error) {
			return nil, reg.Purchase(ctx, args[0], args[1], args[2])
		},
	},
}

// Dispatcher runs named invocations against a Registry.
type Dispatcher struct {
	Registry registry.Registry
}

// NewDispatcher creates a new Dispatcher.
func NewDispatcher(reg registry.Registry) *Dispatcher {
	return &Dispatcher{Registry: reg}
}

// Invoke runs req with its role claim attached to ctx. The result is nil for
// operations that return nothing on success.
func (d *Dispatcher) Invoke(ctx context.Context, req Request) (any, error) {
	op, ok := operations[req.Operation]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOperation, req.Operation)
	}
	if len(req.Args) != len(op.params) {
		return nil, fmt.Errorf("%w: %s takes %v, got %d", ErrArgumentCount, req.Operation, op.params, len(req.Args))
	}

	result, err := op.run(auth.WithClaim(ctx, req.Role), d.Registry, req.Args)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Operations lists every operation name the dispatcher accepts.
func Operations() []string {
	names := make([]string, 0, len(operations))
	for name := range operations {
		names = append(names, name)
	}
	return names
}
