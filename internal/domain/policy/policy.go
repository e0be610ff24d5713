// Package policy decides whether an identity may perform an operation.
package policy

import (
	"github.com/amirhossein-jamali/gift-tracker/internal/domain/entity"
	errs "github.com/amirhossein-jamali/gift-tracker/internal/domain/error"
)

// Operation names a guarded use-case operation
type Operation string

const (
	OpCreateUser           Operation = "user.create"
	OpDeleteUser           Operation = "user.delete"
	OpListUsers            Operation = "user.list"
	OpCreateEvent          Operation = "event.create"
	OpDeleteEvent          Operation = "event.delete"
	OpViewGlobalSettlement Operation = "settlement.global"

	OpDeletePurchase Operation = "purchase.delete"

	OpListEvents          Operation = "event.list"
	OpViewEvent           Operation = "event.view"
	OpAddPurchase         Operation = "purchase.add"
	OpListOwnPurchases    Operation = "purchase.list_own"
	OpViewEventSettlement Operation = "settlement.event"
)

// Class groups operations by who may run them
type Class int

const (
	// ClassAuthenticated allows any logged-in identity
	ClassAuthenticated Class = iota
	// ClassAdminOnly allows the administrator only
	ClassAdminOnly
	// ClassOwnerOnly allows the identity that owns the target resource only
	ClassOwnerOnly
)

func (c Class) String() string {
	switch c {
	case ClassAdminOnly:
		return "admin-only"
	case ClassOwnerOnly:
		return "owner-only"
	default:
		return "authenticated"
	}
}

var classes = map[Operation]Class{
	OpCreateUser:           ClassAdminOnly,
	OpDeleteUser:           ClassAdminOnly,
	OpListUsers:            ClassAdminOnly,
	OpCreateEvent:          ClassAdminOnly,
	OpDeleteEvent:          ClassAdminOnly,
	OpViewGlobalSettlement: ClassAdminOnly,
	OpDeletePurchase:       ClassOwnerOnly,
	OpListEvents:           ClassAuthenticated,
	OpViewEvent:            ClassAuthenticated,
	OpAddPurchase:          ClassAuthenticated,
	OpListOwnPurchases:     ClassAuthenticated,
	OpViewEventSettlement:  ClassAuthenticated,
}

// ClassOf returns the class of op. Unknown operations are admin-only.
func ClassOf(op Operation) Class {
	c, ok := classes[op]
	if !ok {
		return ClassAdminOnly
	}
	return c
}

// Authorize checks that actor may run op. Owner-only operations are only
// checked for authentication here; use AuthorizeOwner once the target is loaded.
func Authorize(actor entity.Identity, op Operation) error {
	if !actor.IsAuthenticated() {
		return errs.ErrUnauthenticated
	}

	if ClassOf(op) == ClassAdminOnly && !actor.IsAdmin() {
		return errs.NewAuthorizationError(string(op), actor.String(), "this action is restricted to the administrator")
	}

	return nil
}

// AuthorizeOwner checks that actor may run the owner-only op on a resource owned by ownerID
func AuthorizeOwner(actor entity.Identity, op Operation, ownerID uint64) error {
	if err := Authorize(actor, op); err != nil {
		return err
	}

	if actor.UserID != ownerID {
		return errs.NewAuthorizationError(string(op), actor.String(), "you can only modify your own records")
	}

	return nil
}
