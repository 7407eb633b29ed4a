package service

import (
	"github.com/google/uuid"

	"github.com/DianaCarolina3/recipes/internal/apperr"
	"github.com/DianaCarolina3/recipes/internal/model"
)

// AssertOwnership rejects a request unless the authenticated caller is the
// resource's owner. The owner must be resolved from persisted state, never
// from client input. Role elevation is decided at call sites, not here; this
// is a pure comparison with no I/O.
func AssertOwnership(caller, owner uuid.UUID) error {
	if caller == uuid.Nil {
		return apperr.Unauthenticated("authentication required")
	}
	if caller != owner {
		return apperr.Forbidden("you are not allowed to access this resource")
	}
	return nil
}

// canMutate applies the elevation rule shared by recipe and user mutations:
// admins may act on any resource, everyone else only on their own.
func canMutate(caller uuid.UUID, role string, owner uuid.UUID) error {
	if role == model.RoleAdmin {
		return nil
	}
	return AssertOwnership(caller, owner)
}
