package services

import (
	"opsconsole/internal/core/domain/model/kernel"
	"opsconsole/internal/core/domain/model/user"
	"opsconsole/internal/pkg/errs"
)

// Caller identifies the authenticated user performing an operation.
type Caller struct {
	ID   kernel.UUID
	Role user.Role
}

// Scope describes which orders a caller may see. An unrestricted scope
// covers all orders; a restricted scope only covers orders owned by OwnerID.
type Scope struct {
	OwnerID    kernel.UUID
	restricted bool
}

// IsRestricted reports whether the scope is limited to a single owner.
func (s Scope) IsRestricted() bool {
	return s.restricted
}

// AccessPolicy is a domain service implementing role-based visibility and
// mutation rules for orders.
//
// Business rules:
//   - Admins see and mutate every order; regular users only their own.
//   - A non-owner's read of another user's order is Forbidden, which is
//     surfaced distinctly from NotFound: the caller learns the order exists
//     but is off limits.
//   - Only admins may drive status transitions.
type AccessPolicy struct{}

// NewAccessPolicy creates a new AccessPolicy instance.
func NewAccessPolicy() AccessPolicy {
	return AccessPolicy{}
}

// ScopeFor returns the listing scope for the caller: unrestricted for
// admins, owner-restricted for everyone else.
func (p AccessPolicy) ScopeFor(caller Caller) Scope {
	if caller.Role.IsAdmin() {
		return Scope{}
	}
	return Scope{OwnerID: caller.ID, restricted: true}
}

// CanViewOrder checks whether the caller may read an order owned by ownerID.
// Returns an AccessForbiddenError for non-owner non-admin callers.
func (p AccessPolicy) CanViewOrder(caller Caller, ownerID kernel.UUID) error {
	if caller.Role.IsAdmin() || caller.ID.IsEqual(ownerID) {
		return nil
	}
	return errs.NewAccessForbiddenError("view order")
}

// CanModifyOrder checks whether the caller may edit or delete an order
// owned by ownerID. Ownership and admin role both grant access; order
// status is enforced separately by the aggregate.
func (p AccessPolicy) CanModifyOrder(caller Caller, ownerID kernel.UUID) error {
	if caller.Role.IsAdmin() || caller.ID.IsEqual(ownerID) {
		return nil
	}
	return errs.NewAccessForbiddenError("modify order")
}

// CanTransitionStatus checks whether the caller may change order statuses.
// Status transitions are an admin-only operation regardless of ownership.
func (p AccessPolicy) CanTransitionStatus(caller Caller) error {
	if caller.Role.IsAdmin() {
		return nil
	}
	return errs.NewAccessForbiddenError("change order status")
}

// CanManageUsers checks whether the caller may administer user accounts.
func (p AccessPolicy) CanManageUsers(caller Caller) error {
	if caller.Role.IsAdmin() {
		return nil
	}
	return errs.NewAccessForbiddenError("manage users")
}
