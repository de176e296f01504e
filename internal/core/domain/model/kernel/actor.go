package kernel

import (
	"fmt"

	"pipetgo/internal/pkg/errs"
)

// Role describes what kind of user an Actor is. The role decides which order
// operations an actor may attempt; ownership checks then decide whether the
// attempt succeeds.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleClient is a customer submitting test orders to laboratories.
	RoleClient

	// RoleLabAdmin is a laboratory administrator managing one lab's services
	// and orders.
	RoleLabAdmin

	// RoleAdmin is a platform administrator with unrestricted read access.
	RoleAdmin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:  "UNKNOWN",
		RoleClient:   "CLIENT",
		RoleLabAdmin: "LAB_ADMIN",
		RoleAdmin:    "ADMIN",
	}
}

// RoleFromString parses a wire-format role name ("CLIENT", "LAB_ADMIN",
// "ADMIN") into a Role. Unknown names return an error.
func RoleFromString(s string) (Role, error) {
	for role, name := range getRoleStrings() {
		if role != RoleUnknown && name == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
}

// String returns the wire-format name of the role.
func (r Role) String() string {
	if s, ok := getRoleStrings()[r]; ok {
		return s
	}
	return "UNKNOWN"
}

// Validate checks the Role is one of the defined values.
func (r Role) Validate() error {
	if r != RoleClient && r != RoleLabAdmin && r != RoleAdmin {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// ErrActorIsNotConstructed is returned when validating a zero-value Actor,
// meaning no authenticated actor was attached to the operation.
var ErrActorIsNotConstructed = errs.NewValueIsRequiredError("Actor must be created via NewActor")

// Actor is the verified identity performing an operation: a user id plus a
// role. Authentication happens outside this core; every operation receives
// the actor as an explicit parameter so that guard evaluation stays a pure
// function of (actor, order, payload).
//
// Example:
//
//	client, err := kernel.NewActor(userID, kernel.RoleClient)
//	if err != nil {
//	    // handle error
//	}
type Actor struct {
	userID UUID
	role   Role
}

// NewActor creates an Actor from a verified user id and role.
func NewActor(userID UUID, role Role) (Actor, error) {
	if err := userID.Validate(); err != nil {
		return Actor{}, err
	}
	if err := role.Validate(); err != nil {
		return Actor{}, err
	}
	return Actor{userID: userID, role: role}, nil
}

// UserID returns the actor's user id.
func (a Actor) UserID() UUID {
	return a.userID
}

// Role returns the actor's role.
func (a Actor) Role() Role {
	return a.role
}

// IsClient reports whether the actor is a client.
func (a Actor) IsClient() bool {
	return a.role == RoleClient
}

// IsLabAdmin reports whether the actor is a lab administrator.
func (a Actor) IsLabAdmin() bool {
	return a.role == RoleLabAdmin
}

// IsAdmin reports whether the actor is a platform administrator.
func (a Actor) IsAdmin() bool {
	return a.role == RoleAdmin
}

// Validate checks the Actor was created through NewActor.
// Returns ErrActorIsNotConstructed for the zero value.
func (a Actor) Validate() error {
	if a.role == RoleUnknown {
		return ErrActorIsNotConstructed
	}
	if err := a.userID.Validate(); err != nil {
		return ErrActorIsNotConstructed
	}
	return nil
}
