// Package lab contains the Lab entity. A lab publishes services and receives
// orders; it is owned by exactly one user, and every lab-side authorization
// check compares the acting user's id against that owner id.
package lab

import (
	"errors"
	"strings"

	"pipetgo/internal/core/domain/model/kernel"
	"pipetgo/internal/pkg/errs"
)

// ErrLabIsNotConstructed is returned when a Lab instance was not created
// through the NewLab constructor.
var ErrLabIsNotConstructed = errors.New("Lab must be created via NewLab constructor")

// Lab is an accredited laboratory on the marketplace.
type Lab struct {
	id          kernel.UUID
	ownerID     kernel.UUID
	name        string
	description *string

	isConstructed bool
}

// NewLab creates a Lab owned by the given user.
func NewLab(id kernel.UUID, ownerID kernel.UUID, name string) (*Lab, error) {
	l := &Lab{isConstructed: true}

	if err := errors.Join(
		l.setID(id),
		l.setOwnerID(ownerID),
		l.setName(name),
	); err != nil {
		return nil, err
	}

	return l, nil
}

// Validate ensures the Lab was created through NewLab.
func (l *Lab) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLabIsNotConstructed
	}
	return nil
}

// ID returns the lab's unique identifier.
func (l *Lab) ID() kernel.UUID {
	return l.id
}

// OwnerID returns the id of the user owning this lab. Authorization checks
// for lab-side operations compare against this id, never against the lab id.
func (l *Lab) OwnerID() kernel.UUID {
	return l.ownerID
}

// Name returns the lab name.
func (l *Lab) Name() string {
	return l.name
}

// Description returns the optional lab description.
func (l *Lab) Description() *string {
	return l.description
}

// SetDescription sets the optional description.
func (l *Lab) SetDescription(description string) {
	trimmed := strings.TrimSpace(description)
	if trimmed == "" {
		l.description = nil
		return
	}
	l.description = &trimmed
}

// IsOwnedBy reports whether the given user owns this lab.
func (l *Lab) IsOwnedBy(userID kernel.UUID) bool {
	return l.ownerID.IsEqual(userID)
}

func (l *Lab) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *Lab) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}
	l.ownerID = ownerID
	return nil
}

func (l *Lab) setName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return errs.NewValueIsRequiredError("name")
	}
	l.name = trimmed
	return nil
}
