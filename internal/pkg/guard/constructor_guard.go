// Package guard tells values built by their constructors apart from zero values.
//
// Drafts, stops, sessions, tasks, commands and queries embed a ConstructorGuard and
// check it in Validate, so a zero value that slipped through a struct literal is
// rejected before it reaches a store.
package guard

import "errors"

// ErrDefaultConstructorGuard is reported when the owner supplies no error of its own.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is set only by NewConstructorGuard. Its zero value means "not constructed".
//
//	type Session struct {
//	    draft draft.Draft
//	    guard guard.ConstructorGuard
//	}
//
//	func (s Session) Validate() error {
//	    return s.guard.Validate(ErrSessionIsNotConstructed)
//	}
type ConstructorGuard struct {
	constructed bool
}

func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{constructed: true}
}

// IsConstructed reports whether the guard came from NewConstructorGuard.
func (g ConstructorGuard) IsConstructed() bool {
	return g.constructed
}

// Validate returns notConstructed, or ErrDefaultConstructorGuard when that is nil, for a
// zero-value guard.
func (g ConstructorGuard) Validate(notConstructed error) error {
	if g.constructed {
		return nil
	}
	if notConstructed == nil {
		return ErrDefaultConstructorGuard
	}
	return notConstructed
}
