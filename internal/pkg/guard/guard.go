// Package guard detects domain values that were declared instead of built.
//
// Every value object in the store domain (items, stock, vehicles, manifests)
// embeds a ConstructorGuard that only its constructor or builder sets. A zero
// value therefore fails Validate, which keeps half-initialised values out of
// the store's transactional operations.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes no
// error of its own.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard records whether the enclosing value came out of its
// designated constructor.
//
// Example:
//
//	var ErrItemIsNotConstructed = errors.New("Item must be created via item.Builder")
//
//	type Item struct {
//	    name  string
//	    guard guard.ConstructorGuard
//	}
//
//	func (i *Item) Validate() error {
//	    if i == nil {
//	        return ErrItemIsNotConstructed
//	    }
//	    return i.guard.Validate(ErrItemIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
