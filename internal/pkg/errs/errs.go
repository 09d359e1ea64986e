package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrObjectNotFound    = errors.New("object not found")
	ErrValueIsInvalid    = errors.New("value is invalid")
	ErrValueIsOutOfRange = errors.New("value is out of range")
	ErrValueIsRequired   = errors.New("value is required")
	ErrQuantityIsInvalid = errors.New("quantity is invalid")
	ErrCapacityExceeded  = errors.New("capacity is exceeded")
	ErrContentMismatch   = errors.New("content mismatch")
	ErrInsufficientStock = errors.New("stock is insufficient")
)

// ObjectNotFoundError reports a lookup by identifier that found nothing.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{
		ParamName: paramName,
		ID:        id,
	}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{
		ParamName: paramName,
		ID:        id,
		Cause:     cause,
	}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %v)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError reports a value that failed a non-range check.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{
		ParamName: paramName,
	}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{
		ParamName: paramName,
		Cause:     cause,
	}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError reports a value outside the inclusive [Min, Max] range.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value any, minValue any, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{
		ParamName: paramName,
		Value:     value,
		Min:       minValue,
		Max:       maxValue,
	}
}

func NewValueIsOutOfRangeErrorWithCause(
	paramName string,
	value any,
	minValue any,
	maxValue any,
	cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{
		ParamName: paramName,
		Value:     value,
		Min:       minValue,
		Max:       maxValue,
		Cause:     cause,
	}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, sanitize(e.Value), e.ParamName, e.Min, e.Max)
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %v)", msg, e.Cause)
	}
	return msg
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError reports a required value that was never supplied.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{
		ParamName: paramName,
	}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{
		ParamName: paramName,
		Cause:     cause,
	}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// QuantityIsInvalidError reports a stock change that would leave an item with
// a negative quantity, or a change that references no item at all.
type QuantityIsInvalidError struct {
	ItemName string
	Current  int
	Delta    int
	Cause    error
}

func NewQuantityIsInvalidError(itemName string, current int, delta int) *QuantityIsInvalidError {
	return &QuantityIsInvalidError{
		ItemName: itemName,
		Current:  current,
		Delta:    delta,
	}
}

func NewQuantityIsInvalidErrorWithCause(itemName string, current int, delta int, cause error) *QuantityIsInvalidError {
	return &QuantityIsInvalidError{
		ItemName: itemName,
		Current:  current,
		Delta:    delta,
		Cause:    cause,
	}
}

func (e *QuantityIsInvalidError) Error() string {
	msg := fmt.Sprintf("%s: %s has %d, cannot apply %d",
		ErrQuantityIsInvalid, sanitize(e.ItemName), e.Current, e.Delta)
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %v)", msg, e.Cause)
	}
	return msg
}

func (e *QuantityIsInvalidError) Unwrap() error {
	return ErrQuantityIsInvalid
}

// CapacityExceededError reports cargo larger than the vehicle can carry.
type CapacityExceededError struct {
	Vehicle  string
	Units    int
	Capacity int
}

func NewCapacityExceededError(vehicle string, units int, capacity int) *CapacityExceededError {
	return &CapacityExceededError{
		Vehicle:  vehicle,
		Units:    units,
		Capacity: capacity,
	}
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("%s: %s carries %d units, capacity is %d",
		ErrCapacityExceeded, e.Vehicle, e.Units, e.Capacity)
}

func (e *CapacityExceededError) Unwrap() error {
	return ErrCapacityExceeded
}

// ContentMismatchError reports an item the vehicle is not allowed to carry.
type ContentMismatchError struct {
	Vehicle  string
	ItemName string
}

func NewContentMismatchError(vehicle string, itemName string) *ContentMismatchError {
	return &ContentMismatchError{
		Vehicle:  vehicle,
		ItemName: itemName,
	}
}

func (e *ContentMismatchError) Error() string {
	return fmt.Sprintf("%s: %s cannot carry %s", ErrContentMismatch, e.Vehicle, sanitize(e.ItemName))
}

func (e *ContentMismatchError) Unwrap() error {
	return ErrContentMismatch
}

// InsufficientStockError reports a removal of more units than are held.
type InsufficientStockError struct {
	ItemName  string
	Requested int
	Available int
	Cause     error
}

func NewInsufficientStockError(itemName string, requested int, available int) *InsufficientStockError {
	return &InsufficientStockError{
		ItemName:  itemName,
		Requested: requested,
		Available: available,
	}
}

func NewInsufficientStockErrorWithCause(
	itemName string,
	requested int,
	available int,
	cause error,
) *InsufficientStockError {
	return &InsufficientStockError{
		ItemName:  itemName,
		Requested: requested,
		Available: available,
		Cause:     cause,
	}
}

func (e *InsufficientStockError) Error() string {
	msg := fmt.Sprintf("%s: %s requested %d, available %d",
		ErrInsufficientStock, sanitize(e.ItemName), e.Requested, e.Available)
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %v)", msg, e.Cause)
	}
	return msg
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}

func sanitize(v any) string {
	s, ok := v.(string)
	if !ok {
		s = fmt.Sprintf("%v", v)
	}
	return strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(s)
}
