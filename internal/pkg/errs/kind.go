package errs

import "errors"

// Kind is the closed set of domain error categories.
type Kind int

const (
	KindUnknown Kind = iota
	KindInvalidValue
	KindIncompleteValue
	KindInvalidQuantity
	KindCapacityExceeded
	KindContentMismatch
	KindUnknownItem
	KindInsufficientStock
)

func getKindStrings() map[Kind]string {
	return map[Kind]string{
		KindUnknown:           "Unknown",
		KindInvalidValue:      "InvalidValue",
		KindIncompleteValue:   "IncompleteValue",
		KindInvalidQuantity:   "InvalidQuantity",
		KindCapacityExceeded:  "CapacityExceeded",
		KindContentMismatch:   "ContentMismatch",
		KindUnknownItem:       "UnknownItem",
		KindInsufficientStock: "InsufficientStock",
	}
}

func (k Kind) String() string {
	if str, ok := getKindStrings()[k]; ok {
		return str
	}
	return "Unknown"
}

// KindOf classifies err. The most specific category wins when err joins several:
// a sales failure wraps the stock builder's quantity error, and is still
// reported as InsufficientStock.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, ErrInsufficientStock):
		return KindInsufficientStock
	case errors.Is(err, ErrObjectNotFound):
		return KindUnknownItem
	case errors.Is(err, ErrCapacityExceeded):
		return KindCapacityExceeded
	case errors.Is(err, ErrContentMismatch):
		return KindContentMismatch
	case errors.Is(err, ErrQuantityIsInvalid):
		return KindInvalidQuantity
	case errors.Is(err, ErrValueIsRequired):
		return KindIncompleteValue
	case errors.Is(err, ErrValueIsInvalid), errors.Is(err, ErrValueIsOutOfRange):
		return KindInvalidValue
	default:
		return KindUnknown
	}
}
