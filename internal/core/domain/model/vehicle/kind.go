package vehicle

import (
	"fmt"
	"strings"

	"supermart/internal/pkg/errs"
)

// Kind identifies a vehicle variant. Each kind fixes a capacity, a content
// rule and a cost formula.
type Kind int

const (
	// UnknownKind catches uninitialised Kind values.
	UnknownKind Kind = iota

	// Standard is an unrefrigerated truck.
	Standard

	// Refrigerated is a truck with a cold hold.
	Refrigerated
)

const (
	StandardCapacity     = 1000
	RefrigeratedCapacity = 800
)

func getKindStrings() map[Kind]string {
	return map[Kind]string{
		UnknownKind:  "Unknown",
		Standard:     "Standard",
		Refrigerated: "Refrigerated",
	}
}

// ParseKind resolves a kind name case-insensitively. "Ordinary" is accepted
// as another name for Standard, as older manifest files use it.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "standard", "ordinary":
		return Standard, nil
	case "refrigerated":
		return Refrigerated, nil
	default:
		return UnknownKind, errs.NewValueIsInvalidErrorWithCause(
			"vehicle kind",
			fmt.Errorf("%q is not Standard or Refrigerated", name),
		)
	}
}

// Validate rejects UnknownKind and out-of-range values.
func (k Kind) Validate() error {
	switch k {
	case Standard, Refrigerated:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("vehicle kind", fmt.Errorf("%d is not a valid vehicle kind", k))
	}
}

func (k Kind) String() string {
	if str, ok := getKindStrings()[k]; ok {
		return str
	}
	return "Unknown"
}

// Capacity returns the maximum number of units the kind carries, or 0 for an
// invalid kind.
func (k Kind) Capacity() int {
	switch k {
	case Standard:
		return StandardCapacity
	case Refrigerated:
		return RefrigeratedCapacity
	default:
		return 0
	}
}

// AcceptsTemperatureControlled reports whether the kind may carry items that
// need refrigeration.
func (k Kind) AcceptsTemperatureControlled() bool {
	return k == Refrigerated
}
