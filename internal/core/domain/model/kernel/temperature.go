package kernel

import (
	"fmt"
	"math"

	"supermart/internal/pkg/errs"
)

const (
	// MinTemperature is the coldest storage temperature a refrigerated vehicle can hold.
	MinTemperature Temperature = -20
	// MaxTemperature is the warmest temperature that still counts as temperature controlled.
	// Anything warmer is a dry good and carries no temperature at all.
	MaxTemperature Temperature = 10
)

// Temperature is a storage temperature in degrees Celsius.
type Temperature float64

// NewTemperature validates that celsius lies in [MinTemperature, MaxTemperature].
//
// Example:
//
//	t, err := kernel.NewTemperature(4)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(t) // 4.0°C
func NewTemperature(celsius float64) (Temperature, error) {
	if math.IsNaN(celsius) {
		return 0, errs.NewValueIsInvalidErrorWithCause("temperature", fmt.Errorf("%v is not a number", celsius))
	}

	t := Temperature(celsius)
	if t < MinTemperature || t > MaxTemperature {
		return 0, errs.NewValueIsOutOfRangeError("temperature", celsius, float64(MinTemperature), float64(MaxTemperature))
	}
	return t, nil
}

// Clamp forces t into [MinTemperature, MaxTemperature].
func (t Temperature) Clamp() Temperature {
	switch {
	case t < MinTemperature:
		return MinTemperature
	case t > MaxTemperature:
		return MaxTemperature
	default:
		return t
	}
}

// Celsius returns the raw value.
func (t Temperature) Celsius() float64 {
	return float64(t)
}

func (t Temperature) String() string {
	return fmt.Sprintf("%.1f°C", float64(t))
}
