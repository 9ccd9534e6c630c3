// Package geometry holds the demo's shape calculations.
package geometry

import "github.com/idilsaglam/inventorydemo/internal/model"

// CalculateArea returns the area of a circle. A negative radius is rejected with
// an INVALID_ARGUMENT Error naming the value.
func CalculateArea(radius float64) (float64, error) {
	if radius < 0 {
		return 0, NewInvalidArgumentf("Radius cannot be negative: %g", radius)
	}
	return model.Pi * radius * radius, nil
}
