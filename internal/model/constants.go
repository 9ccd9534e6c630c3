package model

// Approximations used throughout the demo.
const (
	Pi          = 3.141592653589793
	EulerNumber = 2.718281828459045
)

var fruits = [...]string{"apple", "banana", "cherry", "dragonfruit", "elderberry"}

// Fruits returns the fixed fruit list in order. The slice is a copy.
func Fruits() []string {
	out := make([]string, len(fruits))
	copy(out, fruits[:])
	return out
}
