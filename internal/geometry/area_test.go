package geometry

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/inventorydemo/internal/model"
)

func TestCalculateArea(t *testing.T) {
	for _, r := range []float64{0, 0.5, 1, 5, 12.25, 1e6} {
		got, err := CalculateArea(r)
		require.NoError(t, err)
		want := model.Pi * r * r
		if want == 0 {
			assert.Zero(t, got)
			continue
		}
		assert.InEpsilon(t, want, got, 1e-9, "radius %v", r)
	}
}

func TestCalculateAreaFive(t *testing.T) {
	got, err := CalculateArea(5)
	require.NoError(t, err)
	assert.Equal(t, "78.54", fmt.Sprintf("%.2f", got))
	assert.InDelta(t, 25*math.Pi, got, 1e-9)
}

func TestCalculateAreaNegative(t *testing.T) {
	for _, r := range []float64{-10, -0.001, math.Inf(-1)} {
		got, err := CalculateArea(r)
		require.Error(t, err)
		assert.Zero(t, got)
		assert.True(t, IsInvalidArgument(err))

		var gErr *Error
		require.ErrorAs(t, err, &gErr)
		assert.Equal(t, "INVALID_ARGUMENT", gErr.Code.String())
		assert.Contains(t, gErr.Message, "negative")
	}
}

func TestCalculateAreaNegativeMessage(t *testing.T) {
	_, err := CalculateArea(-10)
	assert.EqualError(t, err, "Radius cannot be negative: -10")
}

func TestIsInvalidArgumentThroughWrap(t *testing.T) {
	_, err := CalculateArea(-1)
	wrapped := fmt.Errorf("area: %w", err)
	assert.True(t, IsInvalidArgument(wrapped))
	assert.False(t, IsInvalidArgument(fmt.Errorf("other")))
	assert.False(t, IsInvalidArgument(nil))
}
