package kernel_test

import (
	"fmt"
	"testing"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLocation(t *testing.T) {
	t.Run("should create location with valid parameters", func(t *testing.T) {
		loc, err := kernel.NewLocation("120 Broadway, New York", 40.0, -74.0)

		require.NoError(t, err)
		assert.NoError(t, loc.Validate())
		assert.Equal(t, "120 Broadway, New York", loc.Address())
		assert.InEpsilon(t, 40.0, loc.Latitude(), 1e-9)
		assert.InEpsilon(t, -74.0, loc.Longitude(), 1e-9)
	})

	t.Run("should accept boundary coordinates", func(t *testing.T) {
		testCases := []struct {
			latitude  float64
			longitude float64
		}{
			{-90, -180},
			{-90, 180},
			{90, -180},
			{90, 180},
			{0, 0},
		}

		for _, tc := range testCases {
			t.Run(fmt.Sprintf("should accept (%v,%v)", tc.latitude, tc.longitude), func(t *testing.T) {
				loc, err := kernel.NewLocation("somewhere", tc.latitude, tc.longitude)

				require.NoError(t, err)
				assert.InDelta(t, tc.latitude, loc.Latitude(), 1e-9)
				assert.InDelta(t, tc.longitude, loc.Longitude(), 1e-9)
			})
		}
	})

	t.Run("should reject empty address", func(t *testing.T) {
		_, err := kernel.NewLocation("", 40.0, -74.0)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "address")
	})

	t.Run("should reject out of range latitude", func(t *testing.T) {
		for _, latitude := range []float64{-90.0001, 90.0001, 181, -500} {
			t.Run(fmt.Sprintf("should reject latitude %v", latitude), func(t *testing.T) {
				_, err := kernel.NewLocation("somewhere", latitude, 0)

				require.Error(t, err)
				assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
				assert.Contains(t, err.Error(), "latitude")
			})
		}
	})

	t.Run("should reject out of range longitude", func(t *testing.T) {
		for _, longitude := range []float64{-180.0001, 180.0001, 360} {
			t.Run(fmt.Sprintf("should reject longitude %v", longitude), func(t *testing.T) {
				_, err := kernel.NewLocation("somewhere", 0, longitude)

				require.Error(t, err)
				assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
				assert.Contains(t, err.Error(), "longitude")
			})
		}
	})

	t.Run("should aggregate multiple validation errors", func(t *testing.T) {
		_, err := kernel.NewLocation("", 100, 200)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "address")
		assert.Contains(t, err.Error(), "latitude")
		assert.Contains(t, err.Error(), "longitude")
	})
}

func TestLocation_Validate(t *testing.T) {
	t.Run("should validate constructed location", func(t *testing.T) {
		loc, err := kernel.NewLocation("somewhere", 1, 2)

		require.NoError(t, err)
		assert.NoError(t, loc.Validate())
	})

	t.Run("should reject zero value location", func(t *testing.T) {
		var loc kernel.Location

		err := loc.Validate()
		require.Error(t, err)
		assert.Equal(t, kernel.ErrLocationIsNotConstructed, err)
	})
}

func TestLocation_IsEqual(t *testing.T) {
	t.Run("should treat identical locations as equal", func(t *testing.T) {
		loc1, _ := kernel.NewLocation("somewhere", 40.0, -74.0)
		loc2, _ := kernel.NewLocation("somewhere", 40.0, -74.0)

		equal, err := loc1.IsEqual(loc2)
		require.NoError(t, err)
		assert.True(t, equal)
	})

	t.Run("should treat different locations as not equal", func(t *testing.T) {
		loc1, _ := kernel.NewLocation("somewhere", 40.0, -74.0)
		loc2, _ := kernel.NewLocation("somewhere else", 40.0, -74.0)
		loc3, _ := kernel.NewLocation("somewhere", 40.1, -74.0)

		equal, err := loc1.IsEqual(loc2)
		require.NoError(t, err)
		assert.False(t, equal)

		equal, err = loc1.IsEqual(loc3)
		require.NoError(t, err)
		assert.False(t, equal)
	})

	t.Run("should fail comparison with unconstructed location", func(t *testing.T) {
		loc, _ := kernel.NewLocation("somewhere", 40.0, -74.0)
		var zero kernel.Location

		_, err := loc.IsEqual(zero)
		require.Error(t, err)
	})
}

func TestLocation_String(t *testing.T) {
	t.Run("should format address and coordinates", func(t *testing.T) {
		loc, _ := kernel.NewLocation("somewhere", 40.0, -74.0)

		s := loc.String()
		assert.Contains(t, s, "somewhere")
		assert.Contains(t, s, "40.0")
		assert.Contains(t, s, "-74.0")
	})
}
