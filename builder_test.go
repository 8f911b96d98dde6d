package densgo_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/densgo"
	"github.com/hupe1980/densgo/geom"
)

func TestBuilderValidation(t *testing.T) {
	points := []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 1}}

	t.Run("no points", func(t *testing.T) {
		_, err := densgo.Cluster[any](nil).Build()
		assert.ErrorIs(t, err, densgo.ErrNoPoints)
	})

	t.Run("capacity", func(t *testing.T) {
		_, err := densgo.Cluster[any](points).MaxPoints(1).Build()
		var ce *densgo.CapacityError
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, 2, ce.Points)
		assert.Equal(t, 1, ce.Limit)
	})

	t.Run("epsilon", func(t *testing.T) {
		for _, eps := range []float64{0, -1, math.NaN(), math.Inf(1)} {
			_, err := densgo.Cluster[any](points).Epsilon(eps).Build()
			var ie *densgo.ErrInvalidEpsilon
			assert.ErrorAs(t, err, &ie, "epsilon=%v", eps)
		}
	})

	t.Run("minPts", func(t *testing.T) {
		_, err := densgo.Cluster[any](points).MinPts(0).Build()
		assert.ErrorIs(t, err, densgo.ErrInvalidInput)
	})

	t.Run("workers", func(t *testing.T) {
		_, err := densgo.Cluster[any](points).Workers(0).Build()
		assert.ErrorIs(t, err, densgo.ErrInvalidInput)
	})

	t.Run("payload mismatch", func(t *testing.T) {
		_, err := densgo.Cluster[string](points).Data([]string{"only one"}).Build()
		var pm *densgo.ErrPayloadMismatch
		require.ErrorAs(t, err, &pm)
		assert.Equal(t, 2, pm.Points)
		assert.Equal(t, 1, pm.Payload)
	})

	t.Run("defaults are valid", func(t *testing.T) {
		c, err := densgo.Cluster[any](points).Build()
		require.NoError(t, err)
		assert.NotNil(t, c)
	})
}

func TestBuilderImmutability(t *testing.T) {
	points := []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 1}}

	base := densgo.Cluster[any](points)
	narrow := base.Epsilon(0.1)
	wide := base.Epsilon(100)

	// Both derived builders stay valid; the base default is untouched.
	_, err := base.Build()
	require.NoError(t, err)
	_, err = narrow.Build()
	require.NoError(t, err)
	_, err = wide.Build()
	require.NoError(t, err)
}

func TestMustBuildPanics(t *testing.T) {
	assert.Panics(t, func() {
		densgo.Cluster[any](nil).MustBuild()
	})
}
