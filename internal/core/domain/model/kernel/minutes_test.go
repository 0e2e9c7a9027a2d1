package kernel_test

import (
	"testing"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMinutes(t *testing.T) {
	t.Run("accepts zero as no estimate", func(t *testing.T) {
		m, err := kernel.NewMinutes(0)

		require.NoError(t, err)
		assert.True(t, m.IsZero())
	})

	t.Run("accepts a typical estimate", func(t *testing.T) {
		m, err := kernel.NewMinutes(25)

		require.NoError(t, err)
		assert.Equal(t, 25, m.Value())
		assert.Equal(t, 25*time.Minute, m.Duration())
		assert.Equal(t, "25m", m.String())
	})

	t.Run("rejects negative values", func(t *testing.T) {
		_, err := kernel.NewMinutes(-10)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("rejects estimates above one day", func(t *testing.T) {
		_, err := kernel.NewMinutes(24*60 + 1)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("accepts the one day boundary", func(t *testing.T) {
		m, err := kernel.NewMinutes(24 * 60)

		require.NoError(t, err)
		assert.Equal(t, 24*60, m.Value())
	})
}

func TestMinutes_IsEqual(t *testing.T) {
	a, _ := kernel.NewMinutes(15)
	b, _ := kernel.NewMinutes(15)
	c, _ := kernel.NewMinutes(30)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}
