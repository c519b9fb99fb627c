package linkharvest_test

import (
	"testing"

	"github.com/fwojciec/linkharvest"
	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	t.Run("uses the built-in lists", func(t *testing.T) {
		t.Parallel()

		cfg := linkharvest.DefaultConfig()

		assert.Equal(t, linkharvest.DefaultTrackingParams, cfg.TrackingParams)
		assert.Equal(t, linkharvest.DefaultExcludeSelectors, cfg.ExcludeSelectors)
		assert.Equal(t, linkharvest.DefaultMainSelectors, cfg.MainSelectors)
		assert.False(t, cfg.CollapseNormalized)
	})

	t.Run("returns copies of the default lists", func(t *testing.T) {
		t.Parallel()

		cfg := linkharvest.DefaultConfig()
		cfg.MainSelectors[0] = "changed"

		assert.Equal(t, "main", linkharvest.DefaultMainSelectors[0])
	})
}
