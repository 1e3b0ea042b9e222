package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEstimateReadTime(t *testing.T) {
	u := New()

	t.Run("empty content reads in zero minutes", func(t *testing.T) {
		assert.Equal(t, 0, u.EstimateReadTime(""))
		assert.Equal(t, 0, u.EstimateReadTime("   \n\t  "))
	})

	t.Run("short content rounds up to one minute", func(t *testing.T) {
		assert.Equal(t, 1, u.EstimateReadTime("just a few words"))
	})

	t.Run("exact multiples do not round up", func(t *testing.T) {
		assert.Equal(t, 2, u.EstimateReadTime(strings.Repeat("word ", 400)))
	})

	t.Run("partial minutes round up", func(t *testing.T) {
		assert.Equal(t, 3, u.EstimateReadTime(strings.Repeat("word ", 401)))
	})
}

func TestNewULIDFromTimestamp(t *testing.T) {
	u := New()

	first, err := u.NewULIDFromTimestamp(time.Now())
	assert.NoError(t, err)
	assert.Len(t, first, 26)

	second, err := u.NewULIDFromTimestamp(time.Now())
	assert.NoError(t, err)
	assert.NotEqual(t, first, second)
}
