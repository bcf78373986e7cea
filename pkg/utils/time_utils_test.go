package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDaysRemainingAt(t *testing.T) {
	base := int64(1_700_000_000)

	t.Run("whole days", func(t *testing.T) {
		assert.Equal(t, 30, DaysRemainingAt(base+30*secondsPerDay, base))
		assert.Equal(t, 1, DaysRemainingAt(base+secondsPerDay, base))
	})

	t.Run("partial days round up", func(t *testing.T) {
		assert.Equal(t, 1, DaysRemainingAt(base+1, base))
		assert.Equal(t, 2, DaysRemainingAt(base+secondsPerDay+1, base))
	})

	t.Run("floors at zero", func(t *testing.T) {
		assert.Equal(t, 0, DaysRemainingAt(base, base))
		assert.Equal(t, 0, DaysRemainingAt(base-1, base))
		assert.Equal(t, 0, DaysRemainingAt(base-100*secondsPerDay, base))
	})
}
