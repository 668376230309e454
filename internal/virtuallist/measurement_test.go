package virtuallist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdvance(t *testing.T) {
	t.Run("upgrade within tolerance", func(t *testing.T) {
		s := Advance(nil, 40, 2)
		assert.Equal(t, Measured{Value: 40}, s)

		s = Advance(s, 41, 2)
		assert.Equal(t, Measured{Value: 40, Validated: true}, s)

		s = Advance(s, 39, 2)
		assert.Equal(t, Verified{Value: 40, StableCount: 1}, s)

		s = Advance(s, 40, 2)
		assert.Equal(t, Verified{Value: 40, StableCount: 2}, s)
	})

	t.Run("stable count saturates", func(t *testing.T) {
		var s MeasurementState = Verified{Value: 40, StableCount: MaxStableCount - 1}
		for i := 0; i < 5; i++ {
			s = Advance(s, 40, 2)
		}
		assert.Equal(t, Verified{Value: 40, StableCount: MaxStableCount}, s)
	})

	t.Run("out of tolerance demotes from any state", func(t *testing.T) {
		for _, prev := range []MeasurementState{
			Measured{Value: 40},
			Measured{Value: 40, Validated: true},
			Verified{Value: 40, StableCount: 1},
			Verified{Value: 40, StableCount: MaxStableCount},
		} {
			assert.Equal(t, Measured{Value: 60}, Advance(prev, 60, 2), "from %#v", prev)
		}
	})

	t.Run("tolerance is inclusive", func(t *testing.T) {
		assert.Equal(t, Measured{Value: 40, Validated: true}, Advance(Measured{Value: 40}, 42, 2))
		assert.Equal(t, Measured{Value: 43}, Advance(Measured{Value: 40}, 43, 2))
	})
}
