package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHumanizeApproximateDuration(t *testing.T) {
	assert.Equal(t, "42s", HumanizeApproximateDuration(42*time.Second))
	assert.Equal(t, "5m", HumanizeApproximateDuration(5*time.Minute+10*time.Second))
	assert.Equal(t, "3h", HumanizeApproximateDuration(3*time.Hour))
	assert.Equal(t, "2d", HumanizeApproximateDuration(50*time.Hour))
	assert.Equal(t, "2mo", HumanizeApproximateDuration(61*24*time.Hour))
	assert.Equal(t, "1y", HumanizeApproximateDuration(400*24*time.Hour))
}

func TestHumanizeCount(t *testing.T) {
	tests := map[int]string{
		0:          "0",
		999:        "999",
		1000:       "1k",
		12345:      "12.3k",
		10000:      "10k",
		2500000:    "2.5M",
		3000000000: "3G",
	}
	for n, want := range tests {
		assert.Equal(t, want, HumanizeCount(n), "%d", n)
	}
	assert.Equal(t, "1.5k", HumanizeCount(uint64(1500)))
}
