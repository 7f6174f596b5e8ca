package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZVal(t *testing.T) {
	assert.InDelta(t, 1.959964, ZVal(95), 1e-5)
	assert.InDelta(t, 2.575829, ZVal(99), 1e-5)
}

func TestScoreInterval(t *testing.T) {
	rate, hw := ScoreInterval(60, 20, 100, 95)
	assert.InDelta(t, 0.7, rate, 1e-9)
	assert.InDelta(t, 1.959964*0.0458258, hw, 1e-4)

	rate, hw = ScoreInterval(0, 0, 0, 95)
	assert.Equal(t, 0.0, rate)
	assert.Equal(t, 0.0, hw)
}
