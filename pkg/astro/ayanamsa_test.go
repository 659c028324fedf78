package astro

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAyanamsaValue(t *testing.T) {
	assert.InDelta(t, 23.85, AyanamsaValue("lahiri", j2000), 0.01)
	assert.InDelta(t, 24.19, AyanamsaValue("Lahiri", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)), 0.05)

	at := time.Date(1990, 4, 19, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, AyanamsaValue("lahiri", at), AyanamsaValue("chitrapaksha", at))
	assert.Zero(t, AyanamsaValue("unknown", at))
	assert.Zero(t, AyanamsaValue("", at))
}
