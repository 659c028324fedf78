package tz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	loc, err := Resolve("")
	require.NoError(t, err)
	assert.Equal(t, "UTC", loc.String())

	loc, err = Resolve("Asia/Kolkata")
	require.NoError(t, err)
	assert.Equal(t, Kolkata, loc)

	_, err = Resolve("Mars/Olympus")
	assert.Error(t, err)
}
