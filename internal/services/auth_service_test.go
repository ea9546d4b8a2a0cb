package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJoinLocation(t *testing.T) {
	assert.Equal(t, "Palermo, CABA", joinLocation("Palermo", "CABA"))
	assert.Equal(t, "Palermo, CABA", joinLocation("  Palermo ", " CABA "))
	assert.Equal(t, "Palermo", joinLocation("Palermo", ""))
	assert.Equal(t, "CABA", joinLocation("", "CABA"))
	assert.Equal(t, "", joinLocation("", ""))
}

func TestParseCoordinate(t *testing.T) {
	v := parseCoordinate("-34.58")
	require.NotNil(t, v)
	assert.InDelta(t, -34.58, *v, 0.0001)

	assert.Nil(t, parseCoordinate(""))
	assert.Nil(t, parseCoordinate("not-a-number"))
	assert.Nil(t, parseCoordinate("34,58"))
}
