package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBCTypeString(t *testing.T) {
	assert.Equal(t, "closed", BCClosed.String())
	assert.Equal(t, "periodic", BCPeriodic.String())
	assert.Equal(t, "BCType(9)", BCType(9).String())
}

func TestBCTypeValid(t *testing.T) {
	assert.True(t, BCClosed.Valid())
	assert.True(t, BCPeriodic.Valid())
	assert.False(t, BCType(9).Valid())
}

func TestParseBCType(t *testing.T) {
	for s, want := range map[string]BCType{
		"closed":     BCClosed,
		"periodic":   BCPeriodic,
		" Closed ":   BCClosed,
		"PERIODIC":   BCPeriodic,
		"\tperiodic": BCPeriodic,
	} {
		bc, err := ParseBCType(s)
		require.NoError(t, err, s)
		assert.Equal(t, want, bc, s)
	}

	_, err := ParseBCType("open")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "open")
}
