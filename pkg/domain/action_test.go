package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAction(t *testing.T) {
	tests := []struct {
		in   rune
		want Action
	}{
		{'R', Right}, {'r', Right},
		{'L', Left}, {'l', Left},
		{'Y', Accept}, {'y', Accept},
		{'N', Reject}, {'n', Reject},
	}
	for _, tt := range tests {
		got, err := ParseAction(tt.in)
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}

	for _, bad := range []rune{'x', 'A', '1', '#', ' '} {
		_, err := ParseAction(bad)
		assert.ErrorIs(t, err, ErrInvalidAction, "input %q", bad)
	}
}

func TestAction_CanonicalOrder(t *testing.T) {
	assert.Equal(t, []Action{Right, Left, Accept, Reject}, Actions())
	for i, a := range Actions() {
		assert.Equal(t, i, a.Rank())
		back, err := ActionFromRank(i)
		require.NoError(t, err)
		assert.Equal(t, a, back)
	}

	var zero Action
	assert.False(t, zero.Valid())
	assert.Equal(t, -1, zero.Rank())
	_, err := ActionFromRank(4)
	assert.ErrorIs(t, err, ErrInvalidAction)
}

func TestAction_Halts(t *testing.T) {
	assert.True(t, Accept.Halts())
	assert.True(t, Reject.Halts())
	assert.False(t, Left.Halts())
	assert.False(t, Right.Halts())
	assert.Equal(t, "YNLR", string([]rune{Accept.Letter(), Reject.Letter(), Left.Letter(), Right.Letter()}))
}
