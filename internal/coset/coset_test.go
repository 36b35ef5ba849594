package coset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	got, err := Split("abcdefg", 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"adg", "be", "cf"}, got)
}

func TestSplitInvalidKeyLength(t *testing.T) {
	for _, n := range []int{0, -1, -15} {
		_, err := Split("abc", n)
		assert.ErrorIs(t, err, ErrInvalidKeyLength)
	}
}

func TestSplitJoinReconstruction(t *testing.T) {
	cases := []struct {
		name string
		text string
		n    int
	}{
		{"single coset", "vigenerecipher", 1},
		{"even split", "abcdef", 3},
		{"uneven split", "abcdefgh", 3},
		{"more cosets than letters", "abc", 7},
		{"empty text", "", 4},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cosets, err := Split(c.text, c.n)
			require.NoError(t, err)
			require.Len(t, cosets, c.n)

			total := 0
			for _, cs := range cosets {
				total += len(cs)
				// Lengths differ by at most one.
				assert.GreaterOrEqual(t, len(cs), len(c.text)/c.n)
				assert.LessOrEqual(t, len(cs), len(c.text)/c.n+1)
			}
			assert.Equal(t, len(c.text), total)
			assert.Equal(t, c.text, Join(cosets))
		})
	}
}
