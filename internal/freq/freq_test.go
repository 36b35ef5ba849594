package freq

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// block has a strictly decreasing letter histogram aligned with the English
// ranking, so every coset built from it has an unambiguous best shift.
const block = "eeeeeetttttaaaaoooiin"

func caesar(s string, shift int) string {
	out := []byte(s)
	for i, c := range out {
		out[i] = byte('a' + (int(c-'a')+shift)%26)
	}
	return string(out)
}

func TestWeight(t *testing.T) {
	m := NewEnglishModel()
	assert.Equal(t, 26, m.Weight('e'))
	assert.Equal(t, 25, m.Weight('t'))
	assert.Equal(t, 1, m.Weight('z'))
}

func TestBestShiftRecovery(t *testing.T) {
	m := NewEnglishModel()
	sample := strings.Repeat(block, 10)
	for _, shift := range []int{0, 1, 7, 13, 25} {
		assert.Equal(t, shift, m.BestShift(caesar(sample, shift)), "shift %d", shift)
	}
}

func TestBestShiftEmptyCoset(t *testing.T) {
	// No evidence: every shift scores zero and the first one wins.
	assert.Equal(t, 0, NewEnglishModel().BestShift(""))
}

func TestBestShiftSingleLetter(t *testing.T) {
	// A coset of one repeated letter aligns it with 'e', the heaviest letter.
	// 'q' is 12 past 'e'.
	assert.Equal(t, 12, NewEnglishModel().BestShift("qqqq"))
}
