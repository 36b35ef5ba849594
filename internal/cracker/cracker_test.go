package cracker

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vigcrack/internal/domain"
	"vigcrack/internal/freq"
	"vigcrack/internal/history"
	"vigcrack/internal/kasiski"
	"vigcrack/internal/oracle"
	"vigcrack/internal/report"
	"vigcrack/internal/vigenere"
)

// block has a strictly decreasing letter histogram aligned with the English
// ranking. gcd(len(block), 5) == 1, so for a length-5 key every coset sees
// the same histogram and the scorer recovers each key letter exactly.
const block = "eeeeeetttttaaaaoooiin"

func newCracker(orc domain.Oracle, hist *history.Log, opts Options) *Cracker {
	return New(kasiski.New(15, 3), freq.NewEnglishModel(), orc, report.Nop{}, hist, opts)
}

func TestCrackRecoversKnownKey(t *testing.T) {
	plaintext := strings.Repeat(block, 25)
	cipher, err := vigenere.Encrypt(plaintext, "lemon")
	require.NoError(t, err)

	orc := oracle.Func(func(key, _ string) (bool, error) { return key == "lemon", nil })
	hist := history.NewLog()
	res, err := newCracker(orc, hist, Options{}).Crack(cipher)
	require.NoError(t, err)

	assert.True(t, res.Found)
	assert.Equal(t, "lemon", res.Key)
	assert.Equal(t, plaintext, res.Plaintext)
}

func TestCrackTerminatesWhenAlwaysRejected(t *testing.T) {
	plaintext := strings.Repeat(block, 25)
	cipher, err := vigenere.Encrypt(plaintext, "lemon")
	require.NoError(t, err)

	reject := oracle.Func(func(string, string) (bool, error) { return false, nil })
	hist := history.NewLog()
	res, err := newCracker(reject, hist, Options{}).Crack(cipher)
	require.NoError(t, err)
	assert.False(t, res.Found)

	// Each length is attempted at most once, and the whole manual range gets
	// its turn.
	seen := map[int]bool{}
	for _, a := range hist.All() {
		assert.False(t, seen[a.Length], "length %d tried twice", a.Length)
		seen[a.Length] = true
		assert.False(t, a.Accepted)
	}
	for n := 5; n <= 15; n++ {
		assert.True(t, seen[n], "manual length %d never tried", n)
	}
}

func TestCrackManualFallbackWithoutCandidates(t *testing.T) {
	// Too short for repeated trigrams: the ranked phase is empty and control
	// passes straight to the manual range, ascending.
	reject := oracle.Func(func(string, string) (bool, error) { return false, nil })
	hist := history.NewLog()
	res, err := newCracker(reject, hist, Options{}).Crack("abc def!")
	require.NoError(t, err)
	assert.False(t, res.Found)

	var lengths []int
	for _, a := range hist.All() {
		lengths = append(lengths, a.Length)
	}
	assert.Equal(t, []int{5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}, lengths)
}

func TestCrackAcceptSecondCandidate(t *testing.T) {
	plaintext := strings.Repeat(block, 25)
	cipher, err := vigenere.Encrypt(plaintext, "lemon")
	require.NoError(t, err)

	hist := history.NewLog()
	res, err := newCracker(oracle.AcceptAfter(1), hist, Options{}).Crack(cipher)
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, 2, hist.Len())
	assert.True(t, hist.All()[1].Accepted)
	assert.Equal(t, len(res.Key), hist.All()[1].Length)
}

func TestCrackAbortPropagates(t *testing.T) {
	plaintext := strings.Repeat(block, 25)
	cipher, err := vigenere.Encrypt(plaintext, "lemon")
	require.NoError(t, err)

	abort := oracle.Func(func(string, string) (bool, error) { return false, oracle.ErrAborted })
	hist := history.NewLog()
	_, err = newCracker(abort, hist, Options{}).Crack(cipher)
	assert.ErrorIs(t, err, oracle.ErrAborted)
	assert.Equal(t, 0, hist.Len())
}

func TestCrackPreviewTruncation(t *testing.T) {
	plaintext := strings.Repeat(block, 25)
	cipher, err := vigenere.Encrypt(plaintext, "lemon")
	require.NoError(t, err)

	var preview string
	capture := oracle.Func(func(_, p string) (bool, error) {
		preview = p
		return true, nil
	})
	_, err = newCracker(capture, history.NewLog(), Options{PreviewChars: 10}).Crack(cipher)
	require.NoError(t, err)
	assert.Len(t, []rune(preview), 13) // 10 runes plus "..."
	assert.True(t, strings.HasSuffix(preview, "..."))
}
