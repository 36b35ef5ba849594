package vigenere

import (
	"errors"
	"strings"
)

// ErrEmptyKey reports a zero-length key. The codec fails fast rather than
// silently passing text through.
var ErrEmptyKey = errors.New("key must not be empty")

// Encrypt applies the repeating-key shift in the forward direction.
func Encrypt(text, key string) (string, error) {
	return transform(text, key, 1)
}

// Decrypt inverts Encrypt: Decrypt(Encrypt(t, k), k) == t for any text and
// non-empty key.
func Decrypt(text, key string) (string, error) {
	return transform(text, key, -1)
}

// transform shifts every ASCII letter of text by the key character aligned to
// it, preserving case. The key cursor advances only on letters; every other
// rune, non-ASCII letters included, passes through unchanged and does not
// consume a key position. The key is lowercased before use.
func transform(text, key string, sign int) (string, error) {
	if key == "" {
		return "", ErrEmptyKey
	}
	key = strings.ToLower(key)
	var b strings.Builder
	b.Grow(len(text))
	ki := 0
	for _, r := range text {
		var base rune
		switch {
		case r >= 'a' && r <= 'z':
			base = 'a'
		case r >= 'A' && r <= 'Z':
			base = 'A'
		default:
			b.WriteRune(r)
			continue
		}
		shift := int(key[ki%len(key)] - 'a')
		ki++
		b.WriteRune(base + rune(((int(r-base)+sign*shift)%26+26)%26))
	}
	return b.String(), nil
}
