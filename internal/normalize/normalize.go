package normalize

// Clean reduces raw ciphertext to the letter stream the analysis stages work
// on: ASCII letters only, lowercased, order preserved. Everything else,
// including non-ASCII letters, is dropped.
func Clean(text string) string {
	out := make([]byte, 0, len(text))
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case c >= 'a' && c <= 'z':
			out = append(out, c)
		case c >= 'A' && c <= 'Z':
			out = append(out, c+('a'-'A'))
		}
	}
	return string(out)
}
