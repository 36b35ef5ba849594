package coset

import "errors"

// ErrInvalidKeyLength reports a requested key length below 1.
var ErrInvalidKeyLength = errors.New("key length must be at least 1")

// Split partitions cleaned ciphertext into n cosets: the i-th coset holds
// every n-th letter starting at offset i, so each coset was encrypted under a
// single key character. Coset lengths differ by at most one.
func Split(cleaned string, n int) ([]string, error) {
	if n < 1 {
		return nil, ErrInvalidKeyLength
	}
	bufs := make([][]byte, n)
	for i := range bufs {
		bufs[i] = make([]byte, 0, len(cleaned)/n+1)
	}
	for i := 0; i < len(cleaned); i++ {
		bufs[i%n] = append(bufs[i%n], cleaned[i])
	}
	out := make([]string, n)
	for i := range bufs {
		out[i] = string(bufs[i])
	}
	return out, nil
}

// Join is the inverse of Split: it interleaves cosets round-robin back into
// the original letter stream.
func Join(cosets []string) string {
	total := 0
	for _, c := range cosets {
		total += len(c)
	}
	out := make([]byte, 0, total)
	for i := 0; len(out) < total; i++ {
		for _, c := range cosets {
			if i < len(c) {
				out = append(out, c[i])
			}
		}
	}
	return string(out)
}
