package oracle

import (
	"errors"

	"vigcrack/internal/domain"
)

// ErrAborted is returned from Confirm when the answer source ends the run
// early instead of accepting or rejecting.
var ErrAborted = errors.New("crack aborted")

// Func adapts a plain function to the domain.Oracle interface.
type Func func(key, preview string) (bool, error)

func (f Func) Confirm(key, preview string) (bool, error) { return f(key, preview) }

// AcceptAfter returns an oracle that rejects the first n candidates and
// accepts every one after that. AcceptAfter(0) accepts immediately.
func AcceptAfter(n int) domain.Oracle {
	count := 0
	return Func(func(string, string) (bool, error) {
		count++
		return count > n, nil
	})
}

// Scripted answers from a fixed list, in order. Once the list is exhausted it
// rejects everything.
func Scripted(answers []bool) domain.Oracle {
	i := 0
	return Func(func(string, string) (bool, error) {
		if i >= len(answers) {
			return false, nil
		}
		ok := answers[i]
		i++
		return ok, nil
	})
}
