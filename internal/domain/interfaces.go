package domain

// Attempt records one tried key length and what came of it.
type Attempt struct {
	Length   int
	Key      string
	Preview  string
	Accepted bool
}

// Result is the terminal outcome of a crack run. Found is false when every
// candidate length was rejected.
type Result struct {
	Found     bool
	Key       string
	Plaintext string
}

// Estimator proposes candidate key lengths for a cleaned ciphertext,
// most likely first. An empty list is a normal outcome.
type Estimator interface {
	Candidates(cleaned string) []int
}

// Oracle decides whether a candidate decryption is correct. Confirm blocks
// until an answer is available; an error ends the run.
type Oracle interface {
	Confirm(key, preview string) (bool, error)
}

// Reporter receives pipeline progress for observability only.
// It has no effect on control flow.
type Reporter interface {
	Candidates(lengths []int)
	Attempt(a Attempt)
	Outcome(r Result)
}
