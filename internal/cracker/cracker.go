package cracker

import (
	"fmt"

	"vigcrack/internal/coset"
	"vigcrack/internal/domain"
	"vigcrack/internal/freq"
	"vigcrack/internal/history"
	"vigcrack/internal/normalize"
	"vigcrack/internal/vigenere"
)

// Options bounds the fallback scan and the decryption preview.
type Options struct {
	// ManualMin..ManualMax is the exhaustive key length range tried after the
	// ranked candidates are exhausted.
	ManualMin int
	ManualMax int
	// PreviewChars caps the decrypted text shown to the oracle.
	PreviewChars int
}

func (o *Options) applyDefaults() {
	if o.ManualMin < 1 {
		o.ManualMin = 5
	}
	if o.ManualMax < o.ManualMin {
		o.ManualMax = 15
	}
	if o.PreviewChars <= 0 {
		o.PreviewChars = 100
	}
}

// Cracker drives the full pipeline: ranked key length candidates from the
// estimator first, then the manual fallback range, each attempt gated by the
// confirmation oracle.
type Cracker struct {
	estimator domain.Estimator
	model     *freq.Model
	oracle    domain.Oracle
	reporter  domain.Reporter
	log       *history.Log
	opts      Options
}

func New(estimator domain.Estimator, model *freq.Model, oracle domain.Oracle, reporter domain.Reporter, log *history.Log, opts Options) *Cracker {
	opts.applyDefaults()
	return &Cracker{
		estimator: estimator,
		model:     model,
		oracle:    oracle,
		reporter:  reporter,
		log:       log,
		opts:      opts,
	}
}

// Crack tries each candidate key length until the oracle accepts one or the
// candidate space is exhausted. Rejection of every length is not an error:
// the result comes back with Found == false. An oracle error (abort) ends the
// run immediately.
func (c *Cracker) Crack(ciphertext string) (domain.Result, error) {
	cleaned := normalize.Clean(ciphertext)
	ranked := c.estimator.Candidates(cleaned)
	c.reporter.Candidates(ranked)

	lengths := make([]int, 0, len(ranked)+c.opts.ManualMax-c.opts.ManualMin+1)
	lengths = append(lengths, ranked...)
	for n := c.opts.ManualMin; n <= c.opts.ManualMax; n++ {
		lengths = append(lengths, n)
	}

	for _, n := range lengths {
		if c.log.Tried(n) {
			continue
		}
		res, accepted, err := c.attempt(ciphertext, cleaned, n)
		if err != nil {
			return domain.Result{}, err
		}
		if accepted {
			c.reporter.Outcome(res)
			return res, nil
		}
	}
	res := domain.Result{}
	c.reporter.Outcome(res)
	return res, nil
}

// attempt derives the best key of length n and asks the oracle about it.
// The key is assembled from the best-scoring Caesar shift of each coset; the
// decryption runs over the original uncleaned ciphertext.
func (c *Cracker) attempt(ciphertext, cleaned string, n int) (domain.Result, bool, error) {
	cosets, err := coset.Split(cleaned, n)
	if err != nil {
		return domain.Result{}, false, fmt.Errorf("partition for length %d: %w", n, err)
	}
	key := make([]byte, n)
	for i, cs := range cosets {
		key[i] = byte('a' + c.model.BestShift(cs))
	}
	plain, err := vigenere.Decrypt(ciphertext, string(key))
	if err != nil {
		return domain.Result{}, false, fmt.Errorf("decrypt with key %q: %w", key, err)
	}

	a := domain.Attempt{Length: n, Key: string(key), Preview: preview(plain, c.opts.PreviewChars)}
	c.reporter.Attempt(a)
	accepted, err := c.oracle.Confirm(a.Key, a.Preview)
	if err != nil {
		return domain.Result{}, false, err
	}
	a.Accepted = accepted
	c.log.Add(a)
	if !accepted {
		return domain.Result{}, false, nil
	}
	return domain.Result{Found: true, Key: a.Key, Plaintext: plain}, true, nil
}

func preview(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
