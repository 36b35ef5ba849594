package oracle

import "sync"

// Request is one confirmation question posed to an interactive answerer.
// The attempted key length is len(Key).
type Request struct {
	Key     string
	Preview string
}

// Channel bridges the orchestrator's blocking Confirm call to an event-driven
// consumer such as the TUI: Confirm publishes a Request and waits for the
// verdict. Abort unblocks any pending or future Confirm with ErrAborted.
type Channel struct {
	requests chan Request
	verdicts chan bool
	done     chan struct{}
	once     sync.Once
}

func NewChannel() *Channel {
	return &Channel{
		requests: make(chan Request),
		verdicts: make(chan bool),
		done:     make(chan struct{}),
	}
}

// Requests exposes the question stream for the consumer.
func (c *Channel) Requests() <-chan Request { return c.requests }

// Answer delivers the verdict for the pending request. It must only be called
// after a Request has been received.
func (c *Channel) Answer(accept bool) {
	select {
	case c.verdicts <- accept:
	case <-c.done:
	}
}

// Abort ends the run. Safe to call more than once.
func (c *Channel) Abort() {
	c.once.Do(func() { close(c.done) })
}

func (c *Channel) Confirm(key, preview string) (bool, error) {
	select {
	case c.requests <- Request{Key: key, Preview: preview}:
	case <-c.done:
		return false, ErrAborted
	}
	select {
	case v := <-c.verdicts:
		return v, nil
	case <-c.done:
		return false, ErrAborted
	}
}
