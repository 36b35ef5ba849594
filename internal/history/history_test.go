package history

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"vigcrack/internal/domain"
)

func TestLog(t *testing.T) {
	l := NewLog()
	assert.Equal(t, 0, l.Len())
	assert.False(t, l.Tried(5))

	l.Add(domain.Attempt{Length: 5, Key: "abcde"})
	l.Add(domain.Attempt{Length: 3, Key: "xyz", Accepted: true})

	assert.Equal(t, 2, l.Len())
	assert.True(t, l.Tried(5))
	assert.True(t, l.Tried(3))
	assert.False(t, l.Tried(4))

	all := l.All()
	assert.Equal(t, "abcde", all[0].Key)
	assert.True(t, all[1].Accepted)

	// All returns a copy; mutating it must not affect the log.
	all[0].Key = "mutated"
	assert.Equal(t, "abcde", l.All()[0].Key)
}
