package report

import (
	"go.uber.org/zap"

	"vigcrack/internal/domain"
)

// Logger reports pipeline progress through a zap logger. Used in auto mode,
// where no TUI is showing the attempts.
type Logger struct {
	log *zap.Logger
}

func NewLogger(log *zap.Logger) *Logger { return &Logger{log: log} }

func (r *Logger) Candidates(lengths []int) {
	r.log.Info("possible key lengths", zap.Ints("lengths", lengths))
}

func (r *Logger) Attempt(a domain.Attempt) {
	r.log.Info("trying key length",
		zap.Int("length", a.Length),
		zap.String("key", a.Key),
		zap.String("preview", a.Preview))
}

func (r *Logger) Outcome(res domain.Result) {
	if res.Found {
		r.log.Info("key accepted", zap.String("key", res.Key))
		return
	}
	r.log.Warn("no candidate key accepted")
}

// Nop discards all reports.
type Nop struct{}

func (Nop) Candidates([]int)       {}
func (Nop) Attempt(domain.Attempt) {}
func (Nop) Outcome(domain.Result)  {}
