package stint_test

import (
	"sync"
	"time"

	"github.com/onegii/go-stint/stint"
)

// fakeClock is a manually advanced monotonic time source.
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func (c *fakeClock) read() time.Time {
	return c.now
}

type emission struct {
	scope  string
	target string
	level  stint.Level
	msg    string
}

// recordSink captures emissions. It is locked because the abandoned
// reporter path emits from the finalizer goroutine.
type recordSink struct {
	mu    sync.Mutex
	emits []emission
}

func (s *recordSink) Emit(scope, target string, level stint.Level, msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.emits = append(s.emits, emission{scope: scope, target: target, level: level, msg: msg})
}

func (s *recordSink) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.emits)
}

func (s *recordSink) last() emission {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.emits[len(s.emits)-1]
}
