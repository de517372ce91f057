package stint

import (
	"runtime"
	"time"

	"golang.org/x/exp/slog"
)

// # Builder
//
// Builder implements a builder pattern to configure and generate
// [TimeReporter] instances. A Builder can be reused; every call to
// [Builder.Build] produces an independent reporter.
// Its zero value has no meaning. A Builder should always be instantiated
// using [NewBuilder].
type Builder struct {
	name      string
	level     Level
	order     PrintOrder
	width     int
	precision int
	clock     Clock
	sink      Sink
}

// NewBuilder returns a [Builder] which will generate reporters named name
// that report at [LevelInfo], print totals in [DecDuration] order with
// width 11 and precision 9, measure with [time.Now] and emit through the
// package logger.
func NewBuilder(name string) *Builder {
	return &Builder{
		name:      name,
		level:     LevelInfo,
		order:     DecDuration,
		width:     11,
		precision: 9,
		clock:     time.Now,
		sink:      slogSink{},
	}
}

// Level modifies and returns b, setting the severity of the final report.
func (b *Builder) Level(level Level) *Builder {
	b.level = level
	return b
}

// PrintOrder modifies and returns b, setting the printing order of the
// total times.
func (b *Builder) PrintOrder(order PrintOrder) *Builder {
	b.order = order
	return b
}

// Width modifies and returns b, setting the minimum formatting width of
// the total times. Fill character and alignment are hardcoded to space and
// left-align.
//
// Should be at least precision + 2 (one leading digit plus the decimal
// point plus precision) or this option will have no visible effect.
func (b *Builder) Width(width int) *Builder {
	b.width = width
	return b
}

// Precision modifies and returns b, setting the number of digits printed
// after the decimal point for the total times.
func (b *Builder) Precision(precision int) *Builder {
	b.precision = precision
	return b
}

// Clock modifies and returns b, setting the time source used for
// elapsed-time measurement (see [Clock]).
func (b *Builder) Clock(clock Clock) *Builder {
	if clock == nil {
		logger.Error("nil clock, keeping previous time source")
		return b
	}
	b.clock = clock
	return b
}

// Sink modifies and returns b, setting the sink the final report is
// emitted to.
func (b *Builder) Sink(sink Sink) *Builder {
	if sink == nil {
		logger.Error("nil sink, keeping previous sink")
		return b
	}
	b.sink = sink
	return b
}

// Build generates a new [TimeReporter] based on b's state.
func (b *Builder) Build() *TimeReporter {
	r := &TimeReporter{
		name:      b.name,
		times:     make(map[string]time.Duration),
		level:     b.level,
		order:     b.order,
		width:     b.width,
		precision: b.precision,
		clock:     b.clock,
		sink:      b.sink,
	}

	// An abandoned reporter still reports once, whenever the collector
	// gets to it. Finish clears this.
	runtime.SetFinalizer(r, (*TimeReporter).Finish)

	return r
}

// # TimeReporter
//
// TimeReporter collects the total time spent on a set of activities.
// At most one activity is measured at a time: [TimeReporter.Start] closes
// the running measurement, folding its elapsed time into the totals, and
// opens a new one. Totals only ever grow.
//
// On [TimeReporter.Finish] the totals are rendered (see
// [TimeReporter.String]) and emitted exactly once as a single event on the
// configured [Sink].
//
// A TimeReporter is owned by one goroutine; it provides no internal
// synchronization.
// Its zero value has no meaning. A TimeReporter should always be
// instantiated using [New], [NewWithLevel] or a [Builder].
type TimeReporter struct {
	name  string
	times map[string]time.Duration
	// firstStarted holds the keys of times in first-started order.
	firstStarted []string

	// open measurement, valid only while curOpen
	curOpen  bool
	curKey   string
	curStart time.Time

	level     Level
	order     PrintOrder
	width     int
	precision int
	clock     Clock
	sink      Sink

	finished bool
}

// New returns a [TimeReporter] with the default configuration (see
// [NewBuilder]).
func New(name string) *TimeReporter {
	return NewBuilder(name).Build()
}

// NewWithLevel returns a [TimeReporter] that reports at the given level.
func NewWithLevel(name string, level Level) *TimeReporter {
	return NewBuilder(name).Level(level).Build()
}

// Start begins measuring time for the activity named key.
//
// If another activity was being measured, its elapsed time is folded into
// the totals first; the same instant ends one measurement and begins the
// next, so no time is lost or counted twice. Starting the same key again
// accumulates onto its existing total.
func (r *TimeReporter) Start(key string) {
	if r.finished {
		logger.Warn("start on a finished reporter ignored",
			slog.String("name", r.name), slog.String("key", key))
		return
	}

	now := r.clock()
	r.saveCurrent(now)
	r.curOpen = true
	r.curKey = key
	r.curStart = now
}

// StartWith starts measuring key on r, then invokes f and returns its
// result. It is handy inside condition or loop headers where a standalone
// [TimeReporter.Start] statement would be awkward; it has no further
// semantics.
func StartWith[R any](r *TimeReporter, key string, f func() R) R {
	r.Start(key)

	return f()
}

// saveCurrent folds the open measurement, if any, into the totals.
func (r *TimeReporter) saveCurrent(now time.Time) {
	if !r.curOpen {
		return
	}
	if _, ok := r.times[r.curKey]; !ok {
		r.firstStarted = append(r.firstStarted, r.curKey)
	}
	r.times[r.curKey] += now.Sub(r.curStart)
	r.curOpen = false
	r.curKey = ""
	r.curStart = time.Time{}
}

// Stop stops measuring, folding the open measurement into the totals.
// It is a no-op when nothing is being measured.
func (r *TimeReporter) Stop() {
	r.saveCurrent(r.clock())
}

// Finish stops measuring and emits the report. Only the first call emits;
// the reporter must not be started again afterwards.
//
// Deferring Finish at construction guarantees the report is emitted on
// every exit path:
//
//	r := stint.New("ingest")
//	defer r.Finish()
func (r *TimeReporter) Finish() {
	if r.finished {
		return
	}
	r.finished = true
	runtime.SetFinalizer(r, nil)

	r.saveCurrent(r.clock())
	r.sink.Emit(scopeLabel, target, r.level, r.String())
}
