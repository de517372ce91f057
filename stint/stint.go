// Package stint tracks how much time a unit of work spends in each of a
// set of named activities.
//
// A [TimeReporter] accumulates elapsed time per activity key: calling
// [TimeReporter.Start] switches the activity being measured, closing the
// previous one. When the reporter is finished it renders the totals as a
// single line:
//
//	name: ingest, validate: 0.005128432, parse: 0.010244719
//
// and emits it once through a [Sink], tagged with a severity level. The
// default sink writes through the package logger. The intended shape is:
//
//	r := stint.New("ingest")
//	defer r.Finish()
//
//	r.Start("parse")
//	// ... parse ...
//	r.Start("validate")
//	// ... validate ...
//
// Reports are emitted exactly once per reporter, on every exit path.
package stint

import (
	"os"

	"golang.org/x/exp/slog"
)

func init() {
	logLevel = new(slog.LevelVar)
	logLevel.Set(LevelTrace)
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})
	logger = slog.New(h)
}

var (
	logger   *slog.Logger
	logLevel *slog.LevelVar
)

// SetLogger sets the logger backing the default [Sink].
// [SetLogLevel] will not be enforced if a custom logger is used.
func SetLogger(newlogger *slog.Logger) {
	logger = newlogger
}

// SetLogLevel sets the minimum level emitted by the default [Sink] unless
// [SetLogger] has been called. The default admits every level down to
// [LevelTrace].
func SetLogLevel(level slog.Level) {
	logLevel.Set(level)
}
