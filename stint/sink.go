package stint

import (
	"context"

	"golang.org/x/exp/slog"
)

// Emission tags attached to every report, distinguishing this event stream
// from other instrumentation sharing the sink.
const (
	scopeLabel = "time-report"
	target     = "tracing-perf"
)

// # Sink
//
// Sink receives the one rendered report a [TimeReporter] produces on
// finalization. scope groups related output for sinks that support it,
// target identifies the event stream, level is the severity configured on
// the reporter and msg is the rendered report line.
//
// A Sink must not retain any reference to the reporter that called it.
type Sink interface {
	Emit(scope, target string, level Level, msg string)
}

// slogSink is the default Sink. It maps the scope onto an slog group and
// the target onto an attribute, logging through the package logger (see
// [SetLogger]).
type slogSink struct{}

func (slogSink) Emit(scope, target string, level Level, msg string) {
	logger.WithGroup(scope).Log(context.Background(), level, msg,
		slog.String("target", target))
}
