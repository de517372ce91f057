package stint

import "golang.org/x/exp/slog"

// Level is the severity attached to an emitted report. It is an
// [slog.Level], so custom sinks interoperate with slog handlers directly.
type Level = slog.Level

// Report severity levels, ordered by standard slog semantics.
// LevelTrace sits one step below debug, following the slog convention of
// spacing custom levels four apart.
const (
	LevelError Level = slog.LevelError
	LevelWarn  Level = slog.LevelWarn
	LevelInfo  Level = slog.LevelInfo
	LevelDebug Level = slog.LevelDebug
	LevelTrace Level = slog.LevelDebug - 4
)
