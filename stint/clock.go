package stint

import "time"

// Clock supplies the instants used for elapsed-time measurement.
//
// The default is [time.Now], whose readings carry Go's monotonic clock, so
// accumulated durations are immune to wall-clock adjustments. A substitute
// must likewise be monotonic within the process; beyond that the choice of
// source (e.g. a coarser, cheaper clock) does not change any semantics.
type Clock func() time.Time
