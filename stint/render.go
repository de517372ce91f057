package stint

import (
	"bytes"
	"fmt"
)

// String renders the accumulated totals in the configured print order:
//
//	name: <name>, <key>: <seconds>, <key>: <seconds>, ...
//
// Durations are printed in seconds as left-aligned fixed-point decimals
// using the configured width and precision. An open measurement is not
// included; it is folded in by [TimeReporter.Stop] or
// [TimeReporter.Finish].
func (r *TimeReporter) String() string {
	stats := orderedTimes(r.times, r.firstStarted, r.order)

	b := bytes.NewBufferString("")

	b.WriteString(fmt.Sprintf("name: %s", r.name))
	for _, s := range stats {
		b.WriteString(fmt.Sprintf(", %s: %-*.*f",
			s.key, r.width, r.precision, s.dur.Seconds()))
	}

	return b.String()
}
