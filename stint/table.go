package stint

import (
	"io"
	"math"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/rodaine/table"
)

// Fprint generates and writes to w a table of the totals accumulated so
// far, one row per activity in the configured print order, with each
// activity's share of the accumulated total. An open measurement is not
// included.
//
// This is a read-only view for interactive inspection; it does not finish
// the reporter and nothing is emitted on the sink.
func (r *TimeReporter) Fprint(w io.Writer) {
	stats := orderedTimes(r.times, r.firstStarted, r.order)

	var total time.Duration
	for _, s := range stats {
		total += s.dur
	}

	headerFmt := color.New(color.FgGreen, color.Underline).SprintfFunc()

	tbl := table.New(
		"activity",
		"total",
		"share",
	)
	tbl.WithHeaderFormatter(headerFmt)
	tbl.WithWriter(w)

	for _, s := range stats {
		share := float64(0)
		if total > 0 {
			share = float64(s.dur) / float64(total)
		}
		tbl.AddRow(
			s.key,
			s.dur,
			math.Floor(share*1000)/1000,
		)
	}

	color.New(color.FgGreen).Add(color.Bold).Fprintf(w, "\nⓉ %s\n", r.name)
	tbl.Print()
}

// Print is equivalent to calling [TimeReporter.Fprint] on [os.Stdout].
func (r *TimeReporter) Print() {
	r.Fprint(os.Stdout)
}
