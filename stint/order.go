package stint

import (
	"time"

	"golang.org/x/exp/slices"
)

// PrintOrder selects the order in which accumulated totals appear in the
// rendered report.
type PrintOrder int

const (
	// DecDuration orders by decreasing accumulated duration (the default).
	DecDuration PrintOrder = iota
	// IncDuration orders by increasing accumulated duration.
	IncDuration
	// Key orders by ascending key name.
	Key
	// RevKey orders by descending key name.
	RevKey
	// Start orders by the order in which keys were first started.
	Start
	// RevStart is the reverse of Start.
	RevStart
)

func (o PrintOrder) String() string {
	switch o {
	case DecDuration:
		return "DecDuration"
	case IncDuration:
		return "IncDuration"
	case Key:
		return "Key"
	case RevKey:
		return "RevKey"
	case Start:
		return "Start"
	case RevStart:
		return "RevStart"
	}
	return "PrintOrder(unknown)"
}

type keyTime struct {
	key string
	dur time.Duration
}

// orderedTimes lists accumulated totals in first-started order, then
// rearranges per o. Sorts are stable, so equal durations keep their
// first-started order.
func orderedTimes(times map[string]time.Duration, order []string, o PrintOrder) []keyTime {
	stats := make([]keyTime, 0, len(order))
	for _, k := range order {
		stats = append(stats, keyTime{key: k, dur: times[k]})
	}

	switch o {
	case Start:
	case RevStart:
		for i, j := 0, len(stats)-1; i < j; i, j = i+1, j-1 {
			stats[i], stats[j] = stats[j], stats[i]
		}
	case Key:
		slices.SortStableFunc(stats, func(a, b keyTime) bool {
			return a.key < b.key
		})
	case RevKey:
		slices.SortStableFunc(stats, func(a, b keyTime) bool {
			return a.key > b.key
		})
	case IncDuration:
		slices.SortStableFunc(stats, func(a, b keyTime) bool {
			return a.dur < b.dur
		})
	case DecDuration:
		slices.SortStableFunc(stats, func(a, b keyTime) bool {
			return a.dur > b.dur
		})
	}

	return stats
}
