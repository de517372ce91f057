package stint_test

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/onegii/go-stint/stint"
)

// parseReport splits a rendered report into its name and per-key seconds.
func parseReport(t *testing.T, msg string) (string, map[string]float64) {
	t.Helper()

	segments := strings.Split(msg, ", ")
	require.NotEmpty(t, segments)

	name, ok := strings.CutPrefix(segments[0], "name: ")
	require.True(t, ok, "report %q has no name segment", msg)

	times := make(map[string]float64)
	for _, seg := range segments[1:] {
		key, val, ok := strings.Cut(seg, ": ")
		require.True(t, ok, "malformed segment %q", seg)
		secs, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		require.NoError(t, err)
		times[key] = secs
	}
	return name, times
}

func TestIngestScenario(t *testing.T) {
	sink := &recordSink{}
	r := stint.NewBuilder("ingest").Sink(sink).Build()

	r.Start("parse")
	time.Sleep(10 * time.Millisecond)
	r.Start("validate")
	time.Sleep(5 * time.Millisecond)
	r.Finish()

	require.Equal(t, 1, sink.count())

	name, times := parseReport(t, sink.last().msg)
	require.Equal(t, "ingest", name)
	require.Len(t, times, 2)

	// sleeps only guarantee a lower bound; allow generous scheduling slack
	require.GreaterOrEqual(t, times["parse"], 0.010)
	require.Less(t, times["parse"], 0.250)
	require.GreaterOrEqual(t, times["validate"], 0.005)
	require.Less(t, times["validate"], 0.250)
}
