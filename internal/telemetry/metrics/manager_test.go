package metrics

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewManager(t *testing.T) {
	manager, reg := NewTestManagerAndRegistry()

	manager.CounterInsightsComputations.WithLabelValues("progress").Inc()
	manager.CounterInsightsComputations.WithLabelValues("progress").Inc()
	manager.CounterRenamedEntries.Add(3)
	manager.CounterParseFailures.WithLabelValues("time").Inc()
	manager.GaugeLifeSignal.Set(1)

	assert.Equal(t, float64(2), testutil.ToFloat64(manager.CounterInsightsComputations.WithLabelValues("progress")))
	assert.Equal(t, float64(3), testutil.ToFloat64(manager.CounterRenamedEntries))
	assert.Equal(t, float64(1), testutil.ToFloat64(manager.GaugeLifeSignal))

	count, err := testutil.GatherAndCount(reg,
		"gymstats_test_server_insights_computations",
		"gymstats_test_server_renamed_entries",
		"gymstats_test_server_parse_failures",
	)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestSetupPrometheus(t *testing.T) {
	extra := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "extra_collector_total",
		Help: "extra",
	})
	reg := SetupPrometheus("gymstats", "abc123", extra)
	extra.Inc()

	count, err := testutil.GatherAndCount(reg, "extra_collector_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	expected := `
# HELP gymstats_version_info Running version (last commit hash), always 1.
# TYPE gymstats_version_info gauge
gymstats_version_info{version="abc123"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "gymstats_version_info"))

	// managers can be registered on top of it
	manager := NewManager("gymstats", "main", reg)
	manager.CounterRenamedEntries.Inc()
	count, err = testutil.GatherAndCount(reg, "gymstats_main_renamed_entries")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestSetupPrometheus_UnknownVersion(t *testing.T) {
	reg := SetupPrometheus("gymstats", "")

	expected := `
# HELP gymstats_version_info Running version (last commit hash), always 1.
# TYPE gymstats_version_info gauge
gymstats_version_info{version="unknown"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "gymstats_version_info"))
}
