package progress_test

import (
	"testing"
	"time"

	"github.com/2beens/gyminsights/internal/gymstats/entries"
	"github.com/2beens/gyminsights/internal/gymstats/progress"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func loadEntry(name string, kilos float64, date time.Time, tracked bool) entries.Entry {
	return entries.Entry{
		Name:      name,
		Date:      date,
		CreatedAt: date,
		Tracked:   tracked,
		Metrics: entries.Metrics{
			Load: &entries.Load{Magnitude: kilos, Unit: entries.UnitKg, Multiplier: entries.MultiplierSingle},
		},
	}
}

func timeEntry(name string, seconds float64, date time.Time) entries.Entry {
	return entries.Entry{
		Name:      name,
		Date:      date,
		CreatedAt: date,
		Tracked:   true,
		Metrics: entries.Metrics{
			Scalar: &entries.Scalar{Kind: entries.ScalarTime, Value: seconds},
		},
	}
}

func TestSummarize_TwoSquats(t *testing.T) {
	d1 := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	d2 := d1.AddDate(0, 0, 7)

	group := entries.GroupByName([]entries.Entry{
		loadEntry("Squat", 110, d2, true),
		loadEntry("Squat", 100, d1, true),
	})[0]

	s, ok := progress.Summarize(group, progress.Policy{})
	require.True(t, ok)
	assert.Equal(t, "Squat", s.Name)
	assert.Equal(t, entries.KindWeight, s.Kind)
	assert.Equal(t, 110.0, s.LastValue)
	assert.Equal(t, 110.0, s.BestValue)
	assert.Equal(t, 2, s.Count)
	assert.Equal(t, d1, s.FirstDate)
	assert.Equal(t, d2, s.LastDate)
	assert.Equal(t, "110kg", s.LastText)
	assert.Equal(t, "110kg", s.BestText)
	assert.Equal(t, "since Feb 1, 2024", progress.DateRangeText(s))
}

func TestSummarize_LastIsNotBest(t *testing.T) {
	d := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	group := entries.GroupByName([]entries.Entry{
		loadEntry("Row", 60, d, true),
		loadEntry("Row", 80, d.AddDate(0, 0, 1), true),
		loadEntry("Row", 70, d.AddDate(0, 0, 2), true),
		loadEntry("Row", 200, d.AddDate(0, 0, 3), false),
	})[0]

	s, ok := progress.Summarize(group, progress.Policy{})
	require.True(t, ok)
	assert.Equal(t, 70.0, s.LastValue)
	assert.Equal(t, 80.0, s.BestValue)
	assert.Equal(t, 3, s.Count)
	assert.Equal(t, d.AddDate(0, 0, 2), s.LastDate)
}

func TestSummarize_SameDayUsesCreatedAt(t *testing.T) {
	d := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	first := loadEntry("Press", 40, d, true)
	first.CreatedAt = d.Add(10 * time.Hour)
	second := loadEntry("Press", 35, d, true)
	second.CreatedAt = d.Add(11 * time.Hour)

	s, ok := progress.Summarize(entries.MovementGroup{Name: "Press", Entries: []entries.Entry{second, first}}, progress.Policy{})
	require.True(t, ok)
	assert.Equal(t, 35.0, s.LastValue)
	assert.Equal(t, 40.0, s.BestValue)
	assert.Equal(t, "on Feb 1, 2024", progress.DateRangeText(s))
}

func TestSummarize_TimeDirection(t *testing.T) {
	d := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	plank := entries.GroupByName([]entries.Entry{
		timeEntry("Plank", 60, d),
		timeEntry("Plank", 95, d.AddDate(0, 0, 1)),
		timeEntry("Plank", 80, d.AddDate(0, 0, 2)),
	})[0]
	sprint := entries.GroupByName([]entries.Entry{
		timeEntry("Row 500m", 110, d),
		timeEntry("Row 500m", 98, d.AddDate(0, 0, 1)),
		timeEntry("Row 500m", 101, d.AddDate(0, 0, 2)),
	})[0]

	policy := progress.Policy{
		TimeDirections: map[string]progress.Direction{"Row 500m": progress.Lower},
	}

	s, ok := progress.Summarize(plank, policy)
	require.True(t, ok)
	assert.Equal(t, entries.KindTime, s.Kind)
	assert.Equal(t, 95.0, s.BestValue)
	assert.Equal(t, "1:35 mins", s.BestText)

	s, ok = progress.Summarize(sprint, policy)
	require.True(t, ok)
	assert.Equal(t, 98.0, s.BestValue)
	assert.Equal(t, 101.0, s.LastValue)
}

func TestSummarizeAll_TimeDirectionFollowsCaseFolding(t *testing.T) {
	d := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	all := []entries.Entry{
		timeEntry("Row 500m", 110, d),
		timeEntry("row 500m", 98, d.AddDate(0, 0, 1)),
		timeEntry("ROW 500M", 101, d.AddDate(0, 0, 2)),
	}
	directions := map[string]progress.Direction{"row 500m": progress.Lower}

	// the group is named after the first casing seen, not the configured one
	summaries := progress.SummarizeAll(all, progress.Policy{
		TimeDirections: directions,
		GroupOptions:   []entries.GroupOption{entries.WithCaseInsensitiveNames()},
	})
	require.Len(t, summaries, 1)
	assert.Equal(t, "Row 500m", summaries[0].Name)
	assert.Equal(t, 3, summaries[0].Count)
	assert.Equal(t, 98.0, summaries[0].BestValue)

	// exact grouping keeps exact lookups: only "row 500m" is lower
	summaries = progress.SummarizeAll(all, progress.Policy{TimeDirections: directions})
	require.Len(t, summaries, 3)
	for _, s := range summaries {
		assert.Equal(t, 1, s.Count, s.Name)
	}

	// an exact match wins over a folded one
	summaries = progress.SummarizeAll(all, progress.Policy{
		TimeDirections: map[string]progress.Direction{
			"Row 500m": progress.Higher,
			"row 500m": progress.Lower,
		},
		GroupOptions: []entries.GroupOption{entries.WithCaseInsensitiveNames()},
	})
	require.Len(t, summaries, 1)
	assert.Equal(t, 110.0, summaries[0].BestValue)
}

func TestSummarize_LowerDirectionIgnoredForWeight(t *testing.T) {
	d := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	group := entries.GroupByName([]entries.Entry{
		loadEntry("Squat", 100, d, true),
		loadEntry("Squat", 120, d.AddDate(0, 0, 1), true),
	})[0]

	s, ok := progress.Summarize(group, progress.Policy{
		TimeDirections: map[string]progress.Direction{"Squat": progress.Lower},
	})
	require.True(t, ok)
	assert.Equal(t, 120.0, s.BestValue)
}

func TestSummarize_Absent(t *testing.T) {
	d := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	_, ok := progress.Summarize(entries.MovementGroup{Name: "Empty"}, progress.Policy{})
	assert.False(t, ok)

	untracked := entries.GroupByName([]entries.Entry{loadEntry("Squat", 100, d, false)})[0]
	_, ok = progress.Summarize(untracked, progress.Policy{})
	assert.False(t, ok)

	volumeOnly := entries.MovementGroup{Name: "Burpees", Entries: []entries.Entry{{
		Name:    "Burpees",
		Date:    d,
		Tracked: true,
		Metrics: entries.Metrics{Volume: &entries.Volume{Count: 20, Kind: entries.VolumeReps}},
	}}}
	_, ok = progress.Summarize(volumeOnly, progress.Policy{})
	assert.False(t, ok)
}

func TestSummarizeAll(t *testing.T) {
	d := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	all := []entries.Entry{
		loadEntry("squat", 100, d, true),
		loadEntry("Bench", 80, d, true),
		loadEntry("Curl", 15, d, false),
		timeEntry("Plank", 60, d),
		loadEntry("Squat", 110, d.AddDate(0, 0, 1), true),
	}

	summaries := progress.SummarizeAll(all, progress.Policy{})
	require.Len(t, summaries, 4)
	assert.Equal(t, "Bench", summaries[0].Name)
	assert.Equal(t, "Plank", summaries[1].Name)
	assert.Equal(t, "Squat", summaries[2].Name)
	assert.Equal(t, "squat", summaries[3].Name)

	folded := progress.SummarizeAll(all, progress.Policy{
		GroupOptions: []entries.GroupOption{entries.WithCaseInsensitiveNames()},
	})
	require.Len(t, folded, 3)
	assert.Equal(t, "squat", folded[2].Name)
	assert.Equal(t, 2, folded[2].Count)
	assert.Equal(t, 110.0, folded[2].BestValue)

	assert.Empty(t, progress.SummarizeAll(nil, progress.Policy{}))
}

func TestSummarizeAll_Properties(t *testing.T) {
	faker := gofakeit.New(1337)
	names := []string{"Squat", "Bench", "Plank", "Row"}
	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)

	var all []entries.Entry
	for i := 0; i < 500; i++ {
		e := entries.Entry{
			ID:        faker.UUID(),
			Name:      faker.RandomString(names),
			Date:      start.AddDate(0, 0, faker.Number(0, 365)),
			CreatedAt: start.Add(time.Duration(faker.Number(0, 1000000)) * time.Second),
			Tracked:   faker.Bool(),
		}
		if e.Name == "Plank" {
			e.Metrics.Scalar = &entries.Scalar{Kind: entries.ScalarTime, Value: float64(faker.Number(10, 300))}
		} else {
			e.Metrics.Load = &entries.Load{Magnitude: faker.Float64Range(20, 200), Unit: entries.UnitKg}
		}
		all = append(all, e)
	}

	summaries := progress.SummarizeAll(all, progress.Policy{})
	for _, s := range summaries {
		values := make(map[float64]bool)
		untrackedOnly := make(map[float64]bool)
		count := 0
		for _, e := range all {
			if e.Name != s.Name {
				continue
			}
			v, _ := entries.ComparableValue(e)
			if e.Tracked {
				values[v] = true
				count++
			} else {
				untrackedOnly[v] = true
			}
		}
		assert.True(t, values[s.BestValue], "best value of %s not among qualifying values", s.Name)
		assert.True(t, values[s.LastValue], "last value of %s not among qualifying values", s.Name)
		assert.Equal(t, count, s.Count)
		for v := range values {
			assert.LessOrEqual(t, v, s.BestValue)
		}
		assert.False(t, s.LastDate.Before(s.FirstDate))
	}
}

func TestParseDirection(t *testing.T) {
	d, err := progress.ParseDirection("LOWER")
	require.NoError(t, err)
	assert.Equal(t, progress.Lower, d)

	_, err = progress.ParseDirection("sideways")
	assert.Error(t, err)
}
