// Package progress computes per-movement progress summaries
// (last/best value, number of sessions, date span) from logged entries.
package progress

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/2beens/gyminsights/internal/gymstats/entries"
)

const DateLayout = "Jan 2, 2006"

// Direction says which of two time values is the better one.
type Direction string

const (
	// Higher treats longer efforts as better, e.g. a timed static hold.
	Higher Direction = "higher"
	// Lower treats shorter efforts as better, e.g. a timed sprint.
	Lower Direction = "lower"
)

func (d Direction) IsValid() bool {
	switch d {
	case Higher, Lower:
		return true
	default:
		return false
	}
}

func ParseDirection(input string) (Direction, error) {
	d := Direction(strings.TrimSpace(strings.ToLower(input)))
	if !d.IsValid() {
		return "", fmt.Errorf("invalid direction: %q", input)
	}
	return d, nil
}

// Policy holds the per-movement direction for time based movements.
// Movements not listed use Higher. Weight, reps and rounds are always Higher.
type Policy struct {
	TimeDirections map[string]Direction
	GroupOptions   []entries.GroupOption
}

// timeDirection looks the movement up the way it was grouped. An exact match wins
// over a folded one; among folded matches the smallest configured name does.
func (p Policy) timeDirection(movement string) Direction {
	if d, ok := p.TimeDirections[movement]; ok && d.IsValid() {
		return d
	}

	key := entries.NameKey(movement, p.GroupOptions...)
	names := make([]string, 0, len(p.TimeDirections))
	for name := range p.TimeDirections {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		d := p.TimeDirections[name]
		if d.IsValid() && entries.NameKey(name, p.GroupOptions...) == key {
			return d
		}
	}

	return Higher
}

type Summary struct {
	Name      string             `json:"name"`
	Kind      entries.MetricKind `json:"kind"`
	LastValue float64            `json:"lastValue"`
	BestValue float64            `json:"bestValue"`
	LastText  string             `json:"lastText"`
	BestText  string             `json:"bestText"`
	Count     int                `json:"count"`
	FirstDate time.Time          `json:"firstDate"`
	LastDate  time.Time          `json:"lastDate"`
}

// Summarize computes the summary of one movement group. Only tracked entries with a
// comparable value count; with none the summary is absent (false).
func Summarize(group entries.MovementGroup, policy Policy) (Summary, bool) {
	var qualifying []entries.Entry
	for _, e := range group.Entries {
		if !e.Tracked {
			continue
		}
		if _, ok := entries.ComparableValue(e); !ok {
			continue
		}
		qualifying = append(qualifying, e)
	}
	if len(qualifying) == 0 {
		return Summary{}, false
	}

	// group entries are already ordered, but a hand-built group may not be
	first, last := qualifying[0], qualifying[0]
	for _, e := range qualifying[1:] {
		if entries.Before(e, first) {
			first = e
		}
		if !entries.Before(e, last) {
			last = e
		}
	}

	kind, _ := entries.KindOf(last)
	lastValue, _ := entries.ComparableValue(last)

	better := func(a, b float64) bool { return a > b }
	if kind == entries.KindTime && policy.timeDirection(group.Name) == Lower {
		better = func(a, b float64) bool { return a < b }
	}

	best := qualifying[0]
	bestValue, _ := entries.ComparableValue(best)
	for _, e := range qualifying[1:] {
		v, _ := entries.ComparableValue(e)
		if better(v, bestValue) {
			best, bestValue = e, v
		}
	}

	return Summary{
		Name:      group.Name,
		Kind:      kind,
		LastValue: lastValue,
		BestValue: bestValue,
		LastText:  entries.Format(last),
		BestText:  entries.Format(best),
		Count:     len(qualifying),
		FirstDate: entries.StartOfDay(first.Date),
		LastDate:  entries.StartOfDay(last.Date),
	}, true
}

// SummarizeAll groups the entries by movement and summarizes every group,
// leaving out movements without any qualifying entry. Group order is kept.
func SummarizeAll(all []entries.Entry, policy Policy) []Summary {
	groups := entries.GroupByName(all, policy.GroupOptions...)
	summaries := make([]Summary, 0, len(groups))
	for _, g := range groups {
		if s, ok := Summarize(g, policy); ok {
			summaries = append(summaries, s)
		}
	}
	return summaries
}

// DateRangeText renders "on <date>" for a single day and "since <first date>" otherwise.
func DateRangeText(s Summary) string {
	if entries.StartOfDay(s.FirstDate).Equal(entries.StartOfDay(s.LastDate)) {
		return "on " + s.FirstDate.Format(DateLayout)
	}
	return "since " + s.FirstDate.Format(DateLayout)
}
