// Package muscleload combines primary and secondary muscle engagement of the
// exercises performed in a scope (a block, or all history) into a render-ready
// distribution.
package muscleload

import (
	"fmt"
	"math"
	"sort"
)

const (
	PrimaryWeight   = 0.7
	SecondaryWeight = 0.3
	// MaxBarWidth is the share of available width the largest bar fills.
	MaxBarWidth = 0.75
)

// Share is the fraction (0..1) of the exercise selection that engages a muscle
// as primary and as secondary.
type Share struct {
	Primary   float64 `json:"primary"`
	Secondary float64 `json:"secondary"`
}

// Performed is one exercise done in the scope. Weight is the basis the shares
// are computed on: 1 per exercise, or its number of sets.
type Performed struct {
	Contribution Contribution
	Weight       float64
}

// ComputeShares turns performed exercises into per-muscle shares.
// Exercises with a non-positive weight are ignored. A muscle counts once per
// exercise, as primary if listed there, so a hand-built Contribution cannot
// count it twice.
func ComputeShares(performed []Performed) map[MuscleGroup]Share {
	var total float64
	for _, p := range performed {
		if p.Weight > 0 {
			total += p.Weight
		}
	}

	shares := make(map[MuscleGroup]Share)
	if total == 0 {
		return shares
	}

	for _, p := range performed {
		if p.Weight <= 0 {
			continue
		}
		counted := make(map[MuscleGroup]bool, len(p.Contribution.Primary)+len(p.Contribution.Secondary))
		for _, m := range p.Contribution.Primary {
			if counted[m] {
				continue
			}
			counted[m] = true
			s := shares[m]
			s.Primary += p.Weight / total
			shares[m] = s
		}
		for _, m := range p.Contribution.Secondary {
			if counted[m] {
				continue
			}
			counted[m] = true
			s := shares[m]
			s.Secondary += p.Weight / total
			shares[m] = s
		}
	}

	return shares
}

// Bar is the rendered load of one muscle group. Percent is the true weighted
// total and is what the label shows; the widths are scaled relative to the
// largest total so that it fills MaxBarWidth.
type Bar struct {
	Muscle         MuscleGroup `json:"muscle"`
	Percent        float64     `json:"percent"`
	PrimaryWidth   float64     `json:"primaryWidth"`
	SecondaryWidth float64     `json:"secondaryWidth"`
}

// Width is the full (primary + secondary) rendered width.
func (b Bar) Width() float64 {
	return b.PrimaryWidth + b.SecondaryWidth
}

// Label renders the unscaled weighted percentage, e.g. "42%".
func (b Bar) Label() string {
	return fmt.Sprintf("%d%%", int(math.Round(b.Percent*100)))
}

// Aggregate weighs primary engagement 0.7 and secondary 0.3, drops muscles with no
// load and returns the bars sorted by total, largest first.
func Aggregate(shares map[MuscleGroup]Share) []Bar {
	type weighted struct {
		muscle    MuscleGroup
		primary   float64
		secondary float64
		total     float64
	}

	var (
		all      []weighted
		maxTotal float64
	)
	for m, s := range shares {
		w := weighted{
			muscle:    m,
			primary:   s.Primary * PrimaryWeight,
			secondary: s.Secondary * SecondaryWeight,
		}
		w.total = w.primary + w.secondary
		if w.total == 0 {
			continue
		}
		if w.total > maxTotal {
			maxTotal = w.total
		}
		all = append(all, w)
	}

	if maxTotal == 0 {
		return []Bar{}
	}

	barScale := MaxBarWidth / maxTotal
	bars := make([]Bar, 0, len(all))
	for _, w := range all {
		bars = append(bars, Bar{
			Muscle:         w.muscle,
			Percent:        w.total,
			PrimaryWidth:   w.primary * barScale,
			SecondaryWidth: w.secondary * barScale,
		})
	}

	sort.Slice(bars, func(i, j int) bool {
		if bars[i].Percent != bars[j].Percent {
			return bars[i].Percent > bars[j].Percent
		}
		return bars[i].Muscle < bars[j].Muscle
	})

	return bars
}
