package muscleload

import (
	"strings"

	"github.com/2beens/gyminsights/internal/gymstats/entries"
)

// Catalog maps movement names to the muscles they engage.
// Lookups ignore case and surrounding whitespace.
type Catalog struct {
	byName map[string]Contribution
}

func NewCatalog(contributions ...Contribution) *Catalog {
	c := &Catalog{
		byName: make(map[string]Contribution),
	}
	for _, contribution := range contributions {
		c.Add(contribution)
	}
	return c
}

// DefaultCatalog knows the common barbell, dumbbell and bodyweight movements.
func DefaultCatalog() *Catalog {
	return NewCatalog(
		NewContribution("Squat", []MuscleGroup{Quads, Glutes}, []MuscleGroup{Hamstrings, Core}),
		NewContribution("Front Squat", []MuscleGroup{Quads}, []MuscleGroup{Glutes, Core}),
		NewContribution("Deadlift", []MuscleGroup{Hamstrings, Glutes, Back}, []MuscleGroup{Forearms, Core, Quads}),
		NewContribution("Romanian Deadlift", []MuscleGroup{Hamstrings, Glutes}, []MuscleGroup{Back, Forearms}),
		NewContribution("Lunge", []MuscleGroup{Quads, Glutes}, []MuscleGroup{Hamstrings, Calves}),
		NewContribution("Bench Press", []MuscleGroup{Chest}, []MuscleGroup{Triceps, Shoulders}),
		NewContribution("Incline Bench Press", []MuscleGroup{Chest, Shoulders}, []MuscleGroup{Triceps}),
		NewContribution("Push Up", []MuscleGroup{Chest}, []MuscleGroup{Triceps, Shoulders, Core}),
		NewContribution("Overhead Press", []MuscleGroup{Shoulders}, []MuscleGroup{Triceps, Core}),
		NewContribution("Pull Up", []MuscleGroup{Back}, []MuscleGroup{Biceps, Forearms}),
		NewContribution("Barbell Row", []MuscleGroup{Back}, []MuscleGroup{Biceps, Forearms}),
		NewContribution("Dip", []MuscleGroup{Triceps, Chest}, []MuscleGroup{Shoulders}),
		NewContribution("Biceps Curl", []MuscleGroup{Biceps}, []MuscleGroup{Forearms}),
		NewContribution("Triceps Extension", []MuscleGroup{Triceps}, nil),
		NewContribution("Calf Raise", []MuscleGroup{Calves}, nil),
		NewContribution("Plank", []MuscleGroup{Core}, []MuscleGroup{Shoulders}),
		NewContribution("Farmer Carry", []MuscleGroup{Forearms}, []MuscleGroup{Core, Back}),
		NewContribution("Kettlebell Swing", []MuscleGroup{Glutes, Hamstrings}, []MuscleGroup{Core, Back, Shoulders}),
		NewContribution("Burpee", []MuscleGroup{FullBody}, []MuscleGroup{Chest, Quads}),
	)
}

func normalizeName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}

// Add registers (or replaces) the contribution of a movement.
func (c *Catalog) Add(contribution Contribution) {
	c.byName[normalizeName(contribution.Exercise)] = contribution
}

func (c *Catalog) Lookup(name string) (Contribution, bool) {
	contribution, ok := c.byName[normalizeName(name)]
	return contribution, ok
}

func (c *Catalog) Len() int {
	return len(c.byName)
}

// Performed turns the tracked entries of a scope into performed exercises, one per
// movement, weighted by its number of tracked entries (sets). Movement names not in
// the catalog are returned separately, in group order.
func (c *Catalog) Performed(all []entries.Entry) (performed []Performed, unknown []string) {
	for _, group := range entries.GroupByName(all) {
		sets := len(group.Tracked())
		if sets == 0 {
			continue
		}
		contribution, ok := c.Lookup(group.Name)
		if !ok {
			unknown = append(unknown, group.Name)
			continue
		}
		performed = append(performed, Performed{
			Contribution: contribution,
			Weight:       float64(sets),
		})
	}
	return performed, unknown
}
