package muscleload

import (
	"fmt"
	"sort"
	"strings"
)

// MuscleGroup can be one of:
//   - chest, back, shoulders
//   - biceps, triceps, forearms
//   - core, glutes, quads, hamstrings, calves
//   - full_body
type MuscleGroup string

const (
	Chest      MuscleGroup = "chest"
	Back       MuscleGroup = "back"
	Shoulders  MuscleGroup = "shoulders"
	Biceps     MuscleGroup = "biceps"
	Triceps    MuscleGroup = "triceps"
	Forearms   MuscleGroup = "forearms"
	Core       MuscleGroup = "core"
	Glutes     MuscleGroup = "glutes"
	Quads      MuscleGroup = "quads"
	Hamstrings MuscleGroup = "hamstrings"
	Calves     MuscleGroup = "calves"
	FullBody   MuscleGroup = "full_body"
)

func (m MuscleGroup) String() string {
	return string(m)
}

func (m MuscleGroup) IsValid() bool {
	switch m {
	case Chest, Back, Shoulders,
		Biceps, Triceps, Forearms,
		Core, Glutes, Quads, Hamstrings, Calves,
		FullBody:
		return true
	default:
		return false
	}
}

func ParseMuscleGroup(input string) (MuscleGroup, error) {
	s := strings.TrimSpace(strings.ToLower(input))
	s = strings.ReplaceAll(s, " ", "_")
	m := MuscleGroup(s)
	if !m.IsValid() {
		return "", fmt.Errorf("invalid muscle group: %q", input)
	}
	return m, nil
}

// Contribution tells which muscles an exercise engages as primary and as secondary.
// Secondary never contains a primary muscle.
type Contribution struct {
	Exercise  string        `json:"exercise"`
	Primary   []MuscleGroup `json:"primary"`
	Secondary []MuscleGroup `json:"secondary"`
}

// NewContribution builds a contribution with both sets deduplicated and sorted,
// and secondary reported net of primary.
func NewContribution(exercise string, primary, secondary []MuscleGroup) Contribution {
	primarySet := make(map[MuscleGroup]bool, len(primary))
	for _, m := range primary {
		primarySet[m] = true
	}
	secondarySet := make(map[MuscleGroup]bool, len(secondary))
	for _, m := range secondary {
		if !primarySet[m] {
			secondarySet[m] = true
		}
	}

	return Contribution{
		Exercise:  exercise,
		Primary:   sortedMuscles(primarySet),
		Secondary: sortedMuscles(secondarySet),
	}
}

func sortedMuscles(set map[MuscleGroup]bool) []MuscleGroup {
	muscles := make([]MuscleGroup, 0, len(set))
	for m := range set {
		muscles = append(muscles, m)
	}
	sort.Slice(muscles, func(i, j int) bool {
		return muscles[i] < muscles[j]
	})
	return muscles
}
