package entries

import (
	"fmt"
	"strings"
	"time"
)

// Entry is one logged instance of a movement on a date.
type Entry struct {
	ID        string    `json:"id,omitempty"`
	OwnerID   string    `json:"ownerId"`
	Date      time.Time `json:"date"`
	CreatedAt time.Time `json:"createdAt"`
	Name      string    `json:"name"`
	Details   string    `json:"details,omitempty"`
	Tracked   bool      `json:"tracked"`
	Metrics   Metrics   `json:"metrics"`
}

// Metrics holds either the legacy single-metric shape (Scalar)
// or the load/volume pair. Historical data may use both shapes.
type Metrics struct {
	Load   *Load   `json:"load,omitempty"`
	Volume *Volume `json:"volume,omitempty"`
	Scalar *Scalar `json:"scalar,omitempty"`
}

type Load struct {
	Magnitude  float64    `json:"magnitude"`
	Unit       Unit       `json:"unit"`
	Multiplier Multiplier `json:"multiplier"`
}

type Volume struct {
	Count float64    `json:"count"`
	Kind  VolumeKind `json:"kind"`
}

type Scalar struct {
	Kind  ScalarKind `json:"kind"`
	Value float64    `json:"value"`
	Unit  *string    `json:"unit,omitempty"`
}

// Unit can be one of:
//   - kg
//   - lb
type Unit string

const (
	UnitKg Unit = "kg"
	UnitLb Unit = "lb"
)

func (u Unit) IsValid() bool {
	switch u {
	case UnitKg, UnitLb:
		return true
	default:
		return false
	}
}

// Multiplier tells whether a load is held once (single) or in each hand (double).
type Multiplier string

const (
	MultiplierSingle Multiplier = "single"
	MultiplierDouble Multiplier = "double"
)

func (m Multiplier) IsValid() bool {
	switch m {
	case MultiplierSingle, MultiplierDouble:
		return true
	default:
		return false
	}
}

type VolumeKind string

const (
	VolumeReps   VolumeKind = "reps"
	VolumeRounds VolumeKind = "rounds"
)

func (k VolumeKind) IsValid() bool {
	switch k {
	case VolumeReps, VolumeRounds:
		return true
	default:
		return false
	}
}

type ScalarKind string

const (
	ScalarWeight ScalarKind = "weight"
	ScalarTime   ScalarKind = "time"
	ScalarReps   ScalarKind = "reps"
)

func (k ScalarKind) IsValid() bool {
	switch k {
	case ScalarWeight, ScalarTime, ScalarReps:
		return true
	default:
		return false
	}
}

func ParseScalarKind(input string) (ScalarKind, error) {
	k := ScalarKind(strings.TrimSpace(strings.ToLower(input)))
	if !k.IsValid() {
		return "", fmt.Errorf("invalid scalar kind: %q", input)
	}
	return k, nil
}

// MetricKind is the kind of the comparable value of an entry.
type MetricKind string

const (
	KindWeight MetricKind = "weight"
	KindTime   MetricKind = "time"
	KindReps   MetricKind = "reps"
	KindRounds MetricKind = "rounds"
)

func (k MetricKind) String() string {
	return string(k)
}

// StartOfDay truncates t to midnight in its own location.
// Entry dates are calendar dates, so every comparison goes through this.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// Before orders entries by (start-of-day date, createdAt).
func Before(a, b Entry) bool {
	da, db := StartOfDay(a.Date), StartOfDay(b.Date)
	if !da.Equal(db) {
		return da.Before(db)
	}
	return a.CreatedAt.Before(b.CreatedAt)
}
