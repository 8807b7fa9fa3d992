package entries

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ComparableValue resolves either metric shape into a single number:
// the scalar value if present, else the load magnitude.
// Returns false when the entry carries nothing quantifiable.
func ComparableValue(e Entry) (float64, bool) {
	if e.Metrics.Scalar != nil {
		return e.Metrics.Scalar.Value, true
	}
	if e.Metrics.Load != nil {
		return e.Metrics.Load.Magnitude, true
	}
	return 0, false
}

// KindOf returns the kind of the value ComparableValue would return.
func KindOf(e Entry) (MetricKind, bool) {
	if s := e.Metrics.Scalar; s != nil {
		switch s.Kind {
		case ScalarTime:
			return KindTime, true
		case ScalarReps:
			return KindReps, true
		default:
			return KindWeight, true
		}
	}
	if e.Metrics.Load != nil {
		return KindWeight, true
	}
	return "", false
}

// FormatNumber renders v without a trailing ".0".
func FormatNumber(v float64) string {
	if v == math.Trunc(v) && !math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatTime renders seconds as "M:SS mins", or "N mins" on whole minutes.
func FormatTime(seconds float64) string {
	total := int(math.Floor(seconds))
	minutes := total / 60
	secs := total % 60
	if secs == 0 {
		return fmt.Sprintf("%d mins", minutes)
	}
	return fmt.Sprintf("%d:%02d mins", minutes, secs)
}

func formatLoad(l Load) string {
	s := FormatNumber(l.Magnitude) + string(l.Unit)
	if l.Multiplier == MultiplierDouble {
		return "2x" + s
	}
	return s
}

func formatVolume(v Volume) string {
	return FormatNumber(v.Count) + " " + string(v.Kind)
}

func formatScalar(s Scalar) string {
	switch s.Kind {
	case ScalarTime:
		return FormatTime(s.Value)
	case ScalarReps:
		return FormatNumber(s.Value) + " reps"
	default:
		if s.Unit != nil {
			return FormatNumber(s.Value) + strings.TrimSpace(*s.Unit)
		}
		return FormatNumber(s.Value)
	}
}

// Format renders an entry's metrics for display, whichever shape it uses.
func Format(e Entry) string {
	if e.Metrics.Scalar != nil {
		return formatScalar(*e.Metrics.Scalar)
	}

	var parts []string
	if e.Metrics.Load != nil {
		parts = append(parts, formatLoad(*e.Metrics.Load))
	}
	if e.Metrics.Volume != nil {
		parts = append(parts, formatVolume(*e.Metrics.Volume))
	}
	return strings.Join(parts, " x ")
}
