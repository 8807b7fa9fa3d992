package entries

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var ErrParse = errors.New("parse value")

// ParseError is returned when a value string cannot be read under its declared kind.
// The raw input is kept so the caller can show it back unchanged.
type ParseError struct {
	Kind   ScalarKind
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s value %q: %s", e.Kind, e.Input, e.Reason)
}

func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// ParseTime reads either a bare number of seconds or a "minutes:seconds" pair.
// A trailing " mins" / " min" (as produced by FormatTime) is accepted.
func ParseTime(input string) (float64, error) {
	s := strings.TrimSpace(input)
	inMinutes := false
	for _, suffix := range []string{"mins", "min"} {
		if strings.HasSuffix(s, suffix) {
			s = strings.TrimSpace(strings.TrimSuffix(s, suffix))
			inMinutes = true
			break
		}
	}
	if s == "" {
		return 0, &ParseError{Kind: ScalarTime, Input: input, Reason: "empty"}
	}

	if !strings.Contains(s, ":") {
		v, err := parseNonNegative(s)
		if err != nil {
			return 0, &ParseError{Kind: ScalarTime, Input: input, Reason: err.Error()}
		}
		if inMinutes {
			// "2 mins" is minutes, a bare "120" is seconds
			return v * 60, nil
		}
		return v, nil
	}

	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, &ParseError{Kind: ScalarTime, Input: input, Reason: "expected minutes:seconds"}
	}
	minutes, err := parseNonNegative(parts[0])
	if err != nil {
		return 0, &ParseError{Kind: ScalarTime, Input: input, Reason: "minutes: " + err.Error()}
	}
	seconds, err := parseNonNegative(parts[1])
	if err != nil {
		return 0, &ParseError{Kind: ScalarTime, Input: input, Reason: "seconds: " + err.Error()}
	}
	if seconds >= 60 {
		return 0, &ParseError{Kind: ScalarTime, Input: input, Reason: "seconds out of range"}
	}
	return minutes*60 + seconds, nil
}

// ParseValue reads a value for the given kind. Time values go through ParseTime,
// everything else must be a non-negative number.
func ParseValue(kind ScalarKind, input string) (float64, error) {
	if kind == ScalarTime {
		return ParseTime(input)
	}
	v, err := parseNonNegative(strings.TrimSpace(input))
	if err != nil {
		return 0, &ParseError{Kind: kind, Input: input, Reason: err.Error()}
	}
	return v, nil
}

func parseNonNegative(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.New("empty")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.New("not a number")
	}
	if v < 0 {
		return 0, errors.New("negative")
	}
	return v, nil
}
