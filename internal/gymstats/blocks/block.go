package blocks

import (
	"fmt"
	"math"
	"time"
)

const DateLayout = "Jan 2, 2006"

// Block is a bounded or open-ended training period. At most one of EndDate and
// DurationWeeks is expected; if both are set DurationWeeks wins.
type Block struct {
	ID            string     `json:"id"`
	OwnerID       string     `json:"ownerId"`
	Name          string     `json:"name"`
	StartDate     time.Time  `json:"startDate"`
	EndDate       *time.Time `json:"endDate,omitempty"`
	DurationWeeks *int       `json:"durationWeeks,omitempty"`
	CompletedDate *time.Time `json:"completedDate,omitempty"`
}

// Mode can be one of:
//   - ongoing: no end date, no duration, not completed
//   - bounded_active: end date or duration set, not completed
//   - completed: completed date set (terminal)
type Mode string

const (
	ModeOngoing       Mode = "ongoing"
	ModeBoundedActive Mode = "bounded_active"
	ModeCompleted     Mode = "completed"
)

func (m Mode) String() string {
	return string(m)
}

func (b Block) Mode() Mode {
	switch {
	case b.CompletedDate != nil:
		return ModeCompleted
	case b.DurationWeeks != nil || b.EndDate != nil:
		return ModeBoundedActive
	default:
		return ModeOngoing
	}
}

func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// DaysBetween counts calendar days from one date to another (negative if to is earlier).
// Each date's calendar day is taken in its own location: stored dates come as UTC
// midnights while today is local, and neither must shift into the other's day.
func DaysBetween(from, to time.Time) int {
	return int(calendarDay(to).Sub(calendarDay(from)).Hours() / 24)
}

func calendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// WeeksBetween is the number of whole weeks from one date to another, floored.
func WeeksBetween(from, to time.Time) int {
	return int(math.Floor(float64(DaysBetween(from, to)) / 7))
}

// LastDay is the last calendar day of a bounded block, false for an open-ended one.
func (b Block) LastDay() (time.Time, bool) {
	start := StartOfDay(b.StartDate)
	if b.DurationWeeks != nil {
		return start.AddDate(0, 0, *b.DurationWeeks*7-1), true
	}
	if b.EndDate != nil {
		return StartOfDay(*b.EndDate), true
	}
	return time.Time{}, false
}

// TotalWeeks of a bounded block: the duration in weeks if set, else the inclusive
// day span up to the end date divided by 7, rounded up. Never less than 1.
// Open-ended blocks return 0.
func (b Block) TotalWeeks() int {
	if b.DurationWeeks != nil {
		return max(1, *b.DurationWeeks)
	}
	if b.EndDate != nil {
		span := DaysBetween(b.StartDate, *b.EndDate) + 1
		return max(1, int(math.Ceil(float64(span)/7)))
	}
	return 0
}

// CurrentWeek is the 1-based week index as of today. For a bounded block it stays
// within [1, TotalWeeks] even when today is before the start or after the end.
func (b Block) CurrentWeek(today time.Time) int {
	week := max(1, WeeksBetween(b.StartDate, today)+1)
	if total := b.TotalWeeks(); total > 0 {
		return min(week, total)
	}
	return week
}

// StatusText renders "Week <n>", "Week <n> of <total>", or "<start> – <completed>".
// A completed block never looks at today.
func (b Block) StatusText(today time.Time) string {
	switch b.Mode() {
	case ModeCompleted:
		return fmt.Sprintf("%s – %s", b.StartDate.Format(DateLayout), b.CompletedDate.Format(DateLayout))
	case ModeBoundedActive:
		return fmt.Sprintf("Week %d of %d", b.CurrentWeek(today), b.TotalWeeks())
	default:
		return fmt.Sprintf("Week %d", b.CurrentWeek(today))
	}
}

type Progress struct {
	Mode        Mode   `json:"mode"`
	CurrentWeek int    `json:"currentWeek,omitempty"`
	TotalWeeks  int    `json:"totalWeeks,omitempty"`
	Finished    bool   `json:"finished"`
	Text        string `json:"text"`
}

// Lifecycle computes the status of the block as of today.
// Finished is set for completed blocks and for bounded blocks whose last day is past.
func (b Block) Lifecycle(today time.Time) Progress {
	mode := b.Mode()
	p := Progress{
		Mode: mode,
		Text: b.StatusText(today),
	}

	switch mode {
	case ModeCompleted:
		p.Finished = true
	case ModeBoundedActive:
		p.CurrentWeek = b.CurrentWeek(today)
		p.TotalWeeks = b.TotalWeeks()
		lastDay, _ := b.LastDay()
		p.Finished = DaysBetween(lastDay, today) > 0
	default:
		p.CurrentWeek = b.CurrentWeek(today)
	}

	return p
}

// MarkCompleteEarly ends the block yesterday (relative to now). The duration is
// cleared so the explicit end date is the one in effect.
func MarkCompleteEarly(b Block, now time.Time) Block {
	yesterday := StartOfDay(now).AddDate(0, 0, -1)
	b.EndDate = &yesterday
	b.DurationWeeks = nil
	return b
}

// Complete closes the block as of now. Completed blocks are terminal.
func Complete(b Block, now time.Time) Block {
	if b.CompletedDate != nil {
		return b
	}
	completed := StartOfDay(now)
	b.CompletedDate = &completed
	return b
}

// Contains tells whether a date falls inside the block. The block ends on its
// completed date, else its last day, else (ongoing) today.
func (b Block) Contains(date, today time.Time) bool {
	if DaysBetween(b.StartDate, date) < 0 {
		return false
	}

	var end time.Time
	if b.CompletedDate != nil {
		end = *b.CompletedDate
	} else if lastDay, ok := b.LastDay(); ok {
		end = lastDay
	} else {
		end = today
	}
	return DaysBetween(date, end) >= 0
}
