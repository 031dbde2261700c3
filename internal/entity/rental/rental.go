package rental

import "time"

const DateLayout = "2006-01-02"

const day = 24 * time.Hour

// Record is one booking of a yacht. Start and End are both rental days.
type Record struct {
	UID        int64
	YachtID    int64
	Start      time.Time
	End        time.Time
	DailyPrice int64
	Name       string
}

// DurationDays counts both the first and the last day.
func (r Record) DurationDays() int64 {
	return daysBetween(r.Start, r.End) + 1
}

func (r Record) TotalPrice() int64 {
	return r.DurationDays() * r.DailyPrice
}

// Overlaps reports whether the record's days intersect [from, until].
func (r Record) Overlaps(from, until time.Time) bool {
	return !(r.End.Before(from) || r.Start.After(until))
}

func daysBetween(from, until time.Time) int64 {
	return int64(until.Sub(from).Round(day) / day)
}
