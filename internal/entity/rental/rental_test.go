package rental

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func Test_OnDerivedValues_ShouldCountBothEnds(t *testing.T) {
	r := Record{Start: date(2024, 1, 1), End: date(2024, 1, 5), DailyPrice: 100}
	assert.Equal(t, int64(5), r.DurationDays())
	assert.Equal(t, int64(500), r.TotalPrice())

	single := Record{Start: date(2024, 1, 1), End: date(2024, 1, 1), DailyPrice: 500}
	assert.Equal(t, int64(1), single.DurationDays())
	assert.Equal(t, int64(500), single.TotalPrice())
}

func Test_OnDurationAcrossLeapDay_ShouldIncludeIt(t *testing.T) {
	r := Record{Start: date(2024, 2, 28), End: date(2024, 3, 1), DailyPrice: 10}
	assert.Equal(t, int64(3), r.DurationDays())
}

func Test_OnOverlaps_ShouldTouchOnBoundaries(t *testing.T) {
	r := Record{Start: date(2024, 1, 25), End: date(2024, 2, 3)}
	assert.True(t, r.Overlaps(date(2024, 2, 1), date(2024, 2, 29)))
	assert.True(t, r.Overlaps(date(2024, 1, 1), date(2024, 1, 31)))
	assert.True(t, r.Overlaps(date(2024, 2, 3), date(2024, 2, 3)))
	assert.False(t, r.Overlaps(date(2024, 3, 1), date(2024, 3, 31)))
}

func Test_OnFindConflicts_ShouldPairSameYachtOverlaps(t *testing.T) {
	records := []Record{
		{UID: 1, YachtID: 1, Start: date(2024, 1, 1), End: date(2024, 1, 5)},
		{UID: 2, YachtID: 1, Start: date(2024, 1, 5), End: date(2024, 1, 8)},
		{UID: 3, YachtID: 2, Start: date(2024, 1, 1), End: date(2024, 1, 8)},
		{UID: 4, YachtID: 1, Start: date(2024, 1, 9), End: date(2024, 1, 10)},
	}
	conflicts := FindConflicts(records)
	if assert.Len(t, conflicts, 1) {
		assert.Equal(t, int64(1), conflicts[0].First.UID)
		assert.Equal(t, int64(2), conflicts[0].Second.UID)
	}
}
