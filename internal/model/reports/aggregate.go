package reports

import (
	"time"

	"github.com/jinzhu/now"
	"max.ks1230/yachtfleet/internal/entity/rental"
)

// MonthlyRevenue sums the total price of every rental that shares at least
// one day with the given month. A rental reaching into the month counts with
// its full price.
func MonthlyRevenue(records []rental.Record, month time.Month, year int) int64 {
	monthStart := now.With(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)).BeginningOfMonth()
	monthEnd := now.With(monthStart).EndOfMonth()

	var sum int64
	for _, r := range records {
		if r.Overlaps(monthStart, monthEnd) {
			sum += r.TotalPrice()
		}
	}
	return sum
}

func AnnualRevenue(records []rental.Record) int64 {
	var sum int64
	for _, r := range records {
		sum += r.TotalPrice()
	}
	return sum
}

// MostExpensive returns the first rental with the highest total price.
func MostExpensive(records []rental.Record) (rental.Record, bool) {
	if len(records) == 0 {
		return rental.Record{}, false
	}
	best := records[0]
	for _, r := range records[1:] {
		if r.TotalPrice() > best.TotalPrice() {
			best = r
		}
	}
	return best, true
}

func UniqueYachts(records []rental.Record) int {
	seen := make(map[int64]struct{}, len(records))
	for _, r := range records {
		seen[r.YachtID] = struct{}{}
	}
	return len(seen)
}

// MostRented returns the name occurring most often. On a tie the name seen
// first in load order wins.
func MostRented(records []rental.Record) (name string, count int, ok bool) {
	counts := make(map[string]int)
	order := make([]string, 0)
	for _, r := range records {
		if _, seen := counts[r.Name]; !seen {
			order = append(order, r.Name)
		}
		counts[r.Name]++
	}
	for _, n := range order {
		if counts[n] > count {
			name, count, ok = n, counts[n], true
		}
	}
	return name, count, ok
}

func AverageDuration(records []rental.Record) float64 {
	if len(records) == 0 {
		return 0
	}
	var days int64
	for _, r := range records {
		days += r.DurationDays()
	}
	return float64(days) / float64(len(records))
}
