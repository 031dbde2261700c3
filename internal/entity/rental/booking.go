package rental

type Conflict struct {
	First  Record
	Second Record
}

// FindConflicts returns every pair of rentals of the same yacht sharing at
// least one day, in load order.
func FindConflicts(records []Record) []Conflict {
	var res []Conflict
	for i := range records {
		for j := i + 1; j < len(records); j++ {
			a, b := records[i], records[j]
			if a.YachtID == b.YachtID && a.Overlaps(b.Start, b.End) {
				res = append(res, Conflict{First: a, Second: b})
			}
		}
	}
	return res
}
