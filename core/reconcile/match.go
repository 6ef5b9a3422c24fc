package reconcile

// IsMatch reports whether candidate, a distribution record, denotes the same event as
// reference, a source record. Track and description are ignored.
//
// The predicate is directional: a candidate ending at 23:59 matches a same-day reference
// with any end time (the first half of a midnight split), and a candidate starting at 00:00
// on the following day matches on end time alone (the second half).
func IsMatch(candidate, reference Event) bool {
	if candidate.Title != reference.Title || candidate.Location != reference.Location {
		return false
	}

	if sameDay(candidate.Date, reference.Date) {
		if candidate.StartTime != reference.StartTime {
			return false
		}
		return candidate.EndTime == reference.EndTime || candidate.EndTime == EndOfDay
	}

	if nextDay(candidate.Date, reference.Date) {
		return candidate.StartTime == Midnight && candidate.EndTime == reference.EndTime
	}

	return false
}

// FindMatch returns the first reference satisfying IsMatch against candidate.
func FindMatch(candidate Event, references []Event) (Event, bool) {
	for _, ref := range references {
		if IsMatch(candidate, ref) {
			return ref, true
		}
	}
	return Event{}, false
}

// FindTitleMatch returns the only reference sharing candidate's title.
// It reports false when no reference or more than one reference has that title.
func FindTitleMatch(candidate Event, references []Event) (Event, bool) {
	var (
		found Event
		count int
	)
	for _, ref := range references {
		if ref.Title != candidate.Title {
			continue
		}
		count++
		if count > 1 {
			return Event{}, false
		}
		found = ref
	}
	return found, count == 1
}

func sameDay(a, b string) bool {
	da, errA := ParseDate(a)
	db, errB := ParseDate(b)
	if errA != nil || errB != nil {
		return a == b
	}
	return da.Equal(db)
}

// nextDay reports whether a is exactly one calendar day after b.
func nextDay(a, b string) bool {
	da, err := ParseDate(a)
	if err != nil {
		return false
	}
	db, err := ParseDate(b)
	if err != nil {
		return false
	}
	return da.Equal(db.AddDate(0, 0, 1))
}
