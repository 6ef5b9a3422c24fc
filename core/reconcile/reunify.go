package reconcile

// Reunify collapses distribution records that were split across a day boundary.
// Records are grouped by SourceID; records without one are dropped since they cannot be grouped.
// A group of one passes through, a group of two is merged with MergeSplit, and any larger
// group fails with an ExcessiveIDUseError.
// Output follows the first appearance of each source id in events.
func Reunify(events []Event) ([]Event, error) {
	groups := make(map[string][]Event)
	var order []string

	for _, e := range events {
		if !e.HasSourceID() {
			continue
		}
		if _, seen := groups[e.SourceID]; !seen {
			order = append(order, e.SourceID)
		}
		groups[e.SourceID] = append(groups[e.SourceID], e)
	}

	out := make([]Event, 0, len(order))
	for _, id := range order {
		group := groups[id]
		switch len(group) {
		case 1:
			out = append(out, group[0])
		case 2:
			merged, err := MergeSplit(group[0], group[1])
			if err != nil {
				return nil, err
			}
			out = append(out, merged)
		default:
			return nil, &ExcessiveIDUseError{SourceID: id, Count: len(group)}
		}
	}
	return out, nil
}

// MergeSplit joins the two halves of a midnight split into one record.
// The earlier-dated half supplies every field except EndTime, which comes from the later half.
// Argument order does not matter.
func MergeSplit(a, b Event) (Event, error) {
	dayA, err := a.Day()
	if err != nil {
		return Event{}, err
	}
	dayB, err := b.Day()
	if err != nil {
		return Event{}, err
	}

	if dayA.Equal(dayB) {
		return Event{}, &SameDaySplitError{
			SourceID:    a.SourceID,
			FirstTitle:  a.Title,
			SecondTitle: b.Title,
			Date:        a.Date,
		}
	}

	first, second := a, b
	if dayB.Before(dayA) {
		first, second = b, a
	}

	merged := first
	merged.EndTime = second.EndTime
	return merged, nil
}
