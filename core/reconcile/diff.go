package reconcile

import "sort"

// Diff classifies two record sequences sorted ascending by SourceID with a merge-join.
// Every distribution record lands in exactly one of Deleted, Changed or Matched, and every
// source record in exactly one of Added, Changed or Matched. A changed pair is counted once.
// Source ids are assumed unique within each sequence.
func Diff(distribution, source []Event) *DiffResult {
	result := &DiffResult{
		Added:   []Event{},
		Deleted: []Event{},
		Changed: make(map[string]ChangeSet),
		Matched: []Event{},
	}

	i, j := 0, 0
	for i < len(distribution) && j < len(source) {
		d, s := distribution[i], source[j]
		switch {
		case d.SourceID < s.SourceID:
			result.Deleted = append(result.Deleted, d)
			i++
		case d.SourceID > s.SourceID:
			result.Added = append(result.Added, s)
			j++
		default:
			if changes := CompareFields(d, s); len(changes) > 0 {
				result.Changed[s.SourceID] = changes
			} else {
				result.Matched = append(result.Matched, s)
			}
			i++
			j++
		}
	}

	result.Deleted = append(result.Deleted, distribution[i:]...)
	result.Added = append(result.Added, source[j:]...)

	return result
}

// CompareFields returns the fields that differ between a distribution record and its source.
// Descriptions are NFC-normalised on both sides right before comparison.
func CompareFields(dist, src Event) ChangeSet {
	changes := make(ChangeSet)
	compare := func(field, old, new string) {
		if old != new {
			changes[field] = FieldChange{Old: old, New: new}
		}
	}

	compare(FieldDate, dist.Date, src.Date)
	compare(FieldStartTime, dist.StartTime, src.StartTime)
	compare(FieldEndTime, dist.EndTime, src.EndTime)
	compare(FieldTitle, dist.Title, src.Title)
	compare(FieldLocation, dist.Location, src.Location)
	compare(FieldDescription, NFC(dist.Description), NFC(src.Description))
	compare(FieldTrack, dist.Track, src.Track)

	return changes
}

// SortBySourceID returns a copy of events ordered by SourceID.
func SortBySourceID(events []Event) []Event {
	sorted := make([]Event, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].SourceID < sorted[j].SourceID
	})
	return sorted
}

// DiffFeeds runs the diff workflow: reunify the distribution records, sort both sides
// by source id and merge-join them. A source id repeated in source is fatal.
func DiffFeeds(distribution, source []Event) (*DiffReport, error) {
	reunified, err := Reunify(distribution)
	if err != nil {
		return nil, err
	}

	sortedSource := SortBySourceID(source)
	if err := checkUniqueSourceIDs(sortedSource); err != nil {
		return nil, err
	}

	result := Diff(SortBySourceID(reunified), sortedSource)

	return &DiffReport{
		Summary: DiffSummary{
			SourceCount:       len(source),
			DistributionCount: len(distribution),
			Added:             len(result.Added),
			Deleted:           len(result.Deleted),
			Changed:           len(result.Changed),
			Matched:           len(result.Matched),
		},
		Result: result,
	}, nil
}

// checkUniqueSourceIDs scans events sorted by SourceID for neighbours sharing an id.
// Records without an id are ignored.
func checkUniqueSourceIDs(sorted []Event) error {
	for i := 0; i < len(sorted); {
		j := i + 1
		for j < len(sorted) && sorted[j].SourceID == sorted[i].SourceID {
			j++
		}
		if n := j - i; n > 1 && sorted[i].SourceID != "" {
			return &DuplicateSourceIDError{SourceID: sorted[i].SourceID, Count: n}
		}
		i = j
	}
	return nil
}
