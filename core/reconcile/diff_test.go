package reconcile

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiff_Identical(t *testing.T) {
	events := []Event{
		event("1", "08/05/2016", "10:00", "11:00"),
		event("2", "08/05/2016", "12:00", "13:00"),
	}

	result := Diff(events, events)
	assert.Len(t, result.Matched, 2)
	assert.Empty(t, result.Added)
	assert.Empty(t, result.Deleted)
	assert.Empty(t, result.Changed)
}

func TestDiff_Classification(t *testing.T) {
	dist := []Event{
		event("1", "08/05/2016", "10:00", "11:00"),
		event("2", "08/05/2016", "12:00", "13:00"),
		event("4", "08/06/2016", "09:00", "10:00"),
		event("6", "08/06/2016", "11:00", "12:00"),
	}
	changed := event("4", "08/06/2016", "09:30", "10:00")
	changed.Track = "Panels"
	src := []Event{
		event("2", "08/05/2016", "12:00", "13:00"),
		event("3", "08/05/2016", "14:00", "15:00"),
		changed,
		event("5", "08/07/2016", "10:00", "11:00"),
		event("7", "08/07/2016", "12:00", "13:00"),
	}

	result := Diff(dist, src)

	require.Len(t, result.Deleted, 2)
	assert.Equal(t, "1", result.Deleted[0].SourceID)
	assert.Equal(t, "6", result.Deleted[1].SourceID)

	require.Len(t, result.Added, 3)
	assert.Equal(t, "3", result.Added[0].SourceID)
	assert.Equal(t, "5", result.Added[1].SourceID)
	assert.Equal(t, "7", result.Added[2].SourceID)

	require.Len(t, result.Matched, 1)
	assert.Equal(t, "2", result.Matched[0].SourceID)

	require.Contains(t, result.Changed, "4")
	assert.Equal(t, ChangeSet{
		FieldStartTime: {Old: "09:00", New: "09:30"},
		FieldTrack:     {Old: "", New: "Panels"},
	}, result.Changed["4"])

	// Each distribution record lands in deleted, changed or matched exactly once;
	// each source record in added, changed or matched exactly once.
	assert.Equal(t, len(dist), len(result.Deleted)+len(result.Changed)+len(result.Matched))
	assert.Equal(t, len(src), len(result.Added)+len(result.Changed)+len(result.Matched))
}

func TestDiff_EmptySides(t *testing.T) {
	events := []Event{event("1", "08/05/2016", "10:00", "11:00")}

	result := Diff(nil, events)
	assert.Len(t, result.Added, 1)
	assert.Empty(t, result.Deleted)

	result = Diff(events, nil)
	assert.Len(t, result.Deleted, 1)
	assert.Empty(t, result.Added)
}

func TestCompareFields_DescriptionNFC(t *testing.T) {
	d := event("1", "08/05/2016", "10:00", "11:00")
	s := d
	d.Description = "Cafe\u0301"
	s.Description = "Caf\u00e9"
	assert.Empty(t, CompareFields(d, s))

	s.Description = "Bar"
	changes := CompareFields(d, s)
	assert.Equal(t, FieldChange{Old: "Caf\u00e9", New: "Bar"}, changes[FieldDescription])
}

func TestDiffFeeds(t *testing.T) {
	src, err := NewSourceEvent(map[string]string{
		ColScheduleID:  "42",
		ColTitle:       "Opening Ceremony",
		ColDate:        "08/05/2016",
		ColStartTime:   "19:00",
		ColEndTime:     "20:00",
		ColLocation:    "Main Hall",
		ColDescription: "Welcome to the show",
	})
	require.NoError(t, err)

	cells := []string{"Opening Ceremony", "08/05/2016", "19:00", "20:00", "Welcome to the show [afestid:42]", "Main Hall", "", "D-1"}
	dist, err := NewDistributionEvent(cells)
	require.NoError(t, err)
	assert.True(t, IsMatch(dist, src))

	t.Run("Matched", func(t *testing.T) {
		report, err := DiffFeeds([]Event{dist}, []Event{src})
		require.NoError(t, err)
		assert.Equal(t, 1, report.Summary.Matched)
		assert.Equal(t, 0, report.Summary.Changed)
	})

	t.Run("Changed description", func(t *testing.T) {
		edited := dist
		edited.Description = "Welcome!"
		report, err := DiffFeeds([]Event{edited}, []Event{src})
		require.NoError(t, err)
		require.Contains(t, report.Result.Changed, "42")
		assert.Contains(t, report.Result.Changed["42"], FieldDescription)
	})

	t.Run("Split halves reunified before diff", func(t *testing.T) {
		late := src
		late.SourceID = "50"
		late.StartTime = "22:00"
		late.EndTime = "01:00"

		first := late
		first.EndTime = EndOfDay
		second := late
		second.Date = "08/06/2016"
		second.StartTime = Midnight

		report, err := DiffFeeds([]Event{second, dist, first}, []Event{late, src})
		require.NoError(t, err)
		assert.Equal(t, 2, report.Summary.Matched)
		assert.Equal(t, 3, report.Summary.DistributionCount)
		assert.Equal(t, 2, report.Summary.SourceCount)
	})

	t.Run("Duplicate source id", func(t *testing.T) {
		early := event("5", "08/05/2016", "10:00", "11:00")
		late := event("5", "08/05/2016", "12:00", "13:00")

		report, err := DiffFeeds([]Event{early}, []Event{src, late, early})
		require.Error(t, err)
		assert.Nil(t, report)
		assert.True(t, errors.Is(err, ErrDuplicateSourceID))

		var dup *DuplicateSourceIDError
		require.True(t, errors.As(err, &dup))
		assert.Equal(t, "5", dup.SourceID)
		assert.Equal(t, 2, dup.Count)
	})

	t.Run("Reunify error propagates", func(t *testing.T) {
		_, err := DiffFeeds([]Event{dist, dist}, []Event{src})
		assert.ErrorIs(t, err, ErrSameDaySplit)
	})
}

func TestSortBySourceID(t *testing.T) {
	in := []Event{event("b", "", "", ""), event("a", "", "", ""), event("c", "", "", "")}
	out := SortBySourceID(in)
	assert.Equal(t, "a", out[0].SourceID)
	assert.Equal(t, "c", out[2].SourceID)
	assert.Equal(t, "b", in[0].SourceID, "input must not be reordered")
}

func TestCheckUniqueSourceIDs(t *testing.T) {
	unique := SortBySourceID([]Event{event("2", "", "", ""), event("1", "", "", ""), event("", "", "", ""), event("", "", "", "")})
	assert.NoError(t, checkUniqueSourceIDs(unique), "records without an id are not duplicates")

	dups := SortBySourceID([]Event{event("7", "", "", ""), event("3", "", "", ""), event("7", "", "", ""), event("7", "", "", "")})
	err := checkUniqueSourceIDs(dups)
	var dup *DuplicateSourceIDError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, DuplicateSourceIDError{SourceID: "7", Count: 3}, *dup)
}
