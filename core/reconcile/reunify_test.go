package reconcile

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeSplit(t *testing.T) {
	a := event("9", "08/05/2016", "22:00", "23:59")
	a.Description = "first half"
	a.DistributionID = "D-1"
	b := event("9", "08/06/2016", "00:00", "01:00")
	b.Description = "second half"
	b.DistributionID = "D-2"

	for _, pair := range [][2]Event{{a, b}, {b, a}} {
		merged, err := MergeSplit(pair[0], pair[1])
		require.NoError(t, err)

		assert.Equal(t, "08/05/2016", merged.Date)
		assert.Equal(t, "22:00", merged.StartTime)
		assert.Equal(t, "01:00", merged.EndTime)
		assert.Equal(t, "first half", merged.Description)
		assert.Equal(t, "D-1", merged.DistributionID)
		assert.Equal(t, "9", merged.SourceID)
	}
}

func TestMergeSplit_SameDay(t *testing.T) {
	a := event("9", "08/05/2016", "10:00", "11:00")
	b := event("9", "08/05/2016", "12:00", "13:00")
	b.Title = "Encore"

	_, err := MergeSplit(a, b)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSameDaySplit))

	var sde *SameDaySplitError
	require.True(t, errors.As(err, &sde))
	assert.Equal(t, "Opening Ceremony", sde.FirstTitle)
	assert.Equal(t, "Encore", sde.SecondTitle)
	assert.Equal(t, "08/05/2016", sde.Date)
}

func TestMergeSplit_InvalidDate(t *testing.T) {
	_, err := MergeSplit(event("9", "soon", "10:00", "11:00"), event("9", "08/05/2016", "00:00", "01:00"))
	assert.True(t, errors.Is(err, ErrInvalidDate))
}

func TestReunify(t *testing.T) {
	t.Run("Split pair merged", func(t *testing.T) {
		events := []Event{
			event("9", "08/05/2016", "22:00", "23:59"),
			event("9", "08/06/2016", "00:00", "01:30"),
		}
		out, err := Reunify(events)
		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.Equal(t, "08/05/2016", out[0].Date)
		assert.Equal(t, "01:30", out[0].EndTime)
	})

	t.Run("Unique ids unchanged", func(t *testing.T) {
		events := []Event{
			event("1", "08/05/2016", "10:00", "11:00"),
			event("2", "08/05/2016", "12:00", "13:00"),
			event("3", "08/06/2016", "09:00", "10:00"),
		}
		out, err := Reunify(events)
		require.NoError(t, err)
		assert.ElementsMatch(t, events, out)
	})

	t.Run("Unmatched records dropped", func(t *testing.T) {
		events := []Event{
			event("1", "08/05/2016", "10:00", "11:00"),
			event("", "08/05/2016", "12:00", "13:00"),
		}
		out, err := Reunify(events)
		require.NoError(t, err)
		assert.Len(t, out, 1)
	})

	t.Run("Three records share an id", func(t *testing.T) {
		events := []Event{
			event("9", "08/05/2016", "22:00", "23:59"),
			event("9", "08/06/2016", "00:00", "01:30"),
			event("9", "08/07/2016", "00:00", "01:30"),
		}
		_, err := Reunify(events)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrExcessiveIDUse))

		var eiu *ExcessiveIDUseError
		require.True(t, errors.As(err, &eiu))
		assert.Equal(t, "9", eiu.SourceID)
		assert.Equal(t, 3, eiu.Count)
	})

	t.Run("Concatenated files keep every id once", func(t *testing.T) {
		fileA := []Event{event("1", "08/05/2016", "10:00", "11:00"), event("2", "08/05/2016", "12:00", "13:00")}
		fileB := []Event{event("3", "08/06/2016", "10:00", "11:00"), event("4", "08/06/2016", "12:00", "13:00")}

		out, err := Reunify(append(append([]Event{}, fileA...), fileB...))
		require.NoError(t, err)

		ids := make([]string, 0, len(out))
		for _, e := range out {
			ids = append(ids, e.SourceID)
		}
		assert.Equal(t, []string{"1", "2", "3", "4"}, ids)
	})
}
