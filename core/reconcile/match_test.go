package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func event(id, date, start, end string) Event {
	return Event{
		Title:     "Opening Ceremony",
		Date:      date,
		StartTime: start,
		EndTime:   end,
		Location:  "Main Hall",
		SourceID:  id,
	}
}

func TestIsMatch(t *testing.T) {
	ref := event("42", "08/05/2016", "19:00", "20:00")

	tests := []struct {
		name      string
		candidate Event
		want      bool
	}{
		{"Exact", event("", "08/05/2016", "19:00", "20:00"), true},
		{"Equivalent date format", event("", "8/5/2016", "19:00", "20:00"), true},
		{"Different start", event("", "08/05/2016", "19:30", "20:00"), false},
		{"Different end", event("", "08/05/2016", "19:00", "21:00"), false},
		{"Truncated at end of day", event("", "08/05/2016", "19:00", "23:59"), true},
		{"Previous day", event("", "08/04/2016", "19:00", "20:00"), false},
		{"Two days later", event("", "08/07/2016", "00:00", "20:00"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsMatch(tt.candidate, ref))
		})
	}

	t.Run("Different title", func(t *testing.T) {
		c := event("", "08/05/2016", "19:00", "20:00")
		c.Title = "Closing Ceremony"
		assert.False(t, IsMatch(c, ref))
	})

	t.Run("Different location", func(t *testing.T) {
		c := event("", "08/05/2016", "19:00", "20:00")
		c.Location = "Ballroom"
		assert.False(t, IsMatch(c, ref))
	})
}

func TestIsMatch_SecondHalf(t *testing.T) {
	ref := event("9", "08/05/2016", "22:00", "01:30")

	assert.True(t, IsMatch(event("", "08/06/2016", "00:00", "01:30"), ref))
	assert.False(t, IsMatch(event("", "08/06/2016", "00:30", "01:30"), ref))
	assert.False(t, IsMatch(event("", "08/06/2016", "00:00", "02:00"), ref))
	assert.False(t, IsMatch(event("", "bad-date", "00:00", "01:30"), ref))
}

func TestIsMatch_NotSymmetric(t *testing.T) {
	candidate := event("", "08/05/2016", "10:00", "23:59")
	reference := event("1", "08/05/2016", "10:00", "18:00")

	assert.True(t, IsMatch(candidate, reference))
	assert.False(t, IsMatch(reference, candidate))
}

func TestFindMatch_FirstWins(t *testing.T) {
	refs := []Event{
		event("1", "08/05/2016", "10:00", "11:00"),
		event("2", "08/05/2016", "10:00", "11:00"),
	}
	got, ok := FindMatch(event("", "08/05/2016", "10:00", "11:00"), refs)
	assert.True(t, ok)
	assert.Equal(t, "1", got.SourceID)

	_, ok = FindMatch(event("", "08/05/2016", "12:00", "13:00"), refs)
	assert.False(t, ok)
}

func TestFindTitleMatch(t *testing.T) {
	unique := event("1", "08/05/2016", "10:00", "11:00")
	other := event("2", "08/06/2016", "10:00", "11:00")
	other.Title = "Masquerade"

	got, ok := FindTitleMatch(event("", "08/09/2016", "09:00", "09:30"), []Event{unique, other})
	assert.True(t, ok)
	assert.Equal(t, "1", got.SourceID)

	dup := unique
	dup.SourceID = "3"
	_, ok = FindTitleMatch(event("", "08/09/2016", "09:00", "09:30"), []Event{unique, other, dup})
	assert.False(t, ok, "ambiguous title must not match")

	c := event("", "08/09/2016", "09:00", "09:30")
	c.Title = "Unknown"
	_, ok = FindTitleMatch(c, []Event{unique, other})
	assert.False(t, ok)
}
