package reconcile

import (
	"regexp"
	"strings"
	"time"
)

// Source feed column names.
const (
	ColTitle       = "Session Title"
	ColDate        = "Date"
	ColStartTime   = "Start Time"
	ColEndTime     = "End Time"
	ColDescription = "Description"
	ColLocation    = "Location"
	ColTrack       = "Track Title"
	ColUID         = "UID"
	ColScheduleID  = "id_schedule_block"
)

// SourceColumns lists the keys every source row must carry.
var SourceColumns = []string{
	ColTitle, ColDate, ColStartTime, ColEndTime, ColDescription,
	ColLocation, ColTrack, ColUID, ColScheduleID,
}

// Positions of the distribution feed cells.
const (
	CellTitle = iota
	CellDate
	CellStartTime
	CellEndTime
	CellDescription
	CellLocation
	CellTrack
	CellDistributionID

	// DistributionWidth is the number of cells a distribution row carries.
	DistributionWidth
)

const (
	// Midnight is the start time of the second half of a split event.
	Midnight = "00:00"
	// EndOfDay is the end time of the first half of a split event.
	EndOfDay = "23:59"
)

// DateLayouts are the accepted feed date formats, tried in order.
var DateLayouts = []string{"01/02/2006", "1/2/2006", "2006-01-02"}

var (
	idTagPattern = regexp.MustCompile(`(?i)\s*\[afestid:([^\]]+)\]$`)

	markupReplacer = strings.NewReplacer(
		"&nbsp;", " ",
		"<br />", "\n",
		"<br/>", "\n",
		"<br>", "\n",
	)
)

// Event is one schedule session from either feed.
// Values are built by NewSourceEvent or NewDistributionEvent and treated as immutable.
type Event struct {
	Title       string `json:"title" yaml:"title"`
	Date        string `json:"date" yaml:"date"`
	StartTime   string `json:"start_time" yaml:"start_time"`
	EndTime     string `json:"end_time" yaml:"end_time"`
	Description string `json:"description" yaml:"description"`
	Location    string `json:"location" yaml:"location"`
	Track       string `json:"track" yaml:"track"`

	// DistributionID is only set on distribution records.
	DistributionID string `json:"distribution_id,omitempty" yaml:"distribution_id,omitempty"`
	// SourceID is set on source records, and on distribution records once matched.
	SourceID string `json:"source_id,omitempty" yaml:"source_id,omitempty"`
}

// NewSourceEvent builds an Event from a source feed row keyed by column name.
// An end time of midnight becomes 23:59 so the record compares with distribution semantics.
func NewSourceEvent(row map[string]string) (Event, error) {
	e := Event{
		Title:       strings.TrimSpace(row[ColTitle]),
		Date:        strings.TrimSpace(row[ColDate]),
		StartTime:   strings.TrimSpace(row[ColStartTime]),
		EndTime:     strings.TrimSpace(row[ColEndTime]),
		Description: Normalize(strings.TrimSpace(row[ColDescription])),
		Location:    strings.TrimSpace(row[ColLocation]),
		Track:       strings.TrimSpace(row[ColTrack]),
		SourceID:    strings.TrimSpace(row[ColScheduleID]),
	}
	if e.EndTime == Midnight {
		e.EndTime = EndOfDay
	}
	if err := e.validate(); err != nil {
		return Event{}, err
	}
	return e, nil
}

// NewDistributionEvent builds an Event from the positional cells of a distribution row.
// A trailing [afestid:<id>] tag in the description becomes the SourceID and is stripped.
func NewDistributionEvent(cells []string) (Event, error) {
	cell := func(i int) string {
		if i < len(cells) {
			return strings.TrimSpace(cells[i])
		}
		return ""
	}

	e := Event{
		Title:          cell(CellTitle),
		Date:           cell(CellDate),
		StartTime:      cell(CellStartTime),
		EndTime:        cell(CellEndTime),
		Location:       cell(CellLocation),
		Track:          cell(CellTrack),
		DistributionID: cell(CellDistributionID),
	}
	e.Description, e.SourceID = ExtractSourceID(StripMarkup(cell(CellDescription)))

	if err := e.validate(); err != nil {
		return Event{}, err
	}
	return e, nil
}

// StripMarkup removes the HTML entities the distribution feed embeds in descriptions.
func StripMarkup(s string) string {
	return strings.TrimSpace(markupReplacer.Replace(s))
}

// ExtractSourceID splits a trailing id tag off a description.
// It returns the description without the tag and the id, or the input unchanged and "".
func ExtractSourceID(desc string) (string, string) {
	m := idTagPattern.FindStringSubmatchIndex(desc)
	if m == nil {
		return desc, ""
	}
	id := strings.TrimSpace(desc[m[2]:m[3]])
	return desc[:m[0]], id
}

// FormatSourceIDTag returns the text appended to a distribution description to record its source id.
func FormatSourceIDTag(sourceID string) string {
	return "\n\n[afestid:" + sourceID + "]"
}

// HasSourceID reports whether the record has been matched to a source record.
func (e Event) HasSourceID() bool {
	return e.SourceID != ""
}

// Day parses Date using DateLayouts.
func (e Event) Day() (time.Time, error) {
	return ParseDate(e.Date)
}

// ParseDate parses a feed date string.
func ParseDate(s string) (time.Time, error) {
	var firstErr error
	for _, layout := range DateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, &DateError{Value: s, Err: firstErr}
}

func (e Event) validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"title", e.Title},
		{"date", e.Date},
		{"start_time", e.StartTime},
		{"end_time", e.EndTime},
		{"location", e.Location},
	}
	for _, f := range required {
		if f.value == "" {
			return &FieldError{Field: f.name, Title: e.Title}
		}
	}
	return nil
}
