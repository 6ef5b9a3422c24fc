package reconcile

import (
	"errors"
	"fmt"
)

var (
	// ErrExcessiveIDUse is returned when more than two distribution records share one source id.
	ErrExcessiveIDUse = errors.New("excessive source id use")
	// ErrSameDaySplit is returned when two records sharing a source id also share a date.
	ErrSameDaySplit = errors.New("same-day split conflict")
	// ErrDuplicateSourceID is returned when a source id appears on more than one source record.
	ErrDuplicateSourceID = errors.New("duplicate source id")
	// ErrNoFiles is returned when a diff is requested without distribution files.
	ErrNoFiles = errors.New("no distribution files supplied")
	// ErrMissingField is returned when ingestion produces an empty required field.
	ErrMissingField = errors.New("missing required field")
	// ErrInvalidDate is returned when a record date cannot be parsed.
	ErrInvalidDate = errors.New("invalid date")
)

// ExcessiveIDUseError reports a source id carried by a group that cannot be a midnight split.
type ExcessiveIDUseError struct {
	SourceID string
	Count    int
}

func (e *ExcessiveIDUseError) Error() string {
	return fmt.Sprintf("source id %q is used by %d distribution records", e.SourceID, e.Count)
}

func (e *ExcessiveIDUseError) Unwrap() error { return ErrExcessiveIDUse }

// DuplicateSourceIDError reports a source id shared by several source records.
type DuplicateSourceIDError struct {
	SourceID string
	Count    int
}

func (e *DuplicateSourceIDError) Error() string {
	return fmt.Sprintf("source id %q is used by %d source records", e.SourceID, e.Count)
}

func (e *DuplicateSourceIDError) Unwrap() error { return ErrDuplicateSourceID }

// SameDaySplitError reports two records sharing a source id and a date.
type SameDaySplitError struct {
	SourceID    string
	FirstTitle  string
	SecondTitle string
	Date        string
}

func (e *SameDaySplitError) Error() string {
	return fmt.Sprintf("records %q and %q share source id %q and date %s",
		e.FirstTitle, e.SecondTitle, e.SourceID, e.Date)
}

func (e *SameDaySplitError) Unwrap() error { return ErrSameDaySplit }

// FieldError reports an empty required field on an ingested row.
type FieldError struct {
	Field string
	Title string
}

func (e *FieldError) Error() string {
	if e.Title == "" {
		return fmt.Sprintf("%s: %s", ErrMissingField, e.Field)
	}
	return fmt.Sprintf("%s: %s (title %q)", ErrMissingField, e.Field, e.Title)
}

func (e *FieldError) Unwrap() error { return ErrMissingField }

// DateError reports a date string matching none of DateLayouts.
type DateError struct {
	Value string
	Err   error
}

func (e *DateError) Error() string {
	return fmt.Sprintf("%s %q: %v", ErrInvalidDate, e.Value, e.Err)
}

func (e *DateError) Unwrap() []error { return []error{ErrInvalidDate, e.Err} }
