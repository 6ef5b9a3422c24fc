package reconcile

import (
	"context"
	"fmt"
)

// Writer persists a discovered source id into the distribution record store.
// Implementations append FormatSourceIDTag(sourceID) to the record's description.
// The write is append-only, so it must not be applied to a record that is already tagged.
type Writer interface {
	AppendSourceID(ctx context.Context, distributionID, sourceID string) error
}

// PlanBackfill searches source records for every distribution record lacking a source id.
// The first exact IsMatch hit wins; failing that, a title shared by exactly one source record
// is accepted. Ambiguous title matches are dropped and count as unmatched.
func PlanBackfill(distribution, source []Event) *BackfillResult {
	result := &BackfillResult{Assignments: []Assignment{}}

	for _, d := range distribution {
		if d.HasSourceID() {
			result.Tagged++
			continue
		}

		if ref, ok := FindMatch(d, source); ok {
			result.Assignments = append(result.Assignments, assignment(d, ref, MatchExact))
			result.ExactMatches++
			continue
		}

		if ref, ok := FindTitleMatch(d, source); ok {
			result.Assignments = append(result.Assignments, assignment(d, ref, MatchTitle))
			result.TitleMatches++
			continue
		}

		result.Unmatched++
	}

	return result
}

// Backfill plans the assignments and writes each one through w.
// It stops at the first write error and returns the plan together with the error.
func Backfill(ctx context.Context, distribution, source []Event, w Writer) (*BackfillResult, error) {
	result := PlanBackfill(distribution, source)
	for _, a := range result.Assignments {
		if err := w.AppendSourceID(ctx, a.DistributionID, a.SourceID); err != nil {
			return result, fmt.Errorf("failed to write source id %s to record %s: %w", a.SourceID, a.DistributionID, err)
		}
	}
	return result, nil
}

// CheckIDs counts distribution records that lack a source id.
func CheckIDs(distribution []Event) IDReport {
	report := IDReport{Total: len(distribution)}
	for _, e := range distribution {
		if !e.HasSourceID() {
			report.Missing++
		}
	}
	return report
}

func assignment(d, ref Event, kind MatchKind) Assignment {
	return Assignment{
		DistributionID: d.DistributionID,
		SourceID:       ref.SourceID,
		Title:          d.Title,
		Kind:           kind,
	}
}
