package reconcile

// Field names used as ChangeSet keys.
const (
	FieldDate        = "date"
	FieldStartTime   = "start_time"
	FieldEndTime     = "end_time"
	FieldTitle       = "title"
	FieldLocation    = "location"
	FieldDescription = "description"
	FieldTrack       = "track"
)

// Outcome classifies a record in a diff.
type Outcome string

const (
	// OutcomeAdded marks a source record with no distribution counterpart.
	OutcomeAdded Outcome = "added"
	// OutcomeDeleted marks a distribution record with no source counterpart.
	OutcomeDeleted Outcome = "deleted"
	// OutcomeChanged marks a pair whose fields differ.
	OutcomeChanged Outcome = "changed"
	// OutcomeMatched marks a pair whose fields are identical.
	OutcomeMatched Outcome = "matched"
)

// FieldChange holds the distribution (old) and source (new) value of one field.
type FieldChange struct {
	Old string `json:"old" yaml:"old"`
	New string `json:"new" yaml:"new"`
}

// ChangeSet maps a field name to its change.
type ChangeSet map[string]FieldChange

// DiffResult is the four-way classification produced by Diff.
type DiffResult struct {
	// Added holds source records missing from the distribution feed.
	Added []Event `json:"added" yaml:"added"`
	// Deleted holds distribution records missing from the source feed.
	Deleted []Event `json:"deleted" yaml:"deleted"`
	// Changed maps a source id to the fields that differ.
	Changed map[string]ChangeSet `json:"changed" yaml:"changed"`
	// Matched holds source records whose distribution counterpart is identical.
	Matched []Event `json:"matched" yaml:"matched"`
}

// DiffSummary provides aggregate counts for a diff run.
type DiffSummary struct {
	SourceCount       int `json:"source_count" yaml:"source_count"`
	DistributionCount int `json:"distribution_count" yaml:"distribution_count"`
	Added             int `json:"added" yaml:"added"`
	Deleted           int `json:"deleted" yaml:"deleted"`
	Changed           int `json:"changed" yaml:"changed"`
	Matched           int `json:"matched" yaml:"matched"`
}

// DiffReport is what the diff workflow hands to a report sink.
type DiffReport struct {
	Summary DiffSummary `json:"summary" yaml:"summary"`
	Result  *DiffResult `json:"result" yaml:"result"`
}

// MatchKind says how a backfill assignment was found.
type MatchKind string

const (
	// MatchExact is an IsMatch hit.
	MatchExact MatchKind = "exact"
	// MatchTitle is a unique title hit.
	MatchTitle MatchKind = "title"
)

// Assignment is a discovered source id for a distribution record.
type Assignment struct {
	DistributionID string    `json:"distribution_id" yaml:"distribution_id"`
	SourceID       string    `json:"source_id" yaml:"source_id"`
	Title          string    `json:"title" yaml:"title"`
	Kind           MatchKind `json:"kind" yaml:"kind"`
}

// BackfillResult reports the outcome of the backfill workflow.
type BackfillResult struct {
	Assignments  []Assignment `json:"assignments" yaml:"assignments"`
	ExactMatches int          `json:"exact_matches" yaml:"exact_matches"`
	TitleMatches int          `json:"title_matches" yaml:"title_matches"`
	// Tagged counts records skipped because they already carry a source id.
	Tagged int `json:"tagged" yaml:"tagged"`
	// Unmatched counts records left untouched, ambiguous title matches included.
	Unmatched int `json:"unmatched" yaml:"unmatched"`
}

// IDReport counts distribution records lacking a source id.
type IDReport struct {
	Total   int `json:"total" yaml:"total"`
	Missing int `json:"missing" yaml:"missing"`
}
