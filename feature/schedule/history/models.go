package history

import "time"

// Run is one recorded diff run.
type Run struct {
	ID                string     `gorm:"primaryKey;size:36" json:"id"`
	Source            string     `gorm:"size:255" json:"source"`
	Distribution      string     `gorm:"size:1024" json:"distribution"`
	SourceCount       int        `json:"source_count"`
	DistributionCount int        `json:"distribution_count"`
	Added             int        `json:"added"`
	Deleted           int        `json:"deleted"`
	Changed           int        `json:"changed"`
	Matched           int        `json:"matched"`
	CreatedAt         time.Time  `gorm:"index" json:"created_at"`
	Entries           []RunEntry `gorm:"foreignKey:RunID;constraint:OnDelete:CASCADE" json:"entries,omitempty"`
}

// TableName sets the table name for Run.
func (Run) TableName() string {
	return "schedule_runs"
}

// RunEntry is a record of a run that was not matched unchanged.
type RunEntry struct {
	ID       uint   `gorm:"primaryKey" json:"-"`
	RunID    string `gorm:"size:36;index" json:"-"`
	SourceID string `gorm:"size:64" json:"source_id"`
	Outcome  string `gorm:"size:16" json:"outcome"`
	Title    string `gorm:"size:255" json:"title"`
	// Changes is the JSON encoded change set of a changed record.
	Changes string `gorm:"type:text" json:"changes,omitempty"`
}

// TableName sets the table name for RunEntry.
func (RunEntry) TableName() string {
	return "schedule_run_entries"
}
