package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"schedule-sync/core/reconcile"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrRunNotFound is returned when a run id is unknown.
var ErrRunNotFound = errors.New("run not found")

const entryBatchSize = 200

// Repository persists diff runs.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a repository on db.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Migrate creates or updates the history tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Run{}, &RunEntry{})
}

// SaveDiff stores a diff report with one entry per added, deleted or changed record.
func (r *Repository) SaveDiff(ctx context.Context, source string, distribution []string, report *reconcile.DiffReport) (*Run, error) {
	run := &Run{
		ID:                uuid.NewString(),
		Source:            source,
		Distribution:      strings.Join(distribution, ","),
		SourceCount:       report.Summary.SourceCount,
		DistributionCount: report.Summary.DistributionCount,
		Added:             report.Summary.Added,
		Deleted:           report.Summary.Deleted,
		Changed:           report.Summary.Changed,
		Matched:           report.Summary.Matched,
	}

	entries, err := buildEntries(run.ID, report.Result)
	if err != nil {
		return nil, err
	}

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(run).Error; err != nil {
			return fmt.Errorf("failed to insert run: %w", err)
		}
		if len(entries) == 0 {
			return nil
		}
		if err := tx.CreateInBatches(entries, entryBatchSize).Error; err != nil {
			return fmt.Errorf("failed to insert run entries: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	run.Entries = entries
	return run, nil
}

// ListRuns returns the most recent runs, newest first, without entries.
func (r *Repository) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	var runs []Run
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&runs).Error; err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	return runs, nil
}

// GetRun returns a run with its entries.
func (r *Repository) GetRun(ctx context.Context, id string) (*Run, error) {
	var run Run
	err := r.db.WithContext(ctx).Preload("Entries").Where("id = ?", id).First(&run).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRunNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run %s: %w", id, err)
	}
	return &run, nil
}

func buildEntries(runID string, result *reconcile.DiffResult) ([]RunEntry, error) {
	if result == nil {
		return nil, nil
	}

	entries := make([]RunEntry, 0, len(result.Added)+len(result.Deleted)+len(result.Changed))
	for _, e := range result.Added {
		entries = append(entries, RunEntry{RunID: runID, SourceID: e.SourceID, Outcome: string(reconcile.OutcomeAdded), Title: e.Title})
	}
	for _, e := range result.Deleted {
		entries = append(entries, RunEntry{RunID: runID, SourceID: e.SourceID, Outcome: string(reconcile.OutcomeDeleted), Title: e.Title})
	}

	ids := make([]string, 0, len(result.Changed))
	for id := range result.Changed {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		changes, err := json.Marshal(result.Changed[id])
		if err != nil {
			return nil, fmt.Errorf("failed to encode changes of %s: %w", id, err)
		}
		entries = append(entries, RunEntry{RunID: runID, SourceID: id, Outcome: string(reconcile.OutcomeChanged), Changes: string(changes)})
	}
	return entries, nil
}
