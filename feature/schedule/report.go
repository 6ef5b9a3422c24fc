package schedule

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"schedule-sync/core/reconcile"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Report file formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// FormatFor picks the report format from a file name, defaulting to JSON.
func FormatFor(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// WriteReport encodes v to w in the given format.
func WriteReport(w io.Writer, format string, v any) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported report format: %s", format)
	}
}

// LogDiff writes a diff report to the console logger.
// At most sample records of each outcome are listed individually.
func LogDiff(l *zap.Logger, report *reconcile.DiffReport, sample int) {
	s := report.Summary
	l.Info("Diff summary",
		zap.Int("source", s.SourceCount),
		zap.Int("distribution", s.DistributionCount),
		zap.Int("added", s.Added),
		zap.Int("deleted", s.Deleted),
		zap.Int("changed", s.Changed),
		zap.Int("matched", s.Matched),
	)

	for i, e := range report.Result.Added {
		if i == sample {
			l.Info("More added records omitted", zap.Int("count", len(report.Result.Added)-sample))
			break
		}
		l.Info("Added", zap.String("source_id", e.SourceID), zap.String("title", e.Title), zap.String("date", e.Date))
	}
	for i, e := range report.Result.Deleted {
		if i == sample {
			l.Info("More deleted records omitted", zap.Int("count", len(report.Result.Deleted)-sample))
			break
		}
		l.Info("Deleted", zap.String("source_id", e.SourceID), zap.String("title", e.Title), zap.String("date", e.Date))
	}

	ids := make([]string, 0, len(report.Result.Changed))
	for id := range report.Result.Changed {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for i, id := range ids {
		if i == sample {
			l.Info("More changed records omitted", zap.Int("count", len(ids)-sample))
			break
		}
		changes := report.Result.Changed[id]
		fields := make([]string, 0, len(changes))
		for f := range changes {
			fields = append(fields, f)
		}
		sort.Strings(fields)
		l.Info("Changed", zap.String("source_id", id), zap.Strings("fields", fields))
	}
}

// LogBackfill writes a backfill outcome to the console logger.
func LogBackfill(l *zap.Logger, out *BackfillOutcome) {
	r := out.Result
	for _, a := range r.Assignments {
		l.Debug("Assigned source id",
			zap.String("distribution_id", a.DistributionID),
			zap.String("source_id", a.SourceID),
			zap.String("title", a.Title),
			zap.String("kind", string(a.Kind)),
		)
	}
	l.Info("Backfill summary",
		zap.Int("exact", r.ExactMatches),
		zap.Int("title", r.TitleMatches),
		zap.Int("tagged", r.Tagged),
		zap.Int("unmatched", r.Unmatched),
		zap.String("output", out.Output),
	)
}
