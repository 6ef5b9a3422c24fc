package schedule

import (
	"bytes"
	"encoding/json"
	"testing"

	"schedule-sync/core/reconcile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gopkg.in/yaml.v3"
)

func sampleDiff() *reconcile.DiffReport {
	return &reconcile.DiffReport{
		Summary: reconcile.DiffSummary{SourceCount: 3, DistributionCount: 2, Added: 2, Deleted: 1, Changed: 1},
		Result: &reconcile.DiffResult{
			Added:   []reconcile.Event{{SourceID: "3", Title: "Karaoke"}, {SourceID: "4", Title: "Trivia"}},
			Deleted: []reconcile.Event{{SourceID: "9", Title: "Cosplay Contest"}},
			Changed: map[string]reconcile.ChangeSet{
				"1": {reconcile.FieldTrack: {Old: "", New: "Main"}, reconcile.FieldDate: {Old: "08/05/2016", New: "08/06/2016"}},
			},
			Matched: []reconcile.Event{},
		},
	}
}

func TestFormatFor(t *testing.T) {
	assert.Equal(t, FormatYAML, FormatFor("report.yaml"))
	assert.Equal(t, FormatYAML, FormatFor("REPORT.YML"))
	assert.Equal(t, FormatJSON, FormatFor("report.json"))
	assert.Equal(t, FormatJSON, FormatFor("report"))
}

func TestWriteReport(t *testing.T) {
	report := sampleDiff()

	t.Run("JSON", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteReport(&buf, FormatJSON, report))

		var decoded reconcile.DiffReport
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, 2, decoded.Summary.Added)
		assert.Equal(t, "Main", decoded.Result.Changed["1"][reconcile.FieldTrack].New)
	})

	t.Run("YAML", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteReport(&buf, FormatYAML, report))
		assert.Contains(t, buf.String(), "source_count: 3")

		var decoded map[string]any
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
		assert.Contains(t, decoded, "result")
	})

	t.Run("Unknown", func(t *testing.T) {
		assert.Error(t, WriteReport(&bytes.Buffer{}, "xml", report))
	})
}

func TestLogDiff(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	LogDiff(zap.New(core), sampleDiff(), 1)

	assert.Equal(t, 1, logs.FilterMessage("Diff summary").Len())
	assert.Equal(t, 1, logs.FilterMessage("Added").Len())
	assert.Equal(t, 1, logs.FilterMessage("More added records omitted").Len())
	assert.Equal(t, 1, logs.FilterMessage("Deleted").Len())

	changed := logs.FilterMessage("Changed").All()
	require.Len(t, changed, 1)
	assert.Equal(t, "1", changed[0].ContextMap()["source_id"])
}

func TestLogBackfill(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	LogBackfill(zap.New(core), &BackfillOutcome{
		Result: &reconcile.BackfillResult{
			Assignments:  []reconcile.Assignment{{DistributionID: "D-1", SourceID: "1", Kind: reconcile.MatchExact}},
			ExactMatches: 1,
		},
		Output: "dist.xlsx.new",
	})

	assert.Equal(t, 1, logs.FilterMessage("Assigned source id").Len())
	summary := logs.FilterMessage("Backfill summary").All()
	require.Len(t, summary, 1)
	assert.Equal(t, int64(1), summary[0].ContextMap()["exact"])
}
