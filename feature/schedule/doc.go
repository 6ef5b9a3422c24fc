// Package schedule wires the reconciliation workflows to feeds, metrics, history and HTTP.
//
// # Workflows
//
//   - CheckIDs: counts distribution records still lacking a source id.
//   - BackfillIDs: matches untagged distribution records against the source feed, appends the
//     "[afestid:<id>]" tag to each matched description and saves the workbook as
//     "<name><output_suffix>".
//   - Diff: loads the source feed and one or more distribution workbooks, reunifies midnight
//     splits and classifies every record. Runs can be recorded through the history package.
//
// Feeds are loaded concurrently with errgroup; the algorithms in core/reconcile run on the
// fully loaded collections.
//
// # Report sinks
//
// LogDiff and LogBackfill print summaries through zap, WriteReport encodes outcomes as JSON or
// YAML and history.Repository stores diff runs in the database.
//
// # HTTP
//
//	GET  /schedule/feeds
//	GET  /schedule/ids?distribution=a.xlsx,b.xlsx
//	POST /schedule/ids      {"source": "...", "distribution": "..."}
//	POST /schedule/diff     {"source": "...", "distribution": ["..."], "record": true}
//	GET  /schedule/runs?limit=20
//	GET  /schedule/runs/:id
package schedule
