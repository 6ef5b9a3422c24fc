// Package reconcile matches, merges and diffs two schedule feeds describing the same conference.
//
// The source feed is authoritative and keyed by a schedule block id. The distribution feed is a
// spreadsheet consumed by the attendee app; its records learn their source id through an
// [afestid:<id>] tag appended to the description.
//
// # Components
//
//   - Event: the record shared by both feeds, built by NewSourceEvent or NewDistributionEvent.
//   - Normalize: typographic substitution plus NFC so text compares across feeds.
//   - IsMatch: directional predicate deciding whether a distribution record denotes a source record,
//     including both halves of an event split at midnight.
//   - Reunify / MergeSplit: collapse split halves sharing a source id into one record.
//   - Diff: merge-join over two id-sorted sequences producing added, deleted, changed and matched.
//
// # Workflows
//
//	// Backfill ids into a distribution store
//	result, err := reconcile.Backfill(ctx, distribution, source, workbook)
//
//	// Diff after ids are in place
//	report, err := reconcile.DiffFeeds(distribution, source)
//
// The package performs no I/O. Readers and writers for the concrete feed formats live in
// core/feeds.
package reconcile
