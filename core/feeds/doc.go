// Package feeds reads and writes the schedule feeds reconciled by core/reconcile.
//
// # Source feed
//
// ReadSource parses the CSV export of the scheduling system. The header must carry every
// column in reconcile.SourceColumns; a leading byte order mark is ignored.
//
// # Distribution feed
//
// OpenWorkbook loads the schedule area of an xlsx workbook with excelize. Rows start at
// Config.FirstRow on Config.Sheet and hold eight cells in the order title, date, start time,
// end time, description, location, track, distribution id. A Workbook is also the record
// store: AppendSourceID adds the "[afestid:<id>]" tag to a row's description and WriteTo
// serializes the result.
//
// # Stores
//
// A Store resolves feed names to content. FileStore works on a local directory, BucketStore
// on objects under a prefix in the storage bucket.
package feeds
