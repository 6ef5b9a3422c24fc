// Package history records diff runs in the database.
//
// A Run stores the summary counts of one diff and the feeds it compared. Each added, deleted
// or changed record becomes a RunEntry; matched records are only counted. Tables are created
// by Migrate.
package history
