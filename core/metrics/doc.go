// Package metrics exposes Prometheus counters for schedule workflows.
//
// A Recorder owns a private registry so tests and multiple servers never collide on the
// global one. Collectors:
//
//   - schedule_runs_total{workflow}
//   - schedule_run_failures_total{workflow}
//   - schedule_run_duration_seconds{workflow}
//   - schedule_diff_records_total{outcome}
//   - schedule_backfill_matches_total{kind}
package metrics
