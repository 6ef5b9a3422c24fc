package metrics

import (
	"net/http"
	"time"

	"schedule-sync/core/reconcile"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Workflow names used as metric labels.
const (
	WorkflowBackfill = "backfill"
	WorkflowCheck    = "check"
	WorkflowDiff     = "diff"
)

// Recorder collects workflow metrics on its own registry.
type Recorder struct {
	registry *prometheus.Registry

	runs     *prometheus.CounterVec
	failures *prometheus.CounterVec
	duration *prometheus.HistogramVec
	records  *prometheus.CounterVec
	matches  *prometheus.CounterVec
}

// NewRecorder creates a Recorder with every collector registered.
func NewRecorder() *Recorder {
	r := &Recorder{registry: prometheus.NewRegistry()}

	r.runs = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "schedule",
		Name:      "runs_total",
		Help:      "Workflow runs started",
	}, []string{"workflow"})
	r.failures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "schedule",
		Name:      "run_failures_total",
		Help:      "Workflow runs aborted by an error",
	}, []string{"workflow"})
	r.duration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "schedule",
		Name:      "run_duration_seconds",
		Help:      "Time spent in a workflow run",
		Buckets:   prometheus.DefBuckets,
	}, []string{"workflow"})
	r.records = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "schedule",
		Name:      "diff_records_total",
		Help:      "Records classified by diff runs",
	}, []string{"outcome"})
	r.matches = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "schedule",
		Name:      "backfill_matches_total",
		Help:      "Distribution records handled by backfill runs",
	}, []string{"kind"})

	r.registry.MustRegister(r.runs, r.failures, r.duration, r.records, r.matches)
	return r
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// ObserveRun counts a run of workflow and its duration since start.
func (r *Recorder) ObserveRun(workflow string, start time.Time, err error) {
	r.runs.WithLabelValues(workflow).Inc()
	r.duration.WithLabelValues(workflow).Observe(time.Since(start).Seconds())
	if err != nil {
		r.failures.WithLabelValues(workflow).Inc()
	}
}

// ObserveDiff counts the records of a diff summary by outcome.
func (r *Recorder) ObserveDiff(s reconcile.DiffSummary) {
	r.records.WithLabelValues(string(reconcile.OutcomeAdded)).Add(float64(s.Added))
	r.records.WithLabelValues(string(reconcile.OutcomeDeleted)).Add(float64(s.Deleted))
	r.records.WithLabelValues(string(reconcile.OutcomeChanged)).Add(float64(s.Changed))
	r.records.WithLabelValues(string(reconcile.OutcomeMatched)).Add(float64(s.Matched))
}

// ObserveBackfill counts backfill results by match kind.
func (r *Recorder) ObserveBackfill(res *reconcile.BackfillResult) {
	r.matches.WithLabelValues(string(reconcile.MatchExact)).Add(float64(res.ExactMatches))
	r.matches.WithLabelValues(string(reconcile.MatchTitle)).Add(float64(res.TitleMatches))
	r.matches.WithLabelValues("tagged").Add(float64(res.Tagged))
	r.matches.WithLabelValues("unmatched").Add(float64(res.Unmatched))
}
