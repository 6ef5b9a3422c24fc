package schedule

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"schedule-sync/core/feeds"
	"schedule-sync/core/logger"
	"schedule-sync/core/metrics"
	"schedule-sync/core/reconcile"
	"schedule-sync/feature/schedule/history"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ErrHistoryDisabled is returned when a run should be recorded but no database is configured.
var ErrHistoryDisabled = errors.New("run history is not configured")

// Service runs the schedule workflows against a feed store.
type Service struct {
	store   feeds.Store
	cfg     feeds.Config
	logger  *zap.Logger
	metrics *metrics.Recorder
	history *history.Repository
}

// NewService creates a new schedule service. repo may be nil when no database is available.
func NewService(store feeds.Store, cfg feeds.Config, logger *zap.Logger, rec *metrics.Recorder, repo *history.Repository) *Service {
	if rec == nil {
		rec = metrics.NewRecorder()
	}
	return &Service{
		store:   store,
		cfg:     cfg,
		logger:  logger,
		metrics: rec,
		history: repo,
	}
}

// BackfillOutcome is the result of a backfill run.
type BackfillOutcome struct {
	Result *reconcile.BackfillResult `json:"result" yaml:"result"`
	// Output is the name the updated workbook was saved under.
	Output string `json:"output" yaml:"output"`
}

// DiffOutcome is the result of a diff run.
type DiffOutcome struct {
	Report *reconcile.DiffReport `json:"report" yaml:"report"`
	// RunID is set when the run was recorded in the history database.
	RunID string `json:"run_id,omitempty" yaml:"run_id,omitempty"`
}

// ListFeeds returns the feed names available in the store.
func (s *Service) ListFeeds(ctx context.Context) ([]string, error) {
	return s.store.List(ctx)
}

// LoadSource reads the source feed called name.
func (s *Service) LoadSource(ctx context.Context, name string) ([]reconcile.Event, error) {
	r, err := s.store.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	events, err := feeds.ReadSource(r)
	if err != nil {
		return nil, fmt.Errorf("source %s: %w", name, err)
	}
	return events, nil
}

func (s *Service) openWorkbook(ctx context.Context, name string) (*feeds.Workbook, error) {
	r, err := s.store.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	wb, err := feeds.OpenWorkbook(r, s.cfg.Sheet, s.cfg.FirstRow)
	if err != nil {
		return nil, fmt.Errorf("distribution %s: %w", name, err)
	}
	return wb, nil
}

// LoadDistribution reads every named workbook and concatenates their records in argument order.
func (s *Service) LoadDistribution(ctx context.Context, names ...string) ([]reconcile.Event, error) {
	if len(names) == 0 {
		return nil, reconcile.ErrNoFiles
	}

	parts := make([][]reconcile.Event, len(names))
	g, gctx := errgroup.WithContext(ctx)
	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			wb, err := s.openWorkbook(gctx, name)
			if err != nil {
				return err
			}
			defer wb.Close()
			parts[i] = wb.Events()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var events []reconcile.Event
	for _, p := range parts {
		events = append(events, p...)
	}
	return events, nil
}

// CheckIDs counts the distribution records that still lack a source id.
func (s *Service) CheckIDs(ctx context.Context, names ...string) (report reconcile.IDReport, err error) {
	defer s.observe(metrics.WorkflowCheck, time.Now(), &err)

	events, err := s.LoadDistribution(ctx, names...)
	if err != nil {
		return reconcile.IDReport{}, err
	}
	report = reconcile.CheckIDs(events)

	s.logger.Info("Checked distribution ids",
		zap.Strings("distribution", names),
		zap.Int("total", report.Total),
		zap.Int("missing", report.Missing),
	)
	return report, nil
}

// BackfillIDs tags untagged records of the distribution workbook with the source ids they match,
// then saves the workbook under its name plus the configured output suffix.
func (s *Service) BackfillIDs(ctx context.Context, source, distribution string) (out *BackfillOutcome, err error) {
	defer s.observe(metrics.WorkflowBackfill, time.Now(), &err)

	var (
		src []reconcile.Event
		wb  *feeds.Workbook
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		src, err = s.LoadSource(gctx, source)
		return err
	})
	g.Go(func() (err error) {
		wb, err = s.openWorkbook(gctx, distribution)
		return err
	})
	if err := g.Wait(); err != nil {
		if wb != nil {
			_ = wb.Close()
		}
		return nil, err
	}
	defer wb.Close()

	result, err := reconcile.Backfill(ctx, wb.Events(), src, wb)
	if err != nil {
		return nil, err
	}
	s.metrics.ObserveBackfill(result)

	var buf bytes.Buffer
	if _, err := wb.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to serialize %s: %w", distribution, err)
	}
	output := distribution + s.cfg.OutputSuffix
	if err := s.store.Save(ctx, output, &buf, int64(buf.Len())); err != nil {
		return nil, err
	}

	s.logger.Info("Backfilled distribution ids",
		zap.String("source", source),
		zap.String("distribution", distribution),
		zap.String("output", output),
		zap.Int("exact", result.ExactMatches),
		zap.Int("title", result.TitleMatches),
		zap.Int("tagged", result.Tagged),
		zap.Int("unmatched", result.Unmatched),
	)
	return &BackfillOutcome{Result: result, Output: output}, nil
}

// Diff compares the distribution workbooks against the source feed.
// When record is set the report is stored in the run history.
func (s *Service) Diff(ctx context.Context, source string, distribution []string, record bool) (out *DiffOutcome, err error) {
	defer s.observe(metrics.WorkflowDiff, time.Now(), &err)

	if len(distribution) == 0 {
		return nil, reconcile.ErrNoFiles
	}
	if record && s.history == nil {
		return nil, ErrHistoryDisabled
	}

	var src, dist []reconcile.Event
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		src, err = s.LoadSource(gctx, source)
		return err
	})
	g.Go(func() (err error) {
		dist, err = s.LoadDistribution(gctx, distribution...)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report, err := reconcile.DiffFeeds(dist, src)
	if err != nil {
		return nil, err
	}
	s.metrics.ObserveDiff(report.Summary)

	out = &DiffOutcome{Report: report}
	if record {
		run, err := s.history.SaveDiff(ctx, source, distribution, report)
		if err != nil {
			return nil, err
		}
		out.RunID = run.ID
	}

	s.logger.Info("Compared schedules",
		zap.String("source", source),
		zap.Strings("distribution", distribution),
		zap.Int("added", report.Summary.Added),
		zap.Int("deleted", report.Summary.Deleted),
		zap.Int("changed", report.Summary.Changed),
		zap.Int("matched", report.Summary.Matched),
		zap.String("run_id", out.RunID),
	)
	return out, nil
}

// ListRuns returns recent recorded diff runs.
func (s *Service) ListRuns(ctx context.Context, limit int) ([]history.Run, error) {
	if s.history == nil {
		return nil, ErrHistoryDisabled
	}
	return s.history.ListRuns(ctx, limit)
}

// GetRun returns a recorded diff run with its entries.
func (s *Service) GetRun(ctx context.Context, id string) (*history.Run, error) {
	if s.history == nil {
		return nil, ErrHistoryDisabled
	}
	return s.history.GetRun(ctx, id)
}

func (s *Service) observe(workflow string, start time.Time, err *error) {
	s.metrics.ObserveRun(workflow, start, *err)
	if *err != nil {
		logger.WithWorkflow(s.logger, workflow).Error("Workflow failed", zap.Error(*err))
	}
}
