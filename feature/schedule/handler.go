package schedule

import (
	"errors"
	"io/fs"
	"strings"

	"schedule-sync/core/feeds"
	"schedule-sync/core/logger"
	"schedule-sync/core/reconcile"
	"schedule-sync/feature/schedule/history"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const defaultRunLimit = 20

// Handler handles HTTP requests for schedule workflows.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// BackfillRequest is the body of POST /schedule/ids.
type BackfillRequest struct {
	Source       string `json:"source"`
	Distribution string `json:"distribution"`
}

// DiffRequest is the body of POST /schedule/diff.
type DiffRequest struct {
	Source       string   `json:"source"`
	Distribution []string `json:"distribution"`
	Record       bool     `json:"record"`
}

// RegisterRoutes registers the schedule routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/schedule")
	group.Get("/feeds", h.HandleListFeeds)
	group.Get("/ids", h.HandleCheckIDs)
	group.Post("/ids", h.HandleBackfillIDs)
	group.Post("/diff", h.HandleDiff)
	group.Get("/runs", h.HandleListRuns)
	group.Get("/runs/:id", h.HandleGetRun)
}

// HandleListFeeds lists the feeds in the store.
// @Summary List Feeds
// @Description Lists the source and distribution feed files available in the configured store.
// @Tags schedule
// @Produce json
// @Success 200 {object} map[string]interface{} "Feed names"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /schedule/feeds [get]
func (h *Handler) HandleListFeeds(c *fiber.Ctx) error {
	names, err := h.service.ListFeeds(c.Context())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"feeds": names})
}

// HandleCheckIDs counts distribution records lacking a source id.
// @Summary Check Source IDs
// @Description Counts the records of one or more distribution workbooks that have no embedded source id.
// @Tags schedule
// @Produce json
// @Param distribution query string true "Comma separated distribution workbook names"
// @Success 200 {object} reconcile.IDReport
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 422 {object} map[string]string "Invalid feed"
// @Router /schedule/ids [get]
func (h *Handler) HandleCheckIDs(c *fiber.Ctx) error {
	names := splitNames(c.Query("distribution"))
	report, err := h.service.CheckIDs(c.Context(), names...)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(report)
}

// HandleBackfillIDs writes discovered source ids into a distribution workbook.
// @Summary Backfill Source IDs
// @Description Matches untagged distribution records against the source feed and saves a tagged copy of the workbook.
// @Tags schedule
// @Accept json
// @Produce json
// @Param request body BackfillRequest true "Feeds to reconcile"
// @Success 200 {object} BackfillOutcome
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 422 {object} map[string]string "Invalid feed"
// @Router /schedule/ids [post]
func (h *Handler) HandleBackfillIDs(c *fiber.Ctx) error {
	var req BackfillRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if req.Source == "" || req.Distribution == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "source and distribution are required"})
	}

	l := logger.WithRayID(h.service.logger, c)
	l.Info("Backfilling source ids", zap.String("source", req.Source), zap.String("distribution", req.Distribution))

	out, err := h.service.BackfillIDs(c.Context(), req.Source, req.Distribution)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(out)
}

// HandleDiff compares distribution workbooks with the source feed.
// @Summary Diff Schedules
// @Description Reunifies midnight splits and classifies every record as added, deleted, changed or matched.
// @Tags schedule
// @Accept json
// @Produce json
// @Param request body DiffRequest true "Feeds to compare"
// @Success 200 {object} DiffOutcome
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Feed not found"
// @Failure 422 {object} map[string]string "Invalid feed"
// @Router /schedule/diff [post]
func (h *Handler) HandleDiff(c *fiber.Ctx) error {
	var req DiffRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if req.Source == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "source is required"})
	}

	l := logger.WithRayID(h.service.logger, c)
	l.Info("Comparing schedules", zap.String("source", req.Source), zap.Strings("distribution", req.Distribution))

	out, err := h.service.Diff(c.Context(), req.Source, req.Distribution, req.Record)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(out)
}

// HandleListRuns lists recorded diff runs.
// @Summary List Runs
// @Description Returns the most recent recorded diff runs, newest first.
// @Tags schedule
// @Produce json
// @Param limit query int false "Maximum number of runs" default(20)
// @Success 200 {array} history.Run
// @Failure 503 {object} map[string]string "History not configured"
// @Router /schedule/runs [get]
func (h *Handler) HandleListRuns(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", defaultRunLimit)
	runs, err := h.service.ListRuns(c.Context(), limit)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(runs)
}

// HandleGetRun returns one recorded diff run.
// @Summary Get Run
// @Description Returns a recorded diff run with its added, deleted and changed entries.
// @Tags schedule
// @Produce json
// @Param id path string true "Run ID"
// @Success 200 {object} history.Run
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 503 {object} map[string]string "History not configured"
// @Router /schedule/runs/{id} [get]
func (h *Handler) HandleGetRun(c *fiber.Ctx) error {
	run, err := h.service.GetRun(c.Context(), c.Params("id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(run)
}

func (h *Handler) fail(c *fiber.Ctx, err error) error {
	status := statusFor(err)
	if status >= fiber.StatusInternalServerError {
		logger.WithRayID(h.service.logger, c).Error("Request failed", zap.Error(err))
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, reconcile.ErrNoFiles):
		return fiber.StatusBadRequest
	case errors.Is(err, history.ErrRunNotFound), errors.Is(err, fs.ErrNotExist):
		return fiber.StatusNotFound
	case errors.Is(err, ErrHistoryDisabled):
		return fiber.StatusServiceUnavailable
	case errors.Is(err, feeds.ErrSheetNotFound),
		errors.Is(err, feeds.ErrMissingColumn),
		errors.Is(err, reconcile.ErrExcessiveIDUse),
		errors.Is(err, reconcile.ErrSameDaySplit),
		errors.Is(err, reconcile.ErrDuplicateSourceID),
		errors.Is(err, reconcile.ErrMissingField),
		errors.Is(err, reconcile.ErrInvalidDate):
		return fiber.StatusUnprocessableEntity
	default:
		return fiber.StatusInternalServerError
	}
}

func splitNames(s string) []string {
	var names []string
	for _, n := range strings.Split(s, ",") {
		if n = strings.TrimSpace(n); n != "" {
			names = append(names, n)
		}
	}
	return names
}
