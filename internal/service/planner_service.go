package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rhyrak/course-planner/internal/csvio"
	"github.com/rhyrak/course-planner/internal/dto"
	"github.com/rhyrak/course-planner/internal/exporter"
	"github.com/rhyrak/course-planner/internal/metrics"
	"github.com/rhyrak/course-planner/internal/scheduler"
	"github.com/rhyrak/course-planner/internal/wizard"
	appErrors "github.com/rhyrak/course-planner/pkg/errors"
	"github.com/rhyrak/course-planner/pkg/model"
)

// CatalogSource provides the course catalog.
type CatalogSource interface {
	Catalog(ctx context.Context) ([]model.Course, error)
}

// PlannerConfig governs planner behaviour.
type PlannerConfig struct {
	Options  *scheduler.Options
	Term     exporter.Term
	FontPath string
}

// PlannerService turns schedule requests into ranked schedules.
type PlannerService struct {
	source    CatalogSource
	opts      scheduler.Options
	term      exporter.Term
	pdf       *exporter.PDFExporter
	validator *validator.Validate
	logger    *zap.Logger
	metrics   *metrics.Recorder
}

// NewPlannerService wires the planner dependencies. validate, logger and
// rec may be nil.
func NewPlannerService(source CatalogSource, validate *validator.Validate, logger *zap.Logger, rec *metrics.Recorder, cfg PlannerConfig) *PlannerService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	opts := scheduler.NewDefaultOptions()
	if cfg.Options != nil {
		opts = cfg.Options
	}
	return &PlannerService{
		source:    source,
		opts:      *opts,
		term:      cfg.Term,
		pdf:       exporter.NewPDFExporter(cfg.FontPath),
		validator: validate,
		logger:    logger,
		metrics:   rec,
	}
}

// Plan runs the engine on the current catalog. topN <= 0 keeps the
// configured value. When nothing is feasible the result is returned along
// with an error wrapping scheduler.ErrNoSchedule.
func (s *PlannerService) Plan(ctx context.Context, c model.Constraints, topN int) (*model.Result, error) {
	catalog, err := s.source.Catalog(ctx)
	if err != nil {
		s.metrics.ObserveGeneration(metrics.OutcomeError, nil, 0)
		s.logger.Error("failed to load catalog", zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrCatalog.Code, appErrors.ErrCatalog.Status, appErrors.ErrCatalog.Message)
	}

	opts := s.opts
	if topN > 0 {
		opts.TopN = topN
	}
	if deadline, ok := ctx.Deadline(); ok {
		left := max(time.Until(deadline), time.Millisecond)
		if opts.Timeout == 0 || left < opts.Timeout {
			opts.Timeout = left
		}
	}

	start := time.Now()
	res, err := scheduler.Generate(catalog, c, &opts)
	elapsed := time.Since(start)
	switch {
	case errors.Is(err, scheduler.ErrNoSchedule):
		s.metrics.ObserveGeneration(metrics.OutcomeNoSchedule, res, elapsed)
		s.logger.Info("no feasible schedule",
			zap.Int("catalog", len(catalog)),
			zap.Int("candidates", res.Candidates),
			zap.Int("nodes", res.Nodes),
			zap.Bool("truncated", res.Truncated),
		)
		return res, appErrors.Wrap(err, appErrors.ErrNoSchedule.Code, appErrors.ErrNoSchedule.Status, appErrors.ErrNoSchedule.Message)
	case err != nil:
		s.metrics.ObserveGeneration(metrics.OutcomeInvalid, nil, elapsed)
		return nil, appErrors.Clone(appErrors.ErrValidation, err.Error())
	}

	s.metrics.ObserveGeneration(metrics.OutcomeOK, res, elapsed)
	s.logger.Info("schedules generated",
		zap.Int("catalog", len(catalog)),
		zap.Int("candidates", res.Candidates),
		zap.Int("feasible", res.Feasible),
		zap.Int("nodes", res.Nodes),
		zap.Bool("truncated", res.Truncated),
		zap.Int("best_score", res.Schedules[0].Score),
		zap.Duration("elapsed", elapsed),
	)
	if res.Truncated {
		s.logger.Warn("search budget exhausted, results are the best found so far", zap.Int("nodes", res.Nodes))
	}
	return res, nil
}

// Generate validates a client request and returns the ranked schedules.
func (s *PlannerService) Generate(ctx context.Context, req dto.GenerateRequest) (*dto.GenerateResponse, error) {
	c, err := s.constraints(req)
	if err != nil {
		return nil, err
	}
	res, err := s.Plan(ctx, c, req.TopN)
	if err != nil {
		return nil, err
	}
	return toResponse(res), nil
}

// Catalog lists catalog courses whose name or instructor contains q.
func (s *PlannerService) Catalog(ctx context.Context, q dto.CatalogQuery) (*dto.CatalogResponse, error) {
	if err := s.validator.Struct(q); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid catalog query")
	}
	catalog, err := s.source.Catalog(ctx)
	if err != nil {
		s.logger.Error("failed to load catalog", zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrCatalog.Code, appErrors.ErrCatalog.Status, appErrors.ErrCatalog.Message)
	}
	resp := &dto.CatalogResponse{Courses: []dto.CourseView{}}
	for _, c := range catalog {
		if q.Query != "" && !strings.Contains(c.Name, q.Query) && !strings.Contains(c.Instructor, q.Query) {
			continue
		}
		resp.Total++
		if q.Limit == 0 || len(resp.Courses) < q.Limit {
			resp.Courses = append(resp.Courses, toCourseView(c))
		}
	}
	return resp, nil
}

// Wizard applies one answer. Once the last question is answered the
// collected constraints are planned.
func (s *PlannerService) Wizard(ctx context.Context, req dto.WizardRequest) (*dto.WizardResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid wizard payload")
	}
	state := wizard.New()
	if req.State != nil {
		next, err := wizard.Advance(*req.State, req.Input)
		if errors.Is(err, wizard.ErrFinished) {
			return nil, appErrors.Clone(appErrors.ErrWizardFinish, "")
		}
		if err != nil {
			return nil, appErrors.Clone(appErrors.ErrValidation, err.Error())
		}
		state = next
	}

	resp := &dto.WizardResponse{State: state, Prompt: wizard.PromptFor(state), Done: state.Done()}
	if state.Done() {
		res, err := s.Plan(ctx, state.Constraints, 0)
		if err != nil {
			return nil, err
		}
		resp.Result = toResponse(res)
	}
	return resp, nil
}

// Export re-runs a generation and renders it. CSV holds every ranked
// schedule; iCalendar and PDF hold the one at req.Rank (default 1).
func (s *PlannerService) Export(ctx context.Context, req dto.ExportRequest) (*dto.ExportFile, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid export request")
	}
	c, err := s.constraints(req.GenerateRequest)
	if err != nil {
		return nil, err
	}
	res, err := s.Plan(ctx, c, req.TopN)
	if err != nil {
		return nil, err
	}
	rank := req.Rank
	if rank == 0 {
		rank = 1
	}
	if rank > len(res.Schedules) {
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("rank %d exceeds the %d generated schedules", rank, len(res.Schedules)))
	}
	chosen := res.Schedules[rank-1]

	switch req.Format {
	case "csv":
		out, err := csvio.ExportSchedulesString(res.Schedules)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "render csv")
		}
		return &dto.ExportFile{Name: "schedules.csv", ContentType: "text/csv; charset=utf-8", Data: []byte(out)}, nil
	case "ics":
		term := s.term
		if req.TermStart != "" {
			term.Start, _ = time.ParseInLocation(time.DateOnly, req.TermStart, termLocation(term))
		}
		if term.Start.IsZero() {
			return nil, appErrors.Clone(appErrors.ErrValidation, "termStart is required for calendar export")
		}
		var buf bytes.Buffer
		if err := exporter.GenerateICS(chosen, term, &buf); err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "render calendar")
		}
		return &dto.ExportFile{Name: "schedule.ics", ContentType: "text/calendar; charset=utf-8", Data: buf.Bytes()}, nil
	case "pdf":
		data, err := s.pdf.Render([]model.Schedule{chosen}, fmt.Sprintf("Schedule #%d", rank))
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "render pdf")
		}
		return &dto.ExportFile{Name: "schedule.pdf", ContentType: "application/pdf", Data: data}, nil
	}
	return nil, appErrors.Clone(appErrors.ErrUnsupported, fmt.Sprintf("unsupported export format %q", req.Format))
}

func (s *PlannerService) constraints(req dto.GenerateRequest) (model.Constraints, error) {
	if err := s.validator.Struct(req); err != nil {
		return model.Constraints{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid schedule request")
	}
	tod, err := model.ParseTimeOfDay(req.TimeOfDay)
	if err != nil {
		return model.Constraints{}, appErrors.Clone(appErrors.ErrValidation, err.Error())
	}
	c := model.Constraints{
		MaxCredit:      *req.MaxCredit,
		Instructor:     strings.TrimSpace(req.Instructor),
		TimeOfDay:      tod,
		BackToBack:     req.BackToBack,
		DesiredCourses: req.DesiredCourses,
	}
	for _, raw := range req.ExcludedDays {
		d, ok := model.ParseDay(raw)
		if !ok {
			return model.Constraints{}, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown weekday %q", raw))
		}
		c.ExcludedDays = append(c.ExcludedDays, d)
	}
	return c, nil
}

func termLocation(t exporter.Term) *time.Location {
	if t.Location != nil {
		return t.Location
	}
	return time.Local
}

func toResponse(res *model.Result) *dto.GenerateResponse {
	resp := &dto.GenerateResponse{
		ID:         uuid.NewString(),
		Candidates: res.Candidates,
		Feasible:   res.Feasible,
		Nodes:      res.Nodes,
		Truncated:  res.Truncated,
		Schedules:  make([]dto.ScheduleView, 0, len(res.Schedules)),
	}
	for i, sc := range res.Schedules {
		view := dto.ScheduleView{
			Rank:       i + 1,
			Credits:    sc.Credits,
			Score:      sc.Score,
			BackToBack: sc.BackToBack,
			Courses:    make([]dto.CourseView, 0, len(sc.Courses)),
		}
		for _, c := range sc.Courses {
			view.Courses = append(view.Courses, toCourseView(c))
		}
		resp.Schedules = append(resp.Schedules, view)
	}
	return resp
}

func toCourseView(c model.Course) dto.CourseView {
	sessions := c.Sessions
	if sessions == nil {
		sessions = []model.Session{}
	}
	return dto.CourseView{
		ID:         c.ID,
		Name:       c.Name,
		Instructor: c.Instructor,
		Credit:     c.Credit,
		Year:       c.Year,
		RawTime:    c.RawTime,
		Sessions:   sessions,
	}
}
