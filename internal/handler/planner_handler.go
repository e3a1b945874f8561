package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rhyrak/course-planner/internal/dto"
	"github.com/rhyrak/course-planner/internal/service"
	appErrors "github.com/rhyrak/course-planner/pkg/errors"
	"github.com/rhyrak/course-planner/pkg/logger"
	"github.com/rhyrak/course-planner/pkg/response"
)

type planner interface {
	Generate(ctx context.Context, req dto.GenerateRequest) (*dto.GenerateResponse, error)
	Catalog(ctx context.Context, q dto.CatalogQuery) (*dto.CatalogResponse, error)
	Wizard(ctx context.Context, req dto.WizardRequest) (*dto.WizardResponse, error)
	Export(ctx context.Context, req dto.ExportRequest) (*dto.ExportFile, error)
}

// PlannerHandler exposes the schedule planner over HTTP.
type PlannerHandler struct {
	service planner
}

func NewPlannerHandler(svc *service.PlannerService) *PlannerHandler {
	return &PlannerHandler{service: svc}
}

// RegisterRoutes mounts the planner endpoints on rg.
func (h *PlannerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/schedules/generate", h.Generate)
	rg.POST("/schedules/export", h.Export)
	rg.POST("/wizard", h.Wizard)
	rg.GET("/catalog", h.Catalog)
}

// Generate returns the best schedules for the posted constraints.
func (h *PlannerHandler) Generate(c *gin.Context) {
	var req dto.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid schedule payload"))
		return
	}
	resp, err := h.service.Generate(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	logger.Annotate(c,
		zap.String("result_id", resp.ID),
		zap.Int("schedules", len(resp.Schedules)),
		zap.Int("candidates", resp.Candidates),
		zap.Bool("truncated", resp.Truncated),
	)
	response.JSON(c, http.StatusOK, resp, map[string]interface{}{"count": len(resp.Schedules), "truncated": resp.Truncated})
}

// Export streams the generated schedules as csv, ics or pdf. The format
// comes from the query string when the body does not name one.
func (h *PlannerHandler) Export(c *gin.Context) {
	var req dto.ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid export payload"))
		return
	}
	if req.Format == "" {
		req.Format = c.Query("format")
	}
	file, err := h.service.Export(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	logger.Annotate(c, zap.String("format", req.Format), zap.Int("bytes", len(file.Data)))
	response.File(c, file.Name, file.ContentType, file.Data)
}

// Wizard answers one wizard question.
func (h *PlannerHandler) Wizard(c *gin.Context) {
	var req dto.WizardRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid wizard payload"))
			return
		}
	}
	resp, err := h.service.Wizard(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, resp)
}

// Catalog lists the loaded courses, optionally filtered by ?q=.
func (h *PlannerHandler) Catalog(c *gin.Context) {
	var q dto.CatalogQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid catalog query"))
		return
	}
	resp, err := h.service.Catalog(c.Request.Context(), q)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, resp)
}
