package apihandlers

import (
	"errors"
	"net/http"
	"strconv"

	"resumatic/internal/app"
	"resumatic/internal/models"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

type APIHandler struct {
	App *app.App
}

func NewAPIHandler(appInstance *app.App) *APIHandler {
	return &APIHandler{App: appInstance}
}

type optimizeRequest struct {
	Resume string `json:"resume" binding:"required"`
}

// OptimizeHandler runs the optimization pipeline over the posted resume
// text and returns the result payload.
func (h *APIHandler) OptimizeHandler(c *gin.Context) {
	var req optimizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}

	result, err := h.App.OptimizerService.Optimize(c.Request.Context(), req.Resume)
	if err != nil {
		if errors.Is(err, models.ErrDocumentParse) {
			unprocessable(c, err.Error())
			return
		}
		log.Errorf("OptimizeHandler: %v", err)
		internal(c, "optimization failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": result})
}

// ListRunsHandler returns recent optimization history.
func (h *APIHandler) ListRunsHandler(c *gin.Context) {
	limit := 20
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			badRequest(c, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	runs, err := h.App.OptimizerService.ListRuns(c.Request.Context(), limit)
	if err != nil {
		log.Errorf("ListRunsHandler: %v", err)
		internal(c, "failed to list runs")
		return
	}
	if runs == nil {
		runs = []*models.OptimizationRun{}
	}
	c.JSON(http.StatusOK, gin.H{"data": runs})
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}

func unprocessable(c *gin.Context, msg string) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{"error": msg})
}

func internal(c *gin.Context, msg string) {
	c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
}
