package http

import (
	"net/http"
	"time"

	"bgm-auto-tracker/domain/dto"
	"bgm-auto-tracker/domain/model"
	"bgm-auto-tracker/infrastructure/logger"
	"bgm-auto-tracker/infrastructure/utils"
	"bgm-auto-tracker/usecase"

	"github.com/gin-gonic/gin"
)

// IMissingHandler defines the interface for missing bangumi handlers
type IMissingHandler interface {
	ReportMissingBangumi(c *gin.Context)
	Statistics(c *gin.Context)
	RecentReports(c *gin.Context)
}

// MissingHandler implements missing bangumi reporting and listings
type MissingHandler struct {
	missingUsecase usecase.IMissingUsecase
	now            func() time.Time
}

// NewMissingHandler creates a new missing bangumi handler
func NewMissingHandler(missingUsecase usecase.IMissingUsecase) IMissingHandler {
	return &MissingHandler{missingUsecase: missingUsecase, now: utils.GetCurrentTime}
}

// ReportMissingBangumi handles POST /api/v0.1/reportMissingBangumi
func (h *MissingHandler) ReportMissingBangumi(c *gin.Context) {
	var req dto.ReportMissingBangumiRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.GetLogger().WithField("error", err).Error(ErrorUnmarshal)
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, err.Error()))
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, err))
		return
	}

	if err := h.missingUsecase.Report(c.Request.Context(), req.Report(h.now())); err != nil {
		logger.GetLogger().WithField("error", err).Error("Storing missing report failed")
		c.JSON(http.StatusBadGateway, dto.StatusResponse{Status: dto.StatusError, Message: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, dto.StatusResponse{Status: dto.StatusSuccess})
}

// Statistics handles GET /statistics_missing_bangumi
func (h *MissingHandler) Statistics(c *gin.Context) {
	filter := model.ParseSubjectFilter(c.Query("subject_id"))
	entries, err := h.missingUsecase.Statistics(c.Request.Context(), filter)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Listing missing statistics failed")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, err.Error()))
		return
	}
	c.JSON(http.StatusOK, entries)
}

// RecentReports handles GET /api/v0.1/missing_bangumi
func (h *MissingHandler) RecentReports(c *gin.Context) {
	reports, err := h.missingUsecase.RecentReports(c.Request.Context())
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Listing missing reports failed")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, err.Error()))
		return
	}
	if reports == nil {
		reports = []model.MissingReport{}
	}
	c.JSON(http.StatusOK, reports)
}
