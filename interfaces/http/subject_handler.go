package http

import (
	"errors"
	"net/http"

	"bgm-auto-tracker/domain/dto"
	"bgm-auto-tracker/domain/model"
	"bgm-auto-tracker/domain/repository"
	"bgm-auto-tracker/infrastructure/logger"
	"bgm-auto-tracker/usecase"

	"github.com/gin-gonic/gin"
)

const ErrorMissingSubjectQuery = "missing input `website` or `bangumiID`"

// ISubjectHandler defines the interface for subject lookup handlers
type ISubjectHandler interface {
	QuerySubjectID(c *gin.Context)
}

// SubjectHandler implements subject id lookups
type SubjectHandler struct {
	subjectUsecase usecase.ISubjectUsecase
}

// NewSubjectHandler creates a new subject handler
func NewSubjectHandler(subjectUsecase usecase.ISubjectUsecase) ISubjectHandler {
	return &SubjectHandler{subjectUsecase: subjectUsecase}
}

// QuerySubjectID handles GET /api/v0.2/querySubjectID
func (h *SubjectHandler) QuerySubjectID(c *gin.Context) {
	website, ok := model.ParseWebsite(c.Query("website"))
	bangumiID := c.Query("bangumiID")
	if !ok || bangumiID == "" {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, ErrorMissingSubjectQuery))
		return
	}

	subject, err := h.subjectUsecase.QuerySubject(c.Request.Context(), website, bangumiID)
	if errors.Is(err, repository.ErrSubjectNotFound) {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, nil))
		return
	}
	if err != nil {
		logger.GetLogger().WithField("error", err).WithField("website", website).Error("Subject lookup failed")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, subject)
}
