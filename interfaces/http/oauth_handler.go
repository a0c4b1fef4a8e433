package http

import (
	"encoding/json"
	"errors"
	"html/template"
	"net/http"

	"bgm-auto-tracker/domain/dto"
	"bgm-auto-tracker/domain/repository"
	"bgm-auto-tracker/infrastructure/logger"
	"bgm-auto-tracker/usecase"

	"github.com/gin-gonic/gin"
)

const ErrorUnmarshal = "Error while unmarshal"

// IOAuthHandler defines the interface for bgm.tv OAuth handlers
type IOAuthHandler interface {
	AuthRedirect(c *gin.Context)
	Callback(c *gin.Context)
	RefreshToken(c *gin.Context)
}

// OAuthHandler implements the bgm.tv OAuth2 authorization code flow
type OAuthHandler struct {
	oauthUsecase usecase.IOAuthUsecase
}

// NewOAuthHandler creates a new bgm.tv OAuth handler
func NewOAuthHandler(oauthUsecase usecase.IOAuthUsecase) IOAuthHandler {
	return &OAuthHandler{oauthUsecase: oauthUsecase}
}

// AuthRedirect handles GET /auth
func (h *OAuthHandler) AuthRedirect(c *gin.Context) {
	c.Redirect(http.StatusFound, h.oauthUsecase.AuthorizeURL())
}

// Callback handles GET /oauth_callback
func (h *OAuthHandler) Callback(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		c.Redirect(http.StatusFound, h.oauthUsecase.AuthorizeURL())
		return
	}

	token, err := h.oauthUsecase.ExchangeCode(c.Request.Context(), code)
	if err != nil {
		var providerErr *usecase.ProviderError
		switch {
		case errors.Is(err, repository.ErrProviderNotJSON):
			logger.GetLogger().WithField("error", err).Warn("Token exchange returned non JSON, restarting authorization")
			c.Redirect(http.StatusFound, h.oauthUsecase.AuthorizeURL())
		case errors.As(err, &providerErr):
			c.JSON(http.StatusBadRequest, providerErr.Body)
		default:
			logger.GetLogger().WithField("error", err).Error("Token exchange failed")
			c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, err.Error()))
		}
		return
	}

	data, err := json.Marshal(token)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, err.Error()))
		return
	}
	c.HTML(http.StatusOK, PostToExtensionTemplate, gin.H{"data": template.JS(data)})
}

// RefreshToken handles POST /api/v0.1/refresh_token
func (h *OAuthHandler) RefreshToken(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.GetLogger().WithField("error", err).Error(ErrorUnmarshal)
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, nil))
		return
	}
	if blank(req.UserID) {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, nil))
		return
	}

	token, err := h.oauthUsecase.RefreshToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		var providerErr *usecase.ProviderError
		switch {
		case errors.Is(err, repository.ErrProviderNotJSON):
			logger.GetLogger().WithField("error", err).Warn("Token refresh returned non JSON")
			c.AbortWithStatus(http.StatusGatewayTimeout)
		case errors.As(err, &providerErr):
			c.JSON(http.StatusOK, providerErr.Body)
		default:
			logger.GetLogger().WithField("error", err).Error("Token refresh failed")
			c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, err.Error()))
		}
		return
	}

	c.JSON(http.StatusOK, token)
}

func blank(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case float64:
		return t == 0
	case bool:
		return !t
	default:
		return false
	}
}
