package server

import (
	"net/http"
	"time"

	httpHandler "bgm-auto-tracker/interfaces/http"
	"bgm-auto-tracker/interfaces/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func InitiateRouter(
	homeHandler httpHandler.IHomeHandler,
	oauthHandler httpHandler.IOAuthHandler,
	subjectHandler httpHandler.ISubjectHandler,
	missingHandler httpHandler.IMissingHandler,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(cors.New(cors.Config{
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodHead, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Accept", "Authorization", "X-Requested-With", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", "Content-Type", "Location", middleware.RequestIDHeader},
		AllowCredentials: true,
		// any origin is echoed back
		AllowOriginFunc: func(origin string) bool {
			return true
		},
		MaxAge: 12 * time.Hour,
	}))
	router.SetHTMLTemplate(httpHandler.Templates())

	router.GET("/", homeHandler.Home)
	router.GET("/healthz", homeHandler.Healthz)

	router.GET("/auth", oauthHandler.AuthRedirect)
	router.GET("/oauth_callback", oauthHandler.Callback)
	router.GET("/statistics_missing_bangumi", missingHandler.Statistics)

	v01 := router.Group("/api/v0.1")
	{
		v01.POST("/refresh_token", oauthHandler.RefreshToken)
		v01.POST("/reportMissingBangumi", missingHandler.ReportMissingBangumi)
		v01.GET("/missing_bangumi", missingHandler.RecentReports)
	}

	v02 := router.Group("/api/v0.2")
	{
		v02.GET("/querySubjectID", subjectHandler.QuerySubjectID)
	}

	return router
}
