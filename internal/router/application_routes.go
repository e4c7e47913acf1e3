package router

import (
	"club_recruit_server/internal/handler"
	"club_recruit_server/internal/infrastructure/middleware"

	"github.com/gin-gonic/gin"
)

// registerApplicationRoutes 지원서 라우트 등록
func (rt *Router) registerApplicationRoutes(r *gin.Engine) {
	appGroup := r.Group("/application")
	appGroup.Use(middleware.JWTAuth())
	{
		appGroup.POST("/submitApplication", rt.handlers.Application.SubmitApplication)
		appGroup.GET("/getMyApplications", rt.handlers.Application.GetMyApplications)
		appGroup.GET("/getApplicationInfo", rt.handlers.Application.GetApplicationInfo)
	}

	// 관리자 전용
	adminGroup := r.Group("/application")
	adminGroup.Use(middleware.JWTAuth(), handler.RequireAdmin(rt.services.User))
	{
		adminGroup.GET("/getClubApplications", rt.handlers.Application.GetClubApplications)
		adminGroup.POST("/assignInterview", rt.handlers.Application.AssignInterview)
		adminGroup.POST("/decideDocument", rt.handlers.Application.DecideDocument)
		adminGroup.POST("/decideFinal", rt.handlers.Application.DecideFinal)
	}
}
