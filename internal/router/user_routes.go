package router

import (
	"club_recruit_server/internal/infrastructure/middleware"

	"github.com/gin-gonic/gin"
)

// registerUserRoutes 계정 라우트 등록
func (rt *Router) registerUserRoutes(r *gin.Engine) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.JWTAuth())
	{
		userGroup.GET("/getMyInfo", rt.handlers.User.GetMyInfo)
	}
}
