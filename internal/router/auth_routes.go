package router

import (
	"github.com/gin-gonic/gin"
)

// registerAuthRoutes 인증 라우트 등록 (모두 공개)
func (rt *Router) registerAuthRoutes(r *gin.Engine) {
	r.POST("/user/register", rt.handlers.User.Register)
	r.POST("/user/login", rt.handlers.User.Login)
	r.POST("/auth/refresh", rt.handlers.Auth.RefreshToken)
}
