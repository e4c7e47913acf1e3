package router

import (
	"github.com/gin-gonic/gin"
)

// registerWebSocketRoutes 변경 알림 푸시 라우트 등록
// 힌트 프레임만 내려가므로 인증 없이 공개한다
func (rt *Router) registerWebSocketRoutes(r *gin.Engine) {
	r.GET("/ws", rt.gateway.HandleConn)
}
