package router

import (
	"club_recruit_server/internal/handler"
	"club_recruit_server/internal/infrastructure/middleware"

	"github.com/gin-gonic/gin"
)

// registerNoticeRoutes 공지 라우트 등록
func (rt *Router) registerNoticeRoutes(r *gin.Engine) {
	// 목록 조회는 공개
	r.GET("/notice/getNoticeList", rt.handlers.Notice.GetNoticeList)

	// 작성/수정/삭제는 관리자 전용
	adminGroup := r.Group("/notice")
	adminGroup.Use(middleware.JWTAuth(), handler.RequireAdmin(rt.services.User))
	{
		adminGroup.POST("/createNotice", rt.handlers.Notice.CreateNotice)
		adminGroup.POST("/updateNotice", rt.handlers.Notice.UpdateNotice)
		adminGroup.POST("/deleteNotice", rt.handlers.Notice.DeleteNotice)
	}
}
