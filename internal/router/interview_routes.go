package router

import (
	"club_recruit_server/internal/handler"
	"club_recruit_server/internal/infrastructure/middleware"

	"github.com/gin-gonic/gin"
)

// registerInterviewRoutes 면접 슬롯 라우트 등록
func (rt *Router) registerInterviewRoutes(r *gin.Engine) {
	interviewGroup := r.Group("/interview")
	interviewGroup.Use(middleware.JWTAuth())
	{
		interviewGroup.GET("/getSlotList", rt.handlers.Interview.GetSlotList)
		interviewGroup.POST("/bookSlot", rt.handlers.Interview.BookSlot)
	}

	// 슬롯 관리는 관리자 전용
	adminGroup := r.Group("/interview")
	adminGroup.Use(middleware.JWTAuth(), handler.RequireAdmin(rt.services.User))
	{
		adminGroup.POST("/createSlot", rt.handlers.Interview.CreateSlot)
		adminGroup.POST("/updateSlot", rt.handlers.Interview.UpdateSlot)
		adminGroup.POST("/deleteSlot", rt.handlers.Interview.DeleteSlot)
	}
}
