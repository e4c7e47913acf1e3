package router

import (
	"club_recruit_server/internal/handler"
	"club_recruit_server/internal/infrastructure/middleware"

	"github.com/gin-gonic/gin"
)

// registerQuestionRoutes 지원서 질문 라우트 등록
func (rt *Router) registerQuestionRoutes(r *gin.Engine) {
	// 목록 조회는 공개 (지원서 작성 화면에서 사용)
	r.GET("/question/getQuestionList", rt.handlers.Question.GetQuestionList)

	// 편집은 관리자 전용
	adminGroup := r.Group("/question")
	adminGroup.Use(middleware.JWTAuth(), handler.RequireAdmin(rt.services.User))
	{
		adminGroup.POST("/createQuestion", rt.handlers.Question.CreateQuestion)
		adminGroup.POST("/updateQuestion", rt.handlers.Question.UpdateQuestion)
		adminGroup.POST("/deleteQuestion", rt.handlers.Question.DeleteQuestion)
		adminGroup.POST("/reorderQuestions", rt.handlers.Question.ReorderQuestions)
	}
}
