// Package handler HTTP 요청 처리기
// 본 파일은 지원서 질문 API 를 처리한다
package handler

import (
	"club_recruit_server/internal/dto/request"
	"club_recruit_server/internal/service"
	"club_recruit_server/pkg/errorx"

	"github.com/gin-gonic/gin"
)

// QuestionHandler 질문 요청 처리기
type QuestionHandler struct {
	questionSvc service.QuestionService
}

// NewQuestionHandler 생성자
func NewQuestionHandler(questionSvc service.QuestionService) *QuestionHandler {
	return &QuestionHandler{questionSvc: questionSvc}
}

// GetQuestionList 동아리 질문 목록
// GET /question/getQuestionList?club_id=xxx
func (h *QuestionHandler) GetQuestionList(c *gin.Context) {
	clubID := c.Query("club_id")
	if clubID == "" {
		HandleError(c, errorx.ErrInvalidParam)
		return
	}
	HandleSuccess(c, h.questionSvc.GetQuestionList(clubID))
}

// CreateQuestion 질문 추가 (관리자)
// POST /question/createQuestion
func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	var req request.CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.questionSvc.CreateQuestion(req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// UpdateQuestion 질문 수정 (관리자)
// POST /question/updateQuestion
func (h *QuestionHandler) UpdateQuestion(c *gin.Context) {
	var req request.UpdateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.questionSvc.UpdateQuestion(req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// DeleteQuestion 질문 삭제 (관리자)
// POST /question/deleteQuestion
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	var req request.DeleteQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	deleted, err := h.questionSvc.DeleteQuestion(req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, gin.H{"deleted": deleted})
}

// ReorderQuestions 질문 순서 변경 (관리자)
// POST /question/reorderQuestions
func (h *QuestionHandler) ReorderQuestions(c *gin.Context) {
	var req request.ReorderQuestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.questionSvc.ReorderQuestions(req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}
