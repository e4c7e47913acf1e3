// Package handler HTTP 요청 처리기
// 본 파일은 면접 슬롯 API 를 처리한다
package handler

import (
	"club_recruit_server/internal/dto/request"
	"club_recruit_server/internal/service"
	"club_recruit_server/pkg/errorx"

	"github.com/gin-gonic/gin"
)

// InterviewHandler 면접 슬롯 요청 처리기
type InterviewHandler struct {
	interviewSvc service.InterviewService
}

// NewInterviewHandler 생성자
func NewInterviewHandler(interviewSvc service.InterviewService) *InterviewHandler {
	return &InterviewHandler{interviewSvc: interviewSvc}
}

// GetSlotList 동아리 슬롯 목록
// GET /interview/getSlotList?club_id=xxx
func (h *InterviewHandler) GetSlotList(c *gin.Context) {
	clubID := c.Query("club_id")
	if clubID == "" {
		HandleError(c, errorx.ErrInvalidParam)
		return
	}
	HandleSuccess(c, h.interviewSvc.GetSlotList(clubID))
}

// CreateSlot 슬롯 생성 (관리자)
// POST /interview/createSlot
func (h *InterviewHandler) CreateSlot(c *gin.Context) {
	var req request.CreateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.interviewSvc.CreateSlot(req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// BookSlot 슬롯 예약 (지원자)
// POST /interview/bookSlot (인증 필요)
func (h *InterviewHandler) BookSlot(c *gin.Context) {
	var req request.BookSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.interviewSvc.BookSlot(req.SlotID, c.GetString("user_id"))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// UpdateSlot 슬롯 수정 (관리자)
// POST /interview/updateSlot
func (h *InterviewHandler) UpdateSlot(c *gin.Context) {
	var req request.UpdateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.interviewSvc.UpdateSlot(req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// DeleteSlot 슬롯 삭제 (관리자)
// POST /interview/deleteSlot
func (h *InterviewHandler) DeleteSlot(c *gin.Context) {
	var req request.DeleteSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	deleted, err := h.interviewSvc.DeleteSlot(req.SlotID)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, gin.H{"deleted": deleted})
}
