// Package handler HTTP 요청 처리기
// 본 파일은 동아리 공지 API 를 처리한다
package handler

import (
	"club_recruit_server/internal/dto/request"
	"club_recruit_server/internal/service"
	"club_recruit_server/pkg/errorx"

	"github.com/gin-gonic/gin"
)

// NoticeHandler 공지 요청 처리기
type NoticeHandler struct {
	noticeSvc service.NoticeService
}

// NewNoticeHandler 생성자
func NewNoticeHandler(noticeSvc service.NoticeService) *NoticeHandler {
	return &NoticeHandler{noticeSvc: noticeSvc}
}

// GetNoticeList 동아리 공지 목록
// GET /notice/getNoticeList?club_id=xxx
func (h *NoticeHandler) GetNoticeList(c *gin.Context) {
	clubID := c.Query("club_id")
	if clubID == "" {
		HandleError(c, errorx.ErrInvalidParam)
		return
	}
	HandleSuccess(c, h.noticeSvc.GetNoticeList(clubID))
}

// CreateNotice 공지 작성 (관리자)
// POST /notice/createNotice
func (h *NoticeHandler) CreateNotice(c *gin.Context) {
	var req request.CreateNoticeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.noticeSvc.CreateNotice(req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// UpdateNotice 공지 수정 (관리자)
// POST /notice/updateNotice
func (h *NoticeHandler) UpdateNotice(c *gin.Context) {
	var req request.UpdateNoticeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.noticeSvc.UpdateNotice(req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// DeleteNotice 공지 삭제 (관리자)
// POST /notice/deleteNotice
func (h *NoticeHandler) DeleteNotice(c *gin.Context) {
	var req request.DeleteNoticeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	deleted, err := h.noticeSvc.DeleteNotice(req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, gin.H{"deleted": deleted})
}
