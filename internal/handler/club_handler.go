// Package handler HTTP 요청 처리기
// 본 파일은 동아리 조회 API 를 처리한다
package handler

import (
	"club_recruit_server/internal/service"
	"club_recruit_server/pkg/errorx"

	"github.com/gin-gonic/gin"
)

// ClubHandler 동아리 요청 처리기
type ClubHandler struct {
	clubSvc service.ClubService
}

// NewClubHandler 생성자
func NewClubHandler(clubSvc service.ClubService) *ClubHandler {
	return &ClubHandler{clubSvc: clubSvc}
}

// GetClubList 전체 동아리 목록
// GET /club/getClubList
func (h *ClubHandler) GetClubList(c *gin.Context) {
	HandleSuccess(c, h.clubSvc.GetClubList())
}

// GetClubInfo 동아리 단건 조회
// GET /club/getClubInfo?club_id=xxx
func (h *ClubHandler) GetClubInfo(c *gin.Context) {
	clubID := c.Query("club_id")
	if clubID == "" {
		HandleError(c, errorx.ErrInvalidParam)
		return
	}
	data, err := h.clubSvc.GetClubInfo(clubID)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}
