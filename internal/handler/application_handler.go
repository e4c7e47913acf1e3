// Package handler HTTP 요청 처리기
// 본 파일은 지원서 관련 API 를 처리한다
package handler

import (
	"club_recruit_server/internal/dto/request"
	"club_recruit_server/internal/service"
	"club_recruit_server/pkg/errorx"

	"github.com/gin-gonic/gin"
)

// ApplicationHandler 지원서 요청 처리기
type ApplicationHandler struct {
	appSvc service.ApplicationService
}

// NewApplicationHandler 생성자
func NewApplicationHandler(appSvc service.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{appSvc: appSvc}
}

// SubmitApplication 지원서 제출
// POST /application/submitApplication (인증 필요)
func (h *ApplicationHandler) SubmitApplication(c *gin.Context) {
	var req request.SubmitApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.appSvc.SubmitApplication(c.GetString("user_id"), req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// GetMyApplications 내 지원서 목록
// GET /application/getMyApplications (인증 필요)
func (h *ApplicationHandler) GetMyApplications(c *gin.Context) {
	HandleSuccess(c, h.appSvc.GetMyApplications(c.GetString("user_id")))
}

// GetClubApplications 동아리 지원서 목록 (관리자)
// GET /application/getClubApplications?club_id=xxx
func (h *ApplicationHandler) GetClubApplications(c *gin.Context) {
	clubID := c.Query("club_id")
	if clubID == "" {
		HandleError(c, errorx.ErrInvalidParam)
		return
	}
	HandleSuccess(c, h.appSvc.GetClubApplications(clubID))
}

// GetApplicationInfo 지원서 단건 조회
// GET /application/getApplicationInfo?application_id=xxx
func (h *ApplicationHandler) GetApplicationInfo(c *gin.Context) {
	applicationID := c.Query("application_id")
	if applicationID == "" {
		HandleError(c, errorx.ErrInvalidParam)
		return
	}
	data, err := h.appSvc.GetApplicationInfo(applicationID)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// AssignInterview 면접 슬롯 배정 (관리자)
// POST /application/assignInterview
func (h *ApplicationHandler) AssignInterview(c *gin.Context) {
	var req request.AssignInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.appSvc.AssignInterview(req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// DecideDocument 서류 결과 결정 (관리자)
// POST /application/decideDocument
func (h *ApplicationHandler) DecideDocument(c *gin.Context) {
	var req request.DecideDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.appSvc.DecideDocument(req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// DecideFinal 최종 결과 결정 (관리자)
// POST /application/decideFinal
func (h *ApplicationHandler) DecideFinal(c *gin.Context) {
	var req request.DecideFinalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.appSvc.DecideFinal(req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}
