// Package handler HTTP 요청 처리기
// 본 파일은 로컬 계정 관련 API 를 처리한다
package handler

import (
	"club_recruit_server/internal/dto/request"
	"club_recruit_server/internal/service"

	"github.com/gin-gonic/gin"
)

// UserHandler 계정 요청 처리기
type UserHandler struct {
	userSvc service.UserService
}

// NewUserHandler 생성자
func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

// Register 회원가입
// POST /user/register
func (h *UserHandler) Register(c *gin.Context) {
	var req request.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.userSvc.Register(req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// Login 로그인
// POST /user/login
func (h *UserHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.userSvc.Login(req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// GetMyInfo 내 계정 조회
// GET /user/getMyInfo (인증 필요)
func (h *UserHandler) GetMyInfo(c *gin.Context) {
	userID := c.GetString("user_id")
	data, err := h.userSvc.GetUserInfo(userID)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}
