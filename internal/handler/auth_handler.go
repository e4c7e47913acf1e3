// Package handler HTTP 요청 처리기
// 본 파일은 토큰 갱신과 관리자 권한 검사를 처리한다
package handler

import (
	"club_recruit_server/internal/dto/request"
	"club_recruit_server/internal/model"
	"club_recruit_server/internal/service"
	"club_recruit_server/pkg/errorx"

	"github.com/gin-gonic/gin"
)

// AuthHandler 인증 요청 처리기
type AuthHandler struct {
	userSvc service.UserService
}

// NewAuthHandler 생성자
func NewAuthHandler(userSvc service.UserService) *AuthHandler {
	return &AuthHandler{userSvc: userSvc}
}

// RefreshToken Access Token 갱신 (Refresh Token 회전)
// POST /auth/refresh
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req request.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.userSvc.RefreshToken(req.RefreshToken)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// RequireAdmin 관리자 권한 검사 미들웨어
// JWTAuth 뒤에 두어야 한다 (user_id 컨텍스트에 의존)
func RequireAdmin(userSvc service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := userSvc.GetUserInfo(c.GetString("user_id"))
		if err != nil || user.Role != model.RoleAdmin {
			HandleError(c, errorx.New(errorx.CodeUnauthorized, "관리자만 사용할 수 있는 기능입니다"))
			c.Abort()
			return
		}
		c.Next()
	}
}
