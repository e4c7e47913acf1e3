// Package handler HTTP 요청 처리기
// 본 파일은 위시리스트 API 를 처리한다
package handler

import (
	"club_recruit_server/internal/dto/request"
	"club_recruit_server/internal/service"

	"github.com/gin-gonic/gin"
)

// WishlistHandler 위시리스트 요청 처리기
type WishlistHandler struct {
	wishlistSvc service.WishlistService
}

// NewWishlistHandler 생성자
func NewWishlistHandler(wishlistSvc service.WishlistService) *WishlistHandler {
	return &WishlistHandler{wishlistSvc: wishlistSvc}
}

// Toggle 관심 동아리 토글
// POST /wishlist/toggle (인증 필요)
func (h *WishlistHandler) Toggle(c *gin.Context) {
	var req request.ToggleWishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.wishlistSvc.Toggle(c.GetString("user_id"), req.ClubID)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// GetMyWishlist 내 관심 동아리 목록
// GET /wishlist/getMyWishlist (인증 필요)
func (h *WishlistHandler) GetMyWishlist(c *gin.Context) {
	HandleSuccess(c, h.wishlistSvc.GetMyWishlist(c.GetString("user_id")))
}
