package request

// ToggleWishlistRequest 위시리스트 토글 요청
// 있으면 제거, 없으면 추가. 사용자 id 는 JWT 에서 가져온다
type ToggleWishlistRequest struct {
	ClubID string `json:"club_id" binding:"required"`
}
