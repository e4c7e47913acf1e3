package respond

// ToggleWishlistRespond 위시리스트 토글 응답
// 토글 후의 멤버십 상태와 전체 목록을 함께 내려준다
type ToggleWishlistRespond struct {
	IsWishlisted bool     `json:"is_wishlisted"`
	ClubIDs      []string `json:"club_ids"`
}
