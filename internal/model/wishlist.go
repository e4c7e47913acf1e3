package model

// UserWishlist 사용자별 관심 동아리 레코드
// 최초 토글 시 지연 생성되며, ClubIDs 안에서 동일 clubId 는 최대 한 번 나타난다
type UserWishlist struct {
	UserID  string   `json:"userId"`
	ClubIDs []string `json:"clubIds"`
}

// Contains clubId 포함 여부 확인
func (w *UserWishlist) Contains(clubID string) bool {
	for _, id := range w.ClubIDs {
		if id == clubID {
			return true
		}
	}
	return false
}
