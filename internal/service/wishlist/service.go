// Package wishlist 관심 동아리 토글 비즈니스 로직
package wishlist

import (
	"club_recruit_server/internal/dao/localstore"
	"club_recruit_server/internal/dto/respond"
	"club_recruit_server/internal/model"
)

// wishlistService WishlistService 구현
type wishlistService struct {
	stores *localstore.Stores
}

// NewWishlistService 생성자
func NewWishlistService(stores *localstore.Stores) *wishlistService {
	return &wishlistService{stores: stores}
}

// Toggle 관심 등록/해제
// 사용자의 행이 없으면 만들어서 넣고, 있으면 clubId 의 소속 여부를 반전한다
// 같은 입력을 두 번 호출하면 원래 상태로 돌아온다
func (s *wishlistService) Toggle(userID, clubID string) (*respond.ToggleWishlistRespond, error) {
	var result respond.ToggleWishlistRespond

	_, err := s.stores.Wishlists.Update(func(items []model.UserWishlist) ([]model.UserWishlist, error) {
		for i := range items {
			if items[i].UserID != userID {
				continue
			}
			row := &items[i]
			for j, id := range row.ClubIDs {
				if id == clubID {
					row.ClubIDs = append(row.ClubIDs[:j], row.ClubIDs[j+1:]...)
					result = respond.ToggleWishlistRespond{IsWishlisted: false, ClubIDs: append([]string{}, row.ClubIDs...)}
					return items, nil
				}
			}
			row.ClubIDs = append(row.ClubIDs, clubID)
			result = respond.ToggleWishlistRespond{IsWishlisted: true, ClubIDs: append([]string{}, row.ClubIDs...)}
			return items, nil
		}

		items = append(items, model.UserWishlist{UserID: userID, ClubIDs: []string{clubID}})
		result = respond.ToggleWishlistRespond{IsWishlisted: true, ClubIDs: []string{clubID}}
		return items, nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// GetMyWishlist 사용자의 관심 동아리 id 목록
// 행이 없으면 빈 목록 (행을 만들지는 않는다)
func (s *wishlistService) GetMyWishlist(userID string) []string {
	for _, row := range s.stores.Wishlists.Load() {
		if row.UserID == userID {
			return append([]string{}, row.ClubIDs...)
		}
	}
	return []string{}
}
