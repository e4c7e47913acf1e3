// Package club 동아리 조회 비즈니스 로직
// 동아리 소개는 시드 데이터 전용이며 영속 컬렉션이 없다
package club

import (
	"club_recruit_server/internal/model"
	"club_recruit_server/internal/seed"
	"club_recruit_server/pkg/errorx"
)

// clubService ClubService 구현
type clubService struct {
	seeds []model.Club
}

// NewClubService 생성자
func NewClubService() *clubService {
	return &clubService{seeds: seed.Clubs()}
}

// GetClubList 전체 동아리 목록
func (s *clubService) GetClubList() []model.Club {
	out := make([]model.Club, len(s.seeds))
	copy(out, s.seeds)
	return out
}

// GetClubInfo 동아리 단건 조회
func (s *clubService) GetClubInfo(id string) (*model.Club, error) {
	for _, c := range s.seeds {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, errorx.Newf(errorx.CodeNotFound, "동아리를 찾을 수 없습니다 id=%s", id)
}
