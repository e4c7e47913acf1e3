// Package notice 동아리 공지 비즈니스 로직
// 공지는 clubId → 시퀀스 매핑으로 저장된다
// 병합 규칙: 어떤 동아리에 영속 시퀀스가 생기면 그 동아리의 시드 시퀀스를 통째로 대체한다
// (최초 변경 시 시드를 영속 시퀀스로 복사해 오므로 기존 공지 편집도 가능)
package notice

import (
	"time"

	"club_recruit_server/internal/dao/localstore"
	"club_recruit_server/internal/dto/request"
	"club_recruit_server/internal/model"
	"club_recruit_server/internal/seed"
	"club_recruit_server/pkg/errorx"
	"club_recruit_server/pkg/util/random"
)

// noticeService NoticeService 구현
type noticeService struct {
	stores *localstore.Stores
	seeds  map[string][]model.Notice
}

// NewNoticeService 생성자
func NewNoticeService(stores *localstore.Stores) *noticeService {
	return &noticeService{
		stores: stores,
		seeds:  seed.Notices(),
	}
}

// GetNoticeList 동아리 공지 목록
func (s *noticeService) GetNoticeList(clubID string) []model.Notice {
	persisted := s.stores.Notices.Load()
	if seq, ok := persisted[clubID]; ok {
		return seq
	}
	seq := s.seeds[clubID]
	if seq == nil {
		seq = []model.Notice{}
	}
	return seq
}

// adopt 해당 동아리의 영속 시퀀스를 반환하되, 없으면 시드에서 복사해 온다
func (s *noticeService) adopt(items map[string][]model.Notice, clubID string) []model.Notice {
	if seq, ok := items[clubID]; ok {
		return seq
	}
	src := s.seeds[clubID]
	seq := make([]model.Notice, len(src))
	copy(seq, src)
	return seq
}

// today 오늘 날짜 문자열
func today() string {
	return time.Now().Format("2006-01-02")
}

// CreateNotice 공지 작성, 즉시 영속화
func (s *noticeService) CreateNotice(req request.CreateNoticeRequest) (*model.Notice, error) {
	notice := model.Notice{
		ID:          random.NewRecordID("NT"),
		Title:       req.Title,
		Content:     req.Content,
		Date:        today(),
		IsImportant: req.IsImportant,
	}

	_, err := s.stores.Notices.Update(func(items map[string][]model.Notice) (map[string][]model.Notice, error) {
		items[req.ClubID] = append(s.adopt(items, req.ClubID), notice)
		return items, nil
	})
	if err != nil {
		return nil, err
	}
	return &notice, nil
}

// UpdateNotice 공지 수정
func (s *noticeService) UpdateNotice(req request.UpdateNoticeRequest) (*model.Notice, error) {
	var updated *model.Notice

	_, err := s.stores.Notices.Update(func(items map[string][]model.Notice) (map[string][]model.Notice, error) {
		seq := s.adopt(items, req.ClubID)
		for i := range seq {
			if seq[i].ID == req.NoticeID {
				seq[i].Title = req.Title
				seq[i].Content = req.Content
				seq[i].IsImportant = req.IsImportant
				updated = &seq[i]
				items[req.ClubID] = seq
				return items, nil
			}
		}
		return nil, errorx.Newf(errorx.CodeNotFound, "공지를 찾을 수 없습니다 id=%s", req.NoticeID)
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteNotice 공지 삭제
// id 가 없으면 false 를 반환하고 컬렉션은 변경되지 않는다 (알림도 없음)
func (s *noticeService) DeleteNotice(req request.DeleteNoticeRequest) (bool, error) {
	_, err := s.stores.Notices.Update(func(items map[string][]model.Notice) (map[string][]model.Notice, error) {
		seq := s.adopt(items, req.ClubID)
		for i := range seq {
			if seq[i].ID == req.NoticeID {
				items[req.ClubID] = append(seq[:i], seq[i+1:]...)
				return items, nil
			}
		}
		return nil, errorx.ErrNotFound
	})
	if err != nil {
		if errorx.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
