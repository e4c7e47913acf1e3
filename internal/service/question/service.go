// Package question 지원서 질문 비즈니스 로직
// 질문도 공지와 같은 clubId → 시퀀스 매핑이며 병합 규칙도 동일하다
// 길이/순서 제약은 요청 바인딩에서 이미 검증되었고 여기서는 저장만 한다
package question

import (
	"sort"

	"club_recruit_server/internal/dao/localstore"
	"club_recruit_server/internal/dto/request"
	"club_recruit_server/internal/model"
	"club_recruit_server/internal/seed"
	"club_recruit_server/pkg/errorx"
	"club_recruit_server/pkg/util/random"
)

// questionService QuestionService 구현
type questionService struct {
	stores *localstore.Stores
	seeds  map[string][]model.ClubQuestion
}

// NewQuestionService 생성자
func NewQuestionService(stores *localstore.Stores) *questionService {
	return &questionService{
		stores: stores,
		seeds:  seed.Questions(),
	}
}

// GetQuestionList 동아리 질문 목록, order 오름차순 정렬
func (s *questionService) GetQuestionList(clubID string) []model.ClubQuestion {
	var seq []model.ClubQuestion
	if persisted, ok := s.stores.Questions.Load()[clubID]; ok {
		seq = persisted
	} else {
		src := s.seeds[clubID]
		seq = make([]model.ClubQuestion, len(src))
		copy(seq, src)
	}
	sort.SliceStable(seq, func(i, j int) bool { return seq[i].Order < seq[j].Order })
	return seq
}

// adopt 해당 동아리의 영속 시퀀스를 반환하되, 없으면 시드에서 복사해 온다
func (s *questionService) adopt(items map[string][]model.ClubQuestion, clubID string) []model.ClubQuestion {
	if seq, ok := items[clubID]; ok {
		return seq
	}
	src := s.seeds[clubID]
	seq := make([]model.ClubQuestion, len(src))
	copy(seq, src)
	return seq
}

// CreateQuestion 질문 추가
func (s *questionService) CreateQuestion(req request.CreateQuestionRequest) (*model.ClubQuestion, error) {
	q := model.ClubQuestion{
		ID:        random.NewRecordID("QS"),
		ClubID:    req.ClubID,
		Question:  req.Question,
		Order:     req.Order,
		MaxLength: req.MaxLength,
	}

	_, err := s.stores.Questions.Update(func(items map[string][]model.ClubQuestion) (map[string][]model.ClubQuestion, error) {
		items[req.ClubID] = append(s.adopt(items, req.ClubID), q)
		return items, nil
	})
	if err != nil {
		return nil, err
	}
	return &q, nil
}

// UpdateQuestion 질문 수정
func (s *questionService) UpdateQuestion(req request.UpdateQuestionRequest) (*model.ClubQuestion, error) {
	var updated *model.ClubQuestion

	_, err := s.stores.Questions.Update(func(items map[string][]model.ClubQuestion) (map[string][]model.ClubQuestion, error) {
		seq := s.adopt(items, req.ClubID)
		for i := range seq {
			if seq[i].ID == req.QuestionID {
				seq[i].Question = req.Question
				seq[i].Order = req.Order
				seq[i].MaxLength = req.MaxLength
				updated = &seq[i]
				items[req.ClubID] = seq
				return items, nil
			}
		}
		return nil, errorx.Newf(errorx.CodeNotFound, "질문을 찾을 수 없습니다 id=%s", req.QuestionID)
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteQuestion 질문 삭제 (없으면 false, 변경/알림 없음)
func (s *questionService) DeleteQuestion(req request.DeleteQuestionRequest) (bool, error) {
	_, err := s.stores.Questions.Update(func(items map[string][]model.ClubQuestion) (map[string][]model.ClubQuestion, error) {
		seq := s.adopt(items, req.ClubID)
		for i := range seq {
			if seq[i].ID == req.QuestionID {
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

// ReorderQuestions 질문 순서 변경
// 요청에 담긴 id 순서대로 order 를 1부터 다시 매기고 시퀀스 전체를 재작성한다
// 요청에 빠진 id 가 있으면 거부한다 (부분 재정렬은 시퀀스를 망가뜨린다)
func (s *questionService) ReorderQuestions(req request.ReorderQuestionsRequest) ([]model.ClubQuestion, error) {
	var reordered []model.ClubQuestion

	_, err := s.stores.Questions.Update(func(items map[string][]model.ClubQuestion) (map[string][]model.ClubQuestion, error) {
		seq := s.adopt(items, req.ClubID)
		if len(req.QuestionIDs) != len(seq) {
			return nil, errorx.Newf(errorx.CodeInvalidParam,
				"질문 개수가 일치하지 않습니다 (요청 %d, 보유 %d)", len(req.QuestionIDs), len(seq))
		}

		byID := make(map[string]model.ClubQuestion, len(seq))
		for _, q := range seq {
			byID[q.ID] = q
		}

		reordered = make([]model.ClubQuestion, 0, len(seq))
		for i, id := range req.QuestionIDs {
			q, ok := byID[id]
			if !ok {
				return nil, errorx.Newf(errorx.CodeNotFound, "질문을 찾을 수 없습니다 id=%s", id)
			}
			delete(byID, id) // 같은 id 가 두 번 오면 NotFound 로 거부
			q.Order = i + 1
			reordered = append(reordered, q)
		}

		items[req.ClubID] = reordered
		return items, nil
	})
	if err != nil {
		return nil, err
	}
	return reordered, nil
}
