// Package interview 면접 슬롯 비즈니스 로직
// 이 코어에서 유일하게 진짜 불변식을 가진 부분이다:
// 슬롯의 예약 인원은 어떤 경우에도 정원을 넘지 않는다
//
// 원본의 예약 시퀀스는 스냅샷 기반 읽기-수정-쓰기라서 거의 동시에 들어온
// 두 예약이 모두 정원 검사를 통과할 수 있었다. 여기서는 모든 변경을
// Store.Update (프로세스 내 뮤텍스 직렬화) 안에서 수행하는 의도적 강화를 택했다
package interview

import (
	"club_recruit_server/internal/dao/localstore"
	"club_recruit_server/internal/dto/request"
	"club_recruit_server/internal/model"
	"club_recruit_server/internal/seed"
	"club_recruit_server/pkg/constants"
	"club_recruit_server/pkg/errorx"
	"club_recruit_server/pkg/util/random"
)

// interviewService InterviewService 구현
type interviewService struct {
	stores *localstore.Stores
	seeds  []model.InterviewSlot
}

// NewInterviewService 생성자
func NewInterviewService(stores *localstore.Stores) *interviewService {
	return &interviewService{
		stores: stores,
		seeds:  seed.Slots(),
	}
}

// GetSlotList 동아리 슬롯 목록 (시드 ++ 영속 병합)
// 시드 슬롯이 영속 컬렉션에 채택(adopt)된 뒤에는 영속 쪽만 나타난다
func (s *interviewService) GetSlotList(clubID string) []model.InterviewSlot {
	persisted := s.stores.Slots.Load()
	adopted := make(map[string]bool, len(persisted))

	out := []model.InterviewSlot{}
	for _, slot := range persisted {
		if slot.ClubID == clubID {
			out = append(out, slot)
		}
		adopted[slot.ID] = true
	}
	for _, slot := range s.seeds {
		if slot.ClubID == clubID && !adopted[slot.ID] {
			out = append(out, slot)
		}
	}
	return out
}

// CreateSlot 슬롯 생성
// 기본값 정규화: currentCount=0, 빈 신청자 목록, 장소 미입력 시 "미정"
func (s *interviewService) CreateSlot(req request.CreateSlotRequest) (*model.InterviewSlot, error) {
	location := req.Location
	if location == "" {
		location = constants.DefaultInterviewLocation
	}

	slot := model.InterviewSlot{
		ID:           random.NewRecordID("SL"),
		ClubID:       req.ClubID,
		Date:         req.Date,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		Duration:     req.Duration,
		Capacity:     req.Capacity,
		CurrentCount: 0,
		Location:     location,
		Applicants:   []string{},
	}

	_, err := s.stores.Slots.Update(func(items []model.InterviewSlot) ([]model.InterviewSlot, error) {
		return append(items, slot), nil
	})
	if err != nil {
		return nil, err
	}
	return &slot, nil
}

// locate 영속 컬렉션에서 슬롯을 찾고, 없으면 시드에서 채택해 덧붙인다
// 반환된 인덱스는 (채택 후의) items 안에서의 위치
func (s *interviewService) locate(items []model.InterviewSlot, slotID string) ([]model.InterviewSlot, int, error) {
	for i := range items {
		if items[i].ID == slotID {
			return items, i, nil
		}
	}
	for _, slot := range s.seeds {
		if slot.ID == slotID {
			cp := slot
			cp.Applicants = append([]string{}, slot.Applicants...)
			items = append(items, cp)
			return items, len(items) - 1, nil
		}
	}
	return nil, -1, errorx.Newf(errorx.CodeNotFound, "면접 슬롯을 찾을 수 없습니다 id=%s", slotID)
}

// BookSlot 지원자의 슬롯 예약
// 정원 초과/중복 신청이면 아무것도 저장하지 않고 거부 상태만 반환한다
// (거부는 상태를 바꾸지 않으므로 호출 측 재시도에 안전)
func (s *interviewService) BookSlot(slotID, applicantID string) (*model.InterviewSlot, error) {
	var booked model.InterviewSlot

	_, err := s.stores.Slots.Update(func(items []model.InterviewSlot) ([]model.InterviewSlot, error) {
		items, i, err := s.locate(items, slotID)
		if err != nil {
			return nil, err
		}
		slot := &items[i]

		if slot.IsFull() {
			return nil, errorx.ErrSlotFull
		}
		if slot.HasApplicant(applicantID) {
			return nil, errorx.New(errorx.CodeAlreadyBooked, "이미 신청한 면접 시간입니다")
		}

		// 신청자 추가와 카운터 증가는 같은 쓰기 안에서 함께 반영된다
		slot.Applicants = append(slot.Applicants, applicantID)
		slot.CurrentCount = len(slot.Applicants)
		booked = *slot
		return items, nil
	})
	if err != nil {
		return nil, err
	}

	s.attachToApplication(&booked, applicantID)
	return &booked, nil
}

// attachToApplication 예약 성공 시 해당 동아리 지원서에 면접 정보를 반영
// 지원서가 없거나 전이가 허용되지 않으면 조용히 넘어간다 (예약 자체는 유효)
func (s *interviewService) attachToApplication(slot *model.InterviewSlot, applicantID string) {
	desc := slot.Date + " " + slot.StartTime + "~" + slot.EndTime

	_, _ = s.stores.Applications.Update(func(apps []model.Application) ([]model.Application, error) {
		for i := range apps {
			if apps[i].ApplicantID != applicantID || apps[i].ClubID != slot.ClubID {
				continue
			}
			apps[i].InterviewSlot = desc
			apps[i].InterviewLocation = slot.Location
			if model.CanTransition(apps[i].Status, model.StatusInterviewScheduled) {
				apps[i].Status = model.StatusInterviewScheduled
			}
			return apps, nil
		}
		return nil, errorx.ErrNotFound // 지원서 없음, 저장/알림 생략
	})
}

// UpdateSlot 슬롯 부분 수정 (nil 필드는 유지)
func (s *interviewService) UpdateSlot(req request.UpdateSlotRequest) (*model.InterviewSlot, error) {
	var updated model.InterviewSlot

	_, err := s.stores.Slots.Update(func(items []model.InterviewSlot) ([]model.InterviewSlot, error) {
		items, i, err := s.locate(items, req.SlotID)
		if err != nil {
			return nil, err
		}
		slot := &items[i]

		if req.Date != nil {
			slot.Date = *req.Date
		}
		if req.StartTime != nil {
			slot.StartTime = *req.StartTime
		}
		if req.EndTime != nil {
			slot.EndTime = *req.EndTime
		}
		if req.Duration != nil {
			slot.Duration = *req.Duration
		}
		if req.Capacity != nil {
			if *req.Capacity < len(slot.Applicants) {
				return nil, errorx.Newf(errorx.CodeInvalidParam,
					"정원(%d)을 현재 신청 인원(%d)보다 줄일 수 없습니다", *req.Capacity, len(slot.Applicants))
			}
			slot.Capacity = *req.Capacity
		}
		if req.Location != nil {
			slot.Location = *req.Location
		}

		updated = *slot
		return items, nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteSlot 슬롯 삭제
// id 가 없으면 false 를 반환하고 컬렉션은 변경되지 않는다
func (s *interviewService) DeleteSlot(slotID string) (bool, error) {
	_, err := s.stores.Slots.Update(func(items []model.InterviewSlot) ([]model.InterviewSlot, error) {
		for i := range items {
			if items[i].ID == slotID {
				return append(items[:i], items[i+1:]...), nil
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
