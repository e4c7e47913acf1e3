// Package application 지원서 비즈니스 로직
// 시드 레코드와 영속 레코드를 병합한 논리 컬렉션을 제공하고,
// 상태 결정 오퍼레이션에서만 전이 테이블을 검증한다
package application

import (
	"fmt"
	"time"

	"club_recruit_server/internal/dao/localstore"
	"club_recruit_server/internal/dto/request"
	"club_recruit_server/internal/model"
	"club_recruit_server/internal/seed"
	"club_recruit_server/pkg/errorx"
	"club_recruit_server/pkg/util/random"
)

// applicationService ApplicationService 구현
type applicationService struct {
	stores *localstore.Stores
	seeds  []model.Application
}

// NewApplicationService 생성자, Store 집약 주입
func NewApplicationService(stores *localstore.Stores) *applicationService {
	return &applicationService{
		stores: stores,
		seeds:  seed.Applications(),
	}
}

// getAll 시드 ++ 영속 병합 컬렉션
// 단순 연결이므로 id 충돌 시 목록에는 둘 다 나타난다 (단건 조회는 영속 우선)
func (s *applicationService) getAll() []model.Application {
	persisted := s.stores.Applications.Load()
	out := make([]model.Application, 0, len(s.seeds)+len(persisted))
	out = append(out, s.seeds...)
	out = append(out, persisted...)
	return out
}

// findByID 단건 조회, 영속 레코드 우선
func (s *applicationService) findByID(id string) (*model.Application, error) {
	for _, app := range s.stores.Applications.Load() {
		if app.ID == id {
			return &app, nil
		}
	}
	for _, app := range s.seeds {
		if app.ID == id {
			return &app, nil
		}
	}
	return nil, errorx.Newf(errorx.CodeNotFound, "지원서를 찾을 수 없습니다 id=%s", id)
}

// upsert 같은 id 의 영속 레코드를 제거하고 새 레코드를 덧붙인다
// 호출 후 영속 컬렉션에는 해당 id 레코드가 정확히 한 건 존재한다
func (s *applicationService) upsert(app model.Application) (*model.Application, error) {
	_, err := s.stores.Applications.Update(func(items []model.Application) ([]model.Application, error) {
		out := make([]model.Application, 0, len(items)+1)
		for _, it := range items {
			if it.ID != app.ID {
				out = append(out, it)
			}
		}
		return append(out, app), nil
	})
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// SubmitApplication 지원서 제출
func (s *applicationService) SubmitApplication(applicantID string, req request.SubmitApplicationRequest) (*model.Application, error) {
	// 동아리 이름은 시드에서 찾는다. dangling clubId 는 조용히 허용 (외래키 강제 없음)
	clubName := req.ClubID
	for _, c := range seed.Clubs() {
		if c.ID == req.ClubID {
			clubName = c.Name
			break
		}
	}

	answers := make([]model.AnswerPair, 0, len(req.Answers))
	for _, a := range req.Answers {
		answers = append(answers, model.AnswerPair{Question: a.Question, Answer: a.Answer})
	}

	app := model.Application{
		ID:            random.NewRecordID("AP"),
		ClubID:        req.ClubID,
		ClubName:      clubName,
		ApplicantID:   applicantID,
		ApplicantName: req.ApplicantName,
		StudentID:     req.StudentID,
		Department:    req.Department,
		Phone:         req.Phone,
		Status:        model.StatusPending,
		Answers:       answers,
		AppliedAt:     time.Now().Format("2006-01-02"),
	}

	_, err := s.stores.Applications.Update(func(items []model.Application) ([]model.Application, error) {
		return append(items, app), nil
	})
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// GetMyApplications 지원자 기준 목록 조회
// 시드/영속 어느 쪽에서 왔든 소유자 키가 다른 레코드는 절대 포함되지 않는다
func (s *applicationService) GetMyApplications(applicantID string) []model.Application {
	out := []model.Application{}
	for _, app := range s.getAll() {
		if app.ApplicantID == applicantID {
			out = append(out, app)
		}
	}
	return out
}

// GetClubApplications 동아리 기준 목록 조회
func (s *applicationService) GetClubApplications(clubID string) []model.Application {
	out := []model.Application{}
	for _, app := range s.getAll() {
		if app.ClubID == clubID {
			out = append(out, app)
		}
	}
	return out
}

// GetApplicationInfo 단건 조회
func (s *applicationService) GetApplicationInfo(id string) (*model.Application, error) {
	return s.findByID(id)
}

// AssignInterview 지원서에 면접 슬롯 배정
// 서류 합격 상태에서만 배정할 수 있다
func (s *applicationService) AssignInterview(req request.AssignInterviewRequest) (*model.Application, error) {
	app, err := s.findByID(req.ApplicationID)
	if err != nil {
		return nil, err
	}
	if !model.CanTransition(app.Status, model.StatusInterviewScheduled) {
		return nil, errorx.Newf(errorx.CodeInvalidStatus,
			"현재 상태(%s)에서는 면접을 배정할 수 없습니다", app.Status)
	}

	slot, err := s.findSlot(req.SlotID)
	if err != nil {
		return nil, err
	}

	app.Status = model.StatusInterviewScheduled
	app.InterviewSlot = fmt.Sprintf("%s %s~%s", slot.Date, slot.StartTime, slot.EndTime)
	app.InterviewLocation = slot.Location
	return s.upsert(*app)
}

// findSlot 면접 슬롯 조회, 영속 우선
func (s *applicationService) findSlot(slotID string) (*model.InterviewSlot, error) {
	for _, slot := range s.stores.Slots.Load() {
		if slot.ID == slotID {
			return &slot, nil
		}
	}
	for _, slot := range seed.Slots() {
		if slot.ID == slotID {
			return &slot, nil
		}
	}
	return nil, errorx.Newf(errorx.CodeNotFound, "면접 슬롯을 찾을 수 없습니다 id=%s", slotID)
}

// DecideDocument 서류 결과 결정
func (s *applicationService) DecideDocument(req request.DecideDocumentRequest) (*model.Application, error) {
	target := model.StatusDocumentPassed
	if !req.Passed {
		target = model.StatusRejected
	}
	return s.decide(req.ApplicationID, target, req.Message, true)
}

// DecideFinal 최종 결과 결정
func (s *applicationService) DecideFinal(req request.DecideFinalRequest) (*model.Application, error) {
	target := model.StatusAccepted
	if !req.Accepted {
		target = model.StatusRejected
	}
	return s.decide(req.ApplicationID, target, req.Message, false)
}

// decide 상태 전이 검증 후 결과를 기록하고 upsert
// document=true 이면 서류 결과 필드, 아니면 최종 결과 필드에 기록한다
func (s *applicationService) decide(applicationID string, target model.ApplicationStatus, message string, document bool) (*model.Application, error) {
	app, err := s.findByID(applicationID)
	if err != nil {
		return nil, err
	}
	if !model.CanTransition(app.Status, target) {
		return nil, errorx.Newf(errorx.CodeInvalidStatus,
			"허용되지 않는 상태 전이입니다 %s → %s", app.Status, target)
	}

	result := &model.DecisionResult{
		Status:    target,
		Message:   message,
		DecidedAt: time.Now().Format("2006-01-02"),
	}
	app.Status = target
	if document {
		app.DocumentResult = result
	} else {
		app.Result = result
	}
	return s.upsert(*app)
}
