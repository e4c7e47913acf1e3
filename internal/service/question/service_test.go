package question

import (
	"testing"

	"club_recruit_server/internal/dao/localstore"
	"club_recruit_server/internal/dto/request"
	"club_recruit_server/pkg/errorx"
)

func newTestService(t *testing.T) (*questionService, *localstore.Stores) {
	t.Helper()
	stores := localstore.NewStores(localstore.NewMemoryBackend(), localstore.NewNotifier())
	return NewQuestionService(stores), stores
}

func TestGetQuestionListSortedByOrder(t *testing.T) {
	svc, _ := newTestService(t)

	// order 가 역순인 질문을 추가해도 목록은 order 순으로 정렬된다
	if _, err := svc.CreateQuestion(request.CreateQuestionRequest{
		ClubID:    "club-photo",
		Question:  "포트폴리오가 있다면 소개해 주세요.",
		Order:     2,
		MaxLength: 500,
	}); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.CreateQuestion(request.CreateQuestionRequest{
		ClubID:    "club-photo",
		Question:  "사용 중인 카메라 기종을 알려주세요.",
		Order:     1,
		MaxLength: 300,
	}); err != nil {
		t.Fatal(err)
	}

	list := svc.GetQuestionList("club-photo")
	if len(list) != 2 || list[0].Order != 1 || list[1].Order != 2 {
		t.Fatalf("order 정렬이 지켜지지 않았다: %+v", list)
	}
}

func TestUpdateQuestionAdoptsSeed(t *testing.T) {
	svc, _ := newTestService(t)

	updated, err := svc.UpdateQuestion(request.UpdateQuestionRequest{
		ClubID:     "club-dev",
		QuestionID: "QS-seed-dev-1",
		Question:   "주로 사용하는 기술 스택을 알려주세요.",
		Order:      1,
		MaxLength:  400,
	})
	if err != nil {
		t.Fatalf("시드 질문 수정 실패: %v", err)
	}
	if updated.MaxLength != 400 {
		t.Fatalf("수정이 반영되지 않았다: %+v", updated)
	}

	list := svc.GetQuestionList("club-dev")
	if list[0].Question != "주로 사용하는 기술 스택을 알려주세요." {
		t.Fatalf("목록에 수정이 반영되지 않았다: %+v", list[0])
	}
}

func TestDeleteQuestion(t *testing.T) {
	svc, _ := newTestService(t)

	deleted, err := svc.DeleteQuestion(request.DeleteQuestionRequest{
		ClubID:     "club-dev",
		QuestionID: "QS-seed-dev-2",
	})
	if err != nil || !deleted {
		t.Fatalf("삭제 실패: deleted=%v err=%v", deleted, err)
	}

	deleted, err = svc.DeleteQuestion(request.DeleteQuestionRequest{
		ClubID:     "club-dev",
		QuestionID: "QS-missing",
	})
	if err != nil || deleted {
		t.Fatalf("없는 질문 삭제: deleted=%v err=%v", deleted, err)
	}
}

func TestReorderQuestionsRenumbersFromOne(t *testing.T) {
	svc, _ := newTestService(t)

	reordered, err := svc.ReorderQuestions(request.ReorderQuestionsRequest{
		ClubID:      "club-dev",
		QuestionIDs: []string{"QS-seed-dev-2", "QS-seed-dev-1"},
	})
	if err != nil {
		t.Fatalf("ReorderQuestions 실패: %v", err)
	}
	if reordered[0].ID != "QS-seed-dev-2" || reordered[0].Order != 1 {
		t.Fatalf("첫 번째 질문의 순서가 다르다: %+v", reordered[0])
	}
	if reordered[1].ID != "QS-seed-dev-1" || reordered[1].Order != 2 {
		t.Fatalf("두 번째 질문의 순서가 다르다: %+v", reordered[1])
	}

	list := svc.GetQuestionList("club-dev")
	if list[0].ID != "QS-seed-dev-2" {
		t.Fatalf("재정렬이 영속화되지 않았다: %+v", list)
	}
}

func TestReorderQuestionsRejectsPartialSet(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.ReorderQuestions(request.ReorderQuestionsRequest{
		ClubID:      "club-dev",
		QuestionIDs: []string{"QS-seed-dev-1"},
	})
	if errorx.GetCode(err) != errorx.CodeInvalidParam {
		t.Fatalf("부분 재정렬이 거부되지 않았다: %v", err)
	}
}

func TestReorderQuestionsRejectsDuplicateIDs(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.ReorderQuestions(request.ReorderQuestionsRequest{
		ClubID:      "club-dev",
		QuestionIDs: []string{"QS-seed-dev-1", "QS-seed-dev-1"},
	})
	if !errorx.IsNotFound(err) {
		t.Fatalf("중복 id 재정렬이 거부되지 않았다: %v", err)
	}
}

func TestReorderQuestionsRejectsUnknownID(t *testing.T) {
	svc, stores := newTestService(t)

	notifies := 0
	stores.Notifier.Subscribe("club_questions", func() { notifies++ })

	_, err := svc.ReorderQuestions(request.ReorderQuestionsRequest{
		ClubID:      "club-dev",
		QuestionIDs: []string{"QS-seed-dev-1", "QS-missing"},
	})
	if !errorx.IsNotFound(err) {
		t.Fatalf("모르는 id 재정렬이 거부되지 않았다: %v", err)
	}
	if notifies != 0 {
		t.Fatalf("실패한 재정렬이 알림을 발행했다: %d", notifies)
	}
}
