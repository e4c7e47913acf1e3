package interview

import (
	"errors"
	"testing"

	"club_recruit_server/internal/dao/localstore"
	"club_recruit_server/internal/dto/request"
	"club_recruit_server/internal/model"
	"club_recruit_server/pkg/errorx"
)

func newTestService(t *testing.T) (*interviewService, *localstore.Stores) {
	t.Helper()
	stores := localstore.NewStores(localstore.NewMemoryBackend(), localstore.NewNotifier())
	return NewInterviewService(stores), stores
}

func createSlot(t *testing.T, svc *interviewService, capacity int) *model.InterviewSlot {
	t.Helper()
	slot, err := svc.CreateSlot(request.CreateSlotRequest{
		ClubID:    "club-dev",
		Date:      "2026-03-05",
		StartTime: "14:00",
		EndTime:   "15:00",
		Duration:  15,
		Capacity:  capacity,
	})
	if err != nil {
		t.Fatalf("CreateSlot 실패: %v", err)
	}
	return slot
}

func TestCreateSlotNormalizesDefaults(t *testing.T) {
	svc, _ := newTestService(t)

	slot := createSlot(t, svc, 3)
	if slot.CurrentCount != 0 {
		t.Fatalf("새 슬롯의 currentCount 는 0 이어야 한다: %d", slot.CurrentCount)
	}
	if slot.Applicants == nil || len(slot.Applicants) != 0 {
		t.Fatalf("새 슬롯의 신청자 목록은 빈 목록이어야 한다: %+v", slot.Applicants)
	}
	if slot.Location != "미정" {
		t.Fatalf("장소 미입력 시 기본값이 들어가야 한다: %q", slot.Location)
	}
}

func TestBookSlotNeverExceedsCapacity(t *testing.T) {
	svc, _ := newTestService(t)
	slot := createSlot(t, svc, 2)

	if _, err := svc.BookSlot(slot.ID, "US-a"); err != nil {
		t.Fatalf("첫 번째 예약 실패: %v", err)
	}
	booked, err := svc.BookSlot(slot.ID, "US-b")
	if err != nil {
		t.Fatalf("두 번째 예약 실패: %v", err)
	}
	if booked.CurrentCount != 2 || len(booked.Applicants) != 2 {
		t.Fatalf("카운터와 신청자 목록이 어긋났다: %+v", booked)
	}

	_, err = svc.BookSlot(slot.ID, "US-c")
	if !errors.Is(err, errorx.ErrSlotFull) {
		t.Fatalf("정원 초과 예약이 ErrSlotFull 이 아니다: %v", err)
	}

	// 거부된 예약은 상태를 바꾸지 않는다
	slots := svc.GetSlotList("club-dev")
	for _, s := range slots {
		if s.ID == slot.ID && (s.CurrentCount != 2 || len(s.Applicants) != 2) {
			t.Fatalf("거부된 예약이 슬롯을 변경했다: %+v", s)
		}
	}
}

func TestBookSlotRejectsDuplicateApplicant(t *testing.T) {
	svc, _ := newTestService(t)
	slot := createSlot(t, svc, 3)

	if _, err := svc.BookSlot(slot.ID, "US-a"); err != nil {
		t.Fatal(err)
	}
	_, err := svc.BookSlot(slot.ID, "US-a")
	if errorx.GetCode(err) != errorx.CodeAlreadyBooked {
		t.Fatalf("중복 예약 코드가 다르다: %v", err)
	}
}

func TestBookSlotUnknownID(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.BookSlot("SL-missing", "US-a")
	if !errorx.IsNotFound(err) {
		t.Fatalf("없는 슬롯 예약이 NotFound 가 아니다: %v", err)
	}
}

func TestBookSeedSlotAdoptsIntoPersisted(t *testing.T) {
	svc, stores := newTestService(t)

	// 시드 슬롯 SL-seed-dev-1 (정원 4) 에 예약
	booked, err := svc.BookSlot("SL-seed-dev-1", "US-a")
	if err != nil {
		t.Fatalf("시드 슬롯 예약 실패: %v", err)
	}
	if booked.CurrentCount != 1 {
		t.Fatalf("채택된 슬롯의 카운터가 다르다: %d", booked.CurrentCount)
	}

	// 채택 후에는 영속 컬렉션에 존재한다
	persisted := stores.Slots.Load()
	if len(persisted) != 1 || persisted[0].ID != "SL-seed-dev-1" {
		t.Fatalf("시드 슬롯이 영속 컬렉션에 채택되지 않았다: %+v", persisted)
	}

	// 목록에는 중복 없이 한 번만 나타난다
	count := 0
	for _, s := range svc.GetSlotList("club-dev") {
		if s.ID == "SL-seed-dev-1" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("채택된 시드 슬롯이 목록에 %d번 나타났다", count)
	}
}

func TestBookSlotMarksApplicationInterviewScheduled(t *testing.T) {
	svc, stores := newTestService(t)
	slot := createSlot(t, svc, 2)

	app := model.Application{
		ID:          "AP-1",
		ClubID:      "club-dev",
		ApplicantID: "US-a",
		Status:      model.StatusDocumentPassed,
	}
	if err := stores.Applications.Save([]model.Application{app}); err != nil {
		t.Fatal(err)
	}

	if _, err := svc.BookSlot(slot.ID, "US-a"); err != nil {
		t.Fatal(err)
	}

	apps := stores.Applications.Load()
	if apps[0].Status != model.StatusInterviewScheduled {
		t.Fatalf("예약 후 지원서 상태가 %s", apps[0].Status)
	}
	if apps[0].InterviewSlot == "" || apps[0].InterviewLocation == "" {
		t.Fatalf("면접 정보가 지원서에 반영되지 않았다: %+v", apps[0])
	}
}

func TestUpdateSlotPatchesOnlyGivenFields(t *testing.T) {
	svc, _ := newTestService(t)
	slot := createSlot(t, svc, 3)

	location := "학생회관 201호"
	capacity := 5
	updated, err := svc.UpdateSlot(request.UpdateSlotRequest{
		SlotID:   slot.ID,
		Location: &location,
		Capacity: &capacity,
	})
	if err != nil {
		t.Fatalf("UpdateSlot 실패: %v", err)
	}
	if updated.Location != location || updated.Capacity != 5 {
		t.Fatalf("패치가 반영되지 않았다: %+v", updated)
	}
	if updated.Date != slot.Date || updated.StartTime != slot.StartTime {
		t.Fatalf("주지 않은 필드가 변경되었다: %+v", updated)
	}
}

func TestUpdateSlotRejectsCapacityBelowBooked(t *testing.T) {
	svc, _ := newTestService(t)
	slot := createSlot(t, svc, 3)

	if _, err := svc.BookSlot(slot.ID, "US-a"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.BookSlot(slot.ID, "US-b"); err != nil {
		t.Fatal(err)
	}

	capacity := 1
	_, err := svc.UpdateSlot(request.UpdateSlotRequest{SlotID: slot.ID, Capacity: &capacity})
	if errorx.GetCode(err) != errorx.CodeInvalidParam {
		t.Fatalf("신청 인원보다 작은 정원이 거부되지 않았다: %v", err)
	}
}

func TestDeleteSlot(t *testing.T) {
	svc, stores := newTestService(t)
	slot := createSlot(t, svc, 2)

	notifies := 0
	stores.Notifier.Subscribe("interview_slots", func() { notifies++ })

	deleted, err := svc.DeleteSlot(slot.ID)
	if err != nil || !deleted {
		t.Fatalf("삭제 실패: deleted=%v err=%v", deleted, err)
	}
	if notifies != 1 {
		t.Fatalf("삭제 알림 횟수가 %d", notifies)
	}

	// 없는 id 는 false 반환, 저장/알림 없음
	deleted, err = svc.DeleteSlot(slot.ID)
	if err != nil || deleted {
		t.Fatalf("없는 슬롯 삭제: deleted=%v err=%v", deleted, err)
	}
	if notifies != 1 {
		t.Fatalf("없는 슬롯 삭제가 알림을 발행했다: %d", notifies)
	}
}
