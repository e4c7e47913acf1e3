package model

import "testing"

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to ApplicationStatus
		want     bool
	}{
		{StatusPending, StatusDocumentPassed, true},
		{StatusPending, StatusRejected, true},
		{StatusPending, StatusInterviewScheduled, false},
		{StatusPending, StatusAccepted, false},
		{StatusDocumentPassed, StatusInterviewScheduled, true},
		{StatusDocumentPassed, StatusRejected, true},
		{StatusDocumentPassed, StatusAccepted, false},
		{StatusInterviewScheduled, StatusAccepted, true},
		{StatusInterviewScheduled, StatusRejected, true},
		{StatusAccepted, StatusRejected, false},
		{StatusRejected, StatusPending, false},
	}
	for _, c := range cases {
		if got := CanTransition(c.from, c.to); got != c.want {
			t.Errorf("CanTransition(%s, %s) = %v, want %v", c.from, c.to, got, c.want)
		}
	}
}

func TestSlotIsFullAndHasApplicant(t *testing.T) {
	slot := InterviewSlot{Capacity: 2, Applicants: []string{"US-a"}}
	if slot.IsFull() {
		t.Fatal("정원이 남았는데 IsFull")
	}
	if !slot.HasApplicant("US-a") || slot.HasApplicant("US-b") {
		t.Fatal("HasApplicant 판정 오류")
	}

	slot.Applicants = append(slot.Applicants, "US-b")
	if !slot.IsFull() {
		t.Fatal("정원이 찼는데 IsFull 이 아니다")
	}
}

func TestLocalUserPassword(t *testing.T) {
	var u LocalUser
	if err := u.SetPassword("password123"); err != nil {
		t.Fatal(err)
	}
	if u.PasswordHash == "password123" {
		t.Fatal("평문이 저장되었다")
	}
	if !u.CheckPassword("password123") {
		t.Fatal("올바른 비밀번호가 거부되었다")
	}
	if u.CheckPassword("wrong") {
		t.Fatal("틀린 비밀번호가 통과했다")
	}
}
