package model

// InterviewSlot 면접 슬롯 레코드
// 불변식: 0 <= CurrentCount <= Capacity, len(Applicants) == CurrentCount
type InterviewSlot struct {
	ID           string   `json:"id"`
	ClubID       string   `json:"clubId"`
	Date         string   `json:"date"`
	StartTime    string   `json:"startTime"`
	EndTime      string   `json:"endTime"`
	Duration     int      `json:"duration"` // 면접 시간 (분)
	Capacity     int      `json:"capacity"` // 정원, 1 이상
	CurrentCount int      `json:"currentCount"`
	Location     string   `json:"location"`
	Applicants   []string `json:"applicants"` // 신청한 지원자 id 목록
}

// IsFull 정원이 찼는지 확인
func (s *InterviewSlot) IsFull() bool {
	return len(s.Applicants) >= s.Capacity
}

// HasApplicant 해당 지원자가 이미 신청했는지 확인
func (s *InterviewSlot) HasApplicant(applicantID string) bool {
	for _, id := range s.Applicants {
		if id == applicantID {
			return true
		}
	}
	return false
}
