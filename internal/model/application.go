// Package model 저장 컬렉션의 레코드 타입 정의
// 모든 레코드는 JSON 블롭으로 직렬화되어 localstore 에 저장된다
package model

// ApplicationStatus 지원서 상태
type ApplicationStatus string

// 지원 생명주기: pending → document_passed → interview_scheduled → accepted | rejected
const (
	StatusPending            ApplicationStatus = "pending"             // 접수됨
	StatusDocumentPassed     ApplicationStatus = "document_passed"     // 서류 합격
	StatusInterviewScheduled ApplicationStatus = "interview_scheduled" // 면접 배정됨
	StatusAccepted           ApplicationStatus = "accepted"            // 최종 합격
	StatusRejected           ApplicationStatus = "rejected"            // 불합격
)

// allowedTransitions 상태 전이 허용 테이블
// 저장 계층의 Upsert 는 전이를 검증하지 않으며 (원본 의미 유지),
// 서비스의 상태 결정 오퍼레이션만 이 테이블을 따른다
var allowedTransitions = map[ApplicationStatus][]ApplicationStatus{
	StatusPending:            {StatusDocumentPassed, StatusRejected},
	StatusDocumentPassed:     {StatusInterviewScheduled, StatusRejected},
	StatusInterviewScheduled: {StatusAccepted, StatusRejected},
}

// CanTransition from 상태에서 to 상태로의 전이가 허용되는지 확인
func CanTransition(from, to ApplicationStatus) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// AnswerPair 지원서 질문/답변 쌍
type AnswerPair struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// DecisionResult 서류/최종 결과 통보 내용
type DecisionResult struct {
	Status    ApplicationStatus `json:"status"`    // 결과 상태
	Message   string            `json:"message"`   // 지원자에게 보여줄 메시지
	DecidedAt string            `json:"decidedAt"` // 결정 일시 (날짜 문자열)
}

// Application 지원서 레코드
// 영속 컬렉션에는 id 당 최대 한 건만 존재한다 (Upsert 가 보장)
type Application struct {
	ID                string            `json:"id"`
	ClubID            string            `json:"clubId"`
	ClubName          string            `json:"clubName"`
	ApplicantID       string            `json:"applicantId"`
	ApplicantName     string            `json:"applicantName"`
	StudentID         string            `json:"studentId"`
	Department        string            `json:"department"`
	Phone             string            `json:"phone"`
	Status            ApplicationStatus `json:"status"`
	Answers           []AnswerPair      `json:"answers"`
	AppliedAt         string            `json:"appliedAt"`
	InterviewSlot     string            `json:"interviewSlot,omitempty"`     // 배정된 면접 시간 설명 문자열
	InterviewLocation string            `json:"interviewLocation,omitempty"` // 배정된 면접 장소
	DocumentResult    *DecisionResult   `json:"documentResult,omitempty"`    // 서류 결과
	Result            *DecisionResult   `json:"result,omitempty"`            // 최종 결과
}
