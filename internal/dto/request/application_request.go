package request

// AnswerPairRequest 질문/답변 쌍
type AnswerPairRequest struct {
	Question string `json:"question" binding:"required"`
	Answer   string `json:"answer" binding:"required,max=1000"`
}

// SubmitApplicationRequest 지원서 제출 요청
// 지원자 id 는 JWT 에서 가져오므로 본문에 포함하지 않는다
type SubmitApplicationRequest struct {
	ClubID        string              `json:"club_id" binding:"required"`
	ApplicantName string              `json:"applicant_name" binding:"required,max=20"`
	StudentID     string              `json:"student_id" binding:"required"`
	Department    string              `json:"department" binding:"required"`
	Phone         string              `json:"phone" binding:"required"`
	Answers       []AnswerPairRequest `json:"answers" binding:"required,dive"`
}

// AssignInterviewRequest 지원서에 면접 슬롯 배정 요청 (관리자)
type AssignInterviewRequest struct {
	ApplicationID string `json:"application_id" binding:"required"`
	SlotID        string `json:"slot_id" binding:"required"`
}

// DecideDocumentRequest 서류 결과 결정 요청 (관리자)
type DecideDocumentRequest struct {
	ApplicationID string `json:"application_id" binding:"required"`
	Passed        bool   `json:"passed"`
	Message       string `json:"message" binding:"max=500"`
}

// DecideFinalRequest 최종 결과 결정 요청 (관리자)
type DecideFinalRequest struct {
	ApplicationID string `json:"application_id" binding:"required"`
	Accepted      bool   `json:"accepted"`
	Message       string `json:"message" binding:"max=500"`
}
