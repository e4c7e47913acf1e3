package request

// 질문 길이/순서 제약은 여기 바인딩 태그에서 검증한다
// 저장 계층은 검증하지 않고 주어진 값을 그대로 저장한다

// CreateQuestionRequest 지원서 질문 추가 요청
type CreateQuestionRequest struct {
	ClubID    string `json:"club_id" binding:"required"`
	Question  string `json:"question" binding:"required,max=300"`
	Order     int    `json:"order" binding:"required,min=1"`
	MaxLength int    `json:"max_length" binding:"required,min=100,max=1000"`
}

// UpdateQuestionRequest 지원서 질문 수정 요청
type UpdateQuestionRequest struct {
	ClubID     string `json:"club_id" binding:"required"`
	QuestionID string `json:"question_id" binding:"required"`
	Question   string `json:"question" binding:"required,max=300"`
	Order      int    `json:"order" binding:"required,min=1"`
	MaxLength  int    `json:"max_length" binding:"required,min=100,max=1000"`
}

// DeleteQuestionRequest 지원서 질문 삭제 요청
type DeleteQuestionRequest struct {
	ClubID     string `json:"club_id" binding:"required"`
	QuestionID string `json:"question_id" binding:"required"`
}

// ReorderQuestionsRequest 질문 순서 변경 요청
// 해당 동아리 질문 id 전체를 새 순서대로 담아야 한다 (시퀀스 전체 재작성)
type ReorderQuestionsRequest struct {
	ClubID      string   `json:"club_id" binding:"required"`
	QuestionIDs []string `json:"question_ids" binding:"required,min=1"`
}
