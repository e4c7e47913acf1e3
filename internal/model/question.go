package model

// ClubQuestion 지원서 질문 레코드
// clubId → 질문 시퀀스 매핑으로 저장되며, 순서 변경은 시퀀스 전체 재작성으로 처리한다
// 길이/순서 제약 검증은 요청 바인딩 계층의 책임이고 저장 계층은 관여하지 않는다
type ClubQuestion struct {
	ID        string `json:"id"`
	ClubID    string `json:"clubId"`
	Question  string `json:"question"`  // 본문, 300자 이하
	Order     int    `json:"order"`     // 표시 순서, 1 이상
	MaxLength int    `json:"maxLength"` // 답변 길이 제한, 100~1000
}
