package model

// Notice 동아리 공지 레코드
// clubId → 공지 시퀀스 매핑으로 저장되며, id 는 동일 동아리 안에서 유일하다
type Notice struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	Date        string `json:"date"`
	IsImportant bool   `json:"isImportant"`
}
