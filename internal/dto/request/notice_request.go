package request

// CreateNoticeRequest 공지 작성 요청
type CreateNoticeRequest struct {
	ClubID      string `json:"club_id" binding:"required"`
	Title       string `json:"title" binding:"required,max=100"`
	Content     string `json:"content" binding:"required"`
	IsImportant bool   `json:"is_important"`
}

// UpdateNoticeRequest 공지 수정 요청
type UpdateNoticeRequest struct {
	ClubID      string `json:"club_id" binding:"required"`
	NoticeID    string `json:"notice_id" binding:"required"`
	Title       string `json:"title" binding:"required,max=100"`
	Content     string `json:"content" binding:"required"`
	IsImportant bool   `json:"is_important"`
}

// DeleteNoticeRequest 공지 삭제 요청
type DeleteNoticeRequest struct {
	ClubID   string `json:"club_id" binding:"required"`
	NoticeID string `json:"notice_id" binding:"required"`
}
