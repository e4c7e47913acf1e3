package request

// CreateSlotRequest 면접 슬롯 생성 요청 (관리자)
// location 을 비우면 기본값 "미정" 이 들어간다
type CreateSlotRequest struct {
	ClubID    string `json:"club_id" binding:"required"`
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
	Duration  int    `json:"duration" binding:"required,min=1"`
	Capacity  int    `json:"capacity" binding:"required,min=1"`
	Location  string `json:"location"`
}

// UpdateSlotRequest 면접 슬롯 수정 요청 (관리자)
// nil 필드는 건드리지 않는 부분 패치 의미
type UpdateSlotRequest struct {
	SlotID    string  `json:"slot_id" binding:"required"`
	Date      *string `json:"date"`
	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`
	Duration  *int    `json:"duration" binding:"omitempty,min=1"`
	Capacity  *int    `json:"capacity" binding:"omitempty,min=1"`
	Location  *string `json:"location"`
}

// BookSlotRequest 면접 슬롯 예약 요청 (지원자)
// 지원자 id 는 JWT 에서 가져온다
type BookSlotRequest struct {
	SlotID string `json:"slot_id" binding:"required"`
}

// DeleteSlotRequest 면접 슬롯 삭제 요청 (관리자)
type DeleteSlotRequest struct {
	SlotID string `json:"slot_id" binding:"required"`
}
