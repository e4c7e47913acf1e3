package model

// Club 동아리 소개 레코드
// 시드 데이터로만 제공되며 영속 컬렉션은 없다 (조회 전용)
type Club struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	AdminID     string   `json:"adminId"` // 담당 관리자 계정 id
	Tags        []string `json:"tags,omitempty"`
	Recruiting  bool     `json:"recruiting"`
}
