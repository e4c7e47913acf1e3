// Package seed 영속 컬렉션과 병합되는 기본(시드) 데이터
// 사용자 변경이 없을 때 포털이 보여줄 기본 콘텐츠로,
// 원본의 정적 목업 배열에 해당한다. 내용은 절대 수정되지 않는다
package seed

import "club_recruit_server/internal/model"

// clubs 기본 동아리 목록
var clubs = []model.Club{
	{
		ID:          "club-band",
		Name:        "소리울림",
		Category:    "공연",
		Description: "락부터 발라드까지, 정기 공연을 여는 중앙 밴드 동아리입니다.",
		AdminID:     "US-seed-admin-band",
		Tags:        []string{"밴드", "공연", "합주"},
		Recruiting:  true,
	},
	{
		ID:          "club-dev",
		Name:        "코드잇",
		Category:    "학술",
		Description: "웹/앱 서비스를 함께 만들고 해커톤에 참가하는 개발 동아리입니다.",
		AdminID:     "US-seed-admin-dev",
		Tags:        []string{"개발", "해커톤", "스터디"},
		Recruiting:  true,
	},
	{
		ID:          "club-photo",
		Name:        "찰나",
		Category:    "예술",
		Description: "출사와 전시회를 중심으로 활동하는 사진 동아리입니다.",
		AdminID:     "US-seed-admin-photo",
		Tags:        []string{"사진", "전시"},
		Recruiting:  false,
	},
}

// notices 동아리별 기본 공지
var notices = map[string][]model.Notice{
	"club-band": {
		{
			ID:          "NT-seed-band-1",
			Title:       "2026년 1학기 신입 부원 모집 안내",
			Content:     "서류 접수 후 간단한 합주 오디션이 있습니다. 악기 경력은 무관합니다.",
			Date:        "2026-02-20",
			IsImportant: true,
		},
	},
	"club-dev": {
		{
			ID:          "NT-seed-dev-1",
			Title:       "모집 일정 안내",
			Content:     "서류 합격자에 한해 온라인 면접을 진행합니다.",
			Date:        "2026-02-18",
			IsImportant: true,
		},
		{
			ID:          "NT-seed-dev-2",
			Title:       "동아리방 위치 변경",
			Content:     "학생회관 3층 302호로 이전했습니다.",
			Date:        "2026-02-10",
			IsImportant: false,
		},
	},
}

// questions 동아리별 기본 지원서 질문
var questions = map[string][]model.ClubQuestion{
	"club-band": {
		{ID: "QS-seed-band-1", ClubID: "club-band", Question: "다룰 수 있는 악기와 경력을 알려주세요.", Order: 1, MaxLength: 300},
		{ID: "QS-seed-band-2", ClubID: "club-band", Question: "지원 동기를 적어주세요.", Order: 2, MaxLength: 500},
	},
	"club-dev": {
		{ID: "QS-seed-dev-1", ClubID: "club-dev", Question: "사용해 본 언어/프레임워크를 알려주세요.", Order: 1, MaxLength: 300},
		{ID: "QS-seed-dev-2", ClubID: "club-dev", Question: "만들어 보고 싶은 서비스가 있나요?", Order: 2, MaxLength: 1000},
	},
}

// slots 기본 면접 슬롯
var slots = []model.InterviewSlot{
	{
		ID:           "SL-seed-dev-1",
		ClubID:       "club-dev",
		Date:         "2026-03-02",
		StartTime:    "18:00",
		EndTime:      "19:00",
		Duration:     15,
		Capacity:     4,
		CurrentCount: 0,
		Location:     "학생회관 302호",
		Applicants:   []string{},
	},
}

// Clubs 기본 동아리 목록 복사본 반환
// 호출자가 수정해도 시드 원본이 오염되지 않도록 항상 복사한다
func Clubs() []model.Club {
	out := make([]model.Club, len(clubs))
	copy(out, clubs)
	return out
}

// Applications 기본 지원서 목록 (비어 있음: 지원서는 사용자 생성 데이터)
func Applications() []model.Application {
	return []model.Application{}
}

// Notices 동아리별 기본 공지 복사본 반환
func Notices() map[string][]model.Notice {
	out := make(map[string][]model.Notice, len(notices))
	for clubID, seq := range notices {
		cp := make([]model.Notice, len(seq))
		copy(cp, seq)
		out[clubID] = cp
	}
	return out
}

// Questions 동아리별 기본 질문 복사본 반환
func Questions() map[string][]model.ClubQuestion {
	out := make(map[string][]model.ClubQuestion, len(questions))
	for clubID, seq := range questions {
		cp := make([]model.ClubQuestion, len(seq))
		copy(cp, seq)
		out[clubID] = cp
	}
	return out
}

// Slots 기본 면접 슬롯 복사본 반환
func Slots() []model.InterviewSlot {
	out := make([]model.InterviewSlot, len(slots))
	copy(out, slots)
	return out
}
