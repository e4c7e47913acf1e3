package constants

// 엔티티 종류 (알림 kind 이자 저장 키의 접미사)
const (
	KindApplications = "applications"    // 지원서
	KindNotices      = "notices"         // 동아리 공지
	KindQuestions    = "club_questions"  // 지원서 질문
	KindSlots        = "interview_slots" // 면접 슬롯
	KindWishlists    = "wishlists"       // 위시리스트
	KindUsers        = "local_users"     // 로컬 계정
)

// StorageKeyPrefix 저장 키 네임스페이스 접두사
// 실제 저장 키는 "recruit:"+kind 형태
const StorageKeyPrefix = "recruit:"

const (
	DefaultInterviewLocation = "미정" // 면접 장소 미지정 시 기본값
	MaxQuestionLength        = 300  // 질문 본문 최대 길이
	MinAnswerLength          = 100  // 답변 길이 제한 하한
	MaxAnswerLength          = 1000 // 답변 길이 제한 상한
	RefreshTokenExpiryHours  = 168  // Refresh Token 유효기간 (시간), 7일
)
