// Package service 비즈니스 계층 인터페이스 정의
// Handler 계층은 여기 정의된 인터페이스에만 의존한다
package service

import (
	"club_recruit_server/internal/dto/request"
	"club_recruit_server/internal/dto/respond"
	"club_recruit_server/internal/model"
)

// UserService 로컬 계정 비즈니스 인터페이스
// 가입/로그인/토큰 갱신을 처리한다
type UserService interface {
	// Register 회원가입 (이메일 중복은 대소문자 구분 없이 거부)
	Register(req request.RegisterRequest) (*respond.RegisterRespond, error)
	// Login 이메일/비밀번호 로그인
	Login(req request.LoginRequest) (*respond.LoginRespond, error)
	// RefreshToken Refresh Token 으로 토큰 쌍 재발급 (회전)
	RefreshToken(refreshToken string) (*respond.RefreshTokenRespond, error)
	// GetUserInfo 계정 조회
	GetUserInfo(id string) (*model.LocalUser, error)
}

// ClubService 동아리 조회 인터페이스 (시드 데이터 전용)
type ClubService interface {
	// GetClubList 전체 동아리 목록
	GetClubList() []model.Club
	// GetClubInfo 동아리 단건 조회
	GetClubInfo(id string) (*model.Club, error)
}

// ApplicationService 지원서 비즈니스 인터페이스
// 시드와 영속 레코드를 병합한 논리 컬렉션을 노출한다
type ApplicationService interface {
	// SubmitApplication 지원서 제출
	SubmitApplication(applicantID string, req request.SubmitApplicationRequest) (*model.Application, error)
	// GetMyApplications 지원자 기준 목록 조회
	GetMyApplications(applicantID string) []model.Application
	// GetClubApplications 동아리 기준 목록 조회 (관리자)
	GetClubApplications(clubID string) []model.Application
	// GetApplicationInfo 단건 조회 (영속 레코드 우선)
	GetApplicationInfo(id string) (*model.Application, error)
	// AssignInterview 지원서에 면접 슬롯 배정 (관리자)
	AssignInterview(req request.AssignInterviewRequest) (*model.Application, error)
	// DecideDocument 서류 결과 결정 (관리자)
	DecideDocument(req request.DecideDocumentRequest) (*model.Application, error)
	// DecideFinal 최종 결과 결정 (관리자)
	DecideFinal(req request.DecideFinalRequest) (*model.Application, error)
}

// NoticeService 동아리 공지 비즈니스 인터페이스
type NoticeService interface {
	// GetNoticeList 동아리 공지 목록 (시드 병합)
	GetNoticeList(clubID string) []model.Notice
	// CreateNotice 공지 작성
	CreateNotice(req request.CreateNoticeRequest) (*model.Notice, error)
	// UpdateNotice 공지 수정
	UpdateNotice(req request.UpdateNoticeRequest) (*model.Notice, error)
	// DeleteNotice 공지 삭제 (없으면 false)
	DeleteNotice(req request.DeleteNoticeRequest) (bool, error)
}

// QuestionService 지원서 질문 비즈니스 인터페이스
type QuestionService interface {
	// GetQuestionList 동아리 질문 목록 (order 순 정렬)
	GetQuestionList(clubID string) []model.ClubQuestion
	// CreateQuestion 질문 추가
	CreateQuestion(req request.CreateQuestionRequest) (*model.ClubQuestion, error)
	// UpdateQuestion 질문 수정
	UpdateQuestion(req request.UpdateQuestionRequest) (*model.ClubQuestion, error)
	// DeleteQuestion 질문 삭제 (없으면 false)
	DeleteQuestion(req request.DeleteQuestionRequest) (bool, error)
	// ReorderQuestions 순서 변경 (시퀀스 전체 재작성)
	ReorderQuestions(req request.ReorderQuestionsRequest) ([]model.ClubQuestion, error)
}

// InterviewService 면접 슬롯 비즈니스 인터페이스
// 정원 불변식 (currentCount <= capacity) 을 책임진다
type InterviewService interface {
	// GetSlotList 동아리 슬롯 목록 (시드 병합)
	GetSlotList(clubID string) []model.InterviewSlot
	// CreateSlot 슬롯 생성 (기본값 정규화 포함)
	CreateSlot(req request.CreateSlotRequest) (*model.InterviewSlot, error)
	// BookSlot 지원자의 슬롯 예약. 정원 초과 시 CodeSlotFull
	BookSlot(slotID, applicantID string) (*model.InterviewSlot, error)
	// UpdateSlot 슬롯 부분 수정
	UpdateSlot(req request.UpdateSlotRequest) (*model.InterviewSlot, error)
	// DeleteSlot 슬롯 삭제 (없으면 false)
	DeleteSlot(slotID string) (bool, error)
}

// WishlistService 위시리스트 비즈니스 인터페이스
type WishlistService interface {
	// Toggle 멤버십 토글 (최초 토글 시 레코드 지연 생성)
	Toggle(userID, clubID string) (*respond.ToggleWishlistRespond, error)
	// GetMyWishlist 사용자의 관심 동아리 id 목록
	GetMyWishlist(userID string) []string
}
