// Package handler HTTP 요청 처리기
// 본 파일은 Handler 집약 구조와 생성자를 정의한다
package handler

import (
	"club_recruit_server/internal/service"
)

// Handlers 모든 Handler 인스턴스 집약
// Router 계층의 의존성 주입 입구
type Handlers struct {
	User        *UserHandler
	Auth        *AuthHandler
	Club        *ClubHandler
	Application *ApplicationHandler
	Notice      *NoticeHandler
	Question    *QuestionHandler
	Interview   *InterviewHandler
	Wishlist    *WishlistHandler
}

// NewHandlers Services 집약을 받아 모든 Handler 인스턴스 생성
func NewHandlers(svc *service.Services) *Handlers {
	return &Handlers{
		User:        NewUserHandler(svc.User),
		Auth:        NewAuthHandler(svc.User),
		Club:        NewClubHandler(svc.Club),
		Application: NewApplicationHandler(svc.Application),
		Notice:      NewNoticeHandler(svc.Notice),
		Question:    NewQuestionHandler(svc.Question),
		Interview:   NewInterviewHandler(svc.Interview),
		Wishlist:    NewWishlistHandler(svc.Wishlist),
	}
}
