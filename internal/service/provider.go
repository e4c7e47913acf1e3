// Package service 비즈니스 계층의 의존성 주입과 집약
package service

import (
	"club_recruit_server/internal/dao/localstore"
	"club_recruit_server/internal/service/application"
	"club_recruit_server/internal/service/club"
	"club_recruit_server/internal/service/interview"
	"club_recruit_server/internal/service/notice"
	"club_recruit_server/internal/service/question"
	"club_recruit_server/internal/service/user"
	"club_recruit_server/internal/service/wishlist"
)

// Services 모든 Service 인스턴스 집약
// Handler 계층의 의존성 주입 입구
type Services struct {
	User        UserService
	Club        ClubService
	Application ApplicationService
	Notice      NoticeService
	Question    QuestionService
	Interview   InterviewService
	Wishlist    WishlistService
}

// NewServices Store 집약을 받아 모든 Service 인스턴스 생성
func NewServices(stores *localstore.Stores) *Services {
	return &Services{
		User:        user.NewUserService(stores),
		Club:        club.NewClubService(),
		Application: application.NewApplicationService(stores),
		Notice:      notice.NewNoticeService(stores),
		Question:    question.NewQuestionService(stores),
		Interview:   interview.NewInterviewService(stores),
		Wishlist:    wishlist.NewWishlistService(stores),
	}
}
