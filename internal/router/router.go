// Package router HTTP 라우트 등록
// 본 파일은 라우트 등록 입구로, 각 도메인 라우트를 모아 등록한다
package router

import (
	"club_recruit_server/internal/gateway/websocket"
	"club_recruit_server/internal/handler"
	"club_recruit_server/internal/service"

	"github.com/gin-gonic/gin"
)

// Router 라우트 등록기
// Handlers 집약과 게이트웨이를 주입받는다
type Router struct {
	handlers *handler.Handlers
	services *service.Services
	gateway  *websocket.Gateway
}

// NewRouter 생성자
func NewRouter(handlers *handler.Handlers, services *service.Services, gateway *websocket.Gateway) *Router {
	return &Router{
		handlers: handlers,
		services: services,
		gateway:  gateway,
	}
}

// RegisterRoutes 전체 라우트 등록
// http_server.Init() 에서 호출된다
func (rt *Router) RegisterRoutes(r *gin.Engine) {
	rt.registerAuthRoutes(r)        // 인증 (가입/로그인/토큰 갱신)
	rt.registerUserRoutes(r)        // 계정
	rt.registerClubRoutes(r)        // 동아리 조회
	rt.registerApplicationRoutes(r) // 지원서
	rt.registerNoticeRoutes(r)      // 공지
	rt.registerQuestionRoutes(r)    // 지원서 질문
	rt.registerInterviewRoutes(r)   // 면접 슬롯
	rt.registerWishlistRoutes(r)    // 위시리스트
	rt.registerWebSocketRoutes(r)   // 변경 알림 푸시
}
