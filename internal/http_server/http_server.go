// Package http_server HTTP 서버 초기화
// Gin 엔진을 만들고 미들웨어와 라우트를 구성한다
package http_server

import (
	"club_recruit_server/internal/gateway/websocket"
	"club_recruit_server/internal/handler"
	"club_recruit_server/internal/infrastructure/logger"
	"club_recruit_server/internal/router"
	"club_recruit_server/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Init Gin 엔진 생성 및 구성
// 구성 순서: 로그/복구 미들웨어 → CORS → 라우트 등록
func Init(handlers *handler.Handlers, services *service.Services, gateway *websocket.Gateway) *gin.Engine {
	engine := gin.New()

	engine.Use(logger.GinLogger())
	engine.Use(logger.GinRecovery(true))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"*"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	engine.Use(cors.New(corsConfig))

	// TLS 리다이렉트가 필요하면 아래를 활성화
	// engine.Use(middleware.TlsHandler(config.GetConfig().MainConfig.Host, config.GetConfig().MainConfig.Port))

	rt := router.NewRouter(handlers, services, gateway)
	rt.RegisterRoutes(engine)

	return engine
}
