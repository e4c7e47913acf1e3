package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"club_recruit_server/internal/config"
	"club_recruit_server/internal/dao/localstore"
	"club_recruit_server/internal/gateway/websocket"
	"club_recruit_server/internal/handler"
	"club_recruit_server/internal/http_server"
	"club_recruit_server/internal/infrastructure/logger"
	"club_recruit_server/internal/infrastructure/mq"
	"club_recruit_server/internal/service"
	"club_recruit_server/pkg/util/jwt"

	"go.uber.org/zap"
)

func main() {
	// 1. 설정 로딩
	conf := config.GetConfig()

	// 2. 로거 초기화
	if err := logger.Init(&conf.LogConfig, "dev"); err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	zap.L().Info("로거 초기화 완료")

	// 3. 저장 백엔드 초기화 (memory / file / redis / mysql)
	backend, err := localstore.NewBackendFromConfig(conf)
	if err != nil {
		zap.L().Fatal("저장 백엔드 초기화 실패", zap.Error(err))
	}
	notifier := localstore.NewNotifier()
	stores := localstore.NewStores(backend, notifier)
	zap.L().Info("저장 계층 초기화 완료", zap.String("backend", conf.StorageConfig.Backend))

	// 4. JWT 초기화
	jwt.Init(conf.JWTConfig.Secret, conf.JWTConfig.AccessTokenExpiry, conf.JWTConfig.RefreshTokenExpiry)
	zap.L().Info("JWT 초기화 완료")

	// 5. validator 번역기 초기화
	if err := handler.InitTrans("en"); err != nil {
		zap.L().Fatal("validator 번역기 초기화 실패", zap.Error(err))
	}

	// 6. Service / Handler 계층 구성 (의존성 주입)
	services := service.NewServices(stores)
	handlers := handler.NewHandlers(services)
	zap.L().Info("Service 계층 초기화 완료")

	// 7. 변경 알림 푸시 게이트웨이
	gateway := websocket.NewGateway(notifier, localstore.AllKinds())

	// 8. 변경 이벤트 Kafka 미러링 (eventMode 가 "kafka" 일 때만)
	publisher := mq.NewPublisherFromConfig(conf.KafkaConfig)
	unbind := mq.BindNotifier(publisher, notifier, localstore.AllKinds())
	if conf.KafkaConfig.EventMode == "kafka" {
		zap.L().Info("Kafka 이벤트 미러링 활성화", zap.String("topic", conf.KafkaConfig.ChangeTopic))
	}

	// 9. HTTP 서버 구성 및 기동
	engine := http_server.Init(handlers, services, gateway)
	host := conf.MainConfig.Host
	port := conf.MainConfig.Port

	go func() {
		if err := engine.Run(fmt.Sprintf("%s:%d", host, port)); err != nil {
			zap.L().Fatal("server running fault", zap.Error(err))
		}
	}()
	zap.L().Info("HTTP 서버 기동", zap.String("host", host), zap.Int("port", port))

	// 종료 신호 대기
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zap.L().Info("서버를 종료합니다...")
	unbind()
	if err := publisher.Close(); err != nil {
		zap.L().Error("이벤트 발행기 종료 실패", zap.Error(err))
	}
	gateway.Close()
	zap.L().Info("서버 종료 완료")
}
