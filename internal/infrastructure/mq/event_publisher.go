// Package mq 저장소 변경 이벤트의 Kafka 미러링
// 인프로세스 알림(Notifier)은 그대로 두고, eventMode 가 "kafka" 일 때
// 같은 변경 힌트를 외부 토픽으로도 내보낸다. 외부 소비자(통계, 감사 로그 등)용이며
// 발행 실패는 본 요청의 성패에 영향을 주지 않는다
package mq

import (
	"context"
	"encoding/json"
	"time"

	"club_recruit_server/internal/config"
	"club_recruit_server/internal/dao/localstore"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ChangeEvent 토픽으로 나가는 변경 이벤트
type ChangeEvent struct {
	Kind string `json:"kind"` // 변경된 컬렉션 종류
	At   string `json:"at"`   // 발행 시각 (RFC3339)
}

// EventPublisher 변경 이벤트 발행 인터페이스
type EventPublisher interface {
	PublishChange(ctx context.Context, kind string) error
	Close() error
}

// kafkaPublisher Kafka 기반 EventPublisher 구현
type kafkaPublisher struct {
	writer *kafka.Writer
}

// NewKafkaPublisher Kafka writer 생성
func NewKafkaPublisher(cfg config.KafkaConfig) *kafkaPublisher {
	return &kafkaPublisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(cfg.HostPort),
			Topic:                  cfg.ChangeTopic,
			Balancer:               &kafka.Hash{},
			WriteTimeout:           10 * time.Second,
			RequiredAcks:           kafka.RequireNone,
			AllowAutoTopicCreation: true,
		},
	}
}

// PublishChange 변경 이벤트 한 건 발행, kind 를 파티션 키로 사용
func (p *kafkaPublisher) PublishChange(ctx context.Context, kind string) error {
	value, err := json.Marshal(ChangeEvent{
		Kind: kind,
		At:   time.Now().Format(time.RFC3339),
	})
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(kind),
		Value: value,
	})
}

func (p *kafkaPublisher) Close() error {
	return p.writer.Close()
}

// noopPublisher eventMode "off" 용
type noopPublisher struct{}

func (noopPublisher) PublishChange(context.Context, string) error { return nil }
func (noopPublisher) Close() error                                { return nil }

// NewPublisherFromConfig eventMode 에 따라 구현 선택
func NewPublisherFromConfig(cfg config.KafkaConfig) EventPublisher {
	if cfg.EventMode == "kafka" {
		return NewKafkaPublisher(cfg)
	}
	return noopPublisher{}
}

// BindNotifier 모든 kind 의 인프로세스 알림을 구독해 이벤트로 미러링
// 발행은 고루틴에서 수행해 저장 경로를 붙잡지 않는다
// 반환된 함수를 호출하면 구독이 해지된다
func BindNotifier(publisher EventPublisher, notifier *localstore.Notifier, kinds []string) func() {
	unsubscribes := make([]func(), 0, len(kinds))
	for _, kind := range kinds {
		k := kind
		unsub := notifier.Subscribe(k, func() {
			go func() {
				ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				if err := publisher.PublishChange(ctx, k); err != nil {
					zap.L().Warn("변경 이벤트 발행 실패", zap.String("kind", k), zap.Error(err))
				}
			}()
		})
		unsubscribes = append(unsubscribes, unsub)
	}
	return func() {
		for _, unsub := range unsubscribes {
			unsub()
		}
	}
}
