// Package localstore 엔티티 종류별 JSON 블롭 컬렉션을 다루는 내장 키-값 저장 계층
// 브라우저 localStorage 계약(getItem/setItem/removeItem)을 Backend 인터페이스로 옮기고,
// 그 위에 종류별 Store 게이트웨이와 변경 Notifier 를 얹는다
package localstore

import (
	"context"
	"fmt"

	"club_recruit_server/internal/config"
)

// Backend 키-값 저장 백엔드 인터페이스
// 서비스 계층은 이 인터페이스에만 의존하며, 구현은 생성자 주입으로 교체한다
// (테스트는 memory, 로컬 배포는 file, 서버 배포는 redis/mysql)
type Backend interface {
	// GetItem 키의 값을 조회. 키가 없으면 ok=false, err=nil
	GetItem(ctx context.Context, key string) (value string, ok bool, err error)
	// SetItem 키에 값을 저장 (기존 값은 전체 교체)
	SetItem(ctx context.Context, key string, value string) error
	// RemoveItem 키 삭제. 키가 없어도 에러가 아니다
	RemoveItem(ctx context.Context, key string) error
}

// NewBackendFromConfig 설정의 storage.backend 값에 맞는 백엔드 생성
func NewBackendFromConfig(conf *config.Config) (Backend, error) {
	switch conf.StorageConfig.Backend {
	case "", "memory":
		return NewMemoryBackend(), nil
	case "file":
		return NewFileBackend(&conf.StorageConfig)
	case "redis":
		return NewRedisBackend(&conf.RedisConfig), nil
	case "mysql":
		return NewGormBackend(&conf.MysqlConfig)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", conf.StorageConfig.Backend)
	}
}
