package localstore

import (
	"context"
	"errors"
	"strconv"

	"club_recruit_server/internal/config"
	"club_recruit_server/pkg/errorx"

	"github.com/go-redis/redis/v8"
)

// RedisBackend Redis 문자열 키에 블롭을 저장하는 백엔드
// 여러 서버 인스턴스가 같은 컬렉션을 공유할 때 사용한다
// (교차 프로세스 잠금은 없으며 last-writer-wins 특성은 그대로 유지된다)
type RedisBackend struct {
	client *redis.Client
}

// NewRedisBackend 설정으로 Redis 클라이언트를 만들어 백엔드 생성
func NewRedisBackend(conf *config.RedisConfig) *RedisBackend {
	addr := conf.Host + ":" + strconv.Itoa(conf.Port)
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: conf.Password,
		DB:       conf.Db,
	})
	return &RedisBackend{client: client}
}

// GetItem 키 조회. 키가 없으면 ok=false (에러 아님)
func (b *RedisBackend) GetItem(ctx context.Context, key string) (string, bool, error) {
	value, err := b.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, errorx.Wrapf(err, errorx.CodeStorageError, "redis get %s", key)
	}
	return value, true, nil
}

// SetItem 키 저장 (만료 없음, 영속 컬렉션)
func (b *RedisBackend) SetItem(ctx context.Context, key string, value string) error {
	if err := b.client.Set(ctx, key, value, 0).Err(); err != nil {
		return errorx.Wrapf(err, errorx.CodeStorageError, "redis set %s", key)
	}
	return nil
}

// RemoveItem 키 삭제
func (b *RedisBackend) RemoveItem(ctx context.Context, key string) error {
	if err := b.client.Del(ctx, key).Err(); err != nil {
		return errorx.Wrapf(err, errorx.CodeStorageError, "redis del %s", key)
	}
	return nil
}
