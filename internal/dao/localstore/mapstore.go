package localstore

import (
	"context"
	"encoding/json"
	"sync"

	"club_recruit_server/pkg/constants"
	"club_recruit_server/pkg/errorx"

	"go.uber.org/zap"
)

// MapStore clubId → 레코드 시퀀스 매핑 컬렉션을 담당하는 저장 게이트웨이
// 공지/질문처럼 동아리 단위로 시퀀스를 유지하는 엔티티 종류에 사용한다
// 손상 허용과 알림 규칙은 Store 와 동일하다
type MapStore[T any] struct {
	kind     string
	key      string
	backend  Backend
	notifier *Notifier
	mu       sync.Mutex
}

// NewMapStore 종류별 MapStore 생성
func NewMapStore[T any](kind string, backend Backend, notifier *Notifier) *MapStore[T] {
	return &MapStore[T]{
		kind:     kind,
		key:      constants.StorageKeyPrefix + kind,
		backend:  backend,
		notifier: notifier,
	}
}

// Kind 이 MapStore 가 담당하는 엔티티 종류
func (s *MapStore[T]) Kind() string {
	return s.kind
}

// Load 매핑 전체 조회. 키가 없거나 손상되면 빈 매핑 반환
func (s *MapStore[T]) Load() map[string][]T {
	raw, ok, err := s.backend.GetItem(context.Background(), s.key)
	if err != nil {
		zap.L().Warn("저장소 읽기 실패, 빈 매핑으로 대체",
			zap.String("key", s.key), zap.Error(err))
		return map[string][]T{}
	}
	if !ok || raw == "" {
		return map[string][]T{}
	}

	var items map[string][]T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		zap.L().Warn("손상된 저장 값 감지, 빈 매핑으로 대체",
			zap.String("key", s.key), zap.Error(err))
		return map[string][]T{}
	}
	if items == nil {
		items = map[string][]T{}
	}
	return items
}

// LoadFor 특정 동아리의 시퀀스만 조회 (없으면 빈 시퀀스)
func (s *MapStore[T]) LoadFor(ownerID string) []T {
	seq := s.Load()[ownerID]
	if seq == nil {
		seq = []T{}
	}
	return seq
}

// Save 매핑 전체 교체 저장 후 알림 발행
func (s *MapStore[T]) Save(items map[string][]T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked(items)
}

// Update 읽기-수정-쓰기 시퀀스를 원자적으로 수행
func (s *MapStore[T]) Update(fn func(items map[string][]T) (map[string][]T, error)) (map[string][]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated, err := fn(s.Load())
	if err != nil {
		return nil, err
	}
	if err := s.saveLocked(updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *MapStore[T]) saveLocked(items map[string][]T) error {
	if items == nil {
		items = map[string][]T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return errorx.Wrapf(err, errorx.CodeStorageError, "매핑 직렬화 실패 %s", s.kind)
	}
	if err := s.backend.SetItem(context.Background(), s.key, string(data)); err != nil {
		return err
	}
	s.notifier.Notify(s.kind)
	return nil
}
