package localstore

import (
	"context"
	"encoding/json"
	"sync"

	"club_recruit_server/pkg/constants"
	"club_recruit_server/pkg/errorx"

	"go.uber.org/zap"
)

// Store 엔티티 종류 하나의 JSON 배열 컬렉션을 담당하는 저장 게이트웨이
// 읽기는 손상 허용(빈 컬렉션으로 degrade), 쓰기는 컬렉션 전체 교체 후 알림 발행
//
// Update 는 읽기-수정-쓰기 시퀀스를 프로세스 내 뮤텍스로 직렬화한다
// 원본에는 이 직렬화가 없어 동시 예약이 정원 검사를 동시에 통과할 수 있었다
// (의도적 강화이며, 프로세스를 넘는 쓰기는 여전히 last-writer-wins)
type Store[T any] struct {
	kind     string
	key      string
	backend  Backend
	notifier *Notifier
	mu       sync.Mutex
}

// NewStore 종류별 Store 생성. 저장 키는 "recruit:"+kind
func NewStore[T any](kind string, backend Backend, notifier *Notifier) *Store[T] {
	return &Store[T]{
		kind:     kind,
		key:      constants.StorageKeyPrefix + kind,
		backend:  backend,
		notifier: notifier,
	}
}

// Kind 이 Store 가 담당하는 엔티티 종류
func (s *Store[T]) Kind() string {
	return s.kind
}

// Load 컬렉션 전체 조회
// 키가 없거나, JSON 이 아니거나, 배열 형태가 아니면 빈 컬렉션 반환
// 절대 에러를 반환하지 않는다: 손상은 로그만 남기고 로컬에서 복구한다
func (s *Store[T]) Load() []T {
	raw, ok, err := s.backend.GetItem(context.Background(), s.key)
	if err != nil {
		zap.L().Warn("저장소 읽기 실패, 빈 컬렉션으로 대체",
			zap.String("key", s.key), zap.Error(err))
		return []T{}
	}
	if !ok || raw == "" {
		return []T{}
	}

	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		zap.L().Warn("손상된 저장 값 감지, 빈 컬렉션으로 대체",
			zap.String("key", s.key), zap.Error(err))
		return []T{}
	}
	if items == nil {
		items = []T{}
	}
	return items
}

// Save 컬렉션 전체 교체 저장
// 저장 성공 시 해당 kind 의 구독자에게 정확히 한 번 알림이 간다
func (s *Store[T]) Save(items []T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked(items)
}

// Update 읽기-수정-쓰기 시퀀스를 원자적으로 수행
// fn 이 에러를 반환하면 아무것도 저장하지 않고 알림도 없다
func (s *Store[T]) Update(fn func(items []T) ([]T, error)) ([]T, error) {
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

func (s *Store[T]) saveLocked(items []T) error {
	if items == nil {
		items = []T{} // "null" 이 아니라 "[]" 로 저장
	}
	data, err := json.Marshal(items)
	if err != nil {
		return errorx.Wrapf(err, errorx.CodeStorageError, "컬렉션 직렬화 실패 %s", s.kind)
	}
	if err := s.backend.SetItem(context.Background(), s.key, string(data)); err != nil {
		return err
	}
	s.notifier.Notify(s.kind)
	return nil
}
