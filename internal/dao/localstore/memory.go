package localstore

import (
	"context"
	"sync"
)

// MemoryBackend 테스트/개발용 비영구 백엔드
// 프로세스가 내려가면 데이터도 사라진다
type MemoryBackend struct {
	mu    sync.RWMutex
	items map[string]string
}

// NewMemoryBackend 새 인메모리 백엔드 생성
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{
		items: make(map[string]string),
	}
}

// GetItem 키 조회
func (b *MemoryBackend) GetItem(_ context.Context, key string) (string, bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	value, ok := b.items[key]
	return value, ok, nil
}

// SetItem 키 저장
func (b *MemoryBackend) SetItem(_ context.Context, key string, value string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.items[key] = value
	return nil
}

// RemoveItem 키 삭제
func (b *MemoryBackend) RemoveItem(_ context.Context, key string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.items, key)
	return nil
}
