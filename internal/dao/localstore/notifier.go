package localstore

import "sync"

// Handler 변경 알림 핸들러
// 페이로드는 없다: 구독자는 알림을 받으면 다시 조회해야 한다
type Handler func()

// Notifier 엔티티 종류별 변경 알림 버스
// 전달은 동기적이고 프로세스 내부로 한정된다
// 탭/프로세스를 넘는 전파는 제공하지 않는다 (원본의 DOM 커스텀 이벤트와 동일한 범위)
type Notifier struct {
	mu     sync.Mutex
	nextID int
	subs   map[string]map[int]Handler // kind → 구독자 집합
}

// NewNotifier 새 Notifier 생성
func NewNotifier() *Notifier {
	return &Notifier{
		subs: make(map[string]map[int]Handler),
	}
}

// Subscribe kind 에 대한 구독 등록
// 반환된 함수를 호출하면 구독이 해제된다
func (n *Notifier) Subscribe(kind string, fn Handler) (unsubscribe func()) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.subs[kind] == nil {
		n.subs[kind] = make(map[int]Handler)
	}
	id := n.nextID
	n.nextID++
	n.subs[kind][id] = fn

	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		delete(n.subs[kind], id)
	}
}

// Notify kind 의 모든 구독자에게 동기적으로 알림
// 핸들러 안에서 Subscribe/unsubscribe 를 호출해도 데드락이 없도록
// 잠금 밖에서 스냅샷을 순회한다
func (n *Notifier) Notify(kind string) {
	n.mu.Lock()
	handlers := make([]Handler, 0, len(n.subs[kind]))
	for _, fn := range n.subs[kind] {
		handlers = append(handlers, fn)
	}
	n.mu.Unlock()

	for _, fn := range handlers {
		fn()
	}
}
