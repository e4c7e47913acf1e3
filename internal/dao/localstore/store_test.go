package localstore

import (
	"context"
	"errors"
	"testing"
)

type record struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func newTestStore(t *testing.T) (*Store[record], *MemoryBackend, *Notifier) {
	t.Helper()
	backend := NewMemoryBackend()
	notifier := NewNotifier()
	return NewStore[record]("records", backend, notifier), backend, notifier
}

func TestLoadEmptyCollection(t *testing.T) {
	store, _, _ := newTestStore(t)

	items := store.Load()
	if items == nil {
		t.Fatal("Load 는 nil 이 아닌 빈 슬라이스를 반환해야 한다")
	}
	if len(items) != 0 {
		t.Fatalf("빈 저장소에서 %d 건이 나왔다", len(items))
	}
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	store, _, _ := newTestStore(t)

	want := []record{{ID: "r1", Name: "하나"}, {ID: "r2", Name: "둘"}}
	if err := store.Save(want); err != nil {
		t.Fatalf("Save 실패: %v", err)
	}

	got := store.Load()
	if len(got) != 2 || got[0].ID != "r1" || got[1].Name != "둘" {
		t.Fatalf("저장한 컬렉션과 다르다: %+v", got)
	}
}

func TestLoadCorruptValueDegradesToEmpty(t *testing.T) {
	store, backend, _ := newTestStore(t)

	if err := backend.SetItem(context.Background(), "recruit:records", "{not json"); err != nil {
		t.Fatal(err)
	}
	if items := store.Load(); len(items) != 0 {
		t.Fatalf("손상 값에서 빈 컬렉션이 아니라 %+v 가 나왔다", items)
	}

	// 배열이 아닌 JSON 도 손상으로 취급
	if err := backend.SetItem(context.Background(), "recruit:records", `{"a":1}`); err != nil {
		t.Fatal(err)
	}
	if items := store.Load(); len(items) != 0 {
		t.Fatalf("비배열 값에서 빈 컬렉션이 아니라 %+v 가 나왔다", items)
	}
}

func TestCorruptValueOverwrittenByNextSave(t *testing.T) {
	store, backend, _ := newTestStore(t)

	if err := backend.SetItem(context.Background(), "recruit:records", "corrupt"); err != nil {
		t.Fatal(err)
	}
	if err := store.Save([]record{{ID: "r1"}}); err != nil {
		t.Fatalf("Save 실패: %v", err)
	}

	raw, ok, err := backend.GetItem(context.Background(), "recruit:records")
	if err != nil || !ok {
		t.Fatalf("저장 값 조회 실패: ok=%v err=%v", ok, err)
	}
	if raw != `[{"id":"r1","name":""}]` {
		t.Fatalf("손상 값이 정상 JSON 으로 교체되지 않았다: %s", raw)
	}
}

func TestSaveNilStoresEmptyArray(t *testing.T) {
	store, backend, _ := newTestStore(t)

	if err := store.Save(nil); err != nil {
		t.Fatalf("Save(nil) 실패: %v", err)
	}
	raw, _, _ := backend.GetItem(context.Background(), "recruit:records")
	if raw != "[]" {
		t.Fatalf(`nil 컬렉션은 "[]" 로 저장되어야 한다, got %q`, raw)
	}
}

func TestSaveNotifiesSubscribersOnce(t *testing.T) {
	store, _, notifier := newTestStore(t)

	calls := 0
	notifier.Subscribe("records", func() { calls++ })

	if err := store.Save([]record{{ID: "r1"}}); err != nil {
		t.Fatal(err)
	}
	if calls != 1 {
		t.Fatalf("저장 1회에 알림 %d회", calls)
	}
}

func TestUpdateAppliesMutationAtomically(t *testing.T) {
	store, _, _ := newTestStore(t)
	if err := store.Save([]record{{ID: "r1"}}); err != nil {
		t.Fatal(err)
	}

	updated, err := store.Update(func(items []record) ([]record, error) {
		return append(items, record{ID: "r2"}), nil
	})
	if err != nil {
		t.Fatalf("Update 실패: %v", err)
	}
	if len(updated) != 2 {
		t.Fatalf("Update 반환 컬렉션이 %d 건", len(updated))
	}
	if got := store.Load(); len(got) != 2 {
		t.Fatalf("Update 후 저장 컬렉션이 %d 건", len(got))
	}
}

func TestUpdateErrorAbortsWithoutSaveOrNotify(t *testing.T) {
	store, _, notifier := newTestStore(t)
	if err := store.Save([]record{{ID: "r1"}}); err != nil {
		t.Fatal(err)
	}

	calls := 0
	notifier.Subscribe("records", func() { calls++ })

	boom := errors.New("boom")
	_, err := store.Update(func(items []record) ([]record, error) {
		return nil, boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("fn 의 에러가 그대로 나와야 한다, got %v", err)
	}
	if calls != 0 {
		t.Fatalf("실패한 Update 가 알림을 %d회 발행했다", calls)
	}
	if got := store.Load(); len(got) != 1 {
		t.Fatalf("실패한 Update 가 컬렉션을 바꿨다: %+v", got)
	}
}

type failingBackend struct{}

func (failingBackend) GetItem(context.Context, string) (string, bool, error) {
	return "", false, errors.New("backend down")
}
func (failingBackend) SetItem(context.Context, string, string) error {
	return errors.New("backend down")
}
func (failingBackend) RemoveItem(context.Context, string) error {
	return errors.New("backend down")
}

func TestLoadBackendErrorDegradesToEmpty(t *testing.T) {
	store := NewStore[record]("records", failingBackend{}, NewNotifier())
	if items := store.Load(); items == nil || len(items) != 0 {
		t.Fatalf("백엔드 장애에서 빈 컬렉션이 아니라 %+v 가 나왔다", items)
	}
}

func TestMapStoreRoundTripAndLoadFor(t *testing.T) {
	backend := NewMemoryBackend()
	store := NewMapStore[record]("grouped", backend, NewNotifier())

	err := store.Save(map[string][]record{
		"club-a": {{ID: "r1"}},
	})
	if err != nil {
		t.Fatal(err)
	}

	if seq := store.LoadFor("club-a"); len(seq) != 1 || seq[0].ID != "r1" {
		t.Fatalf("LoadFor 결과가 다르다: %+v", seq)
	}
	if seq := store.LoadFor("club-b"); seq == nil || len(seq) != 0 {
		t.Fatalf("없는 키의 LoadFor 는 빈 시퀀스를 반환해야 한다: %+v", seq)
	}
}

func TestMapStoreCorruptValueDegradesToEmpty(t *testing.T) {
	backend := NewMemoryBackend()
	store := NewMapStore[record]("grouped", backend, NewNotifier())

	if err := backend.SetItem(context.Background(), "recruit:grouped", "[1,2"); err != nil {
		t.Fatal(err)
	}
	if items := store.Load(); len(items) != 0 {
		t.Fatalf("손상 값에서 빈 매핑이 아니라 %+v 가 나왔다", items)
	}
}
