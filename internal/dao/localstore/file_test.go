package localstore

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"club_recruit_server/internal/config"
)

func TestFileBackendRoundTrip(t *testing.T) {
	b, err := NewFileBackend(&config.StorageConfig{DataDir: t.TempDir()})
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()

	if _, ok, err := b.GetItem(ctx, "recruit:applications"); ok || err != nil {
		t.Fatalf("없는 키는 ok=false err=nil 이어야 한다: ok=%v err=%v", ok, err)
	}

	if err := b.SetItem(ctx, "recruit:applications", `[{"id":"AP-1"}]`); err != nil {
		t.Fatal(err)
	}
	value, ok, err := b.GetItem(ctx, "recruit:applications")
	if err != nil || !ok || value != `[{"id":"AP-1"}]` {
		t.Fatalf("라운드트립 실패: value=%q ok=%v err=%v", value, ok, err)
	}

	if err := b.RemoveItem(ctx, "recruit:applications"); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := b.GetItem(ctx, "recruit:applications"); ok {
		t.Fatal("삭제 후에도 키가 남아 있다")
	}
	// 없는 키 삭제는 에러가 아니다
	if err := b.RemoveItem(ctx, "recruit:applications"); err != nil {
		t.Fatalf("없는 키 삭제가 에러를 반환했다: %v", err)
	}
}

func TestFileBackendEncryptAtRest(t *testing.T) {
	dir := t.TempDir()
	b, err := NewFileBackend(&config.StorageConfig{
		DataDir:       dir,
		EncryptAtRest: true,
		EncryptKey:    "test-passphrase",
	})
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()

	plain := `[{"id":"US-1","email":"a@b.c"}]`
	if err := b.SetItem(ctx, "recruit:local_users", plain); err != nil {
		t.Fatal(err)
	}

	// 디스크의 파일에는 평문이 보이면 안 된다
	raw, err := os.ReadFile(filepath.Join(dir, "recruit_local_users.json"))
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(raw), "a@b.c") {
		t.Fatal("암호화 모드인데 평문이 그대로 기록되었다")
	}

	value, ok, err := b.GetItem(ctx, "recruit:local_users")
	if err != nil || !ok || value != plain {
		t.Fatalf("복호화 라운드트립 실패: value=%q ok=%v err=%v", value, ok, err)
	}
}

func TestFileBackendKeyToFileName(t *testing.T) {
	dir := t.TempDir()
	b, err := NewFileBackend(&config.StorageConfig{DataDir: dir})
	if err != nil {
		t.Fatal(err)
	}
	if err := b.SetItem(context.Background(), "recruit:interview_slots", "[]"); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(dir, "recruit_interview_slots.json")); err != nil {
		t.Fatalf("':' 가 '_' 로 치환된 파일명이어야 한다: %v", err)
	}
}
