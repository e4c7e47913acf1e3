package errorx

import (
	"errors"
	"fmt"
	"testing"
)

func TestGetCode(t *testing.T) {
	if got := GetCode(New(CodeSlotFull, "정원 마감")); got != CodeSlotFull {
		t.Fatalf("GetCode = %d", got)
	}
	// CodeError 가 아니면 서버 오류 코드로 수렴
	if got := GetCode(errors.New("plain")); got != CodeServerBusy {
		t.Fatalf("GetCode(plain) = %d", got)
	}
	// 감싸진 CodeError 도 추적된다
	wrapped := fmt.Errorf("outer: %w", New(CodeNotFound, "없음"))
	if got := GetCode(wrapped); got != CodeNotFound {
		t.Fatalf("GetCode(wrapped) = %d", got)
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("disk full")
	err := Wrap(cause, CodeStorageError, "저장 실패")

	if !errors.Is(err, cause) {
		t.Fatal("errors.Is 로 원인을 찾을 수 없다")
	}
	if msg := err.Error(); msg != "저장 실패: disk full" {
		t.Fatalf("Error() = %q", msg)
	}
}

func TestIsNotFound(t *testing.T) {
	if !IsNotFound(ErrNotFound) {
		t.Fatal("ErrNotFound 가 NotFound 가 아니다")
	}
	if !IsNotFound(Newf(CodeNotFound, "슬롯 없음 id=%s", "SL-1")) {
		t.Fatal("Newf NotFound 가 인식되지 않는다")
	}
	if IsNotFound(ErrSlotFull) {
		t.Fatal("다른 코드가 NotFound 로 인식된다")
	}
	if IsNotFound(errors.New("plain")) {
		t.Fatal("일반 에러가 NotFound 로 인식된다")
	}
}
