package random

import (
	"strings"
	"testing"
)

func TestNewRecordIDFormat(t *testing.T) {
	id := NewRecordID("AP")
	if !strings.HasPrefix(id, "AP") {
		t.Fatalf("접두사가 빠졌다: %q", id)
	}
	// 접두사(2) + 날짜(6) + 랜덤(13)
	if len(id) != 21 {
		t.Fatalf("길이가 %d: %q", len(id), id)
	}
}

func TestNewRecordIDIsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewRecordID("SL")
		if seen[id] {
			t.Fatalf("중복 id 발생: %q", id)
		}
		seen[id] = true
	}
}
