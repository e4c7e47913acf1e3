package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"club_recruit_server/internal/dao/localstore"
	"club_recruit_server/internal/service"
	"club_recruit_server/pkg/errorx"

	"github.com/gin-gonic/gin"
)

// newTestEngine 인증 미들웨어 대신 user_id 를 직접 주입하는 테스트 엔진
func newTestEngine(t *testing.T, userID string) (*gin.Engine, *Handlers) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	if err := InitTrans("en"); err != nil {
		t.Fatal(err)
	}

	stores := localstore.NewStores(localstore.NewMemoryBackend(), localstore.NewNotifier())
	handlers := NewHandlers(service.NewServices(stores))

	engine := gin.New()
	engine.Use(func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	})
	return engine, handlers
}

type envelope struct {
	Code int             `json:"code"`
	Msg  json.RawMessage `json:"msg"`
	Data json.RawMessage `json:"data"`
}

func doJSON(t *testing.T, engine *gin.Engine, method, path, body string) envelope {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("HTTP %d: %s", w.Code, w.Body.String())
	}
	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("응답 파싱 실패: %v (%s)", err, w.Body.String())
	}
	return env
}

func TestToggleWishlistEnvelope(t *testing.T) {
	engine, handlers := newTestEngine(t, "US-a")
	engine.POST("/wishlist/toggle", handlers.Wishlist.Toggle)

	env := doJSON(t, engine, http.MethodPost, "/wishlist/toggle", `{"club_id":"club-dev"}`)
	if env.Code != errorx.CodeSuccess {
		t.Fatalf("code = %d", env.Code)
	}

	var data struct {
		IsWishlisted bool     `json:"is_wishlisted"`
		ClubIDs      []string `json:"club_ids"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatal(err)
	}
	if !data.IsWishlisted || len(data.ClubIDs) != 1 {
		t.Fatalf("토글 결과가 다르다: %+v", data)
	}

	// 두 번째 토글로 원상복구
	env = doJSON(t, engine, http.MethodPost, "/wishlist/toggle", `{"club_id":"club-dev"}`)
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatal(err)
	}
	if data.IsWishlisted || len(data.ClubIDs) != 0 {
		t.Fatalf("원상복구되지 않았다: %+v", data)
	}
}

func TestToggleWishlistParamError(t *testing.T) {
	engine, handlers := newTestEngine(t, "US-a")
	engine.POST("/wishlist/toggle", handlers.Wishlist.Toggle)

	env := doJSON(t, engine, http.MethodPost, "/wishlist/toggle", `{}`)
	if env.Code != errorx.CodeInvalidParam {
		t.Fatalf("필수 필드 누락 코드 = %d", env.Code)
	}
}

func TestBookSlotEnvelopeCodes(t *testing.T) {
	engine, handlers := newTestEngine(t, "US-a")
	engine.POST("/interview/bookSlot", handlers.Interview.BookSlot)

	// 시드 슬롯 예약 성공
	env := doJSON(t, engine, http.MethodPost, "/interview/bookSlot", `{"slot_id":"SL-seed-dev-1"}`)
	if env.Code != errorx.CodeSuccess {
		t.Fatalf("code = %d", env.Code)
	}

	// 같은 사용자의 중복 예약
	env = doJSON(t, engine, http.MethodPost, "/interview/bookSlot", `{"slot_id":"SL-seed-dev-1"}`)
	if env.Code != errorx.CodeAlreadyBooked {
		t.Fatalf("중복 예약 code = %d", env.Code)
	}

	// 없는 슬롯
	env = doJSON(t, engine, http.MethodPost, "/interview/bookSlot", `{"slot_id":"SL-none"}`)
	if env.Code != errorx.CodeNotFound {
		t.Fatalf("없는 슬롯 code = %d", env.Code)
	}
}
