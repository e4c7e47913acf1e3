package user

import (
	"testing"

	"club_recruit_server/internal/dao/localstore"
	"club_recruit_server/internal/dto/request"
	"club_recruit_server/internal/model"
	"club_recruit_server/pkg/errorx"
	"club_recruit_server/pkg/util/jwt"
)

func newTestService(t *testing.T) (*userService, *localstore.Stores) {
	t.Helper()
	jwt.Init("test-secret-for-unit-tests-only!!", 30, 168)
	stores := localstore.NewStores(localstore.NewMemoryBackend(), localstore.NewNotifier())
	return NewUserService(stores), stores
}

func register(t *testing.T, svc *userService, email string) {
	t.Helper()
	_, err := svc.Register(request.RegisterRequest{
		Email:    email,
		Password: "password123",
		Nickname: "지원자",
	})
	if err != nil {
		t.Fatalf("Register 실패: %v", err)
	}
}

func TestRegisterStoresHashedPassword(t *testing.T) {
	svc, stores := newTestService(t)
	register(t, svc, "member@example.com")

	users := stores.Users.Load()
	if len(users) != 1 {
		t.Fatalf("계정이 %d 건", len(users))
	}
	u := users[0]
	if u.PasswordHash == "" || u.PasswordHash == "password123" {
		t.Fatalf("평문 비밀번호가 저장되었다: %q", u.PasswordHash)
	}
	if u.Role != model.RoleApplicant {
		t.Fatalf("기본 역할이 %q", u.Role)
	}
}

func TestRegisterRejectsDuplicateEmailCaseInsensitive(t *testing.T) {
	svc, _ := newTestService(t)
	register(t, svc, "member@example.com")

	_, err := svc.Register(request.RegisterRequest{
		Email:    "MEMBER@Example.COM",
		Password: "password123",
		Nickname: "다른사람",
	})
	if errorx.GetCode(err) != errorx.CodeEmailExist {
		t.Fatalf("대소문자만 다른 이메일이 통과했다: %v", err)
	}
}

func TestLoginSuccessAndFailure(t *testing.T) {
	svc, _ := newTestService(t)
	register(t, svc, "member@example.com")

	resp, err := svc.Login(request.LoginRequest{Email: "member@example.com", Password: "password123"})
	if err != nil {
		t.Fatalf("Login 실패: %v", err)
	}
	if resp.AccessToken == "" || resp.RefreshToken == "" {
		t.Fatalf("토큰 쌍이 발급되지 않았다: %+v", resp)
	}

	_, err = svc.Login(request.LoginRequest{Email: "member@example.com", Password: "wrong-password"})
	if errorx.GetCode(err) != errorx.CodeInvalidPassword {
		t.Fatalf("잘못된 비밀번호 코드가 다르다: %v", err)
	}

	_, err = svc.Login(request.LoginRequest{Email: "nobody@example.com", Password: "password123"})
	if errorx.GetCode(err) != errorx.CodeUserNotExist {
		t.Fatalf("미가입 이메일 코드가 다르다: %v", err)
	}
}

func TestRefreshTokenRotation(t *testing.T) {
	svc, _ := newTestService(t)
	register(t, svc, "member@example.com")

	login, err := svc.Login(request.LoginRequest{Email: "member@example.com", Password: "password123"})
	if err != nil {
		t.Fatal(err)
	}

	refreshed, err := svc.RefreshToken(login.RefreshToken)
	if err != nil {
		t.Fatalf("RefreshToken 실패: %v", err)
	}
	if refreshed.AccessToken == "" || refreshed.RefreshToken == "" {
		t.Fatalf("회전된 토큰 쌍이 비어 있다: %+v", refreshed)
	}

	// 이전 Refresh Token 은 회전과 함께 무효화된다
	_, err = svc.RefreshToken(login.RefreshToken)
	if errorx.GetCode(err) != errorx.CodeUnauthorized {
		t.Fatalf("회전된 이전 토큰이 통과했다: %v", err)
	}
}

func TestRefreshTokenRejectsAccessToken(t *testing.T) {
	svc, _ := newTestService(t)
	register(t, svc, "member@example.com")

	login, err := svc.Login(request.LoginRequest{Email: "member@example.com", Password: "password123"})
	if err != nil {
		t.Fatal(err)
	}

	_, err = svc.RefreshToken(login.AccessToken)
	if errorx.GetCode(err) != errorx.CodeUnauthorized {
		t.Fatalf("Access Token 으로 갱신이 통과했다: %v", err)
	}
}

func TestGetUserInfoHidesSecrets(t *testing.T) {
	svc, stores := newTestService(t)
	register(t, svc, "member@example.com")

	id := stores.Users.Load()[0].ID
	info, err := svc.GetUserInfo(id)
	if err != nil {
		t.Fatal(err)
	}
	if info.PasswordHash != "" || info.RefreshTokenID != "" {
		t.Fatalf("민감 필드가 노출되었다: %+v", info)
	}

	if _, err := svc.GetUserInfo("US-missing"); errorx.GetCode(err) != errorx.CodeUserNotExist {
		t.Fatalf("없는 계정 조회 코드가 다르다: %v", err)
	}
}
