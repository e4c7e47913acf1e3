// Package user 로컬 계정 비즈니스 로직
// 계정도 다른 도메인과 같은 영속 컬렉션에 저장된다 (시드 계정은 없음)
package user

import (
	"strings"
	"time"

	"club_recruit_server/internal/dao/localstore"
	"club_recruit_server/internal/dto/request"
	"club_recruit_server/internal/dto/respond"
	"club_recruit_server/internal/model"
	"club_recruit_server/pkg/errorx"
	"club_recruit_server/pkg/util/jwt"
	"club_recruit_server/pkg/util/random"
)

// userService UserService 구현
type userService struct {
	stores *localstore.Stores
}

// NewUserService 생성자
func NewUserService(stores *localstore.Stores) *userService {
	return &userService{stores: stores}
}

// findByEmail 이메일로 계정 조회 (대소문자 무시)
func (s *userService) findByEmail(email string) *model.LocalUser {
	for _, u := range s.stores.Users.Load() {
		if strings.EqualFold(u.Email, email) {
			cp := u
			return &cp
		}
	}
	return nil
}

// findByID id 로 계정 조회
func (s *userService) findByID(id string) *model.LocalUser {
	for _, u := range s.stores.Users.Load() {
		if u.ID == id {
			cp := u
			return &cp
		}
	}
	return nil
}

// Register 회원가입
// 이메일 중복 검사와 레코드 추가가 같은 Update 안에서 수행되어
// 동시에 같은 이메일로 가입해도 한 쪽만 성공한다
func (s *userService) Register(req request.RegisterRequest) (*respond.RegisterRespond, error) {
	role := req.Role
	if role == "" {
		role = model.RoleApplicant
	}

	user := model.LocalUser{
		ID:        random.NewRecordID("US"),
		Email:     req.Email,
		Nickname:  req.Nickname,
		Role:      role,
		CreatedAt: time.Now().Format("2006-01-02"),
	}
	if err := user.SetPassword(req.Password); err != nil {
		return nil, errorx.Wrap(err, errorx.CodeServerBusy, "비밀번호 해싱에 실패했습니다")
	}

	_, err := s.stores.Users.Update(func(items []model.LocalUser) ([]model.LocalUser, error) {
		for _, u := range items {
			if strings.EqualFold(u.Email, req.Email) {
				return nil, errorx.New(errorx.CodeEmailExist, "이미 가입된 이메일입니다")
			}
		}
		return append(items, user), nil
	})
	if err != nil {
		return nil, err
	}

	return &respond.RegisterRespond{
		ID:       user.ID,
		Email:    user.Email,
		Nickname: user.Nickname,
		Role:     user.Role,
	}, nil
}

// Login 로그인, 토큰 쌍 발급
// 새 Refresh Token 의 id 를 계정에 고정하여 이전 세션의 갱신 요청을 무효화한다
func (s *userService) Login(req request.LoginRequest) (*respond.LoginRespond, error) {
	user := s.findByEmail(req.Email)
	if user == nil {
		return nil, errorx.New(errorx.CodeUserNotExist, "가입되지 않은 이메일입니다")
	}
	if !user.CheckPassword(req.Password) {
		return nil, errorx.New(errorx.CodeInvalidPassword, "비밀번호가 일치하지 않습니다")
	}

	accessToken, refreshToken, err := s.issueTokens(user.ID)
	if err != nil {
		return nil, err
	}

	return &respond.LoginRespond{
		ID:           user.ID,
		Email:        user.Email,
		Nickname:     user.Nickname,
		Role:         user.Role,
		CreatedAt:    user.CreatedAt,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// issueTokens 토큰 쌍 생성 후 Refresh Token id 를 계정에 기록
func (s *userService) issueTokens(userID string) (accessToken, refreshToken string, err error) {
	accessToken, err = jwt.GenerateAccessToken(userID)
	if err != nil {
		return "", "", errorx.Wrap(err, errorx.CodeServerBusy, "토큰 생성에 실패했습니다")
	}
	refreshToken, tokenID, err := jwt.GenerateRefreshToken(userID)
	if err != nil {
		return "", "", errorx.Wrap(err, errorx.CodeServerBusy, "토큰 생성에 실패했습니다")
	}

	_, err = s.stores.Users.Update(func(items []model.LocalUser) ([]model.LocalUser, error) {
		for i := range items {
			if items[i].ID == userID {
				items[i].RefreshTokenID = tokenID
				return items, nil
			}
		}
		return nil, errorx.New(errorx.CodeUserNotExist, "계정을 찾을 수 없습니다")
	})
	if err != nil {
		return "", "", err
	}
	return accessToken, refreshToken, nil
}

// RefreshToken Access Token 갱신
// 계정에 고정된 tokenID 와 일치하는 최신 Refresh Token 만 받아들이고, 쌍 전체를 회전한다
func (s *userService) RefreshToken(refreshToken string) (*respond.RefreshTokenRespond, error) {
	claims, err := jwt.ParseToken(refreshToken)
	if err != nil {
		return nil, errorx.New(errorx.CodeUnauthorized, "유효하지 않은 토큰입니다")
	}
	if claims.Subject != "refresh_token" {
		return nil, errorx.New(errorx.CodeUnauthorized, "Refresh Token 이 아닙니다")
	}

	user := s.findByID(claims.UserID)
	if user == nil {
		return nil, errorx.New(errorx.CodeUserNotExist, "계정을 찾을 수 없습니다")
	}
	if user.RefreshTokenID == "" || user.RefreshTokenID != claims.TokenID {
		return nil, errorx.New(errorx.CodeUnauthorized, "다른 기기에서 로그인되어 만료된 토큰입니다")
	}

	accessToken, refreshToken, err := s.issueTokens(user.ID)
	if err != nil {
		return nil, err
	}
	return &respond.RefreshTokenRespond{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// GetUserInfo 계정 단건 조회
func (s *userService) GetUserInfo(id string) (*model.LocalUser, error) {
	user := s.findByID(id)
	if user == nil {
		return nil, errorx.New(errorx.CodeUserNotExist, "계정을 찾을 수 없습니다")
	}
	user.PasswordHash = ""
	user.RefreshTokenID = ""
	return user, nil
}
