package model

import "golang.org/x/crypto/bcrypt"

// 사용자 역할
const (
	RoleApplicant = "applicant" // 지원자
	RoleAdmin     = "admin"     // 동아리 관리자
)

// LocalUser 로컬 계정 레코드
// 이메일은 대소문자 구분 없이 유일하다 (가입 시 선형 탐색으로 검증)
// 비밀번호는 bcrypt 해시만 저장하고 평문은 어디에도 남기지 않는다
type LocalUser struct {
	ID             string `json:"id"`
	Email          string `json:"email"`
	Nickname       string `json:"nickname"`
	Role           string `json:"role"`
	PasswordHash   string `json:"passwordHash"`
	RefreshTokenID string `json:"refreshTokenId,omitempty"` // 마지막 발급 Refresh Token 의 id, 중복 로그인 차단용
	CreatedAt      string `json:"createdAt"`
}

// SetPassword 평문 비밀번호를 bcrypt 로 해싱하여 저장
func (u *LocalUser) SetPassword(plaintext string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

// CheckPassword 로그인 시 입력한 비밀번호 검증
func (u *LocalUser) CheckPassword(plaintext string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(plaintext))
	return err == nil
}
