package respond

// RegisterRespond 회원가입 응답
type RegisterRespond struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Nickname string `json:"nickname"`
	Role     string `json:"role"`
}

// LoginRespond 로그인 응답 (계정 정보 + 토큰 쌍)
type LoginRespond struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Nickname     string `json:"nickname"`
	Role         string `json:"role"`
	CreatedAt    string `json:"created_at"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// RefreshTokenRespond 토큰 갱신 응답
// Refresh Token 도 회전되어 새 값이 내려간다
type RefreshTokenRespond struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
