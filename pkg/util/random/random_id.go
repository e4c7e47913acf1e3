package random

import (
	"crypto/rand"
	"math/big"
	"time"
)

// GetNowAndLenRandomString 날짜 접두사가 붙은 랜덤 문자열 생성 (레코드 ID용)
// 형식: YYMMDD + 영문/숫자 혼합
// 예시: 260830AbCdE1234567
func GetNowAndLenRandomString(length int) string {
	result := make([]byte, length)
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	charsetLen := big.NewInt(int64(len(charset)))
	for i := range result {
		n, err := rand.Int(rand.Reader, charsetLen)
		if err != nil {
			result[i] = 'x'
			continue
		}
		result[i] = charset[n.Int64()]
	}
	return time.Now().Format("060102") + string(result)
}

// NewRecordID 엔티티 종류별 접두사를 붙인 레코드 ID 생성
// 예시: NewRecordID("AP") -> "AP260830xxxxxxxxxxxxx"
// 접두사 규칙: AP 지원서, SL 면접 슬롯, NT 공지, QS 질문, US 로컬 계정
func NewRecordID(prefix string) string {
	return prefix + GetNowAndLenRandomString(13)
}
