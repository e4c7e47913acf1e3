package errorx

import (
	"errors"
	"fmt"
)

// CodeError 비즈니스 에러 코드를 포함하는 커스텀 에러
// error 인터페이스를 구현하며, 하위 에러를 감쌀 수 있고
// errors.Is / errors.As 로 추적이 가능하다
type CodeError struct {
	Code  int    // 비즈니스 에러 코드
	Msg   string // 에러 메시지
	cause error  // 감싸진 하위 에러
}

// Error Go 표준 error 인터페이스 구현
// 하위 에러가 있으면 "메시지: 하위에러" 형식, 없으면 메시지만 반환
func (e *CodeError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.cause)
	}
	return e.Msg
}

// Unwrap errors.Unwrap 인터페이스 구현, errors.Is/As 추적 지원
func (e *CodeError) Unwrap() error {
	return e.cause
}

// New 새 CodeError 생성
func New(code int, msg string) *CodeError {
	return &CodeError{
		Code: code,
		Msg:  msg,
	}
}

// Newf 포맷 메시지를 가진 CodeError 생성
func Newf(code int, format string, args ...any) *CodeError {
	return &CodeError{
		Code: code,
		Msg:  fmt.Sprintf(format, args...),
	}
}

// Wrap 하위 에러를 감싸면서 비즈니스 코드와 메시지를 부여
// 사용 예: errorx.Wrap(err, CodeStorageError, "저장소 쓰기 실패")
func Wrap(err error, code int, msg string) *CodeError {
	return &CodeError{
		Code:  code,
		Msg:   msg,
		cause: err,
	}
}

// Wrapf 하위 에러를 감싸며 포맷 메시지 지원
func Wrapf(err error, code int, format string, args ...any) *CodeError {
	return &CodeError{
		Code:  code,
		Msg:   fmt.Sprintf(format, args...),
		cause: err,
	}
}

// GetCode 에러에서 비즈니스 코드를 추출, CodeError 가 아니면 기본 코드 반환
func GetCode(err error) int {
	var codeErr *CodeError
	if errors.As(err, &codeErr) {
		return codeErr.Code
	}
	return CodeServerBusy
}

// 비즈니스 상태 코드 정의
const (
	CodeSuccess         = 1000 // 성공
	CodeInvalidParam    = 1001 // 요청 파라미터 오류
	CodeEmailExist      = 1002 // 이미 가입된 이메일
	CodeUserNotExist    = 1003 // 존재하지 않는 사용자
	CodeInvalidPassword = 1004 // 비밀번호 불일치
	CodeServerBusy      = 1005 // 서버 오류
	CodeUnauthorized    = 1006 // 인증 실패
	CodeNotFound        = 1008 // 리소스 없음
	CodeSlotFull        = 1009 // 면접 슬롯 정원 초과
	CodeAlreadyBooked   = 1010 // 이미 신청한 면접 슬롯
	CodeInvalidStatus   = 1012 // 허용되지 않는 지원 상태 전이
	CodeStorageError    = 1013 // 저장소 백엔드 오류
)

// 자주 쓰는 에러 인스턴스
// 그대로 반환해도 되고 errors.Is 비교에도 사용 가능
var (
	ErrInvalidParam = New(CodeInvalidParam, "요청 파라미터가 올바르지 않습니다")
	ErrServerBusy   = New(CodeServerBusy, "잠시 후 다시 시도해 주세요")
	ErrNotFound     = New(CodeNotFound, "요청한 리소스를 찾을 수 없습니다")
	ErrSlotFull     = New(CodeSlotFull, "해당 면접 시간은 정원이 마감되었습니다")
)

// IsNotFound "찾을 수 없음" 계열 에러인지 확인
func IsNotFound(err error) bool {
	var codeErr *CodeError
	return errors.As(err, &codeErr) && codeErr.Code == CodeNotFound
}
