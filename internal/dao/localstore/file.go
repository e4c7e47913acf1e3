package localstore

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"club_recruit_server/internal/config"
	"club_recruit_server/pkg/aes"
	"club_recruit_server/pkg/errorx"
)

// FileBackend 키 하나를 파일 하나에 저장하는 로컬 파일 백엔드
// encryptAtRest 가 켜져 있으면 블롭을 AES-GCM 으로 암호화해서 기록한다
type FileBackend struct {
	dir string
	key []byte // nil 이면 평문 저장
}

// NewFileBackend 데이터 디렉터리를 준비하고 파일 백엔드 생성
func NewFileBackend(conf *config.StorageConfig) (*FileBackend, error) {
	dir := conf.DataDir
	if dir == "" {
		dir = "data"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errorx.Wrapf(err, errorx.CodeStorageError, "데이터 디렉터리 생성 실패 %s", dir)
	}
	b := &FileBackend{dir: dir}
	if conf.EncryptAtRest {
		b.key = aes.DeriveKey(conf.EncryptKey)
	}
	return b, nil
}

// path 저장 키를 파일 경로로 변환
// 키의 네임스페이스 구분자 ':' 는 파일명에 쓸 수 없으므로 '_' 로 치환
func (b *FileBackend) path(key string) string {
	name := strings.ReplaceAll(key, ":", "_") + ".json"
	return filepath.Join(b.dir, name)
}

// GetItem 키 조회
func (b *FileBackend) GetItem(_ context.Context, key string) (string, bool, error) {
	raw, err := os.ReadFile(b.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, errorx.Wrapf(err, errorx.CodeStorageError, "파일 읽기 실패 %s", key)
	}
	if b.key != nil {
		plain, err := aes.Decrypt(string(raw), b.key)
		if err != nil {
			return "", false, errorx.Wrapf(err, errorx.CodeStorageError, "블롭 복호화 실패 %s", key)
		}
		return string(plain), true, nil
	}
	return string(raw), true, nil
}

// SetItem 키 저장
// 임시 파일에 쓴 뒤 rename 하여 중간 상태 파일이 보이지 않게 한다
func (b *FileBackend) SetItem(_ context.Context, key string, value string) error {
	data := []byte(value)
	if b.key != nil {
		enc, err := aes.Encrypt(data, b.key)
		if err != nil {
			return errorx.Wrapf(err, errorx.CodeStorageError, "블롭 암호화 실패 %s", key)
		}
		data = []byte(enc)
	}

	path := b.path(key)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return errorx.Wrapf(err, errorx.CodeStorageError, "파일 쓰기 실패 %s", key)
	}
	if err := os.Rename(tmp, path); err != nil {
		return errorx.Wrapf(err, errorx.CodeStorageError, "파일 교체 실패 %s", key)
	}
	return nil
}

// RemoveItem 키 삭제
func (b *FileBackend) RemoveItem(_ context.Context, key string) error {
	if err := os.Remove(b.path(key)); err != nil && !os.IsNotExist(err) {
		return errorx.Wrapf(err, errorx.CodeStorageError, "파일 삭제 실패 %s", key)
	}
	return nil
}
