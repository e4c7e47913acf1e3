// Package aes 파일 백엔드의 저장 블롭 암호화에 사용하는 AES-GCM 유틸
package aes

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"
)

// DeriveKey 임의 길이의 패스프레이즈에서 32바이트 AES 키를 유도
func DeriveKey(passphrase string) []byte {
	sum := sha256.Sum256([]byte(passphrase))
	return sum[:]
}

// Encrypt 데이터를 AES-GCM 으로 암호화하고 base64 문자열로 반환
// GCM 의 Nonce 는 매 호출마다 새로 생성되어 암호문 앞에 붙는다
func Encrypt(data []byte, key []byte) (string, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return "", err
	}

	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, aesGCM.NonceSize())
	if _, err = io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}

	// Seal(dst, nonce, plaintext, additionalData)
	ciphertext := aesGCM.Seal(nonce, nonce, data, nil)

	return base64.StdEncoding.EncodeToString(ciphertext), nil
}

// Decrypt Encrypt 가 만든 base64 문자열을 복호화
func Decrypt(encoded string, key []byte) ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	nonceSize := aesGCM.NonceSize()
	if len(raw) < nonceSize {
		return nil, fmt.Errorf("ciphertext shorter than nonce")
	}

	nonce, ciphertext := raw[:nonceSize], raw[nonceSize:]
	return aesGCM.Open(nil, nonce, ciphertext, nil)
}
