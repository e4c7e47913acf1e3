// Package config 애플리케이션 설정 로딩과 관리를 담당
// TOML 형식 설정 파일을 사용하며, 여러 경로를 순서대로 탐색한다
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// MainConfig 기본 설정
type MainConfig struct {
	AppName string `toml:"appName"` // 애플리케이션 이름, 로그 식별 등에 사용
	Host    string `toml:"host"`    // 서버 바인딩 주소, 예: "0.0.0.0"
	Port    int    `toml:"port"`    // 서버 포트, 예: 8000
}

// StorageConfig 로컬 저장소 백엔드 설정
// Backend 값에 따라 사용할 구현이 결정된다
type StorageConfig struct {
	Backend       string `toml:"backend"`       // "memory" | "file" | "redis" | "mysql"
	DataDir       string `toml:"dataDir"`       // file 백엔드의 데이터 디렉터리
	EncryptAtRest bool   `toml:"encryptAtRest"` // file 백엔드 블롭 암호화 여부
	EncryptKey    string `toml:"encryptKey"`    // 암호화 패스프레이즈
}

// MysqlConfig MySQL 연결 설정 (mysql 백엔드 사용 시)
type MysqlConfig struct {
	Host         string `toml:"host"`
	Port         int    `toml:"port"`
	User         string `toml:"user"`
	Password     string `toml:"password"`
	DatabaseName string `toml:"databaseName"`
}

// RedisConfig Redis 연결 설정 (redis 백엔드 사용 시)
type RedisConfig struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	Password string `toml:"password"` // 비밀번호 없으면 빈 값
	Db       int    `toml:"db"`
}

// LogConfig 로그 설정, lumberjack 으로 로그 로테이션 수행
type LogConfig struct {
	LogPath    string `toml:"logPath"`    // 로그 파일 디렉터리
	FileName   string `toml:"fileName"`   // 로그 파일명
	MaxSize    int    `toml:"maxSize"`    // 로그 파일 하나의 최대 크기 (MB)
	MaxBackups int    `toml:"maxBackups"` // 보존할 이전 로그 파일 개수
	MaxAge     int    `toml:"maxAge"`     // 이전 로그 파일 보존 일수
	Level      string `toml:"level"`      // debug, info, warn, error
}

// KafkaConfig 변경 이벤트 미러링 설정
// EventMode 가 "kafka" 일 때만 활성화되며, 인프로세스 알림 계약에는 영향이 없다
type KafkaConfig struct {
	EventMode   string `toml:"eventMode"`   // "off" 또는 "kafka"
	HostPort    string `toml:"hostPort"`    // Kafka 주소, 예: "localhost:9092"
	ChangeTopic string `toml:"changeTopic"` // 변경 이벤트 토픽
}

// JWTConfig JWT 인증 설정
type JWTConfig struct {
	Secret             string `toml:"secret"`             // 서명 키, 32자 이상 권장
	AccessTokenExpiry  int    `toml:"accessTokenExpiry"`  // Access Token 유효기간 (분)
	RefreshTokenExpiry int    `toml:"refreshTokenExpiry"` // Refresh Token 유효기간 (시간)
}

// Config 애플리케이션 전체 설정
type Config struct {
	MainConfig    `toml:"mainConfig"`
	StorageConfig `toml:"storageConfig"`
	MysqlConfig   `toml:"mysqlConfig"`
	RedisConfig   `toml:"redisConfig"`
	LogConfig     `toml:"logConfig"`
	KafkaConfig   `toml:"kafkaConfig"`
	JWTConfig     `toml:"jwtConfig"`
}

// config 전역 설정 싱글턴, 지연 로딩
var config *Config

// LoadConfig 후보 경로를 순서대로 시도하여 설정 파일 로딩
// 첫 번째로 읽히는 파일을 사용한다
func LoadConfig() error {
	if config == nil {
		config = new(Config)
	}
	paths := []string{
		"configs/config_local.toml", // 로컬 개발 설정 (우선)
		"configs/config.toml",
		"../../configs/config_local.toml", // 하위 디렉터리에서 실행할 때
		"../../configs/config.toml",
	}

	for _, path := range paths {
		if _, err := toml.DecodeFile(path, config); err == nil {
			return nil
		}
	}

	return fmt.Errorf("could not find configuration file in any of the search paths")
}

// GetConfig 전역 설정 인스턴스 반환 (싱글턴)
// 최초 호출 시 설정 파일을 로딩한다
func GetConfig() *Config {
	if config == nil {
		config = new(Config)
		_ = LoadConfig() // 로딩 실패 시 기본값 사용
	}
	return config
}
