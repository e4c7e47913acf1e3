package localstore

import (
	"context"
	"errors"
	"fmt"

	"club_recruit_server/internal/config"
	"club_recruit_server/pkg/errorx"

	mysqldriver "gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// KVEntry kv_entries 테이블의 행
// 컬렉션 블롭 하나가 행 하나에 대응한다
type KVEntry struct {
	K string `gorm:"column:k;primaryKey;type:varchar(191)"`
	V string `gorm:"column:v;type:longtext"`
}

// TableName 테이블명 지정
func (KVEntry) TableName() string {
	return "kv_entries"
}

// GormBackend MySQL 의 키-값 테이블에 블롭을 저장하는 백엔드
type GormBackend struct {
	db *gorm.DB
}

// NewGormBackend MySQL 에 연결하고 테이블을 마이그레이션한 뒤 백엔드 생성
func NewGormBackend(conf *config.MysqlConfig) (*GormBackend, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		conf.User,
		conf.Password,
		conf.Host,
		conf.Port,
		conf.DatabaseName,
	)

	db, err := gorm.Open(mysqldriver.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, errorx.Wrap(err, errorx.CodeStorageError, "MySQL 연결 실패")
	}
	if err := db.AutoMigrate(&KVEntry{}); err != nil {
		return nil, errorx.Wrap(err, errorx.CodeStorageError, "kv_entries 마이그레이션 실패")
	}
	return &GormBackend{db: db}, nil
}

// GetItem 키 조회
func (b *GormBackend) GetItem(ctx context.Context, key string) (string, bool, error) {
	var entry KVEntry
	if err := b.db.WithContext(ctx).First(&entry, "k = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, errorx.Wrapf(err, errorx.CodeStorageError, "kv 조회 실패 %s", key)
	}
	return entry.V, true, nil
}

// SetItem 키 저장 (있으면 덮어쓰기)
func (b *GormBackend) SetItem(ctx context.Context, key string, value string) error {
	entry := KVEntry{K: key, V: value}
	err := b.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&entry).Error
	if err != nil {
		return errorx.Wrapf(err, errorx.CodeStorageError, "kv 저장 실패 %s", key)
	}
	return nil
}

// RemoveItem 키 삭제
func (b *GormBackend) RemoveItem(ctx context.Context, key string) error {
	if err := b.db.WithContext(ctx).Delete(&KVEntry{}, "k = ?", key).Error; err != nil {
		return errorx.Wrapf(err, errorx.CodeStorageError, "kv 삭제 실패 %s", key)
	}
	return nil
}
