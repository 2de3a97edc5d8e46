package migration

import (
	"github.com/atareao/bloc/internal/domain"
	"github.com/rotisserie/eris"
	"gorm.io/gorm"
)

// Models 마이그레이션 대상 테이블
func Models() []interface{} {
	return []interface{}{
		&domain.Post{},
		&domain.Tag{},
		&domain.PostTag{},
		&domain.Topic{},
		&domain.Comment{},
		&domain.Value{},
		&domain.Setting{},
	}
}

// Run executes AutoMigrate for every table and seeds default settings if empty.
func Run(db *gorm.DB) error {
	// 1. AutoMigrate - 테이블 없으면 생성, 있으면 컬럼/인덱스만 보강
	if err := db.AutoMigrate(Models()...); err != nil {
		return eris.Wrap(err, "auto migrating schema")
	}

	// 2. Seed - settings 테이블이 비어있을 때만 기본 설정 삽입
	var count int64
	if err := db.Model(&domain.Setting{}).Count(&count).Error; err != nil {
		return eris.Wrap(err, "counting settings")
	}
	if count == 0 {
		return seedSettings(db)
	}

	return nil
}

func seedSettings(db *gorm.DB) error {
	strPtr := func(v string) *string { return &v }

	settings := []domain.Setting{
		{Key: "site_title", Value: "bloc", ValueType: domain.SettingTypeString, Description: strPtr("사이트 제목")},
		{Key: "site_description", Value: "", ValueType: domain.SettingTypeText, Description: strPtr("사이트 설명")},
		{Key: "posts_per_page", Value: "20", ValueType: domain.SettingTypeNumber, Description: strPtr("목록 기본 페이지 크기")},
		{Key: "comments_enabled", Value: "true", ValueType: domain.SettingTypeBoolean, Description: strPtr("댓글 허용")},
	}

	return eris.Wrap(db.Create(&settings).Error, "seeding settings")
}
