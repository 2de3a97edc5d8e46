package repository

import (
	"context"

	"github.com/atareao/bloc/internal/domain"
	"github.com/atareao/bloc/pkg/querybuilder"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SettingRepository 설정 저장소 인터페이스
type SettingRepository interface {
	List(ctx context.Context, params domain.SettingListParams) ([]domain.Setting, int64, error)
	FindByKey(ctx context.Context, key string) (*domain.Setting, error)
	Create(ctx context.Context, setting *domain.Setting) error
	Update(ctx context.Context, setting *domain.Setting) error
	Delete(ctx context.Context, key string) (*domain.Setting, error)
}

type settingRepository struct {
	db      *gorm.DB
	builder *querybuilder.Builder
}

// NewSettingRepository 생성자
func NewSettingRepository(db *gorm.DB) SettingRepository {
	return &settingRepository{
		db:      db,
		builder: newBuilder(db, "settings", "key", "value_type", "updated_at"),
	}
}

func (r *settingRepository) List(ctx context.Context, params domain.SettingListParams) ([]domain.Setting, int64, error) {
	return listPaged[domain.Setting](ctx, r.db, r.builder, pagedParams(params.ListParams,
		querybuilder.String("key", querybuilder.Contains, params.Key),
		querybuilder.String("value_type", querybuilder.Equal, params.ValueType),
	))
}

func (r *settingRepository) FindByKey(ctx context.Context, key string) (*domain.Setting, error) {
	var setting domain.Setting
	// key 는 예약어라 clause 로 인용. 빈 값도 항상 바인딩
	cond := clause.Eq{Column: clause.Column{Name: "key"}, Value: key}
	if err := r.db.WithContext(ctx).Where(cond).First(&setting).Error; err != nil {
		return nil, translate(err, "finding setting")
	}
	return &setting, nil
}

func (r *settingRepository) Create(ctx context.Context, setting *domain.Setting) error {
	return translate(r.db.WithContext(ctx).Create(setting).Error, "creating setting")
}

func (r *settingRepository) Update(ctx context.Context, setting *domain.Setting) error {
	return translate(r.db.WithContext(ctx).Save(setting).Error, "updating setting")
}

func (r *settingRepository) Delete(ctx context.Context, key string) (*domain.Setting, error) {
	setting, err := r.FindByKey(ctx, key)
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Delete(setting).Error; err != nil {
		return nil, translate(err, "deleting setting")
	}
	return setting, nil
}
