package repository

import (
	"context"

	"github.com/atareao/bloc/internal/domain"
	"github.com/atareao/bloc/pkg/querybuilder"
	"gorm.io/gorm"
)

// ValueRepository 값 저장소 인터페이스
type ValueRepository interface {
	List(ctx context.Context, params domain.ValueListParams) ([]domain.Value, int64, error)
	ListByReference(ctx context.Context, reference string) ([]domain.Value, error)
	FindByID(ctx context.Context, id int64) (*domain.Value, error)
	Create(ctx context.Context, value *domain.Value) error
	Update(ctx context.Context, value *domain.Value) error
	Delete(ctx context.Context, id int64) (*domain.Value, error)
}

type valueRepository struct {
	db      *gorm.DB
	builder *querybuilder.Builder
}

// NewValueRepository 생성자
func NewValueRepository(db *gorm.DB) ValueRepository {
	return &valueRepository{
		db:      db,
		builder: newBuilder(db, "values", "reference", "name", "created_at", "id"),
	}
}

func (r *valueRepository) List(ctx context.Context, params domain.ValueListParams) ([]domain.Value, int64, error) {
	return listPaged[domain.Value](ctx, r.db, r.builder, pagedParams(params.ListParams,
		querybuilder.String("reference", querybuilder.Equal, params.Reference),
		querybuilder.String("name", querybuilder.Contains, params.Name),
	))
}

// ListByReference reference 에 속한 값 전체 (이름순)
func (r *valueRepository) ListByReference(ctx context.Context, reference string) ([]domain.Value, error) {
	values := make([]domain.Value, 0)
	err := r.db.WithContext(ctx).
		Where("reference = ?", reference).
		Order("name").
		Find(&values).Error
	if err != nil {
		return nil, translate(err, "listing values by reference")
	}
	return values, nil
}

func (r *valueRepository) FindByID(ctx context.Context, id int64) (*domain.Value, error) {
	var value domain.Value
	if err := r.db.WithContext(ctx).First(&value, id).Error; err != nil {
		return nil, translate(err, "finding value")
	}
	return &value, nil
}

func (r *valueRepository) Create(ctx context.Context, value *domain.Value) error {
	return translate(r.db.WithContext(ctx).Create(value).Error, "creating value")
}

func (r *valueRepository) Update(ctx context.Context, value *domain.Value) error {
	return translate(r.db.WithContext(ctx).Save(value).Error, "updating value")
}

func (r *valueRepository) Delete(ctx context.Context, id int64) (*domain.Value, error) {
	value, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Delete(&domain.Value{}, id).Error; err != nil {
		return nil, translate(err, "deleting value")
	}
	return value, nil
}
