package repository

import (
	"context"

	"github.com/atareao/bloc/internal/domain"
	"github.com/atareao/bloc/pkg/querybuilder"
	"gorm.io/gorm"
)

// TopicRepository 주제 저장소 인터페이스
type TopicRepository interface {
	List(ctx context.Context, params domain.TopicListParams) ([]domain.Topic, int64, error)
	FindByID(ctx context.Context, id int64) (*domain.Topic, error)
	Create(ctx context.Context, topic *domain.Topic) error
	Update(ctx context.Context, topic *domain.Topic) error
	Delete(ctx context.Context, id int64) (*domain.Topic, error)
}

type topicRepository struct {
	db      *gorm.DB
	builder *querybuilder.Builder
}

// NewTopicRepository 생성자
func NewTopicRepository(db *gorm.DB) TopicRepository {
	return &topicRepository{
		db:      db,
		builder: newBuilder(db, "topics", "name", "slug", "created_at", "id"),
	}
}

func (r *topicRepository) List(ctx context.Context, params domain.TopicListParams) ([]domain.Topic, int64, error) {
	return listPaged[domain.Topic](ctx, r.db, r.builder, pagedParams(params.ListParams,
		querybuilder.String("name", querybuilder.Contains, params.Name),
		querybuilder.Bool("active", params.Active),
	))
}

func (r *topicRepository) FindByID(ctx context.Context, id int64) (*domain.Topic, error) {
	var topic domain.Topic
	if err := r.db.WithContext(ctx).First(&topic, id).Error; err != nil {
		return nil, translate(err, "finding topic")
	}
	return &topic, nil
}

func (r *topicRepository) Create(ctx context.Context, topic *domain.Topic) error {
	// Select 로 active=false 도 그대로 저장
	err := r.db.WithContext(ctx).
		Select("name", "slug", "active", "created_at", "updated_at").
		Create(topic).Error
	return translate(err, "creating topic")
}

func (r *topicRepository) Update(ctx context.Context, topic *domain.Topic) error {
	return translate(r.db.WithContext(ctx).Save(topic).Error, "updating topic")
}

func (r *topicRepository) Delete(ctx context.Context, id int64) (*domain.Topic, error) {
	topic, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Delete(&domain.Topic{}, id).Error; err != nil {
		return nil, translate(err, "deleting topic")
	}
	return topic, nil
}
