package repository

import (
	"context"

	"github.com/atareao/bloc/internal/domain"
	"github.com/atareao/bloc/pkg/querybuilder"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TagRepository 태그 저장소 인터페이스
type TagRepository interface {
	List(ctx context.Context, params domain.TagListParams) ([]domain.Tag, int64, error)
	FindByID(ctx context.Context, id int64) (*domain.Tag, error)
	FindBySlug(ctx context.Context, slug string) (*domain.Tag, error)
	ListByPost(ctx context.Context, postID int64) ([]domain.Tag, error)

	Create(ctx context.Context, tag *domain.Tag) error
	Update(ctx context.Context, tag *domain.Tag) error
	Delete(ctx context.Context, id int64) (*domain.Tag, error)

	// UpsertBySlug slug 기준으로 없으면 만들고, 저장된 태그를 반환
	UpsertBySlug(ctx context.Context, tag, slug string) (*domain.Tag, error)
}

type tagRepository struct {
	db      *gorm.DB
	builder *querybuilder.Builder
}

// NewTagRepository 생성자
func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{
		db:      db,
		builder: newBuilder(db, "tags", "tag", "slug", "created_at", "id"),
	}
}

func (r *tagRepository) List(ctx context.Context, params domain.TagListParams) ([]domain.Tag, int64, error) {
	return listPaged[domain.Tag](ctx, r.db, r.builder, pagedParams(params.ListParams,
		querybuilder.String("tag", querybuilder.Contains, params.Tag),
		querybuilder.String("slug", querybuilder.Contains, params.Slug),
	))
}

func (r *tagRepository) FindByID(ctx context.Context, id int64) (*domain.Tag, error) {
	var tag domain.Tag
	if err := r.db.WithContext(ctx).First(&tag, id).Error; err != nil {
		return nil, translate(err, "finding tag")
	}
	return &tag, nil
}

func (r *tagRepository) FindBySlug(ctx context.Context, slug string) (*domain.Tag, error) {
	var tag domain.Tag
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&tag).Error; err != nil {
		return nil, translate(err, "finding tag by slug")
	}
	return &tag, nil
}

// ListByPost 게시글에 연결된 태그
func (r *tagRepository) ListByPost(ctx context.Context, postID int64) ([]domain.Tag, error) {
	tags := make([]domain.Tag, 0)
	err := r.db.WithContext(ctx).
		Joins("JOIN post_tags ON post_tags.tag_id = tags.id").
		Where("post_tags.post_id = ?", postID).
		Order("tags.tag").
		Find(&tags).Error
	if err != nil {
		return nil, translate(err, "listing tags of post")
	}
	return tags, nil
}

func (r *tagRepository) Create(ctx context.Context, tag *domain.Tag) error {
	return translate(r.db.WithContext(ctx).Create(tag).Error, "creating tag")
}

func (r *tagRepository) Update(ctx context.Context, tag *domain.Tag) error {
	return translate(r.db.WithContext(ctx).Save(tag).Error, "updating tag")
}

func (r *tagRepository) Delete(ctx context.Context, id int64) (*domain.Tag, error) {
	tag, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Delete(&domain.Tag{}, id).Error; err != nil {
		return nil, translate(err, "deleting tag")
	}
	return tag, nil
}

// UpsertBySlug INSERT ... ON CONFLICT DO NOTHING 후 slug 로 다시 읽는다
func (r *tagRepository) UpsertBySlug(ctx context.Context, tag, slug string) (*domain.Tag, error) {
	row := &domain.Tag{Tag: tag, Slug: slug}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(row).Error
	if err != nil {
		return nil, translate(err, "upserting tag")
	}
	return r.FindBySlug(ctx, slug)
}
