package repository

import (
	"context"

	"github.com/atareao/bloc/internal/domain"
	"github.com/atareao/bloc/pkg/querybuilder"
	"gorm.io/gorm"
)

// PostRepository 게시글 저장소 인터페이스
type PostRepository interface {
	// 조회
	List(ctx context.Context, params domain.PostListParams) ([]domain.Post, int64, error)
	FindByID(ctx context.Context, id int64) (*domain.Post, error)
	FindBySlug(ctx context.Context, slug string) (*domain.Post, error)

	// 작성/수정/삭제
	Create(ctx context.Context, post *domain.Post) error
	Update(ctx context.Context, post *domain.Post) error
	Delete(ctx context.Context, id int64) (*domain.Post, error)
}

// postRepository GORM 구현체
type postRepository struct {
	db      *gorm.DB
	builder *querybuilder.Builder
}

// NewPostRepository 생성자
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{
		db:      db,
		builder: newBuilder(db, "posts", "title", "id", "published_at", "created_at", "slug"),
	}
}

// List 게시글 목록 (title 부분일치, slug/private/comment_on 일치)
func (r *postRepository) List(ctx context.Context, params domain.PostListParams) ([]domain.Post, int64, error) {
	return listPaged[domain.Post](ctx, r.db, r.builder, pagedParams(params.ListParams,
		querybuilder.String("title", querybuilder.Contains, params.Title),
		querybuilder.String("slug", querybuilder.Equal, params.Slug),
		querybuilder.Bool("private", params.Private),
		querybuilder.Bool("comment_on", params.CommentOn),
	))
}

// FindByID ID로 조회
func (r *postRepository) FindByID(ctx context.Context, id int64) (*domain.Post, error) {
	var post domain.Post
	if err := r.db.WithContext(ctx).First(&post, id).Error; err != nil {
		return nil, translate(err, "finding post")
	}
	return &post, nil
}

// FindBySlug slug로 조회 (중복 slug 는 가장 먼저 만든 글)
func (r *postRepository) FindBySlug(ctx context.Context, slug string) (*domain.Post, error) {
	var post domain.Post
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).Order("id").First(&post).Error; err != nil {
		return nil, translate(err, "finding post by slug")
	}
	return &post, nil
}

// Create 게시글 작성
func (r *postRepository) Create(ctx context.Context, post *domain.Post) error {
	return translate(r.db.WithContext(ctx).Create(post).Error, "creating post")
}

// Update 전체 필드 저장
func (r *postRepository) Update(ctx context.Context, post *domain.Post) error {
	return translate(r.db.WithContext(ctx).Save(post).Error, "updating post")
}

// Delete 삭제 후 삭제된 게시글 반환
func (r *postRepository) Delete(ctx context.Context, id int64) (*domain.Post, error) {
	post, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Delete(&domain.Post{}, id).Error; err != nil {
		return nil, translate(err, "deleting post")
	}
	return post, nil
}
