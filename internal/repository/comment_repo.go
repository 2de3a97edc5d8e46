package repository

import (
	"context"

	"github.com/atareao/bloc/internal/domain"
	"github.com/atareao/bloc/pkg/querybuilder"
	"gorm.io/gorm"
)

// CommentRepository 댓글 저장소 인터페이스
type CommentRepository interface {
	List(ctx context.Context, params domain.CommentListParams) ([]domain.Comment, int64, error)
	FindByID(ctx context.Context, id int64) (*domain.Comment, error)

	Create(ctx context.Context, comment *domain.Comment) error
	Update(ctx context.Context, comment *domain.Comment) error
	// Delete 댓글과 하위 답글 전체 삭제
	Delete(ctx context.Context, id int64) (*domain.Comment, error)
	DeleteByPost(ctx context.Context, postID int64) (int64, error)
}

type commentRepository struct {
	db      *gorm.DB
	builder *querybuilder.Builder
}

// NewCommentRepository 생성자
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{
		db:      db,
		builder: newBuilder(db, "comments", "created_at", "nickname", "post_id", "parent_id"),
	}
}

func (r *commentRepository) List(ctx context.Context, params domain.CommentListParams) ([]domain.Comment, int64, error) {
	return listPaged[domain.Comment](ctx, r.db, r.builder, pagedParams(params.ListParams,
		querybuilder.Int("post_id", params.PostID),
		querybuilder.Int("parent_id", params.ParentID),
		querybuilder.String("nickname", querybuilder.Contains, params.Nickname),
		querybuilder.Bool("approved", params.Approved),
	))
}

func (r *commentRepository) FindByID(ctx context.Context, id int64) (*domain.Comment, error) {
	var comment domain.Comment
	if err := r.db.WithContext(ctx).First(&comment, id).Error; err != nil {
		return nil, translate(err, "finding comment")
	}
	return &comment, nil
}

func (r *commentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	return translate(r.db.WithContext(ctx).Create(comment).Error, "creating comment")
}

func (r *commentRepository) Update(ctx context.Context, comment *domain.Comment) error {
	return translate(r.db.WithContext(ctx).Save(comment).Error, "updating comment")
}

func (r *commentRepository) Delete(ctx context.Context, id int64) (*domain.Comment, error) {
	comment, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ids := []int64{id}
		frontier := []int64{id}
		for len(frontier) > 0 {
			var children []int64
			if err := tx.Model(&domain.Comment{}).
				Where("parent_id IN ?", frontier).
				Pluck("id", &children).Error; err != nil {
				return err
			}
			ids = append(ids, children...)
			frontier = children
		}
		return tx.Where("id IN ?", ids).Delete(&domain.Comment{}).Error
	})
	if err != nil {
		return nil, translate(err, "deleting comment")
	}
	return comment, nil
}

func (r *commentRepository) DeleteByPost(ctx context.Context, postID int64) (int64, error) {
	res := r.db.WithContext(ctx).Where("post_id = ?", postID).Delete(&domain.Comment{})
	return res.RowsAffected, translate(res.Error, "deleting comments of post")
}
