package repository

import (
	"context"

	"github.com/atareao/bloc/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PostTagRepository 게시글-태그 연결 저장소
type PostTagRepository interface {
	Assign(ctx context.Context, postID int64, tagIDs []int64) error
	DeleteByPost(ctx context.Context, postID int64) (int64, error)
	DeleteByTag(ctx context.Context, tagID int64) (int64, error)
}

type postTagRepository struct {
	db *gorm.DB
}

// NewPostTagRepository 생성자
func NewPostTagRepository(db *gorm.DB) PostTagRepository {
	return &postTagRepository{db: db}
}

// Assign 연결 추가. 이미 있는 연결은 무시
func (r *postTagRepository) Assign(ctx context.Context, postID int64, tagIDs []int64) error {
	if len(tagIDs) == 0 {
		return nil
	}
	rows := make([]domain.PostTag, 0, len(tagIDs))
	for _, id := range tagIDs {
		rows = append(rows, domain.PostTag{PostID: postID, TagID: id})
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&rows).Error
	return translate(err, "assigning tags to post")
}

func (r *postTagRepository) DeleteByPost(ctx context.Context, postID int64) (int64, error) {
	res := r.db.WithContext(ctx).Where("post_id = ?", postID).Delete(&domain.PostTag{})
	return res.RowsAffected, translate(res.Error, "deleting post tags")
}

func (r *postTagRepository) DeleteByTag(ctx context.Context, tagID int64) (int64, error) {
	res := r.db.WithContext(ctx).Where("tag_id = ?", tagID).Delete(&domain.PostTag{})
	return res.RowsAffected, translate(res.Error, "deleting tag links")
}
