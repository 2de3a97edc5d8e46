package domain

import "time"

// Tag 태그. slug 는 tag 에서 파생
type Tag struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Tag       string    `gorm:"column:tag;size:191;not null;uniqueIndex" json:"tag"`
	Slug      string    `gorm:"column:slug;size:191;not null;uniqueIndex" json:"slug"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName returns the table name
func (Tag) TableName() string {
	return "tags"
}

// PostTag 게시글-태그 연결
type PostTag struct {
	PostID int64 `gorm:"column:post_id;primaryKey;autoIncrement:false" json:"post_id"`
	TagID  int64 `gorm:"column:tag_id;primaryKey;autoIncrement:false;index" json:"tag_id"`
}

// TableName returns the table name
func (PostTag) TableName() string {
	return "post_tags"
}

// TagRequest 태그 작성/수정 요청
type TagRequest struct {
	Tag string `json:"tag" binding:"required,max=191"`
}

// TagListParams 태그 목록 필터
type TagListParams struct {
	Tag  *string
	Slug *string
	ListParams
}
