package domain

import "time"

// Comment 댓글. parent_id 가 있으면 답글
type Comment struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	PostID    int64     `gorm:"column:post_id;not null;index" json:"post_id"`
	ParentID  *int64    `gorm:"column:parent_id;index" json:"parent_id"`
	Nickname  string    `gorm:"column:nickname;size:100;not null" json:"nickname"`
	Content   string    `gorm:"column:content;type:text;not null" json:"content"`
	Approved  *bool     `gorm:"column:approved" json:"approved"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName returns the table name
func (Comment) TableName() string {
	return "comments"
}

// CreateCommentRequest 댓글 작성 요청
type CreateCommentRequest struct {
	PostID   int64  `json:"post_id" binding:"required,gt=0"`
	ParentID *int64 `json:"parent_id" binding:"omitempty,gt=0"`
	Nickname string `json:"nickname" binding:"required,max=100"`
	Content  string `json:"content" binding:"required"`
	Approved *bool  `json:"approved"`
}

// UpdateCommentRequest 댓글 수정 요청
type UpdateCommentRequest struct {
	Nickname *string `json:"nickname" binding:"omitempty,max=100"`
	Content  *string `json:"content"`
	Approved *bool   `json:"approved"`
}

// CommentListParams 댓글 목록 필터
type CommentListParams struct {
	PostID   *int64
	ParentID *int64
	Nickname *string
	Approved *bool
	ListParams
}
