package domain

import "time"

// Post 게시글
type Post struct {
	ID          int64      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Title       string     `gorm:"column:title;size:255;not null" json:"title"`
	Slug        string     `gorm:"column:slug;size:255;index" json:"slug"`
	Content     string     `gorm:"column:content;type:text;not null" json:"content"`
	Excerpt     *string    `gorm:"column:excerpt;type:text" json:"excerpt"`
	Meta        *string    `gorm:"column:meta;type:text" json:"meta"`
	Outline     *string    `gorm:"column:outline;type:text" json:"outline"`
	CommentOn   *bool      `gorm:"column:comment_on" json:"comment_on"`
	Private     *bool      `gorm:"column:private" json:"private"`
	AudioURL    *string    `gorm:"column:audio_url;size:512" json:"audio_url"`
	PublishedAt *time.Time `gorm:"column:published_at" json:"published_at"`
	CreatedAt   time.Time  `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"column:updated_at" json:"updated_at"`
}

// TableName returns the table name
func (Post) TableName() string {
	return "posts"
}

// CreatePostRequest 게시글 작성 요청. title 이 없으면 본문 첫 줄 제목을 사용
type CreatePostRequest struct {
	Title       *string    `json:"title"`
	Content     string     `json:"content" binding:"required"`
	Excerpt     *string    `json:"excerpt"`
	Meta        *string    `json:"meta"`
	Outline     *string    `json:"outline"`
	CommentOn   *bool      `json:"comment_on"`
	Private     *bool      `json:"private"`
	AudioURL    *string    `json:"audio_url" binding:"omitempty,url"`
	PublishedAt *time.Time `json:"published_at"`
}

// UpdatePostRequest 게시글 수정 요청 (nil 필드는 유지)
type UpdatePostRequest struct {
	Title       *string    `json:"title"`
	Content     *string    `json:"content"`
	Excerpt     *string    `json:"excerpt"`
	Meta        *string    `json:"meta"`
	Outline     *string    `json:"outline"`
	CommentOn   *bool      `json:"comment_on"`
	Private     *bool      `json:"private"`
	AudioURL    *string    `json:"audio_url" binding:"omitempty,url"`
	PublishedAt *time.Time `json:"published_at"`
}

// PostListParams 게시글 목록 필터
type PostListParams struct {
	Title     *string
	Slug      *string
	Private   *bool
	CommentOn *bool
	ListParams
}

// Image 본문의 첫 번째 이미지
type Image struct {
	URL   string  `json:"url"`
	Title *string `json:"title"`
	Alt   *string `json:"alt"`
}

// HTMLPost 렌더링된 게시글
type HTMLPost struct {
	Post
	HTMLContent string  `json:"html_content"`
	HTMLExcerpt *string `json:"html_excerpt"`
	CleanMeta   *string `json:"clean_meta"`
	HTMLMeta    *string `json:"html_meta"`
	Image       *Image  `json:"image"`
}
