package domain

import "time"

// Topic 주제
type Topic struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"column:name;size:255;not null" json:"name"`
	Slug      string    `gorm:"column:slug;size:191;not null;uniqueIndex" json:"slug"`
	Active    bool      `gorm:"column:active;not null;default:true" json:"active"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName returns the table name
func (Topic) TableName() string {
	return "topics"
}

// CreateTopicRequest 주제 생성 요청. slug 가 없으면 name 에서 파생
type CreateTopicRequest struct {
	Name   string  `json:"name" binding:"required,max=255"`
	Slug   *string `json:"slug"`
	Active *bool   `json:"active"`
}

// UpdateTopicRequest 주제 수정 요청
type UpdateTopicRequest struct {
	Name   *string `json:"name" binding:"omitempty,max=255"`
	Slug   *string `json:"slug"`
	Active *bool   `json:"active"`
}

// TopicListParams 주제 목록 필터
type TopicListParams struct {
	Name   *string
	Active *bool
	ListParams
}
