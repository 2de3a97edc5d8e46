package domain

import "time"

// Value reference 로 묶이는 키-값 항목
type Value struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Reference string    `gorm:"column:reference;size:191;not null;index" json:"reference"`
	Name      string    `gorm:"column:name;size:255;not null" json:"name"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName returns the table name
func (Value) TableName() string {
	return "values"
}

// ValueRequest 값 작성/수정 요청
type ValueRequest struct {
	Reference string `json:"reference" binding:"required,max=191"`
	Name      string `json:"name" binding:"required,max=255"`
}

// ValueListParams 값 목록 필터
type ValueListParams struct {
	Reference *string
	Name      *string
	ListParams
}
