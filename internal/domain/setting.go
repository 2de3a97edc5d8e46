package domain

import "time"

// 설정 값 타입
const (
	SettingTypeString  = "string"
	SettingTypeText    = "text"
	SettingTypeNumber  = "number"
	SettingTypeBoolean = "boolean"
	SettingTypeJSON    = "json"
)

// Setting 사이트 설정
type Setting struct {
	Key         string    `gorm:"column:key;primaryKey;size:191" json:"key"`
	Value       string    `gorm:"column:value;type:text;not null" json:"value"`
	ValueType   string    `gorm:"column:value_type;size:20;not null;default:string" json:"value_type"`
	Description *string   `gorm:"column:description;type:text" json:"description"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName returns the table name
func (Setting) TableName() string {
	return "settings"
}

// SettingResponse 설정 + 타입 변환된 값
type SettingResponse struct {
	Setting
	TypedValue interface{} `json:"typed_value"`
}

// CreateSettingRequest 설정 생성 요청
type CreateSettingRequest struct {
	Key         string  `json:"key" binding:"required,max=191"`
	Value       string  `json:"value"`
	ValueType   string  `json:"value_type" binding:"omitempty,oneof=string text number boolean json"`
	Description *string `json:"description"`
}

// UpdateSettingRequest 설정 수정 요청
type UpdateSettingRequest struct {
	Value       *string `json:"value"`
	ValueType   *string `json:"value_type" binding:"omitempty,oneof=string text number boolean json"`
	Description *string `json:"description"`
}

// SettingListParams 설정 목록 필터
type SettingListParams struct {
	Key       *string
	ValueType *string
	ListParams
}
