package service

import (
	"encoding/json"
	"strconv"

	"github.com/atareao/bloc/internal/common"
	"github.com/atareao/bloc/internal/domain"
)

// ValidateSetting value_type 기반 설정값 검증
func ValidateSetting(key, valueType, value string) error {
	switch valueType {
	case domain.SettingTypeString, domain.SettingTypeText:
		// 모든 문자열 허용
		return nil

	case domain.SettingTypeNumber:
		if _, err := strconv.ParseFloat(value, 64); err != nil {
			return common.Invalid("setting %s: %q is not a valid number", key, value)
		}
		return nil

	case domain.SettingTypeBoolean:
		if value != "true" && value != "false" {
			return common.Invalid("setting %s: %q is not a valid boolean (must be \"true\" or \"false\")", key, value)
		}
		return nil

	case domain.SettingTypeJSON:
		if !json.Valid([]byte(value)) {
			return common.Invalid("setting %s: value is not valid JSON", key)
		}
		return nil

	default:
		return common.Invalid("setting %s: unknown value_type %q", key, valueType)
	}
}

// ConvertSettingValue string 값을 value_type 에 맞게 변환
func ConvertSettingValue(valueType, raw string) interface{} {
	switch valueType {
	case domain.SettingTypeNumber:
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			return v
		}
		return raw
	case domain.SettingTypeBoolean:
		return raw == "true"
	case domain.SettingTypeJSON:
		var v interface{}
		if err := json.Unmarshal([]byte(raw), &v); err == nil {
			return v
		}
		return raw
	default:
		return raw
	}
}
