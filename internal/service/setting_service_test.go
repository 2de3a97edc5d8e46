package service

import (
	"context"
	"errors"
	"testing"

	"github.com/atareao/bloc/internal/common"
	"github.com/atareao/bloc/internal/domain"
	"github.com/atareao/bloc/pkg/cache"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestValidateSetting(t *testing.T) {
	tests := []struct {
		name      string
		valueType string
		value     string
		wantErr   bool
	}{
		{"string anything", domain.SettingTypeString, "", false},
		{"text anything", domain.SettingTypeText, "long\ntext", false},
		{"number ok", domain.SettingTypeNumber, "3.5", false},
		{"number bad", domain.SettingTypeNumber, "three", true},
		{"boolean ok", domain.SettingTypeBoolean, "false", false},
		{"boolean bad", domain.SettingTypeBoolean, "yes", true},
		{"json ok", domain.SettingTypeJSON, `{"a":[1,2]}`, false},
		{"json bad", domain.SettingTypeJSON, `{a:1}`, true},
		{"unknown type", "color", "#fff", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSetting("k", tt.valueType, tt.value)
			if tt.wantErr {
				assert.ErrorIs(t, err, common.ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConvertSettingValue(t *testing.T) {
	assert.Equal(t, 20.0, ConvertSettingValue(domain.SettingTypeNumber, "20"))
	assert.Equal(t, true, ConvertSettingValue(domain.SettingTypeBoolean, "true"))
	assert.Equal(t, map[string]interface{}{"a": 1.0}, ConvertSettingValue(domain.SettingTypeJSON, `{"a":1}`))
	assert.Equal(t, "x", ConvertSettingValue(domain.SettingTypeString, "x"))
}

func TestGetSetting_CacheHit(t *testing.T) {
	repo, c := new(mockSettingRepo), new(mockCache)
	svc := NewSettingService(repo, c)
	ctx := context.Background()

	c.On("GetSetting", ctx, "posts_per_page", mock.Anything).
		Run(func(args mock.Arguments) {
			*args.Get(2).(*domain.Setting) = domain.Setting{Key: "posts_per_page", Value: "10", ValueType: domain.SettingTypeNumber}
		}).
		Return(nil)

	got, err := svc.GetSetting(ctx, "posts_per_page")

	require.NoError(t, err)
	assert.Equal(t, 10.0, got.TypedValue)
	repo.AssertNotCalled(t, "FindByKey", mock.Anything, mock.Anything)
}

func TestGetSetting_CacheMissFillsCache(t *testing.T) {
	repo, c := new(mockSettingRepo), new(mockCache)
	svc := NewSettingService(repo, c)
	ctx := context.Background()
	stored := &domain.Setting{Key: "comments_enabled", Value: "true", ValueType: domain.SettingTypeBoolean}

	c.On("GetSetting", ctx, "comments_enabled", mock.Anything).Return(redis.Nil)
	repo.On("FindByKey", ctx, "comments_enabled").Return(stored, nil)
	c.On("SetSetting", ctx, "comments_enabled", stored).Return(nil)

	got, err := svc.GetSetting(ctx, "comments_enabled")

	require.NoError(t, err)
	assert.Equal(t, true, got.TypedValue)
	c.AssertExpectations(t)
}

func TestGetSetting_WithoutRedis(t *testing.T) {
	repo := new(mockSettingRepo)
	svc := NewSettingService(repo, nil)
	ctx := context.Background()

	repo.On("FindByKey", ctx, "missing").Return(nil, common.ErrNotFound)

	_, err := svc.GetSetting(ctx, "missing")
	assert.ErrorIs(t, err, common.ErrSettingNotFound)
}

func TestCreateSetting_DefaultsToString(t *testing.T) {
	repo, c := new(mockSettingRepo), new(mockCache)
	svc := NewSettingService(repo, c)
	ctx := context.Background()

	repo.On("Create", ctx, mock.MatchedBy(func(s *domain.Setting) bool {
		return s.Key == "footer" && s.ValueType == domain.SettingTypeString
	})).Return(nil)
	c.On("InvalidateSetting", ctx, "footer").Return(nil)

	got, err := svc.CreateSetting(ctx, &domain.CreateSettingRequest{Key: " footer ", Value: "bye"})

	require.NoError(t, err)
	assert.Equal(t, "bye", got.TypedValue)
}

func TestUpdateSetting_RejectsInvalidValue(t *testing.T) {
	repo := new(mockSettingRepo)
	svc := NewSettingService(repo, cache.NewService(nil))
	ctx := context.Background()

	repo.On("FindByKey", ctx, "posts_per_page").
		Return(&domain.Setting{Key: "posts_per_page", Value: "10", ValueType: domain.SettingTypeNumber}, nil)

	_, err := svc.UpdateSetting(ctx, "posts_per_page", &domain.UpdateSettingRequest{Value: strPtr("many")})

	assert.ErrorIs(t, err, common.ErrInvalidInput)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestDeleteSetting_InvalidationFailureIgnored(t *testing.T) {
	repo, c := new(mockSettingRepo), new(mockCache)
	svc := NewSettingService(repo, c)
	ctx := context.Background()

	repo.On("Delete", ctx, "site_title").Return(&domain.Setting{Key: "site_title"}, nil)
	c.On("InvalidateSetting", ctx, "site_title").Return(errors.New("conn reset"))

	got, err := svc.DeleteSetting(ctx, "site_title")

	require.NoError(t, err)
	assert.Equal(t, "site_title", got.Key)
}
