package service

import (
	"context"
	"errors"
	"strings"

	"github.com/atareao/bloc/internal/common"
	"github.com/atareao/bloc/internal/domain"
	"github.com/atareao/bloc/internal/repository"
	"github.com/atareao/bloc/pkg/cache"
)

// SettingService business logic for site settings
type SettingService interface {
	ListSettings(ctx context.Context, params domain.SettingListParams) ([]domain.Setting, int64, error)
	GetSetting(ctx context.Context, key string) (*domain.SettingResponse, error)
	CreateSetting(ctx context.Context, req *domain.CreateSettingRequest) (*domain.SettingResponse, error)
	UpdateSetting(ctx context.Context, key string, req *domain.UpdateSettingRequest) (*domain.SettingResponse, error)
	DeleteSetting(ctx context.Context, key string) (*domain.Setting, error)
}

type settingService struct {
	repo  repository.SettingRepository
	cache cache.Service
}

// NewSettingService creates a new SettingService. cache may be nil.
func NewSettingService(repo repository.SettingRepository, cacheSvc cache.Service) SettingService {
	if cacheSvc == nil {
		cacheSvc = cache.NewService(nil)
	}
	return &settingService{repo: repo, cache: cacheSvc}
}

func settingNotFound(err error) error {
	if errors.Is(err, common.ErrNotFound) {
		return common.ErrSettingNotFound
	}
	return err
}

func toSettingResponse(s *domain.Setting) *domain.SettingResponse {
	return &domain.SettingResponse{
		Setting:    *s,
		TypedValue: ConvertSettingValue(s.ValueType, s.Value),
	}
}

func (s *settingService) ListSettings(ctx context.Context, params domain.SettingListParams) ([]domain.Setting, int64, error) {
	return s.repo.List(ctx, params)
}

// GetSetting 캐시 우선 조회. 캐시 오류는 DB 조회로 대체
func (s *settingService) GetSetting(ctx context.Context, key string) (*domain.SettingResponse, error) {
	var cached domain.Setting
	if err := s.cache.GetSetting(ctx, key, &cached); err == nil {
		return toSettingResponse(&cached), nil
	} else if !cache.IsMiss(err) {
		secondaryFailed(StepSettingCacheSet, err, 0)
	}

	setting, err := s.repo.FindByKey(ctx, key)
	if err != nil {
		return nil, settingNotFound(err)
	}

	if err := s.cache.SetSetting(ctx, key, setting); err != nil {
		secondaryFailed(StepSettingCacheSet, err, 0)
	}
	return toSettingResponse(setting), nil
}

func (s *settingService) CreateSetting(ctx context.Context, req *domain.CreateSettingRequest) (*domain.SettingResponse, error) {
	key := strings.TrimSpace(req.Key)
	if key == "" {
		return nil, common.Invalid("setting key cannot be empty")
	}
	valueType := req.ValueType
	if valueType == "" {
		valueType = domain.SettingTypeString
	}
	if err := ValidateSetting(key, valueType, req.Value); err != nil {
		return nil, err
	}

	setting := &domain.Setting{
		Key:         key,
		Value:       req.Value,
		ValueType:   valueType,
		Description: req.Description,
	}
	if err := s.repo.Create(ctx, setting); err != nil {
		return nil, err
	}
	s.invalidate(ctx, key)
	return toSettingResponse(setting), nil
}

func (s *settingService) UpdateSetting(ctx context.Context, key string, req *domain.UpdateSettingRequest) (*domain.SettingResponse, error) {
	setting, err := s.repo.FindByKey(ctx, key)
	if err != nil {
		return nil, settingNotFound(err)
	}

	if req.Value != nil {
		setting.Value = *req.Value
	}
	if req.ValueType != nil {
		setting.ValueType = *req.ValueType
	}
	if req.Description != nil {
		setting.Description = req.Description
	}
	if err := ValidateSetting(setting.Key, setting.ValueType, setting.Value); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, setting); err != nil {
		return nil, err
	}
	s.invalidate(ctx, key)
	return toSettingResponse(setting), nil
}

func (s *settingService) DeleteSetting(ctx context.Context, key string) (*domain.Setting, error) {
	setting, err := s.repo.Delete(ctx, key)
	if err != nil {
		return nil, settingNotFound(err)
	}
	s.invalidate(ctx, key)
	return setting, nil
}

func (s *settingService) invalidate(ctx context.Context, key string) {
	if err := s.cache.InvalidateSetting(ctx, key); err != nil {
		secondaryFailed(StepSettingCacheSet, err, 0)
	}
}
