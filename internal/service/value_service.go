package service

import (
	"context"
	"errors"
	"strings"

	"github.com/atareao/bloc/internal/common"
	"github.com/atareao/bloc/internal/domain"
	"github.com/atareao/bloc/internal/repository"
)

// ValueService business logic for reference values
type ValueService interface {
	ListValues(ctx context.Context, params domain.ValueListParams) ([]domain.Value, int64, error)
	ListByReference(ctx context.Context, reference string) ([]domain.Value, error)
	GetValue(ctx context.Context, id int64) (*domain.Value, error)
	CreateValue(ctx context.Context, req *domain.ValueRequest) (*domain.Value, error)
	UpdateValue(ctx context.Context, id int64, req *domain.ValueRequest) (*domain.Value, error)
	DeleteValue(ctx context.Context, id int64) (*domain.Value, error)
}

type valueService struct {
	repo repository.ValueRepository
}

// NewValueService creates a new ValueService
func NewValueService(repo repository.ValueRepository) ValueService {
	return &valueService{repo: repo}
}

func valueNotFound(err error) error {
	if errors.Is(err, common.ErrNotFound) {
		return common.ErrValueNotFound
	}
	return err
}

func validateValue(req *domain.ValueRequest) (string, string, error) {
	reference := strings.TrimSpace(req.Reference)
	name := strings.TrimSpace(req.Name)
	if reference == "" || name == "" {
		return "", "", common.Invalid("reference and name are required")
	}
	return reference, name, nil
}

func (s *valueService) ListValues(ctx context.Context, params domain.ValueListParams) ([]domain.Value, int64, error) {
	return s.repo.List(ctx, params)
}

func (s *valueService) ListByReference(ctx context.Context, reference string) ([]domain.Value, error) {
	return s.repo.ListByReference(ctx, reference)
}

func (s *valueService) GetValue(ctx context.Context, id int64) (*domain.Value, error) {
	value, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, valueNotFound(err)
	}
	return value, nil
}

func (s *valueService) CreateValue(ctx context.Context, req *domain.ValueRequest) (*domain.Value, error) {
	reference, name, err := validateValue(req)
	if err != nil {
		return nil, err
	}
	value := &domain.Value{Reference: reference, Name: name}
	if err := s.repo.Create(ctx, value); err != nil {
		return nil, err
	}
	return value, nil
}

func (s *valueService) UpdateValue(ctx context.Context, id int64, req *domain.ValueRequest) (*domain.Value, error) {
	value, err := s.GetValue(ctx, id)
	if err != nil {
		return nil, err
	}
	reference, name, err := validateValue(req)
	if err != nil {
		return nil, err
	}
	value.Reference = reference
	value.Name = name
	if err := s.repo.Update(ctx, value); err != nil {
		return nil, err
	}
	return value, nil
}

func (s *valueService) DeleteValue(ctx context.Context, id int64) (*domain.Value, error) {
	value, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, valueNotFound(err)
	}
	return value, nil
}
