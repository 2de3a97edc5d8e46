package service

import (
	"context"
	"testing"

	"github.com/atareao/bloc/internal/common"
	"github.com/atareao/bloc/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockValueRepo struct {
	mock.Mock
}

func (m *mockValueRepo) List(ctx context.Context, params domain.ValueListParams) ([]domain.Value, int64, error) {
	args := m.Called(ctx, params)
	return args.Get(0).([]domain.Value), args.Get(1).(int64), args.Error(2)
}

func (m *mockValueRepo) ListByReference(ctx context.Context, reference string) ([]domain.Value, error) {
	args := m.Called(ctx, reference)
	return args.Get(0).([]domain.Value), args.Error(1)
}

func (m *mockValueRepo) FindByID(ctx context.Context, id int64) (*domain.Value, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Value), args.Error(1)
}

func (m *mockValueRepo) Create(ctx context.Context, value *domain.Value) error {
	return m.Called(ctx, value).Error(0)
}

func (m *mockValueRepo) Update(ctx context.Context, value *domain.Value) error {
	return m.Called(ctx, value).Error(0)
}

func (m *mockValueRepo) Delete(ctx context.Context, id int64) (*domain.Value, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Value), args.Error(1)
}

func TestCreateValue_TrimsFields(t *testing.T) {
	repo := new(mockValueRepo)
	svc := NewValueService(repo)
	ctx := context.Background()

	repo.On("Create", ctx, mock.MatchedBy(func(v *domain.Value) bool {
		return v.Reference == "status" && v.Name == "draft"
	})).Return(nil)

	value, err := svc.CreateValue(ctx, &domain.ValueRequest{Reference: " status ", Name: "draft "})
	require.NoError(t, err)
	assert.Equal(t, "status", value.Reference)
	repo.AssertExpectations(t)
}

func TestCreateValue_BlankFields(t *testing.T) {
	repo := new(mockValueRepo)
	svc := NewValueService(repo)

	_, err := svc.CreateValue(context.Background(), &domain.ValueRequest{Reference: "status", Name: "  "})
	assert.ErrorIs(t, err, common.ErrInvalidInput)
	assert.Equal(t, "reference and name are required", common.ClientMessage(err))
}

func TestUpdateValue_NotFound(t *testing.T) {
	repo := new(mockValueRepo)
	svc := NewValueService(repo)
	ctx := context.Background()

	repo.On("FindByID", ctx, int64(2)).Return(nil, common.ErrNotFound)

	_, err := svc.UpdateValue(ctx, 2, &domain.ValueRequest{Reference: "status", Name: "published"})
	assert.ErrorIs(t, err, common.ErrValueNotFound)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestListByReference(t *testing.T) {
	repo := new(mockValueRepo)
	svc := NewValueService(repo)
	ctx := context.Background()

	repo.On("ListByReference", ctx, "status").Return([]domain.Value{{ID: 1, Reference: "status", Name: "draft"}}, nil)

	values, err := svc.ListByReference(ctx, "status")
	require.NoError(t, err)
	assert.Len(t, values, 1)
}
