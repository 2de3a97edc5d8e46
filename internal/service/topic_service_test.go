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

type mockTopicRepo struct {
	mock.Mock
}

func (m *mockTopicRepo) List(ctx context.Context, params domain.TopicListParams) ([]domain.Topic, int64, error) {
	args := m.Called(ctx, params)
	return args.Get(0).([]domain.Topic), args.Get(1).(int64), args.Error(2)
}

func (m *mockTopicRepo) FindByID(ctx context.Context, id int64) (*domain.Topic, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Topic), args.Error(1)
}

func (m *mockTopicRepo) Create(ctx context.Context, topic *domain.Topic) error {
	return m.Called(ctx, topic).Error(0)
}

func (m *mockTopicRepo) Update(ctx context.Context, topic *domain.Topic) error {
	return m.Called(ctx, topic).Error(0)
}

func (m *mockTopicRepo) Delete(ctx context.Context, id int64) (*domain.Topic, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Topic), args.Error(1)
}

func TestCreateTopic_DerivesSlugAndDefaultsActive(t *testing.T) {
	repo := new(mockTopicRepo)
	svc := NewTopicService(repo)
	ctx := context.Background()

	repo.On("Create", ctx, mock.MatchedBy(func(tp *domain.Topic) bool {
		return tp.Name == "Home Lab" && tp.Slug == "home-lab" && tp.Active
	})).Return(nil)

	topic, err := svc.CreateTopic(ctx, &domain.CreateTopicRequest{Name: "  Home Lab "})
	require.NoError(t, err)
	assert.Equal(t, "home-lab", topic.Slug)
	repo.AssertExpectations(t)
}

func TestCreateTopic_ExplicitSlug(t *testing.T) {
	repo := new(mockTopicRepo)
	svc := NewTopicService(repo)
	ctx := context.Background()
	slug := "My Lab"
	inactive := false

	repo.On("Create", ctx, mock.Anything).Return(nil)

	topic, err := svc.CreateTopic(ctx, &domain.CreateTopicRequest{Name: "Home Lab", Slug: &slug, Active: &inactive})
	require.NoError(t, err)
	assert.Equal(t, "my-lab", topic.Slug)
	assert.False(t, topic.Active)
}

func TestCreateTopic_EmptyName(t *testing.T) {
	repo := new(mockTopicRepo)
	svc := NewTopicService(repo)

	_, err := svc.CreateTopic(context.Background(), &domain.CreateTopicRequest{Name: "   "})
	assert.ErrorIs(t, err, common.ErrInvalidInput)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUpdateTopic_RenameRecomputesSlug(t *testing.T) {
	repo := new(mockTopicRepo)
	svc := NewTopicService(repo)
	ctx := context.Background()
	name := "Self Hosting"

	repo.On("FindByID", ctx, int64(4)).Return(&domain.Topic{ID: 4, Name: "Home Lab", Slug: "home-lab", Active: true}, nil)
	repo.On("Update", ctx, mock.Anything).Return(nil)

	topic, err := svc.UpdateTopic(ctx, 4, &domain.UpdateTopicRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "self-hosting", topic.Slug)
	assert.True(t, topic.Active)
}

func TestDeleteTopic_NotFound(t *testing.T) {
	repo := new(mockTopicRepo)
	svc := NewTopicService(repo)
	ctx := context.Background()

	repo.On("Delete", ctx, int64(9)).Return(nil, common.ErrNotFound)

	_, err := svc.DeleteTopic(ctx, 9)
	assert.ErrorIs(t, err, common.ErrTopicNotFound)
	assert.Equal(t, 404, common.StatusFor(err))
}
