package service

import (
	"context"
	"errors"
	"strings"

	"github.com/atareao/bloc/internal/common"
	"github.com/atareao/bloc/internal/domain"
	"github.com/atareao/bloc/internal/repository"
	"github.com/atareao/bloc/pkg/textutil"
)

// TopicService business logic for topics
type TopicService interface {
	ListTopics(ctx context.Context, params domain.TopicListParams) ([]domain.Topic, int64, error)
	GetTopic(ctx context.Context, id int64) (*domain.Topic, error)
	CreateTopic(ctx context.Context, req *domain.CreateTopicRequest) (*domain.Topic, error)
	UpdateTopic(ctx context.Context, id int64, req *domain.UpdateTopicRequest) (*domain.Topic, error)
	DeleteTopic(ctx context.Context, id int64) (*domain.Topic, error)
}

type topicService struct {
	repo repository.TopicRepository
}

// NewTopicService creates a new TopicService
func NewTopicService(repo repository.TopicRepository) TopicService {
	return &topicService{repo: repo}
}

func topicNotFound(err error) error {
	if errors.Is(err, common.ErrNotFound) {
		return common.ErrTopicNotFound
	}
	return err
}

// topicSlug 전달된 slug 가 있으면 정규화, 없으면 name 에서 파생
func topicSlug(name string, explicit *string) (string, error) {
	source := name
	if explicit != nil && strings.TrimSpace(*explicit) != "" {
		source = *explicit
	}
	slug := textutil.Slugify(source)
	if slug == "" {
		return "", common.Invalid("topic slug cannot be empty")
	}
	return slug, nil
}

func (s *topicService) ListTopics(ctx context.Context, params domain.TopicListParams) ([]domain.Topic, int64, error) {
	return s.repo.List(ctx, params)
}

func (s *topicService) GetTopic(ctx context.Context, id int64) (*domain.Topic, error) {
	topic, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, topicNotFound(err)
	}
	return topic, nil
}

func (s *topicService) CreateTopic(ctx context.Context, req *domain.CreateTopicRequest) (*domain.Topic, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, common.Invalid("topic name cannot be empty")
	}
	slug, err := topicSlug(name, req.Slug)
	if err != nil {
		return nil, err
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	topic := &domain.Topic{Name: name, Slug: slug, Active: active}
	if err := s.repo.Create(ctx, topic); err != nil {
		return nil, err
	}
	return topic, nil
}

func (s *topicService) UpdateTopic(ctx context.Context, id int64, req *domain.UpdateTopicRequest) (*domain.Topic, error) {
	topic, err := s.GetTopic(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, common.Invalid("topic name cannot be empty")
		}
		topic.Name = name
	}
	if req.Name != nil || req.Slug != nil {
		slug, err := topicSlug(topic.Name, req.Slug)
		if err != nil {
			return nil, err
		}
		topic.Slug = slug
	}
	if req.Active != nil {
		topic.Active = *req.Active
	}

	if err := s.repo.Update(ctx, topic); err != nil {
		return nil, err
	}
	return topic, nil
}

func (s *topicService) DeleteTopic(ctx context.Context, id int64) (*domain.Topic, error) {
	topic, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, topicNotFound(err)
	}
	return topic, nil
}
