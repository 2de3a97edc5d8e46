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

// DeleteTagResult 삭제 결과. CleanupErr 는 게시글 연결 정리 실패
type DeleteTagResult struct {
	Tag        *domain.Tag
	CleanupErr error
}

// TagService business logic for tags
type TagService interface {
	ListTags(ctx context.Context, params domain.TagListParams) ([]domain.Tag, int64, error)
	GetTag(ctx context.Context, id int64) (*domain.Tag, error)
	CreateTag(ctx context.Context, req *domain.TagRequest) (*domain.Tag, error)
	UpdateTag(ctx context.Context, id int64, req *domain.TagRequest) (*domain.Tag, error)
	DeleteTag(ctx context.Context, id int64) (*DeleteTagResult, error)
}

type tagService struct {
	repo        repository.TagRepository
	postTagRepo repository.PostTagRepository
}

// NewTagService creates a new TagService
func NewTagService(repo repository.TagRepository, postTagRepo repository.PostTagRepository) TagService {
	return &tagService{repo: repo, postTagRepo: postTagRepo}
}

func tagNotFound(err error) error {
	if errors.Is(err, common.ErrNotFound) {
		return common.ErrTagNotFound
	}
	return err
}

// normalizeTag 앞의 '#' 과 공백 제거 후 slug 계산
func normalizeTag(raw string) (string, string, error) {
	tag := strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(raw), "#"))
	if tag == "" {
		return "", "", common.Invalid("tag cannot be empty")
	}
	slug := textutil.Slugify(tag)
	if slug == "" {
		return "", "", common.Invalid("tag %q has no usable characters", tag)
	}
	return tag, slug, nil
}

func (s *tagService) ListTags(ctx context.Context, params domain.TagListParams) ([]domain.Tag, int64, error) {
	return s.repo.List(ctx, params)
}

func (s *tagService) GetTag(ctx context.Context, id int64) (*domain.Tag, error) {
	tag, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, tagNotFound(err)
	}
	return tag, nil
}

func (s *tagService) CreateTag(ctx context.Context, req *domain.TagRequest) (*domain.Tag, error) {
	name, slug, err := normalizeTag(req.Tag)
	if err != nil {
		return nil, err
	}
	tag := &domain.Tag{Tag: name, Slug: slug}
	if err := s.repo.Create(ctx, tag); err != nil {
		return nil, err
	}
	return tag, nil
}

func (s *tagService) UpdateTag(ctx context.Context, id int64, req *domain.TagRequest) (*domain.Tag, error) {
	tag, err := s.GetTag(ctx, id)
	if err != nil {
		return nil, err
	}
	name, slug, err := normalizeTag(req.Tag)
	if err != nil {
		return nil, err
	}
	tag.Tag = name
	tag.Slug = slug
	if err := s.repo.Update(ctx, tag); err != nil {
		return nil, err
	}
	return tag, nil
}

func (s *tagService) DeleteTag(ctx context.Context, id int64) (*DeleteTagResult, error) {
	tag, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, tagNotFound(err)
	}
	result := &DeleteTagResult{Tag: tag}
	if _, err := s.postTagRepo.DeleteByTag(ctx, id); err != nil {
		secondaryFailed(StepTagLinkCleanup, err, id)
		result.CleanupErr = err
	}
	return result, nil
}
