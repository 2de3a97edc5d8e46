package service

import (
	"context"
	"errors"
	"strings"

	"github.com/atareao/bloc/internal/common"
	"github.com/atareao/bloc/internal/domain"
	"github.com/atareao/bloc/internal/repository"
	"github.com/atareao/bloc/pkg/markdown"
	"github.com/atareao/bloc/pkg/textutil"
	"github.com/rotisserie/eris"
)

// PostResult 작성/수정 결과. TagErr 는 태그 처리 실패 (게시글은 저장됨)
type PostResult struct {
	Post   *domain.Post
	Tags   []domain.Tag
	TagErr error
}

// DeletePostResult 삭제 결과. CleanupErr 는 연결 정리 실패 (삭제는 유지)
type DeletePostResult struct {
	Post       *domain.Post
	CleanupErr error
}

// PostService business logic for posts
type PostService interface {
	ListPosts(ctx context.Context, params domain.PostListParams) ([]domain.Post, int64, error)
	GetPost(ctx context.Context, id int64) (*domain.Post, error)
	GetPostBySlug(ctx context.Context, slug string) (*domain.Post, error)
	GetHTMLPost(ctx context.Context, id int64) (*domain.HTMLPost, error)
	GetHTMLPostBySlug(ctx context.Context, slug string) (*domain.HTMLPost, error)
	ListPostTags(ctx context.Context, id int64) ([]domain.Tag, error)
	CreatePost(ctx context.Context, req *domain.CreatePostRequest) (*PostResult, error)
	UpdatePost(ctx context.Context, id int64, req *domain.UpdatePostRequest) (*PostResult, error)
	DeletePost(ctx context.Context, id int64) (*DeletePostResult, error)
}

type postService struct {
	repo        repository.PostRepository
	tagRepo     repository.TagRepository
	postTagRepo repository.PostTagRepository
	commentRepo repository.CommentRepository
	tagger      *TagAssigner
	renderer    *markdown.Renderer
}

// NewPostService creates a new PostService
func NewPostService(
	repo repository.PostRepository,
	tagRepo repository.TagRepository,
	postTagRepo repository.PostTagRepository,
	commentRepo repository.CommentRepository,
	renderer *markdown.Renderer,
) PostService {
	return &postService{
		repo:        repo,
		tagRepo:     tagRepo,
		postTagRepo: postTagRepo,
		commentRepo: commentRepo,
		tagger:      NewTagAssigner(tagRepo, postTagRepo),
		renderer:    renderer,
	}
}

func postNotFound(err error) error {
	if errors.Is(err, common.ErrNotFound) {
		return common.ErrPostNotFound
	}
	return err
}

// ListPosts retrieves paginated posts
func (s *postService) ListPosts(ctx context.Context, params domain.PostListParams) ([]domain.Post, int64, error) {
	return s.repo.List(ctx, params)
}

// GetPost retrieves a single post by ID
func (s *postService) GetPost(ctx context.Context, id int64) (*domain.Post, error) {
	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, postNotFound(err)
	}
	return post, nil
}

// GetPostBySlug retrieves a single post by slug
func (s *postService) GetPostBySlug(ctx context.Context, slug string) (*domain.Post, error) {
	post, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, postNotFound(err)
	}
	return post, nil
}

func (s *postService) GetHTMLPost(ctx context.Context, id int64) (*domain.HTMLPost, error) {
	post, err := s.GetPost(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.render(post)
}

func (s *postService) GetHTMLPostBySlug(ctx context.Context, slug string) (*domain.HTMLPost, error) {
	post, err := s.GetPostBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return s.render(post)
}

// render markdown 필드를 HTML 로 변환
func (s *postService) render(post *domain.Post) (*domain.HTMLPost, error) {
	out := &domain.HTMLPost{Post: *post}

	html, err := s.renderer.ToHTML(post.Content)
	if err != nil {
		return nil, eris.Wrap(err, "rendering content")
	}
	out.HTMLContent = html

	if post.Excerpt != nil {
		excerpt, err := s.renderer.ToHTML(*post.Excerpt)
		if err != nil {
			return nil, eris.Wrap(err, "rendering excerpt")
		}
		out.HTMLExcerpt = &excerpt
	}

	if post.Meta != nil {
		meta, err := s.renderer.ToHTML(*post.Meta)
		if err != nil {
			return nil, eris.Wrap(err, "rendering meta")
		}
		clean, err := s.renderer.ToText(*post.Meta)
		if err != nil {
			return nil, eris.Wrap(err, "cleaning meta")
		}
		out.HTMLMeta = &meta
		out.CleanMeta = &clean
	}

	if img := textutil.FirstImage(post.Content); img != nil {
		out.Image = &domain.Image{URL: img.URL, Title: img.Title, Alt: img.Alt}
	}

	return out, nil
}

// ListPostTags tags linked to an existing post
func (s *postService) ListPostTags(ctx context.Context, id int64) ([]domain.Tag, error) {
	if _, err := s.GetPost(ctx, id); err != nil {
		return nil, err
	}
	return s.tagRepo.ListByPost(ctx, id)
}

// CreatePost validates, derives title/slug, stores the post, then assigns hashtags (best effort)
func (s *postService) CreatePost(ctx context.Context, req *domain.CreatePostRequest) (*PostResult, error) {
	if strings.TrimSpace(req.Content) == "" {
		return nil, common.ErrEmptyContent
	}

	title := textutil.ResolveTitle(req.Title, req.Content)
	if title == "" {
		return nil, common.ErrTitleNotFound
	}

	post := &domain.Post{
		Title:       title,
		Slug:        textutil.Slugify(title),
		Content:     req.Content,
		Excerpt:     req.Excerpt,
		Meta:        req.Meta,
		Outline:     req.Outline,
		CommentOn:   req.CommentOn,
		Private:     req.Private,
		AudioURL:    req.AudioURL,
		PublishedAt: req.PublishedAt,
	}

	if err := s.repo.Create(ctx, post); err != nil {
		return nil, err
	}

	tags, tagErr := s.tagger.Assign(ctx, post.ID, post.Content)
	return &PostResult{Post: post, Tags: tags, TagErr: tagErr}, nil
}

// UpdatePost applies non-nil fields, recomputes the slug and re-runs tag assignment
func (s *postService) UpdatePost(ctx context.Context, id int64, req *domain.UpdatePostRequest) (*PostResult, error) {
	post, err := s.GetPost(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Content != nil {
		if strings.TrimSpace(*req.Content) == "" {
			return nil, common.ErrEmptyContent
		}
		post.Content = *req.Content
	}

	// 제목: 명시값 > 새 본문의 제목 > 기존 제목
	switch {
	case req.Title != nil:
		title := textutil.ResolveTitle(req.Title, post.Content)
		if title == "" {
			return nil, common.ErrTitleNotFound
		}
		post.Title = title
	case req.Content != nil:
		if title := textutil.ExtractTitle(post.Content); title != "" {
			post.Title = title
		}
	}
	post.Slug = textutil.Slugify(post.Title)

	if req.Excerpt != nil {
		post.Excerpt = req.Excerpt
	}
	if req.Meta != nil {
		post.Meta = req.Meta
	}
	if req.Outline != nil {
		post.Outline = req.Outline
	}
	if req.CommentOn != nil {
		post.CommentOn = req.CommentOn
	}
	if req.Private != nil {
		post.Private = req.Private
	}
	if req.AudioURL != nil {
		post.AudioURL = req.AudioURL
	}
	if req.PublishedAt != nil {
		post.PublishedAt = req.PublishedAt
	}

	if err := s.repo.Update(ctx, post); err != nil {
		return nil, postNotFound(err)
	}

	tags, tagErr := s.tagger.Assign(ctx, post.ID, post.Content)
	return &PostResult{Post: post, Tags: tags, TagErr: tagErr}, nil
}

// DeletePost deletes the post, then removes its tag links and comments (best effort)
func (s *postService) DeletePost(ctx context.Context, id int64) (*DeletePostResult, error) {
	post, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, postNotFound(err)
	}

	result := &DeletePostResult{Post: post}
	if _, err := s.postTagRepo.DeleteByPost(ctx, id); err != nil {
		secondaryFailed(StepPostTagCleanup, err, id)
		result.CleanupErr = err
	}
	if _, err := s.commentRepo.DeleteByPost(ctx, id); err != nil {
		secondaryFailed(StepCommentCleanup, err, id)
		if result.CleanupErr == nil {
			result.CleanupErr = err
		}
	}
	return result, nil
}
