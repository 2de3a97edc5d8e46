package service

import (
	"context"
	"errors"
	"strings"

	"github.com/atareao/bloc/internal/common"
	"github.com/atareao/bloc/internal/domain"
	"github.com/atareao/bloc/internal/repository"
)

// CommentService business logic for comments
type CommentService interface {
	ListComments(ctx context.Context, params domain.CommentListParams) ([]domain.Comment, int64, error)
	GetComment(ctx context.Context, id int64) (*domain.Comment, error)
	CreateComment(ctx context.Context, req *domain.CreateCommentRequest) (*domain.Comment, error)
	UpdateComment(ctx context.Context, id int64, req *domain.UpdateCommentRequest) (*domain.Comment, error)
	DeleteComment(ctx context.Context, id int64) (*domain.Comment, error)
}

type commentService struct {
	repo     repository.CommentRepository
	postRepo repository.PostRepository
}

// NewCommentService creates a new CommentService
func NewCommentService(repo repository.CommentRepository, postRepo repository.PostRepository) CommentService {
	return &commentService{repo: repo, postRepo: postRepo}
}

func commentNotFound(err error) error {
	if errors.Is(err, common.ErrNotFound) {
		return common.ErrCommentNotFound
	}
	return err
}

func (s *commentService) ListComments(ctx context.Context, params domain.CommentListParams) ([]domain.Comment, int64, error) {
	return s.repo.List(ctx, params)
}

func (s *commentService) GetComment(ctx context.Context, id int64) (*domain.Comment, error) {
	comment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, commentNotFound(err)
	}
	return comment, nil
}

// CreateComment 게시글 존재, 부모 댓글이 같은 게시글인지 확인 후 저장
func (s *commentService) CreateComment(ctx context.Context, req *domain.CreateCommentRequest) (*domain.Comment, error) {
	nickname := strings.TrimSpace(req.Nickname)
	if nickname == "" {
		return nil, common.Invalid("nickname cannot be empty")
	}
	if strings.TrimSpace(req.Content) == "" {
		return nil, common.ErrEmptyContent
	}

	if _, err := s.postRepo.FindByID(ctx, req.PostID); err != nil {
		return nil, postNotFound(err)
	}

	if req.ParentID != nil {
		parent, err := s.repo.FindByID(ctx, *req.ParentID)
		if err != nil {
			return nil, commentNotFound(err)
		}
		if parent.PostID != req.PostID {
			return nil, common.ErrParentMismatch
		}
	}

	comment := &domain.Comment{
		PostID:   req.PostID,
		ParentID: req.ParentID,
		Nickname: nickname,
		Content:  req.Content,
		Approved: req.Approved,
	}
	if err := s.repo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *commentService) UpdateComment(ctx context.Context, id int64, req *domain.UpdateCommentRequest) (*domain.Comment, error) {
	comment, err := s.GetComment(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Nickname != nil {
		nickname := strings.TrimSpace(*req.Nickname)
		if nickname == "" {
			return nil, common.Invalid("nickname cannot be empty")
		}
		comment.Nickname = nickname
	}
	if req.Content != nil {
		if strings.TrimSpace(*req.Content) == "" {
			return nil, common.ErrEmptyContent
		}
		comment.Content = *req.Content
	}
	if req.Approved != nil {
		comment.Approved = req.Approved
	}

	if err := s.repo.Update(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// DeleteComment 답글까지 함께 삭제
func (s *commentService) DeleteComment(ctx context.Context, id int64) (*domain.Comment, error) {
	comment, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, commentNotFound(err)
	}
	return comment, nil
}
