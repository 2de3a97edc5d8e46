package handler

import (
	"github.com/atareao/bloc/internal/common"
	"github.com/atareao/bloc/internal/domain"
	"github.com/atareao/bloc/internal/service"
	"github.com/atareao/bloc/pkg/ginutil"
	"github.com/gin-gonic/gin"
)

// CommentHandler handles HTTP requests for comments
type CommentHandler struct {
	service service.CommentService
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(service service.CommentService) *CommentHandler {
	return &CommentHandler{service: service}
}

// ListComments godoc
// @Summary      댓글 목록 조회
// @Tags         comments
// @Produce      json
// @Param        post_id    query  int     false  "게시글 ID"
// @Param        parent_id  query  int     false  "부모 댓글 ID"
// @Param        nickname   query  string  false  "닉네임 (부분 일치)"
// @Param        approved   query  bool    false  "승인 여부"
// @Param        sort_by    query  string  false  "정렬 컬럼 (created_at, nickname, post_id, parent_id)"
// @Param        asc        query  bool    false  "오름차순 여부"
// @Param        page       query  int     false  "페이지 번호"  default(1)
// @Param        limit      query  int     false  "페이지당 항목 수"  default(20)
// @Success      200  {object}  common.APIResponse{data=[]domain.Comment}
// @Failure      400  {object}  common.APIResponse
// @Router       /comments [get]
func (h *CommentHandler) ListComments(c *gin.Context) {
	lp, err := listParams(c)
	if err != nil {
		respondError(c, err, "")
		return
	}
	postID, err := queryInt64(c, "post_id")
	if err != nil {
		respondError(c, err, "")
		return
	}
	parentID, err := queryInt64(c, "parent_id")
	if err != nil {
		respondError(c, err, "")
		return
	}
	approved, err := queryBool(c, "approved")
	if err != nil {
		respondError(c, err, "")
		return
	}

	params := domain.CommentListParams{
		PostID:     postID,
		ParentID:   parentID,
		Nickname:   ginutil.QueryStringPtr(c, "nickname"),
		Approved:   approved,
		ListParams: lp,
	}
	comments, total, err := h.service.ListComments(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "Failed to fetch comments")
		return
	}
	respondPage(c, "Comments", comments, total, lp)
}

// GetComment godoc
// @Summary      댓글 조회
// @Tags         comments
// @Produce      json
// @Param        id   path  int  true  "댓글 ID"
// @Success      200  {object}  common.APIResponse{data=domain.Comment}
// @Failure      404  {object}  common.APIResponse
// @Router       /comments/{id} [get]
//
//nolint:dupl // 리소스별 Get 로직은 유사하지만 다른 타입을 다룸
func (h *CommentHandler) GetComment(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	comment, err := h.service.GetComment(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to fetch comment")
		return
	}
	common.SuccessResponse(c, "Comment", comment)
}

// CreateComment godoc
// @Summary      댓글 작성
// @Description  parent_id 가 있으면 같은 게시글의 댓글이어야 합니다
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body  domain.CreateCommentRequest  true  "댓글 작성 요청"
// @Success      201  {object}  common.APIResponse{data=domain.Comment}
// @Failure      400  {object}  common.APIResponse
// @Failure      404  {object}  common.APIResponse
// @Router       /comments [post]
func (h *CommentHandler) CreateComment(c *gin.Context) {
	var req domain.CreateCommentRequest
	if !bindJSON(c, &req) {
		return
	}
	comment, err := h.service.CreateComment(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to create comment")
		return
	}
	common.CreatedResponse(c, "Comment created", comment)
}

// UpdateComment godoc
// @Summary      댓글 수정
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path  int                          true  "댓글 ID"
// @Param        request  body  domain.UpdateCommentRequest  true  "댓글 수정 요청"
// @Success      200  {object}  common.APIResponse{data=domain.Comment}
// @Failure      404  {object}  common.APIResponse
// @Router       /comments/{id} [patch]
func (h *CommentHandler) UpdateComment(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req domain.UpdateCommentRequest
	if !bindJSON(c, &req) {
		return
	}
	comment, err := h.service.UpdateComment(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err, "Failed to update comment")
		return
	}
	common.SuccessResponse(c, "Comment updated", comment)
}

// DeleteComment godoc
// @Summary      댓글 삭제
// @Description  답글도 함께 삭제됩니다
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  int  true  "댓글 ID"
// @Success      200  {object}  common.APIResponse{data=domain.Comment}
// @Failure      404  {object}  common.APIResponse
// @Router       /comments/{id} [delete]
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	comment, err := h.service.DeleteComment(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to delete comment")
		return
	}
	common.SuccessResponse(c, "Comment deleted", comment)
}
