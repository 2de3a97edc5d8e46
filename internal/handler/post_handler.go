package handler

import (
	"github.com/atareao/bloc/internal/common"
	"github.com/atareao/bloc/internal/domain"
	"github.com/atareao/bloc/internal/service"
	"github.com/atareao/bloc/pkg/ginutil"
	"github.com/gin-gonic/gin"
)

// PostHandler handles HTTP requests for posts
type PostHandler struct {
	service service.PostService
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(service service.PostService) *PostHandler {
	return &PostHandler{service: service}
}

// ListPosts godoc
// @Summary      게시글 목록 조회
// @Description  게시글 목록을 필터/정렬/페이지네이션하여 조회합니다
// @Tags         posts
// @Produce      json
// @Param        title      query  string  false  "제목 (부분 일치, 대소문자 구분)"
// @Param        slug       query  string  false  "slug (정확히 일치)"
// @Param        private    query  bool    false  "비공개 여부"
// @Param        comment_on query  bool    false  "댓글 허용 여부"
// @Param        sort_by    query  string  false  "정렬 컬럼 (title, id, published_at, created_at, slug)"
// @Param        asc        query  bool    false  "오름차순 여부"
// @Param        page       query  int     false  "페이지 번호 (기본값: 1)"  default(1)
// @Param        limit      query  int     false  "페이지당 항목 수 (기본값: 20)"  default(20)
// @Success      200  {object}  common.APIResponse{data=[]domain.Post}
// @Failure      400  {object}  common.APIResponse
// @Failure      500  {object}  common.APIResponse
// @Router       /posts [get]
func (h *PostHandler) ListPosts(c *gin.Context) {
	lp, err := listParams(c)
	if err != nil {
		respondError(c, err, "")
		return
	}
	private, err := queryBool(c, "private")
	if err != nil {
		respondError(c, err, "")
		return
	}
	commentOn, err := queryBool(c, "comment_on")
	if err != nil {
		respondError(c, err, "")
		return
	}

	params := domain.PostListParams{
		Title:      ginutil.QueryStringPtr(c, "title"),
		Slug:       ginutil.QueryStringPtr(c, "slug"),
		Private:    private,
		CommentOn:  commentOn,
		ListParams: lp,
	}
	posts, total, err := h.service.ListPosts(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "Failed to fetch posts")
		return
	}

	respondPage(c, "Posts", posts, total, lp)
}

// GetPost godoc
// @Summary      게시글 조회
// @Tags         posts
// @Produce      json
// @Param        id   path  int  true  "게시글 ID"
// @Success      200  {object}  common.APIResponse{data=domain.Post}
// @Failure      400  {object}  common.APIResponse
// @Failure      404  {object}  common.APIResponse
// @Router       /posts/{id} [get]
func (h *PostHandler) GetPost(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	post, err := h.service.GetPost(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to fetch post")
		return
	}
	common.SuccessResponse(c, "Post", post)
}

// GetPostBySlug godoc
// @Summary      slug 로 게시글 조회
// @Tags         posts
// @Produce      json
// @Param        slug  path  string  true  "게시글 slug"
// @Success      200  {object}  common.APIResponse{data=domain.Post}
// @Failure      404  {object}  common.APIResponse
// @Router       /posts/slug/{slug} [get]
func (h *PostHandler) GetPostBySlug(c *gin.Context) {
	post, err := h.service.GetPostBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, err, "Failed to fetch post")
		return
	}
	common.SuccessResponse(c, "Post", post)
}

// GetHTMLPost godoc
// @Summary      게시글 HTML 조회
// @Description  본문/요약/메타를 HTML 로 렌더링하고 첫 이미지를 함께 반환합니다
// @Tags         posts
// @Produce      json
// @Param        id   path  int  true  "게시글 ID"
// @Success      200  {object}  common.APIResponse{data=domain.HTMLPost}
// @Failure      404  {object}  common.APIResponse
// @Router       /posts/{id}/html [get]
func (h *PostHandler) GetHTMLPost(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	post, err := h.service.GetHTMLPost(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to render post")
		return
	}
	common.SuccessResponse(c, "Post", post)
}

// GetHTMLPostBySlug godoc
// @Summary      slug 로 게시글 HTML 조회
// @Tags         posts
// @Produce      json
// @Param        slug  path  string  true  "게시글 slug"
// @Success      200  {object}  common.APIResponse{data=domain.HTMLPost}
// @Failure      404  {object}  common.APIResponse
// @Router       /posts/slug/{slug}/html [get]
func (h *PostHandler) GetHTMLPostBySlug(c *gin.Context) {
	post, err := h.service.GetHTMLPostBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, err, "Failed to render post")
		return
	}
	common.SuccessResponse(c, "Post", post)
}

// ListPostTags godoc
// @Summary      게시글 태그 목록
// @Tags         posts
// @Produce      json
// @Param        id   path  int  true  "게시글 ID"
// @Success      200  {object}  common.APIResponse{data=[]domain.Tag}
// @Failure      404  {object}  common.APIResponse
// @Router       /posts/{id}/tags [get]
func (h *PostHandler) ListPostTags(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	tags, err := h.service.ListPostTags(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to fetch tags")
		return
	}
	common.SuccessResponse(c, "Tags", tags)
}

// CreatePost godoc
// @Summary      게시글 작성
// @Description  제목이 없으면 본문 첫 줄의 "# 제목" 을 사용합니다. 본문의 #해시태그는 태그로 연결됩니다
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body  domain.CreatePostRequest  true  "게시글 작성 요청"
// @Success      201  {object}  common.APIResponse{data=domain.Post}
// @Failure      400  {object}  common.APIResponse
// @Failure      401  {object}  common.APIResponse
// @Failure      500  {object}  common.APIResponse
// @Router       /posts [post]
func (h *PostHandler) CreatePost(c *gin.Context) {
	var req domain.CreatePostRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.service.CreatePost(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to create post")
		return
	}

	common.CreatedResponse(c, degraded("Post created", result.TagErr, "tag assignment"), result.Post)
}

// UpdatePost godoc
// @Summary      게시글 수정
// @Description  전달된 필드만 수정합니다. slug 는 항상 다시 계산됩니다
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path  int                       true  "게시글 ID"
// @Param        request  body  domain.UpdatePostRequest  true  "게시글 수정 요청"
// @Success      200  {object}  common.APIResponse{data=domain.Post}
// @Failure      400  {object}  common.APIResponse
// @Failure      404  {object}  common.APIResponse
// @Router       /posts/{id} [patch]
func (h *PostHandler) UpdatePost(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req domain.UpdatePostRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.service.UpdatePost(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err, "Failed to update post")
		return
	}

	common.SuccessResponse(c, degraded("Post updated", result.TagErr, "tag assignment"), result.Post)
}

// DeletePost godoc
// @Summary      게시글 삭제
// @Description  게시글의 태그 연결과 댓글도 함께 정리합니다
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  int  true  "게시글 ID"
// @Success      200  {object}  common.APIResponse{data=domain.Post}
// @Failure      404  {object}  common.APIResponse
// @Router       /posts/{id} [delete]
func (h *PostHandler) DeletePost(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	result, err := h.service.DeletePost(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to delete post")
		return
	}

	common.SuccessResponse(c, degraded("Post deleted", result.CleanupErr, "cleanup"), result.Post)
}
