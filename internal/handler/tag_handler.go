package handler

import (
	"github.com/atareao/bloc/internal/common"
	"github.com/atareao/bloc/internal/domain"
	"github.com/atareao/bloc/internal/service"
	"github.com/atareao/bloc/pkg/ginutil"
	"github.com/gin-gonic/gin"
)

// TagHandler handles HTTP requests for tags
type TagHandler struct {
	service service.TagService
}

// NewTagHandler creates a new TagHandler
func NewTagHandler(service service.TagService) *TagHandler {
	return &TagHandler{service: service}
}

// ListTags godoc
// @Summary      태그 목록 조회
// @Tags         tags
// @Produce      json
// @Param        tag      query  string  false  "태그 (부분 일치)"
// @Param        slug     query  string  false  "slug (부분 일치)"
// @Param        sort_by  query  string  false  "정렬 컬럼 (tag, slug, created_at, id)"
// @Param        asc      query  bool    false  "오름차순 여부"
// @Param        page     query  int     false  "페이지 번호"  default(1)
// @Param        limit    query  int     false  "페이지당 항목 수"  default(20)
// @Success      200  {object}  common.APIResponse{data=[]domain.Tag}
// @Router       /tags [get]
func (h *TagHandler) ListTags(c *gin.Context) {
	lp, err := listParams(c)
	if err != nil {
		respondError(c, err, "")
		return
	}
	params := domain.TagListParams{
		Tag:        ginutil.QueryStringPtr(c, "tag"),
		Slug:       ginutil.QueryStringPtr(c, "slug"),
		ListParams: lp,
	}
	tags, total, err := h.service.ListTags(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "Failed to fetch tags")
		return
	}
	respondPage(c, "Tags", tags, total, lp)
}

// GetTag godoc
// @Summary      태그 조회
// @Tags         tags
// @Produce      json
// @Param        id   path  int  true  "태그 ID"
// @Success      200  {object}  common.APIResponse{data=domain.Tag}
// @Failure      404  {object}  common.APIResponse
// @Router       /tags/{id} [get]
func (h *TagHandler) GetTag(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	tag, err := h.service.GetTag(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to fetch tag")
		return
	}
	common.SuccessResponse(c, "Tag", tag)
}

// CreateTag godoc
// @Summary      태그 생성
// @Tags         tags
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body  domain.TagRequest  true  "태그"
// @Success      201  {object}  common.APIResponse{data=domain.Tag}
// @Failure      400  {object}  common.APIResponse
// @Failure      409  {object}  common.APIResponse
// @Router       /tags [post]
func (h *TagHandler) CreateTag(c *gin.Context) {
	var req domain.TagRequest
	if !bindJSON(c, &req) {
		return
	}
	tag, err := h.service.CreateTag(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to create tag")
		return
	}
	common.CreatedResponse(c, "Tag created", tag)
}

// UpdateTag godoc
// @Summary      태그 수정
// @Tags         tags
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path  int                true  "태그 ID"
// @Param        request  body  domain.TagRequest  true  "태그"
// @Success      200  {object}  common.APIResponse{data=domain.Tag}
// @Failure      404  {object}  common.APIResponse
// @Failure      409  {object}  common.APIResponse
// @Router       /tags/{id} [patch]
func (h *TagHandler) UpdateTag(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req domain.TagRequest
	if !bindJSON(c, &req) {
		return
	}
	tag, err := h.service.UpdateTag(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err, "Failed to update tag")
		return
	}
	common.SuccessResponse(c, "Tag updated", tag)
}

// DeleteTag godoc
// @Summary      태그 삭제
// @Tags         tags
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  int  true  "태그 ID"
// @Success      200  {object}  common.APIResponse{data=domain.Tag}
// @Failure      404  {object}  common.APIResponse
// @Router       /tags/{id} [delete]
func (h *TagHandler) DeleteTag(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	result, err := h.service.DeleteTag(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to delete tag")
		return
	}
	common.SuccessResponse(c, degraded("Tag deleted", result.CleanupErr, "cleanup"), result.Tag)
}
