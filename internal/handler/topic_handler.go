package handler

import (
	"github.com/atareao/bloc/internal/common"
	"github.com/atareao/bloc/internal/domain"
	"github.com/atareao/bloc/internal/service"
	"github.com/atareao/bloc/pkg/ginutil"
	"github.com/gin-gonic/gin"
)

// TopicHandler handles HTTP requests for topics
type TopicHandler struct {
	service service.TopicService
}

// NewTopicHandler creates a new TopicHandler
func NewTopicHandler(service service.TopicService) *TopicHandler {
	return &TopicHandler{service: service}
}

// ListTopics godoc
// @Summary      주제 목록 조회
// @Tags         topics
// @Produce      json
// @Param        name     query  string  false  "이름 (부분 일치)"
// @Param        active   query  bool    false  "활성 여부"
// @Param        sort_by  query  string  false  "정렬 컬럼 (name, slug, created_at, id)"
// @Param        asc      query  bool    false  "오름차순 여부"
// @Param        page     query  int     false  "페이지 번호"  default(1)
// @Param        limit    query  int     false  "페이지당 항목 수"  default(20)
// @Success      200  {object}  common.APIResponse{data=[]domain.Topic}
// @Router       /topics [get]
func (h *TopicHandler) ListTopics(c *gin.Context) {
	lp, err := listParams(c)
	if err != nil {
		respondError(c, err, "")
		return
	}
	active, err := queryBool(c, "active")
	if err != nil {
		respondError(c, err, "")
		return
	}
	params := domain.TopicListParams{
		Name:       ginutil.QueryStringPtr(c, "name"),
		Active:     active,
		ListParams: lp,
	}
	topics, total, err := h.service.ListTopics(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "Failed to fetch topics")
		return
	}
	respondPage(c, "Topics", topics, total, lp)
}

// GetTopic godoc
// @Summary      주제 조회
// @Tags         topics
// @Produce      json
// @Param        id   path  int  true  "주제 ID"
// @Success      200  {object}  common.APIResponse{data=domain.Topic}
// @Failure      404  {object}  common.APIResponse
// @Router       /topics/{id} [get]
func (h *TopicHandler) GetTopic(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	topic, err := h.service.GetTopic(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to fetch topic")
		return
	}
	common.SuccessResponse(c, "Topic", topic)
}

// CreateTopic godoc
// @Summary      주제 생성
// @Tags         topics
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body  domain.CreateTopicRequest  true  "주제"
// @Success      201  {object}  common.APIResponse{data=domain.Topic}
// @Failure      400  {object}  common.APIResponse
// @Failure      409  {object}  common.APIResponse
// @Router       /topics [post]
func (h *TopicHandler) CreateTopic(c *gin.Context) {
	var req domain.CreateTopicRequest
	if !bindJSON(c, &req) {
		return
	}
	topic, err := h.service.CreateTopic(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to create topic")
		return
	}
	common.CreatedResponse(c, "Topic created", topic)
}

// UpdateTopic godoc
// @Summary      주제 수정
// @Tags         topics
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path  int                        true  "주제 ID"
// @Param        request  body  domain.UpdateTopicRequest  true  "주제"
// @Success      200  {object}  common.APIResponse{data=domain.Topic}
// @Failure      404  {object}  common.APIResponse
// @Router       /topics/{id} [patch]
func (h *TopicHandler) UpdateTopic(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req domain.UpdateTopicRequest
	if !bindJSON(c, &req) {
		return
	}
	topic, err := h.service.UpdateTopic(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err, "Failed to update topic")
		return
	}
	common.SuccessResponse(c, "Topic updated", topic)
}

// DeleteTopic godoc
// @Summary      주제 삭제
// @Tags         topics
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  int  true  "주제 ID"
// @Success      200  {object}  common.APIResponse{data=domain.Topic}
// @Failure      404  {object}  common.APIResponse
// @Router       /topics/{id} [delete]
func (h *TopicHandler) DeleteTopic(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	topic, err := h.service.DeleteTopic(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to delete topic")
		return
	}
	common.SuccessResponse(c, "Topic deleted", topic)
}
