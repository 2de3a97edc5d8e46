package handler

import (
	"github.com/atareao/bloc/internal/common"
	"github.com/atareao/bloc/internal/domain"
	"github.com/atareao/bloc/internal/service"
	"github.com/atareao/bloc/pkg/ginutil"
	"github.com/gin-gonic/gin"
)

// ValueHandler handles HTTP requests for values
type ValueHandler struct {
	service service.ValueService
}

// NewValueHandler creates a new ValueHandler
func NewValueHandler(service service.ValueService) *ValueHandler {
	return &ValueHandler{service: service}
}

// ListValues godoc
// @Summary      값 목록 조회
// @Tags         values
// @Produce      json
// @Param        reference  query  string  false  "reference (정확히 일치)"
// @Param        name       query  string  false  "이름 (부분 일치)"
// @Param        sort_by    query  string  false  "정렬 컬럼 (reference, name, created_at, id)"
// @Param        asc        query  bool    false  "오름차순 여부"
// @Param        page       query  int     false  "페이지 번호"  default(1)
// @Param        limit      query  int     false  "페이지당 항목 수"  default(20)
// @Success      200  {object}  common.APIResponse{data=[]domain.Value}
// @Router       /values [get]
func (h *ValueHandler) ListValues(c *gin.Context) {
	lp, err := listParams(c)
	if err != nil {
		respondError(c, err, "")
		return
	}
	params := domain.ValueListParams{
		Reference:  ginutil.QueryStringPtr(c, "reference"),
		Name:       ginutil.QueryStringPtr(c, "name"),
		ListParams: lp,
	}
	values, total, err := h.service.ListValues(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "Failed to fetch values")
		return
	}
	respondPage(c, "Values", values, total, lp)
}

// ListByReference godoc
// @Summary      reference 별 값 목록
// @Tags         values
// @Produce      json
// @Param        reference  path  string  true  "reference"
// @Success      200  {object}  common.APIResponse{data=[]domain.Value}
// @Router       /values/reference/{reference} [get]
func (h *ValueHandler) ListByReference(c *gin.Context) {
	values, err := h.service.ListByReference(c.Request.Context(), c.Param("reference"))
	if err != nil {
		respondError(c, err, "Failed to fetch values")
		return
	}
	common.SuccessResponse(c, "Values", values)
}

// GetValue godoc
// @Summary      값 조회
// @Tags         values
// @Produce      json
// @Param        id   path  int  true  "값 ID"
// @Success      200  {object}  common.APIResponse{data=domain.Value}
// @Failure      404  {object}  common.APIResponse
// @Router       /values/{id} [get]
func (h *ValueHandler) GetValue(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	value, err := h.service.GetValue(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to fetch value")
		return
	}
	common.SuccessResponse(c, "Value", value)
}

// CreateValue godoc
// @Summary      값 생성
// @Tags         values
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body  domain.ValueRequest  true  "값"
// @Success      201  {object}  common.APIResponse{data=domain.Value}
// @Failure      400  {object}  common.APIResponse
// @Router       /values [post]
func (h *ValueHandler) CreateValue(c *gin.Context) {
	var req domain.ValueRequest
	if !bindJSON(c, &req) {
		return
	}
	value, err := h.service.CreateValue(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to create value")
		return
	}
	common.CreatedResponse(c, "Value created", value)
}

// UpdateValue godoc
// @Summary      값 수정
// @Tags         values
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path  int                  true  "값 ID"
// @Param        request  body  domain.ValueRequest  true  "값"
// @Success      200  {object}  common.APIResponse{data=domain.Value}
// @Failure      404  {object}  common.APIResponse
// @Router       /values/{id} [patch]
func (h *ValueHandler) UpdateValue(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req domain.ValueRequest
	if !bindJSON(c, &req) {
		return
	}
	value, err := h.service.UpdateValue(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err, "Failed to update value")
		return
	}
	common.SuccessResponse(c, "Value updated", value)
}

// DeleteValue godoc
// @Summary      값 삭제
// @Tags         values
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  int  true  "값 ID"
// @Success      200  {object}  common.APIResponse{data=domain.Value}
// @Failure      404  {object}  common.APIResponse
// @Router       /values/{id} [delete]
func (h *ValueHandler) DeleteValue(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	value, err := h.service.DeleteValue(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to delete value")
		return
	}
	common.SuccessResponse(c, "Value deleted", value)
}
