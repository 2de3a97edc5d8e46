package handler

import (
	"github.com/atareao/bloc/internal/common"
	"github.com/atareao/bloc/internal/domain"
	"github.com/atareao/bloc/internal/service"
	"github.com/atareao/bloc/pkg/ginutil"
	"github.com/gin-gonic/gin"
)

// SettingHandler handles HTTP requests for site settings
type SettingHandler struct {
	service service.SettingService
}

// NewSettingHandler creates a new SettingHandler
func NewSettingHandler(service service.SettingService) *SettingHandler {
	return &SettingHandler{service: service}
}

// ListSettings godoc
// @Summary      설정 목록 조회
// @Tags         settings
// @Produce      json
// @Param        key         query  string  false  "키 (부분 일치)"
// @Param        value_type  query  string  false  "값 타입"
// @Param        sort_by     query  string  false  "정렬 컬럼 (key, value_type, updated_at)"
// @Param        asc         query  bool    false  "오름차순 여부"
// @Param        page        query  int     false  "페이지 번호"  default(1)
// @Param        limit       query  int     false  "페이지당 항목 수"  default(20)
// @Success      200  {object}  common.APIResponse{data=[]domain.Setting}
// @Router       /settings [get]
func (h *SettingHandler) ListSettings(c *gin.Context) {
	lp, err := listParams(c)
	if err != nil {
		respondError(c, err, "")
		return
	}
	params := domain.SettingListParams{
		Key:        ginutil.QueryStringPtr(c, "key"),
		ValueType:  ginutil.QueryStringPtr(c, "value_type"),
		ListParams: lp,
	}
	settings, total, err := h.service.ListSettings(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "Failed to fetch settings")
		return
	}
	respondPage(c, "Settings", settings, total, lp)
}

// GetSetting godoc
// @Summary      설정 조회
// @Description  typed_value 에 value_type 으로 변환된 값이 포함됩니다
// @Tags         settings
// @Produce      json
// @Param        key  path  string  true  "설정 키"
// @Success      200  {object}  common.APIResponse{data=domain.SettingResponse}
// @Failure      404  {object}  common.APIResponse
// @Router       /settings/{key} [get]
func (h *SettingHandler) GetSetting(c *gin.Context) {
	setting, err := h.service.GetSetting(c.Request.Context(), c.Param("key"))
	if err != nil {
		respondError(c, err, "Failed to fetch setting")
		return
	}
	common.SuccessResponse(c, "Setting", setting)
}

// CreateSetting godoc
// @Summary      설정 생성
// @Tags         settings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body  domain.CreateSettingRequest  true  "설정"
// @Success      201  {object}  common.APIResponse{data=domain.SettingResponse}
// @Failure      400  {object}  common.APIResponse
// @Failure      409  {object}  common.APIResponse
// @Router       /settings [post]
func (h *SettingHandler) CreateSetting(c *gin.Context) {
	var req domain.CreateSettingRequest
	if !bindJSON(c, &req) {
		return
	}
	setting, err := h.service.CreateSetting(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to create setting")
		return
	}
	common.CreatedResponse(c, "Setting created", setting)
}

// UpdateSetting godoc
// @Summary      설정 수정
// @Tags         settings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        key      path  string                       true  "설정 키"
// @Param        request  body  domain.UpdateSettingRequest  true  "설정"
// @Success      200  {object}  common.APIResponse{data=domain.SettingResponse}
// @Failure      400  {object}  common.APIResponse
// @Failure      404  {object}  common.APIResponse
// @Router       /settings/{key} [patch]
func (h *SettingHandler) UpdateSetting(c *gin.Context) {
	var req domain.UpdateSettingRequest
	if !bindJSON(c, &req) {
		return
	}
	setting, err := h.service.UpdateSetting(c.Request.Context(), c.Param("key"), &req)
	if err != nil {
		respondError(c, err, "Failed to update setting")
		return
	}
	common.SuccessResponse(c, "Setting updated", setting)
}

// DeleteSetting godoc
// @Summary      설정 삭제
// @Tags         settings
// @Produce      json
// @Security     BearerAuth
// @Param        key  path  string  true  "설정 키"
// @Success      200  {object}  common.APIResponse{data=domain.Setting}
// @Failure      404  {object}  common.APIResponse
// @Router       /settings/{key} [delete]
func (h *SettingHandler) DeleteSetting(c *gin.Context) {
	setting, err := h.service.DeleteSetting(c.Request.Context(), c.Param("key"))
	if err != nil {
		respondError(c, err, "Failed to delete setting")
		return
	}
	common.SuccessResponse(c, "Setting deleted", setting)
}
