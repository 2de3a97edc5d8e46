package handler

import (
	"errors"
	"net/http"

	"github.com/atareao/bloc/internal/common"
	"github.com/atareao/bloc/internal/service"
	"github.com/gin-gonic/gin"
)

// UploadHandler handles multipart file uploads
type UploadHandler struct {
	service service.UploadService
}

// NewUploadHandler creates a new UploadHandler
func NewUploadHandler(service service.UploadService) *UploadHandler {
	return &UploadHandler{service: service}
}

// Upload godoc
// @Summary      파일 업로드
// @Description  multipart "file" 필드를 YYYY/MM/DD/<uuid>.<ext> 경로에 저장합니다
// @Tags         uploads
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file  formData  file  true  "업로드할 파일"
// @Success      200  {object}  common.APIResponse{data=service.UploadResult}
// @Failure      400  {object}  common.APIResponse
// @Failure      500  {object}  common.APIResponse
// @Router       /uploads [post]
func (h *UploadHandler) Upload(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			err = common.ErrMissingFile
		}
		common.ErrorResponse(c, http.StatusBadRequest, common.ErrMissingFile.Error(), err)
		return
	}

	file, err := header.Open()
	if err != nil {
		respondError(c, err, "Failed to read uploaded file")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	result, err := h.service.Upload(c.Request.Context(), file, contentType, header.Size)
	if err != nil {
		respondError(c, err, "Failed to store file")
		return
	}

	common.SuccessResponse(c, "File uploaded successfully", result)
}
