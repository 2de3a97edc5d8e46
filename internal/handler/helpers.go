package handler

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/atareao/bloc/internal/common"
	"github.com/atareao/bloc/internal/domain"
	"github.com/atareao/bloc/pkg/ginutil"
	"github.com/atareao/bloc/pkg/logger"
	"github.com/atareao/bloc/pkg/querybuilder"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// 검증 에러의 필드명을 json 태그 이름으로 보고
func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "" || name == "-" {
				return f.Name
			}
			return name
		})
	}
}

// respondError 4xx 는 클라이언트용 메시지, 5xx 는 로깅/Sentry 후 일반 메시지
func respondError(c *gin.Context, err error, fallback string) {
	status := common.StatusFor(err)
	if !common.IsClientError(err) {
		logger.ReportError(err, map[string]string{
			"method": c.Request.Method,
			"path":   c.FullPath(),
		})
		common.ErrorResponse(c, status, fallback, err)
		return
	}
	common.ErrorResponse(c, status, common.ClientMessage(err), err)
}

// bindJSON 요청 본문 바인딩. 실패 시 400 응답 후 false
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, bindingMessage(err), err)
		return false
	}
	return true
}

// bindingMessage validator 에러를 필드 단위 메시지로 변환
func bindingMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "Invalid request body"
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return strings.Join(msgs, "; ")
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fe.Param())
	case "url":
		return fmt.Sprintf("%s must be a valid URL", field)
	default:
		return fmt.Sprintf("%s is invalid (%s)", field, fe.Tag())
	}
}

// idParam ":id" 경로 파라미터. 실패 시 400 응답 후 false
func idParam(c *gin.Context) (int64, bool) {
	id, err := ginutil.ParamInt64(c, "id")
	if err != nil || id <= 0 {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid id", err)
		return 0, false
	}
	return id, true
}

// listParams page, limit, sort_by, asc 쿼리 파싱
func listParams(c *gin.Context) (domain.ListParams, error) {
	asc, err := ginutil.QueryBoolPtr(c, "asc")
	if err != nil {
		return domain.ListParams{}, common.Invalid("asc must be a boolean")
	}
	number := ginutil.QueryInt(c, "page", 1)
	if number > querybuilder.MaxPage {
		return domain.ListParams{}, common.Invalid("page must be at most %d", querybuilder.MaxPage)
	}
	page := querybuilder.NormalizePage(number, ginutil.QueryInt(c, "limit", querybuilder.DefaultLimit))
	return domain.ListParams{
		SortBy: c.Query("sort_by"),
		Asc:    asc,
		Page:   page.Number,
		Limit:  page.Size,
	}, nil
}

func queryBool(c *gin.Context, key string) (*bool, error) {
	v, err := ginutil.QueryBoolPtr(c, key)
	if err != nil {
		return nil, common.Invalid("%s must be a boolean", key)
	}
	return v, nil
}

func queryInt64(c *gin.Context, key string) (*int64, error) {
	v, err := ginutil.QueryInt64Ptr(c, key)
	if err != nil {
		return nil, common.Invalid("%s must be an integer", key)
	}
	return v, nil
}

// respondPage 목록 + pagination 블록
func respondPage(c *gin.Context, message string, data interface{}, total int64, lp domain.ListParams) {
	page := querybuilder.Page{Number: lp.Page, Size: lp.Limit}
	common.PagedResponse(c, message, data,
		common.NewPagination(page, total, c.Request.URL.Path, c.Request.URL.Query()))
}

// degraded 부가 단계 실패를 응답 메시지에 덧붙임
func degraded(message string, err error, step string) string {
	if err == nil {
		return message
	}
	return fmt.Sprintf("%s (%s failed)", message, step)
}
