package common

import (
	"net/url"
	"strconv"

	"github.com/atareao/bloc/pkg/querybuilder"
	"github.com/gin-gonic/gin"
)

// APIResponse standard envelope returned by every endpoint
type APIResponse struct {
	Status     int         `json:"status"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
	Error      string      `json:"error,omitempty"`
}

// Pagination navigation block of paged list endpoints
type Pagination struct {
	Page         int     `json:"page"`
	Limit        int     `json:"limit"`
	TotalPages   int64   `json:"total_pages"`
	TotalRecords int64   `json:"total_records"`
	PrevLink     *string `json:"prev_link,omitempty"`
	NextLink     *string `json:"next_link,omitempty"`
}

// NewPagination builds the pagination block. Links reuse path and query with
// page/limit replaced.
func NewPagination(page querybuilder.Page, total int64, path string, query url.Values) *Pagination {
	page = querybuilder.NormalizePage(page.Number, page.Size)
	totalPages := querybuilder.TotalPages(total, page.Size)

	p := &Pagination{
		Page:         page.Number,
		Limit:        page.Size,
		TotalPages:   totalPages,
		TotalRecords: total,
	}
	if querybuilder.HasPrev(page.Number) {
		link := pageLink(path, query, page.Number-1, page.Size)
		p.PrevLink = &link
	}
	if querybuilder.HasNext(page.Number, totalPages) {
		link := pageLink(path, query, page.Number+1, page.Size)
		p.NextLink = &link
	}
	return p
}

func pageLink(path string, query url.Values, page, limit int) string {
	q := url.Values{}
	for k, v := range query {
		q[k] = append([]string(nil), v...)
	}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))
	return path + "?" + q.Encode()
}

// Respond writes an envelope with an optional payload
func Respond(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, APIResponse{
		Status:  status,
		Message: message,
		Data:    data,
	})
}

// SuccessResponse 200 envelope
func SuccessResponse(c *gin.Context, message string, data interface{}) {
	Respond(c, 200, message, data)
}

// CreatedResponse 201 envelope
func CreatedResponse(c *gin.Context, message string, data interface{}) {
	Respond(c, 201, message, data)
}

// PagedResponse 200 envelope with pagination block
func PagedResponse(c *gin.Context, message string, data interface{}, pagination *Pagination) {
	c.JSON(200, APIResponse{
		Status:     200,
		Message:    message,
		Data:       data,
		Pagination: pagination,
	})
}

// ErrorResponse returns an error envelope. The cause is only exposed in gin debug mode.
func ErrorResponse(c *gin.Context, status int, message string, err error) {
	resp := APIResponse{
		Status:  status,
		Message: message,
	}
	if err != nil && gin.IsDebugging() {
		resp.Error = err.Error()
	}
	c.JSON(status, resp)
}
