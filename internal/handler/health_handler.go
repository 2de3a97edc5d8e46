package handler

import (
	"net/http"
	"time"

	"github.com/atareao/bloc/pkg/cache"
	"github.com/atareao/bloc/pkg/database"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// HealthHandler liveness / dependency check
type HealthHandler struct {
	db    *gorm.DB
	cache cache.Service
}

// NewHealthHandler creates a new HealthHandler. cacheSvc may be nil.
func NewHealthHandler(db *gorm.DB, cacheSvc cache.Service) *HealthHandler {
	return &HealthHandler{db: db, cache: cacheSvc}
}

// Health godoc
// @Summary      헬스 체크
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      503  {object}  map[string]interface{}
// @Router       /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	status := http.StatusOK
	checks := gin.H{"database": "ok"}

	if err := database.Ping(h.db); err != nil {
		status = http.StatusServiceUnavailable
		checks["database"] = "unavailable"
	}

	// Redis 는 선택 사항: 실패해도 degraded 로만 표시
	if h.cache != nil && h.cache.IsAvailable() {
		checks["redis"] = "ok"
		if err := h.cache.Ping(c.Request.Context()); err != nil {
			checks["redis"] = "degraded"
		}
	}

	state := "ok"
	if status != http.StatusOK {
		state = "unavailable"
	}
	c.JSON(status, gin.H{
		"status":  state,
		"service": "bloc",
		"checks":  checks,
		"time":    time.Now().Unix(),
	})
}
