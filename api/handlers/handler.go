package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Handler carries the store handle shared by every route. The handle is
// injected at construction so tests can substitute their own store.
type Handler struct {
	db *gorm.DB
}

// New creates a handler bound to the given store
func New(db *gorm.DB) *Handler {
	return &Handler{db: db}
}

// Ping reports process and store health.
func (h *Handler) Ping(c *gin.Context) {
	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.Ping()
	}
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"message": "store unreachable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}
