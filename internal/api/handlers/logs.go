package handlers

import (
	"strconv"

	"illyrian-api/internal/services"

	"github.com/gin-gonic/gin"
)

type LogsHandler struct {
	auditService *services.AuditService
}

func NewLogsHandler(auditService *services.AuditService) *LogsHandler {
	return &LogsHandler{auditService: auditService}
}

// GetLogs returns the newest audit records.
func (h *LogsHandler) GetLogs(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	logs, err := h.auditService.RecentLogs(limit)
	if err != nil {
		c.Error(err)
		c.JSON(500, gin.H{"message": "An error occurred while fetching logs", "error": err.Error()})
		return
	}

	c.JSON(200, logs)
}
