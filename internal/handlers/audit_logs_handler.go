package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vilis-app/carsrent-api/internal/httperr"
	"github.com/vilis-app/carsrent-api/internal/httpresp"
	"github.com/vilis-app/carsrent-api/internal/middleware"
	"github.com/vilis-app/carsrent-api/internal/models"
)

const (
	defaultAuditLogLimit = 50
	maxAuditLogLimit     = 200
)

type AuditLogsHandler struct {
	db *gorm.DB
}

func NewAuditLogsHandler(db *gorm.DB) *AuditLogsHandler {
	return &AuditLogsHandler{db: db}
}

// ListMine returns the agency's own activity trail, newest first.
func (h *AuditLogsHandler) ListMine(c *gin.Context) {
	agencyID := c.MustGet(middleware.ContextAgencyID).(uint)

	limit := defaultAuditLogLimit
	if raw := c.Query("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			limit = v
		}
	}
	if limit > maxAuditLogLimit {
		limit = maxAuditLogLimit
	}

	var logs []models.AuditLog
	if err := h.db.
		Where("agency_id = ?", agencyID).
		Order("created_at DESC").
		Limit(limit).
		Find(&logs).Error; err != nil {
		httperr.Internal(c, "failed_to_list_audit_logs", "Could not list audit logs.")
		return
	}

	httpresp.List(c, logs)
}
