package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vilis-app/carsrent-api/internal/httperr"
	"github.com/vilis-app/carsrent-api/internal/models"
)

// AdminHandler serves back-office reporting endpoints.
type AdminHandler struct {
	db *gorm.DB
}

func NewAdminHandler(db *gorm.DB) *AdminHandler {
	return &AdminHandler{db: db}
}

func (h *AdminHandler) Stats(c *gin.Context) {
	var agencies, cars, bookings, pending int64

	if err := h.db.Model(&models.Agency{}).Count(&agencies).Error; err != nil {
		httperr.Internal(c, "failed_to_load_stats", "Could not load stats.")
		return
	}
	if err := h.db.Model(&models.Car{}).Count(&cars).Error; err != nil {
		httperr.Internal(c, "failed_to_load_stats", "Could not load stats.")
		return
	}
	if err := h.db.Model(&models.Booking{}).Count(&bookings).Error; err != nil {
		httperr.Internal(c, "failed_to_load_stats", "Could not load stats.")
		return
	}
	if err := h.db.Model(&models.Booking{}).
		Where("status = ?", "pending").
		Count(&pending).Error; err != nil {
		httperr.Internal(c, "failed_to_load_stats", "Could not load stats.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"agencies":         agencies,
		"cars":             cars,
		"bookings":         bookings,
		"pending_bookings": pending,
	})
}
