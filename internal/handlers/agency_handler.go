package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/vilis-app/carsrent-api/internal/httperr"
	"github.com/vilis-app/carsrent-api/internal/middleware"
	"github.com/vilis-app/carsrent-api/internal/models"
)

// AgencyHandler manages the multi-city service area. The list is
// replace-all on update: the client always sends the full set.
type AgencyHandler struct {
	db *gorm.DB
}

func NewAgencyHandler(db *gorm.DB) *AgencyHandler {
	return &AgencyHandler{db: db}
}

type UpdateCitiesRequest struct {
	Cities []string `json:"cities"`
}

func (h *AgencyHandler) GetCities(c *gin.Context) {
	agencyID := c.MustGet(middleware.ContextAgencyID).(uint)

	cities, err := h.listCities(agencyID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_cities", "Could not load service cities.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"cities": cities})
}

func (h *AgencyHandler) UpdateCities(c *gin.Context) {
	agencyID := c.MustGet(middleware.ContextAgencyID).(uint)
	h.replaceCities(c, agencyID)
}

// AdminUpdateCities lets the back office fix an agency's service area.
func (h *AgencyHandler) AdminUpdateCities(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.NotFound(c, "agency_not_found", "Agency not found.")
		return
	}

	var agency models.Agency
	if err := h.db.First(&agency, uint(id)).Error; err != nil {
		httperr.NotFound(c, "agency_not_found", "Agency not found.")
		return
	}

	h.replaceCities(c, agency.ID)
}

func (h *AgencyHandler) replaceCities(c *gin.Context, agencyID uint) {
	var req UpdateCitiesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("agency_id = ?", agencyID).Delete(&models.AgencyCity{}).Error; err != nil {
			return err
		}

		for _, raw := range req.Cities {
			city := strings.TrimSpace(raw)
			if city == "" {
				continue
			}
			row := models.AgencyCity{AgencyID: agencyID, City: city}
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		httperr.Internal(c, "failed_to_update_cities", "Could not update service cities.")
		return
	}

	cities, err := h.listCities(agencyID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_cities", "Could not load service cities.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"cities": cities})
}

func (h *AgencyHandler) listCities(agencyID uint) ([]string, error) {
	var cities []string
	err := h.db.Model(&models.AgencyCity{}).
		Where("agency_id = ?", agencyID).
		Order("city").
		Pluck("city", &cities).Error
	return cities, err
}
