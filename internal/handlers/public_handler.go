package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vilis-app/carsrent-api/internal/domain/catalog"
	"github.com/vilis-app/carsrent-api/internal/httperr"
	"github.com/vilis-app/carsrent-api/internal/infra/repository"
	"github.com/vilis-app/carsrent-api/internal/models"
)

// PublicHandler serves the unauthenticated catalog: search, car detail
// and per-agency storefronts.
type PublicHandler struct {
	db   *gorm.DB
	cars *repository.CarGormRepository
}

func NewPublicHandler(db *gorm.DB, cars *repository.CarGormRepository) *PublicHandler {
	return &PublicHandler{db: db, cars: cars}
}

// SearchCars filters the catalog from query parameters. Price bounds
// accept both camelCase and snake_case names for older clients.
func (h *PublicHandler) SearchCars(c *gin.Context) {
	f := catalog.Filters{
		Location:  strings.TrimSpace(c.Query("location")),
		Category:  strings.ToLower(strings.TrimSpace(c.Query("category"))),
		Chauffeur: strings.ToLower(strings.TrimSpace(c.Query("chauffeur"))),
	}

	f.MinPrice = parsePriceParam(c, "minPrice", "min_price")
	f.MaxPrice = parsePriceParam(c, "maxPrice", "max_price")

	rows, err := h.cars.Search(c.Request.Context(), f)
	if err != nil {
		httperr.Internal(c, "failed_to_search_cars", "Could not search cars.")
		return
	}
	if rows == nil {
		rows = []repository.CarRow{}
	}

	c.JSON(http.StatusOK, rows)
}

func (h *PublicHandler) GetCar(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.NotFound(c, "car_not_found", "Car not found.")
		return
	}

	row, err := h.cars.GetWithAgency(c.Request.Context(), uint(id))
	if err != nil {
		httperr.NotFound(c, "car_not_found", "Car not found.")
		return
	}

	c.JSON(http.StatusOK, row)
}

// AgencyCatalog is the public storefront for a single agency.
func (h *PublicHandler) AgencyCatalog(c *gin.Context) {
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

	cars, err := h.cars.ListByAgency(c.Request.Context(), agency.ID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_cars", "Could not list cars.")
		return
	}
	if cars == nil {
		cars = []models.Car{}
	}

	c.JSON(http.StatusOK, gin.H{
		"agency": agency,
		"cars":   cars,
	})
}

// parsePriceParam reads the first of the given query names that parses
// as a number; unparseable values are ignored, not rejected.
func parsePriceParam(c *gin.Context, names ...string) *float64 {
	for _, name := range names {
		raw := strings.TrimSpace(c.Query(name))
		if raw == "" {
			continue
		}
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			return &v
		}
	}
	return nil
}
