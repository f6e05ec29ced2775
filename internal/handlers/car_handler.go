package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vilis-app/carsrent-api/internal/audit"
	"github.com/vilis-app/carsrent-api/internal/domain/pricing"
	"github.com/vilis-app/carsrent-api/internal/httperr"
	"github.com/vilis-app/carsrent-api/internal/middleware"
	"github.com/vilis-app/carsrent-api/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type CarHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewCarHandler(db *gorm.DB, auditDispatcher *audit.Dispatcher) *CarHandler {
	return &CarHandler{
		db:    db,
		audit: auditDispatcher,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateCarRequest struct {
	Title        string  `json:"title" binding:"required"`
	DailyPrice   float64 `json:"daily_price" binding:"required"`
	ImageURL     string  `json:"image_url" binding:"required"`
	Year         int     `json:"year" binding:"required"`
	Transmission string  `json:"transmission" binding:"required"`
	Seats        int     `json:"seats" binding:"required"`
	Doors        int     `json:"doors" binding:"required"`
	FuelType     string  `json:"fuel_type" binding:"required"`
	Category     string  `json:"category" binding:"required"`

	ChauffeurOption string   `json:"chauffeur_option"`
	Delivery        string   `json:"delivery"`
	Deposit         *float64 `json:"deposit"`
	MileageLimit    string   `json:"mileage_limit"`
	Insurance       string   `json:"insurance"`
	MinAge          *int     `json:"min_age"`
	LicensePlate    string   `json:"license_plate"`
	MapsURL         string   `json:"maps_url"`

	Options    []string            `json:"options"`
	PriceTiers []pricing.TierInput `json:"price_tiers"`
}

// UpdateCarRequest is a partial update: nil means "leave unchanged".
// Deposit is raw JSON so an explicit null can clear the field.
type UpdateCarRequest struct {
	Title        *string  `json:"title"`
	DailyPrice   *float64 `json:"daily_price"`
	ImageURL     *string  `json:"image_url"`
	Year         *int     `json:"year"`
	Transmission *string  `json:"transmission"`
	Seats        *int     `json:"seats"`
	Doors        *int     `json:"doors"`
	FuelType     *string  `json:"fuel_type"`
	Category     *string  `json:"category"`

	ChauffeurOption *string         `json:"chauffeur_option"`
	Delivery        *string         `json:"delivery"`
	Deposit         json.RawMessage `json:"deposit"`
	MileageLimit    *string         `json:"mileage_limit"`
	Insurance       *string         `json:"insurance"`
	MinAge          *int            `json:"min_age"`
	LicensePlate    *string         `json:"license_plate"`
	MapsURL         *string         `json:"maps_url"`

	Options    *[]string            `json:"options"`
	PriceTiers *[]pricing.TierInput `json:"price_tiers"`
}

// ======================================================
// HELPERS
// ======================================================

func maxCarYear() int {
	return time.Now().Year() + 1
}

func trimToNil(s string) *string {
	t := strings.TrimSpace(s)
	if t == "" {
		return nil
	}
	return &t
}

// ======================================================
// CREATE
// ======================================================

func (h *CarHandler) Create(c *gin.Context) {
	agencyID := c.MustGet(middleware.ContextAgencyID).(uint)

	var req CreateCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	if req.DailyPrice <= 0 {
		httperr.BadRequest(c, "invalid_daily_price", "Daily price must be positive.")
		return
	}
	if req.Year < 1990 || req.Year > maxCarYear() {
		httperr.BadRequest(c, "invalid_year", "Year out of range.")
		return
	}
	if req.Seats < 1 || req.Seats > 9 {
		httperr.BadRequest(c, "invalid_seats", "Seats must be between 1 and 9.")
		return
	}
	if req.Doors < 2 || req.Doors > 6 {
		httperr.BadRequest(c, "invalid_doors", "Doors must be between 2 and 6.")
		return
	}

	category := strings.ToLower(strings.TrimSpace(req.Category))
	if !models.IsValidCategory(category) {
		httperr.BadRequest(c, "invalid_category", "Unknown car category.")
		return
	}

	// Unknown chauffeur values degrade to 'no' rather than rejecting.
	chauffeur := strings.ToLower(strings.TrimSpace(req.ChauffeurOption))
	if !models.IsValidChauffeurOption(chauffeur) {
		chauffeur = "no"
	}

	minAge := 21
	if req.MinAge != nil {
		if *req.MinAge < 18 || *req.MinAge > 30 {
			httperr.BadRequest(c, "invalid_min_age", "Minimum age must be between 18 and 30.")
			return
		}
		minAge = *req.MinAge
	}

	if req.Deposit != nil && *req.Deposit < 0 {
		httperr.BadRequest(c, "invalid_deposit", "Deposit must be zero or positive.")
		return
	}

	tiers, err := pricing.NormalizeTiers(req.PriceTiers)
	if err != nil {
		httperr.Respond(c, err, "invalid_price_tiers", "Invalid price tiers.")
		return
	}

	mileage := strings.TrimSpace(req.MileageLimit)
	if mileage == "" {
		mileage = "illimité"
	}
	insurance := strings.TrimSpace(req.Insurance)
	if insurance == "" {
		insurance = "incluse"
	}

	car := models.Car{
		AgencyID:        agencyID,
		Title:           strings.TrimSpace(req.Title),
		DailyPrice:      req.DailyPrice,
		ImageURL:        strings.TrimSpace(req.ImageURL),
		Year:            req.Year,
		Transmission:    req.Transmission,
		Seats:           req.Seats,
		Doors:           req.Doors,
		FuelType:        req.FuelType,
		ChauffeurOption: chauffeur,
		Category:        category,
		Delivery:        trimToNil(req.Delivery),
		Deposit:         req.Deposit,
		MileageLimit:    mileage,
		Insurance:       insurance,
		MinAge:          minAge,
		LicensePlate:    trimToNil(req.LicensePlate),
		MapsURL:         trimToNil(req.MapsURL),
		Options:         models.NormalizeOptions(req.Options),
		PriceTiers:      tiers,
	}

	if err := h.db.Create(&car).Error; err != nil {
		httperr.Internal(c, "failed_to_create_car", "Could not create the car.")
		return
	}

	h.audit.Dispatch(audit.Event{
		AgencyID: agencyID,
		Action:   "car_created",
		Entity:   "car",
		EntityID: &car.ID,
	})

	c.JSON(http.StatusCreated, gin.H{"car": car})
}

// ======================================================
// UPDATE (partial, owner only)
// ======================================================

func (h *CarHandler) Update(c *gin.Context) {
	agencyID := c.MustGet(middleware.ContextAgencyID).(uint)

	car, ok := h.ownedCar(c, agencyID)
	if !ok {
		return
	}

	var req UpdateCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	if req.Title != nil {
		car.Title = strings.TrimSpace(*req.Title)
	}
	if req.ImageURL != nil {
		car.ImageURL = strings.TrimSpace(*req.ImageURL)
	}
	if req.Transmission != nil {
		car.Transmission = *req.Transmission
	}
	if req.FuelType != nil {
		car.FuelType = *req.FuelType
	}
	if req.MileageLimit != nil {
		car.MileageLimit = *req.MileageLimit
	}
	if req.Insurance != nil {
		car.Insurance = *req.Insurance
	}

	if req.DailyPrice != nil {
		if *req.DailyPrice <= 0 {
			httperr.BadRequest(c, "invalid_daily_price", "Daily price must be positive.")
			return
		}
		car.DailyPrice = *req.DailyPrice
	}
	if req.Year != nil {
		if *req.Year < 1990 || *req.Year > maxCarYear() {
			httperr.BadRequest(c, "invalid_year", "Year out of range.")
			return
		}
		car.Year = *req.Year
	}
	if req.Seats != nil {
		if *req.Seats < 1 || *req.Seats > 9 {
			httperr.BadRequest(c, "invalid_seats", "Seats must be between 1 and 9.")
			return
		}
		car.Seats = *req.Seats
	}
	if req.Doors != nil {
		if *req.Doors < 2 || *req.Doors > 6 {
			httperr.BadRequest(c, "invalid_doors", "Doors must be between 2 and 6.")
			return
		}
		car.Doors = *req.Doors
	}
	if req.MinAge != nil {
		if *req.MinAge < 18 || *req.MinAge > 30 {
			httperr.BadRequest(c, "invalid_min_age", "Minimum age must be between 18 and 30.")
			return
		}
		car.MinAge = *req.MinAge
	}

	if req.Category != nil {
		category := strings.ToLower(strings.TrimSpace(*req.Category))
		if !models.IsValidCategory(category) {
			httperr.BadRequest(c, "invalid_category", "Unknown car category.")
			return
		}
		car.Category = category
	}
	if req.ChauffeurOption != nil {
		chauffeur := strings.ToLower(strings.TrimSpace(*req.ChauffeurOption))
		if !models.IsValidChauffeurOption(chauffeur) {
			httperr.BadRequest(c, "invalid_chauffeur_option", "Unknown chauffeur option.")
			return
		}
		car.ChauffeurOption = chauffeur
	}

	if req.Delivery != nil {
		car.Delivery = trimToNil(*req.Delivery)
	}
	if req.LicensePlate != nil {
		car.LicensePlate = trimToNil(*req.LicensePlate)
	}
	if req.MapsURL != nil {
		car.MapsURL = trimToNil(*req.MapsURL)
	}

	if len(req.Deposit) > 0 {
		if string(req.Deposit) == "null" {
			car.Deposit = nil
		} else {
			var d float64
			if err := json.Unmarshal(req.Deposit, &d); err != nil || d < 0 {
				httperr.BadRequest(c, "invalid_deposit", "Deposit must be zero or positive.")
				return
			}
			car.Deposit = &d
		}
	}

	if req.Options != nil {
		car.Options = models.NormalizeOptions(*req.Options)
	}

	if req.PriceTiers != nil {
		tiers, err := pricing.NormalizeTiers(*req.PriceTiers)
		if err != nil {
			httperr.Respond(c, err, "invalid_price_tiers", "Invalid price tiers.")
			return
		}
		car.PriceTiers = tiers
	}

	if err := h.db.Save(car).Error; err != nil {
		httperr.Internal(c, "failed_to_update_car", "Could not update the car.")
		return
	}

	h.audit.Dispatch(audit.Event{
		AgencyID: agencyID,
		Action:   "car_updated",
		Entity:   "car",
		EntityID: &car.ID,
	})

	c.JSON(http.StatusOK, gin.H{"car": car})
}

// ======================================================
// DELETE
// ======================================================

func (h *CarHandler) Delete(c *gin.Context) {
	agencyID := c.MustGet(middleware.ContextAgencyID).(uint)

	car, ok := h.ownedCar(c, agencyID)
	if !ok {
		return
	}

	// Bookings cascade with the car.
	if err := h.db.Delete(car).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_car", "Could not delete the car.")
		return
	}

	h.audit.Dispatch(audit.Event{
		AgencyID: agencyID,
		Action:   "car_deleted",
		Entity:   "car",
		EntityID: &car.ID,
	})

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// ======================================================
// LIST (own cars)
// ======================================================

func (h *CarHandler) ListMine(c *gin.Context) {
	agencyID := c.MustGet(middleware.ContextAgencyID).(uint)

	var cars []models.Car
	if err := h.db.
		Where("agency_id = ?", agencyID).
		Order("created_at DESC").
		Find(&cars).Error; err != nil {
		httperr.Internal(c, "failed_to_list_cars", "Could not list cars.")
		return
	}

	c.JSON(http.StatusOK, cars)
}

// ownedCar loads the :id car and enforces ownership; it writes the error
// response itself and reports success through the bool.
func (h *CarHandler) ownedCar(c *gin.Context, agencyID uint) (*models.Car, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.NotFound(c, "car_not_found", "Car not found.")
		return nil, false
	}

	var car models.Car
	if err := h.db.First(&car, uint(id)).Error; err != nil {
		httperr.NotFound(c, "car_not_found", "Car not found.")
		return nil, false
	}

	if car.AgencyID != agencyID {
		httperr.Forbidden(c, "forbidden", "Car belongs to another agency.")
		return nil, false
	}

	return &car, true
}
