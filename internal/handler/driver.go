package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rideshare/internal/domain"
	"rideshare/internal/service"
)

// DriverHandler handles HTTP requests for drivers.
type DriverHandler struct {
	driverService *service.DriverService
}

// NewDriverHandler creates a new DriverHandler.
func NewDriverHandler(driverService *service.DriverService) *DriverHandler {
	return &DriverHandler{driverService: driverService}
}

// RegisterDriverRequest is the HTTP request body for driver registration.
type RegisterDriverRequest struct {
	ID     int64    `json:"id"`
	Name   string   `json:"name"`
	Rating *float64 `json:"rating,omitempty"`
}

// AssignRideRequest is the HTTP request body for assigning a ride.
type AssignRideRequest struct {
	RideID int64 `json:"ride_id"`
}

// DriverResponse is the HTTP response for driver data.
type DriverResponse struct {
	ID            int64          `json:"id"`
	Name          string         `json:"name"`
	Rating        float64        `json:"rating"`
	AssignedCount int            `json:"assigned_count"`
	TotalEarnings float64        `json:"total_earnings"`
	Rides         []RideResponse `json:"rides"`
}

func toDriverResponse(d *domain.Driver) DriverResponse {
	rides := d.AssignedRides()
	return DriverResponse{
		ID:            d.ID,
		Name:          d.Name,
		Rating:        d.Rating,
		AssignedCount: len(rides),
		TotalEarnings: domain.TotalRevenue(rides),
		Rides:         toRideResponses(rides),
	}
}

// Register handles POST /v1/drivers
func (h *DriverHandler) Register(c *gin.Context) {
	var req RegisterDriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	driver, err := h.driverService.Register(c.Request.Context(), service.RegisterDriverRequest{
		ID:     req.ID,
		Name:   req.Name,
		Rating: req.Rating,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, toDriverResponse(driver))
}

// GetDriver handles GET /v1/drivers/:id
func (h *DriverHandler) GetDriver(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	driver, err := h.driverService.GetDriver(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toDriverResponse(driver))
}

// AssignRide handles POST /v1/drivers/:id/rides
func (h *DriverHandler) AssignRide(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req AssignRideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	driver, err := h.driverService.AssignRide(c.Request.Context(), id, req.RideID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toDriverResponse(driver))
}

// ClearRides handles DELETE /v1/drivers/:id/rides
func (h *DriverHandler) ClearRides(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	driver, err := h.driverService.ClearRides(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toDriverResponse(driver))
}

// Summary handles GET /v1/drivers/:id/summary
func (h *DriverHandler) Summary(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	summary, err := h.driverService.Summary(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	respondText(c, summary)
}
