package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rideshare/internal/domain"
	"rideshare/internal/service"
)

// RiderHandler handles HTTP requests for riders.
type RiderHandler struct {
	riderService *service.RiderService
}

// NewRiderHandler creates a new RiderHandler.
func NewRiderHandler(riderService *service.RiderService) *RiderHandler {
	return &RiderHandler{riderService: riderService}
}

// RegisterRiderRequest is the HTTP request body for rider registration.
type RegisterRiderRequest struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// RequestRideRequest is the HTTP request body for requesting a ride.
type RequestRideRequest struct {
	RideID int64 `json:"ride_id"`
}

// RiderResponse is the HTTP response for rider data.
type RiderResponse struct {
	ID    int64          `json:"id"`
	Name  string         `json:"name"`
	Rides []RideResponse `json:"rides"`
}

func toRiderResponse(r *domain.Rider) RiderResponse {
	return RiderResponse{
		ID:    r.ID,
		Name:  r.Name,
		Rides: toRideResponses(r.RequestedRides()),
	}
}

// Register handles POST /v1/riders
func (h *RiderHandler) Register(c *gin.Context) {
	var req RegisterRiderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	rider, err := h.riderService.Register(c.Request.Context(), req.ID, req.Name)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, toRiderResponse(rider))
}

// GetRider handles GET /v1/riders/:id
func (h *RiderHandler) GetRider(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	rider, err := h.riderService.GetRider(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toRiderResponse(rider))
}

// RequestRide handles POST /v1/riders/:id/rides
func (h *RiderHandler) RequestRide(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req RequestRideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	rider, err := h.riderService.RequestRide(c.Request.Context(), id, req.RideID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toRiderResponse(rider))
}

// History handles GET /v1/riders/:id/history
func (h *RiderHandler) History(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	history, err := h.riderService.History(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	respondText(c, history)
}
