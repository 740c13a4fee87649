package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"rideshare/internal/domain"
	"rideshare/internal/repository"
	"rideshare/internal/service"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// RideResponse is the HTTP representation of a ride.
type RideResponse struct {
	ID            int64    `json:"id"`
	Tier          string   `json:"tier"`
	Pickup        string   `json:"pickup"`
	Dropoff       string   `json:"dropoff"`
	DistanceMiles float64  `json:"distance_miles"`
	Multiplier    *float64 `json:"multiplier,omitempty"`
	Fare          float64  `json:"fare"`
	Description   string   `json:"description"`
}

// toRideResponse converts a ride. Absent rides map to nil.
func toRideResponse(r domain.Ride) *RideResponse {
	if r == nil {
		return nil
	}
	resp := &RideResponse{
		ID:            r.ID(),
		Tier:          string(r.Tier()),
		Pickup:        r.Pickup(),
		Dropoff:       r.Dropoff(),
		DistanceMiles: r.DistanceMiles(),
		Fare:          r.Fare(),
		Description:   r.Describe(),
	}
	if p, ok := r.(*domain.PremiumRide); ok {
		m := p.Multiplier()
		resp.Multiplier = &m
	}
	return resp
}

func toRideResponses(rides []domain.Ride) []RideResponse {
	out := make([]RideResponse, 0, len(rides))
	for _, r := range rides {
		if resp := toRideResponse(r); resp != nil {
			out = append(out, *resp)
		}
	}
	return out
}

// respondError sends an error response with the appropriate HTTP status code.
func respondError(c *gin.Context, err error) {
	code := mapErrorToHTTPStatus(err)
	if code == http.StatusInternalServerError {
		_ = c.Error(err)
	}
	c.JSON(code, ErrorResponse{Error: err.Error()})
}

// respondJSON sends a JSON response with the given status code.
func respondJSON(c *gin.Context, code int, data any) {
	c.JSON(code, data)
}

// respondText sends a plain text report.
func respondText(c *gin.Context, text string) {
	c.String(http.StatusOK, text)
}

// parseID reads a positive integer path parameter.
func parseID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid " + name})
		return 0, false
	}
	return id, true
}

// mapErrorToHTTPStatus maps domain/service/repository errors to HTTP status codes.
func mapErrorToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound

	case errors.Is(err, repository.ErrAlreadyExists):
		return http.StatusConflict

	case errors.Is(err, domain.ErrInvalidArgument),
		errors.Is(err, service.ErrInvalidRideID),
		errors.Is(err, service.ErrInvalidDriverID),
		errors.Is(err, service.ErrInvalidRiderID),
		errors.Is(err, service.ErrInvalidName),
		errors.Is(err, service.ErrUnknownTier):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}
