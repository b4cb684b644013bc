package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Domenick1991/flightadmin/internal/domain"
	"github.com/Domenick1991/flightadmin/internal/repository"
	"github.com/Domenick1991/flightadmin/internal/service/flights"
	"github.com/gin-gonic/gin"
)

type FlightHandler struct {
	service flights.FlightUseCase
}

type flightRequest struct {
	FlightNumber   string  `json:"flightNumber"`
	DepartureCity  string  `json:"departureCity"`
	ArrivalCity    string  `json:"arrivalCity"`
	DepartureDate  string  `json:"departureDate"`
	DepartureTime  string  `json:"departureTime"`
	ArrivalTime    string  `json:"arrivalTime"`
	Price          float64 `json:"price"`
	AvailableSeats int     `json:"availableSeats"`
	AircraftType   string  `json:"aircraftType"`
}

func (r flightRequest) toInput() domain.FlightInput {
	return domain.FlightInput{
		FlightNumber:   r.FlightNumber,
		DepartureCity:  r.DepartureCity,
		ArrivalCity:    r.ArrivalCity,
		DepartureDate:  r.DepartureDate,
		DepartureTime:  r.DepartureTime,
		ArrivalTime:    r.ArrivalTime,
		Price:          r.Price,
		AvailableSeats: r.AvailableSeats,
		AircraftType:   r.AircraftType,
	}
}

func NewFlightHandler(service flights.FlightUseCase) *FlightHandler {
	return &FlightHandler{service: service}
}

// Register mounts read routes on public and mutation routes on guarded.
func (h *FlightHandler) Register(public, guarded *gin.RouterGroup) {
	public.GET("", h.list)
	public.GET("/:id", h.get)
	guarded.POST("", h.create)
	guarded.PUT("/:id", h.update)
	guarded.DELETE("/:id", h.delete)
}

func (h *FlightHandler) list(c *gin.Context) {
	flights, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, flights)
}

func (h *FlightHandler) get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	flight, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, flight)
}

func (h *FlightHandler) create(c *gin.Context) {
	var req flightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.AvailableSeats < 0 || req.Price < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "price and available seats must not be negative"})
		return
	}

	flight, err := h.service.Create(c.Request.Context(), req.toInput())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, flight)
}

func (h *FlightHandler) update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var req flightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.AvailableSeats < 0 || req.Price < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "price and available seats must not be negative"})
		return
	}

	flight, err := h.service.Update(c.Request.Context(), id, req.toInput())
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, flight)
}

func (h *FlightHandler) delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func statusFor(err error) int {
	if errors.Is(err, repository.ErrNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
