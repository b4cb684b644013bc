package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Domenick1991/flightadmin/internal/domain"
	"github.com/Domenick1991/flightadmin/internal/repository"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockFlightUseCase is a mock implementation of flights.FlightUseCase
type MockFlightUseCase struct {
	mock.Mock
}

func (m *MockFlightUseCase) List(ctx context.Context) ([]domain.Flight, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockFlightUseCase) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func (m *MockFlightUseCase) Create(ctx context.Context, input domain.FlightInput) (*domain.Flight, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func (m *MockFlightUseCase) Update(ctx context.Context, id int64, input domain.FlightInput) (*domain.Flight, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func (m *MockFlightUseCase) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestFlightHandler_list(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/api/flights", nil)

	flights := []domain.Flight{
		{ID: 1, FlightNumber: "FN100", DepartureCity: "Delhi", ArrivalCity: "Mumbai", AvailableSeats: 150, Price: 199.99},
	}

	mockService.On("List", c.Request.Context()).Return(flights, nil)

	handler.list(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var got []domain.Flight
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, flights, got)

	mockService.AssertExpectations(t)
}

func TestFlightHandler_get_NotFound(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Params = gin.Params{{Key: "id", Value: "99"}}
	c.Request = httptest.NewRequest("GET", "/api/flights/99", nil)

	mockService.On("GetByID", c.Request.Context(), int64(99)).Return(nil, repository.ErrNotFound)

	handler.get(c)

	assert.Equal(t, http.StatusNotFound, w.Code)

	mockService.AssertExpectations(t)
}

func TestFlightHandler_create(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := `{"flightNumber":"FN100","departureCity":"Delhi","arrivalCity":"Mumbai","departureDate":"2026-09-01","departureTime":"08:30","arrivalTime":"10:45","price":199.99,"availableSeats":150,"aircraftType":"A320"}`
	c.Request = httptest.NewRequest("POST", "/api/flights", bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")

	created := &domain.Flight{ID: 7, FlightNumber: "FN100", DepartureCity: "Delhi", ArrivalCity: "Mumbai"}

	mockService.On("Create", c.Request.Context(), domain.FlightInput{
		FlightNumber:   "FN100",
		DepartureCity:  "Delhi",
		ArrivalCity:    "Mumbai",
		DepartureDate:  "2026-09-01",
		DepartureTime:  "08:30",
		ArrivalTime:    "10:45",
		Price:          199.99,
		AvailableSeats: 150,
		AircraftType:   "A320",
	}).Return(created, nil)

	handler.create(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	mockService.AssertExpectations(t)
}

func TestFlightHandler_create_NegativeSeats(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := `{"flightNumber":"FN100","availableSeats":-1}`
	c.Request = httptest.NewRequest("POST", "/api/flights", bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "Create")
}

func TestFlightHandler_update(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Params = gin.Params{{Key: "id", Value: "7"}}
	body := `{"flightNumber":"FN101","departureCity":"Pune","arrivalCity":"Goa","price":89.5,"availableSeats":90}`
	c.Request = httptest.NewRequest("PUT", "/api/flights/7", bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")

	updated := &domain.Flight{ID: 7, FlightNumber: "FN101", DepartureCity: "Pune", ArrivalCity: "Goa"}

	mockService.On("Update", c.Request.Context(), int64(7), domain.FlightInput{
		FlightNumber:   "FN101",
		DepartureCity:  "Pune",
		ArrivalCity:    "Goa",
		Price:          89.5,
		AvailableSeats: 90,
	}).Return(updated, nil)

	handler.update(c)

	assert.Equal(t, http.StatusOK, w.Code)

	mockService.AssertExpectations(t)
}

func TestFlightHandler_delete(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Params = gin.Params{{Key: "id", Value: "7"}}
	c.Request = httptest.NewRequest("DELETE", "/api/flights/7", nil)

	mockService.On("Delete", c.Request.Context(), int64(7)).Return(nil)

	handler.delete(c)
	c.Writer.WriteHeaderNow()

	assert.Equal(t, http.StatusNoContent, w.Code)

	mockService.AssertExpectations(t)
}
