package domain

import "time"

// Flight is one scheduled flight as the admin surface edits it. Departure
// date and the two clock times stay strings end to end: the service stores
// them verbatim and the console edits them verbatim.
type Flight struct {
	ID             int64     `json:"id"`
	FlightNumber   string    `json:"flightNumber"`
	DepartureCity  string    `json:"departureCity"`
	ArrivalCity    string    `json:"arrivalCity"`
	DepartureDate  string    `json:"departureDate"`
	DepartureTime  string    `json:"departureTime"`
	ArrivalTime    string    `json:"arrivalTime"`
	Price          float64   `json:"price"`
	AvailableSeats int       `json:"availableSeats"`
	AircraftType   string    `json:"aircraftType"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// FlightInput is the field set sent on create or full update; the service
// assigns the identifier and the timestamps.
type FlightInput struct {
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
