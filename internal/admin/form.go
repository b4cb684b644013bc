package admin

import (
	"strconv"

	"github.com/Domenick1991/flightadmin/internal/domain"
)

// FlightForm is the draft a modal edits. Every field is a string so the
// frontend can bind raw input; numeric fields are coerced on submit and the
// server stays authoritative for validity.
type FlightForm struct {
	FlightNumber   string
	DepartureCity  string
	ArrivalCity    string
	DepartureDate  string
	DepartureTime  string
	ArrivalTime    string
	Price          string
	AvailableSeats string
	AircraftType   string
}

func formFromFlight(f domain.Flight) FlightForm {
	return FlightForm{
		FlightNumber:   f.FlightNumber,
		DepartureCity:  f.DepartureCity,
		ArrivalCity:    f.ArrivalCity,
		DepartureDate:  f.DepartureDate,
		DepartureTime:  f.DepartureTime,
		ArrivalTime:    f.ArrivalTime,
		Price:          strconv.FormatFloat(f.Price, 'f', -1, 64),
		AvailableSeats: strconv.Itoa(f.AvailableSeats),
		AircraftType:   f.AircraftType,
	}
}

// Input coerces the draft into the wire shape. Unparseable numerics coerce
// to zero rather than failing locally.
func (f FlightForm) Input() domain.FlightInput {
	price, _ := strconv.ParseFloat(f.Price, 64)
	seats, _ := strconv.Atoi(f.AvailableSeats)
	return domain.FlightInput{
		FlightNumber:   f.FlightNumber,
		DepartureCity:  f.DepartureCity,
		ArrivalCity:    f.ArrivalCity,
		DepartureDate:  f.DepartureDate,
		DepartureTime:  f.DepartureTime,
		ArrivalTime:    f.ArrivalTime,
		Price:          price,
		AvailableSeats: seats,
		AircraftType:   f.AircraftType,
	}
}

// IsBlank reports whether every field is empty, the state a create draft
// returns to after a successful create or an explicit cancel.
func (f FlightForm) IsBlank() bool {
	return f == FlightForm{}
}
