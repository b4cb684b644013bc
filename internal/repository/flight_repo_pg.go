package repository

import (
	"context"
	"errors"

	"github.com/Domenick1991/flightadmin/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is returned when a flight id does not exist.
var ErrNotFound = errors.New("flight not found")

type FlightRepository interface {
	List(ctx context.Context) ([]domain.Flight, error)
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
	Create(ctx context.Context, input domain.FlightInput) (*domain.Flight, error)
	Update(ctx context.Context, id int64, input domain.FlightInput) (*domain.Flight, error)
	Delete(ctx context.Context, id int64) error
}

type PGFlightRepository struct {
	db *pgxpool.Pool
}

func NewFlightRepository(db *pgxpool.Pool) FlightRepository {
	return &PGFlightRepository{db: db}
}

const flightColumns = `id, flight_number, departure_city, arrival_city, departure_date, departure_time, arrival_time, price, available_seats, aircraft_type, created_at, updated_at`

func (r *PGFlightRepository) List(ctx context.Context) ([]domain.Flight, error) {
	rows, err := r.db.Query(ctx, `SELECT `+flightColumns+` FROM flights ORDER BY departure_date, departure_time, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	flights := make([]domain.Flight, 0)
	for rows.Next() {
		var f domain.Flight
		if err := scanFlight(rows, &f); err != nil {
			return nil, err
		}
		flights = append(flights, f)
	}
	return flights, rows.Err()
}

func (r *PGFlightRepository) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	row := r.db.QueryRow(ctx, `SELECT `+flightColumns+` FROM flights WHERE id=$1`, id)
	var f domain.Flight
	if err := scanFlight(row, &f); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &f, nil
}

func (r *PGFlightRepository) Create(ctx context.Context, input domain.FlightInput) (*domain.Flight, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO flights (flight_number, departure_city, arrival_city, departure_date, departure_time, arrival_time, price, available_seats, aircraft_type, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now(), now())
		 RETURNING `+flightColumns,
		input.FlightNumber, input.DepartureCity, input.ArrivalCity, input.DepartureDate, input.DepartureTime, input.ArrivalTime, input.Price, input.AvailableSeats, input.AircraftType)
	var f domain.Flight
	if err := scanFlight(row, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *PGFlightRepository) Update(ctx context.Context, id int64, input domain.FlightInput) (*domain.Flight, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE flights SET flight_number=$2, departure_city=$3, arrival_city=$4, departure_date=$5, departure_time=$6, arrival_time=$7, price=$8, available_seats=$9, aircraft_type=$10, updated_at=now()
		 WHERE id=$1
		 RETURNING `+flightColumns,
		id, input.FlightNumber, input.DepartureCity, input.ArrivalCity, input.DepartureDate, input.DepartureTime, input.ArrivalTime, input.Price, input.AvailableSeats, input.AircraftType)
	var f domain.Flight
	if err := scanFlight(row, &f); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &f, nil
}

func (r *PGFlightRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.Exec(ctx, `DELETE FROM flights WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanFlight(row pgx.Row, f *domain.Flight) error {
	return row.Scan(&f.ID, &f.FlightNumber, &f.DepartureCity, &f.ArrivalCity, &f.DepartureDate, &f.DepartureTime, &f.ArrivalTime, &f.Price, &f.AvailableSeats, &f.AircraftType, &f.CreatedAt, &f.UpdatedAt)
}

var _ FlightRepository = (*PGFlightRepository)(nil)
