package repository

import (
	"context"

	"github.com/Domenick1991/flightadmin/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AuditRepository interface {
	Record(ctx context.Context, entry *domain.AuditEntry) error
	ListRecent(ctx context.Context, limit int) ([]domain.AuditEntry, error)
}

type PGAuditRepository struct {
	db *pgxpool.Pool
}

func NewAuditRepository(db *pgxpool.Pool) AuditRepository {
	return &PGAuditRepository{db: db}
}

func (r *PGAuditRepository) Record(ctx context.Context, entry *domain.AuditEntry) error {
	row := r.db.QueryRow(ctx,
		`INSERT INTO audit_log (action, flight_id, flight_number, payload, occurred_at, recorded_at)
		 VALUES ($1, $2, $3, $4, $5, now())
		 RETURNING id, recorded_at`,
		entry.Action, entry.FlightID, entry.FlightNumber, entry.Payload, entry.OccurredAt)
	return row.Scan(&entry.ID, &entry.RecordedAt)
}

func (r *PGAuditRepository) ListRecent(ctx context.Context, limit int) ([]domain.AuditEntry, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, action, flight_id, flight_number, payload, occurred_at, recorded_at FROM audit_log ORDER BY recorded_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]domain.AuditEntry, 0, limit)
	for rows.Next() {
		var e domain.AuditEntry
		if err := rows.Scan(&e.ID, &e.Action, &e.FlightID, &e.FlightNumber, &e.Payload, &e.OccurredAt, &e.RecordedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

var _ AuditRepository = (*PGAuditRepository)(nil)
