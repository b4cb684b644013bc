package domain

import "time"

type AuditAction string

const (
	AuditActionCreated AuditAction = "flight_created"
	AuditActionUpdated AuditAction = "flight_updated"
	AuditActionDeleted AuditAction = "flight_deleted"
)

// AuditEntry is one persisted record of a flight mutation.
type AuditEntry struct {
	ID           int64
	Action       AuditAction
	FlightID     int64
	FlightNumber string
	Payload      []byte
	OccurredAt   time.Time
	RecordedAt   time.Time
}
