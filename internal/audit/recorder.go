package audit

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Domenick1991/flightadmin/internal/domain"
	"github.com/Domenick1991/flightadmin/internal/kafka"
	"github.com/Domenick1991/flightadmin/internal/repository"
	"go.uber.org/zap"
)

// Recorder persists consumed flight events into the audit log.
type Recorder struct {
	repo repository.AuditRepository
	log  *zap.SugaredLogger
}

func NewRecorder(repo repository.AuditRepository, log *zap.SugaredLogger) *Recorder {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Recorder{repo: repo, log: log}
}

func (r *Recorder) Handle(ctx context.Context, event kafka.FlightEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	entry := &domain.AuditEntry{
		Action:       domain.AuditAction(event.Type),
		FlightID:     event.FlightID,
		FlightNumber: event.FlightNumber,
		Payload:      payload,
		OccurredAt:   event.OccurredAt,
	}
	if err := r.repo.Record(ctx, entry); err != nil {
		return fmt.Errorf("record audit entry: %w", err)
	}

	r.log.Infow("audit entry recorded",
		"action", event.Type,
		"flight_id", event.FlightID,
		"flight_number", event.FlightNumber,
	)
	return nil
}
