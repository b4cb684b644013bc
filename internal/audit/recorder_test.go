package audit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Domenick1991/flightadmin/internal/domain"
	"github.com/Domenick1991/flightadmin/internal/kafka"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockAuditRepository struct {
	mock.Mock
}

func (m *MockAuditRepository) Record(ctx context.Context, entry *domain.AuditEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockAuditRepository) ListRecent(ctx context.Context, limit int) ([]domain.AuditEntry, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]domain.AuditEntry), args.Error(1)
}

func TestRecorder_Handle(t *testing.T) {
	repo := &MockAuditRepository{}
	recorder := NewRecorder(repo, nil)

	ctx := context.Background()
	event := kafka.FlightEvent{
		Type:         string(domain.AuditActionDeleted),
		FlightID:     7,
		FlightNumber: "FN700",
		OccurredAt:   time.Now(),
	}

	repo.On("Record", ctx, mock.MatchedBy(func(e *domain.AuditEntry) bool {
		return e.Action == domain.AuditActionDeleted && e.FlightID == 7 && len(e.Payload) > 0
	})).Return(nil).Once()

	assert.NoError(t, recorder.Handle(ctx, event))
	repo.AssertExpectations(t)
}

func TestRecorder_Handle_RepoError(t *testing.T) {
	repo := &MockAuditRepository{}
	recorder := NewRecorder(repo, nil)

	repo.On("Record", mock.Anything, mock.Anything).Return(errors.New("insert failed")).Once()

	err := recorder.Handle(context.Background(), kafka.FlightEvent{Type: "flight_created"})
	assert.Error(t, err)
}
