package flights

import (
	"context"
	"time"

	"github.com/Domenick1991/flightadmin/internal/domain"
	"github.com/Domenick1991/flightadmin/internal/kafka"
	"github.com/Domenick1991/flightadmin/internal/metrics"
	"github.com/Domenick1991/flightadmin/internal/repository"
	"go.uber.org/zap"
)

type FlightUseCase interface {
	List(ctx context.Context) ([]domain.Flight, error)
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
	Create(ctx context.Context, input domain.FlightInput) (*domain.Flight, error)
	Update(ctx context.Context, id int64, input domain.FlightInput) (*domain.Flight, error)
	Delete(ctx context.Context, id int64) error
}

type Cache interface {
	GetFlights(ctx context.Context) ([]domain.Flight, error)
	SetFlights(ctx context.Context, flights []domain.Flight) error
	InvalidateFlights(ctx context.Context) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type FlightService struct {
	repo       repository.FlightRepository
	cache      Cache
	producer   Producer
	auditTopic string
	metrics    *metrics.Metrics
	log        *zap.SugaredLogger
}

type FlightServiceOption func(*FlightService)

func WithAuditProducer(producer Producer, topic string) FlightServiceOption {
	return func(s *FlightService) {
		s.producer = producer
		s.auditTopic = topic
	}
}

func WithMetrics(m *metrics.Metrics) FlightServiceOption {
	return func(s *FlightService) {
		s.metrics = m
	}
}

func NewFlightService(repo repository.FlightRepository, cache Cache, log *zap.SugaredLogger, opts ...FlightServiceOption) *FlightService {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	s := &FlightService{repo: repo, cache: cache, log: log}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *FlightService) List(ctx context.Context) ([]domain.Flight, error) {
	if s.metrics != nil {
		s.metrics.ListRequests.Inc()
	}
	if s.cache != nil {
		if cached, err := s.cache.GetFlights(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	flights, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.SetFlights(ctx, flights); err != nil {
			s.log.Warnw("cache flights", "error", err)
		}
	}
	return flights, nil
}

func (s *FlightService) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *FlightService) Create(ctx context.Context, input domain.FlightInput) (*domain.Flight, error) {
	flight, err := s.repo.Create(ctx, input)
	if err != nil {
		s.countMutation("create", "error")
		return nil, err
	}
	s.afterMutation(ctx, domain.AuditActionCreated, flight)
	s.countMutation("create", "ok")
	return flight, nil
}

func (s *FlightService) Update(ctx context.Context, id int64, input domain.FlightInput) (*domain.Flight, error) {
	flight, err := s.repo.Update(ctx, id, input)
	if err != nil {
		s.countMutation("update", "error")
		return nil, err
	}
	s.afterMutation(ctx, domain.AuditActionUpdated, flight)
	s.countMutation("update", "ok")
	return flight, nil
}

func (s *FlightService) Delete(ctx context.Context, id int64) error {
	flight, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.countMutation("delete", "error")
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		s.countMutation("delete", "error")
		return err
	}
	s.afterMutation(ctx, domain.AuditActionDeleted, flight)
	s.countMutation("delete", "ok")
	return nil
}

// afterMutation drops the list cache and publishes the audit event. Neither
// failure is surfaced to the caller: the write already committed.
func (s *FlightService) afterMutation(ctx context.Context, action domain.AuditAction, flight *domain.Flight) {
	if s.cache != nil {
		if err := s.cache.InvalidateFlights(ctx); err != nil {
			s.log.Warnw("invalidate flights cache", "error", err)
		}
	}
	if s.producer == nil || s.auditTopic == "" {
		return
	}
	event := kafka.FlightEvent{
		Type:         string(action),
		FlightID:     flight.ID,
		FlightNumber: flight.FlightNumber,
		Flight:       flight,
		OccurredAt:   time.Now(),
	}
	if err := s.producer.Publish(ctx, s.auditTopic, flight.FlightNumber, event); err != nil {
		s.log.Warnw("publish audit event", "type", event.Type, "flight_id", flight.ID, "error", err)
	}
}

func (s *FlightService) countMutation(action, outcome string) {
	if s.metrics != nil {
		s.metrics.FlightMutations.WithLabelValues(action, outcome).Inc()
	}
}

var _ FlightUseCase = (*FlightService)(nil)
