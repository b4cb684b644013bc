package kafka

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/Domenick1991/flightadmin/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeFlightEvent(t *testing.T) {
	occurred := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	payload, err := json.Marshal(FlightEvent{
		Type:         string(domain.AuditActionUpdated),
		FlightID:     7,
		FlightNumber: "FN700",
		OccurredAt:   occurred,
	})
	require.NoError(t, err)

	event, ok := decodeFlightEvent(payload)

	assert.True(t, ok)
	assert.Equal(t, string(domain.AuditActionUpdated), event.Type)
	assert.Equal(t, int64(7), event.FlightID)
	assert.Equal(t, "FN700", event.FlightNumber)
	assert.True(t, occurred.Equal(event.OccurredAt))
}

func TestDecodeFlightEvent_Undecodable(t *testing.T) {
	_, ok := decodeFlightEvent([]byte("not json"))
	assert.False(t, ok)
}
