// Package admin holds the flight admin console core: a view controller that
// lists, searches, creates, edits and deletes flights through a remote API.
// Every collaborator is an interface so the controller can be driven by a
// terminal frontend in cmd/admin and by fakes in tests.
package admin

import (
	"context"

	"github.com/Domenick1991/flightadmin/internal/domain"
)

// SessionTokenKey names the persisted admin credential.
const SessionTokenKey = "adminToken"

// LoginRoute is where the view redirects when the credential is absent.
const LoginRoute = "/login"

// FlightAPI is the remote flight service as the view consumes it.
type FlightAPI interface {
	ListAllFlights(ctx context.Context) ([]domain.Flight, error)
	CreateFlight(ctx context.Context, input domain.FlightInput) (*domain.Flight, error)
	UpdateFlight(ctx context.Context, id int64, input domain.FlightInput) (*domain.Flight, error)
	DeleteFlight(ctx context.Context, id int64) error
}

// SessionStore is the locally persisted credential store.
type SessionStore interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Clear(key string) error
}

// Navigator performs a programmatic redirect to a named route.
type Navigator interface {
	NavigateTo(route string)
}

type Severity string

const (
	SeverityDefault     Severity = "default"
	SeverityDestructive Severity = "destructive"
)

// Notification is one transient user-visible message.
type Notification struct {
	Title       string
	Description string
	Severity    Severity
}

type Notifier interface {
	Notify(n Notification)
}

// Confirmer asks the user a blocking yes/no question.
type Confirmer interface {
	Confirm(prompt string) bool
}
