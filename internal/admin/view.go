package admin

import (
	"context"
	"fmt"
	"strings"

	"github.com/Domenick1991/flightadmin/internal/domain"
	"go.uber.org/zap"
)

// Mode is the modal state. A single enum makes the "edit and create both
// open" state unrepresentable.
type Mode int

const (
	ModeClosed Mode = iota
	ModeEditing
	ModeCreating
)

// View is the flight admin view controller. All state is owned by the
// goroutine driving the view; there is no internal locking.
type View struct {
	api      FlightAPI
	sessions SessionStore
	nav      Navigator
	notifier Notifier
	confirm  Confirmer
	log      *zap.SugaredLogger

	mounted bool
	loading bool
	flights []domain.Flight
	search  string

	mode      Mode
	editingID int64
	draft     FlightForm
}

func NewView(api FlightAPI, sessions SessionStore, nav Navigator, notifier Notifier, confirm Confirmer, log *zap.SugaredLogger) *View {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &View{
		api:      api,
		sessions: sessions,
		nav:      nav,
		notifier: notifier,
		confirm:  confirm,
		log:      log,
	}
}

// Mount runs the session guard and, when a credential is present, the first
// load. Without a credential the loader is never invoked.
func (v *View) Mount(ctx context.Context) {
	v.mounted = true
	token, ok := v.sessions.Get(SessionTokenKey)
	if !ok || token == "" {
		v.notifier.Notify(Notification{
			Title:       "Access denied",
			Description: "Please sign in as an administrator",
			Severity:    SeverityDestructive,
		})
		v.nav.NavigateTo(LoginRoute)
		return
	}
	v.Reload(ctx)
}

// Unmount tears the view down; any remote result arriving afterwards is
// discarded instead of written into dead state.
func (v *View) Unmount() {
	v.mounted = false
}

// Reload fetches the full list. One attempt, no retry; on failure the
// previous list is retained.
func (v *View) Reload(ctx context.Context) {
	v.loading = true
	flights, err := v.api.ListAllFlights(ctx)
	if !v.mounted {
		return
	}
	v.loading = false
	if err != nil {
		v.log.Errorw("load flights", "error", err)
		v.notifier.Notify(Notification{
			Title:       "Error",
			Description: "Failed to load flights",
			Severity:    SeverityDestructive,
		})
		return
	}
	v.flights = flights
}

func (v *View) Loading() bool { return v.loading }

func (v *View) SearchTerm() string { return v.search }

func (v *View) SetSearch(term string) { v.search = term }

// Flights returns the filtered list: every record whose flight number,
// departure city or arrival city contains the search term, case-folded.
func (v *View) Flights() []domain.Flight {
	return filterFlights(v.flights, v.search)
}

func filterFlights(flights []domain.Flight, term string) []domain.Flight {
	if term == "" {
		return flights
	}
	needle := strings.ToLower(term)
	filtered := make([]domain.Flight, 0, len(flights))
	for _, f := range flights {
		if strings.Contains(strings.ToLower(f.FlightNumber), needle) ||
			strings.Contains(strings.ToLower(f.DepartureCity), needle) ||
			strings.Contains(strings.ToLower(f.ArrivalCity), needle) {
			filtered = append(filtered, f)
		}
	}
	return filtered
}

func (v *View) Mode() Mode { return v.mode }

// Draft exposes the modal's mutable form for field binding.
func (v *View) Draft() *FlightForm { return &v.draft }

func (v *View) EditingID() int64 { return v.editingID }

// OpenEdit copies the record into the draft and opens the edit modal.
func (v *View) OpenEdit(f domain.Flight) {
	v.mode = ModeEditing
	v.editingID = f.ID
	v.draft = formFromFlight(f)
}

// OpenCreate opens the create modal over an all-blank draft.
func (v *View) OpenCreate() {
	v.mode = ModeCreating
	v.editingID = 0
	v.draft = FlightForm{}
}

// Cancel closes whichever modal is open and discards the draft.
func (v *View) Cancel() {
	v.closeModal()
}

func (v *View) closeModal() {
	v.mode = ModeClosed
	v.editingID = 0
	v.draft = FlightForm{}
}

// SubmitCreate sends the create draft. On success the modal closes, the
// draft resets and the full list is refetched; on failure both stay put so
// the user can retry from the still-open form.
func (v *View) SubmitCreate(ctx context.Context) {
	if v.mode != ModeCreating {
		return
	}
	_, err := v.api.CreateFlight(ctx, v.draft.Input())
	if !v.mounted {
		return
	}
	if err != nil {
		v.log.Errorw("create flight", "error", err)
		v.notifier.Notify(Notification{
			Title:       "Error",
			Description: "Failed to create flight",
			Severity:    SeverityDestructive,
		})
		return
	}
	v.notifier.Notify(Notification{
		Title:       "Success",
		Description: "Flight created",
		Severity:    SeverityDefault,
	})
	v.closeModal()
	v.Reload(ctx)
}

// SubmitUpdate sends the edited field set for the selected record.
func (v *View) SubmitUpdate(ctx context.Context) {
	if v.mode != ModeEditing {
		return
	}
	_, err := v.api.UpdateFlight(ctx, v.editingID, v.draft.Input())
	if !v.mounted {
		return
	}
	if err != nil {
		v.log.Errorw("update flight", "id", v.editingID, "error", err)
		v.notifier.Notify(Notification{
			Title:       "Error",
			Description: "Failed to update flight",
			Severity:    SeverityDestructive,
		})
		return
	}
	v.notifier.Notify(Notification{
		Title:       "Success",
		Description: "Flight updated",
		Severity:    SeverityDefault,
	})
	v.closeModal()
	v.Reload(ctx)
}

// Delete asks for confirmation first; declined means no remote call and no
// state change. On success any open modal closes and the list is refetched.
func (v *View) Delete(ctx context.Context, id int64) {
	if !v.confirm.Confirm(fmt.Sprintf("Delete flight %d? This cannot be undone.", id)) {
		return
	}
	err := v.api.DeleteFlight(ctx, id)
	if !v.mounted {
		return
	}
	if err != nil {
		v.log.Errorw("delete flight", "id", id, "error", err)
		v.notifier.Notify(Notification{
			Title:       "Error",
			Description: "Failed to delete flight",
			Severity:    SeverityDestructive,
		})
		return
	}
	v.notifier.Notify(Notification{
		Title:       "Success",
		Description: "Flight deleted",
		Severity:    SeverityDefault,
	})
	v.closeModal()
	v.Reload(ctx)
}
