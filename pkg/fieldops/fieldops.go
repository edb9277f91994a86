// Package fieldops is the application state engine: it owns the four
// record collections (interventions, appointments, companies, users),
// the authenticated actor, the cache/baseline merge, role-scoped
// visibility, and technician identifier repair.
package fieldops

import (
	"context"
	"errors"
	"sync"

	"solartech.app/field-service/pkg/cache"
	"solartech.app/field-service/pkg/models"
)

var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrForbidden        = errors.New("operation not allowed for role")
	ErrNotFound         = errors.New("record not found")
	ErrValidation       = errors.New("validation failed")
)

type IIntervention interface {
	Add(ctx context.Context, input InterventionInput) (models.Intervention, error)
	Update(ctx context.Context, id string, upd InterventionUpdate) (models.Intervention, error)
	Delete(ctx context.Context, id string) error
	BulkAssignToCompany(ctx context.Context, ids []string, companyID, companyName string) error
	Close(ctx context.Context, ids []string, closedBy, emailSentTo string) error
	Visible() []models.Intervention
	Unassigned() []models.Intervention
	ByID(id string) (models.Intervention, bool)
	AllCount() int
}

type IAppointment interface {
	Add(ctx context.Context, input models.Appointment) (models.Appointment, error)
	Update(ctx context.Context, id string, upd AppointmentUpdate) (models.Appointment, error)
	Delete(ctx context.Context, id string) error
	Visible() []models.Appointment
}

type ICompany interface {
	Add(ctx context.Context, input CompanyInput) (models.Company, error)
	Update(ctx context.Context, id string, upd CompanyUpdate) (models.Company, error)
	Delete(ctx context.Context, id string) error
	Visible() []models.Company
	ByID(id string) (models.Company, bool)
}

type IUser interface {
	Add(ctx context.Context, input UserInput) (models.User, error)
	Update(ctx context.Context, id string, upd UserUpdate) (models.User, error)
	Delete(ctx context.Context, id string) error
	Visible() []models.User
	ByCompany(companyID string) []models.User
}

// DeleteConfirmer asks the server-authoritative side to confirm an
// intervention removal before the local record is dropped.
type DeleteConfirmer interface {
	ConfirmInterventionDelete(ctx context.Context, id string) error
}

// ReminderCanceler cancels a device-level reminder tied to an appointment.
type ReminderCanceler interface {
	CancelReminder(ctx context.Context, appointmentID string) error
}

type Engine struct {
	Store cache.Store

	Intervention IIntervention
	Appointment  IAppointment
	Company      ICompany
	User         IUser

	// ConfirmDelete and Reminders are optional collaborators; nil means
	// the corresponding side effect is skipped.
	ConfirmDelete DeleteConfirmer
	Reminders     ReminderCanceler

	mu    sync.RWMutex
	actor *models.Actor

	baselineInterventions map[string]models.Intervention
	baselineCompanies     map[string]models.Company
	baselineUsers         map[string]models.User

	interventions map[string]models.Intervention
	appointments  map[string]models.Appointment
	companies     map[string]models.Company
	users         map[string]models.User

	counter int
}

type ServiceOpts struct {
	Intervention IIntervention
	Appointment  IAppointment
	Company      ICompany
	User         IUser
}

func (e *Engine) WithServices(opts ServiceOpts) *Engine {
	if opts.Intervention != nil {
		e.Intervention = opts.Intervention
	}
	if opts.Appointment != nil {
		e.Appointment = opts.Appointment
	}
	if opts.Company != nil {
		e.Company = opts.Company
	}
	if opts.User != nil {
		e.User = opts.User
	}
	return e
}

// NewEngine seeds the collections from the baseline fixture. Call Load
// afterwards to layer the locally persisted cache on top.
func NewEngine(store cache.Store, baseline Baseline) *Engine {
	e := &Engine{
		Store:                 store,
		baselineInterventions: indexByID(baseline.Interventions, interventionID),
		baselineCompanies:     indexByID(baseline.Companies, companyID),
		baselineUsers:         indexByID(baseline.Users, userID),
		interventions:         indexByID(baseline.Interventions, interventionID),
		appointments:          indexByID(baseline.Appointments, appointmentID),
		companies:             indexByID(baseline.Companies, companyID),
		users:                 indexByID(baseline.Users, userID),
	}
	e.counter = seedCounter(baseline.Interventions)
	e.Intervention = e.GetIIntervention()
	e.Appointment = e.GetIAppointment()
	e.Company = e.GetICompany()
	e.User = e.GetIUser()
	return e
}

// SetActor installs the authenticated identity; every derived view is
// recomputed against it from now on.
func (e *Engine) SetActor(actor *models.Actor) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.actor = actor
}

func (e *Engine) ClearActor() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.actor = nil
}

func (e *Engine) Actor() *models.Actor {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.actor == nil {
		return nil
	}
	copied := *e.actor
	return &copied
}

// AllUsers returns every merged user record regardless of actor. Only the
// login fallback needs this unscoped view; everything else goes through
// the role-scoped services.
func (e *Engine) AllUsers() []models.User {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.userList()
}

func indexByID[T any](items []T, id func(T) string) map[string]T {
	m := make(map[string]T, len(items))
	for _, item := range items {
		m[id(item)] = item
	}
	return m
}

func interventionID(i models.Intervention) string { return i.ID }
func appointmentID(a models.Appointment) string   { return a.ID }
func companyID(c models.Company) string           { return c.ID }
func userID(u models.User) string                 { return u.ID }
