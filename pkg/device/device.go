// Package device defines the capability boundaries the engine consumes:
// GPS, camera, local notifications and outbound mail. Real providers live
// on the host platform; this package ships the contracts, a simulated
// in-process provider for development, and generated mocks for tests.
package device

import (
	"context"
	"errors"
	"time"

	"solartech.app/field-service/pkg/models"
)

// ErrDeclined is returned when the operator or the platform refuses a
// capability request (permission denied, capture cancelled). Callers treat
// it as a normal outcome, not a failure.
var ErrDeclined = errors.New("device: request declined")

// Locator acquires a GPS fix and resolves it to a street address.
type Locator interface {
	CurrentLocation(ctx context.Context) (models.GeoLocation, error)
	ReverseGeocode(ctx context.Context, latitude, longitude float64) (string, error)
}

// CapturedPhoto is a single camera or gallery result, base64-encoded the
// way the remote photo endpoint expects it.
type CapturedPhoto struct {
	Base64   string
	MimeType string
	FileName string
}

type Camera interface {
	// Capture opens the camera; Pick opens the gallery. Both return
	// ErrDeclined when the operator backs out.
	Capture(ctx context.Context) (CapturedPhoto, error)
	Pick(ctx context.Context) (CapturedPhoto, error)
}

// Notifier covers push registration and locally scheduled appointment
// reminders.
type Notifier interface {
	RequestPermission(ctx context.Context) error
	RegisterPushToken(ctx context.Context) (string, error)
	ScheduleReminder(ctx context.Context, appointmentID string, at time.Time, message string) error
	CancelReminder(ctx context.Context, appointmentID string) error
}

// Mailer opens an outbound email draft (intervention reports). Sending is
// the operator's action; a declined draft returns ErrDeclined.
type Mailer interface {
	ComposeReport(ctx context.Context, to []string, subject, body string) error
}
