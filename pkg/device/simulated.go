package device

import (
	"context"
	"encoding/base64"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"solartech.app/field-service/pkg/common"
	"solartech.app/field-service/pkg/models"
)

// Simulated is the development provider: every capability answers locally
// with plausible data so the rest of the system can run without a real
// device attached. It satisfies Locator, Camera, Notifier and Mailer.
type Simulated struct {
	mu        sync.Mutex
	pushToken string
	reminders map[string]time.Time
	sent      []string
}

func NewSimulated() *Simulated {
	return &Simulated{reminders: make(map[string]time.Time)}
}

// Milan city center, the fixture data's home turf.
const (
	simulatedLatitude  = 45.4642
	simulatedLongitude = 9.1900
)

func (s *Simulated) CurrentLocation(ctx context.Context) (models.GeoLocation, error) {
	return models.GeoLocation{
		Latitude:  simulatedLatitude,
		Longitude: simulatedLongitude,
		Address:   "Piazza del Duomo, Milano, MI",
		Timestamp: time.Now().UnixMilli(),
	}, nil
}

func (s *Simulated) ReverseGeocode(ctx context.Context, latitude, longitude float64) (string, error) {
	return fmt.Sprintf("Via Simulata %d, Milano, MI", int(latitude*10)%200+1), nil
}

func (s *Simulated) Capture(ctx context.Context) (CapturedPhoto, error) {
	return CapturedPhoto{
		Base64:   base64.StdEncoding.EncodeToString([]byte("simulated-jpeg")),
		MimeType: "image/jpeg",
		FileName: "photo-" + uuid.NewString() + ".jpg",
	}, nil
}

func (s *Simulated) Pick(ctx context.Context) (CapturedPhoto, error) {
	return s.Capture(ctx)
}

func (s *Simulated) RequestPermission(ctx context.Context) error {
	return nil
}

func (s *Simulated) RegisterPushToken(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pushToken == "" {
		s.pushToken = "sim-push-" + uuid.NewString()
	}
	return s.pushToken, nil
}

func (s *Simulated) ScheduleReminder(ctx context.Context, appointmentID string, at time.Time, message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reminders[appointmentID] = at
	common.GetLoggerWith(common.LoggerNameReminder).Info("Simulated reminder scheduled",
		zap.String("appointmentId", appointmentID), zap.Time("at", at))
	return nil
}

func (s *Simulated) CancelReminder(ctx context.Context, appointmentID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.reminders, appointmentID)
	return nil
}

func (s *Simulated) ComposeReport(ctx context.Context, to []string, subject, body string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, subject)
	common.GetLoggerWith(common.LoggerNameReminder).Info("Simulated report email composed",
		zap.Strings("to", to), zap.String("subject", subject))
	return nil
}

// ScheduledReminders exposes the pending reminder set for tests.
func (s *Simulated) ScheduledReminders() map[string]time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]time.Time, len(s.reminders))
	for k, v := range s.reminders {
		out[k] = v
	}
	return out
}
