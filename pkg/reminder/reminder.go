// Package reminder dispatches local appointment reminders. A cron job
// scans the visible appointments once a minute; any appointment whose
// reminder instant fell inside the elapsed window is handed to the
// device notifier exactly once.
package reminder

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"solartech.app/field-service/pkg/common"
	"solartech.app/field-service/pkg/device"
	"solartech.app/field-service/pkg/fieldops"
	"solartech.app/field-service/pkg/models"
)

type Scheduler struct {
	Engine   *fieldops.Engine
	Notifier device.Notifier

	cron *cron.Cron

	mu         sync.Mutex
	lastScan   time.Time
	dispatched map[string]bool
}

func NewScheduler(engine *fieldops.Engine, notifier device.Notifier) *Scheduler {
	return &Scheduler{
		Engine:     engine,
		Notifier:   notifier,
		cron:       cron.New(),
		dispatched: make(map[string]bool),
		lastScan:   time.Now(),
	}
}

// Start begins the minute scan. The returned error only occurs on a bad
// cron expression, so in practice it never fires.
func (s *Scheduler) Start() error {
	_, err := s.cron.AddFunc("@every 1m", func() {
		s.Scan(context.Background(), time.Now())
	})
	if err != nil {
		return err
	}
	s.cron.Start()
	common.GetLoggerWith(common.LoggerNameReminder).Info("Reminder scheduler started")
	return nil
}

func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

// Scan dispatches every visible appointment whose reminder instant falls
// in (lastScan, now]. Exposed for tests, which drive it directly instead
// of waiting on cron.
func (s *Scheduler) Scan(ctx context.Context, now time.Time) {
	logger := common.GetLoggerWith(common.LoggerNameReminder)

	s.mu.Lock()
	since := s.lastScan
	s.lastScan = now
	s.mu.Unlock()

	for _, apt := range s.Engine.Appointment.Visible() {
		if apt.NotifyBefore == nil {
			continue
		}
		at := reminderInstant(apt)
		if !at.After(since) || at.After(now) {
			continue
		}

		s.mu.Lock()
		if s.dispatched[apt.ID] {
			s.mu.Unlock()
			continue
		}
		s.dispatched[apt.ID] = true
		s.mu.Unlock()

		msg := fmt.Sprintf("Appuntamento con %s tra %d minuti", apt.ClientName, *apt.NotifyBefore)
		if err := s.Notifier.ScheduleReminder(ctx, apt.ID, at, msg); err != nil {
			logger.Warn("Failed to dispatch reminder",
				zap.String("appointmentId", apt.ID), zap.Error(err))
			s.mu.Lock()
			delete(s.dispatched, apt.ID)
			s.mu.Unlock()
			continue
		}
		logger.Info("Reminder dispatched",
			zap.String("appointmentId", apt.ID), zap.Time("at", at))
	}
}

// CancelReminder satisfies the engine's cancel hook for appointment
// deletion.
func (s *Scheduler) CancelReminder(ctx context.Context, appointmentID string) error {
	s.mu.Lock()
	delete(s.dispatched, appointmentID)
	s.mu.Unlock()
	return s.Notifier.CancelReminder(ctx, appointmentID)
}

func reminderInstant(apt models.Appointment) time.Time {
	return time.UnixMilli(apt.Date).Add(-time.Duration(*apt.NotifyBefore) * time.Minute)
}
