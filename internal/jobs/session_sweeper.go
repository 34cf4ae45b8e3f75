package jobs

import (
	"fmt"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"interviewcoach/api/internal/session"
)

// SessionSweeperJob periodically deletes expired sessions. The store
// already expires lazily on access; the sweep only reclaims memory for
// sessions that are never touched again, so it is safe to run (or not run)
// on any schedule.
type SessionSweeperJob struct {
	store    *session.Store
	schedule string
	logger   *zap.Logger
	cron     *cron.Cron
}

func NewSessionSweeperJob(store *session.Store, schedule string, logger *zap.Logger) *SessionSweeperJob {
	return &SessionSweeperJob{
		store:    store,
		schedule: schedule,
		logger:   logger,
	}
}

// Start runs one sweep immediately, then schedules recurring sweeps.
func (j *SessionSweeperJob) Start() error {
	j.RunOnce()

	j.cron = cron.New()
	if _, err := j.cron.AddFunc(j.schedule, j.RunOnce); err != nil {
		return fmt.Errorf("invalid sweep schedule %q: %w", j.schedule, err)
	}
	j.cron.Start()

	j.logger.Info("Session sweeper started", zap.String("schedule", j.schedule))
	return nil
}

// Stop halts the scheduled sweeps.
func (j *SessionSweeperJob) Stop() {
	if j.cron != nil {
		j.cron.Stop()
	}
}

// RunOnce sweeps expired sessions a single time.
func (j *SessionSweeperJob) RunOnce() {
	count := j.store.SweepExpired()
	if count > 0 {
		j.logger.Info("Swept expired sessions",
			zap.Int("deleted", count),
			zap.Int("remaining", j.store.Len()))
	}
}
