package jobs

import (
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"interviewcoach/api/internal/models"
	"interviewcoach/api/internal/session"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestRunOnceSweepsExpiredSessions(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	store := session.NewStoreWithClock(time.Hour, clock.Now)
	job := NewSessionSweeperJob(store, "*/10 * * * *", zap.NewNop())

	store.Create(models.UserProfile{Name: "Sam", CareerField: "software_engineering"})
	store.Create(models.UserProfile{Name: "Alex", CareerField: "data_science"})
	clock.Advance(2 * time.Hour)
	fresh := store.Create(models.UserProfile{Name: "Kim", CareerField: "software_engineering"})

	job.RunOnce()

	if store.Len() != 1 {
		t.Fatalf("expected 1 surviving session, got %d", store.Len())
	}
	if _, ok := store.Get(fresh); !ok {
		t.Error("fresh session should survive sweep")
	}
}

func TestRunOnceNoExpiredSessions(t *testing.T) {
	store := session.NewStore(time.Hour)
	job := NewSessionSweeperJob(store, "*/10 * * * *", zap.NewNop())

	store.Create(models.UserProfile{Name: "Sam", CareerField: "software_engineering"})
	job.RunOnce()

	if store.Len() != 1 {
		t.Fatalf("expected session to survive, got %d remaining", store.Len())
	}
}

func TestStartRejectsBadSchedule(t *testing.T) {
	store := session.NewStore(time.Hour)
	job := NewSessionSweeperJob(store, "not a schedule", zap.NewNop())

	if err := job.Start(); err == nil {
		job.Stop()
		t.Fatal("expected error for invalid schedule")
	}
}

func TestStartAndStop(t *testing.T) {
	store := session.NewStore(time.Hour)
	job := NewSessionSweeperJob(store, "*/10 * * * *", zap.NewNop())

	if err := job.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	job.Stop()
}
