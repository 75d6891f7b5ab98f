// services/scheduler_service.go
package services

import (
	"context"
	"log"
	"sync"
	"time"

	"lifetrack-backend/models"
	"lifetrack-backend/utils"
)

// ScheduleSource is the read side of the schedule store the scheduler needs.
type ScheduleSource interface {
	ListAll(ctx context.Context) ([]models.Schedule, error)
}

// Dispatcher delivers one notification. Failures are the dispatcher's own
// concern; the scheduler only logs them.
type Dispatcher interface {
	Send(destination, subject, body, heading string) error
}

// SchedulerService polls on a short fixed period and evaluates every user's
// schedule against their local wall-clock time. The poll period is shorter
// than the 1-minute reminder granularity to bound delivery latency; the
// minute-key gate keeps each calendar minute processed at most once.
type SchedulerService struct {
	store      ScheduleSource
	dispatcher Dispatcher
	now        func() time.Time
	interval   time.Duration

	mu                  sync.Mutex
	lastProcessedMinute string
}

func NewSchedulerService(store ScheduleSource, dispatcher Dispatcher) *SchedulerService {
	return &SchedulerService{
		store:      store,
		dispatcher: dispatcher,
		now:        time.Now,
		interval:   10 * time.Second,
	}
}

// Run starts the tick loop until ctx is canceled. It never returns an error:
// nothing that happens during a tick is fatal to the scheduler.
func (s *SchedulerService) Run(ctx context.Context) {
	log.Printf("Scheduler started (poll every %v)", s.interval)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Scheduler stopped")
			return
		case <-ticker.C:
			s.RunTick(ctx)
		}
	}
}

// RunTick performs one evaluation pass. A second call within the same UTC
// minute is a no-op. The minute key is committed before any per-user work, so
// a partially failed pass is not retried.
func (s *SchedulerService) RunTick(ctx context.Context) {
	now := s.now().UTC()
	minuteKey := now.Format("2006-01-02T15:04")

	s.mu.Lock()
	if minuteKey == s.lastProcessedMinute {
		s.mu.Unlock()
		return
	}
	s.lastProcessedMinute = minuteKey
	s.mu.Unlock()

	log.Printf("Clock tick: %s UTC", minuteKey)

	schedules, err := s.store.ListAll(ctx)
	if err != nil {
		log.Printf("Tick %s: failed to load schedules: %v", minuteKey, err)
		return
	}

	for _, schedule := range schedules {
		s.processSchedule(now, schedule)
	}
}

// processSchedule evaluates one user. Errors are contained here so one bad
// schedule cannot block the rest of the tick.
func (s *SchedulerService) processSchedule(now time.Time, schedule models.Schedule) {
	if schedule.Timezone == "" {
		return
	}

	localTime, localWeekday, err := utils.ResolveLocalTime(now, schedule.Timezone)
	if err != nil {
		log.Printf("Skipping %s: %v", schedule.Email, err)
		return
	}

	for _, due := range MatchDue(schedule, localTime, localWeekday) {
		if err := s.dispatcher.Send(schedule.Email, due.Subject(), due.Body(), due.Heading()); err != nil {
			log.Printf("Failed to dispatch %s notification to %s: %v", due.Kind, schedule.Email, err)
		}
	}
}
