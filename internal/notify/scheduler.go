package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"

	"moodlog/internal/logging"
)

// Scheduler arms one daily job per reminder time and invokes fire with the
// time-of-day when a job runs. It is presentation glue: the core only hands
// it the reminder set, it never feeds anything back.
type Scheduler struct {
	scheduler gocron.Scheduler
	log       logging.Logger
	fire      func(timeOfDay string)
	jobs      []gocron.Job
}

func NewScheduler(log logging.Logger, fire func(timeOfDay string)) (*Scheduler, error) {
	s, err := gocron.NewScheduler(gocron.WithLocation(time.Local))
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}
	return &Scheduler{scheduler: s, log: log, fire: fire}, nil
}

// Reschedule replaces all armed jobs with one daily job per HH:MM time.
// Times that fail to parse are skipped with a warning.
func (s *Scheduler) Reschedule(ctx context.Context, times []string) error {
	for _, j := range s.jobs {
		if err := s.scheduler.RemoveJob(j.ID()); err != nil {
			s.log.Warn(ctx, "failed to remove reminder job", "error", err)
		}
	}
	s.jobs = s.jobs[:0]

	for _, tod := range times {
		parsed, err := time.Parse("15:04", tod)
		if err != nil {
			s.log.Warn(ctx, "skipping unparsable reminder time", "time", tod)
			continue
		}
		tod := tod
		job, err := s.scheduler.NewJob(
			gocron.DailyJob(1, gocron.NewAtTimes(
				gocron.NewAtTime(uint(parsed.Hour()), uint(parsed.Minute()), 0),
			)),
			gocron.NewTask(func() { s.fire(tod) }),
			gocron.WithName("reminder "+tod),
		)
		if err != nil {
			return fmt.Errorf("failed to schedule reminder %s: %w", tod, err)
		}
		s.jobs = append(s.jobs, job)
	}

	s.log.Info(ctx, "reminder jobs armed", "count", len(s.jobs))
	return nil
}

// JobCount reports the number of armed jobs.
func (s *Scheduler) JobCount() int {
	return len(s.jobs)
}

func (s *Scheduler) Start() {
	s.scheduler.Start()
}

// Pause stops job execution but keeps the scheduler usable; Start resumes it.
func (s *Scheduler) Pause() error {
	return s.scheduler.StopJobs()
}

// Stop shuts the scheduler down for good.
func (s *Scheduler) Stop() error {
	return s.scheduler.Shutdown()
}
