package workers

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/JoaoVictorCoder/DC-Coin-Bot-sub000/internal/logger"
)

// Task is a job run on a fixed interval.
type Task struct {
	Name     string
	Interval time.Duration
	Run      func(ctx context.Context) error
}

// Scheduler runs tasks on their intervals until its context ends.
type Scheduler struct {
	tasks []Task
}

func NewScheduler(tasks ...Task) *Scheduler {
	return &Scheduler{tasks: tasks}
}

// Add registers another task. Tasks with a non-positive interval are skipped.
func (s *Scheduler) Add(t Task) {
	s.tasks = append(s.tasks, t)
}

// Start blocks until ctx is cancelled. A failing run is logged and the task
// keeps its schedule.
func (s *Scheduler) Start(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	for _, t := range s.tasks {
		if t.Interval <= 0 {
			logger.Log.Infow("task disabled", "task", t.Name)
			continue
		}
		g.Go(func() error {
			run(ctx, t)
			return nil
		})
	}

	return g.Wait()
}

func run(ctx context.Context, t Task) {
	ticker := time.NewTicker(t.Interval)
	defer ticker.Stop()

	logger.Log.Infow("task scheduled", "task", t.Name, "interval", t.Interval.String())
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			runOnce(ctx, t)
		}
	}
}

func runOnce(ctx context.Context, t Task) {
	defer func() {
		if r := recover(); r != nil {
			logger.Log.Errorw("task panicked", "task", t.Name, "panic", r)
		}
	}()

	start := time.Now()
	if err := t.Run(ctx); err != nil {
		logger.Log.Errorw("task failed", "task", t.Name, "err", err)
		return
	}
	logger.Log.Debugw("task finished", "task", t.Name, "took", time.Since(start).String())
}
