package shell

import (
	"context"
	"sync"
	"time"

	"github.com/GriffinCanCode/filemanager/internal/logging"
	"github.com/GriffinCanCode/filemanager/internal/shared/id"
	"go.uber.org/zap"
)

// TaskRunner runs stream pipelines.
// In async mode tasks run on their own goroutines and the loop moves on;
// otherwise they run inline before the next prompt.
type TaskRunner struct {
	async  bool
	logger *logging.Logger

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

// NewTaskRunner creates a runner
func NewTaskRunner(async bool, logger *logging.Logger) *TaskRunner {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &TaskRunner{
		async:  async,
		logger: logger.Named("tasks"),
	}
}

// Go starts fn as a task. It returns false once the runner is closed.
func (r *TaskRunner) Go(ctx context.Context, verb string, fn func(ctx context.Context)) bool {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return false
	}
	r.wg.Add(1)
	r.mu.Unlock()

	taskID := id.NewTaskID()
	run := func() {
		defer r.wg.Done()
		start := time.Now()
		r.logger.Debug("Task started", zap.String("task_id", taskID.String()), zap.String("verb", verb))
		fn(ctx)
		r.logger.Debug("Task finished",
			zap.String("task_id", taskID.String()),
			zap.String("verb", verb),
			zap.Duration("duration", time.Since(start)))
	}

	if r.async {
		go run()
	} else {
		run()
	}
	return true
}

// Wait blocks until every started task has finished
func (r *TaskRunner) Wait() {
	r.wg.Wait()
}

// Close refuses new tasks and waits for the running ones
func (r *TaskRunner) Close() {
	r.mu.Lock()
	r.closed = true
	r.mu.Unlock()
	r.wg.Wait()
}
