package scheduler

import (
	"fmt"
	"sync"

	"github.com/go-logr/logr"
	"github.com/robfig/cron/v3"
)

type ScheduledTask struct {
	cronID cron.EntryID
	cron   *cron.Cron
	cancel chan struct{}
	once   sync.Once
}

// NewScheduledTask runs taskFunc on cronSpec until Cancel is called. Runs
// that would overlap a still running one are skipped.
func NewScheduledTask(cronSpec string, taskFunc func(), logger logr.Logger) (*ScheduledTask, error) {
	cronLogger := cron.VerbosePrintfLogger(logrPrintf{logger})
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cronLogger), cron.Recover(cronLogger)))
	cancel := make(chan struct{})
	task := &ScheduledTask{
		cron:   c,
		cancel: cancel,
	}

	id, err := c.AddFunc(cronSpec, func() {
		select {
		case <-cancel:
			return
		default:
			taskFunc()
		}
	})
	if err != nil {
		return nil, err
	}

	task.cronID = id
	c.Start()
	logger.Info("scheduled task started", "spec", cronSpec)
	return task, nil
}

// Cancel stops future runs. It is safe to call more than once.
func (s *ScheduledTask) Cancel() {
	s.once.Do(func() {
		s.cron.Remove(s.cronID)
		close(s.cancel)
		s.cron.Stop()
	})
}

// logrPrintf adapts logr to the Printf logger cron expects.
type logrPrintf struct {
	logger logr.Logger
}

func (l logrPrintf) Printf(format string, args ...interface{}) {
	l.logger.V(1).Info(fmt.Sprintf(format, args...))
}
