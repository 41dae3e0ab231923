package scheduler_test

import (
	"sync/atomic"
	"testing"
	"time"

	"fingenius/src/scheduler"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduledTask(t *testing.T) {
	t.Run("should run the task on schedule", func(t *testing.T) {
		var runs atomic.Int32
		task, err := scheduler.NewScheduledTask("@every 1s", func() { runs.Add(1) }, logr.Discard())
		require.NoError(t, err)
		defer task.Cancel()

		assert.Eventually(t, func() bool { return runs.Load() >= 1 }, 3*time.Second, 50*time.Millisecond)
	})

	t.Run("should not run after cancel", func(t *testing.T) {
		var runs atomic.Int32
		task, err := scheduler.NewScheduledTask("@every 1s", func() { runs.Add(1) }, logr.Discard())
		require.NoError(t, err)
		task.Cancel()
		task.Cancel()

		time.Sleep(1500 * time.Millisecond)
		assert.Equal(t, int32(0), runs.Load())
	})

	t.Run("should reject an invalid spec", func(t *testing.T) {
		_, err := scheduler.NewScheduledTask("not a cron spec", func() {}, logr.Discard())
		assert.Error(t, err)
	})
}
