package worker

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baharkarakas/portfolio-api/internal/logger"
)

func TestPoolRunsEveryTask(t *testing.T) {
	p := NewPool(4, logger.Discard())
	var n atomic.Int64
	for i := 0; i < 100; i++ {
		require.NoError(t, p.Submit(func() { n.Add(1) }))
	}
	p.Stop()
	assert.Equal(t, int64(100), n.Load())
}

func TestPoolSurvivesPanics(t *testing.T) {
	p := NewPool(1, logger.Discard())
	var ran atomic.Bool
	require.NoError(t, p.Submit(func() { panic("boom") }))
	require.NoError(t, p.Submit(func() { ran.Store(true) }))
	p.Stop()
	assert.True(t, ran.Load())
}

func TestSubmitAfterStop(t *testing.T) {
	p := NewPool(2, logger.Discard())
	p.Stop()
	p.Stop()
	assert.ErrorIs(t, p.Submit(func() {}), ErrStopped)
}

func TestSubmitDoesNotBlockWhenQueueIsFull(t *testing.T) {
	p := newPool(1, 1, logger.Discard())
	started := make(chan struct{})
	release := make(chan struct{})

	require.NoError(t, p.Submit(func() {
		close(started)
		<-release
	}))
	<-started

	require.NoError(t, p.Submit(func() {}))
	assert.ErrorIs(t, p.Submit(func() {}), ErrQueueFull)

	close(release)
	p.Stop()
}
