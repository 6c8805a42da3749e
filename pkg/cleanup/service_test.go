package cleanup

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foremanhq/foreman/pkg/config"
)

type fakeRunPurger struct {
	mu        sync.Mutex
	calls     int
	retention time.Duration
	count     int
	err       error
}

func (f *fakeRunPurger) PurgeTerminalRuns(_ context.Context, retention time.Duration) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.retention = retention
	return f.count, f.err
}

func (f *fakeRunPurger) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type fakeEventPurger struct {
	mu    sync.Mutex
	calls int
	ttl   time.Duration
	count int
	err   error
}

func (f *fakeEventPurger) PurgeOldEvents(_ context.Context, ttl time.Duration) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.ttl = ttl
	return f.count, f.err
}

func (f *fakeEventPurger) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func testRetentionConfig() *config.RetentionConfig {
	return &config.RetentionConfig{
		RunRetentionDays: 90,
		EventTTL:         24 * time.Hour,
		CleanupInterval:  time.Hour,
	}
}

func TestService_RunAllPurgesBothStores(t *testing.T) {
	runs := &fakeRunPurger{count: 3}
	events := &fakeEventPurger{count: 7}
	svc := NewService(testRetentionConfig(), runs, events)

	svc.runAll(context.Background())

	assert.Equal(t, 1, runs.callCount())
	assert.Equal(t, 90*24*time.Hour, runs.retention)
	assert.Equal(t, 1, events.callCount())
	assert.Equal(t, 24*time.Hour, events.ttl)
}

func TestService_RunPurgeFailureDoesNotStopEventPurge(t *testing.T) {
	runs := &fakeRunPurger{err: errors.New("db unavailable")}
	events := &fakeEventPurger{}
	svc := NewService(testRetentionConfig(), runs, events)

	svc.runAll(context.Background())

	assert.Equal(t, 1, runs.callCount())
	assert.Equal(t, 1, events.callCount(), "event purge should run despite run purge failure")
}

func TestService_StartRunsImmediatelyAndStops(t *testing.T) {
	runs := &fakeRunPurger{}
	events := &fakeEventPurger{}
	cfg := testRetentionConfig()
	cfg.CleanupInterval = time.Hour // no tick fires during the test
	svc := NewService(cfg, runs, events)

	svc.Start(context.Background())
	require.Eventually(t, func() bool {
		return runs.callCount() == 1 && events.callCount() == 1
	}, time.Second, 5*time.Millisecond, "Start should trigger an immediate cleanup pass")

	svc.Stop()
	assert.Equal(t, 1, runs.callCount())
}

func TestService_StartIsIdempotent(t *testing.T) {
	runs := &fakeRunPurger{}
	events := &fakeEventPurger{}
	svc := NewService(testRetentionConfig(), runs, events)

	svc.Start(context.Background())
	svc.Start(context.Background()) // second call is a no-op
	defer svc.Stop()

	require.Eventually(t, func() bool {
		return runs.callCount() >= 1
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, 1, runs.callCount())
}

func TestService_TickerRepeatsCleanup(t *testing.T) {
	runs := &fakeRunPurger{}
	events := &fakeEventPurger{}
	cfg := testRetentionConfig()
	cfg.CleanupInterval = 10 * time.Millisecond
	svc := NewService(cfg, runs, events)

	svc.Start(context.Background())
	defer svc.Stop()

	require.Eventually(t, func() bool {
		return runs.callCount() >= 3
	}, time.Second, 5*time.Millisecond, "ticker should drive repeated passes")
}
