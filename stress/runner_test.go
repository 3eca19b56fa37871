package stress

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Seed = 1
	cfg.MaxKey = 512
	cfg.VerifyEvery = 100
	cfg.ReportInterval = 50 * time.Millisecond
	return cfg
}

func TestRunnerSteps(t *testing.T) {
	r, err := NewRunner(testConfig())
	require.Nil(t, err)
	for i := 0; i < 20000; i++ {
		require.Nil(t, r.Step())
	}
	stats := r.Stats()
	require.Equal(t, 20000, stats.Steps)
	require.Equal(t, 20000, stats.Ops[OpInsert]+stats.Ops[OpRemove]+stats.Ops[OpFind])
	require.Equal(t, 200, stats.Ops[OpVerify])
	require.Greater(t, stats.Size, 0)

	require.Nil(t, r.Drain())
	stats = r.Stats()
	require.Equal(t, 0, stats.Size)
	require.Equal(t, -1, stats.Height)
}

func TestRunnerIsDeterministic(t *testing.T) {
	a, err := NewRunner(testConfig())
	require.Nil(t, err)
	b, err := NewRunner(testConfig())
	require.Nil(t, err)
	for i := 0; i < 5000; i++ {
		require.Nil(t, a.Step())
		require.Nil(t, b.Step())
	}
	require.Equal(t, a.tree.Dump(), b.tree.Dump())
}

func TestRunnerInsertHeavy(t *testing.T) {
	cfg := testConfig()
	cfg.InsertRatio = 1
	cfg.MaxKey = 1 << 20
	r, err := NewRunner(cfg)
	require.Nil(t, err)
	for i := 0; i < 5000; i++ {
		require.Nil(t, r.Step())
	}
	require.Equal(t, 0, r.Stats().Ops[OpRemove])
	require.Nil(t, r.Drain())
}

func TestRunnerRemoveOnEmptyTree(t *testing.T) {
	cfg := testConfig()
	cfg.InsertRatio = 0
	r, err := NewRunner(cfg)
	require.Nil(t, err)
	for i := 0; i < 100; i++ {
		require.Nil(t, r.Step())
	}
	require.Equal(t, 0, r.Stats().Size)
}

func TestRunnerDetectsMismatch(t *testing.T) {
	r, err := NewRunner(testConfig())
	require.Nil(t, err)
	require.Nil(t, r.oracle.Add(7))
	require.ErrorIs(t, r.find(7), ErrMismatch)
	require.ErrorIs(t, r.verify(), ErrMismatch)
	require.ErrorIs(t, r.insert(7), ErrMismatch)
}

func TestRunnerStopsOnFirstError(t *testing.T) {
	r, err := NewRunner(testConfig())
	require.Nil(t, err)
	require.Nil(t, r.oracle.Add(3))
	r.tree.Insert(4)
	require.Nil(t, r.oracle.Add(4))
	r.live.PushBack(4)
	r.err = r.verify()
	require.ErrorIs(t, r.Step(), ErrMismatch)
	require.ErrorIs(t, r.Drain(), ErrMismatch)
	require.ErrorIs(t, r.Err(), ErrMismatch)
}

func TestRunnerService(t *testing.T) {
	cfg := testConfig()
	cfg.Operations = 5000
	r, err := NewRunner(cfg)
	require.Nil(t, err)
	require.Nil(t, r.Start(context.Background()))
	select {
	case <-r.Done():
	case <-time.After(30 * time.Second):
		r.Stop()
		t.Fatal("runner did not finish its operation budget")
	}
	require.Nil(t, r.Err())
	require.Equal(t, 5000, r.Stats().Steps)
	require.Equal(t, false, r.IsRunning())
	require.Nil(t, r.Drain())
}

func TestRunnerServiceStop(t *testing.T) {
	r, err := NewRunner(testConfig())
	require.Nil(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	require.Nil(t, r.Start(ctx))
	require.Eventually(t, func() bool {
		return r.Stats().Steps > 100
	}, 10*time.Second, 10*time.Millisecond)
	cancel()
	r.Serve()
	require.Eventually(t, func() bool {
		return !r.IsRunning()
	}, time.Second, 10*time.Millisecond)
	steps := r.Steps()
	time.Sleep(20 * time.Millisecond)
	require.Equal(t, steps, r.Steps())
	require.Nil(t, r.Err())
}

func TestRunnerAdvance(t *testing.T) {
	r, err := NewRunner(testConfig())
	require.Nil(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	for i := 1; i <= 10; i++ {
		steps, ok, err := r.advance(ctx)
		require.Nil(t, err)
		require.Equal(t, true, ok)
		require.Equal(t, i, steps)
	}
	cancel()
	steps, ok, err := r.advance(ctx)
	require.Nil(t, err)
	require.Equal(t, false, ok)
	require.Equal(t, 10, steps)
	require.Equal(t, 10, r.Steps())
}

func TestRunnerBudgetOnLargeTree(t *testing.T) {
	cfg := testConfig()
	cfg.InsertRatio = 1
	cfg.MaxKey = 1 << 30
	cfg.VerifyEvery = 0
	cfg.Operations = 50000
	r, err := NewRunner(cfg)
	require.Nil(t, err)
	require.Nil(t, r.Start(context.Background()))
	select {
	case <-r.Done():
	case <-time.After(30 * time.Second):
		r.Stop()
		t.Fatal("runner did not finish its operation budget")
	}
	require.Nil(t, r.Err())
	require.Equal(t, 50000, r.Steps())
	require.Greater(t, r.Stats().Size, 49000)
	require.Nil(t, r.Drain())
}

func TestRunnerDrainWhileRunning(t *testing.T) {
	r, err := NewRunner(testConfig())
	require.Nil(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	require.Nil(t, r.Start(ctx))
	require.Eventually(t, func() bool {
		return r.Steps() > 100
	}, 10*time.Second, 10*time.Millisecond)
	require.ErrorIs(t, r.Drain(), ErrRunning)

	cancel()
	r.Serve()
	steps := r.Steps()
	require.Nil(t, r.Drain())
	require.Equal(t, 0, r.Stats().Size)
	time.Sleep(20 * time.Millisecond)
	require.Equal(t, steps, r.Steps())
	require.Equal(t, 0, r.Stats().Size)
}
