package stress

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidConfig = errors.New("invalid stress config")

type Config struct {
	// Seed for the workload generator, runs with equal seeds are identical.
	Seed int64
	// Keys are drawn from [0, MaxKey).
	MaxKey int
	// InsertRatio is the share of steps that insert, the rest is split
	// evenly between remove and find.
	InsertRatio float64
	// VerifyEvery runs a full invariant check every that many steps,
	// 0 disables it.
	VerifyEvery    int
	ReportInterval time.Duration
	// Operations bounds the run, 0 runs until stopped.
	Operations int
}

func DefaultConfig() Config {
	return Config{
		Seed:           time.Now().UnixNano(),
		MaxKey:         1 << 16,
		InsertRatio:    0.5,
		VerifyEvery:    1000,
		ReportInterval: 5 * time.Second,
		Operations:     0,
	}
}

func (c Config) Validate() error {
	if c.MaxKey <= 0 {
		return fmt.Errorf("%w: max key must be positive, got %d", ErrInvalidConfig, c.MaxKey)
	}
	if c.InsertRatio < 0 || c.InsertRatio > 1 {
		return fmt.Errorf("%w: insert ratio must be in [0, 1], got %v", ErrInvalidConfig, c.InsertRatio)
	}
	if c.VerifyEvery < 0 {
		return fmt.Errorf("%w: verify interval must not be negative, got %d", ErrInvalidConfig, c.VerifyEvery)
	}
	if c.ReportInterval <= 0 {
		return fmt.Errorf("%w: report interval must be positive, got %v", ErrInvalidConfig, c.ReportInterval)
	}
	if c.Operations < 0 {
		return fmt.Errorf("%w: operations must not be negative, got %d", ErrInvalidConfig, c.Operations)
	}
	return nil
}
