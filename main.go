package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MarquessV/marquess-lib/stress"

	log "github.com/sirupsen/logrus"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.WithError(err).Fatal("stress run failed")
	}
}

func run(args []string) error {
	cfg := stress.DefaultConfig()
	flags := flag.NewFlagSet("marquess-lib", flag.ContinueOnError)
	flags.Int64Var(&cfg.Seed, "seed", cfg.Seed, "workload seed")
	flags.IntVar(&cfg.MaxKey, "max-key", cfg.MaxKey, "keys are drawn from [0, max-key)")
	flags.IntVar(&cfg.Operations, "ops", cfg.Operations, "number of operations, 0 runs until interrupted")
	flags.Float64Var(&cfg.InsertRatio, "insert-ratio", cfg.InsertRatio, "share of operations that insert")
	flags.IntVar(&cfg.VerifyEvery, "verify-every", cfg.VerifyEvery, "full invariant check interval in operations, 0 disables")
	flags.DurationVar(&cfg.ReportInterval, "report", cfg.ReportInterval, "report interval")
	duration := flags.Duration("duration", 30*time.Second, "stop after this long, 0 runs until interrupted")
	level := flags.String("log-level", "info", "log level")
	if err := flags.Parse(args); err != nil {
		return err
	}

	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})
	lvl, err := log.ParseLevel(*level)
	if err != nil {
		return fmt.Errorf("bad log level: %w", err)
	}
	log.SetLevel(lvl)

	runner, err := stress.NewRunner(cfg)
	if err != nil {
		return fmt.Errorf("bad configuration: %w", err)
	}
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	if *duration > 0 {
		ctx, cancel = context.WithTimeout(ctx, *duration)
		defer cancel()
	}
	if err = runner.Start(ctx); err != nil {
		return fmt.Errorf("could not start stress run: %w", err)
	}
	runner.Serve()

	if err = runner.Err(); err != nil {
		return err
	}
	if err = runner.Drain(); err != nil {
		return err
	}
	stats := runner.Stats()
	log.WithFields(log.Fields{
		"steps": stats.Steps,
		"ops":   stats.Ops,
		"seed":  cfg.Seed,
	}).Info("stress run passed")
	return nil
}
