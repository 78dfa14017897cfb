// Package jobs runs periodic maintenance on a cron scheduler.
package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/internlink/internlink-api/internal/config"
	"github.com/internlink/internlink-api/internal/metrics"
	"github.com/internlink/internlink-api/internal/models"
	"github.com/internlink/internlink-api/internal/services"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

type Scheduler struct {
	cron *cron.Cron
}

// New registers the deadline sweeper and the system log retention job.
func New(cfg *config.Config, db *gorm.DB, internships *services.InternshipService) (*Scheduler, error) {
	logger := cronLogger{}
	c := cron.New(
		cron.WithLogger(logger),
		cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
	)

	jobs := []struct {
		name string
		spec string
		run  func() (int64, error)
	}{
		{"close_expired_internships", cfg.DeadlineSweepSpec, func() (int64, error) {
			return internships.CloseExpired(time.Now().UTC())
		}},
		{"purge_system_logs", cfg.LogCleanupSpec, func() (int64, error) {
			return PurgeSystemLogs(db, time.Now().UTC().Add(-cfg.LogRetention))
		}},
	}

	for _, j := range jobs {
		if _, err := c.AddFunc(j.spec, runner(j.name, j.run)); err != nil {
			return nil, fmt.Errorf("invalid schedule %q for %s: %w", j.spec, j.name, err)
		}
	}
	return &Scheduler{cron: c}, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop prevents new runs and waits for running jobs until ctx is done.
func (s *Scheduler) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
		slog.Warn("scheduler stop timed out")
	}
}

func (s *Scheduler) Entries() int {
	return len(s.cron.Entries())
}

func runner(name string, run func() (int64, error)) func() {
	return func() {
		start := time.Now()
		affected, err := run()
		metrics.JobRun(name, affected, err)
		if err != nil {
			slog.Error("scheduled job failed", "action", name, "error", err)
			return
		}
		slog.Info("scheduled job completed", "action", name, "affected", affected,
			"latency_ms", float64(time.Since(start).Microseconds())/1000)
	}
}

// PurgeSystemLogs deletes system_logs rows older than before.
func PurgeSystemLogs(db *gorm.DB, before time.Time) (int64, error) {
	result := db.Where("timestamp < ?", before).Delete(&models.SystemLog{})
	return result.RowsAffected, result.Error
}

// cronLogger routes scheduler diagnostics to slog.
type cronLogger struct{}

func (cronLogger) Info(msg string, keysAndValues ...interface{}) {
	slog.Debug("cron: "+msg, keysAndValues...)
}

func (cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	slog.Error("cron: "+msg, append(keysAndValues, "error", err)...)
}
