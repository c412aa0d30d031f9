package scheduler

import (
	"fmt"
	"time"

	"github.com/RoostiqueTheMan/homework-bot/internal/app"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Heartbeat periodically logs a liveness line so operators can tell a quiet
// bot from a dead one. It reads only the poller's atomic counters, never the
// loop-owned cursor or error cache.
type Heartbeat struct {
	cronEngine *cron.Cron
	stats      *app.Stats
	logger     *logrus.Logger
	cronSpec   string
	startedAt  time.Time
}

func NewHeartbeat(stats *app.Stats, logger *logrus.Logger, cronSpec string) *Heartbeat {
	return &Heartbeat{
		cronEngine: cron.New(cron.WithLocation(time.Local)), // Use server's local time for cron
		stats:      stats,
		logger:     logger,
		cronSpec:   cronSpec,
	}
}

func (h *Heartbeat) Start() error {
	h.startedAt = time.Now()

	if _, err := h.cronEngine.AddFunc(h.cronSpec, h.beat); err != nil {
		return fmt.Errorf("invalid heartbeat cron spec %q: %w", h.cronSpec, err)
	}

	h.cronEngine.Start()
	h.logger.Infof("Heartbeat scheduler started with spec %q.", h.cronSpec)
	return nil
}

func (h *Heartbeat) beat() {
	h.logger.Info(h.statusLine())
}

// statusLine renders the liveness report from the poller's counters.
func (h *Heartbeat) statusLine() string {
	lastPoll := "never"
	if ts := h.stats.LastPollUnix.Load(); ts > 0 {
		lastPoll = time.Unix(ts, 0).Format("2006-01-02 15:04:05")
	}
	return fmt.Sprintf("Heartbeat: uptime %s, cycles completed %d, last poll %s",
		time.Since(h.startedAt).Round(time.Second),
		h.stats.CyclesCompleted.Load(),
		lastPoll,
	)
}

func (h *Heartbeat) Stop() {
	ctx := h.cronEngine.Stop() // Waits for a running job to finish.
	<-ctx.Done()
	h.logger.Info("Heartbeat scheduler stopped.")
}
