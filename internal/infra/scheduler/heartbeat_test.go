package scheduler

import (
	"io"
	"strings"
	"testing"
	"time"

	"github.com/RoostiqueTheMan/homework-bot/internal/app"

	"github.com/sirupsen/logrus"
)

func discardLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestHeartbeat_StatusLine(t *testing.T) {
	stats := &app.Stats{}
	h := NewHeartbeat(stats, discardLogger(), "0 * * * *")
	h.startedAt = time.Now()

	line := h.statusLine()
	if !strings.Contains(line, "cycles completed 0") {
		t.Errorf("line %q should report zero cycles", line)
	}
	if !strings.Contains(line, "last poll never") {
		t.Errorf("line %q should report no poll yet", line)
	}

	stats.CyclesCompleted.Add(3)
	stats.LastPollUnix.Store(time.Now().Unix())

	line = h.statusLine()
	if !strings.Contains(line, "cycles completed 3") {
		t.Errorf("line %q should report three cycles", line)
	}
	if strings.Contains(line, "never") {
		t.Errorf("line %q should carry the last poll time", line)
	}
}

func TestHeartbeat_InvalidCronSpec(t *testing.T) {
	h := NewHeartbeat(&app.Stats{}, discardLogger(), "not a cron spec")
	if err := h.Start(); err == nil {
		t.Fatal("expected error for invalid cron spec")
	}
}

func TestHeartbeat_StartStop(t *testing.T) {
	h := NewHeartbeat(&app.Stats{}, discardLogger(), "* * * * *")
	if err := h.Start(); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	h.Stop()
}
