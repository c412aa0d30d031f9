// internal/app/poller.go
package app

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/RoostiqueTheMan/homework-bot/internal/domain/homework"
	domainPracticum "github.com/RoostiqueTheMan/homework-bot/internal/domain/practicum"
	domainTelegram "github.com/RoostiqueTheMan/homework-bot/internal/domain/telegram"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"
)

// RetryTime is the default pause between poll cycles.
const RetryTime = 600 * time.Second

// Stats holds the poller's observable counters. They are atomics so the
// heartbeat job can read them from its own goroutine; the loop-owned cursor
// and error cache are never published here.
type Stats struct {
	CyclesCompleted atomic.Uint64
	LastPollUnix    atomic.Int64
}

// Poller drives the poll-and-notify loop for a single tracked submission.
// cursor and errorCache are touched only by the loop body: there is exactly
// one unit of work in flight at any time.
type Poller struct {
	api      domainPracticum.StatusAPI
	telegram domainTelegram.Client // Use the interface from the domain package
	chatID   int64
	logger   *logrus.Logger
	interval time.Duration

	cursor     int64  // from_date for the next request
	errorCache string // last generic failure reported to the chat

	stats Stats
}

func NewPoller(
	api domainPracticum.StatusAPI,
	tc domainTelegram.Client,
	chatID int64,
	logger *logrus.Logger,
	interval time.Duration,
) *Poller {
	if interval <= 0 {
		interval = RetryTime
	}
	return &Poller{
		api:      api,
		telegram: tc,
		chatID:   chatID,
		logger:   logger,
		interval: interval,
		cursor:   time.Now().Unix(),
	}
}

// Stats exposes the poller's counters for the liveness heartbeat.
func (p *Poller) Stats() *Stats {
	return &p.stats
}

// Run executes poll cycles until ctx is cancelled. The interval is measured
// from the end of one cycle's error handling to the next fetch, so slow
// cycles drift rather than pile up. The only error Run returns is a delivery
// failure that happened while reporting another failure; the pause still runs
// before that error surfaces.
func (p *Poller) Run(ctx context.Context) error {
	p.logger.Infof("Poller started. Initial cursor: %d, poll interval: %s", p.cursor, p.interval)

	timer := time.NewTimer(p.interval)
	defer timer.Stop()

	for {
		fatal := p.runOnce()

		timer.Reset(p.interval)
		select {
		case <-ctx.Done():
			p.logger.Info("Poller stopped.")
			return fatal
		case <-timer.C:
		}

		if fatal != nil {
			return fatal
		}
	}
}

// runOnce performs a single cycle plus its error classification and updates
// the heartbeat counters.
func (p *Poller) runOnce() error {
	err := p.classify(p.runCycle())
	p.stats.CyclesCompleted.Add(1)
	p.stats.LastPollUnix.Store(time.Now().Unix())
	return err
}

// runCycle is one fetch → validate → format → notify pass. Any error aborts
// the pass before the cursor is advanced.
func (p *Poller) runCycle() error {
	response, err := p.api.HomeworkStatuses(p.cursor)
	if err != nil {
		return err
	}

	homeworks, err := homework.CheckResponse(response)
	if err != nil {
		return err
	}

	// The API returns the freshest record first; older entries in the same
	// response are dropped.
	if len(homeworks) > 0 {
		text, err := homework.ParseStatus(homeworks[0])
		if err != nil {
			return err
		}
		if err := p.sendMessage(text); err != nil {
			return err
		}
	}

	if date, ok := homework.CurrentDate(response); ok {
		p.cursor = date
	}
	return nil
}

// classify applies the loop's error policy. Delivery failures and a missing
// current_date are logged and survived without touching the error cache.
// Everything else is reported to the chat once per distinct message; a
// failure of that report itself is returned and ends the loop.
func (p *Poller) classify(err error) error {
	if err == nil {
		return nil
	}

	var botErr *homework.BotError
	if errors.As(err, &botErr) || errors.Is(err, homework.ErrDateMissing) {
		p.logger.Error(err)
		return nil
	}

	message := fmt.Sprintf("Сбой в работе программы: %v", err)
	p.logger.Error(message)
	if message == p.errorCache {
		return nil
	}
	if sendErr := p.sendMessage(message); sendErr != nil {
		return sendErr
	}
	p.errorCache = message
	return nil
}

// sendMessage delivers text to the configured chat. This is the sole place
// that touches the Telegram client.
func (p *Poller) sendMessage(text string) error {
	err := p.telegram.SendMessage(p.chatID, text, &telebot.SendOptions{ParseMode: telebot.ModeDefault})
	if err != nil {
		return &homework.BotError{Text: text, Err: err}
	}
	p.logger.Infof("Message delivered: %s", text)
	return nil
}
