// Copyright (c) 2026 The nemkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package progresslog

import (
	"sync"
	"time"

	"github.com/decred/slog"
)

// DefaultInterval is the minimum time between progress messages unless a
// message is forced.
const DefaultInterval = 10 * time.Second

// pickNoun returns the singular or plural form of a noun depending on the
// provided count.
func pickNoun(n uint64, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}

// Logger provides periodic logging of progress towards some action such as
// deriving addresses for a batch of public keys.
type Logger struct {
	sync.Mutex
	subsystemLogger slog.Logger
	progressAction  string
	singular        string
	plural          string
	interval        time.Duration

	// lastLogTime tracks the last time a log statement was shown.
	lastLogTime time.Time

	// These fields accumulate information about items between log statements.
	receivedItems uint64
	failedItems   uint64

	// totalItems is the number of items processed since the logger was
	// created.
	totalItems uint64
}

// New returns a new progress logger that describes processed items with the
// provided singular and plural nouns.  A non-positive interval selects
// DefaultInterval.
func New(progressAction, singular, plural string, interval time.Duration,
	logger slog.Logger) *Logger {

	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Logger{
		lastLogTime:     time.Now(),
		progressAction:  progressAction,
		singular:        singular,
		plural:          plural,
		interval:        interval,
		subsystemLogger: logger,
	}
}

// LogProgress accumulates the outcome of one processed item and periodically
// logs an information message to show progress to the user along with
// duration and totals included.
//
// The force flag may be used to force a log message to be shown regardless of
// the time the last one was shown.
//
// The progress message is templated as follows:
//
//	{progressAction} {numProcessed} {singular|plural} in the last {timePeriod}
//	({numFailed} failed, {total} total, last {lastItem})
func (l *Logger) LogProgress(lastItem string, failed, forceLog bool) {
	l.Lock()
	defer l.Unlock()

	l.receivedItems++
	l.totalItems++
	if failed {
		l.failedItems++
	}
	now := time.Now()
	duration := now.Sub(l.lastLogTime)
	if !forceLog && duration < l.interval {
		return
	}

	l.subsystemLogger.Infof("%s %d %s in the last %0.2fs (%d failed, %d "+
		"total, last %s)", l.progressAction, l.receivedItems,
		pickNoun(l.receivedItems, l.singular, l.plural), duration.Seconds(),
		l.failedItems, l.totalItems, lastItem)

	l.receivedItems = 0
	l.failedItems = 0
	l.lastLogTime = now
}

// Total returns the number of items processed since the logger was created.
func (l *Logger) Total() uint64 {
	l.Lock()
	defer l.Unlock()
	return l.totalItems
}

// SetLastLogTime updates the last time data was logged to the provided time.
func (l *Logger) SetLastLogTime(time time.Time) {
	l.Lock()
	l.lastLogTime = time
	l.Unlock()
}
