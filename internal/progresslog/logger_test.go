// Copyright (c) 2026 The nemkit developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package progresslog

import (
	"bytes"
	"io"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/decred/slog"
)

var (
	backendLog = slog.NewBackend(io.Discard)
	testLog    = backendLog.Logger("TEST")
)

// TestLogProgress ensures the logging functionality works as expected via a
// test logger.
func TestLogProgress(t *testing.T) {
	tests := []struct {
		name             string
		reset            bool
		failed           bool
		forceLog         bool
		inputLastLogTime time.Time
		wantReceived     uint64
		wantFailed       uint64
		wantTotal        uint64
	}{{
		name:             "round 1, item 0, last log time < 10 secs ago, not forced",
		inputLastLogTime: time.Now(),
		wantReceived:     1,
		wantTotal:        1,
	}, {
		name:             "round 1, item 1, failed, not forced",
		failed:           true,
		inputLastLogTime: time.Now(),
		wantReceived:     2,
		wantFailed:       1,
		wantTotal:        2,
	}, {
		name:             "round 1, item 2, last log time < 10 secs ago, forced",
		forceLog:         true,
		inputLastLogTime: time.Now(),
		wantTotal:        3,
	}, {
		name:             "round 2, item 0, last log time < 10 secs ago, not forced",
		reset:            true,
		inputLastLogTime: time.Now(),
		wantReceived:     1,
		wantTotal:        1,
	}, {
		name:             "round 2, item 1, last log time > 10 secs ago, not forced",
		failed:           true,
		inputLastLogTime: time.Now().Add(-11 * time.Second),
		wantTotal:        2,
	}, {
		name:             "round 2, item 2, last log time > 10 secs ago, forced",
		forceLog:         true,
		inputLastLogTime: time.Now().Add(-11 * time.Second),
		wantTotal:        3,
	}}

	progressLogger := New("Derived", "address", "addresses", 0, testLog)
	for _, test := range tests {
		if test.reset {
			progressLogger = New("Derived", "address", "addresses", 0, testLog)
		}
		progressLogger.SetLastLogTime(test.inputLastLogTime)
		progressLogger.LogProgress("TAR3W7", test.failed, test.forceLog)
		wantProgressLogger := &Logger{
			receivedItems:   test.wantReceived,
			failedItems:     test.wantFailed,
			totalItems:      test.wantTotal,
			lastLogTime:     progressLogger.lastLogTime,
			progressAction:  progressLogger.progressAction,
			singular:        "address",
			plural:          "addresses",
			interval:        DefaultInterval,
			subsystemLogger: progressLogger.subsystemLogger,
		}
		if !reflect.DeepEqual(progressLogger, wantProgressLogger) {
			t.Errorf("%s:\nwant: %+v\ngot: %+v\n", test.name,
				wantProgressLogger, progressLogger)
		}
		if progressLogger.Total() != test.wantTotal {
			t.Errorf("%s: mismatched total -- got %d, want %d", test.name,
				progressLogger.Total(), test.wantTotal)
		}
	}
}

// TestLogProgressMessage ensures the logged message uses the configured nouns
// and reports failures.
func TestLogProgressMessage(t *testing.T) {
	var buf bytes.Buffer
	backend := slog.NewBackend(&buf)
	logger := backend.Logger("TEST")
	logger.SetLevel(slog.LevelInfo)

	progressLogger := New("Derived", "id", "ids", time.Hour, logger)
	progressLogger.LogProgress("nem", false, false)
	if buf.Len() != 0 {
		t.Fatalf("unexpected message before interval: %q", buf.String())
	}
	progressLogger.LogProgress("nem.xem", true, true)
	got := buf.String()
	want := "Derived 2 ids in the last"
	if !strings.Contains(got, want) {
		t.Fatalf("message %q does not contain %q", got, want)
	}
	if !strings.Contains(got, "(1 failed, 2 total, last nem.xem)") {
		t.Fatalf("message %q does not report totals", got)
	}

	buf.Reset()
	progressLogger.LogProgress("cat", false, true)
	if !strings.Contains(buf.String(), "Derived 1 id in the last") {
		t.Fatalf("message %q does not use the singular noun", buf.String())
	}
}
