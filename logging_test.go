// logging_test.go: tests for Logger integration
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package pondus

import (
	"sync"
	"testing"
)

type logEntry struct {
	level   string
	msg     string
	keyvals []interface{}
}

// testLogger records every call so tests can assert on what was logged
type testLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

func newTestLogger() *testLogger {
	return &testLogger{}
}

func (l *testLogger) log(level, msg string, keyvals []interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, logEntry{level: level, msg: msg, keyvals: keyvals})
}

func (l *testLogger) Debug(msg string, keyvals ...interface{}) { l.log("debug", msg, keyvals) }
func (l *testLogger) Info(msg string, keyvals ...interface{})  { l.log("info", msg, keyvals) }
func (l *testLogger) Warn(msg string, keyvals ...interface{})  { l.log("warn", msg, keyvals) }
func (l *testLogger) Error(msg string, keyvals ...interface{}) { l.log("error", msg, keyvals) }

// find returns the entries logged with msg
func (l *testLogger) find(msg string) []logEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	var found []logEntry
	for _, e := range l.entries {
		if e.msg == msg {
			found = append(found, e)
		}
	}
	return found
}

// value returns the value logged next to key
func (e logEntry) value(key string) interface{} {
	for i := 0; i+1 < len(e.keyvals); i += 2 {
		if e.keyvals[i] == key {
			return e.keyvals[i+1]
		}
	}
	return nil
}

func TestNoOpLogger(t *testing.T) {
	var logger Logger = NoOpLogger{}

	// Should not panic
	logger.Debug("debug", "k", 1)
	logger.Info("info")
	logger.Warn("warn", "k")
	logger.Error("error", "k", nil)
}

func TestLogger_CacheLifecycle(t *testing.T) {
	logger := newTestLogger()

	cfg := DefaultConfig()
	cfg.MaxCount = 2
	cfg.MaxItemWeight = 2
	cfg.Logger = logger

	c, err := NewWithConfig[string](cfg, StringWeight)
	if err != nil {
		t.Fatalf("NewWithConfig failed: %v", err)
	}
	if c.Logger() != logger {
		t.Error("Logger() should return the configured logger")
	}

	created := logger.find("pondus: cache created")
	if len(created) != 1 {
		t.Fatalf("Expected 1 creation log, got %d", len(created))
	}
	if created[0].level != "info" || created[0].value("max_total_weight") != 4 {
		t.Errorf("Unexpected creation log: %+v", created[0])
	}

	_ = c.Insert("a", "aa")
	_ = c.Insert("b", "bb")
	_ = c.Insert("c", "cc")
	_ = c.Insert("d", "ddd")

	evicted := logger.find("pondus: evicted entry")
	if len(evicted) != 1 {
		t.Fatalf("Expected 1 eviction log, got %d", len(evicted))
	}
	if evicted[0].level != "debug" || evicted[0].value("key") != "a" || evicted[0].value("weight") != 2 {
		t.Errorf("Unexpected eviction log: %+v", evicted[0])
	}

	rejected := logger.find("pondus: rejected oversized value")
	if len(rejected) != 1 {
		t.Fatalf("Expected 1 rejection log, got %d", len(rejected))
	}
	if rejected[0].value("key") != "d" || rejected[0].value("weight") != 3 {
		t.Errorf("Unexpected rejection log: %+v", rejected[0])
	}
}

func TestLogger_ResizeDrops(t *testing.T) {
	logger := newTestLogger()

	cfg := DefaultConfig()
	cfg.MaxCount = 2
	cfg.MaxItemWeight = 3
	cfg.Logger = logger

	c, err := NewWithConfig[string](cfg, StringWeight)
	if err != nil {
		t.Fatalf("NewWithConfig failed: %v", err)
	}
	_ = c.Insert("a", "aaa")
	_ = c.Insert("b", "b")

	// The new cache inherits the logger.
	if _, err := c.Resized(Config{MaxCount: 4, MaxItemWeight: 1}); err != nil {
		t.Fatalf("Resized failed: %v", err)
	}

	dropped := logger.find("pondus: entries dropped while resizing")
	if len(dropped) != 1 {
		t.Fatalf("Expected 1 resize warning, got %d", len(dropped))
	}
	if dropped[0].level != "warn" || dropped[0].value("dropped") != 1 || dropped[0].value("trimmed") != 0 {
		t.Errorf("Unexpected resize warning: %+v", dropped[0])
	}
	if n := len(logger.find("pondus: cache created")); n != 2 {
		t.Errorf("Expected 2 creation logs, got %d", n)
	}
}
