// config_test.go: unit tests for Pondus configuration
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package pondus

import (
	"math"
	"testing"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name          string
		config        Config
		wantErr       bool
		wantReason    string
		wantMaxWeight int
	}{
		{
			name:          "valid limits",
			config:        Config{MaxCount: 5, MaxItemWeight: 2},
			wantMaxWeight: 10,
		},
		{
			name:          "single slot",
			config:        Config{MaxCount: 1, MaxItemWeight: 1},
			wantMaxWeight: 1,
		},
		{
			name:       "empty config is rejected",
			config:     Config{},
			wantErr:    true,
			wantReason: reasonNonPositiveLimit,
		},
		{
			name:       "zero max count",
			config:     Config{MaxCount: 0, MaxItemWeight: 4},
			wantErr:    true,
			wantReason: reasonNonPositiveLimit,
		},
		{
			name:       "negative max item weight",
			config:     Config{MaxCount: 4, MaxItemWeight: -1},
			wantErr:    true,
			wantReason: reasonNonPositiveLimit,
		},
		{
			name:       "total weight overflows",
			config:     Config{MaxCount: math.MaxInt/2 + 1, MaxItemWeight: 2},
			wantErr:    true,
			wantReason: reasonTotalOverflow,
		},
		{
			name:          "total weight exactly MaxInt",
			config:        Config{MaxCount: math.MaxInt, MaxItemWeight: 1},
			wantMaxWeight: math.MaxInt,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				if !IsNonsenseParameters(err) {
					t.Fatalf("Config.Validate() error = %v, want %s", err, ErrCodeNonsenseParameters)
				}
				if reason := GetErrorContext(err)["reason"]; reason != tt.wantReason {
					t.Errorf("reason = %v, want %q", reason, tt.wantReason)
				}
				return
			}
			if err != nil {
				t.Fatalf("Config.Validate() error = %v", err)
			}
			if got := tt.config.MaxTotalWeight(); got != tt.wantMaxWeight {
				t.Errorf("MaxTotalWeight() = %v, want %v", got, tt.wantMaxWeight)
			}
		})
	}
}

func TestConfig_ValidateAppliesDefaults(t *testing.T) {
	config := Config{MaxCount: 2, MaxItemWeight: 2}
	if err := config.Validate(); err != nil {
		t.Fatalf("Config.Validate() error = %v", err)
	}

	if _, ok := config.Logger.(NoOpLogger); !ok {
		t.Errorf("Logger = %T, want NoOpLogger", config.Logger)
	}
	if _, ok := config.MetricsCollector.(NoOpMetricsCollector); !ok {
		t.Errorf("MetricsCollector = %T, want NoOpMetricsCollector", config.MetricsCollector)
	}
	if _, ok := config.TimeProvider.(*systemTimeProvider); !ok {
		t.Errorf("TimeProvider = %T, want *systemTimeProvider", config.TimeProvider)
	}
	if config.OnEvict != nil {
		t.Error("OnEvict should stay nil")
	}
}

func TestConfig_ValidateKeepsCustomFields(t *testing.T) {
	logger := newTestLogger()
	metrics := &mockMetricsCollector{}
	clock := &stepTimeProvider{step: 1}

	config := Config{
		MaxCount:         2,
		MaxItemWeight:    2,
		Logger:           logger,
		MetricsCollector: metrics,
		TimeProvider:     clock,
	}
	if err := config.Validate(); err != nil {
		t.Fatalf("Config.Validate() error = %v", err)
	}

	if config.Logger != logger {
		t.Error("custom Logger was replaced")
	}
	if config.MetricsCollector != metrics {
		t.Error("custom MetricsCollector was replaced")
	}
	if config.TimeProvider != clock {
		t.Error("custom TimeProvider was replaced")
	}
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.MaxCount != DefaultMaxCount {
		t.Errorf("MaxCount = %v, want %v", config.MaxCount, DefaultMaxCount)
	}
	if config.MaxItemWeight != DefaultMaxItemWeight {
		t.Errorf("MaxItemWeight = %v, want %v", config.MaxItemWeight, DefaultMaxItemWeight)
	}
	if err := config.Validate(); err != nil {
		t.Errorf("DefaultConfig() does not validate: %v", err)
	}
}

func TestSystemTimeProvider(t *testing.T) {
	p := &systemTimeProvider{}
	if p.Now() <= 0 {
		t.Error("Expected a positive timestamp")
	}
}
