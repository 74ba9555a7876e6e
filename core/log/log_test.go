package log

import (
	"errors"
	"testing"
	"time"
)

func TestKeyValueHelpers(t *testing.T) {
	tests := []struct {
		name string
		kv   any
		key  string
		val  any
	}{
		{"Str", Str("procedure", "/openstatus.health.v1.HealthService/Check"), "procedure", "/openstatus.health.v1.HealthService/Check"},
		{"Int", Int("attempt", 1), "attempt", 1},
		{"Dur", Dur("duration", 250*time.Millisecond), "duration", 250 * time.Millisecond},
		{"Bool", Bool("authenticated", true), "authenticated", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pair, ok := tt.kv.([]any)
			if !ok {
				t.Fatalf("%s should return []any, got %T", tt.name, tt.kv)
			}
			if len(pair) != 2 {
				t.Fatalf("expected 2 elements, got %d", len(pair))
			}
			if pair[0] != tt.key || pair[1] != tt.val {
				t.Errorf("got %v, want [%v %v]", pair, tt.key, tt.val)
			}
		})
	}
}

func TestNop(t *testing.T) {
	logger := Nop()
	if logger.With("k", "v") == nil {
		t.Fatal("With on Nop logger should not return nil")
	}
	logger.Debug("debug")
	logger.Info("info")
	logger.Warn("warn")
	logger.Error(errors.New("boom"), "error")
}
