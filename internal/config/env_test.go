package config

import (
	"testing"
	"time"
)

func TestBoolEnvOrDefault(t *testing.T) {
	t.Setenv("BOOL_TEST", "")
	if got := boolEnvOrDefault("BOOL_TEST", true); !got {
		t.Fatalf("expected default true when unset")
	}

	cases := []struct {
		val      string
		expected bool
	}{
		{"true", true},
		{" TRUE ", true},
		{"1", true},
		{"on", true},
		{"false", false},
		{"No", false},
		{"0", false},
		{"off", false},
		{"maybe", true},
	}

	for _, tc := range cases {
		t.Setenv("BOOL_TEST", tc.val)
		if got := boolEnvOrDefault("BOOL_TEST", true); got != tc.expected {
			t.Fatalf("expected %v for %q, got %v", tc.expected, tc.val, got)
		}
	}
}

func TestEnvOrDefaultTreatsBlankAsUnset(t *testing.T) {
	t.Setenv("STRING_TEST", "   ")
	if got := envOrDefault("STRING_TEST", "fallback"); got != "fallback" {
		t.Fatalf("expected fallback, got %s", got)
	}
	t.Setenv("STRING_TEST", " set ")
	if got := envOrDefault("STRING_TEST", "fallback"); got != "set" {
		t.Fatalf("expected trimmed value, got %q", got)
	}
}

func TestDurationEnvOrDefault(t *testing.T) {
	cases := map[string]time.Duration{
		"":      time.Second,
		"2m":    2 * time.Minute,
		"-5s":   time.Second,
		"0s":    time.Second,
		"fast":  time.Second,
		" 30s ": 30 * time.Second,
	}
	for raw, want := range cases {
		t.Setenv("DURATION_TEST", raw)
		if got := durationEnvOrDefault("DURATION_TEST", time.Second); got != want {
			t.Fatalf("expected %s for %q, got %s", want, raw, got)
		}
	}
}
