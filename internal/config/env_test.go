package config

import "testing"

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
		{"TRUE", true},
		{"1", true},
		{"yes", true},
		{"false", false},
		{"FALSE", false},
		{"0", false},
		{"no", false},
		{"maybe", true}, // falls back to default on unknown
	}

	for _, tc := range cases {
		t.Setenv("BOOL_TEST", tc.val)
		if got := boolEnvOrDefault("BOOL_TEST", true); got != tc.expected {
			t.Fatalf("expected %v for %s, got %v", tc.expected, tc.val, got)
		}
	}
}

func TestInt64EnvOrDefault(t *testing.T) {
	t.Setenv("SEED_TEST", "")
	if got := int64EnvOrDefault("SEED_TEST", 7); got != 7 {
		t.Fatalf("expected default when unset, got %d", got)
	}

	t.Setenv("SEED_TEST", "-42")
	if got := int64EnvOrDefault("SEED_TEST", 7); got != -42 {
		t.Fatalf("expected negative values accepted, got %d", got)
	}

	t.Setenv("SEED_TEST", "0")
	if got := int64EnvOrDefault("SEED_TEST", 7); got != 0 {
		t.Fatalf("expected zero accepted, got %d", got)
	}

	t.Setenv("SEED_TEST", "nope")
	if got := int64EnvOrDefault("SEED_TEST", 7); got != 7 {
		t.Fatalf("expected default on parse failure, got %d", got)
	}
}
