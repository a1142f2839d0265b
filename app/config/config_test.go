package config

import "testing"

func TestGetenvFallback(t *testing.T) {
	if got := getenv("EMS_TEST_UNSET_KEY", "fallback"); got != "fallback" {
		t.Fatalf("expected fallback, got %q", got)
	}

	t.Setenv("EMS_TEST_SET_KEY", "from-env")
	if got := getenv("EMS_TEST_SET_KEY", "fallback"); got != "from-env" {
		t.Fatalf("expected env value, got %q", got)
	}
}

func TestSessionSecretDefault(t *testing.T) {
	AppConfig = nil
	if got := string(SessionSecret()); got != "jera-ems-secret-key" {
		t.Fatalf("expected default secret, got %q", got)
	}

	t.Setenv("SESSION_SECRET", "override")
	if got := string(SessionSecret()); got != "override" {
		t.Fatalf("expected override, got %q", got)
	}
}
