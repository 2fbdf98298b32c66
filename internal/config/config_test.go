package config

import "testing"

func setenv(t *testing.T, key, val string) {
	t.Helper()
	t.Setenv(key, val)
}

func TestDefaultFromEnvDefaults(t *testing.T) {
	for _, key := range []string{"KIFU_HOST", "KIFU_PORT", "KIFU_VERBOSE", "KIFU_RUNTIME_URL", "KIFU_DETECTOR_URL", "KIFU_SAMPLE_PATH"} {
		setenv(t, key, "")
	}
	cfg := DefaultFromEnv()
	if cfg.Host != "127.0.0.1" || cfg.Port != 8000 {
		t.Fatalf("bind defaults wrong: %s:%d", cfg.Host, cfg.Port)
	}
	if cfg.RuntimeURL != RuntimeURLDefault {
		t.Fatalf("runtime URL default wrong: %q", cfg.RuntimeURL)
	}
	if cfg.DetectorURL != "" {
		t.Fatalf("detector URL should default empty, got %q", cfg.DetectorURL)
	}
	if cfg.Verbose || cfg.Debug {
		t.Fatal("verbose/debug should default off")
	}
}

func TestDefaultFromEnvOverrides(t *testing.T) {
	setenv(t, "KIFU_HOST", "0.0.0.0")
	setenv(t, "KIFU_PORT", "9000")
	setenv(t, "KIFU_VERBOSE", "yes")
	setenv(t, "KIFU_RUNTIME_URL", "http://runtime:1234")
	setenv(t, "KIFU_DETECTOR_URL", "http://detector:5678")

	cfg := DefaultFromEnv()
	if cfg.Host != "0.0.0.0" || cfg.Port != 9000 {
		t.Fatalf("bind overrides not applied: %s:%d", cfg.Host, cfg.Port)
	}
	if !cfg.Verbose {
		t.Fatal("verbose override not applied")
	}
	if cfg.RuntimeURL != "http://runtime:1234" || cfg.DetectorURL != "http://detector:5678" {
		t.Fatalf("sidecar URLs not applied: %q %q", cfg.RuntimeURL, cfg.DetectorURL)
	}
}

func TestEnvIntFallsBackOnGarbage(t *testing.T) {
	setenv(t, "KIFU_PORT", "not-a-port")
	if cfg := DefaultFromEnv(); cfg.Port != 8000 {
		t.Fatalf("expected default port on garbage input, got %d", cfg.Port)
	}
}
