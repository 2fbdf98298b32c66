package config

import (
	"os"
	"strconv"
	"strings"
)

const (
	// RuntimeURLDefault is where the mahjong runtime sidecar (scoring
	// calculator + wait solver) listens in the standard deployment.
	RuntimeURLDefault = "http://127.0.0.1:8801"

	// SamplePathDefault is the bundled sample kifu document.
	SamplePathDefault = "shared/sample_kifu.json"
)

// ServerConfig holds all server configuration.
type ServerConfig struct {
	Host        string
	Port        int
	Verbose     bool
	Debug       bool
	RuntimeURL  string
	DetectorURL string
	SamplePath  string
}

// DefaultFromEnv creates a ServerConfig with defaults from environment
// variables. The detector URL has no default: without it the detection
// endpoints degrade gracefully.
func DefaultFromEnv() *ServerConfig {
	return &ServerConfig{
		Host:        envOrDefault("KIFU_HOST", "127.0.0.1"),
		Port:        envInt("KIFU_PORT", 8000),
		Verbose:     envBool("KIFU_VERBOSE"),
		Debug:       envBool("KIFU_DEBUG"),
		RuntimeURL:  envOrDefault("KIFU_RUNTIME_URL", RuntimeURLDefault),
		DetectorURL: strings.TrimSpace(os.Getenv("KIFU_DETECTOR_URL")),
		SamplePath:  envOrDefault("KIFU_SAMPLE_PATH", SamplePathDefault),
	}
}

func envOrDefault(key, defaultVal string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return defaultVal
}

func envInt(key string, defaultVal int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return defaultVal
	}
	return n
}

func envBool(key string) bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	return v == "1" || v == "true" || v == "yes" || v == "on"
}
