package config

import (
	"testing"
	"time"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("FOOTBALL_API_KEY", "")
	t.Setenv("FOOTBALL_API_BASE_URL", "")
	t.Setenv("FOOTBALL_API_TIMEOUT", "")
	t.Setenv("COMPETITIONS_CACHE_TTL", "")
	t.Setenv("DISPLAY_TIMEZONE", "")
	t.Setenv("HOME_WORKER_POOL_SIZE", "")
	t.Setenv("METRICS_ENABLED", "")
	t.Setenv("FOOTBALL_API_CIRCUIT_ENABLED", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.HTTPAddr != ":5001" {
		t.Fatalf("unexpected default http addr: %q", cfg.HTTPAddr)
	}
	if cfg.HasFootballAPIKey() {
		t.Fatalf("expected no football api key by default")
	}
	if cfg.FootballAPIBaseURL != DefaultFootballAPIBaseURL {
		t.Fatalf("unexpected default base url: %q", cfg.FootballAPIBaseURL)
	}
	if cfg.FootballAPITimeout != 10*time.Second {
		t.Fatalf("unexpected default football api timeout: %s", cfg.FootballAPITimeout)
	}
	if cfg.CompetitionsCacheTTL != 300*time.Second {
		t.Fatalf("unexpected default competitions cache ttl: %s", cfg.CompetitionsCacheTTL)
	}
	if cfg.DisplayLocation == nil || cfg.DisplayLocation.String() != "UTC" {
		t.Fatalf("unexpected default display location: %v", cfg.DisplayLocation)
	}
	if cfg.HomeWorkerPoolSize != DefaultHomeWorkerPoolSize {
		t.Fatalf("unexpected default pool size: %d", cfg.HomeWorkerPoolSize)
	}
	if !cfg.MetricsEnabled {
		t.Fatalf("expected metrics enabled by default")
	}
	if !cfg.FootballAPICircuit.Enabled || cfg.FootballAPICircuit.FailureThreshold != 5 || cfg.FootballAPICircuit.OpenTimeout != 15*time.Second {
		t.Fatalf("unexpected default circuit config: %+v", cfg.FootballAPICircuit)
	}
}

func TestLoad_FootballAPIParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("FOOTBALL_API_KEY", "  abc123  ")
	t.Setenv("FOOTBALL_API_BASE_URL", "http://localhost:9000/v4/")
	t.Setenv("FOOTBALL_API_TIMEOUT", "3s")
	t.Setenv("FOOTBALL_API_CIRCUIT_ENABLED", "false")
	t.Setenv("FOOTBALL_API_CIRCUIT_FAILURE_COUNT", "2")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.FootballAPIKey != "abc123" {
		t.Fatalf("expected trimmed api key, got %q", cfg.FootballAPIKey)
	}
	if cfg.FootballAPIBaseURL != "http://localhost:9000/v4" {
		t.Fatalf("unexpected base url: %q", cfg.FootballAPIBaseURL)
	}
	if cfg.FootballAPITimeout != 3*time.Second {
		t.Fatalf("unexpected timeout: %s", cfg.FootballAPITimeout)
	}
	if cfg.FootballAPICircuit.Enabled {
		t.Fatalf("expected circuit disabled")
	}
	if cfg.FootballAPICircuit.FailureThreshold != 2 {
		t.Fatalf("unexpected failure threshold: %d", cfg.FootballAPICircuit.FailureThreshold)
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	cases := map[string]string{
		"FOOTBALL_API_TIMEOUT":               "0s",
		"COMPETITIONS_CACHE_TTL":             "bad",
		"DISPLAY_TIMEZONE":                   "Mars/Olympus_Mons",
		"HOME_WORKER_POOL_SIZE":              "0",
		"METRICS_ENABLED":                    "maybe",
		"FOOTBALL_API_CIRCUIT_FAILURE_COUNT": "0",
		"FOOTBALL_API_CIRCUIT_OPEN_TIMEOUT":  "-1s",
		"HTTP_READ_TIMEOUT":                  "soon",
	}

	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv("APP_ENV", EnvDev)
			t.Setenv("UPTRACE_ENABLED", "false")
			t.Setenv(key, value)

			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%q", key, value)
			}
		})
	}
}

func TestLoad_DisplayTimezone(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("DISPLAY_TIMEZONE", "Africa/Kigali")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.DisplayLocation.String() != "Africa/Kigali" {
		t.Fatalf("unexpected display location: %s", cfg.DisplayLocation)
	}
}

func TestConfig_WithPort(t *testing.T) {
	cfg := Config{HTTPAddr: DefaultHTTPAddr}

	out, err := cfg.WithPort(8080)
	if err != nil {
		t.Fatalf("with port: %v", err)
	}
	if out.HTTPAddr != ":8080" {
		t.Fatalf("unexpected addr: %q", out.HTTPAddr)
	}
	if cfg.HTTPAddr != DefaultHTTPAddr {
		t.Fatalf("expected original config untouched")
	}

	if _, err := cfg.WithPort(70000); err == nil {
		t.Fatalf("expected error for out of range port")
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_UptraceDSNFromOTLPHeaders(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", `uptrace-dsn="https://token@api.uptrace.dev?grpc=4317"`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UptraceDSN != "https://token@api.uptrace.dev?grpc=4317" {
		t.Fatalf("unexpected uptrace dsn: %q", cfg.UptraceDSN)
	}
}

func TestLoad_BetterStackRequiresEndpointWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("BETTERSTACK_ENABLED", "true")
	t.Setenv("BETTERSTACK_ENDPOINT", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when BETTERSTACK_ENABLED=true without BETTERSTACK_ENDPOINT")
	}
}

func TestLoad_BetterStackConfigParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("BETTERSTACK_ENABLED", "true")
	t.Setenv("BETTERSTACK_ENDPOINT", "s1765114.eu-fsn-3.betterstackdata.com")
	t.Setenv("BETTERSTACK_TOKEN", "token-123")
	t.Setenv("BETTERSTACK_TIMEOUT", "4s")
	t.Setenv("BETTERSTACK_MIN_LEVEL", "warn")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if !cfg.BetterStackEnabled {
		t.Fatalf("expected BetterStackEnabled=true")
	}
	if cfg.BetterStackToken != "token-123" {
		t.Fatalf("unexpected BetterStackToken")
	}
	if cfg.BetterStackTimeout != 4*time.Second {
		t.Fatalf("unexpected BetterStackTimeout: %s", cfg.BetterStackTimeout)
	}
	if cfg.BetterStackMinLevel.String() != "warn" {
		t.Fatalf("unexpected BetterStackMinLevel: %s", cfg.BetterStackMinLevel.String())
	}
}

func TestLoad_PyroscopeRequiresServerAddressWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when PYROSCOPE_ENABLED=true without PYROSCOPE_SERVER_ADDRESS")
	}
}

func TestLoad_PyroscopeAppNameDefaultsToServiceName(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("SERVICE_NAME", "football-api-app-test")
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "http://localhost:4040")
	t.Setenv("PYROSCOPE_APP_NAME", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PyroscopeAppName != "football-api-app-test" {
		t.Fatalf("unexpected pyroscope app name: %q", cfg.PyroscopeAppName)
	}
}

func TestLoad_CORSOriginsDefaultAndParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")

	t.Run("default wildcard", func(t *testing.T) {
		t.Setenv("CORS_ALLOWED_ORIGINS", "")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
			t.Fatalf("unexpected default CORS origins: %+v", cfg.CORSAllowedOrigins)
		}
	})

	t.Run("comma separated parsing", func(t *testing.T) {
		t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example.com, http://localhost:5173 ")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if len(cfg.CORSAllowedOrigins) != 2 {
			t.Fatalf("unexpected CORS origins length: %d", len(cfg.CORSAllowedOrigins))
		}
		if cfg.CORSAllowedOrigins[1] != "http://localhost:5173" {
			t.Fatalf("unexpected second CORS origin: %s", cfg.CORSAllowedOrigins[1])
		}
	})

	t.Run("only separators", func(t *testing.T) {
		t.Setenv("CORS_ALLOWED_ORIGINS", " , ,")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for empty CORS origin list")
		}
	})
}
