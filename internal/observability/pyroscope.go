package observability

import (
	"fmt"
	"runtime"

	"github.com/grafana/pyroscope-go"

	"github.com/Gedeon250/football-api-app/internal/config"
	"github.com/Gedeon250/football-api-app/internal/platform/logging"
)

const contentionSampleRate = 5

var baseProfileTypes = []pyroscope.ProfileType{
	pyroscope.ProfileCPU,
	pyroscope.ProfileAllocObjects,
	pyroscope.ProfileAllocSpace,
	pyroscope.ProfileInuseObjects,
	pyroscope.ProfileInuseSpace,
	pyroscope.ProfileGoroutines,
}

// InitPyroscope starts continuous profiling when enabled. Outside prod it also
// samples mutex and block contention around the cache slot and worker pool.
func InitPyroscope(cfg config.Config, logger *logging.Logger) (func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}

	if !cfg.PyroscopeEnabled {
		logger.Info("pyroscope disabled", "reason", "PYROSCOPE_ENABLED=false")
		return func() error { return nil }, nil
	}

	pcfg := pyroscopeConfig(cfg)
	contention := profilesContention(cfg.AppEnv)
	if contention {
		runtime.SetMutexProfileFraction(contentionSampleRate)
		runtime.SetBlockProfileRate(contentionSampleRate)
	}

	profiler, err := pyroscope.Start(pcfg)
	if err != nil {
		return nil, fmt.Errorf("start pyroscope: %w", err)
	}

	logger.Info("pyroscope enabled",
		"server_address", pcfg.ServerAddress,
		"application", pcfg.ApplicationName,
		"contention_profiles", contention,
	)

	return profiler.Stop, nil
}

func pyroscopeConfig(cfg config.Config) pyroscope.Config {
	types := append([]pyroscope.ProfileType(nil), baseProfileTypes...)
	if profilesContention(cfg.AppEnv) {
		types = append(types,
			pyroscope.ProfileMutexCount,
			pyroscope.ProfileMutexDuration,
			pyroscope.ProfileBlockCount,
			pyroscope.ProfileBlockDuration,
		)
	}

	return pyroscope.Config{
		ApplicationName:   cfg.PyroscopeAppName,
		ServerAddress:     cfg.PyroscopeServerAddress,
		AuthToken:         cfg.PyroscopeAuthToken,
		BasicAuthUser:     cfg.PyroscopeBasicAuthUser,
		BasicAuthPassword: cfg.PyroscopeBasicAuthPassword,
		UploadRate:        cfg.PyroscopeUploadRate,
		Tags:              profilingTags(cfg),
		ProfileTypes:      types,
	}
}

func profilesContention(env string) bool {
	return env != config.EnvProd
}

func profilingTags(cfg config.Config) map[string]string {
	return map[string]string{
		"env":       cfg.AppEnv,
		"service":   cfg.ServiceName,
		"version":   cfg.ServiceVersion,
		"data_mode": dataMode(cfg),
	}
}
