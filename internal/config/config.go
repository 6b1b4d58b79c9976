package config

// Config holds runtime configuration for the server and the static renderer.
type Config struct {
	Port      string
	Data      DataConfig
	OutputDir string
	Log       LogConfig
	Metrics   MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:      envOrDefault(envPort, defaultPort),
		Data:      loadData(),
		OutputDir: envOrDefault(envOutputDir, defaultOutputDir),
		Log:       loadLog(),
		Metrics:   loadMetrics(),
	}
}
