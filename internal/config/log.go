package config

// LogConfig controls logger level, format and optional file output.
type LogConfig struct {
	Level  string
	Format string
	File   string
}

func loadLog() LogConfig {
	return LogConfig{
		Level:  envOrDefault(envLogLevel, defaultLogLevel),
		Format: envOrDefault(envLogFormat, defaultLogFormat),
		File:   envOrDefault(envLogFile, ""),
	}
}
