package config

import "time"

// DataConfig controls where the league dataset is read from. Source is an
// http(s) URL, a file path, or "fixture". ProbeInterval is how often the
// server re-reads the source to keep readiness current between page loads.
type DataConfig struct {
	Source        string
	Timeout       time.Duration
	ProbeInterval time.Duration
}

func loadData() DataConfig {
	return DataConfig{
		Source:        envOrDefault(envDataSource, defaultDataSource),
		Timeout:       durationEnvOrDefault(envFetchTimeout, defaultFetchTimeout),
		ProbeInterval: durationEnvOrDefault(envProbeEvery, defaultProbeEvery),
	}
}
