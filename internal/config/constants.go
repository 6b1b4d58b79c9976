package config

import "time"

const (
	envPort         = "PORT"
	envDataSource   = "DATA_SOURCE"
	envFetchTimeout = "DATA_FETCH_TIMEOUT"
	envProbeEvery   = "DATA_PROBE_INTERVAL"
	envOutputDir    = "OUTPUT_DIR"
	envLogLevel     = "LOG_LEVEL"
	envLogFormat    = "LOG_FORMAT"
	envLogFile      = "LOG_FILE"
	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort = "4000"
	// Same relative location the static site always read its document from.
	defaultDataSource   = "data/data.json"
	defaultFetchTimeout = 10 * time.Second
	defaultProbeEvery   = time.Minute
	defaultOutputDir    = "public"
	defaultLogLevel     = "info"
	defaultLogFormat    = "text"
	defaultMetricsPort  = "9090"
	defaultServiceName  = "league-pages"
)
