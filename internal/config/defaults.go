package config

import (
	"runtime"
	"time"
)

// Default values applied to fields left empty by every other source.
const (
	DefaultHTTPAddress           = "localhost:8080"
	DefaultGRPCAddress           = "localhost:9090"
	DefaultRequestTimeout        = 10 * time.Second
	DefaultShutdownTimeout       = 10 * time.Second
	DefaultDBDriver              = DriverPostgres
	DefaultLogLevel              = "info"
	DefaultLocaleRefreshInterval = 5 * time.Minute
	DefaultMaxBatchSize          = 1000
	DefaultTokenIssuer           = "tin-keeper"
	DefaultTokenDuration         = time.Hour
	DefaultProtocol              = ProtocolHTTP
)

// Supported database drivers.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

// Supported client protocols.
const (
	ProtocolHTTP = "http"
	ProtocolGRPC = "grpc"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Server: Server{
			HTTPAddress:     DefaultHTTPAddress,
			GRPCAddress:     DefaultGRPCAddress,
			RequestTimeout:  DefaultRequestTimeout,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		Storage: Storage{
			DB: DB{Driver: DefaultDBDriver},
		},
		App: App{
			LogLevel:              DefaultLogLevel,
			LocaleRefreshInterval: DefaultLocaleRefreshInterval,
			BatchWorkers:          runtime.NumCPU(),
			MaxBatchSize:          DefaultMaxBatchSize,
		},
		Auth: Auth{
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: DefaultTokenDuration,
		},
		Adapter: Adapter{
			ServerAddress:  DefaultHTTPAddress,
			Protocol:       DefaultProtocol,
			RequestTimeout: DefaultRequestTimeout,
		},
	}
}
