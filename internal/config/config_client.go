package config

import (
	"fmt"
	"os"
	"time"
)

// ClientConfig is the terminal client's view of [StructuredConfig].
type ClientConfig struct {
	// ServerAddress is the host:port of the server.
	ServerAddress string
	// Protocol is [ProtocolHTTP] or [ProtocolGRPC].
	Protocol string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
	// LogLevel is the zerolog level of the client log file.
	LogLevel string
}

// GetClientConfig builds and validates the client configuration from the
// same sources as [GetStructuredConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		withDefaults().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		ServerAddress:  cfg.Adapter.ServerAddress,
		Protocol:       cfg.Adapter.Protocol,
		RequestTimeout: cfg.Adapter.RequestTimeout,
		LogLevel:       cfg.App.LogLevel,
	}
}
