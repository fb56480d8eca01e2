package config

import (
	"errors"
	"flag"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses configuration flags from args.
//
// Flags:
//
//	-a server HTTP address in format [host]:[port]
//	-grpc-address server gRPC address in format [host]:[port]
//	-d database DSN
//	-driver database driver (pgx, sqlite3)
//	-c/-config json file path with configs
//	-log-level log level (debug, info, warn, error)
//	-locale-codes YAML file with Italian locale codes
//	-locale-refresh locale code reload interval (e.g., "5m")
//	-batch-workers concurrent validations per batch
//	-max-batch largest accepted batch
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-shutdown-timeout graceful shutdown timeout
//	-admin-login administrator login
//	-admin-password-hash administrator argon2id password hash
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-server client: server address in format [host]:[port]
//	-protocol client: http or grpc
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress, grpcServerAddress, adapterAddress NetAddress
	var databaseDSN, databaseDriver string
	var jsonConfigPath string
	var logLevel, localeCodesFile string
	var localeRefresh time.Duration
	var batchWorkers, maxBatch int
	var requestTimeout, shutdownTimeout time.Duration
	var adminLogin, adminPasswordHash string
	var tokenSignKey, tokenIssuer string
	var tokenDuration time.Duration
	var protocol string

	fs := flag.NewFlagSet("tin-keeper", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&databaseDriver, "driver", "", "Database driver (pgx, sqlite3)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&localeCodesFile, "locale-codes", "", "YAML file with Italian locale codes")
	fs.DurationVar(&localeRefresh, "locale-refresh", 0, "Locale code reload interval")
	fs.IntVar(&batchWorkers, "batch-workers", 0, "Concurrent validations per batch")
	fs.IntVar(&maxBatch, "max-batch", 0, "Largest accepted batch")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&shutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout")
	fs.StringVar(&adminLogin, "admin-login", "", "Administrator login")
	fs.StringVar(&adminPasswordHash, "admin-password-hash", "", "Administrator argon2id password hash")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.Var(&adapterAddress, "server", "Client: server address host:port")
	fs.StringVar(&protocol, "protocol", "", "Client: http or grpc")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		Server: Server{
			HTTPAddress:     serverAddress.String(),
			GRPCAddress:     grpcServerAddress.String(),
			RequestTimeout:  requestTimeout,
			ShutdownTimeout: shutdownTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN:    databaseDSN,
				Driver: databaseDriver,
			},
		},
		App: App{
			LogLevel:              logLevel,
			LocaleCodesFile:       localeCodesFile,
			LocaleRefreshInterval: localeRefresh,
			BatchWorkers:          batchWorkers,
			MaxBatchSize:          maxBatch,
		},
		Auth: Auth{
			AdminLogin:        adminLogin,
			AdminPasswordHash: adminPasswordHash,
			TokenSignKey:      tokenSignKey,
			TokenIssuer:       tokenIssuer,
			TokenDuration:     tokenDuration,
		},
		Adapter: Adapter{
			ServerAddress:  adapterAddress.String(),
			Protocol:       protocol,
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress, or "" when
// neither part is set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// The host may be empty, "localhost" or an IP address.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
