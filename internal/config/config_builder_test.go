package config

import (
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no configs returns a
// zero-value StructuredConfig.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_FirstSourceWins verifies that a field set by an earlier source is
// not overridden by a later one, while empty fields are filled.
func TestBuild_FirstSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Server: Server{HTTPAddress: "localhost:1111"}},
		&StructuredConfig{Server: Server{HTTPAddress: "localhost:2222", GRPCAddress: "localhost:3333"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "localhost:1111", cfg.Server.HTTPAddress)
	assert.Equal(t, "localhost:3333", cfg.Server.GRPCAddress)
}

// TestBuild_ValidationError verifies that an invalid merged config is
// rejected.
func TestBuild_ValidationError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{App: App{LogLevel: "loud"}})

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

// ── sources ───────────────────────────────────────────────────────────────────

// TestWithEnv_ReadsEnvVars verifies that environment variables are picked up.
func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("AUTH_TOKEN_ISSUER", "env-issuer")

	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())

	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-issuer", b.configs[0].Auth.TokenIssuer)
}

// TestWithFlags_BadFlagSetsError verifies that a flag parse failure is kept
// on the builder and surfaces from build.
func TestWithFlags_BadFlagSetsError(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-unknown"})

	assert.Error(t, b.err)
	_, err := b.build()
	assert.Error(t, err)
}

// TestWithJSON_NoOp_WhenNoPathSet verifies that withJSON does nothing when
// no config has a JSONFilePath.
func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	assert.Same(t, b, b.withJSON())

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

// TestWithJSON_PathFromFlags verifies that the JSON file named by a flag is
// loaded and merged beneath the flag values.
func TestWithJSON_PathFromFlags(t *testing.T) {
	path := writeJSONFile(t, `{"server":{"http_address":"127.0.0.1:7000","grpc_address":"127.0.0.1:7001"}}`)

	cfg, err := newConfigBuilder().
		withFlags([]string{"-c", path, "-a", "localhost:6000"}).
		withJSON().
		build()

	require.NoError(t, err)
	assert.Equal(t, "localhost:6000", cfg.Server.HTTPAddress)
	assert.Equal(t, "127.0.0.1:7001", cfg.Server.GRPCAddress)
}

// TestWithJSON_MissingFile verifies that an unreadable JSON file is an error.
func TestWithJSON_MissingFile(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/does/not/exist.json"})

	b.withJSON()
	assert.Error(t, b.err)
}

// TestWithDefaults_FillsGaps verifies that defaults only fill empty fields.
func TestWithDefaults_FillsGaps(t *testing.T) {
	cfg, err := newConfigBuilder().
		withFlags([]string{"-max-batch", "7"}).
		withDefaults().
		build()

	require.NoError(t, err)
	assert.Equal(t, 7, cfg.App.MaxBatchSize)
	assert.Equal(t, runtime.NumCPU(), cfg.App.BatchWorkers)
	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultLocaleRefreshInterval, cfg.App.LocaleRefreshInterval)
	assert.Equal(t, time.Hour, cfg.Auth.TokenDuration)
	assert.Equal(t, DriverPostgres, cfg.Storage.DB.Driver)
}

// TestNewClientConfig verifies the mapping from the structured config.
func TestNewClientConfig(t *testing.T) {
	clientCfg := newClientConfig(&StructuredConfig{
		App:     App{LogLevel: "debug"},
		Adapter: Adapter{ServerAddress: "localhost:9090", Protocol: ProtocolGRPC, RequestTimeout: time.Second},
	})

	assert.Equal(t, &ClientConfig{
		ServerAddress:  "localhost:9090",
		Protocol:       ProtocolGRPC,
		RequestTimeout: time.Second,
		LogLevel:       "debug",
	}, clientCfg)
	assert.NoError(t, clientCfg.validate())
}
