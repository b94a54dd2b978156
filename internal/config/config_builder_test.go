package config

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
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

// TestBuild_EmptyBuilder verifies that building with no configs fails
// validation because no target was supplied.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidTarget)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourceWins verifies that non-zero fields of later configs
// override earlier ones while zero fields keep the earlier value.
func TestBuild_LaterSourceWins(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs,
		&StructuredConfig{Proxy: Proxy{Target: "http://env.test"}, Log: Log{Level: "info"}},
		&StructuredConfig{Proxy: Proxy{Target: "http://flag.test"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "http://flag.test", cfg.Proxy.Target)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "127.0.0.1:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
}

// TestBuild_ValidationErrors verifies the start-up failure categories.
func TestBuild_ValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		cfg    StructuredConfig
		target error
	}{
		{
			name:   "relative target",
			cfg:    StructuredConfig{Proxy: Proxy{Target: "example.com"}},
			target: ErrInvalidTarget,
		},
		{
			name:   "unsupported scheme",
			cfg:    StructuredConfig{Proxy: Proxy{Target: "ftp://example.com"}},
			target: ErrInvalidTarget,
		},
		{
			name:   "unparsable target",
			cfg:    StructuredConfig{Proxy: Proxy{Target: "http://[::1"}},
			target: ErrInvalidTarget,
		},
		{
			name: "bad address",
			cfg: StructuredConfig{
				Proxy:  Proxy{Target: "http://example.com"},
				Server: Server{HTTPAddress: "no-port"},
			},
			target: ErrInvalidServerConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newConfigBuilder().withDefaults()
			b.configs = append(b.configs, &tt.cfg)

			cfg, err := b.build()
			assert.Nil(t, cfg)
			assert.ErrorIs(t, err, tt.target)
		})
	}
}

// ── withEnv ───────────────────────────────────────────────────────────────────

// TestWithEnv_ReturnsBuilder verifies the fluent interface.
func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

// TestWithEnv_ReadsEnvVars verifies that environment variables are picked up.
func TestWithEnv_ReadsEnvVars(t *testing.T) {
	setEnvVars(t, map[string]string{
		"PROXY_TARGET": "http://env.test",
		"LOG_LEVEL":    "error",
	})

	b := newConfigBuilder()
	b.withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "http://env.test", b.configs[0].Proxy.Target)
	assert.Equal(t, "error", b.configs[0].Log.Level)
}

// TestWithEnv_SetsErrorOnBadValue verifies that an unparsable value is
// collected into b.err.
func TestWithEnv_SetsErrorOnBadValue(t *testing.T) {
	setEnvVars(t, map[string]string{"SERVER_SHUTDOWN_TIMEOUT": "soon"})

	b := newConfigBuilder()
	b.withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

// TestWithFlags_ReturnsBuilder verifies the fluent interface.
func TestWithFlags_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags(nil, nil))
}

// TestWithFlags_TooManyArgs verifies that extra positional arguments are
// reported.
func TestWithFlags_TooManyArgs(t *testing.T) {
	b := newConfigBuilder()
	b.withFlags(nil, []string{"http://a.test", "http://b.test"})
	assert.ErrorIs(t, b.err, ErrTooManyArguments)
}

// ── GetStructuredConfig ───────────────────────────────────────────────────────

// TestGetStructuredConfig_FlagsOverrideEnv verifies the full precedence
// chain defaults < env < flags.
func TestGetStructuredConfig_FlagsOverrideEnv(t *testing.T) {
	setEnvVars(t, map[string]string{
		"PROXY_TARGET":        "http://env.test",
		"SOURCES_CONFIG_FILE": "env.yml",
		"SERVER_ADDRESS":      "127.0.0.1:7000",
	})

	fs := pflag.NewFlagSet("config-gen", pflag.ContinueOnError)
	flags := RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"http://flag.test", "--seed", "seed.json"}))

	cfg, err := GetStructuredConfig(flags, fs.Args())
	require.NoError(t, err)

	assert.Equal(t, "http://flag.test", cfg.Proxy.Target)
	assert.Equal(t, "env.yml", cfg.Sources.ConfigFile)
	assert.Equal(t, "seed.json", cfg.Sources.SeedFile)
	assert.Equal(t, "127.0.0.1:7000", cfg.Server.HTTPAddress)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "flag.test", cfg.TargetURL().Host)
}

// TestGetStructuredConfig_MissingTarget verifies that a missing target is a
// start-up error.
func TestGetStructuredConfig_MissingTarget(t *testing.T) {
	clearEnvVars(t)

	cfg, err := GetStructuredConfig(nil, nil)
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidTarget)
}
