package config

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress(t *testing.T) {
	tests := []struct {
		input   string
		want    NetAddress
		wantErr string
	}{
		{input: "127.0.0.1:8080", want: NetAddress{Host: "127.0.0.1", Port: 8080}},
		{input: "localhost:3000", want: NetAddress{Host: "localhost", Port: 3000}},
		{input: ":9000", want: NetAddress{Port: 9000}},
		{input: "0.0.0.0:65535", want: NetAddress{Host: "0.0.0.0", Port: 65535}},
		{input: "", wantErr: "need address in a form `host:port`"},
		{input: "8080", wantErr: "need address in a form `host:port`"},
		{input: "[::1]:8080", wantErr: "need address in a form `host:port`"},
		{input: "localhost:http", wantErr: "invalid syntax"},
		{input: "localhost:0", wantErr: "port number must be between 1 and 65535"},
		{input: "localhost:65536", wantErr: "port number must be between 1 and 65535"},
		{input: "magento.test:8080", wantErr: "incorrect IP-address provided"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Empty(t, addr.String(), "a rejected value must leave the address unset")
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, addr)
			assert.Equal(t, tt.input, addr.String())
		})
	}
}

func TestRegisterFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want StructuredConfig
	}{
		{
			name: "target only",
			args: []string{"http://magento.test"},
			want: StructuredConfig{Proxy: Proxy{Target: "http://magento.test"}},
		},
		{
			name: "long flags after the target",
			args: []string{
				"https://shop.test:8443",
				"--address", "127.0.0.1:3000",
				"--config", "build/config.yml",
				"--seed", "session/seed.json",
				"--seed-out", "session/next.json",
				"--log-level", "warn",
			},
			want: StructuredConfig{
				Server:  Server{HTTPAddress: "127.0.0.1:3000"},
				Proxy:   Proxy{Target: "https://shop.test:8443"},
				Sources: Sources{ConfigFile: "build/config.yml", SeedFile: "session/seed.json", SeedOut: "session/next.json"},
				Log:     Log{Level: "warn"},
			},
		},
		{
			name: "short flags before the target",
			args: []string{"-a", ":8081", "-c", "config.json", "-s", "seed.json", "http://magento.test"},
			want: StructuredConfig{
				Server:  Server{HTTPAddress: ":8081"},
				Proxy:   Proxy{Target: "http://magento.test"},
				Sources: Sources{ConfigFile: "config.json", SeedFile: "seed.json"},
			},
		},
		{
			name: "no arguments leave every field to lower sources",
			want: StructuredConfig{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := pflag.NewFlagSet("config-gen", pflag.ContinueOnError)
			flags := RegisterFlags(fs)
			require.NoError(t, fs.Parse(tt.args))

			cfg, err := flags.structured(fs.Args())
			require.NoError(t, err)
			assert.Equal(t, tt.want, *cfg)
		})
	}
}

func TestRegisterFlags_Rejected(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "bad address", args: []string{"--address", "nope"}},
		{name: "unknown flag", args: []string{"--origin", "http://magento.test"}},
		{name: "missing value", args: []string{"--config"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := pflag.NewFlagSet("config-gen", pflag.ContinueOnError)
			RegisterFlags(fs)
			assert.Error(t, fs.Parse(tt.args))
		})
	}
}

func TestFlags_TwoTargets(t *testing.T) {
	cfg, err := (&Flags{}).structured([]string{"http://a.test", "http://b.test"})
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrTooManyArguments)
}
