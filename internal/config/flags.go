package config

import (
	"errors"
	"net"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// Flags holds the values of the command-line flags registered by
// [RegisterFlags]. It is filled in when the owning flag set is parsed.
type Flags struct {
	address    NetAddress
	configFile string
	seedFile   string
	seedOut    string
	logLevel   string
}

// RegisterFlags registers all configuration flags on fs and returns the
// holder their values are parsed into.
//
// Flags:
//
//	-a, --address   listen address in format [host]:[port]
//	-c, --config    static build configuration file (YAML or JSON)
//	-s, --seed      seed file or http(s) URL with a request ledger from a prior session
//	--seed-out      file the request ledger is written to on shutdown
//	--log-level     log level (debug, info, warn, error)
func RegisterFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{}

	fs.VarP(&f.address, "address", "a", "Net address host:port")
	fs.StringVarP(&f.configFile, "config", "c", "", "Static build config file (YAML or JSON)")
	fs.StringVarP(&f.seedFile, "seed", "s", "", "Seed file or URL with a recorded request log")
	fs.StringVar(&f.seedOut, "seed-out", "", "Write the request log to this file on shutdown")
	fs.StringVar(&f.logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	return f
}

// structured converts the parsed flags and positional arguments into a
// *StructuredConfig. The first positional argument is the target origin.
func (f *Flags) structured(args []string) (*StructuredConfig, error) {
	if len(args) > 1 {
		return nil, ErrTooManyArguments
	}

	var target string
	if len(args) == 1 {
		target = args[0]
	}

	return &StructuredConfig{
		Server: Server{
			HTTPAddress: f.address.String(),
		},
		Proxy: Proxy{
			Target: target,
		},
		Sources: Sources{
			ConfigFile: f.configFile,
			SeedFile:   f.seedFile,
			SeedOut:    f.seedOut,
		},
		Log: Log{
			Level: f.logLevel,
		},
	}, nil
}

// NetAddress holds structured network address data for host and port.
// It implements the pflag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string so that the
// address does not override lower precedence sources.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
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
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

// Type implements pflag.Value.
func (a *NetAddress) Type() string {
	return "host:port"
}
