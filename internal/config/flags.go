package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// NetAddress is a "host:port" pair usable as a flag.Value.
type NetAddress struct {
	Host string
	Port int
}

// String returns the address in "host:port" form.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}
	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses a "host:port" string into the receiver.
func (a *NetAddress) Set(s string) error {
	host, portStr, ok := strings.Cut(s, ":")
	if !ok {
		return errors.New("need address in a form host:port")
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return fmt.Errorf("invalid port %q: %w", portStr, err)
	}
	a.Host = host
	a.Port = port
	return nil
}

// ParseFlags reads the command-line flags and returns a StructuredConfig
// holding only the values that were explicitly set on the command line.
func ParseFlags() *StructuredConfig {
	return parseFlags(os.Args[1:])
}

func parseFlags(args []string) *StructuredConfig {
	fs := flag.NewFlagSet("legacy-vault", flag.ContinueOnError)

	addr := new(NetAddress)
	fs.Var(addr, "a", "address and port of the vault server in a form host:port")

	dsn := fs.String("d", "", "PostgreSQL DSN")
	signKey := fs.String("k", "", "HMAC key used to verify bearer tokens")
	issuer := fs.String("i", "", "expected issuer of bearer tokens")
	timeout := fs.Duration("t", 0, "per-request timeout, e.g. 30s")
	jsonPath := fs.String("c", "", "path to a JSON config file")
	fs.StringVar(jsonPath, "config", *jsonPath, "path to a JSON config file")

	// Unknown flags are tolerated so the binary can share an argv with
	// wrappers that add their own options.
	_ = fs.Parse(args)

	return &StructuredConfig{
		Auth: Auth{
			TokenSignKey: *signKey,
			TokenIssuer:  *issuer,
		},
		Storage: Storage{
			DB: DB{DSN: *dsn},
		},
		Server: Server{
			HTTPAddress:    addr.String(),
			RequestTimeout: *timeout,
		},
		JSONFilePath: *jsonPath,
	}
}
