// Copyright 2025 The mcp-specialist authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package specialist

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
)

// Transport modes recognized by [ConfigFromEnv].
const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

// Environment variables controlling transport selection.
const (
	EnvTransport = "MCP_TRANSPORT"
	EnvHTTPHost  = "MCP_HTTP_HOST"
	EnvHTTPPort  = "MCP_HTTP_PORT"
)

// Defaults applied when the corresponding variable is unset.
const (
	DefaultHTTPHost = "127.0.0.1"
	DefaultHTTPPort = 3333
)

// Config selects the transport the server runs and, for HTTP, where it binds.
type Config struct {
	// Transport is TransportStdio or TransportHTTP.
	Transport string

	// HTTPHost and HTTPPort are the HTTP bind address. Ignored for stdio.
	HTTPHost string
	HTTPPort int
}

// Addr returns the HTTP bind address in host:port form.
func (c Config) Addr() string {
	return net.JoinHostPort(c.HTTPHost, strconv.Itoa(c.HTTPPort))
}

// Validate checks the config. It returns a *ConfigError describing the first
// invalid field, or nil. The bind fields are only checked for the http
// transport; stdio never reads them.
func (c Config) Validate() error {
	switch c.Transport {
	case TransportStdio:
		return nil
	case TransportHTTP:
		if c.HTTPPort < 1 || c.HTTPPort > 65535 {
			return &ConfigError{
				Name:    EnvHTTPPort,
				Value:   strconv.Itoa(c.HTTPPort),
				Message: "expected a port between 1 and 65535",
			}
		}
		return nil
	default:
		return &ConfigError{
			Name:    EnvTransport,
			Value:   c.Transport,
			Message: fmt.Sprintf("expected %q or %q", TransportStdio, TransportHTTP),
		}
	}
}

// ConfigFromEnv builds a Config from the MCP_TRANSPORT, MCP_HTTP_HOST, and
// MCP_HTTP_PORT environment variables.
//
// MCP_TRANSPORT defaults to "stdio" and is compared case-insensitively. An
// unrecognized transport yields a *ConfigError, as does an unparseable port
// under the http transport; callers must treat either as fatal and start no
// transport. The bind variables are never read under stdio.
func ConfigFromEnv() (Config, error) {
	cfg := Config{
		Transport: TransportStdio,
		HTTPHost:  DefaultHTTPHost,
		HTTPPort:  DefaultHTTPPort,
	}

	if v := os.Getenv(EnvTransport); v != "" {
		cfg.Transport = strings.ToLower(v)
	}

	if cfg.Transport == TransportHTTP {
		if v := os.Getenv(EnvHTTPHost); v != "" {
			cfg.HTTPHost = v
		}
		if v := os.Getenv(EnvHTTPPort); v != "" {
			port, err := strconv.Atoi(v)
			if err != nil {
				return Config{}, &ConfigError{
					Name:    EnvHTTPPort,
					Value:   v,
					Message: "expected an integer port",
				}
			}
			cfg.HTTPPort = port
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
