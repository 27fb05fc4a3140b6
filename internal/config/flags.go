// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"io"
	"net"
	"os"
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

// ParseFlags parses the process command line.
//
// Flags:
//
//	-a server listen address in format [host]:[port]
//	-server adapter address of the remote store (URL or host:port)
//	-d database DSN
//	-driver sqlite driver (sqlite3 | sqlite)
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-id-token client bearer token
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-hash-key integrity hash key
//	-sync-interval background sync period
//	-llm-endpoint assessment model endpoint
//	-redis redis address
//	-log-level log level
func ParseFlags() (*StructuredConfig, error) {
	fs := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return parseFlagSet(fs, appArgs(os.Args[1:]))
}

// appArgs drops the flags injected by the go test runner.
func appArgs(args []string) []string {
	out := make([]string, 0, len(args))
	for _, a := range args {
		if strings.HasPrefix(a, "-test.") {
			continue
		}
		out = append(out, a)
	}
	return out
}

func parseFlagSet(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var adapterAddress string
	var databaseDSN, driver string
	var jsonConfigPath string
	var tokenSignKey, tokenIssuer, idToken string
	var tokenDuration, requestTimeout, syncInterval time.Duration
	var hashKey string
	var llmEndpoint string
	var redisAddress string
	var logLevel string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&adapterAddress, "server", "", "Remote store address")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&driver, "driver", "", "SQLite driver (sqlite3|sqlite)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.StringVar(&idToken, "id-token", "", "Client bearer token")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&hashKey, "hash-key", "", "Integrity hash key")
	fs.DurationVar(&syncInterval, "sync-interval", 0, "Background sync period")
	fs.StringVar(&llmEndpoint, "llm-endpoint", "", "Assessment model endpoint")
	fs.StringVar(&redisAddress, "redis", "", "Redis address")
	fs.StringVar(&logLevel, "log-level", "", "Log level")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
			IDToken:       idToken,
			HashKey:       hashKey,
			LogLevel:      logLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN:    databaseDSN,
				Driver: driver,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			RequestTimeout: requestTimeout,
		},
		Workers:      Workers{SyncInterval: syncInterval},
		LLM:          LLM{Endpoint: llmEndpoint},
		Cache:        Cache{RedisAddress: redisAddress},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress, or "" when
// nothing was set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses host:port. The host must be "localhost" or a valid IP.
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

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
