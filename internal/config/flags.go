// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
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

// parseFlags parses the command-line arguments shared by both binaries.
//
// Flags:
//
//	-a               server address in format [host]:[port]
//	-server-timeout  server request timeout (e.g. "30s")
//	-db-driver       server database driver: pgx or sqlite3
//	-d               server database DSN
//	-api-url         array store base URL used by the client
//	-request-timeout client request timeout (e.g. "15s")
//	-client-db       client preference database path
//	-log-file        client log file path
//	-c/-config       JSON or YAML config file path
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var serverTimeout, requestTimeout time.Duration
	var dbDriver, databaseDSN string
	var apiURL, clientDB, logFile string
	var configPath string

	fs := flag.NewFlagSet("array-keeper", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.DurationVar(&serverTimeout, "server-timeout", 0, "Server request timeout (e.g., 30s, 1m)")
	fs.StringVar(&dbDriver, "db-driver", "", "Database driver: pgx or sqlite3")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&apiURL, "api-url", "", "Array store API base URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Client request timeout (e.g., 15s)")
	fs.StringVar(&clientDB, "client-db", "", "Client preference database path")
	fs.StringVar(&logFile, "log-file", "", "Client log file path")
	fs.StringVar(&configPath, "c", "", "Config file path (JSON or YAML)")
	fs.StringVar(&configPath, "config", "", "Config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{LogFile: logFile},
		Storage: Storage{
			DB:       DB{Driver: dbDriver, DSN: databaseDSN},
			ClientDB: ClientDB{DSN: clientDB},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: serverTimeout,
		},
		Adapter: Adapter{
			APIURL:         apiURL,
			RequestTimeout: requestTimeout,
		},
		FilePath: configPath,
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

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range and checks IP correctness unless host is
// "localhost".
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

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
