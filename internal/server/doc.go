// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the array store HTTP server.
//
// It owns startup, signal handling and graceful shutdown. The listener and
// the shutdown watcher run in one errgroup, so a listen failure stops the
// process and a signal drains in-flight requests within the configured
// shutdown timeout.
package server
