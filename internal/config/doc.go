// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// for the array store server and the terminal client.
//
// Configuration is assembled from multiple sources; a field set by an earlier
// source is never overridden by a later one:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON or YAML config file
//  4. Built-in defaults
//
// The entry points are [GetServerConfig] and [GetClientConfig].
package config
