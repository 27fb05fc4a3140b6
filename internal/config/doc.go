// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation.
//
// Configuration is assembled from multiple sources; earlier sources win for
// non-zero fields:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// [GetServerConfig] serves the remote store server and [GetClientConfig]
// the device client.
package config
