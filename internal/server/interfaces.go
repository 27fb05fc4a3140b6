// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

type Server interface {
	// RunServer serves requests until SIGTERM, SIGINT or SIGQUIT, then
	// shuts down gracefully.
	RunServer()

	// Shutdown stops the server and frees associated resources.
	Shutdown()
}
