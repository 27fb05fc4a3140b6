// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http is the REST surface of the AutoBrain remote store.
//
// Authenticated devices push and pull their synced collections as opaque
// JSON documents, look up car images and request presigned upload URLs
// for document scans. Tracing, access logging, compression, bearer token
// checks and the HashSHA256 integrity header are handled here before a
// request reaches the service layer.
package http
