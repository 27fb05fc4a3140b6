// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It wires the dashboard, the client services and the background job
// scheduler into a single process lifecycle. The scheduler starts before
// the dashboard opens and is stopped after it closes.
package client
