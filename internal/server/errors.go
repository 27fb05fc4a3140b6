// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var errServerNotConfigured = errors.New("http server needs a handler and an address")
