// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/autobrain/internal/service"
)

// humanizeServerUnavailableError turns sync and load failures into a short
// status line. Network failures collapse into one message.
func humanizeServerUnavailableError(err error) string {
	if err == nil {
		return ""
	}

	if errors.Is(err, service.ErrUnauthenticated) {
		return "Сервер отклонил ID токен, проверьте APP_ID_TOKEN"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Отсутствует сеть или Сервер недоступен"
	}

	return err.Error()
}
