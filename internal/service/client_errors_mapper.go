// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/autobrain/internal/adapter"
)

// mapAdapterError translates a transport error into a service error while
// keeping the original in the chain, so adapter.IsTransient still works on
// the result.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		return fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	case errors.Is(err, adapter.ErrForbidden):
		return fmt.Errorf("%w: %w", ErrWrongUserScope, err)
	case adapter.IsTransient(err):
		return fmt.Errorf("%w: %w", ErrRemoteUnavailable, err)
	case errors.Is(err, adapter.ErrBadRequest),
		errors.Is(err, adapter.ErrConflict),
		errors.Is(err, adapter.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrRemoteRejected, err)
	}

	return err
}
