// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrMissingCarFields is a permanent failure: scoring needs make, model
	// and a plausible year.
	ErrMissingCarFields = errors.New("car make, model and year are required")

	ErrInvalidID         = errors.New("invalid id")
	ErrInvalidUserID     = errors.New("invalid user ID")
	ErrInvalidCarID      = errors.New("invalid car ID")
	ErrInvalidCollection = errors.New("unknown collection")
	ErrEmptyBody         = errors.New("document body is required")
	ErrInvalidBody       = errors.New("document body is not a json object")
	ErrEmptyTitle        = errors.New("title is required")
	ErrInvalidDueDate    = errors.New("due date is required")
	ErrInvalidPriority   = errors.New("invalid priority")
	ErrInvalidMileage    = errors.New("mileage cannot be negative")
	ErrInvalidCost       = errors.New("cost cannot be negative")
	ErrEmptyServiceType  = errors.New("service type is required")
	ErrEmptyDocType      = errors.New("document type is required")
	ErrInvalidConfidence = errors.New("confidence must be within [0,1]")
	ErrEmptyAnalysis     = errors.New("analysis produced no classifications")
	ErrEmptyLabel        = errors.New("classification label is required")
)
