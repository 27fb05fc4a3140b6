// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/MKhiriev/autobrain/models"
)

const (
	FieldID          = "id"
	FieldUserID      = "user_id"
	FieldCarID       = "car_id"
	FieldCar         = "car"
	FieldCollection  = "collection"
	FieldBody        = "body"
	FieldTitle       = "title"
	FieldDueDate     = "due_date"
	FieldPriority    = "priority"
	FieldMileage     = "mileage"
	FieldCost        = "cost"
	FieldServiceType = "service_type"
	FieldDocType     = "doc_type"
	FieldConfidence  = "confidence"
)

// minCarYear is the oldest model year the scoring tables make sense for.
const minCarYear = 1950

// EntityValidator validates the domain models of the device and the remote
// documents of the server.
type EntityValidator struct{}

func NewEntityValidator() Validator {
	return &EntityValidator{}
}

// Validate dispatches on the dynamic type of obj. Value and pointer forms
// are accepted. fields restricts the checks to the named subset.
func (v *EntityValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Car:
		return v.validateCar(value, fields...)
	case *models.Car:
		return v.validateCar(*value, fields...)

	case models.Reminder:
		return v.validateReminder(value, fields...)
	case *models.Reminder:
		return v.validateReminder(*value, fields...)

	case models.MaintenanceRecord:
		return v.validateMaintenance(value, fields...)
	case *models.MaintenanceRecord:
		return v.validateMaintenance(*value, fields...)

	case models.CarDocument:
		return v.validateCarDocument(value, fields...)
	case *models.CarDocument:
		return v.validateCarDocument(*value, fields...)

	case []models.Classification:
		return v.validateClassifications(value)

	case models.RemoteDocument:
		return v.validateRemoteDocument(value, fields...)
	case *models.RemoteDocument:
		return v.validateRemoteDocument(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *EntityValidator) validateCar(car models.Car, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCar, FieldMileage}
	}

	for _, f := range fields {
		switch f {
		case FieldCar:
			if car.Make == "" || car.Model == "" || car.Year < minCarYear {
				return ErrMissingCarFields
			}
		case FieldID:
			if car.ID == "" {
				return ErrInvalidCarID
			}
		case FieldUserID:
			if car.UserID == "" {
				return ErrInvalidUserID
			}
		case FieldMileage:
			if car.Mileage < 0 {
				return ErrInvalidMileage
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func (v *EntityValidator) validateReminder(r models.Reminder, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldUserID, FieldCarID, FieldTitle, FieldDueDate, FieldPriority}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if r.ID == "" {
				return ErrInvalidID
			}
		case FieldUserID:
			if r.UserID == "" {
				return ErrInvalidUserID
			}
		case FieldCarID:
			if r.CarID == "" {
				return ErrInvalidCarID
			}
		case FieldTitle:
			if r.Title == "" {
				return ErrEmptyTitle
			}
		case FieldDueDate:
			if r.DueDate.IsZero() {
				return ErrInvalidDueDate
			}
		case FieldPriority:
			switch r.Priority {
			case models.PriorityLow, models.PriorityMedium, models.PriorityHigh:
			default:
				return ErrInvalidPriority
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func (v *EntityValidator) validateMaintenance(rec models.MaintenanceRecord, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldUserID, FieldCarID, FieldServiceType, FieldMileage, FieldCost}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if rec.ID == "" {
				return ErrInvalidID
			}
		case FieldUserID:
			if rec.UserID == "" {
				return ErrInvalidUserID
			}
		case FieldCarID:
			if rec.CarID == "" {
				return ErrInvalidCarID
			}
		case FieldServiceType:
			if rec.ServiceType == "" {
				return ErrEmptyServiceType
			}
		case FieldMileage:
			if rec.Mileage < 0 {
				return ErrInvalidMileage
			}
		case FieldCost:
			if rec.Cost < 0 {
				return ErrInvalidCost
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func (v *EntityValidator) validateCarDocument(doc models.CarDocument, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldUserID, FieldCarID, FieldTitle, FieldDocType}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if doc.ID == "" {
				return ErrInvalidID
			}
		case FieldUserID:
			if doc.UserID == "" {
				return ErrInvalidUserID
			}
		case FieldCarID:
			if doc.CarID == "" {
				return ErrInvalidCarID
			}
		case FieldTitle:
			if doc.Title == "" {
				return ErrEmptyTitle
			}
		case FieldDocType:
			if doc.DocType == "" {
				return ErrEmptyDocType
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func (v *EntityValidator) validateClassifications(cs []models.Classification) error {
	if len(cs) == 0 {
		return ErrEmptyAnalysis
	}
	for _, c := range cs {
		if c.Label == "" {
			return ErrEmptyLabel
		}
		// NaN fails both comparisons
		if !(c.Confidence >= 0 && c.Confidence <= 1) {
			return ErrInvalidConfidence
		}
	}
	return nil
}

func (v *EntityValidator) validateRemoteDocument(doc models.RemoteDocument, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldCollection, FieldID, FieldBody}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if doc.UserID == "" {
				return ErrInvalidUserID
			}
		case FieldCollection:
			if !models.IsSyncedCollection(doc.Collection) {
				return ErrInvalidCollection
			}
		case FieldID:
			if doc.ID == "" {
				return ErrInvalidID
			}
		case FieldBody:
			body := bytes.TrimSpace(doc.Body)
			if len(body) == 0 {
				return ErrEmptyBody
			}
			var obj map[string]json.RawMessage
			if body[0] != '{' || json.Unmarshal(body, &obj) != nil {
				return ErrInvalidBody
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}
