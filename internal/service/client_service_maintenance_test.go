// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/autobrain/internal/adapter"
	"github.com/MKhiriev/autobrain/internal/mock"
	"github.com/MKhiriev/autobrain/models"
)

func TestClientMaintenanceService_AddAndList(t *testing.T) {
	storages := newTestStorages(t)
	svc := NewClientMaintenanceService(storages.Maintenance).(*clientMaintenanceService)
	svc.now = clockAt(fixedNow())
	ctx := context.Background()

	rec, err := svc.Add(ctx, models.MaintenanceRecord{
		UserID: testUser, CarID: "car-1", ServiceType: "oil", Mileage: 98000, Cost: 80,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, fixedNow(), rec.ServiceDate)

	_, err = svc.Add(ctx, models.MaintenanceRecord{UserID: testUser, CarID: "car-2", ServiceType: "tyres", Cost: -5})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.Add(ctx, models.MaintenanceRecord{UserID: testUser, CarID: "car-2", ServiceType: "tyres"})
	require.NoError(t, err)

	byCar, err := svc.List(ctx, testUser, "car-1")
	require.NoError(t, err)
	require.Len(t, byCar, 1)
	assert.Equal(t, 98000, byCar[0].Mileage)

	all, err := svc.List(ctx, testUser, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestClientDocumentService_RequestUpload(t *testing.T) {
	ctrl := gomock.NewController(t)
	storages := newTestStorages(t)
	remote := mock.NewMockRemoteStore(ctrl)

	svc := NewClientDocumentService(storages.Documents, remote).(*clientDocumentService)
	svc.now = clockAt(fixedNow())
	ctx := context.Background()

	doc, err := svc.Create(ctx, models.CarDocument{UserID: testUser, CarID: "car-1", Title: "Insurance", DocType: "insurance"})
	require.NoError(t, err)

	upload := models.UploadURL{
		FileKey:   testUser + "/" + doc.ID,
		URL:       "https://bucket.example/upload",
		Method:    "PUT",
		ExpiresAt: fixedNow().Add(15 * time.Minute),
	}
	remote.EXPECT().DocumentUploadURL(gomock.Any(), doc.ID).Return(upload, nil)

	got, err := svc.RequestUpload(ctx, testUser, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, upload, got)

	stored, err := storages.Documents.Get(ctx, testUser, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, upload.FileKey, stored.FileKey)

	remote.EXPECT().DocumentUploadURL(gomock.Any(), doc.ID).Return(models.UploadURL{}, adapter.ErrForbidden)
	_, err = svc.RequestUpload(ctx, testUser, doc.ID)
	assert.ErrorIs(t, err, ErrWrongUserScope)

	list, err := svc.List(ctx, testUser)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
