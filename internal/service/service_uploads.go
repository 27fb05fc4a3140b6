// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/MKhiriev/autobrain/internal/config"
	"github.com/MKhiriev/autobrain/internal/logger"
	"github.com/MKhiriev/autobrain/internal/utils"
	"github.com/MKhiriev/autobrain/models"
)

// objectPresigner is the part of *s3.PresignClient the service uses.
type objectPresigner interface {
	PresignPutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

type uploadService struct {
	presigner objectPresigner
	bucket    string
	expiry    time.Duration
	ids       *utils.UUIDGenerator
	now       func() time.Time

	logger *logger.Logger
}

// NewUploadService connects the presigner to the configured bucket. Without
// a bucket the service is returned disabled and answers ErrUploadsDisabled.
func NewUploadService(ctx context.Context, cfg config.S3, logger *logger.Logger) (UploadService, error) {
	if cfg.Bucket == "" {
		logger.Info().Msg("s3 bucket is not configured, document uploads disabled")
		return &uploadService{logger: logger}, nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("load s3 config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return newUploadService(s3.NewPresignClient(client), cfg, logger), nil
}

func newUploadService(presigner objectPresigner, cfg config.S3, logger *logger.Logger) *uploadService {
	expiry := cfg.PresignExpiry
	if expiry <= 0 {
		expiry = config.DefaultPresignExpiry
	}

	return &uploadService{
		presigner: presigner,
		bucket:    cfg.Bucket,
		expiry:    expiry,
		ids:       utils.NewUUIDGenerator(),
		now:       time.Now,
		logger:    logger,
	}
}

// PresignUpload issues a PUT URL under a fresh key of the user's document
// folder. The key is returned so the client can store it on the document.
func (u *uploadService) PresignUpload(ctx context.Context, userID, documentID string) (models.UploadURL, error) {
	if u.presigner == nil {
		return models.UploadURL{}, ErrUploadsDisabled
	}
	if userID == "" || documentID == "" {
		return models.UploadURL{}, ErrInvalidDataProvided
	}

	key := fmt.Sprintf("users/%s/documents/%s/%s", userID, documentID, u.ids.Generate())
	req, err := u.presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(u.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(u.expiry))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("document_id", documentID).Msg("failed to presign upload")
		return models.UploadURL{}, fmt.Errorf("presign upload: %w", err)
	}

	method := req.Method
	if method == "" {
		method = http.MethodPut
	}

	return models.UploadURL{
		FileKey:   key,
		URL:       req.URL,
		Method:    method,
		ExpiresAt: u.now().Add(u.expiry),
	}, nil
}
