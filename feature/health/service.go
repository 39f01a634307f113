package health

import (
	"context"

	"tomato-manager/core/storage"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Report describes the state of the service's dependencies.
type Report struct {
	// Storage is "ok" or "error".
	Storage string `json:"storage"`
	// BucketExists reports whether the configured bucket is present.
	BucketExists bool `json:"bucket_exists"`
	// Ledger is "connected" or "disabled".
	Ledger string `json:"ledger"`
	// Error carries the storage error message, if any.
	Error string `json:"error,omitempty"`
}

// Service performs dependency health checks.
type Service struct {
	client storage.Client
	bucket string
	logger *zap.Logger
	db     *gorm.DB
}

// NewService creates a new health service.
func NewService(client storage.Client, bucket string, logger *zap.Logger, db *gorm.DB) *Service {
	return &Service{
		client: client,
		bucket: bucket,
		logger: logger,
		db:     db,
	}
}

// Check queries the storage provider and reports dependency state. A storage
// error is reported in the result rather than returned; the health endpoint
// always answers.
func (s *Service) Check(ctx context.Context) Report {
	report := Report{
		Storage: "ok",
		Ledger:  "disabled",
	}

	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		s.logger.Warn("Health check: storage unreachable", zap.Error(err))
		report.Storage = "error"
		report.Error = err.Error()
	} else {
		report.BucketExists = exists
	}

	if s.db != nil {
		report.Ledger = "connected"
	}

	return report
}
