package files

import (
	"context"
	"fmt"

	"tomato-manager/feature/files/models"

	"gorm.io/gorm"
)

// Repository persists upload metadata in the attachments table.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new upload ledger over the given connection.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Migrate creates or updates the attachments table.
func (r *Repository) Migrate() error {
	if err := r.db.AutoMigrate(&models.Attachment{}); err != nil {
		return fmt.Errorf("failed to migrate attachments table: %w", err)
	}
	return nil
}

// Record inserts a ledger row for an uploaded object.
func (r *Repository) Record(ctx context.Context, a *models.Attachment) error {
	if err := r.db.WithContext(ctx).Create(a).Error; err != nil {
		return fmt.Errorf("failed to record attachment %q: %w", a.ObjectKey, err)
	}
	return nil
}

// DeleteByKey removes the ledger row for an object key. Removing a key that
// was never recorded is a no-op.
func (r *Repository) DeleteByKey(ctx context.Context, objectKey string) error {
	if err := r.db.WithContext(ctx).Where("object_key = ?", objectKey).Delete(&models.Attachment{}).Error; err != nil {
		return fmt.Errorf("failed to delete attachment %q: %w", objectKey, err)
	}
	return nil
}

// List returns all ledger rows, newest first.
func (r *Repository) List(ctx context.Context) ([]models.Attachment, error) {
	var attachments []models.Attachment
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&attachments).Error; err != nil {
		return nil, fmt.Errorf("failed to list attachments: %w", err)
	}
	return attachments, nil
}
