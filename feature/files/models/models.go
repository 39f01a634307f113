package models

import "time"

// Attachment is a ledger row describing an uploaded object. All real state
// lives in the storage provider; the ledger only records upload metadata so
// operators can see what was uploaded and when.
type Attachment struct {
	ID uint `gorm:"primaryKey" json:"id"`
	// ObjectKey is the path-like key of the object in the bucket.
	ObjectKey string `gorm:"column:object_key;size:512;uniqueIndex" json:"object_key"`
	// OriginalName is the client-side filename at upload time.
	OriginalName string `gorm:"column:original_name;size:255" json:"original_name"`
	// ContentType is the MIME type declared at upload time.
	ContentType string `gorm:"column:content_type;size:127" json:"content_type"`
	// Size is the object size in bytes.
	Size      int64     `gorm:"column:size" json:"size"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName overrides the GORM table name.
func (Attachment) TableName() string {
	return "attachments"
}
