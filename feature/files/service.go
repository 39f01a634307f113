package files

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"
	"sync"
	"time"

	"tomato-manager/core/storage"
	"tomato-manager/feature/files/models"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	// DefaultFolder is the destination prefix for batch uploads.
	DefaultFolder = "tasks"
	// DefaultURLExpiry is the lifetime of presigned download URLs.
	DefaultURLExpiry = 7 * 24 * time.Hour
	// proxyPathPrefix is the path under which the reverse proxy forwards
	// requests to the storage service in external deployments.
	proxyPathPrefix = "/minio"
	// metadataOriginalName is the user metadata key carrying the uploaded
	// file's original name.
	metadataOriginalName = "Original-Filename"
)

// Descriptor describes a single file supplied by a caller for upload.
// The service does not retain it beyond the call.
type Descriptor struct {
	// OriginalName is the client-side filename, kept as object metadata.
	OriginalName string
	// ContentType is the declared MIME type.
	ContentType string
	// Size is the exact byte count of Reader's content.
	Size int64
	// Reader supplies the file content.
	Reader io.Reader
}

// Service is the object storage gateway. It holds one shared storage client
// and one target bucket, and exposes upload, URL resolution and delete
// operations. All configuration is immutable after construction; the
// underlying client is safe for concurrent use.
type Service struct {
	client storage.Client
	cfg    storage.Config
	logger *zap.Logger
	repo   *Repository
}

// NewService creates a new files service. db may be nil, in which case the
// upload ledger is disabled.
func NewService(client storage.Client, cfg storage.Config, logger *zap.Logger, db *gorm.DB) *Service {
	var repo *Repository
	if db != nil {
		repo = NewRepository(db)
	}
	return &Service{
		client: client,
		cfg:    cfg,
		logger: logger,
		repo:   repo,
	}
}

// Repository returns the upload ledger, or nil when no database is connected.
func (s *Service) Repository() *Repository {
	return s.repo
}

// EnsureBucket checks that the configured bucket exists and creates it if
// absent. It is idempotent: a pre-existing bucket is left untouched. Any
// failure is ErrStorageUnavailable and should abort startup.
func (s *Service) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.cfg.BucketName)
	if err != nil {
		s.logger.Error("Bucket existence check failed",
			zap.String("bucket", s.cfg.BucketName),
			zap.Error(err))
		return fmt.Errorf("%w: checking bucket %q: %v", ErrStorageUnavailable, s.cfg.BucketName, err)
	}

	if exists {
		return nil
	}

	if err := s.client.MakeBucket(ctx, s.cfg.BucketName, minio.MakeBucketOptions{Region: s.cfg.Region}); err != nil {
		s.logger.Error("Bucket creation failed",
			zap.String("bucket", s.cfg.BucketName),
			zap.Error(err))
		return fmt.Errorf("%w: creating bucket %q: %v", ErrStorageUnavailable, s.cfg.BucketName, err)
	}

	s.logger.Info("Created bucket",
		zap.String("bucket", s.cfg.BucketName),
		zap.String("region", s.cfg.Region))
	return nil
}

// UploadFile streams the descriptor's content to the bucket under objectName,
// attaching content type and original filename metadata. On success it
// returns a presigned URL valid for DefaultURLExpiry. The put is atomic from
// the caller's perspective: either the object exists fully or the call failed.
func (s *Service) UploadFile(ctx context.Context, d Descriptor, objectName string) (string, error) {
	opts := minio.PutObjectOptions{
		ContentType: d.ContentType,
		UserMetadata: map[string]string{
			metadataOriginalName: d.OriginalName,
		},
	}

	if _, err := s.client.PutObject(ctx, s.cfg.BucketName, objectName, d.Reader, d.Size, opts); err != nil {
		s.logger.Error("Upload failed",
			zap.String("object", objectName),
			zap.String("original_name", d.OriginalName),
			zap.Error(err))
		return "", fmt.Errorf("%w: object %q: %v", ErrUploadFailed, objectName, err)
	}

	s.recordUpload(ctx, d, objectName)

	return s.FileURL(ctx, objectName, DefaultURLExpiry)
}

// UploadFiles uploads every descriptor concurrently under
// folder/<32-hex-random>.<original extension>. The call returns once every
// upload has resolved. If any upload fails, the first failure is returned and
// objects already uploaded by the batch are NOT rolled back; callers must
// assume a failed batch may have left some objects behind.
func (s *Service) UploadFiles(ctx context.Context, descriptors []Descriptor, folder string) ([]string, error) {
	if folder == "" {
		folder = DefaultFolder
	}

	urls := make([]string, len(descriptors))
	errs := make([]error, len(descriptors))

	var wg sync.WaitGroup
	wg.Add(len(descriptors))

	for i, d := range descriptors {
		go func(i int, d Descriptor) {
			defer wg.Done()
			objectName := objectKey(folder, d.OriginalName)
			urls[i], errs[i] = s.UploadFile(ctx, d, objectName)
		}(i, d)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return urls, nil
}

// FileURL returns a presigned URL for objectName valid for expiry. A
// non-positive expiry falls back to DefaultURLExpiry. When an external base
// URL is configured, the provider's scheme and host are replaced with
// <external>/minio while path, query and signature are preserved untouched.
func (s *Service) FileURL(ctx context.Context, objectName string, expiry time.Duration) (string, error) {
	if expiry <= 0 {
		expiry = DefaultURLExpiry
	}

	u, err := s.client.PresignedGetObject(ctx, s.cfg.BucketName, objectName, expiry, nil)
	if err != nil {
		s.logger.Error("Presigned URL generation failed",
			zap.String("object", objectName),
			zap.Error(err))
		return "", fmt.Errorf("failed to presign URL for %q: %w", objectName, err)
	}

	return s.externalize(u), nil
}

// PublicURL constructs an unsigned URL for objectName by string
// concatenation. No network call is made and no readability check is
// performed; the caller is responsible for the bucket's access policy.
func (s *Service) PublicURL(objectName string) string {
	if base := s.externalBase(); base != "" {
		return base + proxyPathPrefix + "/" + s.cfg.BucketName + "/" + objectName
	}
	return s.cfg.BaseURL() + "/" + s.cfg.BucketName + "/" + objectName
}

// DeleteFile removes objectName from the bucket. Deleting a key that does not
// exist is a no-op by provider convention and is not distinguished here.
func (s *Service) DeleteFile(ctx context.Context, objectName string) error {
	if err := s.client.RemoveObject(ctx, s.cfg.BucketName, objectName, minio.RemoveObjectOptions{}); err != nil {
		s.logger.Error("Delete failed",
			zap.String("object", objectName),
			zap.Error(err))
		return fmt.Errorf("%w: object %q: %v", ErrDeleteFailed, objectName, err)
	}

	s.forgetUpload(ctx, objectName)
	return nil
}

// DeleteFiles removes every named object using the provider's batch removal.
// The first removal error is returned; remaining removals may still have
// been issued by the provider.
func (s *Service) DeleteFiles(ctx context.Context, objectNames []string) error {
	objectsCh := make(chan minio.ObjectInfo, len(objectNames))
	for _, name := range objectNames {
		objectsCh <- minio.ObjectInfo{Key: name}
	}
	close(objectsCh)

	var firstErr error
	for rerr := range s.client.RemoveObjects(ctx, s.cfg.BucketName, objectsCh, minio.RemoveObjectsOptions{}) {
		if rerr.Err == nil {
			continue
		}
		s.logger.Error("Batch delete failed",
			zap.String("object", rerr.ObjectName),
			zap.Error(rerr.Err))
		if firstErr == nil {
			firstErr = fmt.Errorf("%w: object %q: %v", ErrDeleteFailed, rerr.ObjectName, rerr.Err)
		}
	}

	if firstErr != nil {
		return firstErr
	}

	for _, name := range objectNames {
		s.forgetUpload(ctx, name)
	}
	return nil
}

// Download streams the object's content. The caller must close the reader.
func (s *Service) Download(ctx context.Context, objectName string) (io.ReadCloser, error) {
	reader, err := s.client.GetObject(ctx, s.cfg.BucketName, objectName, minio.GetObjectOptions{})
	if err != nil {
		s.logger.Error("Download failed",
			zap.String("object", objectName),
			zap.Error(err))
		return nil, fmt.Errorf("failed to get object %q: %w", objectName, err)
	}
	return reader, nil
}

// List returns the keys of all objects under prefix.
func (s *Service) List(ctx context.Context, prefix string) ([]string, error) {
	var keys []string
	for obj := range s.client.ListObjects(ctx, s.cfg.BucketName, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	}) {
		if obj.Err != nil {
			s.logger.Error("Listing failed",
				zap.String("prefix", prefix),
				zap.Error(obj.Err))
			return nil, fmt.Errorf("failed to list objects under %q: %w", prefix, obj.Err)
		}
		keys = append(keys, obj.Key)
	}
	return keys, nil
}

// recordUpload writes a ledger row for a completed upload. The ledger is
// best-effort: failures are logged, never surfaced to the uploader.
func (s *Service) recordUpload(ctx context.Context, d Descriptor, objectName string) {
	if s.repo == nil {
		return
	}
	record := &models.Attachment{
		ObjectKey:    objectName,
		OriginalName: d.OriginalName,
		ContentType:  d.ContentType,
		Size:         d.Size,
	}
	if err := s.repo.Record(ctx, record); err != nil {
		s.logger.Warn("Failed to record upload in ledger",
			zap.String("object", objectName),
			zap.Error(err))
	}
}

// forgetUpload removes the ledger row for a deleted object, best-effort.
func (s *Service) forgetUpload(ctx context.Context, objectName string) {
	if s.repo == nil {
		return
	}
	if err := s.repo.DeleteByKey(ctx, objectName); err != nil {
		s.logger.Warn("Failed to remove upload from ledger",
			zap.String("object", objectName),
			zap.Error(err))
	}
}

// externalBase returns the configured external base URL without a trailing
// slash, or "" when the deployment has no reverse proxy.
func (s *Service) externalBase() string {
	return strings.TrimRight(s.cfg.ExternalURL, "/")
}

// externalize rewrites a provider URL for the reverse-proxy deployment. Only
// scheme and host are replaced; path, query and signature parameters pass
// through unmodified. Without an external base the provider URL is returned
// verbatim (internal endpoint, same-network callers only).
func (s *Service) externalize(u *url.URL) string {
	base := s.externalBase()
	if base == "" {
		return u.String()
	}
	return base + proxyPathPrefix + u.RequestURI()
}

// objectKey derives a destination key for a batch upload: a 128-bit random
// hex id under folder, keeping the original extension. Collisions are
// accepted as negligible at this id width.
func objectKey(folder, originalName string) string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return folder + "/" + id + path.Ext(originalName)
}
