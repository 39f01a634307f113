package files

import "errors"

// Error taxonomy for storage operations. Callers match with errors.Is.
var (
	// ErrStorageUnavailable indicates the bucket bootstrap failed. It is
	// surfaced at startup and treated as fatal.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrUploadFailed indicates a single upload did not complete. Batch
	// uploads return the first upload failure encountered; objects already
	// uploaded by the same batch are not rolled back.
	ErrUploadFailed = errors.New("upload failed")

	// ErrDeleteFailed indicates an object removal did not complete.
	ErrDeleteFailed = errors.New("delete failed")
)
