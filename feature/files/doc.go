// Package files implements the object storage gateway.
//
// It holds one configured connection to an S3-compatible storage service and
// one target bucket, and exposes upload, URL resolution and delete operations
// to the rest of the application. Every operation is a direct pass-through to
// the storage client; the only local logic is URL rewriting for reverse-proxy
// deployments and the fan-out of batch uploads.
//
// # Operations
//
//   - EnsureBucket: idempotent bucket bootstrap, fatal on failure.
//   - UploadFile / UploadFiles: single and concurrent batch upload. Batch
//     uploads have no atomicity guarantee: a failed batch may leave some
//     objects uploaded.
//   - FileURL: presigned, time-limited download URL (7 days by default).
//   - PublicURL: unsigned URL built by string concatenation, no network call.
//   - DeleteFile / DeleteFiles: single and batch removal.
//   - Download / List: content streaming and prefix listing.
//
// # External URL rewriting
//
// When MINIO_EXTERNAL_URL is configured, presigned and public URLs are
// rewritten to <external>/minio/... so they resolve through the reverse proxy
// instead of the internal endpoint. The proxy must forward the /minio path
// prefix unmodified, since signature query parameters are preserved as-is.
//
// # Upload ledger
//
// When a database is connected, completed uploads are recorded in the
// attachments table and deletes remove the rows. The ledger is best-effort
// and never fails a storage operation.
//
// # HTTP Endpoints
//
//   - POST   /files            : multipart batch upload (?folder=)
//   - GET    /files            : list object keys (?prefix=)
//   - GET    /files/records    : upload ledger
//   - GET    /files/url/*      : presigned URL (?expiry= seconds)
//   - GET    /files/public/*   : public URL
//   - GET    /files/download/* : stream object content
//   - DELETE /files            : batch delete (JSON keys)
//   - DELETE /files/*          : single delete
package files
