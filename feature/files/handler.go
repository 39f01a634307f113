package files

import (
	"time"

	"tomato-manager/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for file operations.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the file routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/files")
	group.Post("/", h.HandleUpload)
	group.Get("/", h.HandleList)
	group.Get("/records", h.HandleRecords)
	group.Get("/url/*", h.HandleFileURL)
	group.Get("/public/*", h.HandlePublicURL)
	group.Get("/download/*", h.HandleDownload)
	group.Delete("/", h.HandleDeleteBatch)
	group.Delete("/*", h.HandleDelete)
}

// HandleUpload uploads one or more files.
// @Summary Upload Files
// @Description Uploads all files from the multipart field "files" under a destination folder. Returns presigned URLs. A failed batch may leave some objects uploaded (no rollback).
// @Tags files
// @Accept multipart/form-data
// @Produce json
// @Param files formData file true "Files to upload"
// @Param folder query string false "Destination folder (default: tasks)"
// @Success 201 {object} map[string]interface{} "Presigned URLs"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /files [post]
func (h *Handler) HandleUpload(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "expected multipart form"})
	}

	fileHeaders := form.File["files"]
	if len(fileHeaders) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "no files provided in field 'files'"})
	}

	descriptors := make([]Descriptor, 0, len(fileHeaders))
	for _, fh := range fileHeaders {
		f, err := fh.Open()
		if err != nil {
			l.Error("Failed to open uploaded file", zap.String("name", fh.Filename), zap.Error(err))
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unreadable file: " + fh.Filename})
		}
		defer f.Close()

		descriptors = append(descriptors, Descriptor{
			OriginalName: fh.Filename,
			ContentType:  fh.Header.Get("Content-Type"),
			Size:         fh.Size,
			Reader:       f,
		})
	}

	folder := c.Query("folder")
	l.Info("Uploading files", zap.Int("count", len(descriptors)), zap.String("folder", folder))

	urls, err := h.service.UploadFiles(c.Context(), descriptors, folder)
	if err != nil {
		l.Error("Upload batch failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"urls": urls})
}

// HandleList lists object keys under a prefix.
// @Summary List Objects
// @Description Lists the keys of all objects stored under the given prefix.
// @Tags files
// @Produce json
// @Param prefix query string false "Key prefix filter"
// @Success 200 {object} map[string]interface{} "Object keys"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /files [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	keys, err := h.service.List(c.Context(), c.Query("prefix"))
	if err != nil {
		l.Error("List failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"keys": keys})
}

// HandleRecords lists the upload ledger.
// @Summary List Upload Records
// @Description Returns the upload ledger (object key, original name, content type, size). Requires a connected database.
// @Tags files
// @Produce json
// @Success 200 {object} map[string]interface{} "Upload records"
// @Failure 503 {object} map[string]string "Ledger Unavailable"
// @Router /files/records [get]
func (h *Handler) HandleRecords(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	repo := h.service.Repository()
	if repo == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "upload ledger is not available"})
	}

	records, err := repo.List(c.Context())
	if err != nil {
		l.Error("Ledger query failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"records": records})
}

// HandleFileURL returns a presigned URL for an object.
// @Summary Get Presigned URL
// @Description Generates a time-limited signed download URL for the object. With an external base URL configured, the host is rewritten for the reverse proxy.
// @Tags files
// @Produce json
// @Param key path string true "Object key"
// @Param expiry query int false "Expiry in seconds (default: 7 days)"
// @Success 200 {object} map[string]string "Presigned URL"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /files/url/{key} [get]
func (h *Handler) HandleFileURL(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	key := c.Params("*")

	expiry := time.Duration(c.QueryInt("expiry")) * time.Second

	url, err := h.service.FileURL(c.Context(), key, expiry)
	if err != nil {
		l.Error("Presigned URL failed", zap.String("object", key), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"url": url})
}

// HandlePublicURL returns the unsigned public URL for an object.
// @Summary Get Public URL
// @Description Constructs the public URL for the object without contacting the provider. The object must be publicly readable for the URL to work.
// @Tags files
// @Produce json
// @Param key path string true "Object key"
// @Success 200 {object} map[string]string "Public URL"
// @Router /files/public/{key} [get]
func (h *Handler) HandlePublicURL(c *fiber.Ctx) error {
	key := c.Params("*")
	return c.JSON(fiber.Map{"url": h.service.PublicURL(key)})
}

// HandleDownload streams an object's content.
// @Summary Download Object
// @Description Streams the object's bytes through the service.
// @Tags files
// @Produce octet-stream
// @Param key path string true "Object key"
// @Success 200 {file} binary "Object content"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /files/download/{key} [get]
func (h *Handler) HandleDownload(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	key := c.Params("*")

	reader, err := h.service.Download(c.Context(), key)
	if err != nil {
		l.Error("Download failed", zap.String("object", key), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.SendStream(reader)
}

// HandleDelete removes a single object.
// @Summary Delete Object
// @Description Removes the object from the bucket. Deleting a non-existent key is a no-op.
// @Tags files
// @Produce json
// @Param key path string true "Object key"
// @Success 200 {object} map[string]string "Deleted"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /files/{key} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	key := c.Params("*")

	if err := h.service.DeleteFile(c.Context(), key); err != nil {
		l.Error("Delete failed", zap.String("object", key), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"status": "deleted", "key": key})
}

type deleteBatchRequest struct {
	Keys []string `json:"keys"`
}

// HandleDeleteBatch removes multiple objects.
// @Summary Delete Objects
// @Description Removes every object named in the request body using the provider's batch removal.
// @Tags files
// @Accept json
// @Produce json
// @Param request body deleteBatchRequest true "Object keys"
// @Success 200 {object} map[string]interface{} "Deleted"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /files [delete]
func (h *Handler) HandleDeleteBatch(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req deleteBatchRequest
	if err := c.BodyParser(&req); err != nil || len(req.Keys) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "expected JSON body with non-empty 'keys'"})
	}

	if err := h.service.DeleteFiles(c.Context(), req.Keys); err != nil {
		l.Error("Batch delete failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"status": "deleted", "keys": req.Keys})
}
