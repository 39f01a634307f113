package files

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"tomato-manager/core/storage"
	"tomato-manager/core/storage/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T, cfg storage.Config) (*fiber.App, *mocks.Client) {
	t.Helper()
	app := fiber.New()
	mockClient := new(mocks.Client)
	svc := NewService(mockClient, cfg, zap.NewNop(), nil)
	handler := NewHandler(svc)
	handler.RegisterRoutes(app)
	return app, mockClient
}

func multipartBody(t *testing.T, names ...string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for _, name := range names {
		part, err := writer.CreateFormFile("files", name)
		require.NoError(t, err)
		_, err = part.Write([]byte("content of " + name))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestHandleUpload(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		app, mockClient := setupTestApp(t, testConfig())

		mockClient.On("PutObject", mock.Anything, "test-bucket", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(minio.UploadInfo{}, nil)
		u, _ := url.Parse("http://localhost:9000/test-bucket/tasks/generated.txt?X-Amz-Signature=abc")
		mockClient.On("PresignedGetObject", mock.Anything, "test-bucket", mock.Anything, mock.Anything, mock.Anything).
			Return(u, nil)

		body, contentType := multipartBody(t, "a.txt", "b.txt")
		req := httptest.NewRequest("POST", "/files?folder=tasks", body)
		req.Header.Set("Content-Type", contentType)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 201, resp.StatusCode)

		var parsed struct {
			URLs []string `json:"urls"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
		assert.Len(t, parsed.URLs, 2)
	})

	t.Run("NoFiles", func(t *testing.T) {
		app, _ := setupTestApp(t, testConfig())

		body := &bytes.Buffer{}
		writer := multipart.NewWriter(body)
		require.NoError(t, writer.WriteField("unrelated", "value"))
		require.NoError(t, writer.Close())

		req := httptest.NewRequest("POST", "/files", body)
		req.Header.Set("Content-Type", writer.FormDataContentType())

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 400, resp.StatusCode)
	})

	t.Run("UploadError", func(t *testing.T) {
		app, mockClient := setupTestApp(t, testConfig())

		mockClient.On("PutObject", mock.Anything, "test-bucket", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(minio.UploadInfo{}, assert.AnError)

		body, contentType := multipartBody(t, "a.txt")
		req := httptest.NewRequest("POST", "/files", body)
		req.Header.Set("Content-Type", contentType)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 500, resp.StatusCode)
	})
}

func TestHandleList(t *testing.T) {
	app, mockClient := setupTestApp(t, testConfig())

	ch := make(chan minio.ObjectInfo, 1)
	ch <- minio.ObjectInfo{Key: "tasks/a.txt"}
	close(ch)
	mockClient.On("ListObjects", mock.Anything, "test-bucket", mock.Anything).
		Return((<-chan minio.ObjectInfo)(ch))

	req := httptest.NewRequest("GET", "/files?prefix=tasks/", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string][]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, []string{"tasks/a.txt"}, body["keys"])
}

func TestHandleRecords_NoLedger(t *testing.T) {
	app, _ := setupTestApp(t, testConfig())

	req := httptest.NewRequest("GET", "/files/records", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 503, resp.StatusCode)
}

func TestHandleFileURL(t *testing.T) {
	cfg := testConfig()
	cfg.ExternalURL = "https://example.com"
	app, mockClient := setupTestApp(t, cfg)

	u, _ := url.Parse("http://localhost:9000/test-bucket/tasks/x.txt?X-Amz-Signature=abc")
	mockClient.On("PresignedGetObject", mock.Anything, "test-bucket", "tasks/x.txt", mock.Anything, mock.Anything).
		Return(u, nil)

	req := httptest.NewRequest("GET", "/files/url/tasks/x.txt?expiry=3600", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "https://example.com/minio/test-bucket/tasks/x.txt?X-Amz-Signature=abc", body["url"])
}

func TestHandlePublicURL(t *testing.T) {
	app, mockClient := setupTestApp(t, testConfig())

	req := httptest.NewRequest("GET", "/files/public/tasks/x.txt", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "http://localhost:9000/test-bucket/tasks/x.txt", body["url"])

	// Pure operation, no storage calls
	mockClient.AssertExpectations(t)
}

func TestHandleDownload(t *testing.T) {
	app, mockClient := setupTestApp(t, testConfig())

	mockClient.On("GetObject", mock.Anything, "test-bucket", "tasks/x.txt", mock.Anything).
		Return(io.NopCloser(strings.NewReader("hello")), nil)

	req := httptest.NewRequest("GET", "/files/download/tasks/x.txt", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
}

func TestHandleDelete(t *testing.T) {
	app, mockClient := setupTestApp(t, testConfig())

	mockClient.On("RemoveObject", mock.Anything, "test-bucket", "tasks/x.txt", mock.Anything).Return(nil)

	req := httptest.NewRequest("DELETE", "/files/tasks/x.txt", nil)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	mockClient.AssertExpectations(t)
}

func TestHandleDeleteBatch(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		app, mockClient := setupTestApp(t, testConfig())

		ch := make(chan minio.RemoveObjectError)
		close(ch)
		mockClient.On("RemoveObjects", mock.Anything, "test-bucket", mock.Anything, mock.Anything).
			Return((<-chan minio.RemoveObjectError)(ch))

		payload, _ := json.Marshal(map[string][]string{"keys": {"a.txt", "b.txt"}})
		req := httptest.NewRequest("DELETE", "/files", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("EmptyKeys", func(t *testing.T) {
		app, _ := setupTestApp(t, testConfig())

		req := httptest.NewRequest("DELETE", "/files", strings.NewReader(`{"keys":[]}`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 400, resp.StatusCode)
	})
}
