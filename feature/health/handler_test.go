package health

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"tomato-manager/core/storage/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T) (*fiber.App, *mocks.Client) {
	t.Helper()
	app := fiber.New()
	mockClient := new(mocks.Client)
	svc := NewService(mockClient, "test-bucket", zap.NewNop(), nil)
	handler := NewHandler(svc)
	handler.RegisterRoutes(app)
	return app, mockClient
}

func TestHandleHealthCheck(t *testing.T) {
	t.Run("Healthy", func(t *testing.T) {
		app, mockClient := setupTestApp(t)

		mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)

		req := httptest.NewRequest("GET", "/health", nil)
		resp, err := app.Test(req)

		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var report Report
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
		assert.Equal(t, "ok", report.Storage)
		assert.True(t, report.BucketExists)
	})

	t.Run("Unreachable", func(t *testing.T) {
		app, mockClient := setupTestApp(t)

		mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(false, errors.New("timeout"))

		req := httptest.NewRequest("GET", "/health", nil)
		resp, err := app.Test(req)

		require.NoError(t, err)
		assert.Equal(t, 503, resp.StatusCode)
	})
}
