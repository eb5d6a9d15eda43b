package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"team-inventory/core/ledger"
	"team-inventory/core/snapshot"
	"team-inventory/core/snapshot/mocks"
	"team-inventory/core/tracker"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T, store snapshot.Store) (*fiber.App, *tracker.Tracker) {
	t.Helper()
	tr := tracker.New(tracker.Options{Snapshots: store, Logger: zap.NewNop()})
	app := fiber.New()
	require.NoError(t, NewFeature(tr, zap.NewNop()).Load(app))
	return app, tr
}

func get(t *testing.T, app *fiber.App, path string) (int, map[string]any) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", path, nil))
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestHandleHealth(t *testing.T) {
	app, tr := setupTestApp(t, snapshot.NewMemoryStore())
	_, err := tr.AddItem(context.Background(), ledger.NewItem{ProductName: "Helmet", Quantity: 1})
	require.NoError(t, err)

	status, body := get(t, app, "/health")
	require.Equal(t, 200, status)

	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "memory", body["backend"])
	counts := body["counts"].(map[string]any)
	assert.Equal(t, float64(1), counts["items"])
	assert.Equal(t, "ok", body["snapshots"].(map[string]any)["status"])
}

func TestHandleSnapshotCheck_MissingAndFix(t *testing.T) {
	app, _ := setupTestApp(t, snapshot.NewMemoryStore())

	status, body := get(t, app, "/health/snapshots")
	require.Equal(t, 200, status)
	assert.Equal(t, "checked", body["status"])
	assert.Len(t, body["missing"], 3)

	status, body = get(t, app, "/health/snapshots?fix=true")
	require.Equal(t, 200, status)
	assert.Equal(t, "fixed", body["status"])

	status, body = get(t, app, "/health/snapshots")
	require.Equal(t, 200, status)
	assert.Equal(t, "ok", body["status"])
}

func TestHandleSnapshotCheck_BackendError(t *testing.T) {
	store := new(mocks.Store)
	store.On("Name").Return("mock")
	store.On("Load", mock.Anything, mock.Anything).Return(nil, errors.New("connection refused"))

	app, _ := setupTestApp(t, store)

	status, body := get(t, app, "/health/snapshots")
	assert.Equal(t, 500, status)
	assert.Equal(t, "error", body["status"])

	status, body = get(t, app, "/health")
	assert.Equal(t, 200, status)
	assert.Equal(t, "degraded", body["status"])
}
