package apierror_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http/httptest"
	"testing"

	"team-inventory/core/apierror"
	"team-inventory/core/ledger"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespond(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		extra  map[string]any
	}{
		{"Validation", &ledger.ValidationError{Field: "quantity", Reason: "must be positive"}, 400, map[string]any{"field": "quantity"}},
		{"NotFound", &ledger.NotFoundError{Kind: ledger.KindItem, ID: "x"}, 404, nil},
		{"WrappedNotFound", fmt.Errorf("lookup: %w", &ledger.NotFoundError{Kind: ledger.KindPlayer, ID: "p"}), 404, nil},
		{"Insufficient", &ledger.InsufficientStockError{ItemID: "i", Available: 2, Requested: 5}, 409, map[string]any{"available": float64(2), "requested": float64(5)}},
		{"Other", errors.New("disk on fire"), 500, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error { return apierror.Respond(c, tt.err) })

			resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)

			var body map[string]any
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tt.err.Error(), body["error"])
			for k, v := range tt.extra {
				assert.Equal(t, v, body[k])
			}
		})
	}
}
