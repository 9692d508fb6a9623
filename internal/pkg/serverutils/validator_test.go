package serverutils

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Email string `json:"email" validate:"required,email"`
	Count int    `json:"count" validate:"required,min=1,max=7"`
	Kind  string `json:"kind" validate:"required,oneof=workout meal"`
}

func validationApp() *fiber.App {
	app := fiber.New()
	app.Post("/sample", func(ctx *fiber.Ctx) error {
		req := new(sampleRequest)
		if err := ValidateRequest(ctx, req); err != nil {
			fiberErr := err.(*fiber.Error)
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Message))
		}
		return ctx.JSON(SuccessResponse("ok", req))
	})
	return app
}

func postJSON(app *fiber.App, body string) (int, string) {
	req := httptest.NewRequest("POST", "/sample", strings.NewReader(body))
	req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	if err != nil {
		return 0, err.Error()
	}
	raw, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(raw)
}

func TestValidateRequestAcceptsValidBody(t *testing.T) {
	app := validationApp()

	status, body := postJSON(app, `{"email":"a@b.com","count":3,"kind":"workout"}`)
	require.Equal(t, fiber.StatusOK, status)

	var envelope struct {
		Success bool          `json:"success"`
		Data    sampleRequest `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &envelope))
	assert.True(t, envelope.Success)
	assert.Equal(t, "a@b.com", envelope.Data.Email)
	assert.Equal(t, 3, envelope.Data.Count)
}

func TestValidateRequestViolations(t *testing.T) {
	cases := map[string]struct {
		body    string
		message string
	}{
		"missing field": {`{"count":3,"kind":"meal"}`, "Email is required"},
		"bad email":     {`{"email":"nope","count":3,"kind":"meal"}`, "Email must be a valid email address"},
		"out of range":  {`{"email":"a@b.com","count":9,"kind":"meal"}`, "Count must be at most 7"},
		"bad oneof":     {`{"email":"a@b.com","count":3,"kind":"cardio"}`, "Kind must be one of: workout meal"},
		"garbage body":  {`{nope`, "Invalid request body"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			app := validationApp()

			status, body := postJSON(app, tc.body)
			assert.Equal(t, fiber.StatusBadRequest, status)

			var envelope struct {
				Success bool   `json:"success"`
				Message string `json:"message"`
			}
			require.NoError(t, json.Unmarshal([]byte(body), &envelope))
			assert.False(t, envelope.Success)
			assert.Equal(t, tc.message, envelope.Message)
		})
	}
}
