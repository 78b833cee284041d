package rayid_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/frogmanjhb/checkinapp/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	var seen string

	app := fiber.New()
	app.Use(rayid.New())
	app.Get("/", func(c *fiber.Ctx) error {
		seen, _ = c.Locals(rayid.LocalsKey).(string)
		return c.SendString("ok")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	rid := resp.Header.Get(rayid.HeaderName)
	require.NotEmpty(t, rid)

	// Header, locals and validity must all line up.
	assert.Equal(t, seen, rid)
	_, err = uuid.Parse(rid)
	assert.NoError(t, err)
}

func TestNew_UniquePerRequest(t *testing.T) {
	app := fiber.New()
	app.Use(rayid.New())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	first, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	first.Body.Close()

	second, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	second.Body.Close()

	assert.NotEqual(t, first.Header.Get(rayid.HeaderName), second.Header.Get(rayid.HeaderName))
}
