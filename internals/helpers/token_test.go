package helper

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"
)

func newTestCtx(t *testing.T) (*fiber.App, *fiber.Ctx) {
	t.Helper()
	app := fiber.New()
	return app, app.AcquireCtx(&fasthttp.RequestCtx{})
}

func TestRawAccessTokenRoundTrip(t *testing.T) {
	app, c := newTestCtx(t)
	defer app.ReleaseCtx(c)

	SetRawAccessToken(c, "  tok-123  ")
	if got := GetRawAccessToken(c); got != "tok-123" {
		t.Errorf("GetRawAccessToken = %q, want %q", got, "tok-123")
	}
}

func TestSetRawAccessTokenIgnoresBlank(t *testing.T) {
	app, c := newTestCtx(t)
	defer app.ReleaseCtx(c)

	SetRawAccessToken(c, "   ")
	if got := GetRawAccessToken(c); got != "" {
		t.Errorf("blank token must not be stored, got %q", got)
	}
}

func TestGetRawAccessTokenFromHeader(t *testing.T) {
	app, c := newTestCtx(t)
	defer app.ReleaseCtx(c)

	c.Request().Header.Set("Authorization", "Bearer header-tok")
	if got := GetRawAccessToken(c); got != "header-tok" {
		t.Errorf("GetRawAccessToken = %q, want %q", got, "header-tok")
	}
}
