package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/Aliyuabk/EMS/app/models"
)

func testApp() *fiber.App {
	app := fiber.New()
	handler := func(c *fiber.Ctx) error { return c.SendString("ok") }

	app.Get("/jera/only", AuthMiddleware, RequireRole(models.RoleJera), handler)
	app.Get("/api/jera/only", AuthMiddleware, RequireRole(models.RoleJera), handler)
	return app
}

func sessionRequest(t *testing.T, target, role string) *http.Request {
	t.Helper()
	token, err := GenerateSessionToken("admin-1", "someadmin", role)
	if err != nil {
		t.Fatalf("GenerateSessionToken: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: token})
	return req
}

func TestAuthMiddlewareRedirectsWithoutSession(t *testing.T) {
	app := testApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/jera/only", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("expected redirect, got %d", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); !strings.HasPrefix(loc, "/auth/login") {
		t.Fatalf("expected redirect to login, got %q", loc)
	}
}

func TestRequireRoleAllowsMatchingRole(t *testing.T) {
	app := testApp()

	resp, err := app.Test(sessionRequest(t, "/jera/only", models.RoleJera))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}

func TestRequireRoleDeniesWrongRole(t *testing.T) {
	app := testApp()

	// A valid school session must never reach a jera page.
	resp, err := app.Test(sessionRequest(t, "/jera/only", models.RoleSchool))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("expected redirect, got %d", resp.StatusCode)
	}

	resp, err = app.Test(sessionRequest(t, "/api/jera/only", models.RoleSchool))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403 for API request, got %d", resp.StatusCode)
	}
}
