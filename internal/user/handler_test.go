package user

import (
	"io"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

func makeUserApp() *fiber.App {
	app := fiber.New()
	handler := NewHandler(NewService(NewInMemoryRepository(nil)))
	handler.RegisterPublicRoutes(app)
	// claims-injecting stand-in for the JWT middleware
	app.Use(func(c *fiber.Ctx) error {
		if v := c.Get("X-User-ID"); v != "" {
			if id, err := strconv.Atoi(v); err == nil {
				c.Locals("user", &jwt.Token{Claims: jwt.MapClaims{"user_id": id}})
			}
		}
		return c.Next()
	})
	handler.RegisterProtectedRoutes(app)
	return app
}

func signUp(t *testing.T, app *fiber.App, body string) *fiber.App {
	t.Helper()
	req := httptest.NewRequest("POST", "/api/v1/sign-up", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusCreated {
		b, _ := io.ReadAll(res.Body)
		t.Fatalf("sign-up failed with %d: %s", res.StatusCode, string(b))
	}
	return app
}

const anitaSignUp = `{"email":"anita@example.com","password":"s3cret-pw","firstName":"Anita","lastName":"Shrestha"}`

func TestSignUpAndSignIn(t *testing.T) {
	app := makeUserApp()
	signUp(t, app, anitaSignUp)

	// wrong password is rejected
	req := httptest.NewRequest("POST", "/api/v1/sign-in", strings.NewReader(`{"email":"anita@example.com","password":"nope"}`))
	req.Header.Set("Content-Type", "application/json")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 for bad password, got %d", res.StatusCode)
	}

	// right password returns a token and never the password hash
	req2 := httptest.NewRequest("POST", "/api/v1/sign-in", strings.NewReader(`{"email":"anita@example.com","password":"s3cret-pw"}`))
	req2.Header.Set("Content-Type", "application/json")
	res2, _ := app.Test(req2)
	if res2.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for sign-in, got %d", res2.StatusCode)
	}
	b, _ := io.ReadAll(res2.Body)
	if !strings.Contains(string(b), `"token"`) {
		t.Fatalf("expected a token in the response: %s", string(b))
	}
	if strings.Contains(string(b), `"password"`) {
		t.Fatalf("password leaked into sign-in response: %s", string(b))
	}
}

func TestSignUpRejectsDuplicateEmail(t *testing.T) {
	app := makeUserApp()
	signUp(t, app, anitaSignUp)

	req := httptest.NewRequest("POST", "/api/v1/sign-up", strings.NewReader(anitaSignUp))
	req.Header.Set("Content-Type", "application/json")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusConflict {
		t.Fatalf("expected 409 for duplicate email, got %d", res.StatusCode)
	}
}

func TestSignUpRequiresCoreFields(t *testing.T) {
	app := makeUserApp()

	req := httptest.NewRequest("POST", "/api/v1/sign-up", strings.NewReader(`{"email":"x@example.com"}`))
	req.Header.Set("Content-Type", "application/json")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for missing fields, got %d", res.StatusCode)
	}
}

func TestProfileRoundTrip(t *testing.T) {
	app := makeUserApp()
	signUp(t, app, anitaSignUp)

	// no claims, no profile
	req := httptest.NewRequest("GET", "/api/v1/profile", nil)
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 without claims, got %d", res.StatusCode)
	}

	// update the beauty questionnaire fields
	req2 := httptest.NewRequest("PATCH", "/api/v1/profile", strings.NewReader(`{"skinType":"oily","skinConcerns":"acne"}`))
	req2.Header.Set("Content-Type", "application/json")
	req2.Header.Set("X-User-ID", "1")
	res2, _ := app.Test(req2)
	if res2.StatusCode != fiber.StatusOK {
		b, _ := io.ReadAll(res2.Body)
		t.Fatalf("expected 200 for profile patch, got %d: %s", res2.StatusCode, string(b))
	}

	req3 := httptest.NewRequest("GET", "/api/v1/profile", nil)
	req3.Header.Set("X-User-ID", "1")
	res3, _ := app.Test(req3)
	b3, _ := io.ReadAll(res3.Body)
	if !strings.Contains(string(b3), `"skinType":"oily"`) {
		t.Fatalf("expected updated skin type, got %s", string(b3))
	}
}

func TestChangePassword(t *testing.T) {
	app := makeUserApp()
	signUp(t, app, anitaSignUp)

	// wrong current password
	req := httptest.NewRequest("POST", "/api/v1/profile/password", strings.NewReader(`{"currentPassword":"nope","newPassword":"next-pw-123"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", "1")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusBadRequest && res.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected rejection for wrong current password, got %d", res.StatusCode)
	}

	req2 := httptest.NewRequest("POST", "/api/v1/profile/password", strings.NewReader(`{"currentPassword":"s3cret-pw","newPassword":"next-pw-123"}`))
	req2.Header.Set("Content-Type", "application/json")
	req2.Header.Set("X-User-ID", "1")
	res2, _ := app.Test(req2)
	if res2.StatusCode != fiber.StatusOK {
		b, _ := io.ReadAll(res2.Body)
		t.Fatalf("expected 200 for password change, got %d: %s", res2.StatusCode, string(b))
	}

	// the new password signs in
	req3 := httptest.NewRequest("POST", "/api/v1/sign-in", strings.NewReader(`{"email":"anita@example.com","password":"next-pw-123"}`))
	req3.Header.Set("Content-Type", "application/json")
	res3, _ := app.Test(req3)
	if res3.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 signing in with new password, got %d", res3.StatusCode)
	}
}
