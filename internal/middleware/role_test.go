package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/employee-attendance-tracker/internal/utils"
)

func okHandler(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func newContext(t *testing.T, authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestJWTAuthRejectsMissingToken(t *testing.T) {
	c, rec := newContext(t, "")
	h := JWTAuth("secret")(okHandler)
	if err := h(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestJWTAuthRejectsBadSignature(t *testing.T) {
	at, err := utils.NewAccessToken("other-secret", 1, "employee", 5)
	if err != nil {
		t.Fatalf("NewAccessToken: %v", err)
	}
	c, rec := newContext(t, "Bearer "+at.Token)
	h := JWTAuth("secret")(okHandler)
	if err := h(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestJWTAuthInjectsClaims(t *testing.T) {
	at, err := utils.NewAccessToken("secret", 7, "manager", 5)
	if err != nil {
		t.Fatalf("NewAccessToken: %v", err)
	}
	c, rec := newContext(t, "Bearer "+at.Token)

	var gotRole interface{}
	h := JWTAuth("secret")(func(c echo.Context) error {
		gotRole = c.Get("role")
		return c.String(http.StatusOK, "ok")
	})
	if err := h(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if role, _ := gotRole.(string); role != "manager" {
		t.Errorf("role in context = %v, want manager", gotRole)
	}
}

func TestRequireRole(t *testing.T) {
	cases := []struct {
		name string
		role interface{}
		want int
	}{
		{"allowed role", "manager", http.StatusOK},
		{"disallowed role", "employee", http.StatusForbidden},
		{"missing role", nil, http.StatusForbidden},
	}
	for _, tc := range cases {
		c, rec := newContext(t, "")
		if tc.role != nil {
			c.Set("role", tc.role)
		}
		h := RequireRole("manager")(okHandler)
		if err := h(c); err != nil {
			t.Fatalf("%s: handler error: %v", tc.name, err)
		}
		if rec.Code != tc.want {
			t.Errorf("%s: status = %d, want %d", tc.name, rec.Code, tc.want)
		}
	}
}
