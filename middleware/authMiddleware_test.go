package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/abanoubkerols/SpotifyApi/helpers"
)

func performRequest(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func newRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	chain := append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString("user_id")})
	})
	router.GET("/protected", chain...)
	return router
}

func TestAuthenticationMissingHeader(t *testing.T) {
	router := newRouter(Authentication())

	w := performRequest(router, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("got status %d, want 401", w.Code)
	}
}

func TestAuthenticationBadFormat(t *testing.T) {
	router := newRouter(Authentication())

	for _, header := range []string{"sometoken", "Basic abc", "Bearer"} {
		w := performRequest(router, header)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("header %q: got status %d, want 401", header, w.Code)
		}
	}
}

func TestAuthenticationInvalidToken(t *testing.T) {
	t.Setenv("SECRET_KEY", "test-secret")
	router := newRouter(Authentication())

	w := performRequest(router, "Bearer not-a-real-token")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("got status %d, want 401", w.Code)
	}
}

func TestAuthenticationValidToken(t *testing.T) {
	t.Setenv("SECRET_KEY", "test-secret")
	token, err := helpers.GenerateToken("user123", "alice@example.com", "Alice", false)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	router := newRouter(Authentication())
	w := performRequest(router, "Bearer "+token)
	if w.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200: %s", w.Code, w.Body.String())
	}
}

func TestOptionalAuthenticationAllowsAnonymous(t *testing.T) {
	router := newRouter(OptionalAuthentication())

	w := performRequest(router, "")
	if w.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200", w.Code)
	}
}

func TestOptionalAuthenticationIgnoresBadToken(t *testing.T) {
	t.Setenv("SECRET_KEY", "test-secret")
	router := newRouter(OptionalAuthentication())

	w := performRequest(router, "Bearer junk")
	if w.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200", w.Code)
	}
}

func TestAdminOnlyRejectsNonAdmin(t *testing.T) {
	t.Setenv("SECRET_KEY", "test-secret")
	token, err := helpers.GenerateToken("user123", "alice@example.com", "Alice", false)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	router := newRouter(Authentication(), AdminOnly())
	w := performRequest(router, "Bearer "+token)
	if w.Code != http.StatusForbidden {
		t.Fatalf("got status %d, want 403", w.Code)
	}
}

func TestAdminOnlyAllowsAdmin(t *testing.T) {
	t.Setenv("SECRET_KEY", "test-secret")
	token, err := helpers.GenerateToken("admin1", "admin@example.com", "Admin", true)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	router := newRouter(Authentication(), AdminOnly())
	w := performRequest(router, "Bearer "+token)
	if w.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200", w.Code)
	}
}
