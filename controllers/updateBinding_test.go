package controllers

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func jsonRequestContext(t *testing.T, body string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	req := httptest.NewRequest("PUT", "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	return c
}

func multipartRequestContext(t *testing.T, fields map[string]string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			t.Fatalf("WriteField(%q) failed: %v", key, err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("closing multipart writer failed: %v", err)
	}

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	req := httptest.NewRequest("PUT", "/", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	c.Request = req
	return c
}

func TestBindPlaylistUpdateJSONPartial(t *testing.T) {
	c := jsonRequestContext(t, `{"name": "Evening Chill"}`)

	body, err := bindPlaylistUpdate(c)
	if err != nil {
		t.Fatalf("bindPlaylistUpdate failed: %v", err)
	}
	if body.Name == nil || *body.Name != "Evening Chill" {
		t.Errorf("name not bound: %v", body.Name)
	}
	if body.Description != nil || body.IsPublic != nil {
		t.Errorf("absent fields must stay nil: %+v", body)
	}
}

func TestBindPlaylistUpdateMultipart(t *testing.T) {
	c := multipartRequestContext(t, map[string]string{
		"name":     "Evening Chill",
		"isPublic": "true",
	})

	body, err := bindPlaylistUpdate(c)
	if err != nil {
		t.Fatalf("bindPlaylistUpdate failed: %v", err)
	}
	if body.Name == nil || *body.Name != "Evening Chill" {
		t.Errorf("name not bound from form: %v", body.Name)
	}
	if body.IsPublic == nil || !*body.IsPublic {
		t.Errorf("isPublic not bound from form: %v", body.IsPublic)
	}
	if body.Description != nil {
		t.Errorf("absent description must stay nil")
	}
}

func TestBindPlaylistUpdateRejectsShortName(t *testing.T) {
	for _, c := range []*gin.Context{
		jsonRequestContext(t, `{"name": "ab"}`),
		multipartRequestContext(t, map[string]string{"name": "ab"}),
	} {
		if _, err := bindPlaylistUpdate(c); err == nil {
			t.Errorf("two-character name must fail validation")
		}
	}
}

func TestBindProfileUpdateJSONPartial(t *testing.T) {
	c := jsonRequestContext(t, `{"email": "alice@example.com"}`)

	body, err := bindProfileUpdate(c)
	if err != nil {
		t.Fatalf("bindProfileUpdate failed: %v", err)
	}
	if body.Email == nil || *body.Email != "alice@example.com" {
		t.Errorf("email not bound: %v", body.Email)
	}
	if body.Name != nil || body.Password != nil || body.ProfilePicture != nil {
		t.Errorf("absent fields must stay nil: %+v", body)
	}
}

func TestBindProfileUpdateMultipart(t *testing.T) {
	c := multipartRequestContext(t, map[string]string{
		"name":  "Alice",
		"email": "alice@example.com",
	})

	body, err := bindProfileUpdate(c)
	if err != nil {
		t.Fatalf("bindProfileUpdate failed: %v", err)
	}
	if body.Name == nil || *body.Name != "Alice" {
		t.Errorf("name not bound from form: %v", body.Name)
	}
	if body.Email == nil || *body.Email != "alice@example.com" {
		t.Errorf("email not bound from form: %v", body.Email)
	}
	if body.Password != nil {
		t.Errorf("absent password must stay nil")
	}
}

func TestBindProfileUpdateRejectsBadEmail(t *testing.T) {
	c := multipartRequestContext(t, map[string]string{"email": "not-an-email"})

	if _, err := bindProfileUpdate(c); err == nil {
		t.Fatalf("malformed email must fail validation")
	}
}
