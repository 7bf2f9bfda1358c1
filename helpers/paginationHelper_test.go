package helpers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func testContext(t *testing.T, rawQuery string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+rawQuery, nil)
	return c
}

func TestParsePaginationDefaults(t *testing.T) {
	c := testContext(t, "")

	page, limit, skip := ParsePagination(c)
	if page != DefaultPage || limit != DefaultLimit || skip != 0 {
		t.Fatalf("got page=%d limit=%d skip=%d", page, limit, skip)
	}
}

func TestParsePaginationSkipMath(t *testing.T) {
	c := testContext(t, "page=3&limit=20")

	page, limit, skip := ParsePagination(c)
	if page != 3 || limit != 20 || skip != 40 {
		t.Fatalf("got page=%d limit=%d skip=%d", page, limit, skip)
	}
}

func TestParsePaginationRejectsGarbage(t *testing.T) {
	for _, q := range []string{"page=0&limit=10", "page=-1", "page=abc&limit=xyz"} {
		c := testContext(t, q)
		page, limit, _ := ParsePagination(c)
		if page != DefaultPage || limit != DefaultLimit {
			t.Errorf("query %q: got page=%d limit=%d", q, page, limit)
		}
	}
}

func TestPageCount(t *testing.T) {
	tests := []struct {
		total, limit, want int64
	}{
		{25, 10, 3},
		{30, 10, 3},
		{0, 10, 0},
		{1, 10, 1},
		{10, 0, 0},
	}
	for _, tt := range tests {
		if got := PageCount(tt.total, tt.limit); got != tt.want {
			t.Errorf("PageCount(%d, %d) = %d, want %d", tt.total, tt.limit, got, tt.want)
		}
	}
}

func TestParseLimit(t *testing.T) {
	if got := ParseLimit(testContext(t, "limit=25"), 5); got != 25 {
		t.Fatalf("got %d, want 25", got)
	}
	if got := ParseLimit(testContext(t, ""), 5); got != 5 {
		t.Fatalf("got %d, want fallback 5", got)
	}
	if got := ParseLimit(testContext(t, "limit=-3"), 5); got != 5 {
		t.Fatalf("got %d, want fallback 5", got)
	}
}
