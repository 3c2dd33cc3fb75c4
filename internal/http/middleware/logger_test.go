package middleware

import (
	"bytes"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestLoggerLine(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID(), Logger())
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	var buf bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&buf)
	defer log.SetOutput(prev)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	r.ServeHTTP(w, req)

	line := buf.String()
	for _, want := range []string{"[HTTP]", "method=GET", "path=/ping", "status=200", "bytes=4"} {
		if !strings.Contains(line, want) {
			t.Fatalf("log line missing %q: %q", want, line)
		}
	}
	if strings.Contains(line, "request_id= ") {
		t.Fatalf("request id not populated: %q", line)
	}
}

func TestLoggerNoBodyWritten(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Logger())
	r.GET("/empty", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	var buf bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&buf)
	defer log.SetOutput(prev)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/empty", nil)
	r.ServeHTTP(w, req)

	if !strings.Contains(buf.String(), "bytes=0") {
		t.Fatalf("empty response size not normalized: %q", buf.String())
	}
}
