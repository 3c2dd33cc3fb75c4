package utils

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

func captureLog(t *testing.T, fn func()) string {
	t.Helper()
	var buf bytes.Buffer
	prev := log.Writer()
	log.SetOutput(&buf)
	defer log.SetOutput(prev)
	fn()
	return buf.String()
}

func TestLogEvent(t *testing.T) {
	out := captureLog(t, func() {
		LogEvent("req-1", "booking", "create", "Jane Doe")
	})
	if !strings.Contains(out, "[BOOKING] action=create request_id=req-1 msg=Jane Doe") {
		t.Fatalf("unexpected log line: %q", out)
	}
}

func TestLogEventEmptyRequestID(t *testing.T) {
	out := captureLog(t, func() {
		LogEvent("  ", "package", "update", "Himalayan Escape")
	})
	if !strings.Contains(out, "request_id=- ") {
		t.Fatalf("empty request id not rendered as dash: %q", out)
	}
}
