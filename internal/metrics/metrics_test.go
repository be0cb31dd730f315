package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestHandlerExposesCounters(t *testing.T) {
	GenerationRequests.WithLabelValues(OutcomeGenerated).Inc()
	PasswordsGenerated.WithLabelValues("Strong").Inc()
	PasswordLength.Observe(16)

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	body, _ := io.ReadAll(rec.Body)
	for _, name := range []string{
		"sejanpass_generation_requests_total",
		"sejanpass_passwords_generated_total",
		"sejanpass_password_length",
	} {
		if !strings.Contains(string(body), name) {
			t.Errorf("metrics output missing %s", name)
		}
	}
}

func TestHandlerOmitsProcessLocalCounters(t *testing.T) {
	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body, _ := io.ReadAll(rec.Body)
	if strings.Contains(string(body), "sejanpass_clipboard_copies_total") {
		t.Error("clipboard copies happen only in the CLI and must not be exported by the server")
	}
}
