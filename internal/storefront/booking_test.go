package storefront

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"travelvista-backend/internal/domain"
	"travelvista-backend/internal/domain/models"
)

func himalayanPackage() models.TourPackage {
	return models.TourPackage{
		ID:             1,
		Title:          "Himalayan Escape",
		Description:    "Seven days in the mountains",
		Price:          5000,
		AvailableDates: []string{"2026-10-01"},
		Image:          "https://img.example/1.jpg",
	}
}

func fillJaneDoe(f *BookingForm) {
	f.SetField("name", "Jane Doe")
	f.SetField("email", "jane@x.com")
	f.SetField("phone", "9876543210")
	f.SetField("travelers", "2")
}

func TestNewBookingFormWithoutPackage(t *testing.T) {
	c := NewClient("http://localhost:8080/api/")
	form, err := c.NewBookingForm(nil)
	if !errors.Is(err, ErrNoPackage) {
		t.Fatalf("expected ErrNoPackage, got %v", err)
	}
	if form != nil {
		t.Fatalf("expected nil form for missing package")
	}
}

func TestNewBookingFormDefaults(t *testing.T) {
	c := NewClient("http://localhost:8080/api/")
	pkg := himalayanPackage()
	form, err := c.NewBookingForm(&pkg)
	if err != nil {
		t.Fatalf("NewBookingForm returned error: %v", err)
	}
	draft := form.Draft()
	if draft.Travelers != 1 || draft.SpecialRequests != "None" || draft.PackageID != 1 {
		t.Fatalf("unexpected defaults: %+v", draft)
	}
	if form.TotalCost() != 5000 {
		t.Fatalf("default total = %d, want 5000", form.TotalCost())
	}
}

func TestSubmitSuccessTransitionsToConfirmed(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		if r.Method != http.MethodPost || r.URL.Path != "/api/createbooking" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var payload map[string]any
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Errorf("failed to decode payload: %v", err)
		}
		if got := payload["totalPrice"].(float64); got != 10000 {
			t.Errorf("payload totalPrice = %v, want 10000", got)
		}
		if got := payload["name"].(string); got != "Jane Doe" {
			t.Errorf("payload name = %v", got)
		}
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":42,"total":10000}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL + "/api/")
	pkg := himalayanPackage()
	form, err := c.NewBookingForm(&pkg)
	if err != nil {
		t.Fatalf("NewBookingForm returned error: %v", err)
	}
	fillJaneDoe(form)

	if err := form.Submit(context.Background()); err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
	if !form.Confirmed() {
		t.Fatalf("form not confirmed after 201")
	}
	if len(form.Response()) == 0 {
		t.Fatalf("response body not retained")
	}
	if atomic.LoadInt32(&calls) != 1 {
		t.Fatalf("expected exactly one request, got %d", calls)
	}

	inv, err := form.Invoice()
	if err != nil {
		t.Fatalf("Invoice returned error: %v", err)
	}
	if inv.Total() != 10000 {
		t.Fatalf("invoice total = %d, want 10000", inv.Total())
	}
	summary := inv.Render()
	if !strings.Contains(summary, "Rs. 10,000") {
		t.Fatalf("summary missing formatted total: %q", summary)
	}
	if !strings.Contains(summary, "Himalayan Escape") {
		t.Fatalf("summary missing package title: %q", summary)
	}

	pdf, filename, err := inv.GeneratePDF()
	if err != nil {
		t.Fatalf("GeneratePDF returned error: %v", err)
	}
	if filename != "booking_invoice_Jane_Doe.pdf" {
		t.Fatalf("filename = %q, want booking_invoice_Jane_Doe.pdf", filename)
	}
	if len(pdf) == 0 {
		t.Fatalf("GeneratePDF returned empty document")
	}
}

func TestSubmitBlockedByValidation(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	c := NewClient(srv.URL + "/api/")
	pkg := himalayanPackage()
	form, _ := c.NewBookingForm(&pkg)
	form.SetField("name", "Jane Doe")
	form.SetField("email", "not-an-email")
	form.SetField("phone", "123")

	err := form.Submit(context.Background())
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	fields := domain.FieldErrors(err)
	if fields["email"] != "Email is invalid" || fields["phone"] != "Phone number must be 10 digits" {
		t.Fatalf("unexpected field errors: %v", fields)
	}
	if atomic.LoadInt32(&calls) != 0 {
		t.Fatalf("invalid draft reached the network")
	}
	if form.Confirmed() {
		t.Fatalf("form confirmed despite validation failure")
	}
}

func TestSubmitInFlightGuard(t *testing.T) {
	var calls int32
	entered := make(chan struct{}, 2)
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		entered <- struct{}{}
		<-release
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":1}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL + "/api/")
	pkg := himalayanPackage()
	form, _ := c.NewBookingForm(&pkg)
	fillJaneDoe(form)

	done := make(chan error, 1)
	go func() { done <- form.Submit(context.Background()) }()
	<-entered

	// second submit while the first is still in flight
	if err := form.Submit(context.Background()); !errors.Is(err, ErrSubmitInFlight) {
		t.Fatalf("expected ErrSubmitInFlight, got %v", err)
	}

	close(release)
	if err := <-done; err != nil {
		t.Fatalf("first submit failed: %v", err)
	}
	if atomic.LoadInt32(&calls) != 1 {
		t.Fatalf("double submit produced %d requests, want 1", calls)
	}
}

func TestSubmitFailureLeavesFormEditable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL + "/api/")
	pkg := himalayanPackage()
	form, _ := c.NewBookingForm(&pkg)
	fillJaneDoe(form)

	if err := form.Submit(context.Background()); err == nil {
		t.Fatalf("expected error on 500 response")
	}
	if form.Confirmed() {
		t.Fatalf("form must stay unconfirmed after a failed submit")
	}
	if _, err := form.Invoice(); !errors.Is(err, ErrNotConfirmed) {
		t.Fatalf("expected ErrNotConfirmed, got %v", err)
	}

	// the form stays editable for a manual retry
	form.SetField("travelers", "3")
	if form.TotalCost() != 15000 {
		t.Fatalf("total after edit = %d, want 15000", form.TotalCost())
	}
}
