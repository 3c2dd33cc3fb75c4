package storefront

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"sync/atomic"

	"travelvista-backend/internal/domain"
	"travelvista-backend/internal/domain/models"
)

var (
	// ErrNoPackage means the booking screen was reached without a selected
	// package. This is a terminal state: no form exists to recover with.
	ErrNoPackage = errors.New("no tour package selected")

	// ErrSubmitInFlight rejects a submit while a previous one is running.
	ErrSubmitInFlight = errors.New("a booking submission is already in flight")

	// ErrNotConfirmed means the invoice was requested before a successful
	// submission.
	ErrNotConfirmed = errors.New("booking has not been confirmed")
)

// BookingForm collects traveler fields for a selected package, validates them
// on submit, and posts the booking. Field writes never validate; validation
// runs synchronously inside Submit.
type BookingForm struct {
	client *Client
	pkg    models.TourPackage
	draft  models.BookingDraft

	submitting atomic.Bool
	confirmed  bool
	response   []byte
}

// NewBookingForm seeds a form for the selected package with default values
// (one traveler, "None" special requests). A nil package is the dead-end
// case and fails immediately.
func (c *Client) NewBookingForm(pkg *models.TourPackage) (*BookingForm, error) {
	if pkg == nil {
		return nil, ErrNoPackage
	}
	return &BookingForm{
		client: c,
		pkg:    *pkg,
		draft:  models.NewBookingDraft(pkg.ID),
	}, nil
}

// SetField assigns a form field from raw user input. No validation happens
// here; a non-numeric traveler count becomes 0 and fails at submit.
func (f *BookingForm) SetField(name, value string) {
	switch name {
	case "name":
		f.draft.Name = value
	case "email":
		f.draft.Email = value
	case "phone":
		f.draft.Phone = value
	case "travelers":
		n, err := strconv.Atoi(value)
		if err != nil {
			n = 0
		}
		f.draft.Travelers = n
	case "specialRequests":
		f.draft.SpecialRequests = value
	}
}

func (f *BookingForm) Draft() models.BookingDraft { return f.draft }

func (f *BookingForm) Package() models.TourPackage { return f.pkg }

// Validate returns the field -> message map for the current draft, empty
// when it would be accepted.
func (f *BookingForm) Validate() map[string]string {
	return f.draft.Validate()
}

// TotalCost derives the current total from the package price and traveler
// count. It is never cached.
func (f *BookingForm) TotalCost() int64 {
	return models.TotalCost(f.pkg.Price, f.draft.Travelers)
}

// submitPayload is the draft frozen for the wire, lowercase fields plus the
// computed total, matching what the browser storefront sent.
type submitPayload struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Travelers       int    `json:"travelers"`
	SpecialRequests string `json:"specialRequests"`
	PackageID       int64  `json:"packageId"`
	TotalPrice      int64  `json:"totalPrice"`
}

// Submit validates the draft and posts it. Invalid drafts and concurrent
// submissions never reach the network. On a 201 the form transitions to the
// confirmed state; on any other outcome it stays editable for a manual retry.
func (f *BookingForm) Submit(ctx context.Context) error {
	if errs := f.Validate(); len(errs) > 0 {
		return domain.ValidationError{Fields: errs}
	}
	if !f.submitting.CompareAndSwap(false, true) {
		return ErrSubmitInFlight
	}
	defer f.submitting.Store(false)

	payload := submitPayload{
		Name:            f.draft.Name,
		Email:           f.draft.Email,
		Phone:           f.draft.Phone,
		Travelers:       f.draft.Travelers,
		SpecialRequests: f.draft.SpecialRequests,
		PackageID:       f.draft.PackageID,
		TotalPrice:      f.TotalCost(),
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.client.endpoint("createbooking"), bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.client.httpClient().Do(req)
	if err != nil {
		return fmt.Errorf("failed to submit booking: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("failed to submit booking: unexpected status %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read booking response: %w", err)
	}

	f.response = raw
	f.confirmed = true
	return nil
}

// Confirmed reports whether a submission has been accepted.
func (f *BookingForm) Confirmed() bool { return f.confirmed }

// Response returns the raw server response body after confirmation.
func (f *BookingForm) Response() []byte { return f.response }

// Invoice hands the frozen draft and package to the invoice renderer. Only a
// confirmed form has an invoice.
func (f *BookingForm) Invoice() (*Invoice, error) {
	if !f.confirmed {
		return nil, ErrNotConfirmed
	}
	return &Invoice{draft: f.draft, pkg: f.pkg}, nil
}
