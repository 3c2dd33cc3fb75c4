package models

import "testing"

func validDraft() BookingDraft {
	d := NewBookingDraft(7)
	d.Name = "Jane Doe"
	d.Email = "jane@x.com"
	d.Phone = "9876543210"
	d.Travelers = 2
	return d
}

func TestNewBookingDraftDefaults(t *testing.T) {
	d := NewBookingDraft(7)
	if d.Travelers != 1 {
		t.Fatalf("default travelers = %d, want 1", d.Travelers)
	}
	if d.SpecialRequests != DefaultSpecialRequests {
		t.Fatalf("default special requests = %q, want %q", d.SpecialRequests, DefaultSpecialRequests)
	}
	if d.PackageID != 7 {
		t.Fatalf("package id = %d, want 7", d.PackageID)
	}
}

func TestValidateAcceptsValidDraft(t *testing.T) {
	if errs := validDraft().Validate(); len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestValidateRejectsBadFields(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*BookingDraft)
		field  string
		msg    string
	}{
		{"empty name", func(d *BookingDraft) { d.Name = "  " }, "name", "Name is required"},
		{"empty email", func(d *BookingDraft) { d.Email = "" }, "email", "Email is required"},
		{"malformed email", func(d *BookingDraft) { d.Email = "jane-at-x" }, "email", "Email is invalid"},
		{"empty phone", func(d *BookingDraft) { d.Phone = "" }, "phone", "Phone number is required"},
		{"short phone", func(d *BookingDraft) { d.Phone = "12345" }, "phone", "Phone number must be 10 digits"},
		{"alpha phone", func(d *BookingDraft) { d.Phone = "98765abc10" }, "phone", "Phone number must be 10 digits"},
		{"zero travelers", func(d *BookingDraft) { d.Travelers = 0 }, "travelers", "At least 1 traveler is required"},
	}

	for _, tc := range cases {
		d := validDraft()
		tc.mutate(&d)
		errs := d.Validate()
		if errs[tc.field] != tc.msg {
			t.Fatalf("%s: got %q for field %s, want %q (all: %v)", tc.name, errs[tc.field], tc.field, tc.msg, errs)
		}
	}
}

func TestTotalCost(t *testing.T) {
	cases := []struct {
		price     int64
		travelers int
		want      int64
	}{
		{5000, 2, 10000},
		{0, 5, 0},
		{1500, 1, 1500},
		{75000, 4, 300000},
	}
	for _, tc := range cases {
		if got := TotalCost(tc.price, tc.travelers); got != tc.want {
			t.Fatalf("TotalCost(%d, %d) = %d, want %d", tc.price, tc.travelers, got, tc.want)
		}
	}
}
