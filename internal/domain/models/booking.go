package models

import (
	"regexp"
	"strings"
)

// DefaultSpecialRequests seeds the optional free-text field on new drafts.
const DefaultSpecialRequests = "None"

var (
	emailRe = regexp.MustCompile(`\S+@\S+\.\S+`)
	phoneRe = regexp.MustCompile(`^\d{10}$`)
)

// BookingDraft holds traveler-supplied fields for a selected package. It is
// transient: validated and frozen into a payload on submit, never persisted
// as-is.
type BookingDraft struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Travelers       int    `json:"travelers"`
	SpecialRequests string `json:"specialRequests"`
	PackageID       int64  `json:"packageId"`
}

// NewBookingDraft seeds a draft for the given package with default values.
func NewBookingDraft(packageID int64) BookingDraft {
	return BookingDraft{
		Travelers:       1,
		SpecialRequests: DefaultSpecialRequests,
		PackageID:       packageID,
	}
}

// Validate returns a field -> message map for every failing rule, empty when
// the draft is valid. Runs on submit, not on every field write.
func (d BookingDraft) Validate() map[string]string {
	errs := map[string]string{}
	if strings.TrimSpace(d.Name) == "" {
		errs["name"] = "Name is required"
	}
	if strings.TrimSpace(d.Email) == "" {
		errs["email"] = "Email is required"
	} else if !emailRe.MatchString(d.Email) {
		errs["email"] = "Email is invalid"
	}
	if strings.TrimSpace(d.Phone) == "" {
		errs["phone"] = "Phone number is required"
	} else if !phoneRe.MatchString(d.Phone) {
		errs["phone"] = "Phone number must be 10 digits"
	}
	if d.Travelers < 1 {
		errs["travelers"] = "At least 1 traveler is required"
	}
	return errs
}

// TotalCost derives the booking total from its two inputs. The total is
// never stored independently, so it cannot drift from price and count.
func TotalCost(unitPrice int64, travelers int) int64 {
	return unitPrice * int64(travelers)
}

// Booking is the accepted record as the backend stores it.
type Booking struct {
	ID              int64  `json:"id"`
	BookingRef      string `json:"bookingRef"`
	PackageID       int64  `json:"packageId"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Travelers       int    `json:"travelers"`
	SpecialRequests string `json:"specialRequests"`
	Total           int64  `json:"total"`
	CreatedAt       string `json:"createdAt,omitempty"`
}
