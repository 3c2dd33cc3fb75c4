package services

import (
	"fmt"

	"travelvista-backend/internal/domain"
	"travelvista-backend/internal/invoice"
	"travelvista-backend/internal/repositories"
	"travelvista-backend/internal/utils"
)

// InvoiceService loads a stored booking with its package and renders the
// invoice PDF. Loader lets tests feed data without a database.
type InvoiceService struct {
	BookingRepo repositories.BookingRepository
	PackageRepo repositories.PackageRepository
	RequestID   string
	Loader      func(int64) (invoice.Data, error)
}

func (s InvoiceService) GenerateInvoice(bookingID int64) ([]byte, string, error) {
	data, err := s.loadInvoiceData(bookingID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "invoice", "generate", fmt.Sprintf("booking_id=%d", bookingID))
	return invoice.Build(data)
}

func (s InvoiceService) loadInvoiceData(bookingID int64) (invoice.Data, error) {
	if s.Loader != nil {
		return s.Loader(bookingID)
	}

	booking, err := s.BookingRepo.GetByID(bookingID)
	if err != nil {
		return invoice.Data{}, err
	}
	pkg, err := s.PackageRepo.GetByID(booking.PackageID)
	if err != nil {
		if domain.IsNotFound(err) {
			return invoice.Data{}, domain.NotFoundError{Resource: "package", Err: err}
		}
		return invoice.Data{}, err
	}

	return invoice.Data{
		Name:            booking.Name,
		Email:           booking.Email,
		Phone:           booking.Phone,
		PackageTitle:    pkg.Title,
		Travelers:       booking.Travelers,
		UnitPrice:       pkg.Price,
		SpecialRequests: booking.SpecialRequests,
	}, nil
}
