package services

import (
	"bytes"
	"testing"

	"travelvista-backend/internal/invoice"
)

func TestInvoiceServiceGenerate(t *testing.T) {
	loader := func(id int64) (invoice.Data, error) {
		return invoice.Data{
			Name:            "Jane Doe",
			Email:           "jane@x.com",
			Phone:           "9876543210",
			PackageTitle:    "Himalayan Escape",
			Travelers:       2,
			UnitPrice:       5000,
			SpecialRequests: "None",
		}, nil
	}

	svc := InvoiceService{Loader: loader}

	pdf, filename, err := svc.GenerateInvoice(1)
	if err != nil {
		t.Fatalf("GenerateInvoice returned error: %v", err)
	}
	if filename != "booking_invoice_Jane_Doe.pdf" {
		t.Fatalf("filename = %q, want booking_invoice_Jane_Doe.pdf", filename)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatalf("GenerateInvoice did not return a PDF document")
	}
}
