// Package invoice builds the booking confirmation PDF. The builder is a pure
// function of the booking draft and its package, so the printed total is
// always recomputed from unit price and traveler count.
package invoice

import (
	"bytes"
	"fmt"
	"strconv"

	"travelvista-backend/internal/domain/models"
	"travelvista-backend/internal/utils"

	"github.com/phpdave11/gofpdf"
)

const (
	issuerName    = "TravelVista Adventures"
	issuerContact = "Contact: support@travelvista.com"
)

// Data carries everything the invoice prints. Total is intentionally absent:
// it is derived from UnitPrice and Travelers at render time.
type Data struct {
	Name            string
	Email           string
	Phone           string
	PackageTitle    string
	Travelers       int
	UnitPrice       int64
	SpecialRequests string
}

// Total derives the invoice amount from its two inputs.
func (d Data) Total() int64 {
	return models.TotalCost(d.UnitPrice, d.Travelers)
}

// Filename is the download name for the artifact, with spaces in the
// customer name replaced by underscores.
func (d Data) Filename() string {
	return fmt.Sprintf("booking_invoice_%s.pdf", utils.SafeFilenamePart(d.Name))
}

// Build renders the single-page invoice and returns its bytes and filename.
func Build(d Data) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Adventure Booking Invoice", false)
	pdf.AddPage()

	left := 18.0
	valueCol := 90.0
	pageWidth, _ := pdf.GetPageSize()

	// Title
	pdf.SetFont("Helvetica", "B", 20)
	pdf.SetTextColor(51, 102, 204)
	pdf.Cell(0, 12, "Adventure Booking Invoice")
	pdf.Ln(16)

	// Issuer block
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 6, issuerName)
	pdf.Ln(6)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 5, issuerContact)
	pdf.Ln(8)

	pdf.SetDrawColor(51, 102, 204)
	y := pdf.GetY()
	pdf.Line(left, y, pageWidth-left, y)
	pdf.Ln(8)

	heading := func(text string) {
		pdf.SetFont("Helvetica", "B", 14)
		pdf.SetTextColor(51, 102, 204)
		pdf.Cell(0, 8, text)
		pdf.Ln(10)
		pdf.SetTextColor(0, 0, 0)
	}

	row := func(label, value string) {
		pdf.SetFont("Helvetica", "", 12)
		pdf.SetX(left)
		pdf.CellFormat(valueCol-left, 7, label, "", 0, "L", false, 0, "")
		pdf.SetX(valueCol)
		pdf.CellFormat(0, 7, value, "", 1, "L", false, 0, "")
	}

	heading("Customer Details:")
	row("Name:", d.Name)
	row("Email:", d.Email)
	row("Phone:", d.Phone)
	pdf.Ln(6)

	heading("Booking Details:")
	row("Tour Package:", d.PackageTitle)
	row("Number of Travelers:", strconv.Itoa(d.Travelers))
	row("Price per Person:", utils.FormatRupees(d.UnitPrice))

	pdf.Ln(3)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetTextColor(51, 102, 204)
	pdf.SetX(left)
	pdf.CellFormat(valueCol-left, 8, "Total Cost:", "", 0, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.SetX(valueCol)
	pdf.CellFormat(0, 8, utils.FormatRupees(d.Total()), "", 1, "L", false, 0, "")

	pdf.Ln(3)
	special := d.SpecialRequests
	if special == "" {
		special = models.DefaultSpecialRequests
	}
	row("Special Requests:", special)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), d.Filename(), nil
}
