package storefront

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"travelvista-backend/internal/domain/models"
	"travelvista-backend/internal/invoice"
	"travelvista-backend/internal/utils"
)

// Invoice renders the confirmation summary for a confirmed booking. All
// amounts are recomputed from the draft and package, never read from a
// stored total.
type Invoice struct {
	draft models.BookingDraft
	pkg   models.TourPackage
}

func (i *Invoice) Total() int64 {
	return models.TotalCost(i.pkg.Price, i.draft.Travelers)
}

// Render produces the on-screen confirmation summary.
func (i *Invoice) Render() string {
	var b strings.Builder
	b.WriteString("Booking Confirmed!\n")
	fmt.Fprintf(&b, "Name: %s\n", i.draft.Name)
	fmt.Fprintf(&b, "Tour Package: %s\n", i.pkg.Title)
	fmt.Fprintf(&b, "Travelers: %d\n", i.draft.Travelers)
	fmt.Fprintf(&b, "Total Cost: %s\n", utils.FormatRupees(i.Total()))
	return b.String()
}

// GeneratePDF builds the downloadable invoice document. Failures are
// returned to the caller rather than logged and dropped.
func (i *Invoice) GeneratePDF() ([]byte, string, error) {
	return invoice.Build(invoice.Data{
		Name:            i.draft.Name,
		Email:           i.draft.Email,
		Phone:           i.draft.Phone,
		PackageTitle:    i.pkg.Title,
		Travelers:       i.draft.Travelers,
		UnitPrice:       i.pkg.Price,
		SpecialRequests: i.draft.SpecialRequests,
	})
}

// Save writes the PDF artifact into dir and returns its full path.
func (i *Invoice) Save(dir string) (string, error) {
	data, filename, err := i.GeneratePDF()
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}
