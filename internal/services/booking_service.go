package services

import (
	"database/sql"
	"fmt"
	"strings"

	intconfig "travelvista-backend/internal/config"
	"travelvista-backend/internal/domain"
	"travelvista-backend/internal/domain/models"
	"travelvista-backend/internal/repositories"
	"travelvista-backend/internal/utils"

	"github.com/google/uuid"
)

// BookingService turns a validated draft into a stored booking. The total is
// always recomputed from the stored package price; any client-supplied total
// is ignored.
type BookingService struct {
	BookingRepo repositories.BookingRepository
	PackageRepo repositories.PackageRepository
	DB          *sql.DB
	RequestID   string
}

func (s BookingService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s BookingService) bookings() repositories.BookingRepository {
	if s.BookingRepo.DB != nil {
		return s.BookingRepo
	}
	return repositories.BookingRepository{DB: s.db()}
}

func (s BookingService) packages() repositories.PackageRepository {
	if s.PackageRepo.DB != nil {
		return s.PackageRepo
	}
	return repositories.PackageRepository{DB: s.db()}
}

// Create validates the draft, derives the total from the package price, and
// inserts the booking with a fresh reference code.
func (s BookingService) Create(draft models.BookingDraft) (models.Booking, error) {
	if errs := draft.Validate(); len(errs) > 0 {
		return models.Booking{}, domain.ValidationError{Fields: errs}
	}

	pkg, err := s.packages().GetByID(draft.PackageID)
	if err != nil {
		if domain.IsNotFound(err) {
			return models.Booking{}, err
		}
		return models.Booking{}, domain.InternalError{Err: err}
	}

	special := strings.TrimSpace(draft.SpecialRequests)
	if special == "" {
		special = models.DefaultSpecialRequests
	}

	booking := models.Booking{
		BookingRef:      uuid.NewString(),
		PackageID:       pkg.ID,
		Name:            utils.NormalizeSpace(draft.Name),
		Email:           strings.TrimSpace(draft.Email),
		Phone:           strings.TrimSpace(draft.Phone),
		Travelers:       draft.Travelers,
		SpecialRequests: special,
		Total:           models.TotalCost(pkg.Price, draft.Travelers),
	}

	created, err := s.bookings().Create(booking)
	if err != nil {
		return models.Booking{}, domain.InternalError{Err: err}
	}

	utils.LogEvent(s.RequestID, "booking", "create",
		fmt.Sprintf("booking_id=%d package_id=%d travelers=%d total=%d",
			created.ID, created.PackageID, created.Travelers, created.Total))
	return created, nil
}
