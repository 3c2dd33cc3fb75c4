package handlers

import (
	"net/http"

	"travelvista-backend/internal/domain/models"
	"travelvista-backend/internal/http/middleware"
	"travelvista-backend/internal/repositories"
	"travelvista-backend/internal/services"

	"github.com/gin-gonic/gin"
)

// createBookingRequest is the lowercase draft the storefront posts. The
// client-computed totalPrice is accepted for wire compatibility and ignored;
// the server derives the total from the stored package price.
type createBookingRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Travelers       int    `json:"travelers"`
	SpecialRequests string `json:"specialRequests"`
	PackageID       int64  `json:"packageId"`
	TotalPrice      int64  `json:"totalPrice"`
}

// POST /api/createbooking
func CreateBooking(c *gin.Context) {
	var req createBookingRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	svc := services.BookingService{RequestID: middleware.GetRequestID(c)}
	created, err := svc.Create(models.BookingDraft{
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		Travelers:       req.Travelers,
		SpecialRequests: req.SpecialRequests,
		PackageID:       req.PackageID,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// bookingRecord is the legacy wire shape the admin bookings screen reads.
type bookingRecord struct {
	ID             int64  `json:"_id"`
	Name           string `json:"Name"`
	Email          string `json:"Email"`
	Phone          string `json:"Phone"`
	Travelers      int    `json:"Travelers"`
	Totalcost      int64  `json:"Totalcost"`
	SpecialRequest string `json:"SpecialRequest"`
	PackageID      int64  `json:"PackageId"`
	BookingRef     string `json:"BookingRef"`
	CreatedAt      string `json:"CreatedAt,omitempty"`
}

// GET /api/viewbookings
func ViewBookings(c *gin.Context) {
	repo := repositories.BookingRepository{}
	bookings, err := repo.List()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to fetch bookings", err)
		return
	}

	out := make([]bookingRecord, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, bookingRecord{
			ID:             b.ID,
			Name:           b.Name,
			Email:          b.Email,
			Phone:          b.Phone,
			Travelers:      b.Travelers,
			Totalcost:      b.Total,
			SpecialRequest: b.SpecialRequests,
			PackageID:      b.PackageID,
			BookingRef:     b.BookingRef,
			CreatedAt:      b.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, out)
}
