package handlers

import (
	"net/http"
	"strconv"

	"travelvista-backend/internal/http/middleware"
	"travelvista-backend/internal/repositories"
	"travelvista-backend/internal/services"

	"github.com/gin-gonic/gin"
)

// GetBookingInvoicePDF returns the booking invoice as a downloadable PDF.
// Generation failures are surfaced to the caller, never swallowed.
func GetBookingInvoicePDF(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, "invalid_booking_id", "booking id is not valid", nil)
		return
	}

	svc := services.InvoiceService{
		BookingRepo: repositories.BookingRepository{},
		PackageRepo: repositories.PackageRepository{},
		RequestID:   middleware.GetRequestID(c),
	}
	pdfBytes, filename, err := svc.GenerateInvoice(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
