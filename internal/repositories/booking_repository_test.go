package repositories

import (
	"testing"

	"travelvista-backend/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func janeBooking() models.Booking {
	return models.Booking{
		BookingRef:      "11111111-2222-3333-4444-555555555555",
		PackageID:       1,
		Name:            "Jane Doe",
		Email:           "jane@x.com",
		Phone:           "9876543210",
		Travelers:       2,
		SpecialRequests: "None",
		Total:           10000,
	}
}

func TestBookingCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("information_schema").WithArgs("bookings").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}).AddRow("bookings"))
	mock.ExpectQuery("information_schema").WithArgs("bookings", "booking_ref").
		WillReturnRows(sqlmock.NewRows([]string{"column_name"}).AddRow("booking_ref"))
	mock.ExpectExec("INSERT INTO bookings").
		WillReturnResult(sqlmock.NewResult(42, 1))

	repo := BookingRepository{DB: db}
	created, err := repo.Create(janeBooking())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.ID != 42 {
		t.Fatalf("created id = %d, want 42", created.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBookingCreateBackfillsRefColumn(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	// table predates reference codes: expect the column to be added
	mock.ExpectQuery("information_schema").WithArgs("bookings").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}).AddRow("bookings"))
	mock.ExpectQuery("information_schema").WithArgs("bookings", "booking_ref").
		WillReturnRows(sqlmock.NewRows([]string{"column_name"}))
	mock.ExpectExec("ALTER TABLE bookings ADD COLUMN booking_ref").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO bookings").
		WillReturnResult(sqlmock.NewResult(7, 1))

	repo := BookingRepository{DB: db}
	created, err := repo.Create(janeBooking())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.ID != 7 {
		t.Fatalf("created id = %d, want 7", created.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
