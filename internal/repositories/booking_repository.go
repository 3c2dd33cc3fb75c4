package repositories

import (
	"database/sql"
	"errors"

	intconfig "travelvista-backend/internal/config"
	intdb "travelvista-backend/internal/db"
	"travelvista-backend/internal/domain"
	"travelvista-backend/internal/domain/models"
)

type BookingRepository struct {
	DB *sql.DB
}

func (r BookingRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r BookingRepository) ensureTable() error {
	db := r.db()
	if db == nil {
		return domain.InternalError{Msg: "database not available"}
	}
	if intdb.HasTable(db, "bookings") {
		// older deployments created bookings before reference codes existed
		if !intdb.HasColumn(db, "bookings", "booking_ref") {
			_, err := db.Exec(`ALTER TABLE bookings ADD COLUMN booking_ref CHAR(36) NOT NULL DEFAULT ''`)
			return err
		}
		return nil
	}
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS bookings (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			booking_ref CHAR(36) NOT NULL,
			package_id BIGINT NOT NULL,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) NOT NULL,
			phone VARCHAR(20) NOT NULL,
			travelers INT NOT NULL DEFAULT 1,
			special_request TEXT,
			total BIGINT NOT NULL DEFAULT 0,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`)
	return err
}

// Create inserts an accepted booking and returns it with the assigned id.
func (r BookingRepository) Create(b models.Booking) (models.Booking, error) {
	if err := r.ensureTable(); err != nil {
		return models.Booking{}, err
	}
	res, err := r.db().Exec(`
		INSERT INTO bookings (booking_ref, package_id, name, email, phone, travelers, special_request, total)
		VALUES (?,?,?,?,?,?,?,?)
	`, b.BookingRef, b.PackageID, b.Name, b.Email, b.Phone, b.Travelers, b.SpecialRequests, b.Total)
	if err != nil {
		return models.Booking{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Booking{}, err
	}
	b.ID = id
	return b, nil
}

func (r BookingRepository) GetByID(id int64) (models.Booking, error) {
	db := r.db()
	if db == nil || id <= 0 {
		return models.Booking{}, domain.NotFoundError{Resource: "booking"}
	}

	var b models.Booking
	err := db.QueryRow(`
		SELECT id, COALESCE(booking_ref,''), package_id, COALESCE(name,''), COALESCE(email,''),
		       COALESCE(phone,''), COALESCE(travelers,1), COALESCE(special_request,''),
		       COALESCE(total,0), COALESCE(DATE_FORMAT(created_at, '%Y-%m-%d %H:%i'),'')
		FROM bookings
		WHERE id=? LIMIT 1
	`, id).Scan(&b.ID, &b.BookingRef, &b.PackageID, &b.Name, &b.Email, &b.Phone,
		&b.Travelers, &b.SpecialRequests, &b.Total, &b.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Booking{}, domain.NotFoundError{Resource: "booking", Err: err}
		}
		return models.Booking{}, err
	}
	return b, nil
}

// List returns all bookings, newest first.
func (r BookingRepository) List() ([]models.Booking, error) {
	db := r.db()
	if db == nil || !intdb.HasTable(db, "bookings") {
		return []models.Booking{}, nil
	}

	rows, err := db.Query(`
		SELECT id, COALESCE(booking_ref,''), package_id, COALESCE(name,''), COALESCE(email,''),
		       COALESCE(phone,''), COALESCE(travelers,1), COALESCE(special_request,''),
		       COALESCE(total,0), COALESCE(DATE_FORMAT(created_at, '%Y-%m-%d %H:%i'),'')
		FROM bookings
		ORDER BY id DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Booking{}
	for rows.Next() {
		var b models.Booking
		if err := rows.Scan(&b.ID, &b.BookingRef, &b.PackageID, &b.Name, &b.Email, &b.Phone,
			&b.Travelers, &b.SpecialRequests, &b.Total, &b.CreatedAt); err != nil {
			return out, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
