package repositories

import (
	"database/sql"
	"errors"
	"strings"

	intconfig "travelvista-backend/internal/config"
	intdb "travelvista-backend/internal/db"
	"travelvista-backend/internal/domain"
	"travelvista-backend/internal/domain/models"
)

type PackageRepository struct {
	DB *sql.DB
}

func (r PackageRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r PackageRepository) ensureTable() error {
	db := r.db()
	if db == nil {
		return domain.InternalError{Msg: "database not available"}
	}
	if intdb.HasTable(db, "packages") {
		return nil
	}
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS packages (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			title VARCHAR(255) NOT NULL,
			description TEXT,
			price BIGINT NOT NULL DEFAULT 0,
			available_date VARCHAR(255),
			image TEXT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`)
	return err
}

// List returns all published packages, newest first.
func (r PackageRepository) List() ([]models.TourPackage, error) {
	db := r.db()
	if db == nil || !intdb.HasTable(db, "packages") {
		return []models.TourPackage{}, nil
	}

	rows, err := db.Query(`
		SELECT id, COALESCE(title,''), COALESCE(description,''), COALESCE(price,0),
		       COALESCE(available_date,''), COALESCE(image,'')
		FROM packages
		ORDER BY id DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.TourPackage{}
	for rows.Next() {
		var p models.TourPackage
		var dates string
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Price, &dates, &p.Image); err != nil {
			return out, err
		}
		p.AvailableDates = splitDates(dates)
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r PackageRepository) GetByID(id int64) (models.TourPackage, error) {
	db := r.db()
	if db == nil || id <= 0 {
		return models.TourPackage{}, domain.NotFoundError{Resource: "package"}
	}

	var p models.TourPackage
	var dates string
	err := db.QueryRow(`
		SELECT id, COALESCE(title,''), COALESCE(description,''), COALESCE(price,0),
		       COALESCE(available_date,''), COALESCE(image,'')
		FROM packages
		WHERE id=? LIMIT 1
	`, id).Scan(&p.ID, &p.Title, &p.Description, &p.Price, &dates, &p.Image)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.TourPackage{}, domain.NotFoundError{Resource: "package", Err: err}
		}
		return models.TourPackage{}, err
	}
	p.AvailableDates = splitDates(dates)
	return p, nil
}

func (r PackageRepository) Create(p models.TourPackage) (models.TourPackage, error) {
	if err := r.ensureTable(); err != nil {
		return models.TourPackage{}, err
	}
	res, err := r.db().Exec(`
		INSERT INTO packages (title, description, price, available_date, image)
		VALUES (?,?,?,?,?)
	`, p.Title, p.Description, p.Price, joinDates(p.AvailableDates), intdb.NullIfEmpty(p.Image))
	if err != nil {
		return models.TourPackage{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.TourPackage{}, err
	}
	p.ID = id
	return p, nil
}

func (r PackageRepository) Update(p models.TourPackage) (models.TourPackage, error) {
	db := r.db()
	if db == nil || p.ID <= 0 {
		return models.TourPackage{}, domain.NotFoundError{Resource: "package"}
	}
	res, err := db.Exec(`
		UPDATE packages
		SET title=?, description=?, price=?, available_date=?, image=?
		WHERE id=?
	`, p.Title, p.Description, p.Price, joinDates(p.AvailableDates), intdb.NullIfEmpty(p.Image), p.ID)
	if err != nil {
		return models.TourPackage{}, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return models.TourPackage{}, err
	}
	if affected == 0 {
		// row may exist with identical values; only report missing rows
		if _, getErr := r.GetByID(p.ID); getErr != nil {
			return models.TourPackage{}, getErr
		}
	}
	return p, nil
}

func (r PackageRepository) Delete(id int64) error {
	db := r.db()
	if db == nil || id <= 0 {
		return domain.NotFoundError{Resource: "package"}
	}
	res, err := db.Exec(`DELETE FROM packages WHERE id=?`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.NotFoundError{Resource: "package"}
	}
	return nil
}

// Dates are stored as a comma-separated list in one column; the legacy wire
// exposes only the first entry.
func splitDates(raw string) []string {
	out := []string{}
	for _, d := range strings.Split(raw, ",") {
		if d = strings.TrimSpace(d); d != "" {
			out = append(out, d)
		}
	}
	return out
}

func joinDates(dates []string) string {
	clean := make([]string, 0, len(dates))
	for _, d := range dates {
		if d = strings.TrimSpace(d); d != "" {
			clean = append(clean, d)
		}
	}
	return strings.Join(clean, ",")
}
