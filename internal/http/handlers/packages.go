package handlers

import (
	"net/http"

	"travelvista-backend/internal/domain/models"
	"travelvista-backend/internal/http/middleware"
	"travelvista-backend/internal/repositories"
	"travelvista-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

// packageRecord is the legacy wire shape for package reads: capitalized keys
// and a single Availabedate string. It exists only at this boundary; the rest
// of the code uses models.TourPackage.
type packageRecord struct {
	ID           int64  `json:"_id"`
	Title        string `json:"Title"`
	Description  string `json:"Description"`
	Price        int64  `json:"Price"`
	Availabedate string `json:"Availabedate"`
	Image        string `json:"Image"`
}

func toPackageRecord(p models.TourPackage) packageRecord {
	return packageRecord{
		ID:           p.ID,
		Title:        p.Title,
		Description:  p.Description,
		Price:        p.Price,
		Availabedate: p.FirstAvailableDate(),
		Image:        p.Image,
	}
}

// GET /api/getallpackages
func GetAllPackages(c *gin.Context) {
	repo := repositories.PackageRepository{}
	packages, err := repo.List()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to fetch tour packages", err)
		return
	}

	out := make([]packageRecord, 0, len(packages))
	for _, p := range packages {
		out = append(out, toPackageRecord(p))
	}
	c.JSON(http.StatusOK, out)
}

type createPackageRequest struct {
	Title         string `json:"title" validate:"required"`
	Description   string `json:"description" validate:"required"`
	Price         int64  `json:"price" validate:"gte=0"`
	AvailableDate string `json:"availableDate"`
	Image         string `json:"image" validate:"required"`
}

// POST /api (legacy root create) and POST /api/createpackage
func CreatePackage(c *gin.Context) {
	var req createPackageRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if errs := utils.ValidateStruct(req); errs != nil {
		respondError(c, http.StatusBadRequest, "validation_error", "invalid package payload", errs)
		return
	}

	repo := repositories.PackageRepository{}
	created, err := repo.Create(models.TourPackage{
		Title:          req.Title,
		Description:    req.Description,
		Price:          req.Price,
		AvailableDates: splitAvailableDate(req.AvailableDate),
		Image:          req.Image,
	})
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to create tour package", err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "package", "create", created.Title)
	c.JSON(http.StatusCreated, toPackageRecord(created))
}

// updatePackageRequest is the full legacy record as the admin screen sends it.
type updatePackageRequest struct {
	ID           int64  `json:"_id" validate:"required"`
	Title        string `json:"Title" validate:"required"`
	Description  string `json:"Description" validate:"required"`
	Price        int64  `json:"Price" validate:"gte=0"`
	Availabedate string `json:"Availabedate"`
	Image        string `json:"Image"`
}

// PUT /api/updatepackage
func UpdatePackage(c *gin.Context) {
	var req updatePackageRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if errs := utils.ValidateStruct(req); errs != nil {
		respondError(c, http.StatusBadRequest, "validation_error", "invalid package payload", errs)
		return
	}

	repo := repositories.PackageRepository{}
	updated, err := repo.Update(models.TourPackage{
		ID:             req.ID,
		Title:          req.Title,
		Description:    req.Description,
		Price:          req.Price,
		AvailableDates: splitAvailableDate(req.Availabedate),
		Image:          req.Image,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "package", "update", updated.Title)
	c.JSON(http.StatusOK, toPackageRecord(updated))
}

type deletePackageRequest struct {
	PackageID int64 `json:"packageId"`
}

// DELETE /api/deletepackage
func DeletePackage(c *gin.Context) {
	var req deletePackageRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if req.PackageID <= 0 {
		RespondError(c, http.StatusBadRequest, "packageId is required", nil)
		return
	}

	repo := repositories.PackageRepository{}
	if err := repo.Delete(req.PackageID); err != nil {
		RespondDomainError(c, err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "package", "delete", "")
	c.JSON(http.StatusAccepted, gin.H{"message": "package deleted"})
}

func splitAvailableDate(raw string) []string {
	if raw == "" {
		return nil
	}
	return []string{raw}
}
