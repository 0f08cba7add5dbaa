// File: services/doctor/interface.go
package doctor

import (
	"context"

	doctorRepo "docta-server/database/repository/doctor"
	"docta-server/models"
)

// DoctorService exposes the public read side of doctor profiles.
type DoctorService interface {
	GetBySlug(ctx context.Context, slug string) (*models.Doctor, error)
	Filter(ctx context.Context, filter models.DoctorFilter, page, itemsPerPage int) ([]models.Doctor, int64, error)
}

// DefaultDoctorService is the production implementation backed by Mongo.
type DefaultDoctorService struct {
	Repo doctorRepo.DoctorRepository
}
