// File: services/doctor/doctor.go
package doctor

import (
	"context"

	"docta-server/models"
	"docta-server/utils"
)

// ValidateDoctor enforces the provider-validity rule shared by every booking
// path: the doctor must exist, be active and be visible.
func ValidateDoctor(d *models.Doctor) error {
	if d == nil {
		return utils.NotFoundError(utils.CodeDoctorNotFound, "Doctor not found")
	}
	if !d.IsActive || !d.IsVisible {
		return utils.ConflictError(utils.CodeDoctorNotAvailable, "Doctor is not available")
	}
	return nil
}

func (s *DefaultDoctorService) GetBySlug(ctx context.Context, slug string) (*models.Doctor, error) {
	doc, err := s.Repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if err := ValidateDoctor(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *DefaultDoctorService) Filter(ctx context.Context, filter models.DoctorFilter, page, itemsPerPage int) ([]models.Doctor, int64, error) {
	return s.Repo.Filter(ctx, filter, page, itemsPerPage)
}
