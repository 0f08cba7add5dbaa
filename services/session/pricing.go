// File: services/session/pricing.go
package session

import (
	"math"

	"docta-server/config"
	"docta-server/models"
)

// PriceInput carries everything needed to price a booking: the doctor's
// hourly rate, the period bounds (epoch millis) and the fee percentages in
// effect right now.
type PriceInput struct {
	ConsultationFeePerHour float64
	StartTime              int64
	EndTime                int64
	Fees                   config.FeePercentages
}

// CalculateSessionPrice computes the immutable price breakdown for a session.
//
// Every component is rounded up so the platform and the payment processor are
// never under-collected. The platform fee is taken off the unrounded doctor
// base to avoid compounding rounding error, and the total is the sum of the
// three rounded components, so
//
//	TotalPrice == DoctorPrice + PlatformPrice + PaymentApiPrice
//
// holds exactly for every input.
func CalculateSessionPrice(in PriceInput) models.SessionPricing {
	durationHours := float64(in.EndTime-in.StartTime) / 3_600_000

	doctorBase := in.ConsultationFeePerHour * durationHours
	doctorPrice := int64(math.Ceil(doctorBase))

	platformPrice := int64(math.Ceil(doctorBase * in.Fees.Platform / 100))

	subtotal := doctorBase + float64(platformPrice)
	paymentApiPrice := int64(math.Ceil(subtotal * (in.Fees.Collection + in.Fees.Disbursement) / 100))

	return models.SessionPricing{
		DoctorPrice:     doctorPrice,
		PlatformPrice:   platformPrice,
		PaymentApiPrice: paymentApiPrice,
		TotalPrice:      doctorPrice + platformPrice + paymentApiPrice,
	}
}
