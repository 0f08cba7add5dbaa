package models

import "time"

// Session statuses. Created and Paid are cancellable; the rest are terminal.
const (
	SessionStatusCreated               = "Created"
	SessionStatusPaid                  = "Paid"
	SessionStatusCompleted             = "Completed"
	SessionStatusCancelledByDoctor     = "CancelledByDoctor"
	SessionStatusCancelledByPatient    = "CancelledByPatient"
	SessionStatusCancelledDueToTimeout = "CancelledDueToTimeout"
)

// SessionPricing is the immutable price breakdown persisted on a session.
// All components are ceiled so the platform is never under-collected, and
// TotalPrice is always the exact sum of the three parts.
type SessionPricing struct {
	TotalPrice      int64 `bson:"totalPrice" json:"totalPrice"`
	DoctorPrice     int64 `bson:"doctorPrice" json:"doctorPrice"`
	PlatformPrice   int64 `bson:"platformPrice" json:"platformPrice"`
	PaymentApiPrice int64 `bson:"paymentApiPrice" json:"paymentApiPrice"`
}

// SessionMeta snapshots the rates in effect at booking time so later config
// changes never retroactively alter historical sessions.
type SessionMeta struct {
	OriginalDoctorConsultationFeePerHour float64 `bson:"originalDoctorConsultationFeePerHour" json:"originalDoctorConsultationFeePerHour"`
	PlatformPercentage                   float64 `bson:"platformPercentage" json:"platformPercentage"`
	CollectionPercentage                 float64 `bson:"collectionPercentage" json:"collectionPercentage"`
	DisbursementPercentage               float64 `bson:"disbursementPercentage" json:"disbursementPercentage"`
}

// Session is a patient's reservation of a period.
type Session struct {
	ID          string         `bson:"id" json:"id"`
	PeriodID    string         `bson:"periodId" json:"periodId"`
	PatientID   string         `bson:"patientId" json:"patientId"`
	DoctorID    string         `bson:"doctorId" json:"doctorId"`
	Pricing     SessionPricing `bson:"pricing" json:"pricing"`
	Meta        SessionMeta    `bson:"meta" json:"meta"`
	Status      string         `bson:"status" json:"status"`
	ExpiresAt   int64          `bson:"expiresAt" json:"expiresAt"`
	CancelledAt int64          `bson:"cancelledAt,omitempty" json:"cancelledAt,omitempty"`
	CreatedAt   time.Time      `bson:"createdAt" json:"createdAt"`
}

// IsCancelled reports whether the session is in any cancelled state.
func (s *Session) IsCancelled() bool {
	switch s.Status {
	case SessionStatusCancelledByDoctor, SessionStatusCancelledByPatient, SessionStatusCancelledDueToTimeout:
		return true
	}
	return false
}

// SessionDetail is the read-side projection of a session joined with its
// period (and, on the doctor view, the patient).
type SessionDetail struct {
	Session `bson:",inline"`
	Period  Period         `bson:"period" json:"period"`
	Patient *PatientPublic `bson:"patient,omitempty" json:"patient,omitempty"`
}
