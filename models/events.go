package models

// Refund directions carried on a refund-initiation event.
const (
	RefundDirectionDoctor  = "doctor"
	RefundDirectionPatient = "patient"
)

// InitiateRefundEvent is published to the payment subsystem after a paid
// session is cancelled. Consumers dedupe by SessionID.
type InitiateRefundEvent struct {
	SessionID       string `json:"sessionId"`
	PatientID       string `json:"patientId"`
	DoctorID        string `json:"doctorId"`
	RefundDirection string `json:"refundDirection"`
}
