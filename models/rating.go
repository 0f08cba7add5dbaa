package models

import "time"

// Rating is a patient's score for a completed session. At most one
// non-deleted rating exists per (session, patient) pair.
type Rating struct {
	ID        string    `bson:"id" json:"id"`
	SessionID string    `bson:"sessionId" json:"sessionId"`
	PatientID string    `bson:"patientId" json:"patientId"`
	DoctorID  string    `bson:"doctorId" json:"doctorId"`
	Rating    int       `bson:"rating" json:"rating"` // 1..5
	Message   string    `bson:"message,omitempty" json:"message,omitempty"`
	IsDeleted bool      `bson:"isDeleted" json:"-"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// CreateRatingRequest is the payload for rating a session.
type CreateRatingRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Message string `json:"message"`
}

// UpdateRatingRequest is the payload for editing a rating. Nil fields are
// left untouched.
type UpdateRatingRequest struct {
	Rating  *int    `json:"rating" binding:"omitempty,min=1,max=5"`
	Message *string `json:"message"`
}
