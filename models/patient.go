package models

import "time"

// Patient is the booking-side profile linked to a user account.
type Patient struct {
	ID        string    `bson:"id" json:"id"`
	UserID    string    `bson:"userId" json:"userId"`
	Name      string    `bson:"name" json:"name"`
	IsDeleted bool      `bson:"isDeleted" json:"-"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// PatientPublic is the view of a patient a doctor sees on their own sessions.
type PatientPublic struct {
	ID   string `bson:"id" json:"id"`
	Name string `bson:"name" json:"name"`
}
