package models

import "time"

// User roles recognized by the auth middleware.
const (
	RoleDoctor  = "doctor"
	RolePatient = "patient"
	RoleAdmin   = "admin"
)

// User is the account record behind a doctor or patient profile.
type User struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Role      string    `bson:"role" json:"role"`
	IsDeleted bool      `bson:"isDeleted" json:"-"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
