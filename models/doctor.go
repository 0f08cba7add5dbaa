package models

import "time"

// Doctor is a provider profile owning bookable periods.
type Doctor struct {
	ID                     string    `bson:"id" json:"id"`
	UserID                 string    `bson:"userId" json:"userId"`
	Slug                   string    `bson:"slug" json:"slug"`
	Name                   string    `bson:"name" json:"name"`
	SpecialtyID            string    `bson:"specialtyId,omitempty" json:"specialtyId,omitempty"`
	Expertises             []string  `bson:"expertises,omitempty" json:"expertises,omitempty"`
	ConsultationFeePerHour float64   `bson:"consultationFeePerHour" json:"consultationFeePerHour"`
	DontBookMeBeforeInMins int       `bson:"dontBookMeBeforeInMins" json:"dontBookMeBeforeInMins"` // minimum booking lead time
	Timezone               string    `bson:"timezone" json:"timezone"`                             // IANA name, e.g. "Africa/Douala"
	AverageRating          float64   `bson:"averageRating" json:"averageRating"`                   // derived, 1 decimal
	IsVerified             bool      `bson:"isVerified" json:"isVerified"`
	IsActive               bool      `bson:"isActive" json:"isActive"`
	IsVisible              bool      `bson:"isVisible" json:"isVisible"`
	IsDeleted              bool      `bson:"isDeleted" json:"-"`
	CreatedAt              time.Time `bson:"createdAt" json:"createdAt"`
}

// DoctorFilter carries the optional filters for the public doctor listing.
type DoctorFilter struct {
	Name               string   `form:"name"`
	SpecialtyID        string   `form:"specialtyId"`
	Expertises         []string `form:"expertises"`
	IsVerified         *bool    `form:"isVerified"`
	MinConsultationFee *float64 `form:"minConsultationFee"`
	MaxConsultationFee *float64 `form:"maxConsultationFee"`
}
