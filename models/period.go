package models

import "time"

// Period statuses. A period flips to Occupied when a session books it and
// back to Available when that session is cancelled or expires.
const (
	PeriodStatusAvailable = "Available"
	PeriodStatusOccupied  = "Occupied"
)

// Period is a doctor-defined bookable time slot. Start and end are epoch
// milliseconds; the interval is half-open [startTime, endTime).
type Period struct {
	ID        string    `bson:"id" json:"id"`
	DoctorID  string    `bson:"doctorId" json:"doctorId"`
	StartTime int64     `bson:"startTime" json:"startTime"`
	EndTime   int64     `bson:"endTime" json:"endTime"`
	Status    string    `bson:"status" json:"status"`
	IsDeleted bool      `bson:"isDeleted" json:"-"`
	DeletedAt int64     `bson:"deletedAt,omitempty" json:"-"`
	DeletedBy string    `bson:"deletedBy,omitempty" json:"-"`
	CreatedBy string    `bson:"createdBy" json:"createdBy"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// CreatePeriodRequest is the payload for creating a period.
type CreatePeriodRequest struct {
	StartTime int64 `json:"startTime" binding:"required"`
	EndTime   int64 `json:"endTime" binding:"required"`
}
