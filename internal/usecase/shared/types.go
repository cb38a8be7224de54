package shared

import (
	"time"

	"github.com/google/uuid"
)

type SpaceSnapshot struct {
	ID              uuid.UUID
	VenueID         uuid.UUID
	Name            string
	HourlyRateCents int64
	IsActive        bool
}

type CatalogItemSnapshot struct {
	ID                 uuid.UUID
	Name               string
	UnitPriceCents     int64
	IncludedHours      int32
	ExtraHourRateCents int64
	DefaultVendorID    *uuid.UUID
}

type IdempotencyRecord struct {
	Key             uuid.UUID
	UserID          uuid.UUID
	Status          string
	RequestHash     string
	ResultBookingID *uuid.UUID
	ExpiresAt       time.Time
}
