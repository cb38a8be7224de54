package space

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrEmptyName          = errors.New("space name cannot be empty")
	ErrNegativeHourlyRate = errors.New("hourly rate cannot be negative")
)

// Space is the bookable physical resource (a hall or room) within a venue.
type Space struct {
	id              uuid.UUID
	venueID         uuid.UUID
	name            string
	hourlyRateCents int64
	isActive        bool
}

func NewSpace(id, venueID uuid.UUID, name string, hourlyRateCents int64, isActive bool) (*Space, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if hourlyRateCents < 0 {
		return nil, ErrNegativeHourlyRate
	}
	return &Space{
		id:              id,
		venueID:         venueID,
		name:            name,
		hourlyRateCents: hourlyRateCents,
		isActive:        isActive,
	}, nil
}

func (s *Space) ID() uuid.UUID          { return s.id }
func (s *Space) VenueID() uuid.UUID     { return s.venueID }
func (s *Space) Name() string           { return s.name }
func (s *Space) HourlyRateCents() int64 { return s.hourlyRateCents }
func (s *Space) IsActive() bool         { return s.isActive }
