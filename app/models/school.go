package models

import "time"

// School belongs to exactly one zone. Code is generated from the zone name
// and is unique across all zones.
type School struct {
	ID        string    `json:"id" validate:"required,uuid"`
	Code      string    `json:"code" validate:"required"`
	Name      string    `json:"name" validate:"required"`
	ZoneID    string    `json:"zone_id" validate:"required,uuid"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Zone      *Zone     `json:"zone,omitempty"`
}
