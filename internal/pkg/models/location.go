package models

import "time"

// Location represents a geographic position reported by a client
type Location struct {
	Latitude  float64   `json:"latitude" db:"latitude"`
	Longitude float64   `json:"longitude" db:"longitude"`
	Timestamp time.Time `json:"timestamp,omitempty"`
}

// Now returns the current time; kept as a helper so model code does not
// import time at every call site
func Now() time.Time {
	return time.Now()
}
