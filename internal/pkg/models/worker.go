package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Worker represents a field technician belonging to a mechanic
// organization, assignable to an accepted request
type Worker struct {
	ID         uuid.UUID      `json:"worker_id" db:"id"`
	MechanicID uuid.UUID      `json:"mechanic_id" db:"mechanic_id"`
	Name       string         `json:"name" db:"name"`
	Phone      string         `json:"phone" db:"phone"`
	Skills     pq.StringArray `json:"skills" db:"skills"`
	Available  bool           `json:"available" db:"available"`
	CreatedAt  time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at" db:"updated_at"`
}
