package entities

import (
	"time"

	"github.com/google/uuid"
)

// Chart is a saved set of birth details from which kattams can be computed
// on demand.
type Chart struct {
	ID        uuid.UUID
	Name      string
	Place     string
	Latitude  float64
	Longitude float64
	BornAt    time.Time
	Timezone  string // IANA name, e.g. "Asia/Kolkata"
	Ayanamsa  string // ayanamsa system name, e.g. "lahiri"
	Language  string // preferred label language for this chart
	CreatedAt time.Time
	UpdatedAt time.Time
}
