package models

import (
	"github.com/google/uuid"
)

// Country is a lookup table extracted during first-normal-form decomposition:
// country names used to live as free text inside the performer rows.
type Country struct {
	ID   uuid.UUID `json:"id"`
	Code string    `json:"code"` // ISO 3166-1 alpha-2, unique
	Name string    `json:"name"`
}

func (c *Country) Prepare() {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
}
