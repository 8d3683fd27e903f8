package models

import (
	"time"

	"github.com/google/uuid"
)

type Performer struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CountryID uuid.UUID `json:"country_id"`
	DebutYear *int      `json:"debut_year,omitempty"`
	CreatedAt time.Time `json:"created_at"`

	// Populated on joined reads, not stored on the performers table.
	CountryName string `json:"country_name,omitempty"`
}

func (p *Performer) Prepare() {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
}

// Discography is the read model for GET /performers/:id: the performer with
// the songs they perform and the albums they released.
type Discography struct {
	Performer Performer `json:"performer"`
	Songs     []Song    `json:"songs"`
	Albums    []Album   `json:"albums"`
}
