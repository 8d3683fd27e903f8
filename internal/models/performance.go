package models

import (
	"time"

	"github.com/google/uuid"
)

// Performance records a performer playing a song at a venue on a date.
// The pair (performer_id, song_id) carries a composite foreign key into
// performer_songs, so a performance can only reference a song the performer
// actually performs.
type Performance struct {
	ID          uuid.UUID `json:"id"`
	PerformerID uuid.UUID `json:"performer_id"`
	SongID      uuid.UUID `json:"song_id"`
	Venue       string    `json:"venue"`
	City        string    `json:"city"`
	PerformedOn time.Time `json:"performed_on"`

	// Populated on joined reads.
	PerformerName string `json:"performer_name,omitempty"`
	SongTitle     string `json:"song_title,omitempty"`
}

func (p *Performance) Prepare() {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
}
