package models

import (
	"time"

	"github.com/google/uuid"
)

// SoundEngineer holds the engineer → studio dependency pulled out of the
// legacy recording rows during the Boyce-Codd decomposition: each engineer
// works at exactly one studio, but an engineer is not a key of a recording.
type SoundEngineer struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"` // unique
	Studio string    `json:"studio"`
}

func (e *SoundEngineer) Prepare() {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
}

type Recording struct {
	ID         uuid.UUID `json:"id"`
	SongID     uuid.UUID `json:"song_id"`
	EngineerID uuid.UUID `json:"engineer_id"`
	RecordedOn time.Time `json:"recorded_on"`

	// Populated on joined reads.
	SongTitle    string `json:"song_title,omitempty"`
	EngineerName string `json:"engineer_name,omitempty"`
	Studio       string `json:"studio,omitempty"`
}

func (r *Recording) Prepare() {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
}
