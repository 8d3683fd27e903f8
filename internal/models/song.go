package models

import (
	"time"

	"github.com/google/uuid"
)

type Song struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	DurationSeconds *int      `json:"duration_seconds,omitempty"`
	CreatedAt       time.Time `json:"created_at"`

	// Languages the song is performed in, via the song_languages association.
	Languages []Language `json:"languages,omitempty"`
}

func (s *Song) Prepare() {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
}

// Language is a lookup extracted during first-normal-form decomposition;
// songs relate to languages through song_languages (composite primary key).
type Language struct {
	ID   uuid.UUID `json:"id"`
	Code string    `json:"code"` // ISO 639-1, unique
	Name string    `json:"name"`
}

func (l *Language) Prepare() {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
}
