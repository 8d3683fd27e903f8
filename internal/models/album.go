package models

import (
	"time"

	"github.com/google/uuid"
)

type Album struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	PerformerID uuid.UUID  `json:"performer_id"`
	FormatID    uuid.UUID  `json:"format_id"`
	ReleasedOn  *time.Time `json:"released_on,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`

	// Populated on joined reads.
	PerformerName string `json:"performer_name,omitempty"`
	FormatCode    string `json:"format_code,omitempty"`
	FormatName    string `json:"format_name,omitempty"`
}

func (a *Album) Prepare() {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
}

// Format describes how an album is distributed. It is the third-normal-form
// decomposition target: format code determined name and medium transitively
// inside the legacy album rows.
type Format struct {
	ID     uuid.UUID `json:"id"`
	Code   string    `json:"code"` // unique, e.g. CD, VIN, DIG, STR
	Name   string    `json:"name"`
	Medium string    `json:"medium"` // 'physical' or 'digital'
}

func (f *Format) Prepare() {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
}
