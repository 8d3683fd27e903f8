package models

import (
	"github.com/google/uuid"
)

type Platform struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"` // unique
}

func (p *Platform) Prepare() {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
}

// PlatformPromotion and CountryPromotion are the fourth-normal-form
// decomposition of the legacy promotion rows: which platforms a performer
// promotes on is independent of which countries they target, so the two
// facts live in separate tables instead of a cross product.
type PlatformPromotion struct {
	PerformerID uuid.UUID `json:"performer_id"`
	PlatformID  uuid.UUID `json:"platform_id"`
}

type CountryPromotion struct {
	PerformerID uuid.UUID `json:"performer_id"`
	CountryID   uuid.UUID `json:"country_id"`
}

// PlatformCountry is the third leg of the fifth-normal-form decomposition:
// together with the two promotion tables it reconstructs the ternary
// deal relation losslessly.
type PlatformCountry struct {
	PlatformID uuid.UUID `json:"platform_id"`
	CountryID  uuid.UUID `json:"country_id"`
}

// PromotionProfile is the read model for GET /performers/:id/promotions.
// Deals is derived, never stored: a deal exists exactly where the performer
// promotes on the platform, targets the country, and the platform operates
// there.
type PromotionProfile struct {
	PerformerID   uuid.UUID   `json:"performer_id"`
	PerformerName string      `json:"performer_name"`
	Platforms     []string    `json:"platforms"`
	Countries     []string    `json:"countries"`
	Deals         []PromoDeal `json:"deals"`
}

// PromoDeal is one row of the three-way join between the promotion tables
// and platform coverage.
type PromoDeal struct {
	PlatformName string `json:"platform_name"`
	CountryCode  string `json:"country_code"`
}
