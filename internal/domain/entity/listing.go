package entity

import (
	"time"

	"github.com/google/uuid"
)

// Listing is an immutable snapshot of a rental listing scraped from a source
// feed. Optional numeric fields are pointers: nil means the source post did
// not state the value, which the scoring engine treats differently from zero.
type Listing struct {
	ID             uuid.UUID  `json:"id"`              // The Global Unique Identifier (GUID) for the listing.
	SourcePostID   string     `json:"source_post_id"`  // Identifier of the original post in the source feed.
	FullAddress    string     `json:"full_address"`    // The full address as written in the post.
	Street         string     `json:"street"`          // Street name, if extracted.
	StreetNumber   string     `json:"street_number"`   // Street number, if extracted.
	City           string     `json:"city"`            // City name as written in the post.
	PostalCode     string     `json:"postal_code"`     // Postal code as written in the post.
	Neighborhood   string     `json:"neighborhood"`    // Neighborhood as written in the post.
	Rooms          *float64   `json:"rooms"`           // Room count (Swiss half-rooms are common, e.g. 3.5).
	Bedrooms       *int       `json:"bedrooms"`        // Bedroom count, if stated.
	SurfaceM2      *float64   `json:"surface_m2"`      // Living surface in square meters.
	DwellingType   string     `json:"dwelling_type"`   // Free-text dwelling type ("Appartement", "Studio", ...).
	Floor          *int       `json:"floor"`           // Floor number, if stated.
	TopFloor       bool       `json:"top_floor"`       // Whether the dwelling is on the top floor.
	Balcony        bool       `json:"balcony"`         // Whether the dwelling has a balcony.
	Terrace        bool       `json:"terrace"`         // Whether the dwelling has a terrace.
	Furnished      bool       `json:"furnished"`       // Whether the dwelling is furnished.
	ParkingIncluded bool      `json:"parking_included"` // Whether a parking spot is included in the rent.
	MonthlyRent    *int       `json:"monthly_rent"`    // Net monthly rent in CHF.
	TotalRent      *int       `json:"total_rent"`      // Total monthly rent in CHF, charges included.
	AvailableFrom  *time.Time `json:"available_from"`  // Availability date, if stated.
	Urgent         bool       `json:"urgent"`          // Whether the post signals urgency.
	ImagePath      string     `json:"image_path"`      // Optional reference to the post's stored image.
	CreatedAt      time.Time  `json:"created_at"`      // Timestamp of when the listing was ingested.
}
