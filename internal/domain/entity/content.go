// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// SingletonID is the fixed row id shared by the Bio and Contact singletons.
const SingletonID uint = 1

// Bio is the artist biography singleton. It is created on the first admin
// save and upserted in place afterwards; it is never deleted.
type Bio struct {
	ID            uint      // Always SingletonID once persisted.
	ShortText     string    // One-paragraph teaser shown on the landing page.
	LongText      string    // Full biography text.
	HeroImagePath *string   // Optional path to the hero image, placed out-of-band.
	CreatedAt     time.Time // Timestamp of the first save.
	UpdatedAt     time.Time // Timestamp of the last save.
}

// Visual is one entry of the ordered gallery collection.
type Visual struct {
	ID          uint    // Store-assigned identifier, stable across updates.
	Title       string  // Display title, required.
	Description *string // Optional caption.
	ImagePath   string  // Path to the image asset.
	Order       int     // Display position; ties are broken by ascending ID.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// LiveSet is one embedded live recording.
type LiveSet struct {
	ID          uint
	Title       string
	Description *string
	EmbedURL    string   // Player URL on the hosting platform.
	Platform    Platform // youtube or vimeo, defaults to youtube.
	Order       int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Collaboration is one entry of the collaborations list.
type Collaboration struct {
	ID        uint
	Name      string  // Collaborator or project name, required.
	Role      *string // Optional role played in the collaboration.
	Year      *int    // Optional year of the collaboration.
	Link      *string // Optional external link.
	Order     int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Influence is one entry of the influences list.
type Influence struct {
	ID        uint
	Name      string  // Artist name, required.
	Genre     *string // Optional genre tag.
	Note      *string // Optional free-form note.
	Order     int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Contact is the contact-info singleton, upserted wholesale.
type Contact struct {
	ID              uint    // Always SingletonID once persisted.
	WhatsappNumber  string  // Required, the primary booking channel.
	WhatsappMessage *string // Optional prefilled message.
	Instagram       *string
	Spotify         *string
	Youtube         *string
	Soundcloud      *string
	Email           *string
	Location        *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ContentSnapshot is a consistent read-only view of all published content.
// Singletons are nil until first saved; collections are sorted by
// (Order ascending, ID ascending).
type ContentSnapshot struct {
	Bio            *Bio
	Visuals        []*Visual
	Sets           []*LiveSet
	Collaborations []*Collaboration
	Influences     []*Influence
	Contact        *Contact
}
