// Package usecase defines the application's business interfaces and their
// input/output shapes, decoupled from delivery and persistence.
package usecase

import (
	"context"

	"presskit/internal/domain/entity"
)

// UpdateContentInput is the admin panel's save payload. A nil singleton or
// nil collection means "leave it untouched"; a present collection replaces
// the persisted rows authoritatively (rows omitted from it are deleted).
// JSON decoding preserves the distinction: an omitted key yields a nil
// slice, an explicit empty array a non-nil one.
type UpdateContentInput struct {
	Bio            *BioInput            `json:"bio" validate:"omitempty"`
	Visuals        []VisualInput        `json:"visuals" validate:"omitempty,dive"`
	Sets           []LiveSetInput       `json:"sets" validate:"omitempty,dive"`
	Collaborations []CollaborationInput `json:"collaborations" validate:"omitempty,dive"`
	Influences     []InfluenceInput     `json:"influences" validate:"omitempty,dive"`
	Contact        *ContactInput        `json:"contact" validate:"omitempty"`
}

// BioInput carries the biography singleton fields.
type BioInput struct {
	ShortText     string  `json:"shortText" validate:"required"`
	LongText      string  `json:"longText" validate:"required"`
	HeroImagePath *string `json:"heroImagePath"`
}

// VisualInput carries one gallery item. A zero ID means "new row".
type VisualInput struct {
	ID          uint    `json:"id"`
	Title       string  `json:"title" validate:"required"`
	Description *string `json:"description"`
	ImagePath   string  `json:"imagePath" validate:"required"`
	Order       *int    `json:"order"`
}

// LiveSetInput carries one embedded live set. A zero ID means "new row".
type LiveSetInput struct {
	ID          uint    `json:"id"`
	Title       string  `json:"title" validate:"required"`
	Description *string `json:"description"`
	EmbedURL    string  `json:"embedUrl" validate:"required,url"`
	Platform    string  `json:"platform" validate:"omitempty,oneof=youtube vimeo"`
	Order       *int    `json:"order"`
}

// CollaborationInput carries one collaboration entry. A zero ID means "new row".
type CollaborationInput struct {
	ID    uint    `json:"id"`
	Name  string  `json:"name" validate:"required"`
	Role  *string `json:"role"`
	Year  *int    `json:"year"`
	Link  *string `json:"link" validate:"omitempty,url"`
	Order *int    `json:"order"`
}

// InfluenceInput carries one influence entry. A zero ID means "new row".
type InfluenceInput struct {
	ID    uint    `json:"id"`
	Name  string  `json:"name" validate:"required"`
	Genre *string `json:"genre"`
	Note  *string `json:"note"`
	Order *int    `json:"order"`
}

// ContactInput carries the contact singleton fields.
type ContactInput struct {
	WhatsappNumber  string  `json:"whatsappNumber" validate:"required,min=5"`
	WhatsappMessage *string `json:"whatsappMessage"`
	Instagram       *string `json:"instagram" validate:"omitempty,url"`
	Spotify         *string `json:"spotify" validate:"omitempty,url"`
	Youtube         *string `json:"youtube" validate:"omitempty,url"`
	Soundcloud      *string `json:"soundcloud" validate:"omitempty,url"`
	Email           *string `json:"email" validate:"omitempty,email"`
	Location        *string `json:"location"`
}

// ContentUsecase synchronizes admin-submitted content with the store and
// serves consistent read snapshots.
type ContentUsecase interface {
	// GetContent returns the published content: singletons-or-nil plus every
	// collection sorted by (order, id).
	GetContent(ctx context.Context) (*entity.ContentSnapshot, error)

	// UpdateContent validates the payload and reconciles every present
	// sub-entity inside one transaction. On a schema violation it returns a
	// *domainerrors.ValidationError without touching the store; any failure
	// mid-transaction rolls everything back.
	UpdateContent(ctx context.Context, input *UpdateContentInput) error
}
