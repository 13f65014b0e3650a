// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"presskit/internal/domain/entity"
)

// ErrBioNotFound is returned when the bio singleton has never been saved.
var ErrBioNotFound = errors.New("bio not found")

// ErrContactNotFound is returned when the contact singleton has never been saved.
var ErrContactNotFound = errors.New("contact not found")

// ContentRepository is the single write path to the published content tables.
// List methods return rows sorted by (order ascending, id ascending).
// Upsert methods create the row when its ID is zero (assigning a fresh id to
// the passed entity) and update it in place otherwise.
// Delete methods accept an explicit id set and are no-ops when it is empty.
type ContentRepository interface {
	GetBio(ctx context.Context) (*entity.Bio, error)
	UpsertBio(ctx context.Context, bio *entity.Bio) error

	ListVisuals(ctx context.Context) ([]*entity.Visual, error)
	DeleteVisuals(ctx context.Context, ids []uint) error
	UpsertVisual(ctx context.Context, visual *entity.Visual) error

	ListLiveSets(ctx context.Context) ([]*entity.LiveSet, error)
	DeleteLiveSets(ctx context.Context, ids []uint) error
	UpsertLiveSet(ctx context.Context, set *entity.LiveSet) error

	ListCollaborations(ctx context.Context) ([]*entity.Collaboration, error)
	DeleteCollaborations(ctx context.Context, ids []uint) error
	UpsertCollaboration(ctx context.Context, collaboration *entity.Collaboration) error

	ListInfluences(ctx context.Context) ([]*entity.Influence, error)
	DeleteInfluences(ctx context.Context, ids []uint) error
	UpsertInfluence(ctx context.Context, influence *entity.Influence) error

	GetContact(ctx context.Context) (*entity.Contact, error)
	UpsertContact(ctx context.Context, contact *entity.Contact) error
}
