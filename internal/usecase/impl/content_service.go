// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "presskit/internal/delivery/context"
	"presskit/internal/domain/entity"
	domainerrors "presskit/internal/domain/errors"
	"presskit/internal/domain/repository"
	"presskit/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// contentService implements the ContentUsecase interface. It owns the only
// write path to the published content tables.
type contentService struct {
	txManager   repository.TransactionManager
	contentRepo repository.ContentRepository
	logger      *slog.Logger
}

// ContentServiceParams holds dependencies for ContentService, injected by Fx.
type ContentServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ContentRepo repository.ContentRepository
	Logger      *slog.Logger
}

// NewContentService is the constructor for contentService.
func NewContentService(params ContentServiceParams) usecase.ContentUsecase {
	return &contentService{
		txManager:   params.TxManager,
		contentRepo: params.ContentRepo,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *contentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetContent returns a read-only snapshot of all published content.
// Reads are plain repository calls: the store's read-committed isolation
// already guarantees a caller never observes a half-written collection.
func (srv *contentService) GetContent(ctx context.Context) (*entity.ContentSnapshot, error) {
	snapshot := &entity.ContentSnapshot{}

	bio, err := srv.contentRepo.GetBio(ctx)
	if err != nil && !errors.Is(err, repository.ErrBioNotFound) {
		return nil, errors.Wrap(err, "failed to read bio")
	}
	snapshot.Bio = bio

	if snapshot.Visuals, err = srv.contentRepo.ListVisuals(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to list visuals")
	}
	if snapshot.Sets, err = srv.contentRepo.ListLiveSets(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to list live sets")
	}
	if snapshot.Collaborations, err = srv.contentRepo.ListCollaborations(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to list collaborations")
	}
	if snapshot.Influences, err = srv.contentRepo.ListInfluences(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to list influences")
	}

	contact, err := srv.contentRepo.GetContact(ctx)
	if err != nil && !errors.Is(err, repository.ErrContactNotFound) {
		return nil, errors.Wrap(err, "failed to read contact")
	}
	snapshot.Contact = contact

	return snapshot, nil
}

// UpdateContent validates the payload and reconciles every present
// sub-entity against the store inside a single transaction. Collections
// absent from the payload are left untouched; present collections replace
// their persisted rows authoritatively.
func (srv *contentService) UpdateContent(ctx context.Context, input *usecase.UpdateContentInput) error {
	if input == nil {
		return domainerrors.NewValidationError([]domainerrors.FieldViolation{
			{Field: "", Message: "payload is required"},
		})
	}

	if err := validateContentInput(input); err != nil {
		srv.log(ctx).Warn("Content payload rejected", slog.String("violations", err.Details()))

		return err
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.ContentRepo()

		if input.Bio != nil {
			if err := repo.UpsertBio(ctx, bioFromInput(input.Bio)); err != nil {
				return errors.Wrap(err, "failed to upsert bio")
			}
		}
		if input.Visuals != nil {
			if err := srv.reconcileVisuals(ctx, repo, input.Visuals); err != nil {
				return err
			}
		}
		if input.Sets != nil {
			if err := srv.reconcileLiveSets(ctx, repo, input.Sets); err != nil {
				return err
			}
		}
		if input.Collaborations != nil {
			if err := srv.reconcileCollaborations(ctx, repo, input.Collaborations); err != nil {
				return err
			}
		}
		if input.Influences != nil {
			if err := srv.reconcileInfluences(ctx, repo, input.Influences); err != nil {
				return err
			}
		}
		if input.Contact != nil {
			if err := repo.UpsertContact(ctx, contactFromInput(input.Contact)); err != nil {
				return errors.Wrap(err, "failed to upsert contact")
			}
		}

		return nil
	})

	if err != nil {
		// Storage detail stays in the logs; callers get an opaque failure
		// and the guarantee that nothing was written.
		srv.log(ctx).Error("Failed to execute content update transaction", slog.Any("error", err))

		return errors.Wrap(domainerrors.ErrTransactionFailed, "content update rolled back")
	}

	srv.log(ctx).Debug("Content updated")

	return nil
}

// reconcileVisuals replaces the visuals collection with the incoming list:
// persisted rows absent from the payload's id set are deleted, rows carrying
// an id are updated in place, rows without one are created.
func (srv *contentService) reconcileVisuals(ctx context.Context, repo repository.ContentRepository, items []usecase.VisualInput) error {
	existing, err := repo.ListVisuals(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to list visuals for reconciliation")
	}

	keep := make(map[uint]struct{}, len(items))
	for _, item := range items {
		if item.ID != 0 {
			keep[item.ID] = struct{}{}
		}
	}

	existingIDs := make([]uint, 0, len(existing))
	for _, row := range existing {
		existingIDs = append(existingIDs, row.ID)
	}

	if stale := staleIDs(existingIDs, keep); len(stale) > 0 {
		if err := repo.DeleteVisuals(ctx, stale); err != nil {
			return errors.Wrap(err, "failed to delete stale visuals")
		}
	}

	for idx, item := range items {
		visual := &entity.Visual{
			ID:          item.ID,
			Title:       item.Title,
			Description: item.Description,
			ImagePath:   item.ImagePath,
			Order:       orderOrPosition(item.Order, idx),
		}
		if err := repo.UpsertVisual(ctx, visual); err != nil {
			return errors.Wrap(err, "failed to upsert visual")
		}
	}

	return nil
}

func (srv *contentService) reconcileLiveSets(ctx context.Context, repo repository.ContentRepository, items []usecase.LiveSetInput) error {
	existing, err := repo.ListLiveSets(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to list live sets for reconciliation")
	}

	keep := make(map[uint]struct{}, len(items))
	for _, item := range items {
		if item.ID != 0 {
			keep[item.ID] = struct{}{}
		}
	}

	existingIDs := make([]uint, 0, len(existing))
	for _, row := range existing {
		existingIDs = append(existingIDs, row.ID)
	}

	if stale := staleIDs(existingIDs, keep); len(stale) > 0 {
		if err := repo.DeleteLiveSets(ctx, stale); err != nil {
			return errors.Wrap(err, "failed to delete stale live sets")
		}
	}

	for idx, item := range items {
		platform := entity.Platform(item.Platform)
		if !platform.IsValid() {
			platform = entity.PlatformYoutube
		}

		set := &entity.LiveSet{
			ID:          item.ID,
			Title:       item.Title,
			Description: item.Description,
			EmbedURL:    item.EmbedURL,
			Platform:    platform,
			Order:       orderOrPosition(item.Order, idx),
		}
		if err := repo.UpsertLiveSet(ctx, set); err != nil {
			return errors.Wrap(err, "failed to upsert live set")
		}
	}

	return nil
}

func (srv *contentService) reconcileCollaborations(ctx context.Context, repo repository.ContentRepository, items []usecase.CollaborationInput) error {
	existing, err := repo.ListCollaborations(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to list collaborations for reconciliation")
	}

	keep := make(map[uint]struct{}, len(items))
	for _, item := range items {
		if item.ID != 0 {
			keep[item.ID] = struct{}{}
		}
	}

	existingIDs := make([]uint, 0, len(existing))
	for _, row := range existing {
		existingIDs = append(existingIDs, row.ID)
	}

	if stale := staleIDs(existingIDs, keep); len(stale) > 0 {
		if err := repo.DeleteCollaborations(ctx, stale); err != nil {
			return errors.Wrap(err, "failed to delete stale collaborations")
		}
	}

	for idx, item := range items {
		collaboration := &entity.Collaboration{
			ID:    item.ID,
			Name:  item.Name,
			Role:  item.Role,
			Year:  item.Year,
			Link:  item.Link,
			Order: orderOrPosition(item.Order, idx),
		}
		if err := repo.UpsertCollaboration(ctx, collaboration); err != nil {
			return errors.Wrap(err, "failed to upsert collaboration")
		}
	}

	return nil
}

func (srv *contentService) reconcileInfluences(ctx context.Context, repo repository.ContentRepository, items []usecase.InfluenceInput) error {
	existing, err := repo.ListInfluences(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to list influences for reconciliation")
	}

	keep := make(map[uint]struct{}, len(items))
	for _, item := range items {
		if item.ID != 0 {
			keep[item.ID] = struct{}{}
		}
	}

	existingIDs := make([]uint, 0, len(existing))
	for _, row := range existing {
		existingIDs = append(existingIDs, row.ID)
	}

	if stale := staleIDs(existingIDs, keep); len(stale) > 0 {
		if err := repo.DeleteInfluences(ctx, stale); err != nil {
			return errors.Wrap(err, "failed to delete stale influences")
		}
	}

	for idx, item := range items {
		influence := &entity.Influence{
			ID:    item.ID,
			Name:  item.Name,
			Genre: item.Genre,
			Note:  item.Note,
			Order: orderOrPosition(item.Order, idx),
		}
		if err := repo.UpsertInfluence(ctx, influence); err != nil {
			return errors.Wrap(err, "failed to upsert influence")
		}
	}

	return nil
}

// staleIDs returns the ids present in the store but absent from the payload's
// keep set: the delete half of the set difference.
func staleIDs(existing []uint, keep map[uint]struct{}) []uint {
	var stale []uint
	for _, id := range existing {
		if _, ok := keep[id]; !ok {
			stale = append(stale, id)
		}
	}

	return stale
}

// orderOrPosition defaults a missing order to the item's 1-based position in
// the incoming array. Previously stored order values are intentionally not
// consulted; see DESIGN.md.
func orderOrPosition(order *int, idx int) int {
	if order != nil {
		return *order
	}

	return idx + 1
}

func bioFromInput(input *usecase.BioInput) *entity.Bio {
	return &entity.Bio{
		ID:            entity.SingletonID,
		ShortText:     input.ShortText,
		LongText:      input.LongText,
		HeroImagePath: input.HeroImagePath,
	}
}

func contactFromInput(input *usecase.ContactInput) *entity.Contact {
	return &entity.Contact{
		ID:              entity.SingletonID,
		WhatsappNumber:  input.WhatsappNumber,
		WhatsappMessage: input.WhatsappMessage,
		Instagram:       input.Instagram,
		Spotify:         input.Spotify,
		Youtube:         input.Youtube,
		Soundcloud:      input.Soundcloud,
		Email:           input.Email,
		Location:        input.Location,
	}
}
