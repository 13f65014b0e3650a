package postgres

import (
	"context"

	"presskit/internal/domain/entity"
	domainerrors "presskit/internal/domain/errors"
	"presskit/internal/domain/repository"
	"presskit/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// contentRepository implements the domain.ContentRepository interface.
type contentRepository struct {
	db *gorm.DB
}

// NewContentRepository is the constructor for contentRepository.
func NewContentRepository(db *gorm.DB) repository.ContentRepository {
	return &contentRepository{db: db}
}

// listOrder sorts collections by display position, ties broken by insertion order.
func listOrder(db *gorm.DB) *gorm.DB {
	return db.Order(clause.OrderByColumn{Column: clause.Column{Name: "order"}}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}})
}

// --- Bio ---

// GetBio retrieves the biography singleton.
func (repo *contentRepository) GetBio(ctx context.Context) (*entity.Bio, error) {
	var bioM model.BioModel
	if err := repo.db.WithContext(ctx).First(&bioM, entity.SingletonID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBioNotFound
		}

		return nil, errors.Wrap(err, "failed to get bio")
	}

	return toBioDomain(&bioM), nil
}

// UpsertBio creates the biography singleton on first save and replaces it afterwards.
func (repo *contentRepository) UpsertBio(ctx context.Context, bio *entity.Bio) error {
	bioM := fromBioDomain(bio)
	bioM.ID = entity.SingletonID

	err := repo.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"short_text", "long_text", "hero_image_path", "updated_at"}),
	}).Create(bioM).Error
	if err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required bio fields")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert bio")
	}

	bio.ID = bioM.ID
	bio.CreatedAt = bioM.CreatedAt
	bio.UpdatedAt = bioM.UpdatedAt

	return nil
}

// --- Visuals ---

// ListVisuals retrieves every gallery entry in display order.
func (repo *contentRepository) ListVisuals(ctx context.Context) ([]*entity.Visual, error) {
	var visualModels []*model.VisualModel
	if err := listOrder(repo.db.WithContext(ctx)).Find(&visualModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list visuals")
	}

	visuals := make([]*entity.Visual, 0, len(visualModels))
	for _, visualM := range visualModels {
		visuals = append(visuals, toVisualDomain(visualM))
	}

	return visuals, nil
}

// DeleteVisuals removes the gallery entries with the given ids.
func (repo *contentRepository) DeleteVisuals(ctx context.Context, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}

	if err := repo.db.WithContext(ctx).Delete(&model.VisualModel{}, ids).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete visuals")
	}

	return nil
}

// UpsertVisual creates the entry when its ID is zero and updates it in place otherwise.
func (repo *contentRepository) UpsertVisual(ctx context.Context, visual *entity.Visual) error {
	visualM := fromVisualDomain(visual)

	var err error
	if visualM.ID == 0 {
		err = repo.db.WithContext(ctx).Create(visualM).Error
	} else {
		err = repo.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"title", "description", "image_path", "order", "updated_at"}),
		}).Create(visualM).Error
	}
	if err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required visual fields")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert visual")
	}

	visual.ID = visualM.ID
	visual.CreatedAt = visualM.CreatedAt
	visual.UpdatedAt = visualM.UpdatedAt

	return nil
}

// --- Live sets ---

// ListLiveSets retrieves every live set in display order.
func (repo *contentRepository) ListLiveSets(ctx context.Context) ([]*entity.LiveSet, error) {
	var setModels []*model.LiveSetModel
	if err := listOrder(repo.db.WithContext(ctx)).Find(&setModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list live sets")
	}

	sets := make([]*entity.LiveSet, 0, len(setModels))
	for _, setM := range setModels {
		sets = append(sets, toLiveSetDomain(setM))
	}

	return sets, nil
}

// DeleteLiveSets removes the live sets with the given ids.
func (repo *contentRepository) DeleteLiveSets(ctx context.Context, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}

	if err := repo.db.WithContext(ctx).Delete(&model.LiveSetModel{}, ids).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete live sets")
	}

	return nil
}

// UpsertLiveSet creates the entry when its ID is zero and updates it in place otherwise.
func (repo *contentRepository) UpsertLiveSet(ctx context.Context, set *entity.LiveSet) error {
	setM := fromLiveSetDomain(set)

	var err error
	if setM.ID == 0 {
		err = repo.db.WithContext(ctx).Create(setM).Error
	} else {
		err = repo.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"title", "description", "embed_url", "platform", "order", "updated_at"}),
		}).Create(setM).Error
	}
	if err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required live set fields")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert live set")
	}

	set.ID = setM.ID
	set.CreatedAt = setM.CreatedAt
	set.UpdatedAt = setM.UpdatedAt

	return nil
}

// --- Collaborations ---

// ListCollaborations retrieves every collaboration in display order.
func (repo *contentRepository) ListCollaborations(ctx context.Context) ([]*entity.Collaboration, error) {
	var collaborationModels []*model.CollaborationModel
	if err := listOrder(repo.db.WithContext(ctx)).Find(&collaborationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list collaborations")
	}

	collaborations := make([]*entity.Collaboration, 0, len(collaborationModels))
	for _, collaborationM := range collaborationModels {
		collaborations = append(collaborations, toCollaborationDomain(collaborationM))
	}

	return collaborations, nil
}

// DeleteCollaborations removes the collaborations with the given ids.
func (repo *contentRepository) DeleteCollaborations(ctx context.Context, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}

	if err := repo.db.WithContext(ctx).Delete(&model.CollaborationModel{}, ids).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete collaborations")
	}

	return nil
}

// UpsertCollaboration creates the entry when its ID is zero and updates it in place otherwise.
func (repo *contentRepository) UpsertCollaboration(ctx context.Context, collaboration *entity.Collaboration) error {
	collaborationM := fromCollaborationDomain(collaboration)

	var err error
	if collaborationM.ID == 0 {
		err = repo.db.WithContext(ctx).Create(collaborationM).Error
	} else {
		err = repo.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "role", "year", "link", "order", "updated_at"}),
		}).Create(collaborationM).Error
	}
	if err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required collaboration fields")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert collaboration")
	}

	collaboration.ID = collaborationM.ID
	collaboration.CreatedAt = collaborationM.CreatedAt
	collaboration.UpdatedAt = collaborationM.UpdatedAt

	return nil
}

// --- Influences ---

// ListInfluences retrieves every influence in display order.
func (repo *contentRepository) ListInfluences(ctx context.Context) ([]*entity.Influence, error) {
	var influenceModels []*model.InfluenceModel
	if err := listOrder(repo.db.WithContext(ctx)).Find(&influenceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list influences")
	}

	influences := make([]*entity.Influence, 0, len(influenceModels))
	for _, influenceM := range influenceModels {
		influences = append(influences, toInfluenceDomain(influenceM))
	}

	return influences, nil
}

// DeleteInfluences removes the influences with the given ids.
func (repo *contentRepository) DeleteInfluences(ctx context.Context, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}

	if err := repo.db.WithContext(ctx).Delete(&model.InfluenceModel{}, ids).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete influences")
	}

	return nil
}

// UpsertInfluence creates the entry when its ID is zero and updates it in place otherwise.
func (repo *contentRepository) UpsertInfluence(ctx context.Context, influence *entity.Influence) error {
	influenceM := fromInfluenceDomain(influence)

	var err error
	if influenceM.ID == 0 {
		err = repo.db.WithContext(ctx).Create(influenceM).Error
	} else {
		err = repo.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "genre", "note", "order", "updated_at"}),
		}).Create(influenceM).Error
	}
	if err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required influence fields")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert influence")
	}

	influence.ID = influenceM.ID
	influence.CreatedAt = influenceM.CreatedAt
	influence.UpdatedAt = influenceM.UpdatedAt

	return nil
}

// --- Contact ---

// GetContact retrieves the contact-info singleton.
func (repo *contentRepository) GetContact(ctx context.Context) (*entity.Contact, error) {
	var contactM model.ContactModel
	if err := repo.db.WithContext(ctx).First(&contactM, entity.SingletonID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrContactNotFound
		}

		return nil, errors.Wrap(err, "failed to get contact")
	}

	return toContactDomain(&contactM), nil
}

// UpsertContact creates the contact singleton on first save and replaces it afterwards.
func (repo *contentRepository) UpsertContact(ctx context.Context, contact *entity.Contact) error {
	contactM := fromContactDomain(contact)
	contactM.ID = entity.SingletonID

	err := repo.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"whatsapp_number", "whatsapp_message", "instagram", "spotify",
			"youtube", "soundcloud", "email", "location", "updated_at",
		}),
	}).Create(contactM).Error
	if err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required contact fields")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert contact")
	}

	contact.ID = contactM.ID
	contact.CreatedAt = contactM.CreatedAt
	contact.UpdatedAt = contactM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

func toBioDomain(data *model.BioModel) *entity.Bio {
	if data == nil {
		return nil
	}

	return &entity.Bio{
		ID:            data.ID,
		ShortText:     data.ShortText,
		LongText:      data.LongText,
		HeroImagePath: data.HeroImagePath,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func fromBioDomain(data *entity.Bio) *model.BioModel {
	if data == nil {
		return nil
	}

	return &model.BioModel{
		ID:            data.ID,
		ShortText:     data.ShortText,
		LongText:      data.LongText,
		HeroImagePath: data.HeroImagePath,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func toVisualDomain(data *model.VisualModel) *entity.Visual {
	if data == nil {
		return nil
	}

	return &entity.Visual{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		ImagePath:   data.ImagePath,
		Order:       data.Order,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromVisualDomain(data *entity.Visual) *model.VisualModel {
	if data == nil {
		return nil
	}

	return &model.VisualModel{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		ImagePath:   data.ImagePath,
		Order:       data.Order,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func toLiveSetDomain(data *model.LiveSetModel) *entity.LiveSet {
	if data == nil {
		return nil
	}

	platform := entity.Platform(data.Platform)
	if !platform.IsValid() {
		platform = entity.PlatformYoutube
	}

	return &entity.LiveSet{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		EmbedURL:    data.EmbedURL,
		Platform:    platform,
		Order:       data.Order,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromLiveSetDomain(data *entity.LiveSet) *model.LiveSetModel {
	if data == nil {
		return nil
	}

	return &model.LiveSetModel{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		EmbedURL:    data.EmbedURL,
		Platform:    data.Platform.String(),
		Order:       data.Order,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func toCollaborationDomain(data *model.CollaborationModel) *entity.Collaboration {
	if data == nil {
		return nil
	}

	return &entity.Collaboration{
		ID:        data.ID,
		Name:      data.Name,
		Role:      data.Role,
		Year:      data.Year,
		Link:      data.Link,
		Order:     data.Order,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromCollaborationDomain(data *entity.Collaboration) *model.CollaborationModel {
	if data == nil {
		return nil
	}

	return &model.CollaborationModel{
		ID:        data.ID,
		Name:      data.Name,
		Role:      data.Role,
		Year:      data.Year,
		Link:      data.Link,
		Order:     data.Order,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toInfluenceDomain(data *model.InfluenceModel) *entity.Influence {
	if data == nil {
		return nil
	}

	return &entity.Influence{
		ID:        data.ID,
		Name:      data.Name,
		Genre:     data.Genre,
		Note:      data.Note,
		Order:     data.Order,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromInfluenceDomain(data *entity.Influence) *model.InfluenceModel {
	if data == nil {
		return nil
	}

	return &model.InfluenceModel{
		ID:        data.ID,
		Name:      data.Name,
		Genre:     data.Genre,
		Note:      data.Note,
		Order:     data.Order,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toContactDomain(data *model.ContactModel) *entity.Contact {
	if data == nil {
		return nil
	}

	return &entity.Contact{
		ID:              data.ID,
		WhatsappNumber:  data.WhatsappNumber,
		WhatsappMessage: data.WhatsappMessage,
		Instagram:       data.Instagram,
		Spotify:         data.Spotify,
		Youtube:         data.Youtube,
		Soundcloud:      data.Soundcloud,
		Email:           data.Email,
		Location:        data.Location,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func fromContactDomain(data *entity.Contact) *model.ContactModel {
	if data == nil {
		return nil
	}

	return &model.ContactModel{
		ID:              data.ID,
		WhatsappNumber:  data.WhatsappNumber,
		WhatsappMessage: data.WhatsappMessage,
		Instagram:       data.Instagram,
		Spotify:         data.Spotify,
		Youtube:         data.Youtube,
		Soundcloud:      data.Soundcloud,
		Email:           data.Email,
		Location:        data.Location,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
