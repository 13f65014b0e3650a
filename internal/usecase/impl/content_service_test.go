package impl

import (
	"context"
	"testing"

	"presskit/internal/domain/entity"
	domainerrors "presskit/internal/domain/errors"
	"presskit/internal/domain/repository"
	mockRepo "presskit/internal/mocks/repository"
	"presskit/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newContentService(txManager repository.TransactionManager, contentRepo repository.ContentRepository) usecase.ContentUsecase {
	return NewContentService(ContentServiceParams{
		TxManager:   txManager,
		ContentRepo: contentRepo,
		Logger:      newDiscardLogger(),
	})
}

// passthroughExecute makes the mocked transaction manager run the callback
// against the given factory, so reconciliation logic is exercised for real.
func passthroughExecute(t *testing.T, mockTx *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) {
	t.Helper()
	mockTx.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func TestContentService_GetContent_Empty(t *testing.T) {
	mockContent := mockRepo.NewMockContentRepository(t)
	service := newContentService(mockRepo.NewMockTransactionManager(t), mockContent)
	ctx := context.Background()

	mockContent.EXPECT().GetBio(ctx).Return(nil, repository.ErrBioNotFound)
	mockContent.EXPECT().ListVisuals(ctx).Return([]*entity.Visual{}, nil)
	mockContent.EXPECT().ListLiveSets(ctx).Return([]*entity.LiveSet{}, nil)
	mockContent.EXPECT().ListCollaborations(ctx).Return([]*entity.Collaboration{}, nil)
	mockContent.EXPECT().ListInfluences(ctx).Return([]*entity.Influence{}, nil)
	mockContent.EXPECT().GetContact(ctx).Return(nil, repository.ErrContactNotFound)

	snapshot, err := service.GetContent(ctx)
	require.NoError(t, err)
	require.NotNil(t, snapshot)
	assert.Nil(t, snapshot.Bio)
	assert.Nil(t, snapshot.Contact)
	assert.Empty(t, snapshot.Visuals)
	assert.Empty(t, snapshot.Sets)
}

func TestContentService_GetContent_Populated(t *testing.T) {
	mockContent := mockRepo.NewMockContentRepository(t)
	service := newContentService(mockRepo.NewMockTransactionManager(t), mockContent)
	ctx := context.Background()

	bio := &entity.Bio{ID: entity.SingletonID, ShortText: "short", LongText: "long"}
	visuals := []*entity.Visual{
		{ID: 1, Title: "first", ImagePath: "/img/1.jpg", Order: 1},
		{ID: 2, Title: "second", ImagePath: "/img/2.jpg", Order: 2},
	}
	contact := &entity.Contact{ID: entity.SingletonID, WhatsappNumber: "+5491112345678"}

	mockContent.EXPECT().GetBio(ctx).Return(bio, nil)
	mockContent.EXPECT().ListVisuals(ctx).Return(visuals, nil)
	mockContent.EXPECT().ListLiveSets(ctx).Return([]*entity.LiveSet{}, nil)
	mockContent.EXPECT().ListCollaborations(ctx).Return([]*entity.Collaboration{}, nil)
	mockContent.EXPECT().ListInfluences(ctx).Return([]*entity.Influence{}, nil)
	mockContent.EXPECT().GetContact(ctx).Return(contact, nil)

	snapshot, err := service.GetContent(ctx)
	require.NoError(t, err)
	assert.Equal(t, bio, snapshot.Bio)
	assert.Len(t, snapshot.Visuals, 2)
	assert.Equal(t, contact, snapshot.Contact)
}

func TestContentService_GetContent_ListError(t *testing.T) {
	mockContent := mockRepo.NewMockContentRepository(t)
	service := newContentService(mockRepo.NewMockTransactionManager(t), mockContent)
	ctx := context.Background()

	mockContent.EXPECT().GetBio(ctx).Return(nil, repository.ErrBioNotFound)
	mockContent.EXPECT().ListVisuals(ctx).Return(nil, errors.New("db error"))

	snapshot, err := service.GetContent(ctx)
	assert.Error(t, err)
	assert.Nil(t, snapshot)
}

func TestContentService_UpdateContent_NilPayload(t *testing.T) {
	service := newContentService(mockRepo.NewMockTransactionManager(t), mockRepo.NewMockContentRepository(t))

	err := service.UpdateContent(context.Background(), nil)

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestContentService_UpdateContent_ValidationFailureSkipsTransaction(t *testing.T) {
	// The transaction manager mock has no expectations: any Execute call
	// would fail the test.
	mockTx := mockRepo.NewMockTransactionManager(t)
	service := newContentService(mockTx, mockRepo.NewMockContentRepository(t))

	input := &usecase.UpdateContentInput{
		Sets: []usecase.LiveSetInput{
			{Title: "opening set", EmbedURL: "not-a-url"},
		},
	}

	err := service.UpdateContent(context.Background(), input)

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Len(t, validationErr.Violations, 1)
	assert.Equal(t, "sets[0].embedUrl", validationErr.Violations[0].Field)
}

func TestContentService_UpdateContent_ValidationAggregatesViolations(t *testing.T) {
	mockTx := mockRepo.NewMockTransactionManager(t)
	service := newContentService(mockTx, mockRepo.NewMockContentRepository(t))

	input := &usecase.UpdateContentInput{
		Bio: &usecase.BioInput{ShortText: "", LongText: "full text"},
		Contact: &usecase.ContactInput{
			WhatsappNumber: "123",
			Email:          strPtr("not-an-email"),
		},
	}

	err := service.UpdateContent(context.Background(), input)

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)

	fields := make([]string, 0, len(validationErr.Violations))
	for _, violation := range validationErr.Violations {
		fields = append(fields, violation.Field)
	}
	assert.Contains(t, fields, "bio.shortText")
	assert.Contains(t, fields, "contact.whatsappNumber")
	assert.Contains(t, fields, "contact.email")
}

func TestContentService_UpdateContent_ReconcilesVisuals(t *testing.T) {
	mockTx := mockRepo.NewMockTransactionManager(t)
	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockContent := mockRepo.NewMockContentRepository(t)
	service := newContentService(mockTx, mockContent)
	ctx := context.Background()

	mockFactory.EXPECT().ContentRepo().Return(mockContent)
	passthroughExecute(t, mockTx, mockFactory)

	// Store holds rows 1, 2 and 3. The payload keeps 2, edits it, and adds
	// one new row: rows 1 and 3 must be deleted.
	mockContent.EXPECT().ListVisuals(ctx).Return([]*entity.Visual{
		{ID: 1, Title: "one", ImagePath: "/img/1.jpg", Order: 1},
		{ID: 2, Title: "two", ImagePath: "/img/2.jpg", Order: 2},
		{ID: 3, Title: "three", ImagePath: "/img/3.jpg", Order: 3},
	}, nil)
	mockContent.EXPECT().DeleteVisuals(ctx, []uint{1, 3}).Return(nil)
	mockContent.EXPECT().
		UpsertVisual(ctx, mock.AnythingOfType("*entity.Visual")).
		Return(nil).
		Twice()

	input := &usecase.UpdateContentInput{
		Visuals: []usecase.VisualInput{
			{ID: 2, Title: "two edited", ImagePath: "/img/2.jpg", Order: intPtr(1)},
			{Title: "brand new", ImagePath: "/img/4.jpg", Order: intPtr(2)},
		},
	}

	err := service.UpdateContent(ctx, input)
	require.NoError(t, err)
}

func TestContentService_UpdateContent_ReplayDeletesNothing(t *testing.T) {
	mockTx := mockRepo.NewMockTransactionManager(t)
	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockContent := mockRepo.NewMockContentRepository(t)
	service := newContentService(mockTx, mockContent)
	ctx := context.Background()

	mockFactory.EXPECT().ContentRepo().Return(mockContent)
	passthroughExecute(t, mockTx, mockFactory)

	// Replaying a payload that matches the stored rows upserts them again
	// and deletes nothing.
	mockContent.EXPECT().ListVisuals(ctx).Return([]*entity.Visual{
		{ID: 2, Title: "two", ImagePath: "/img/2.jpg", Order: 1},
		{ID: 4, Title: "four", ImagePath: "/img/4.jpg", Order: 2},
	}, nil)
	mockContent.EXPECT().
		UpsertVisual(ctx, mock.AnythingOfType("*entity.Visual")).
		Return(nil).
		Twice()

	input := &usecase.UpdateContentInput{
		Visuals: []usecase.VisualInput{
			{ID: 2, Title: "two", ImagePath: "/img/2.jpg", Order: intPtr(1)},
			{ID: 4, Title: "four", ImagePath: "/img/4.jpg", Order: intPtr(2)},
		},
	}

	err := service.UpdateContent(ctx, input)
	require.NoError(t, err)
}

func TestContentService_UpdateContent_EmptyCollectionDeletesAll(t *testing.T) {
	mockTx := mockRepo.NewMockTransactionManager(t)
	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockContent := mockRepo.NewMockContentRepository(t)
	service := newContentService(mockTx, mockContent)
	ctx := context.Background()

	mockFactory.EXPECT().ContentRepo().Return(mockContent)
	passthroughExecute(t, mockTx, mockFactory)

	mockContent.EXPECT().ListInfluences(ctx).Return([]*entity.Influence{
		{ID: 7, Name: "someone", Order: 1},
		{ID: 9, Name: "someone else", Order: 2},
	}, nil)
	mockContent.EXPECT().DeleteInfluences(ctx, []uint{7, 9}).Return(nil)

	// An explicit empty array wipes the collection. No upserts happen.
	input := &usecase.UpdateContentInput{
		Influences: []usecase.InfluenceInput{},
	}

	err := service.UpdateContent(ctx, input)
	require.NoError(t, err)
}

func TestContentService_UpdateContent_AbsentCollectionsUntouched(t *testing.T) {
	mockTx := mockRepo.NewMockTransactionManager(t)
	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockContent := mockRepo.NewMockContentRepository(t)
	service := newContentService(mockTx, mockContent)
	ctx := context.Background()

	mockFactory.EXPECT().ContentRepo().Return(mockContent)
	passthroughExecute(t, mockTx, mockFactory)

	// Only the bio is present: no list, delete or upsert may hit any
	// collection, and the contact singleton stays untouched.
	mockContent.EXPECT().
		UpsertBio(ctx, mock.AnythingOfType("*entity.Bio")).
		Return(nil)

	input := &usecase.UpdateContentInput{
		Bio: &usecase.BioInput{ShortText: "short", LongText: "long"},
	}

	err := service.UpdateContent(ctx, input)
	require.NoError(t, err)
}

func TestContentService_UpdateContent_OrderDefaultsToPosition(t *testing.T) {
	mockTx := mockRepo.NewMockTransactionManager(t)
	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockContent := mockRepo.NewMockContentRepository(t)
	service := newContentService(mockTx, mockContent)
	ctx := context.Background()

	mockFactory.EXPECT().ContentRepo().Return(mockContent)
	passthroughExecute(t, mockTx, mockFactory)

	mockContent.EXPECT().ListLiveSets(ctx).Return([]*entity.LiveSet{}, nil)

	var orders []int
	mockContent.EXPECT().
		UpsertLiveSet(ctx, mock.AnythingOfType("*entity.LiveSet")).
		Run(func(_ context.Context, set *entity.LiveSet) {
			orders = append(orders, set.Order)
		}).
		Return(nil).
		Times(3)

	input := &usecase.UpdateContentInput{
		Sets: []usecase.LiveSetInput{
			{Title: "a", EmbedURL: "https://youtube.com/embed/a"},
			{Title: "b", EmbedURL: "https://youtube.com/embed/b", Order: intPtr(10)},
			{Title: "c", EmbedURL: "https://vimeo.com/c", Platform: "vimeo"},
		},
	}

	err := service.UpdateContent(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 10, 3}, orders)
}

func TestContentService_UpdateContent_PlatformDefaultsToYoutube(t *testing.T) {
	mockTx := mockRepo.NewMockTransactionManager(t)
	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockContent := mockRepo.NewMockContentRepository(t)
	service := newContentService(mockTx, mockContent)
	ctx := context.Background()

	mockFactory.EXPECT().ContentRepo().Return(mockContent)
	passthroughExecute(t, mockTx, mockFactory)

	mockContent.EXPECT().ListLiveSets(ctx).Return([]*entity.LiveSet{}, nil)

	var platform entity.Platform
	mockContent.EXPECT().
		UpsertLiveSet(ctx, mock.AnythingOfType("*entity.LiveSet")).
		Run(func(_ context.Context, set *entity.LiveSet) {
			platform = set.Platform
		}).
		Return(nil)

	input := &usecase.UpdateContentInput{
		Sets: []usecase.LiveSetInput{
			{Title: "a", EmbedURL: "https://youtube.com/embed/a"},
		},
	}

	err := service.UpdateContent(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, entity.PlatformYoutube, platform)
}

func TestContentService_UpdateContent_TransactionErrorIsOpaque(t *testing.T) {
	mockTx := mockRepo.NewMockTransactionManager(t)
	service := newContentService(mockTx, mockRepo.NewMockContentRepository(t))

	mockTx.EXPECT().
		Execute(mock.Anything, mock.Anything).
		Return(errors.New("connection reset"))

	input := &usecase.UpdateContentInput{
		Bio: &usecase.BioInput{ShortText: "short", LongText: "long"},
	}

	err := service.UpdateContent(context.Background(), input)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrTransactionFailed)
	assert.NotContains(t, err.Error(), "connection reset")
}

func TestContentService_UpdateContent_MidTransactionFailureAborts(t *testing.T) {
	mockTx := mockRepo.NewMockTransactionManager(t)
	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockContent := mockRepo.NewMockContentRepository(t)
	service := newContentService(mockTx, mockContent)
	ctx := context.Background()

	mockFactory.EXPECT().ContentRepo().Return(mockContent)
	passthroughExecute(t, mockTx, mockFactory)

	mockContent.EXPECT().ListVisuals(ctx).Return([]*entity.Visual{}, nil)
	mockContent.EXPECT().
		UpsertVisual(ctx, mock.AnythingOfType("*entity.Visual")).
		Return(errors.New("disk full"))

	// The failing visual upsert must abort the callback before the
	// contact singleton is touched.
	input := &usecase.UpdateContentInput{
		Visuals: []usecase.VisualInput{
			{Title: "only one", ImagePath: "/img/x.jpg"},
		},
		Contact: &usecase.ContactInput{WhatsappNumber: "+5491112345678"},
	}

	err := service.UpdateContent(ctx, input)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrTransactionFailed)
}

func TestStaleIDs(t *testing.T) {
	keep := map[uint]struct{}{2: {}, 4: {}}

	assert.Equal(t, []uint{1, 3}, staleIDs([]uint{1, 2, 3, 4}, keep))
	assert.Nil(t, staleIDs([]uint{2, 4}, keep))
	assert.Equal(t, []uint{5}, staleIDs([]uint{5}, map[uint]struct{}{}))
	assert.Nil(t, staleIDs(nil, keep))
}
