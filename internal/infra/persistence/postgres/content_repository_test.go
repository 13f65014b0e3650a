package postgres

import (
	"context"
	"testing"
	"time"

	"presskit/internal/domain/entity"
	"presskit/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentRepository_ListVisuals_OrdersByPositionThenID(t *testing.T) {
	db, mock := newMockGorm(t)
	repo := NewContentRepository(db)
	now := time.Now()

	// Display position first, id breaks ties between rows saved with the
	// same position.
	mock.ExpectQuery(`SELECT \* FROM "visuals" ORDER BY "order","id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "image_path", "order", "created_at", "updated_at"}).
			AddRow(4, "opener", "/img/4.jpg", 1, now, now).
			AddRow(2, "tied first", "/img/2.jpg", 2, now, now).
			AddRow(7, "tied second", "/img/7.jpg", 2, now, now))

	visuals, err := repo.ListVisuals(context.Background())
	require.NoError(t, err)
	require.Len(t, visuals, 3)
	assert.Equal(t, []uint{4, 2, 7}, []uint{visuals[0].ID, visuals[1].ID, visuals[2].ID})
	assert.Equal(t, "opener", visuals[0].Title)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestContentRepository_ListLiveSets_OrdersByPositionThenID(t *testing.T) {
	db, mock := newMockGorm(t)
	repo := NewContentRepository(db)
	now := time.Now()

	mock.ExpectQuery(`SELECT \* FROM "sets" ORDER BY "order","id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "embed_url", "platform", "order", "created_at", "updated_at"}).
			AddRow(1, "boiler room", "https://youtu.be/abc", "youtube", 1, now, now).
			AddRow(2, "rooftop", "https://vimeo.com/def", "myspace", 2, now, now))

	sets, err := repo.ListLiveSets(context.Background())
	require.NoError(t, err)
	require.Len(t, sets, 2)
	assert.Equal(t, entity.PlatformYoutube, sets[0].Platform)
	// Rows carrying an unknown platform value read back as youtube.
	assert.Equal(t, entity.PlatformYoutube, sets[1].Platform)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestContentRepository_GetBio_NotFound(t *testing.T) {
	db, mock := newMockGorm(t)
	repo := NewContentRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "bios" WHERE "bios"\."id" = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "short_text", "long_text"}))

	bio, err := repo.GetBio(context.Background())
	require.ErrorIs(t, err, repository.ErrBioNotFound)
	assert.Nil(t, bio)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestContentRepository_DeleteVisuals_EmptyIDsIsNoop(t *testing.T) {
	db, mock := newMockGorm(t)
	repo := NewContentRepository(db)

	// No expectations registered: any statement would fail the test.
	require.NoError(t, repo.DeleteVisuals(context.Background(), nil))
	require.NoError(t, repo.DeleteVisuals(context.Background(), []uint{}))

	require.NoError(t, mock.ExpectationsWereMet())
}
