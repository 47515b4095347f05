package collections

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	dbtypes "github.com/ecolinkdev/ecolink-back/pkg/db/types"
	"github.com/ecolinkdev/ecolink-back/pkg/enums"
	"github.com/ecolinkdev/ecolink-back/pkg/pagination"
)

func setupCollectionsTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	ddl := `
CREATE TABLE IF NOT EXISTS collections (
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL,
  date DATETIME NOT NULL,
  time TEXT NOT NULL,
  address TEXT NOT NULL,
  materials TEXT NOT NULL,
  status TEXT NOT NULL DEFAULT 'pending',
  latitude REAL,
  longitude REAL,
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, db.Exec(ddl).Error)
	return db
}

func seedCollection(t *testing.T, repo *Repository, ownerID uuid.UUID, address string) *CollectionDTO {
	t.Helper()

	row, err := repo.Create(context.Background(), CreateCollectionDTO{
		ID:      uuid.New(),
		UserID:  ownerID,
		Date:    time.Date(2024, 11, 20, 0, 0, 0, 0, time.UTC),
		Time:    "meio da manha",
		Address: address,
		Materials: dbtypes.MaterialList{
			{Name: "papelao", Quantity: 3, Unit: "kg"},
		},
		Status:    enums.CollectionStatusPending,
		Latitude:  -23.55,
		Longitude: -46.63,
	})
	require.NoError(t, err)
	return FromModel(row)
}

func TestListByOwnerFiltersOutForeignRows(t *testing.T) {
	db := setupCollectionsTestDB(t)
	repo := NewRepository(db)

	owner := uuid.New()
	other := uuid.New()
	mine := seedCollection(t, repo, owner, "Rua Augusta 100")
	seedCollection(t, repo, other, "Av. Paulista 1000")

	rows, err := repo.ListByOwner(context.Background(), owner, pagination.Params{})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, mine.ID, rows[0].ID)
}

func TestListPaginationYieldsDisjointPages(t *testing.T) {
	db := setupCollectionsTestDB(t)
	repo := NewRepository(db)
	owner := uuid.New()

	for i := 0; i < 6; i++ {
		seedCollection(t, repo, owner, "Rua Augusta 100")
	}

	first, err := repo.ListByOwner(context.Background(), owner, pagination.Params{Skip: 0, Limit: 3})
	require.NoError(t, err)
	second, err := repo.ListByOwner(context.Background(), owner, pagination.Params{Skip: 3, Limit: 3})
	require.NoError(t, err)

	require.Len(t, first, 3)
	require.Len(t, second, 3)

	seen := map[uuid.UUID]bool{}
	for _, row := range first {
		seen[row.ID] = true
	}
	for _, row := range second {
		assert.False(t, seen[row.ID], "page overlap on id %s", row.ID)
	}
}

func TestFindByIDForOwnerHidesForeignRows(t *testing.T) {
	db := setupCollectionsTestDB(t)
	repo := NewRepository(db)

	owner := uuid.New()
	stranger := uuid.New()
	created := seedCollection(t, repo, owner, "Rua Augusta 100")

	_, err := repo.FindByIDForOwner(context.Background(), stranger, created.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	row, err := repo.FindByIDForOwner(context.Background(), owner, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, row.ID)
}

func TestCreateRoundTripsMaterialsAndCoordinates(t *testing.T) {
	db := setupCollectionsTestDB(t)
	repo := NewRepository(db)
	owner := uuid.New()

	created := seedCollection(t, repo, owner, "Rua Augusta 100")

	row, err := repo.FindByIDForOwner(context.Background(), owner, created.ID)
	require.NoError(t, err)

	require.Len(t, row.Materials, 1)
	assert.Equal(t, "papelao", row.Materials[0].Name)
	require.NotNil(t, row.Latitude)
	require.NotNil(t, row.Longitude)
	assert.InDelta(t, -23.55, *row.Latitude, 0.0001)
	assert.InDelta(t, -46.63, *row.Longitude, 0.0001)
}
