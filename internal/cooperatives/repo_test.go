package cooperatives

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/ecolinkdev/ecolink-back/pkg/pagination"
)

func setupCooperativesTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	ddl := `
CREATE TABLE IF NOT EXISTS cooperative (
  id TEXT PRIMARY KEY,
  corporate_name TEXT NOT NULL,
  address TEXT NOT NULL,
  cnpj TEXT NOT NULL,
  materials TEXT NOT NULL,
  phone TEXT NOT NULL,
  open_time TEXT NOT NULL,
  close_time TEXT NOT NULL,
  latitude REAL,
  longitude REAL,
  created_at DATETIME
);`
	require.NoError(t, db.Exec(ddl).Error)
	return db
}

func seedCooperative(t *testing.T, repo *Repository, name string) {
	t.Helper()

	_, err := repo.Create(context.Background(), CreateCooperativeDTO{
		ID:            uuid.New(),
		CorporateName: name,
		Address:       "Av. Paulista 1000",
		CNPJ:          "12.345.678/0001-00",
		Materials:     []string{"vidro", "metal"},
		Phone:         "+55 11 3333-4444",
		OpenTime:      "08:00",
		CloseTime:     "18:00",
		Latitude:      -23.56,
		Longitude:     -46.65,
	})
	require.NoError(t, err)
}

func TestCreateAndListRoundTripsMaterials(t *testing.T) {
	db := setupCooperativesTestDB(t)
	repo := NewRepository(db)

	seedCooperative(t, repo, "Recicla Bem Ltda")

	rows, err := repo.List(context.Background(), pagination.Params{})
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, "Recicla Bem Ltda", rows[0].CorporateName)
	assert.Equal(t, []string{"vidro", "metal"}, []string(rows[0].Materials))
	require.NotNil(t, rows[0].Latitude)
	assert.InDelta(t, -23.56, *rows[0].Latitude, 0.0001)
}

func TestListPaginatesDirectory(t *testing.T) {
	db := setupCooperativesTestDB(t)
	repo := NewRepository(db)

	for i := 0; i < 5; i++ {
		seedCooperative(t, repo, "Coop")
	}

	first, err := repo.List(context.Background(), pagination.Params{Skip: 0, Limit: 2})
	require.NoError(t, err)
	second, err := repo.List(context.Background(), pagination.Params{Skip: 2, Limit: 2})
	require.NoError(t, err)

	require.Len(t, first, 2)
	require.Len(t, second, 2)

	seen := map[uuid.UUID]bool{}
	for _, row := range first {
		seen[row.ID] = true
	}
	for _, row := range second {
		assert.False(t, seen[row.ID])
	}
}
