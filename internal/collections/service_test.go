package collections

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/ecolinkdev/ecolink-back/pkg/db/models"
	dbtypes "github.com/ecolinkdev/ecolink-back/pkg/db/types"
	"github.com/ecolinkdev/ecolink-back/pkg/enums"
	pkgerrors "github.com/ecolinkdev/ecolink-back/pkg/errors"
	"github.com/ecolinkdev/ecolink-back/pkg/geocode"
	"github.com/ecolinkdev/ecolink-back/pkg/pagination"
)

type stubResolver struct {
	coords   geocode.LatLng
	resolved bool
	calls    int
}

func (s *stubResolver) Resolve(ctx context.Context, address string) (geocode.LatLng, bool) {
	s.calls++
	return s.coords, s.resolved
}

type stubCollectionsRepo struct {
	rows    map[uuid.UUID]*models.Collection
	created int
	saved   int
}

func newStubCollectionsRepo() *stubCollectionsRepo {
	return &stubCollectionsRepo{rows: map[uuid.UUID]*models.Collection{}}
}

func (s *stubCollectionsRepo) Create(ctx context.Context, dto CreateCollectionDTO) (*models.Collection, error) {
	row := dto.ToModel()
	if row.ID == uuid.Nil {
		row.ID = uuid.New()
	}
	s.rows[row.ID] = row
	s.created++
	return row, nil
}

func (s *stubCollectionsRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID, page pagination.Params) ([]models.Collection, error) {
	var out []models.Collection
	for _, row := range s.rows {
		if row.UserID == ownerID {
			out = append(out, *row)
		}
	}
	return out, nil
}

func (s *stubCollectionsRepo) ListAll(ctx context.Context, page pagination.Params) ([]models.Collection, error) {
	var out []models.Collection
	for _, row := range s.rows {
		out = append(out, *row)
	}
	return out, nil
}

func (s *stubCollectionsRepo) FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*models.Collection, error) {
	row, ok := s.rows[id]
	if !ok || row.UserID != ownerID {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *row
	return &clone, nil
}

func (s *stubCollectionsRepo) Save(ctx context.Context, row *models.Collection) error {
	row.UpdatedAt = time.Now().UTC()
	s.rows[row.ID] = row
	s.saved++
	return nil
}

func newCollectionsFixture(t *testing.T, resolver *stubResolver) (Service, *stubCollectionsRepo) {
	t.Helper()
	repo := newStubCollectionsRepo()
	svc, err := NewService(ServiceParams{Repo: repo, Geocoder: resolver})
	require.NoError(t, err)
	return svc, repo
}

func validCreateRequest() CreateCollectionRequest {
	return CreateCollectionRequest{
		Date:    "2024-11-20",
		Time:    "manha",
		Address: "Rua Augusta 100, Sao Paulo",
		Materials: []dbtypes.MaterialItem{
			{Name: "vidro", Quantity: 2, Unit: "kg"},
		},
	}
}

func TestCreateStoresResolvedCoordinates(t *testing.T) {
	resolver := &stubResolver{coords: geocode.LatLng{Latitude: -23.55, Longitude: -46.63}, resolved: true}
	svc, repo := newCollectionsFixture(t, resolver)

	dto, err := svc.Create(context.Background(), uuid.New(), validCreateRequest())
	require.NoError(t, err)

	assert.Equal(t, enums.CollectionStatusPending, dto.Status)
	require.NotNil(t, dto.Latitude)
	require.NotNil(t, dto.Longitude)
	assert.InDelta(t, -23.55, *dto.Latitude, 0.0001)
	assert.InDelta(t, -46.63, *dto.Longitude, 0.0001)
	assert.Equal(t, 1, repo.created)
	assert.Equal(t, 1, resolver.calls)
}

func TestCreateUnresolvableAddressWritesNothing(t *testing.T) {
	resolver := &stubResolver{resolved: false}
	svc, repo := newCollectionsFixture(t, resolver)

	_, err := svc.Create(context.Background(), uuid.New(), validCreateRequest())
	require.Error(t, err)

	appErr := pkgerrors.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, pkgerrors.CodeGeocoding, appErr.Code())
	assert.Equal(t, 0, repo.created)
}

func TestCreateRejectsMalformedDate(t *testing.T) {
	resolver := &stubResolver{resolved: true}
	svc, repo := newCollectionsFixture(t, resolver)

	req := validCreateRequest()
	req.Date = "20/11/2024"

	_, err := svc.Create(context.Background(), uuid.New(), req)
	require.Error(t, err)

	appErr := pkgerrors.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, pkgerrors.CodeValidation, appErr.Code())
	assert.Equal(t, 0, resolver.calls)
	assert.Equal(t, 0, repo.created)
}

func TestCreateHonorsStatusOverride(t *testing.T) {
	resolver := &stubResolver{resolved: true}
	svc, _ := newCollectionsFixture(t, resolver)

	status := "collected"
	req := validCreateRequest()
	req.Status = &status

	dto, err := svc.Create(context.Background(), uuid.New(), req)
	require.NoError(t, err)
	assert.Equal(t, enums.CollectionStatusCollected, dto.Status)
}

func TestUpdateCrossOwnerLooksLikeMissingRow(t *testing.T) {
	resolver := &stubResolver{resolved: true}
	svc, _ := newCollectionsFixture(t, resolver)

	ownerA := uuid.New()
	ownerB := uuid.New()
	created, err := svc.Create(context.Background(), ownerA, validCreateRequest())
	require.NoError(t, err)

	status := "collected"
	_, err = svc.Update(context.Background(), ownerB, created.ID, UpdateCollectionRequest{Status: &status})
	require.Error(t, err)

	appErr := pkgerrors.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, pkgerrors.CodeNotFound, appErr.Code())
}

func TestUpdateEnforcesStatusTransition(t *testing.T) {
	resolver := &stubResolver{resolved: true}
	svc, _ := newCollectionsFixture(t, resolver)
	owner := uuid.New()

	created, err := svc.Create(context.Background(), owner, validCreateRequest())
	require.NoError(t, err)

	collected := "collected"
	updated, err := svc.Update(context.Background(), owner, created.ID, UpdateCollectionRequest{Status: &collected})
	require.NoError(t, err)
	assert.Equal(t, enums.CollectionStatusCollected, updated.Status)

	pending := "pending"
	_, err = svc.Update(context.Background(), owner, created.ID, UpdateCollectionRequest{Status: &pending})
	require.Error(t, err)

	appErr := pkgerrors.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, pkgerrors.CodeStateConflict, appErr.Code())
}

func TestUpdateRequiresCoordinatePair(t *testing.T) {
	resolver := &stubResolver{resolved: true}
	svc, _ := newCollectionsFixture(t, resolver)
	owner := uuid.New()

	created, err := svc.Create(context.Background(), owner, validCreateRequest())
	require.NoError(t, err)

	lat := -20.0
	_, err = svc.Update(context.Background(), owner, created.ID, UpdateCollectionRequest{Latitude: &lat})
	require.Error(t, err)

	appErr := pkgerrors.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, pkgerrors.CodeValidation, appErr.Code())
}

func TestUpdateEmptyPatchLeavesFieldsUntouched(t *testing.T) {
	resolver := &stubResolver{coords: geocode.LatLng{Latitude: -23.55, Longitude: -46.63}, resolved: true}
	svc, repo := newCollectionsFixture(t, resolver)
	owner := uuid.New()

	created, err := svc.Create(context.Background(), owner, validCreateRequest())
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), owner, created.ID, UpdateCollectionRequest{})
	require.NoError(t, err)

	assert.Equal(t, created.Status, updated.Status)
	assert.Equal(t, created.Address, updated.Address)
	assert.Equal(t, *created.Latitude, *updated.Latitude)
	assert.Equal(t, *created.Longitude, *updated.Longitude)
	assert.Equal(t, 1, repo.saved)
}
