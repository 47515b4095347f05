package collections

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ecolinkdev/ecolink-back/pkg/db/models"
	"github.com/ecolinkdev/ecolink-back/pkg/enums"
	pkgerrors "github.com/ecolinkdev/ecolink-back/pkg/errors"
	"github.com/ecolinkdev/ecolink-back/pkg/geocode"
	"github.com/ecolinkdev/ecolink-back/pkg/pagination"
)

const geocodingFailedMessage = "address could not be resolved"

// Service defines the behavior needed by the collections controller.
type Service interface {
	Create(ctx context.Context, ownerID uuid.UUID, req CreateCollectionRequest) (*CollectionDTO, error)
	ListForOwner(ctx context.Context, ownerID uuid.UUID, page pagination.Params) ([]CollectionDTO, error)
	ListAll(ctx context.Context, page pagination.Params) ([]CollectionDTO, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, req UpdateCollectionRequest) (*CollectionDTO, error)
}

type repository interface {
	Create(ctx context.Context, dto CreateCollectionDTO) (*models.Collection, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, page pagination.Params) ([]models.Collection, error)
	ListAll(ctx context.Context, page pagination.Params) ([]models.Collection, error)
	FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*models.Collection, error)
	Save(ctx context.Context, row *models.Collection) error
}

// ServiceParams bundles the dependencies required to build the service.
type ServiceParams struct {
	Repo     repository
	Geocoder geocode.Resolver
}

type service struct {
	repo     repository
	geocoder geocode.Resolver
}

// NewService constructs a collections service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "collections repository required")
	}
	if params.Geocoder == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "geocoder required")
	}
	return &service{repo: params.Repo, geocoder: params.Geocoder}, nil
}

// Create geocodes the address and persists the pickup. Geocoding completes
// before any write; an unresolved address writes nothing.
func (s *service) Create(ctx context.Context, ownerID uuid.UUID, req CreateCollectionRequest) (*CollectionDTO, error) {
	if ownerID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "user identity missing")
	}

	date, err := time.Parse(dateLayout, strings.TrimSpace(req.Date))
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "date must use YYYY-MM-DD")
	}

	status := enums.CollectionStatusPending
	if req.Status != nil {
		status, err = enums.ParseCollectionStatus(*req.Status)
		if err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid status")
		}
	}

	address := strings.TrimSpace(req.Address)
	if address == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "address is required")
	}

	coords, ok := s.geocoder.Resolve(ctx, address)
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeGeocoding, geocodingFailedMessage)
	}

	row, err := s.repo.Create(ctx, CreateCollectionDTO{
		UserID:    ownerID,
		Date:      date,
		Time:      req.Time,
		Address:   address,
		Materials: req.Materials,
		Status:    status,
		Latitude:  coords.Latitude,
		Longitude: coords.Longitude,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create collection")
	}

	return FromModel(row), nil
}

// ListForOwner returns only the caller's collections.
func (s *service) ListForOwner(ctx context.Context, ownerID uuid.UUID, page pagination.Params) ([]CollectionDTO, error) {
	if ownerID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "user identity missing")
	}

	rows, err := s.repo.ListByOwner(ctx, ownerID, page)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list collections")
	}
	return FromModels(rows), nil
}

// ListAll returns every collection in the system. Admin gating happens at
// the route layer.
func (s *service) ListAll(ctx context.Context, page pagination.Params) ([]CollectionDTO, error) {
	rows, err := s.repo.ListAll(ctx, page)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list all collections")
	}
	return FromModels(rows), nil
}

// Update applies a partial patch to an owned collection. A row that does not
// exist and a row owned by someone else produce the same not-found answer.
func (s *service) Update(ctx context.Context, ownerID, id uuid.UUID, req UpdateCollectionRequest) (*CollectionDTO, error) {
	if ownerID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "user identity missing")
	}
	if (req.Latitude == nil) != (req.Longitude == nil) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "latitude and longitude must be provided together")
	}

	row, err := s.repo.FindByIDForOwner(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "collection not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load collection")
	}

	if req.Status != nil {
		next, err := enums.ParseCollectionStatus(*req.Status)
		if err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid status")
		}
		if !row.Status.CanTransitionTo(next) {
			return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "status cannot move from "+row.Status.String()+" to "+next.String())
		}
		row.Status = next
	}
	if req.Latitude != nil {
		lat := *req.Latitude
		lng := *req.Longitude
		row.Latitude = &lat
		row.Longitude = &lng
	}

	if err := s.repo.Save(ctx, row); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update collection")
	}
	return FromModel(row), nil
}
