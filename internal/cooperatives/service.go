package cooperatives

import (
	"context"
	"strings"

	"github.com/ecolinkdev/ecolink-back/pkg/db/models"
	pkgerrors "github.com/ecolinkdev/ecolink-back/pkg/errors"
	"github.com/ecolinkdev/ecolink-back/pkg/geocode"
	"github.com/ecolinkdev/ecolink-back/pkg/pagination"
)

const geocodingFailedMessage = "address could not be resolved"

// Service defines the behavior needed by the cooperatives controller.
type Service interface {
	Create(ctx context.Context, req CreateCooperativeRequest) (*CooperativeDTO, error)
	List(ctx context.Context, page pagination.Params) ([]CooperativeDTO, error)
}

type repository interface {
	Create(ctx context.Context, dto CreateCooperativeDTO) (*models.Cooperative, error)
	List(ctx context.Context, page pagination.Params) ([]models.Cooperative, error)
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

// NewService constructs a cooperatives service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "cooperatives repository required")
	}
	if params.Geocoder == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "geocoder required")
	}
	return &service{repo: params.Repo, geocoder: params.Geocoder}, nil
}

// Create geocodes the address and persists the directory entry. Geocoding
// completes before any write; an unresolved address writes nothing.
func (s *service) Create(ctx context.Context, req CreateCooperativeRequest) (*CooperativeDTO, error) {
	address := strings.TrimSpace(req.Address)
	if address == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "address is required")
	}

	coords, ok := s.geocoder.Resolve(ctx, address)
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeGeocoding, geocodingFailedMessage)
	}

	row, err := s.repo.Create(ctx, CreateCooperativeDTO{
		CorporateName: req.CorporateName,
		Address:       address,
		CNPJ:          req.CNPJ,
		Materials:     req.Materials,
		Phone:         req.Phone,
		OpenTime:      req.OpenTime,
		CloseTime:     req.CloseTime,
		Latitude:      coords.Latitude,
		Longitude:     coords.Longitude,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create cooperative")
	}

	return FromModel(row), nil
}

// List returns the public directory page.
func (s *service) List(ctx context.Context, page pagination.Params) ([]CooperativeDTO, error) {
	rows, err := s.repo.List(ctx, page)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list cooperatives")
	}
	return FromModels(rows), nil
}
