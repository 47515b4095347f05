package users

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/ecolinkdev/ecolink-back/pkg/config"
	pkgdb "github.com/ecolinkdev/ecolink-back/pkg/db"
	"github.com/ecolinkdev/ecolink-back/pkg/db/models"
	"github.com/ecolinkdev/ecolink-back/pkg/enums"
	pkgerrors "github.com/ecolinkdev/ecolink-back/pkg/errors"
	"github.com/ecolinkdev/ecolink-back/pkg/security"
)

const duplicateEmailMessage = "email already registered"

// RegisterRequest contains the payload required for creating an account.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"required"`
	Type     string `json:"type" validate:"required"`
	Address  string `json:"address" validate:"required"`
	Phone    string `json:"phone" validate:"required"`
	Document string `json:"document" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
}

// Service defines the behavior needed by the users controller.
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*UserDTO, error)
}

type repository interface {
	Create(ctx context.Context, dto CreateUserDTO) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

// ServiceParams bundles the dependencies required to build a users service.
type ServiceParams struct {
	Repo           repository
	PasswordConfig config.PasswordConfig
}

type service struct {
	repo        repository
	passwordCfg config.PasswordConfig
}

// NewService constructs a registration service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "users repository required")
	}
	return &service{repo: params.Repo, passwordCfg: params.PasswordConfig}, nil
}

// Register hashes the password and persists the account. The email pre-check
// is a fast path only; the unique constraint at insert time is the
// authoritative duplicate signal.
func (s *service) Register(ctx context.Context, req RegisterRequest) (*UserDTO, error) {
	email := strings.TrimSpace(req.Email)
	if email == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "email is required")
	}
	accountType, err := enums.ParseAccountType(req.Type)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid account type")
	}

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, duplicateEmailMessage)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "check user email")
	}

	passwordHash, err := security.HashPassword(req.Password, s.passwordCfg)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
	}

	user, err := s.repo.Create(ctx, CreateUserDTO{
		Email:        email,
		PasswordHash: passwordHash,
		Name:         req.Name,
		Type:         accountType,
		Address:      req.Address,
		Phone:        req.Phone,
		Document:     req.Document,
	})
	if err != nil {
		if pkgdb.IsUniqueViolation(err, "idx_users_email") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, duplicateEmailMessage)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create user")
	}

	return FromModel(user), nil
}
