package users

import (
	"time"

	"github.com/google/uuid"

	"github.com/ecolinkdev/ecolink-back/pkg/db/models"
	"github.com/ecolinkdev/ecolink-back/pkg/enums"
)

// UserDTO is the transport shape that omits the password hash.
type UserDTO struct {
	ID        uuid.UUID         `json:"id"`
	Email     string            `json:"email"`
	Name      string            `json:"name"`
	Type      enums.AccountType `json:"type"`
	Address   string            `json:"address"`
	Phone     string            `json:"phone"`
	Document  string            `json:"document"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// CreateUserDTO holds the data required by the repo to persist a new user.
// ID is optional; when unset the database generates one.
type CreateUserDTO struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Name         string
	Type         enums.AccountType
	Address      string
	Phone        string
	Document     string
	SystemRole   *string
}

func FromModel(u *models.User) *UserDTO {
	if u == nil {
		return nil
	}

	return &UserDTO{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Type:      u.Type,
		Address:   u.Address,
		Phone:     u.Phone,
		Document:  u.Document,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func (c CreateUserDTO) ToModel() *models.User {
	return &models.User{
		ID:           c.ID,
		Email:        c.Email,
		PasswordHash: c.PasswordHash,
		Name:         c.Name,
		Type:         c.Type,
		Address:      c.Address,
		Phone:        c.Phone,
		Document:     c.Document,
		SystemRole:   c.SystemRole,
	}
}
