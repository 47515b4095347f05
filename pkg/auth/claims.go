package auth

import (
	"github.com/ecolinkdev/ecolink-back/pkg/enums"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AccessTokenPayload captures the data available when minting a JWT.
type AccessTokenPayload struct {
	UserID      uuid.UUID
	AccountType enums.AccountType
	SystemRole  *string
}

// AccessTokenClaims represents the typed JWT issued to clients.
type AccessTokenClaims struct {
	UserID      uuid.UUID         `json:"user_id"`
	AccountType enums.AccountType `json:"account_type"`
	SystemRole  *string           `json:"system_role,omitempty"`
	jwt.RegisteredClaims
}
