package auth

import "github.com/ecolinkdev/ecolink-back/pkg/enums"

// LoginRequest captures the credentials sent to the login endpoint. The
// historical field name for the email is "username".
type LoginRequest struct {
	Email    string `json:"username" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse contains the bearer token plus the profile fields clients
// render immediately after login.
type LoginResponse struct {
	AccessToken string            `json:"access_token"`
	TokenType   string            `json:"token_type"`
	Type        enums.AccountType `json:"type"`
	Name        string            `json:"name"`
	Email       string            `json:"email"`
	Document    string            `json:"document"`
}
