package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/ecolinkdev/ecolink-back/internal/users"
	"github.com/ecolinkdev/ecolink-back/pkg/enums"
	pkgerrors "github.com/ecolinkdev/ecolink-back/pkg/errors"
)

type stubUsersService struct {
	resp *users.UserDTO
	err  error
	got  *users.RegisterRequest
}

func (s *stubUsersService) Register(ctx context.Context, req users.RegisterRequest) (*users.UserDTO, error) {
	s.got = &req
	return s.resp, s.err
}

func registerBody() []byte {
	return []byte(`{
		"email": "ana@example.com",
		"name": "  Ana Souza  ",
		"type": "residential",
		"address": "Rua Augusta 100, Sao Paulo",
		"phone": "+55 11 91234-5678",
		"document": "123.456.789-00",
		"password": "correct horse"
	}`)
}

func TestUsersRegisterSuccess(t *testing.T) {
	svc := &stubUsersService{resp: &users.UserDTO{
		ID:    uuid.New(),
		Email: "ana@example.com",
		Name:  "Ana Souza",
		Type:  enums.AccountTypeResidential,
	}}
	handler := UsersRegister(svc, nil)

	req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewReader(registerBody()))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d", resp.Code)
	}
	if svc.got == nil || svc.got.Name != "Ana Souza" {
		t.Fatalf("expected sanitized name, got %+v", svc.got)
	}

	var envelope struct {
		Data map[string]any `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if _, leaked := envelope.Data["password_hash"]; leaked {
		t.Fatalf("password hash must never appear in the response")
	}
}

func TestUsersRegisterRejectsInvalidBody(t *testing.T) {
	svc := &stubUsersService{}
	handler := UsersRegister(svc, nil)

	req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewReader([]byte(`{"email":"not-an-email"}`)))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 got %d", resp.Code)
	}
	if svc.got != nil {
		t.Fatalf("service must not be called for invalid input")
	}
}

func TestUsersRegisterMapsDuplicateEmailTo400(t *testing.T) {
	svc := &stubUsersService{err: pkgerrors.New(pkgerrors.CodeConflict, "email already registered")}
	handler := UsersRegister(svc, nil)

	req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewReader(registerBody()))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}
