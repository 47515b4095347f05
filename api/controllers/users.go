package controllers

import (
	"net/http"

	"github.com/ecolinkdev/ecolink-back/api/responses"
	"github.com/ecolinkdev/ecolink-back/api/validators"
	"github.com/ecolinkdev/ecolink-back/internal/users"
	pkgerrors "github.com/ecolinkdev/ecolink-back/pkg/errors"
	"github.com/ecolinkdev/ecolink-back/pkg/logger"
)

// UsersRegister handles account creation. The response carries the created
// record without the password hash.
func UsersRegister(svc users.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "users service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body users.RegisterRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		body.Name = validators.SanitizeString(body.Name, 255)

		result, err := svc.Register(r.Context(), body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, result)
	}
}
